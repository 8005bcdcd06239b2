package web

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/studiowebux/addressbook/internal/session"
)

const (
	// feedBuffer is how many changes may queue for a slow websocket client
	// before further changes are dropped
	feedBuffer = 256

	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWebsocket streams the session's changes as JSON messages
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	// Subscribe before the handshake completes so no change after the
	// client connects is missed
	feed := make(chan session.Change, feedBuffer)
	var unsubscribe func()
	sess.Do(func(sess *session.Session) {
		unsubscribe = sess.Subscribe(func(c session.Change) {
			select {
			case feed <- c:
			default:
				s.log.WithField("session", sess.ID()).Warn("websocket feed full, dropping change")
			}
		})
	})
	defer sess.Do(func(*session.Session) { unsubscribe() })

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer ws.Close()

	// The client sends nothing; reading only detects the disconnect
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-s.done:
			ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-closed:
			return
		case c := <-feed:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sendJSON(ws, c); err != nil {
				s.log.WithError(err).Debug("websocket write failed")
				return
			}
		}
	}
}

func sendJSON(ws *websocket.Conn, v interface{}) error {
	return ws.WriteJSON(v)
}
