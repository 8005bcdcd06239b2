package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/session"
)

// SessionCookie carries the browser's session id
const SessionCookie = "addressbook_session"

const (
	defaultHost     = "localhost"
	defaultPort     = 8080
	shutdownTimeout = 5 * time.Second
	janitorInterval = time.Minute
)

// Server is the browser front end: one address book session per cookie
type Server struct {
	settings   config.ServerSettings
	manager    *session.Manager
	metrics    *Metrics
	log        *logrus.Entry
	router     *mux.Router
	httpServer *http.Server
	listener   net.Listener

	janitorEvery time.Duration
	done         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// NewServer creates a server for the given sessions; call Start to listen
func NewServer(settings config.ServerSettings, manager *session.Manager, logger *logrus.Logger) *Server {
	if settings.Port == 0 {
		settings.Port = defaultPort
	}
	if settings.Host == "" {
		settings.Host = defaultHost
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{
		settings:     settings,
		manager:      manager,
		metrics:      NewMetrics(manager.Len),
		log:          logger.WithField("component", "web"),
		janitorEvery: janitorInterval,
		done:         make(chan struct{}),
	}
	s.router = s.routes()
	return s
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the address and serves in the background
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.settings.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.settings.Addr(), err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("web server error")
		}
	}()

	s.startJanitor()
	s.log.WithField("addr", listener.Addr().String()).Info("web server started")
	return nil
}

// Stop shuts the server down, closes websocket feeds and ends every session
func (s *Server) Stop() error {
	s.stopOnce.Do(func() { close(s.done) })
	s.wg.Wait()

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}

	s.manager.CloseAll()
	return err
}

// GetAddress returns the base URL
func (s *Server) GetAddress() string {
	if s.listener != nil {
		return "http://" + s.listener.Addr().String()
	}
	return "http://" + s.settings.Addr()
}

func (s *Server) startJanitor() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.janitorEvery)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case now := <-ticker.C:
				if n := s.manager.Expire(now); n > 0 {
					s.log.WithField("expired", n).Debug("expired idle sessions")
				}
			}
		}
	}()
}

// session resolves the request's session, starting one and setting the
// cookie when the browser has none or an expired one
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		id = cookie.Value
	}

	sess, created := s.manager.GetOrCreate(id)
	if created {
		sess.Do(func(sess *session.Session) {
			sess.Subscribe(s.metrics.ObserveChange)
		})
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		s.log.WithField("session", sess.ID()).Debug("session created")
	}
	return sess
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
