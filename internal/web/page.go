package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/session"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	List   ListResponse
	Editor EditorResponse
	Schema []contacts.FieldSpec
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	data := pageData{Schema: contacts.Schema}
	sess.Do(func(sess *session.Session) {
		data.List = listResponse(sess)
		data.Editor = editorResponse(sess)
	})

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.log.WithError(err).Error("failed to render page")
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
