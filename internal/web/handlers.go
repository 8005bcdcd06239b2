package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/session"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 64 << 10

// ContactJSON is a record as returned by the API
type ContactJSON struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"displayName"`
	Fields      map[string]string `json:"fields"`
}

// ListResponse is the visible contact list
type ListResponse struct {
	Query    string        `json:"query"`
	Total    int           `json:"total"`
	Selected string        `json:"selected,omitempty"`
	Contacts []ContactJSON `json:"contacts"`
}

// EditorField is one bound editor input
type EditorField struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// EditorResponse describes the editor pane; Source is empty when nothing is
// selected and the editor is hidden
type EditorResponse struct {
	Source string        `json:"source,omitempty"`
	Fields []EditorField `json:"fields"`
}

type createRequest struct {
	Fields map[string]string `json:"fields"`
}

type selectionRequest struct {
	ID string `json:"id"`
}

type editRequest struct {
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.metrics.Middleware, s.logRequests)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/contacts", s.handleListContacts).Methods(http.MethodGet)
	api.HandleFunc("/contacts", s.handleCreateContact).Methods(http.MethodPost)
	api.HandleFunc("/contacts/{id}", s.handleGetContact).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{id}", s.handleDeleteContact).Methods(http.MethodDelete)
	api.HandleFunc("/selection", s.handleSelect).Methods(http.MethodPut)
	api.HandleFunc("/editor", s.handleGetEditor).Methods(http.MethodGet)
	api.HandleFunc("/editor/{field}", s.handleEdit).Methods(http.MethodPut)

	return r
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	query := r.URL.Query()

	var resp ListResponse
	sess.Do(func(sess *session.Session) {
		if query.Has("q") && query.Get("q") != sess.Query() {
			sess.Search(query.Get("q"))
		}
		resp = listResponse(sess)
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	for key := range req.Fields {
		if _, ok := contacts.ParseField(key); !ok {
			writeError(w, http.StatusBadRequest, "unknown field: "+key)
			return
		}
	}

	var resp ContactJSON
	sess.Do(func(sess *session.Session) {
		id := sess.AddContact()
		for _, f := range contacts.Fields() {
			if value, ok := req.Fields[string(f)]; ok {
				sess.Edit(f, value)
			}
		}
		record, _ := sess.Store().Get(id)
		resp = contactJSON(record)
	})
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	id := contacts.ID(mux.Vars(r)["id"])

	var (
		resp  ContactJSON
		found bool
	)
	sess.Do(func(sess *session.Session) {
		var record *contacts.Record
		if record, found = sess.Store().Get(id); found {
			resp = contactJSON(record)
		}
	})
	if !found {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDeleteContact answers 204 whether or not the contact still existed
func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	id := contacts.ID(mux.Vars(r)["id"])

	sess.Do(func(sess *session.Session) {
		sess.Remove(id)
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var req selectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var (
		resp EditorResponse
		ok   bool
	)
	sess.Do(func(sess *session.Session) {
		ok = sess.Select(contacts.ID(req.ID))
		resp = editorResponse(sess)
	})
	if !ok {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEditor(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var resp EditorResponse
	sess.Do(func(sess *session.Session) {
		resp = editorResponse(sess)
	})
	writeJSON(w, http.StatusOK, resp)
}

// handleEdit writes one editor field through to the selected contact.
// Without a selection the edit is dropped with 204.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	field, ok := contacts.ParseField(mux.Vars(r)["field"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown field: "+mux.Vars(r)["field"])
		return
	}

	var req editRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var (
		resp    EditorResponse
		applied bool
	)
	sess.Do(func(sess *session.Session) {
		applied = sess.Edit(field, req.Value)
		resp = editorResponse(sess)
	})
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func listResponse(sess *session.Session) ListResponse {
	visible := sess.Visible()
	resp := ListResponse{
		Query:    sess.Query(),
		Total:    sess.Store().Len(),
		Contacts: make([]ContactJSON, 0, len(visible)),
	}
	if id, ok := sess.Selection().Selected(); ok {
		resp.Selected = string(id)
	}
	for _, entry := range visible {
		resp.Contacts = append(resp.Contacts, contactJSON(entry.Record))
	}
	return resp
}

func editorResponse(sess *session.Session) EditorResponse {
	resp := EditorResponse{Fields: []EditorField{}}
	source, ok := sess.Binder().Source()
	if !ok {
		return resp
	}
	resp.Source = string(source)
	for _, fv := range sess.Binder().Values() {
		resp.Fields = append(resp.Fields, EditorField{
			Field: string(fv.Field),
			Label: fv.Field.Label(),
			Value: fv.Value,
		})
	}
	return resp
}

func contactJSON(r *contacts.Record) ContactJSON {
	c := ContactJSON{
		ID:          string(r.ID()),
		DisplayName: r.DisplayName(),
		Fields:      make(map[string]string, len(contacts.Schema)),
	}
	for _, fv := range r.Values() {
		c.Fields[string(fv.Field)] = fv.Value
	}
	return c
}

// decodeJSON reads an optional JSON body; an empty body leaves v untouched
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
