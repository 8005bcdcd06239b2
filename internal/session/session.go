package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/history"
)

// Names given to contacts created with AddContact
const (
	NewContactFirstName = "New"
	NewContactLastName  = "Contact"
)

// ChangeSelected is the Change kind emitted for selection transitions
const ChangeSelected = "selected"

// Journal receives activity entries; *history.Manager implements it
type Journal interface {
	Record(entry history.Entry) error
}

// Options configures a new session
type Options struct {
	ID      string // generated when empty
	Seed    config.SeedSettings
	Rand    *rand.Rand // defaults to Seed.Random, or the clock
	Journal Journal    // optional
	Logger  *logrus.Logger
}

// Change is a store or selection notification flattened for UI layers
type Change struct {
	Kind     string      `json:"kind"`
	ID       contacts.ID `json:"id,omitempty"`
	Field    string      `json:"field,omitempty"`
	Value    string      `json:"value,omitempty"`
	Refilter bool        `json:"refilter,omitempty"`
}

// Session is the per-user context: one store, one selection and one editor
// binder, created at session start and torn down by Close
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	lastUsed  time.Time

	store     *contacts.Store
	selection *contacts.Selection
	binder    *contacts.Binder
	query     string

	journal     Journal
	log         *logrus.Entry
	unsubscribe []func()
	closed      bool
}

// New creates and seeds a session
func New(opts Options) *Session {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed.Random
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	now := time.Now()
	store := contacts.NewStore()
	selection := contacts.NewSelection(store)
	binder := contacts.NewSchemaBinder(store)

	s := &Session{
		id:        id,
		createdAt: now,
		lastUsed:  now,
		store:     store,
		selection: selection,
		binder:    binder,
		journal:   opts.Journal,
		log:       logger.WithField("session", id),
	}

	s.unsubscribe = append(s.unsubscribe, selection.Subscribe(binder.SetSource))

	contacts.NewSeeder(opts.Seed.FirstNames, opts.Seed.LastNames).Seed(store, opts.Seed.Count, rng)

	if s.journal != nil {
		s.unsubscribe = append(s.unsubscribe,
			store.Subscribe(s.journalStoreEvent),
			selection.Subscribe(s.journalSelection),
		)
		s.record(history.Entry{Kind: history.KindSession, Value: "started"})
	}

	s.log.WithField("records", store.Len()).Debug("session started")
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Store returns the session's record store
func (s *Session) Store() *contacts.Store {
	return s.store
}

// Selection returns the session's selection controller
func (s *Session) Selection() *contacts.Selection {
	return s.selection
}

// Binder returns the editor binder
func (s *Session) Binder() *contacts.Binder {
	return s.binder
}

// Do runs one turn with exclusive access to the session
func (s *Session) Do(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	fn(s)
}

// LastUsed returns when the last turn started
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Search installs a substring filter; an empty query removes the filter
func (s *Session) Search(query string) {
	s.query = query
	if query == "" {
		s.store.ClearFilter()
		return
	}
	s.store.SetFilter(contacts.NewSubstringFilter(query))
}

// Query returns the current search text
func (s *Session) Query() string {
	return s.query
}

// Visible returns the filtered contact list
func (s *Session) Visible() []contacts.Entry {
	return s.store.Visible()
}

// AddContact clears the search, inserts a placeholder contact at the top and
// selects it for editing
func (s *Session) AddContact() contacts.ID {
	s.query = ""
	s.store.ClearFilter()
	id := s.store.Insert(0, map[contacts.Field]string{
		contacts.FieldFirstName: NewContactFirstName,
		contacts.FieldLastName:  NewContactLastName,
	})
	s.selection.Select(id)
	return id
}

// Remove deletes a contact, dropping the selection first if it points at it.
// Removing an unknown id is a no-op.
func (s *Session) Remove(id contacts.ID) bool {
	if selected, ok := s.selection.Selected(); ok && selected == id {
		s.selection.Select("")
	}
	return s.store.Remove(id)
}

// RemoveSelected deletes the selected contact
func (s *Session) RemoveSelected() bool {
	id, ok := s.selection.Selected()
	if !ok {
		return false
	}
	return s.Remove(id)
}

// Select changes the edited contact; "" deselects
func (s *Session) Select(id contacts.ID) bool {
	return s.selection.Select(id)
}

// Selected returns the selected record
func (s *Session) Selected() (*contacts.Record, bool) {
	id, ok := s.selection.Selected()
	if !ok {
		return nil, false
	}
	return s.store.Get(id)
}

// Edit forwards an editor change through the binder
func (s *Session) Edit(field contacts.Field, value string) bool {
	return s.binder.Edit(field, value)
}

// Subscribe reports store and selection changes as a single stream
func (s *Session) Subscribe(fn func(Change)) (unsubscribe func()) {
	offStore := s.store.Subscribe(func(ev contacts.Event) {
		fn(Change{
			Kind:     string(ev.Kind),
			ID:       ev.ID,
			Field:    string(ev.Field),
			Value:    ev.Value,
			Refilter: ev.Refilter,
		})
	})
	offSelection := s.selection.Subscribe(func(id contacts.ID) {
		fn(Change{Kind: ChangeSelected, ID: id})
	})
	return func() {
		offStore()
		offSelection()
	}
}

// Close tears the session down. Further calls are no-ops.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.journal != nil {
		s.record(history.Entry{Kind: history.KindSession, Value: "closed"})
	}
	for i := len(s.unsubscribe) - 1; i >= 0; i-- {
		s.unsubscribe[i]()
	}
	s.unsubscribe = nil
	s.log.Debug("session closed")
}

func (s *Session) journalStoreEvent(ev contacts.Event) {
	entry := history.EntryFromEvent(s.id, ev)
	if ev.Kind == contacts.EventFilter {
		entry.Value = s.query
	}
	s.record(entry)
}

func (s *Session) journalSelection(id contacts.ID) {
	s.record(history.Entry{Kind: history.KindSelected, RecordID: string(id)})
}

// record writes to the journal; failures are logged, never returned
func (s *Session) record(entry history.Entry) {
	entry.SessionID = s.id
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := s.journal.Record(entry); err != nil {
		s.log.WithError(err).WithField("kind", entry.Kind).Warn("failed to record activity")
	}
}
