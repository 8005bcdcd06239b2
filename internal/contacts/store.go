package contacts

import "github.com/google/uuid"

// EventKind names the mutation that produced an Event
type EventKind string

const (
	EventInserted EventKind = "inserted"
	EventRemoved  EventKind = "removed"
	EventFilter   EventKind = "filter"
	EventField    EventKind = "field"
)

// Event describes a completed store mutation
type Event struct {
	Kind     EventKind
	ID       ID     // inserted, removed, field
	Position int    // inserted: final index, removed: former index
	Field    Field  // field
	Value    string // field: new value
	Refilter bool   // the active filter must be re-evaluated
}

// Entry is one row of the visible view
type Entry struct {
	ID     ID
	Record *Record
}

// Store is an ordered in-memory collection of records with one active filter
type Store struct {
	records   []*Record
	byID      map[ID]*Record
	filter    Filter
	observers observers[Event]
	newID     func() ID
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		byID:  make(map[ID]*Record),
		newID: func() ID { return ID(uuid.NewString()) },
	}
}

// Subscribe registers fn for every store event. Subscribers run synchronously,
// after the mutation, in registration order.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	return s.observers.add(fn)
}

// Insert creates a record at position and returns its identity.
// Position 0 is the front; positions past the end append.
func (s *Store) Insert(position int, fields map[Field]string) ID {
	id := s.newID()
	for s.byID[id] != nil {
		id = s.newID()
	}
	r := newRecord(id, fields)

	if position < 0 {
		position = 0
	}
	if position > len(s.records) {
		position = len(s.records)
	}

	s.records = append(s.records, nil)
	copy(s.records[position+1:], s.records[position:])
	s.records[position] = r
	s.byID[id] = r

	s.observers.notify(Event{Kind: EventInserted, ID: id, Position: position, Refilter: s.filter != nil})
	return id
}

// Append inserts a record at the end
func (s *Store) Append(fields map[Field]string) ID {
	return s.Insert(len(s.records), fields)
}

// Remove deletes the record with the given identity.
// It returns false, and does nothing, if the record is not present.
func (s *Store) Remove(id ID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}

	position := s.Index(id)
	s.records = append(s.records[:position], s.records[position+1:]...)
	delete(s.byID, id)

	s.observers.notify(Event{Kind: EventRemoved, ID: id, Position: position})
	return true
}

// Get looks up a record by identity
func (s *Store) Get(id ID) (*Record, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Index returns the position of a record in insertion order, or -1
func (s *Store) Index(id ID) int {
	for i, r := range s.records {
		if r.id == id {
			return i
		}
	}
	return -1
}

// Len returns the number of records, ignoring the filter
func (s *Store) Len() int {
	return len(s.records)
}

// SetField writes one field of a stored record and notifies observers.
// Returns false for unknown records or fields.
func (s *Store) SetField(id ID, f Field, value string) bool {
	r, ok := s.byID[id]
	if !ok || !r.Set(f, value) {
		return false
	}

	s.observers.notify(Event{
		Kind:     EventField,
		ID:       id,
		Field:    f,
		Value:    value,
		Refilter: s.filter != nil && s.filter.AppliesTo(f),
	})
	return true
}

// SetFilter replaces the active filter. A nil filter matches every record.
func (s *Store) SetFilter(f Filter) {
	s.filter = f
	s.observers.notify(Event{Kind: EventFilter, Refilter: true})
}

// ClearFilter removes the active filter
func (s *Store) ClearFilter() {
	s.SetFilter(nil)
}

// Filter returns the active filter (nil when none is set)
func (s *Store) Filter() Filter {
	return s.filter
}

// Visible returns, in insertion order, every record that passes the active
// filter. The result is computed fresh on each call.
func (s *Store) Visible() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for _, r := range s.records {
		if s.filter != nil && !s.filter.Matches(r) {
			continue
		}
		entries = append(entries, Entry{ID: r.id, Record: r})
	}
	return entries
}
