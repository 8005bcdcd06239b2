package history

import (
	"time"

	"github.com/studiowebux/addressbook/internal/contacts"
)

// Kinds recorded besides the store event kinds
const (
	KindSelected = "selected"
	KindSession  = "session"
)

// Entry is one line of the activity journal
type Entry struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	SessionID string    `json:"sessionId" yaml:"sessionId"`
	Kind      string    `json:"kind" yaml:"kind"`
	RecordID  string    `json:"recordId,omitempty" yaml:"recordId,omitempty"`
	Field     string    `json:"field,omitempty" yaml:"field,omitempty"`
	Value     string    `json:"value,omitempty" yaml:"value,omitempty"`
}

// EntryFromEvent converts a store event into a journal entry
func EntryFromEvent(sessionID string, ev contacts.Event) Entry {
	entry := Entry{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Kind:      string(ev.Kind),
		RecordID:  string(ev.ID),
	}
	if ev.Kind == contacts.EventField {
		entry.Field = string(ev.Field)
		entry.Value = ev.Value
	}
	return entry
}
