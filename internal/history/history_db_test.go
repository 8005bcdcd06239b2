package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/studiowebux/addressbook/internal/contacts"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_RecordAndLoad(t *testing.T) {
	m := newTestManager(t)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	entries := []Entry{
		{Timestamp: base, SessionID: "s1", Kind: "inserted", RecordID: "r1"},
		{Timestamp: base.Add(time.Second), SessionID: "s1", Kind: "field", RecordID: "r1", Field: "city", Value: "Oslo"},
		{Timestamp: base.Add(2 * time.Second), SessionID: "s2", Kind: "removed", RecordID: "r9"},
	}
	for _, e := range entries {
		if err := m.Record(e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	loaded, err := m.Load(0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(loaded))
	}
	if loaded[0].Kind != "removed" {
		t.Errorf("Expected newest entry first, got %s", loaded[0].Kind)
	}
	if !loaded[2].Timestamp.Equal(base) {
		t.Errorf("Expected timestamp %v, got %v", base, loaded[2].Timestamp)
	}

	limited, err := m.Load(2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(limited))
	}

	session, err := m.LoadForSession("s1")
	if err != nil {
		t.Fatalf("LoadForSession failed: %v", err)
	}
	if len(session) != 2 {
		t.Fatalf("Expected 2 entries for s1, got %d", len(session))
	}
	if session[1].Field != "city" || session[1].Value != "Oslo" {
		t.Errorf("Unexpected field entry: %+v", session[1])
	}
	if session[0].Field != "" {
		t.Errorf("Expected empty field for insert, got %q", session[0].Field)
	}
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t)

	if err := m.Record(Entry{SessionID: "s", Kind: KindSession}); err != nil {
		t.Fatal(err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	count, err := m.GetCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", count)
	}
}

func TestEntryFromEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     contacts.Event
		wantField string
		wantValue string
	}{
		{"insert", contacts.Event{Kind: contacts.EventInserted, ID: "r1"}, "", ""},
		{"field", contacts.Event{Kind: contacts.EventField, ID: "r1", Field: contacts.FieldZip, Value: "123"}, "zip", "123"},
		{"filter", contacts.Event{Kind: contacts.EventFilter}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := EntryFromEvent("s1", tt.event)
			if entry.SessionID != "s1" {
				t.Errorf("Expected session s1, got %s", entry.SessionID)
			}
			if entry.Kind != string(tt.event.Kind) {
				t.Errorf("Expected kind %s, got %s", tt.event.Kind, entry.Kind)
			}
			if entry.Field != tt.wantField || entry.Value != tt.wantValue {
				t.Errorf("Expected %q=%q, got %q=%q", tt.wantField, tt.wantValue, entry.Field, entry.Value)
			}
		})
	}
}
