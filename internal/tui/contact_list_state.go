package tui

import (
	"sync"

	"github.com/studiowebux/addressbook/internal/contacts"
)

// ContactListState manages the visible contact rows and the list cursor
type ContactListState struct {
	mu sync.RWMutex

	entries []contacts.Entry // Visible rows, in store order

	// Navigation
	index  int // Cursor row
	offset int // Scroll offset
}

// NewContactListState creates an empty list state
func NewContactListState() *ContactListState {
	return &ContactListState{
		entries: []contacts.Entry{},
	}
}

// SetEntries replaces the visible rows, keeping the cursor in bounds
func (l *ContactListState) SetEntries(entries []contacts.Entry, pageSize int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = entries
	if l.index >= len(l.entries) {
		l.index = len(l.entries) - 1
	}
	if l.index < 0 {
		l.index = 0
	}
	l.adjustScrollOffsetLocked(pageSize)
}

// GetEntries returns a copy of the visible rows
func (l *ContactListState) GetEntries() []contacts.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := make([]contacts.Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of visible rows
func (l *ContactListState) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// GetCurrentIndex returns the cursor row
func (l *ContactListState) GetCurrentIndex() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index
}

// GetScrollOffset returns the current scroll offset
func (l *ContactListState) GetScrollOffset() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.offset
}

// GetCurrent returns the row under the cursor
func (l *ContactListState) GetCurrent() (contacts.Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.index < 0 || l.index >= len(l.entries) {
		return contacts.Entry{}, false
	}
	return l.entries[l.index], true
}

// IndexOf returns the row of a contact, or -1 when it is not visible
func (l *ContactListState) IndexOf(id contacts.ID) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Navigate moves the cursor by delta rows (wraps around)
func (l *ContactListState) Navigate(delta int, pageSize int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return
	}

	l.index += delta
	if l.index < 0 {
		l.index = len(l.entries) - 1
	} else if l.index >= len(l.entries) {
		l.index = 0
	}

	l.adjustScrollOffsetLocked(pageSize)
}

// Page moves the cursor by delta rows, stopping at either end
func (l *ContactListState) Page(delta int, pageSize int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return
	}

	l.index += delta
	if l.index < 0 {
		l.index = 0
	} else if l.index >= len(l.entries) {
		l.index = len(l.entries) - 1
	}

	l.adjustScrollOffsetLocked(pageSize)
}

// SetIndex moves the cursor to a row, clamped to the list
func (l *ContactListState) SetIndex(index int, pageSize int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		l.index, l.offset = 0, 0
		return
	}
	if index < 0 {
		index = 0
	} else if index >= len(l.entries) {
		index = len(l.entries) - 1
	}
	l.index = index

	l.adjustScrollOffsetLocked(pageSize)
}

// adjustScrollOffsetLocked adjusts scroll offset (must be called with lock held)
func (l *ContactListState) adjustScrollOffsetLocked(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if l.index < l.offset {
		l.offset = l.index
	} else if l.index >= l.offset+pageSize {
		l.offset = l.index - pageSize + 1
	}
	if maxOffset := len(l.entries) - pageSize; l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
