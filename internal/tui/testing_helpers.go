package tui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/logging"
	"github.com/studiowebux/addressbook/internal/session"
)

// CreateTestModel creates a Model over a session seeded with count contacts
func CreateTestModel(t *testing.T, count int) *Model {
	t.Helper()

	sess := session.New(session.Options{
		ID:     "tui-test",
		Seed:   config.SeedSettings{Count: count},
		Rand:   rand.New(rand.NewSource(42)),
		Logger: logging.Discard(),
	})
	t.Cleanup(sess.Close)

	m, err := New(sess, nil, logging.Discard())
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	t.Cleanup(m.Cleanup)

	m.copyToClipboard = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m
}

// CreateTestModelWithContacts creates a Model over the given contacts, in order
func CreateTestModelWithContacts(t *testing.T, records ...map[contacts.Field]string) *Model {
	t.Helper()

	m := CreateTestModel(t, 0)
	for _, r := range records {
		m.session.Store().Append(r)
	}
	return m
}

// pressKey sends a key press through Update
func pressKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

// typeText sends every rune of text as a key press
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// keyMsg builds the tea.KeyMsg whose String() is key
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
