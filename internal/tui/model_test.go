package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/keybinds"
)

func TestNew_InitializesStateCorrectly(t *testing.T) {
	m := CreateTestModel(t, 30)

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "list length", m.list.Len(), 30)
	AssertModelField(t, "cursor", m.list.GetCurrentIndex(), 0)
	AssertModelField(t, "editor visible", m.editor.Visible(), false)

	if _, ok := m.session.Selected(); ok {
		t.Error("Expected no selection at start")
	}
}

func TestNew_BindsEveryField(t *testing.T) {
	m := CreateTestModel(t, 0)

	if len(m.editor.fields) != len(contacts.Schema) {
		t.Fatalf("Expected %d editor fields, got %d", len(contacts.Schema), len(m.editor.fields))
	}
	for i, spec := range contacts.Schema {
		AssertModelField(t, "field order", m.editor.fields[i].field, spec.Field)
	}
}

func TestMode_Context(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected keybinds.Context
	}{
		{ModeNormal, keybinds.ContextNormal},
		{ModeSearch, keybinds.ContextSearch},
		{ModeEditor, keybinds.ContextEditor},
		{ModeConfirmDelete, keybinds.ContextConfirm},
		{ModeHelp, keybinds.ContextHelp},
	}

	for _, tt := range tests {
		AssertModelField(t, "context", tt.mode.context(), tt.expected)
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := CreateTestModel(t, 5)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	AssertModelField(t, "width", m.width, 100)
	AssertModelField(t, "height", m.height, 30)
	AssertModelField(t, "page size", m.listPageSize(), 30-ContentOffsetList)
}

func TestModel_View(t *testing.T) {
	m := CreateTestModelWithContacts(t,
		map[contacts.Field]string{contacts.FieldFirstName: "Peter", contacts.FieldLastName: "Smith", contacts.FieldCompany: "Vaadin"},
	)

	view := m.View()
	for _, want := range []string{"Contacts (1/1)", "Peter", "Smith", "Vaadin", "Select a contact"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	pressKey(m, "enter")
	view = m.View()
	if !strings.Contains(view, "Mobile Phone") {
		t.Error("Expected editor labels once a contact is selected")
	}

	pressKey(m, "esc")
	pressKey(m, "esc")
	if !strings.Contains(m.View(), "Select a contact") {
		t.Error("Expected editor hint after deselecting")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := CreateTestModel(t, 0)
	m.width = 0
	AssertModelField(t, "view", m.View(), "Initializing...")
}

func TestModel_StatusMessages(t *testing.T) {
	m := CreateTestModel(t, 0)

	if cmd := m.setStatusMessage("Hello"); cmd == nil {
		t.Error("Expected a clear timer command")
	}
	AssertModelField(t, "statusMsg", m.statusMsg, "Hello")

	m.setErrorMessage(strings.Repeat("x", 200))
	AssertModelField(t, "errorMsg length", len(m.errorMsg), StatusMaxLength)

	m.Update(clearErrorMsg{})
	m.Update(clearStatusMsg{})
	AssertModelField(t, "statusMsg", m.statusMsg, "")
	AssertModelField(t, "errorMsg", m.errorMsg, "")
}

func TestModel_CleanupStopsUpdates(t *testing.T) {
	m := CreateTestModel(t, 3)
	m.Cleanup()
	m.Cleanup()

	m.session.AddContact()
	AssertModelField(t, "list length after cleanup", m.list.Len(), 3)
}
