package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// selectCursor makes the contact under the cursor the edited one
func (m *Model) selectCursor() {
	if e, ok := m.list.GetCurrent(); ok {
		m.session.Select(e.ID)
	}
}

// search applies a new query and puts the cursor back on the first row
func (m *Model) search(query string) {
	m.session.Search(query)
	m.list.SetIndex(0, m.listPageSize())
	m.log.WithField("query", query).Debug("search")
}

// clearSearch removes the filter and empties the search field
func (m *Model) clearSearch() tea.Cmd {
	m.searchInput.Reset()
	m.searchInput.Blur()
	m.mode = ModeNormal
	m.search("")
	return m.setStatusMessage("Search cleared")
}

// addContact inserts a placeholder contact and opens it in the editor
func (m *Model) addContact() tea.Cmd {
	m.searchInput.Reset()
	id := m.session.AddContact()
	m.log.WithField("id", id).Info("contact added")

	m.mode = ModeEditor
	return tea.Batch(m.editor.Focus(0), m.setStatusMessage("Contact added"))
}

// confirmDelete opens the delete confirmation for the selected contact
func (m *Model) confirmDelete() tea.Cmd {
	if _, ok := m.session.Selected(); !ok {
		return m.setErrorMessage("No contact selected")
	}
	m.mode = ModeConfirmDelete
	return nil
}

// deleteSelected removes the selected contact
func (m *Model) deleteSelected() tea.Cmd {
	r, ok := m.session.Selected()
	if !ok {
		return m.setErrorMessage("No contact selected")
	}

	name := r.DisplayName()
	id := r.ID()
	if !m.session.RemoveSelected() {
		return m.setErrorMessage("Contact already removed")
	}
	m.log.WithField("id", id).Info("contact deleted")
	return m.setStatusMessage(fmt.Sprintf("Deleted %s", name))
}

// editSelected focuses the editor, selecting the cursor row if needed
func (m *Model) editSelected() tea.Cmd {
	if _, ok := m.session.Selected(); !ok {
		m.selectCursor()
	}
	if _, ok := m.session.Selected(); !ok {
		return m.setErrorMessage("No contact to edit")
	}

	m.mode = ModeEditor
	return m.editor.Focus(m.editor.FocusIndex())
}

// copySelected puts the selected contact on the clipboard
func (m *Model) copySelected() tea.Cmd {
	r, ok := m.session.Selected()
	if !ok {
		return m.setErrorMessage("No contact selected")
	}

	if err := m.copyToClipboard(r.Card()); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to copy: %v", err))
	}
	return m.setStatusMessage(fmt.Sprintf("%s copied to clipboard", r.DisplayName()))
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}
