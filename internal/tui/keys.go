package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/addressbook/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		m.Cleanup()
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeEditor:
		return m.handleEditorKeys(msg)
	case ModeConfirmDelete:
		return m.handleDeleteConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keys while the contact list has focus
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextNormal, msg.String())
	if partial || !ok {
		return nil
	}

	pageSize := m.listPageSize()

	switch action {
	case keybinds.ActionQuit:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionNavigateUp:
		m.list.Navigate(-1, pageSize)
		m.selectCursor()
	case keybinds.ActionNavigateDown:
		m.list.Navigate(1, pageSize)
		m.selectCursor()
	case keybinds.ActionPageUp:
		m.list.Page(-pageSize, pageSize)
		m.selectCursor()
	case keybinds.ActionPageDown:
		m.list.Page(pageSize, pageSize)
		m.selectCursor()
	case keybinds.ActionGoToTop:
		m.list.SetIndex(0, pageSize)
		m.selectCursor()
	case keybinds.ActionGoToBottom:
		m.list.SetIndex(m.list.Len()-1, pageSize)
		m.selectCursor()

	case keybinds.ActionOpenSearch:
		m.mode = ModeSearch
		m.searchInput.CursorEnd()
		return m.searchInput.Focus()
	case keybinds.ActionClearSearch:
		return m.clearSearch()

	case keybinds.ActionAddContact:
		return m.addContact()
	case keybinds.ActionDeleteContact:
		return m.confirmDelete()
	case keybinds.ActionEditContact:
		return m.editSelected()
	case keybinds.ActionCopyContact:
		return m.copySelected()
	case keybinds.ActionDeselect:
		m.session.Select("")

	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.updateHelpView()
		m.helpView.GotoTop()
	}

	return nil
}

// handleSearchKeys handles keys while the search field has focus.
// Every change to the text re-filters the list.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionTextSubmit, keybinds.ActionTextCancel:
			m.searchInput.Blur()
			m.mode = ModeNormal
			return nil
		case keybinds.ActionClearSearch:
			return m.clearSearch()
		}
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if query := m.searchInput.Value(); query != before {
		m.search(query)
	}
	return cmd
}

// handleEditorKeys handles keys while an editor field has focus.
// Every change to the text is written to the selected contact.
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextEditor, msg.String()); ok {
		switch action {
		case keybinds.ActionNextField:
			return m.editor.Next()
		case keybinds.ActionPrevField:
			return m.editor.Prev()
		case keybinds.ActionTextCancel:
			m.editor.Blur()
			m.mode = ModeNormal
			return nil
		}
	}

	changed, field, value, cmd := m.editor.Update(msg)
	if changed && !m.session.Edit(field, value) {
		m.log.WithField("field", field).Warn("edit dropped, no contact bound")
	}
	return cmd
}

// handleDeleteConfirmKeys handles the delete confirmation dialog
func (m *Model) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.mode = ModeNormal
		return m.deleteSelected()
	case keybinds.ActionCancel:
		m.mode = ModeNormal
		return m.setStatusMessage("Delete cancelled")
	}
	return nil
}

// handleHelpKeys handles keyboard input in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	}
	return nil
}
