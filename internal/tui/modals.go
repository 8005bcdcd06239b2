package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/addressbook/internal/keybinds"
)

// helpSections lists the actions shown in the help viewer, per context
var helpSections = []struct {
	title   string
	context keybinds.Context
	actions []keybinds.Action
}{
	{"Contact list", keybinds.ContextNormal, []keybinds.Action{
		keybinds.ActionNavigateUp,
		keybinds.ActionNavigateDown,
		keybinds.ActionPageUp,
		keybinds.ActionPageDown,
		keybinds.ActionGoToTop,
		keybinds.ActionGoToBottom,
		keybinds.ActionOpenSearch,
		keybinds.ActionClearSearch,
		keybinds.ActionAddContact,
		keybinds.ActionDeleteContact,
		keybinds.ActionEditContact,
		keybinds.ActionCopyContact,
		keybinds.ActionDeselect,
		keybinds.ActionOpenHelp,
		keybinds.ActionQuit,
	}},
	{"Search", keybinds.ContextSearch, []keybinds.Action{
		keybinds.ActionTextSubmit,
		keybinds.ActionTextCancel,
		keybinds.ActionClearSearch,
	}},
	{"Editor", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionNextField,
		keybinds.ActionPrevField,
		keybinds.ActionTextCancel,
	}},
	{"Everywhere", keybinds.ContextGlobal, []keybinds.Action{
		keybinds.ActionQuitForce,
	}},
}

// helpContent builds the keyboard shortcut listing from the active bindings
func (m *Model) helpContent() string {
	var sb strings.Builder
	for i, section := range helpSections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styleTitle.Render(section.title) + "\n")
		for _, action := range section.actions {
			keys := m.keybinds.GetBindingString(section.context, action)
			info := keybinds.GetActionInfo(action)
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", keys, info.Description))
		}
	}
	return sb.String()
}

// updateHelpView refreshes the help viewport content
func (m *Model) updateHelpView() {
	m.helpView.SetContent(m.helpContent())
}

// renderHelp renders the help screen
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := "↑/↓ j/k: scroll | ESC/?: close"

	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// renderDeleteConfirmation renders the delete confirmation dialog
func (m *Model) renderDeleteConfirmation() string {
	name := "this contact"
	if r, ok := m.session.Selected(); ok {
		name = r.DisplayName()
	}

	content := styleWarning.Render("Delete Contact") + "\n\n" +
		fmt.Sprintf("Delete %s?", name) + "\n\n" +
		styleSubtle.Render("y: delete | n/ESC: cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorRed).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}
