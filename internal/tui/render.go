package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/addressbook/internal/contacts"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the contact list, the editor and the status bar
func (m *Model) renderMain() string {
	listWidth, editorWidth := m.paneWidths()
	paneHeight := m.height - 3 // -1 status, -2 borders

	listBorder := colorGray
	editorBorder := colorGray
	switch m.mode {
	case ModeEditor:
		editorBorder = colorGreen
	default:
		listBorder = colorGreen
	}

	listBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(listBorder).
		Width(listWidth).
		Height(paneHeight).
		Render(m.renderContactList(listWidth - 2))

	editorBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(editorBorder).
		Width(editorWidth).
		Height(paneHeight).
		Render(m.renderEditor())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, listBox, editorBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// renderContactList renders the search field and the visible rows
func (m *Model) renderContactList(width int) string {
	var lines []string

	entries := m.list.GetEntries()
	title := fmt.Sprintf("Contacts (%d/%d)", len(entries), m.session.Store().Len())
	lines = append(lines, styleTitle.Render(title))

	if m.mode == ModeSearch || m.searchInput.Value() != "" {
		lines = append(lines, m.searchInput.View())
	} else {
		lines = append(lines, styleSubtle.Render("Press / to search"))
	}

	companyWidth := width - ColumnFirstNameWidth - ColumnLastNameWidth - 2
	if companyWidth < 1 {
		companyWidth = 1
	}
	lines = append(lines, styleHeader.Render(formatRow(
		[]string{"First Name", "Last Name", "Company"},
		[]int{ColumnFirstNameWidth, ColumnLastNameWidth, companyWidth},
	)))

	if len(entries) == 0 {
		lines = append(lines, styleSubtle.Render("No contacts"))
		return strings.Join(lines, "\n")
	}

	selected, hasSelection := m.session.Selection().Selected()
	cursor := m.list.GetCurrentIndex()
	offset := m.list.GetScrollOffset()
	end := offset + m.listPageSize()
	if end > len(entries) {
		end = len(entries)
	}

	for i := offset; i < end; i++ {
		r := entries[i].Record
		row := formatRow(
			[]string{
				r.Get(contacts.FieldFirstName),
				r.Get(contacts.FieldLastName),
				r.Get(contacts.FieldCompany),
			},
			[]int{ColumnFirstNameWidth, ColumnLastNameWidth, companyWidth},
		)
		switch {
		case i == cursor:
			row = styleSelected.Render(row)
		case hasSelection && entries[i].ID == selected:
			row = styleSuccess.Render(row)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// renderEditor renders one labelled input per field, or a hint when no
// contact is selected
func (m *Model) renderEditor() string {
	lines := []string{styleTitle.Render("Contact"), ""}

	if !m.editor.Visible() {
		lines = append(lines, styleSubtle.Render("Select a contact to edit it"))
		return strings.Join(lines, "\n")
	}

	for i, f := range m.editor.fields {
		label := runewidth.FillRight(f.label, EditorLabelWidth)
		if m.mode == ModeEditor && i == m.editor.FocusIndex() {
			label = styleSelected.Render(label)
		} else {
			label = styleSubtle.Render(label)
		}
		lines = append(lines, label+" "+f.input.View())
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the footer
func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf("Mode: %s", m.modeName())
	if q := m.session.Query(); q != "" {
		left += styleWarning.Render(fmt.Sprintf(" | Filter: %q", q))
	}

	right := ""
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	default:
		right = styleSubtle.Render("a add | D delete | / search | ? help | q quit")
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

func (m *Model) modeName() string {
	switch m.mode {
	case ModeSearch:
		return "search"
	case ModeEditor:
		return "edit"
	case ModeConfirmDelete:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "list"
	}
}

// formatRow pads or truncates each cell to its column width
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = runewidth.FillRight(runewidth.Truncate(cell, widths[i], "…"), widths[i])
	}
	return strings.Join(parts, " ")
}
