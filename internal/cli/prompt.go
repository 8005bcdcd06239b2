package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/addressbook/internal/contacts"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	companyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

// ErrPickCancelled is returned when the picker is closed without a choice
var ErrPickCancelled = errors.New("selection cancelled")

type item struct {
	record *contacts.Record
}

func (i item) FilterValue() string {
	return i.record.DisplayName() + " " + i.record.Get(contacts.FieldCompany)
}

func (i item) Title() string {
	title := i.record.DisplayName()
	if company := i.record.Get(contacts.FieldCompany); company != "" && company != title {
		title += " " + companyStyle.Render("("+company+")")
	}
	return title
}

func (i item) Description() string { return "" }

type pickerModel struct {
	list     list.Model
	choice   *contacts.Record
	quitting bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is open, keys belong to the list
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.choice = nil
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = i.record
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • /: filter • enter: select • q/esc: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

func newPickerModel(records []*contacts.Record) pickerModel {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = item{record: r}
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Select a contact"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return pickerModel{list: l}
}

// Pick shows an interactive list of records and returns the chosen one
func Pick(records []*contacts.Record, opts ...tea.ProgramOption) (*contacts.Record, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no contacts to pick from")
	}

	p := tea.NewProgram(newPickerModel(records), opts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running picker: %w", err)
	}

	result := finalModel.(pickerModel)
	if result.choice == nil {
		return nil, ErrPickCancelled
	}
	return result.choice, nil
}

// itemDelegate renders one contact per line
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}
