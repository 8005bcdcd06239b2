package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/keybinds"
	"github.com/studiowebux/addressbook/internal/session"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeEditor
	ModeConfirmDelete
	ModeHelp
)

// context returns the keybinding context that is active in a mode
func (m Mode) context() keybinds.Context {
	switch m {
	case ModeSearch:
		return keybinds.ContextSearch
	case ModeEditor:
		return keybinds.ContextEditor
	case ModeConfirmDelete:
		return keybinds.ContextConfirm
	case ModeHelp:
		return keybinds.ContextHelp
	default:
		return keybinds.ContextNormal
	}
}

// Model represents the TUI state
type Model struct {
	// Core state
	session  *session.Session
	keybinds *keybinds.Registry
	log      *logrus.Entry
	mode     Mode

	// Contact list and search
	list        *ContactListState
	searchInput textinput.Model

	// Editor
	editor *EditorState

	// Help viewer
	helpView viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string

	// copyToClipboard is swapped out in tests
	copyToClipboard func(string) error

	unsubscribe func()
}

// New creates a TUI model over a session. A nil registry uses the default
// keybindings.
func New(sess *session.Session, registry *keybinds.Registry, logger *logrus.Logger) (*Model, error) {
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Filter by name or company..."
	search.CharLimit = EditorCharLimit

	m := &Model{
		session:         sess,
		keybinds:        registry,
		log:             logger.WithField("session", sess.ID()),
		mode:            ModeNormal,
		list:            NewContactListState(),
		searchInput:     search,
		editor:          NewEditorState(),
		helpView:        viewport.New(80, 20),
		copyToClipboard: writeClipboard,
	}

	if err := m.editor.Bind(sess.Binder()); err != nil {
		return nil, err
	}

	m.unsubscribe = sess.Subscribe(m.onChange)
	m.refreshList()

	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeConfirmDelete:
		return m.renderDeleteConfirmation()
	default:
		return m.renderMain()
	}
}

// Cleanup detaches the model from the session
func (m *Model) Cleanup() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// onChange keeps the list in step with the session
func (m *Model) onChange(c session.Change) {
	switch c.Kind {
	case session.ChangeSelected:
		m.syncSelection(c.ID)
	case string(contacts.EventField):
		// rows hold record pointers, so only membership changes need a refresh
		if c.Refilter {
			m.refreshList()
		}
	default:
		m.refreshList()
	}
}

// refreshList reloads the visible rows from the store
func (m *Model) refreshList() {
	m.list.SetEntries(m.session.Visible(), m.listPageSize())
}

// syncSelection moves the cursor onto a newly selected contact and leaves
// the editor when the selection is cleared
func (m *Model) syncSelection(id contacts.ID) {
	if id == "" {
		if m.mode == ModeEditor {
			m.editor.Blur()
			m.mode = ModeNormal
		}
		return
	}
	if idx := m.list.IndexOf(id); idx >= 0 {
		m.list.SetIndex(idx, m.listPageSize())
	}
}

// listPageSize returns how many contact rows fit on screen
func (m *Model) listPageSize() int {
	size := m.height - ContentOffsetList
	if size < 1 {
		size = 1
	}
	return size
}

// updateLayout resizes inputs and viewports after a window change
func (m *Model) updateLayout() {
	listWidth, editorWidth := m.paneWidths()
	m.searchInput.Width = listWidth - 6
	m.editor.SetWidth(editorWidth - EditorLabelWidth - 6)

	m.helpView.Width = m.width - HelpViewWidthOffset
	m.helpView.Height = m.height - ContentOffsetHelp
	m.updateHelpView()

	m.list.SetIndex(m.list.GetCurrentIndex(), m.listPageSize())
}

// paneWidths splits the screen between the list and the editor
func (m *Model) paneWidths() (list, editor int) {
	list = int(float64(m.width) * ListWidthRatio)
	if list < MinListWidth {
		list = MinListWidth
	}
	if list > m.width-2 {
		list = m.width - 2
	}
	editor = m.width - list - 4
	if editor < 0 {
		editor = 0
	}
	return list, editor
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

// Helper methods for setting messages with a timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)
	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func truncateMessage(msg string) string {
	if len(msg) > StatusMaxLength {
		return msg[:StatusMaxLength-3] + "..."
	}
	return msg
}
