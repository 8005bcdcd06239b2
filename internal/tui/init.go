package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/keybinds"
	"github.com/studiowebux/addressbook/internal/session"
)

// Options configures the terminal UI
type Options struct {
	Settings config.Settings
	Keybinds *keybinds.Registry // defaults when nil
	Journal  session.Journal    // optional
	Logger   *logrus.Logger
}

// Run starts the TUI with a freshly seeded session and blocks until the
// user quits
func Run(opts Options) error {
	sess := session.New(session.Options{
		Seed:    opts.Settings.Seed,
		Journal: opts.Journal,
		Logger:  opts.Logger,
	})
	defer sess.Close()

	m, err := New(sess, opts.Keybinds, opts.Logger)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
