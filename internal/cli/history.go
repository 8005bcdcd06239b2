package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/studiowebux/addressbook/internal/history"
)

// HistoryEntry is a journal line as printed by the history command
type HistoryEntry = history.Entry

// HistoryStore is the part of *history.Manager the history command uses
type HistoryStore interface {
	Load(limit int) ([]history.Entry, error)
	Clear() error
}

// HistoryOptions contains options for the history command
type HistoryOptions struct {
	Limit  int
	Clear  bool
	Output string
	Query  string // JMESPath query expression
	Color  string
	Out    io.Writer
}

// History prints or clears the activity journal
func History(store HistoryStore, opts HistoryOptions) error {
	if err := validateOutput(opts.Output); err != nil {
		return err
	}
	if err := validateColor(opts.Color); err != nil {
		return err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Clear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(opts.Out, "History cleared")
		return nil
	}

	entries, err := store.Load(opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	output, err := formatOutput(entries, opts.Output, "", opts.Query)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return writeOutput(opts.Out, output, opts.Output, opts.Color)
}

func formatHistoryText(entries []HistoryEntry) string {
	if len(entries) == 0 {
		return "No history\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-8s  %-9s", e.Timestamp.Format("2006-01-02 15:04:05"), shortID(e.SessionID), e.Kind)
		if e.RecordID != "" {
			line += "  " + shortID(e.RecordID)
		}
		if e.Field != "" {
			line += fmt.Sprintf("  %s=%q", e.Field, e.Value)
		} else if e.Value != "" {
			line += fmt.Sprintf("  %q", e.Value)
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String()
}

// shortID keeps the first block of a uuid
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
