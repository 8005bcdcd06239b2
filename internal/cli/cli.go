package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/contacts"
	"github.com/studiowebux/addressbook/internal/filter"
	"github.com/studiowebux/addressbook/internal/session"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Contact is the listing form of a record
type Contact struct {
	ID          string `json:"id" yaml:"id"`
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	Company     string `json:"company" yaml:"company"`
	MobilePhone string `json:"mobilePhone" yaml:"mobilePhone"`
	WorkPhone   string `json:"workPhone" yaml:"workPhone"`
	HomePhone   string `json:"homePhone" yaml:"homePhone"`
	WorkEmail   string `json:"workEmail" yaml:"workEmail"`
	HomeEmail   string `json:"homeEmail" yaml:"homeEmail"`
	Street      string `json:"street" yaml:"street"`
	City        string `json:"city" yaml:"city"`
	Zip         string `json:"zip" yaml:"zip"`
	State       string `json:"state" yaml:"state"`
	Country     string `json:"country" yaml:"country"`
}

// NewContact copies a record into its listing form
func NewContact(r *contacts.Record) Contact {
	return Contact{
		ID:          string(r.ID()),
		FirstName:   r.Get(contacts.FieldFirstName),
		LastName:    r.Get(contacts.FieldLastName),
		Company:     r.Get(contacts.FieldCompany),
		MobilePhone: r.Get(contacts.FieldMobilePhone),
		WorkPhone:   r.Get(contacts.FieldWorkPhone),
		HomePhone:   r.Get(contacts.FieldHomePhone),
		WorkEmail:   r.Get(contacts.FieldWorkEmail),
		HomeEmail:   r.Get(contacts.FieldHomeEmail),
		Street:      r.Get(contacts.FieldStreet),
		City:        r.Get(contacts.FieldCity),
		Zip:         r.Get(contacts.FieldZip),
		State:       r.Get(contacts.FieldState),
		Country:     r.Get(contacts.FieldCountry),
	}
}

// ListOptions contains options for printing generated contacts
type ListOptions struct {
	Seed   config.SeedSettings
	Search string // substring search, as in the terminal UI
	Fuzzy  string // fuzzy match on the display name, best first
	Output string // json, yaml, text
	Filter string // JMESPath filter expression
	Query  string // JMESPath query expression
	Color  string // auto, always, never
	Out    io.Writer
	Logger *logrus.Logger
}

// List seeds a session and prints its visible contacts
func List(opts ListOptions) error {
	if err := validateOutput(opts.Output); err != nil {
		return err
	}
	if err := validateColor(opts.Color); err != nil {
		return err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	records, err := Records(opts.Seed, opts.Search, opts.Fuzzy, opts.Logger)
	if err != nil {
		return err
	}

	listing := make([]Contact, len(records))
	for i, r := range records {
		listing[i] = NewContact(r)
	}

	output, err := formatOutput(listing, opts.Output, opts.Filter, opts.Query)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return writeOutput(opts.Out, output, opts.Output, opts.Color)
}

// Records seeds a throwaway session and returns the contacts left by a
// substring search or, alternatively, a fuzzy ranking
func Records(seed config.SeedSettings, search, pattern string, logger *logrus.Logger) ([]*contacts.Record, error) {
	if search != "" && pattern != "" {
		return nil, fmt.Errorf("--search and --fuzzy cannot be combined")
	}

	sess := session.New(session.Options{
		ID:     "cli",
		Seed:   seed,
		Logger: logger,
	})
	defer sess.Close()

	var records []*contacts.Record
	sess.Do(func(sess *session.Session) {
		sess.Search(search)
		for _, e := range sess.Visible() {
			records = append(records, e.Record)
		}
	})
	if pattern != "" {
		records = FuzzyRank(records, pattern)
	}
	return records, nil
}

// FuzzyRank keeps the records whose display name fuzzily matches pattern,
// best match first
func FuzzyRank(records []*contacts.Record, pattern string) []*contacts.Record {
	matches := fuzzy.FindFrom(pattern, recordNames(records))
	ranked := make([]*contacts.Record, len(matches))
	for i, m := range matches {
		ranked[i] = records[m.Index]
	}
	return ranked
}

// recordNames adapts records to fuzzy.Source
type recordNames []*contacts.Record

func (r recordNames) String(i int) string { return r[i].DisplayName() }
func (r recordNames) Len() int            { return len(r) }

func validateColor(mode string) error {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("unknown color mode %q (expected auto, always or never)", mode)
}

func validateOutput(format string) error {
	switch format {
	case "", OutputJSON, OutputYAML, OutputText:
		return nil
	}
	return fmt.Errorf("unknown output format %q (expected json, yaml or text)", format)
}

// formatOutput renders v. A JMESPath filter or query runs on the JSON form
// first; its result is then shown in the requested format, as JSON for text.
func formatOutput(v interface{}, format, filterExpr, queryExpr string) (string, error) {
	if filterExpr != "" || queryExpr != "" {
		result, err := filter.Value(v, filterExpr, queryExpr)
		if err != nil {
			return "", err
		}
		if format != OutputYAML {
			format = OutputJSON
		}
		v = result
	}

	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		return formatText(v), nil
	}
}

func formatText(v interface{}) string {
	switch v := v.(type) {
	case []Contact:
		return formatContactTable(v)
	case []HistoryEntry:
		return formatHistoryText(v)
	}
	return fmt.Sprintf("%v\n", v)
}

const (
	nameColumnWidth    = 14
	companyColumnWidth = 24
)

func formatContactTable(list []Contact) string {
	var sb strings.Builder
	sb.WriteString(runewidth.FillRight("FIRST NAME", nameColumnWidth) + "  ")
	sb.WriteString(runewidth.FillRight("LAST NAME", nameColumnWidth) + "  ")
	sb.WriteString(runewidth.FillRight("COMPANY", companyColumnWidth) + "  ")
	sb.WriteString("MOBILE PHONE\n")

	for _, c := range list {
		sb.WriteString(column(c.FirstName, nameColumnWidth))
		sb.WriteString(column(c.LastName, nameColumnWidth))
		sb.WriteString(column(c.Company, companyColumnWidth))
		sb.WriteString(c.MobilePhone)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%d contact(s)\n", len(list))
	return sb.String()
}

func column(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width) + "  "
}

// writeOutput prints output, highlighting json and yaml when color is on
func writeOutput(w io.Writer, output, format, color string) error {
	lexer := ""
	switch format {
	case OutputJSON:
		lexer = "json"
	case OutputYAML:
		lexer = "yaml"
	}

	if lexer == "" || !useColor(w, color) {
		_, err := io.WriteString(w, output)
		return err
	}

	if err := quick.Highlight(w, output, lexer, "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight output: %w", err)
	}
	return nil
}

// useColor resolves auto against whether w is a terminal
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
