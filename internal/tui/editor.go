package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/addressbook/internal/contacts"
)

// fieldInput is a single-line editor control bound to one contact field
type fieldInput struct {
	field   contacts.Field
	label   string
	input   textinput.Model
	visible bool
}

func newFieldInput(spec contacts.FieldSpec) *fieldInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = spec.Label
	ti.CharLimit = EditorCharLimit
	ti.Width = EditorInputWidth
	return &fieldInput{field: spec.Field, label: spec.Label, input: ti}
}

// SetValue shows the bound record's value
func (f *fieldInput) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

// Clear empties the control
func (f *fieldInput) Clear() {
	f.input.Reset()
}

// SetVisible shows or hides the control; hidden controls lose focus
func (f *fieldInput) SetVisible(visible bool) {
	f.visible = visible
	if !visible {
		f.input.Blur()
	}
}

// EditorState is the contact editor: one input per schema field, in
// schema order, with at most one focused
type EditorState struct {
	fields []*fieldInput
	focus  int
}

// NewEditorState creates hidden inputs for every schema field
func NewEditorState() *EditorState {
	e := &EditorState{}
	for _, spec := range contacts.Schema {
		e.fields = append(e.fields, newFieldInput(spec))
	}
	return e
}

// Bind attaches every input to the binder
func (e *EditorState) Bind(b *contacts.Binder) error {
	for _, f := range e.fields {
		if err := b.Bind(f.field, f); err != nil {
			return err
		}
	}
	return nil
}

// Visible reports whether a contact is loaded into the editor
func (e *EditorState) Visible() bool {
	return len(e.fields) > 0 && e.fields[0].visible
}

// Focus moves the cursor into the i-th input
func (e *EditorState) Focus(i int) tea.Cmd {
	if len(e.fields) == 0 {
		return nil
	}
	e.Blur()
	e.focus = (i%len(e.fields) + len(e.fields)) % len(e.fields)
	return e.fields[e.focus].input.Focus()
}

// Blur removes the cursor from every input
func (e *EditorState) Blur() {
	for _, f := range e.fields {
		f.input.Blur()
	}
}

// Next focuses the following input (wraps around)
func (e *EditorState) Next() tea.Cmd {
	return e.Focus(e.focus + 1)
}

// Prev focuses the preceding input (wraps around)
func (e *EditorState) Prev() tea.Cmd {
	return e.Focus(e.focus - 1)
}

// FocusedField returns the field of the focused input
func (e *EditorState) FocusedField() contacts.Field {
	return e.fields[e.focus].field
}

// FocusIndex returns the position of the focused input
func (e *EditorState) FocusIndex() int {
	return e.focus
}

// Value returns what an input currently displays
func (e *EditorState) Value(field contacts.Field) string {
	for _, f := range e.fields {
		if f.field == field {
			return f.input.Value()
		}
	}
	return ""
}

// Update forwards a message to the focused input. changed reports whether
// the input's text was modified.
func (e *EditorState) Update(msg tea.Msg) (changed bool, field contacts.Field, value string, cmd tea.Cmd) {
	f := e.fields[e.focus]
	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	after := f.input.Value()
	return after != before, f.field, after, cmd
}

// SetWidth resizes every input
func (e *EditorState) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	for _, f := range e.fields {
		f.input.Width = width
	}
}
