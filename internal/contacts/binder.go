package contacts

// Widget is an editable control owned by a UI layer
type Widget interface {
	SetValue(value string)
	Clear()
	SetVisible(visible bool)
}

type binding struct {
	field  Field
	widget Widget
}

// Binder connects an ordered list of fields to the record chosen as source.
// Edits write through to the store immediately; there is no commit step.
type Binder struct {
	store    *Store
	bindings []*binding
	byField  map[Field]*binding
	source   ID
}

// NewBinder creates a binder for the given fields, in order.
// Fields outside the schema, or listed twice, are a *ConfigError.
func NewBinder(store *Store, fields ...Field) (*Binder, error) {
	b := &Binder{
		store:   store,
		byField: make(map[Field]*binding, len(fields)),
	}

	for _, f := range fields {
		if !f.Valid() {
			return nil, &ConfigError{Field: f, Err: ErrUnknownField}
		}
		if _, dup := b.byField[f]; dup {
			return nil, &ConfigError{Field: f, Err: ErrDuplicateField}
		}
		bd := &binding{field: f}
		b.bindings = append(b.bindings, bd)
		b.byField[f] = bd
	}

	return b, nil
}

// NewSchemaBinder binds every schema field in schema order
func NewSchemaBinder(store *Store) *Binder {
	b, err := NewBinder(store, Fields()...)
	if err != nil {
		// schema fields are valid and unique by construction
		panic(err)
	}
	return b
}

// Bind attaches a widget to one of the binder's fields. The widget is
// synchronised with the current source right away.
func (b *Binder) Bind(f Field, w Widget) error {
	if !f.Valid() {
		return &ConfigError{Field: f, Err: ErrUnknownField}
	}
	bd, ok := b.byField[f]
	if !ok {
		return &ConfigError{Field: f, Err: ErrNotBound}
	}

	bd.widget = w
	if r, ok := b.sourceRecord(); ok {
		w.SetValue(r.Get(f))
		w.SetVisible(true)
	} else {
		w.Clear()
		w.SetVisible(false)
	}
	return nil
}

// Fields returns the bound fields in order
func (b *Binder) Fields() []Field {
	fields := make([]Field, len(b.bindings))
	for i, bd := range b.bindings {
		fields[i] = bd.field
	}
	return fields
}

// SetSource points every binding at the record with the given identity.
// An empty or unknown id clears and hides all widgets.
func (b *Binder) SetSource(id ID) {
	r, ok := b.store.Get(id)
	if !ok {
		b.source = ""
		for _, bd := range b.bindings {
			if bd.widget != nil {
				bd.widget.Clear()
				bd.widget.SetVisible(false)
			}
		}
		return
	}

	b.source = id
	for _, bd := range b.bindings {
		if bd.widget != nil {
			bd.widget.SetValue(r.Get(bd.field))
			bd.widget.SetVisible(true)
		}
	}
}

// Source returns the bound record identity
func (b *Binder) Source() (ID, bool) {
	return b.source, b.source != ""
}

// Edit forwards a widget edit to the source record.
// It is a no-op when there is no source, the source is gone, or f is not bound.
func (b *Binder) Edit(f Field, value string) bool {
	if b.source == "" {
		return false
	}
	if _, ok := b.byField[f]; !ok {
		return false
	}
	return b.store.SetField(b.source, f, value)
}

// Values returns the bound fields with the source's values, or nil when
// there is no source
func (b *Binder) Values() []FieldValue {
	r, ok := b.sourceRecord()
	if !ok {
		return nil
	}

	values := make([]FieldValue, len(b.bindings))
	for i, bd := range b.bindings {
		values[i] = FieldValue{Field: bd.field, Value: r.Get(bd.field)}
	}
	return values
}

func (b *Binder) sourceRecord() (*Record, bool) {
	if b.source == "" {
		return nil, false
	}
	return b.store.Get(b.source)
}
