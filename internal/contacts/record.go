package contacts

import "strings"

// ID identifies a record within its store. The empty ID means "no record".
type ID string

// FieldValue pairs a field with its current text
type FieldValue struct {
	Field Field
	Value string
}

// Record is a single address book entry
type Record struct {
	id     ID
	values map[Field]string
}

// newRecord builds a record with every schema field populated.
// Keys outside the schema are dropped.
func newRecord(id ID, fields map[Field]string) *Record {
	r := &Record{
		id:     id,
		values: make(map[Field]string, len(Schema)),
	}
	for _, spec := range Schema {
		r.values[spec.Field] = fields[spec.Field]
	}
	return r
}

// ID returns the record identity
func (r *Record) ID() ID {
	return r.id
}

// Get returns the current value of a field ("" for unknown fields)
func (r *Record) Get(f Field) string {
	return r.values[f]
}

// Set writes a field directly, without notifying the store.
// Returns false if f is not a schema field.
func (r *Record) Set(f Field, value string) bool {
	if !f.Valid() {
		return false
	}
	r.values[f] = value
	return true
}

// Values returns every field in schema order
func (r *Record) Values() []FieldValue {
	values := make([]FieldValue, len(Schema))
	for i, spec := range Schema {
		values[i] = FieldValue{Field: spec.Field, Value: r.values[spec.Field]}
	}
	return values
}

// Map returns a copy of the field values keyed by field
func (r *Record) Map() map[Field]string {
	m := make(map[Field]string, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// DisplayName joins first and last name, falling back to the company
func (r *Record) DisplayName() string {
	name := strings.TrimSpace(r.values[FieldFirstName] + " " + r.values[FieldLastName])
	if name == "" {
		return r.values[FieldCompany]
	}
	return name
}

// Card renders every non-empty field as "Label: value" lines
func (r *Record) Card() string {
	var lines []string
	for _, fv := range r.Values() {
		if fv.Value != "" {
			lines = append(lines, fv.Field.Label()+": "+fv.Value)
		}
	}
	return strings.Join(lines, "\n")
}
