package contacts

import "strings"

// Filter decides which records a Store read returns
type Filter interface {
	// Matches reports whether the record passes the filter
	Matches(r *Record) bool

	// AppliesTo reports whether a change to field f can change the result
	AppliesTo(f Field) bool
}

// FilterFunc adapts a plain predicate. It applies to every field.
type FilterFunc func(r *Record) bool

func (fn FilterFunc) Matches(r *Record) bool { return fn(r) }

func (fn FilterFunc) AppliesTo(Field) bool { return true }

// SubstringFilter matches a query against first name, last name and company
type SubstringFilter struct {
	query  string
	needle string
}

// NewSubstringFilter folds the query once
func NewSubstringFilter(query string) *SubstringFilter {
	return &SubstringFilter{
		query:  query,
		needle: strings.ToLower(query),
	}
}

// Query returns the query as it was given
func (f *SubstringFilter) Query() string {
	if f == nil {
		return ""
	}
	return f.query
}

// Matches checks the concatenated current values of the three name fields.
// An empty query, or a nil filter, matches everything.
func (f *SubstringFilter) Matches(r *Record) bool {
	if f == nil {
		return true
	}
	haystack := strings.ToLower(r.Get(FieldFirstName) + r.Get(FieldLastName) + r.Get(FieldCompany))
	return strings.Contains(haystack, f.needle)
}

// AppliesTo is true for every field even though only three are compared
func (f *SubstringFilter) AppliesTo(Field) bool {
	return true
}
