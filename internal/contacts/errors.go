package contacts

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when binding a field outside the schema
	ErrUnknownField = errors.New("unknown field")

	// ErrNotBound is returned when attaching a widget to a field the binder does not hold
	ErrNotBound = errors.New("field not bound")

	// ErrDuplicateField is returned when a binder lists the same field twice
	ErrDuplicateField = errors.New("field bound twice")
)

// ConfigError reports a binder set up with a bad field list
type ConfigError struct {
	Field Field
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("binder configuration: field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
