package types

import "fmt"

// SpecError reports a malformed field or data spec.
type SpecError struct {
	Field string
	Msg   string
}

// NewSpecError creates a SpecError for the named field. field may be empty.
func NewSpecError(field, format string, args ...any) *SpecError {
	return &SpecError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func (e *SpecError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Msg)
}
