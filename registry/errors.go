package registry

import (
	"fmt"
	"strings"

	"github.com/bbux-dev/datacraft-faker/types"
)

// ValidationError reports the schema violations of one field spec.
type ValidationError struct {
	Field  string
	Type   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q of type %q failed validation: %s", e.Field, e.Type, strings.Join(e.Errors, "; "))
}

// Unwrap lets errors.As match schema violations as spec errors.
func (e *ValidationError) Unwrap() error {
	return types.NewSpecError(e.Field, "%s", strings.Join(e.Errors, "; "))
}
