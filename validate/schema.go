// Package validate provides JSON Schema validation for field specs.
package validate

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bbux-dev/datacraft-faker/types"
)

var (
	compiledMu sync.Mutex
	compiled   = make(map[[sha256.Size]byte]*gojsonschema.Schema)
)

func getSchema(schema []byte) (*gojsonschema.Schema, error) {
	key := sha256.Sum256(schema)

	compiledMu.Lock()
	defer compiledMu.Unlock()
	if s, ok := compiled[key]; ok {
		return s, nil
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, err
	}
	compiled[key] = s
	return s, nil
}

// ValidateFieldSpec validates a field spec against a JSON schema. It returns
// a slice of validation error descriptions and an error if schema
// compilation fails. Compiled schemas are cached by content.
func ValidateFieldSpec(schema []byte, field types.FieldSpec) ([]string, error) {
	s, err := getSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("compiling field schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(field.ToMap()))
	if err != nil {
		return nil, fmt.Errorf("validating field spec: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
