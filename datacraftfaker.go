// Package datacraftfaker registers the faker field type with a record
// generator and exposes one-call helpers for generating records and values.
//
// Importing this package also makes the bundled provider modules (such as
// faker_vehicle) available to the include and providers config keys.
package datacraftfaker

import (
	"context"
	"fmt"

	"github.com/bbux-dev/datacraft-faker/generate"
	"github.com/bbux-dev/datacraft-faker/logging"
	"github.com/bbux-dev/datacraft-faker/plugin"
	_ "github.com/bbux-dev/datacraft-faker/providers/vehicle"
	"github.com/bbux-dev/datacraft-faker/registry"
	"github.com/bbux-dev/datacraft-faker/types"
)

// Key is the field type name handled by this plugin.
const Key = plugin.Key

// ─── Registry API ─────────────────────────────────────────────────────

// Register adds the faker type to reg.
func Register(reg *registry.Registry, logger logging.Logger) error {
	if err := reg.Register(plugin.New(logger)); err != nil {
		return fmt.Errorf("registering %s type: %w", Key, err)
	}
	return nil
}

// NewRegistry returns a registry with the faker type registered.
func NewRegistry(logger logging.Logger) (*registry.Registry, error) {
	reg := registry.New()
	if err := Register(reg, logger); err != nil {
		return nil, err
	}
	return reg, nil
}

// ─── Generate API ─────────────────────────────────────────────────────

// Entries generates n records for a data spec using only the faker type.
func Entries(ctx context.Context, spec *types.DataSpec, n int, opts ...generate.Option) ([]generate.Record, error) {
	reg, err := NewRegistry(nil)
	if err != nil {
		return nil, err
	}
	return generate.Entries(ctx, reg, spec, n, opts...)
}

// ValuesFor generates n values for a single faker field spec.
func ValuesFor(field types.FieldSpec, n int, opts ...generate.Option) ([]any, error) {
	reg, err := NewRegistry(nil)
	if err != nil {
		return nil, err
	}
	if field.Type == "" {
		field.Type = Key
	}
	return generate.ValuesFor(reg, field, n, opts...)
}
