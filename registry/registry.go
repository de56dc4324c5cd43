// Package registry is the host side of the type plugin contract: the
// interfaces a field type implements and the registry that dispatches field
// specs to them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bbux-dev/datacraft-faker/types"
	"github.com/bbux-dev/datacraft-faker/validate"
)

// ValueSupplier produces the value of one field for each generation
// iteration.
type ValueSupplier interface {
	Next(iteration int) (any, error)
}

// Loader gives type plugins access to the data spec being generated.
type Loader interface {
	// GetRef returns the ref declared under name.
	GetRef(name string) (types.FieldSpec, bool)
}

// TypePlugin is the interface every field type must implement.
type TypePlugin interface {
	// Name returns the type key field specs use to select the plugin.
	Name() string
	// Schema returns the JSON schema field specs of this type must satisfy.
	Schema() []byte
	// Supplier builds the value supplier for a field spec.
	Supplier(field types.FieldSpec, loader Loader) (ValueSupplier, error)
	// Usage returns human readable usage text with an example.
	Usage() string
}

// Registry stores registered type plugins and provides lookup. It is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]TypePlugin
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{plugins: make(map[string]TypePlugin)}
}

// Register adds a plugin to the registry. It returns an error if a plugin
// with the same name is already registered.
func (r *Registry) Register(p TypePlugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[p.Name()]; exists {
		return fmt.Errorf("type %q already registered", p.Name())
	}
	r.plugins[p.Name()] = p
	return nil
}

// Get returns a plugin by name, or nil if not found.
func (r *Registry) Get(name string) TypePlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.plugins[name]
}

// List returns the names of all registered plugins, sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks a field spec against the schema of its type.
func (r *Registry) Validate(field types.FieldSpec) error {
	p, err := r.lookup(field)
	if err != nil {
		return err
	}
	errs, err := validate.ValidateFieldSpec(p.Schema(), field)
	if err != nil {
		return fmt.Errorf("type %q: %w", field.Type, err)
	}
	if len(errs) > 0 {
		return &ValidationError{Field: field.Name, Type: field.Type, Errors: errs}
	}
	return nil
}

// Supplier dispatches a field spec to the plugin registered for its type.
func (r *Registry) Supplier(field types.FieldSpec, loader Loader) (ValueSupplier, error) {
	p, err := r.lookup(field)
	if err != nil {
		return nil, err
	}
	return p.Supplier(field, loader)
}

func (r *Registry) lookup(field types.FieldSpec) (TypePlugin, error) {
	if field.Type == "" {
		return nil, types.NewSpecError(field.Name, "type is required")
	}
	p := r.Get(field.Type)
	if p == nil {
		return nil, types.NewSpecError(field.Name, "unknown type %q (registered: %v)", field.Type, r.List())
	}
	return p, nil
}
