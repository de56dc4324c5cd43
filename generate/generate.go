// Package generate drives record generation over a data spec: one value
// supplier per field, called once per iteration.
package generate

import (
	"context"
	"fmt"

	"github.com/bbux-dev/datacraft-faker/logging"
	"github.com/bbux-dev/datacraft-faker/registry"
	"github.com/bbux-dev/datacraft-faker/types"
)

// Record is one generated entry keyed by field name.
type Record map[string]any

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used while building suppliers.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) { g.logger = logging.OrNop(l) }
}

// WithStrict validates every field spec against its type's schema before
// building its supplier.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// Generator produces records for a data spec.
type Generator struct {
	fields    []string
	suppliers []registry.ValueSupplier
	logger    logging.Logger
	strict    bool
}

// New builds a supplier for every field in spec. It fails on the first
// field whose supplier cannot be built.
func New(reg *registry.Registry, spec *types.DataSpec, opts ...Option) (*Generator, error) {
	g := &Generator{logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(g)
	}

	loader := specLoader{spec: spec}
	for _, field := range spec.Fields {
		s, err := g.supplier(reg, field, loader)
		if err != nil {
			return nil, err
		}
		g.fields = append(g.fields, field.Name)
		g.suppliers = append(g.suppliers, s)
	}
	g.logger.Info("generator ready", map[string]any{"fields": len(g.fields)})
	return g, nil
}

func (g *Generator) supplier(reg *registry.Registry, field types.FieldSpec, loader registry.Loader) (registry.ValueSupplier, error) {
	if g.strict {
		if err := reg.Validate(field); err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	s, err := reg.Supplier(field, loader)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}
	g.logger.Debug("supplier built", map[string]any{"field": field.Name, "type": field.Type})
	return s, nil
}

// Fields returns the field names in declaration order.
func (g *Generator) Fields() []string {
	return append([]string(nil), g.fields...)
}

// Record generates the entry for one iteration.
func (g *Generator) Record(iteration int) (Record, error) {
	rec := make(Record, len(g.fields))
	for i, s := range g.suppliers {
		v, err := s.Next(iteration)
		if err != nil {
			return nil, fmt.Errorf("field %s iteration %d: %w", g.fields[i], iteration, err)
		}
		rec[g.fields[i]] = v
	}
	return rec, nil
}

// Entries generates n records. It stops early when ctx is cancelled.
func (g *Generator) Entries(ctx context.Context, n int) ([]Record, error) {
	records := make([]Record, 0, max(n, 0))
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return records, fmt.Errorf("generation cancelled before iteration %d: %w", i, err)
		}
		rec, err := g.Record(i)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Entries generates n records for spec.
func Entries(ctx context.Context, reg *registry.Registry, spec *types.DataSpec, n int, opts ...Option) ([]Record, error) {
	g, err := New(reg, spec, opts...)
	if err != nil {
		return nil, err
	}
	return g.Entries(ctx, n)
}

// ValuesFor generates n values for a single field spec.
func ValuesFor(reg *registry.Registry, field types.FieldSpec, n int, opts ...Option) ([]any, error) {
	g, err := New(reg, &types.DataSpec{Fields: []types.FieldSpec{field}}, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, max(n, 0))
	for i := 0; i < n; i++ {
		v, err := g.suppliers[0].Next(i)
		if err != nil {
			return values, fmt.Errorf("field %s iteration %d: %w", field.Name, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// specLoader serves refs from the data spec being generated.
type specLoader struct {
	spec *types.DataSpec
}

func (l specLoader) GetRef(name string) (types.FieldSpec, bool) {
	return l.spec.Ref(name)
}
