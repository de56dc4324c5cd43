// Package plugin implements the faker field type: a field spec names a
// faking method by dotted path, and each generation iteration calls it for a
// fresh value.
package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bbux-dev/datacraft-faker/faker"
	"github.com/bbux-dev/datacraft-faker/locales"
	"github.com/bbux-dev/datacraft-faker/logging"
	"github.com/bbux-dev/datacraft-faker/registry"
	"github.com/bbux-dev/datacraft-faker/schemas"
	"github.com/bbux-dev/datacraft-faker/types"
)

// Key is the type name field specs use to select this plugin.
const Key = "faker"

// Config keys understood by the plugin.
const (
	LocaleKey    = "locale"
	IncludeKey   = "include"
	ProvidersKey = "providers"
	SeedKey      = "seed"
)

// Plugin is the faker type plugin.
type Plugin struct {
	logger logging.Logger
}

// New creates the plugin. A nil logger discards all output.
func New(logger logging.Logger) *Plugin {
	return &Plugin{logger: logging.OrNop(logger)}
}

var _ registry.TypePlugin = (*Plugin)(nil)

// Name returns the type key.
func (p *Plugin) Name() string { return Key }

// Schema returns the JSON schema for faker field specs.
func (p *Plugin) Schema() []byte { return schemas.FakerSchema }

// Supplier builds a supplier that calls the faking method named by the
// field's data. When data is absent the field name is used as the method
// path.
func (p *Plugin) Supplier(field types.FieldSpec, loader registry.Loader) (registry.ValueSupplier, error) {
	path, err := methodPath(field)
	if err != nil {
		return nil, err
	}
	config, err := registry.LoadConfig(field, loader)
	if err != nil {
		return nil, err
	}
	f, err := NewFaker(field.Name, config)
	if err != nil {
		return nil, err
	}
	if err := LoadProviders(config, f); err != nil {
		var specErr *types.SpecError
		if errors.As(err, &specErr) && specErr.Field == "" {
			specErr.Field = field.Name
		}
		return nil, err
	}
	fn, err := ResolveMethod(f, path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("faker supplier ready", map[string]any{
		"field":     field.Name,
		"method":    path,
		"locales":   f.Locales(),
		"providers": f.Providers(),
	})
	return &Supplier{fn: fn}, nil
}

func methodPath(field types.FieldSpec) (string, error) {
	if !field.HasData() {
		if field.Name == "" {
			return "", types.NewSpecError(field.Name, "data field as string is required for faker spec: %s", field)
		}
		return field.Name, nil
	}
	path, ok := field.Data.(string)
	if !ok {
		return "", types.NewSpecError(field.Name, "data field as string is required for faker spec: %s", field)
	}
	return path, nil
}

// NewFaker builds the engine a field's config describes: its locales and
// optional seed.
func NewFaker(field string, config map[string]any) (*faker.Faker, error) {
	codes, err := localesFrom(field, config)
	if err != nil {
		return nil, err
	}
	opts := []faker.Option{faker.WithLocales(codes...)}

	if raw, ok := config[SeedKey]; ok {
		seed, ok := asInt64(raw)
		if !ok {
			return nil, types.NewSpecError(field, "seed must be an integer, got %T %q", raw, fmt.Sprint(raw))
		}
		opts = append(opts, faker.WithSeed(seed))
	}

	f, err := faker.New(opts...)
	if errors.Is(err, faker.ErrUnknownLocale) {
		return nil, types.NewSpecError(field, "%v", err)
	}
	return f, err
}

func localesFrom(field string, config map[string]any) ([]string, error) {
	raw, ok := config[LocaleKey]
	if !ok {
		return []string{locales.Default}, nil
	}
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		if len(v) > 0 {
			return v, nil
		}
	case []any:
		codes := make([]string, 0, len(v))
		for _, entry := range v {
			code, ok := entry.(string)
			if !ok {
				return nil, types.NewSpecError(field, "locale must be a string or list of strings")
			}
			codes = append(codes, code)
		}
		if len(codes) > 0 {
			return codes, nil
		}
	}
	return nil, types.NewSpecError(field, "locale must be a string or list of strings")
}

// asInt64 accepts the integer shapes YAML and JSON decoding produce, and
// the decimal strings field key params carry.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}
