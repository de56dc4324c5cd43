package plugin

import (
	"github.com/bbux-dev/datacraft-faker/faker"
	"github.com/bbux-dev/datacraft-faker/types"
)

// LoadProviders extends f with the provider modules named in config.
//
// Under include every provider of each named module is added. Under
// providers each entry is a single {module: provider} mapping naming the one
// provider taken from that module. The
// two keys are mutually exclusive. Unknown modules and providers are
// reported with the faker package's errors as they are.
func LoadProviders(config map[string]any, f *faker.Faker) error {
	include, hasInclude := config[IncludeKey]
	explicit, hasProviders := config[ProvidersKey]

	switch {
	case hasInclude && hasProviders:
		return types.NewSpecError("", "only one of %s or %s may be configured", IncludeKey, ProvidersKey)
	case hasInclude:
		return includeModules(include, f)
	case hasProviders:
		return addProviders(explicit, f)
	}
	return nil
}

func includeModules(raw any, f *faker.Faker) error {
	names, ok := moduleNames(raw)
	if !ok {
		return types.NewSpecError("", "include config must be a single or list of module names to import as provider")
	}
	for _, name := range names {
		mod, err := faker.ImportModule(name)
		if err != nil {
			return err
		}
		for _, p := range mod.Providers() {
			f.AddProvider(p)
		}
	}
	return nil
}

func moduleNames(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		names := make([]string, 0, len(v))
		for _, entry := range v {
			name, ok := entry.(string)
			if !ok {
				return nil, false
			}
			names = append(names, name)
		}
		return names, true
	}
	return nil, false
}

type providerRef struct {
	module   string
	provider string
}

func addProviders(raw any, f *faker.Faker) error {
	refs, ok := providerRefs(raw)
	if !ok {
		return types.NewSpecError("", "providers config must be a list of {module: provider} mappings")
	}
	for _, ref := range refs {
		mod, err := faker.ImportModule(ref.module)
		if err != nil {
			return err
		}
		p, err := mod.Provider(ref.provider)
		if err != nil {
			return err
		}
		f.AddProvider(p)
	}
	return nil
}

func providerRefs(raw any) ([]providerRef, bool) {
	var entries []map[string]any
	switch v := raw.(type) {
	case []map[string]any:
		entries = v
	case []map[string]string:
		for _, m := range v {
			entry := make(map[string]any, len(m))
			for k, val := range m {
				entry[k] = val
			}
			entries = append(entries, entry)
		}
	case []any:
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			entries = append(entries, m)
		}
	default:
		return nil, false
	}

	refs := make([]providerRef, 0, len(entries))
	for _, m := range entries {
		if len(m) != 1 {
			return nil, false
		}
		for module, v := range m {
			name, ok := v.(string)
			if !ok {
				return nil, false
			}
			refs = append(refs, providerRef{module: module, provider: name})
		}
	}
	return refs, true
}
