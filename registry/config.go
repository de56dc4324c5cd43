package registry

import (
	"maps"

	"github.com/bbux-dev/datacraft-faker/types"
)

// ConfigRefKey names the config key pointing at a ref whose config is
// merged into the field's own config.
const ConfigRefKey = "config_ref"

// LoadConfig returns the effective config of a field: a copy of its own
// config with the config of the ref named by config_ref merged underneath.
// Keys set on the field win over keys from the ref.
func LoadConfig(field types.FieldSpec, loader Loader) (map[string]any, error) {
	config := make(map[string]any, len(field.Config))
	maps.Copy(config, field.Config)

	raw, ok := config[ConfigRefKey]
	if !ok {
		return config, nil
	}
	refName, ok := raw.(string)
	if !ok {
		return nil, types.NewSpecError(field.Name, "%s must be a string, got %T", ConfigRefKey, raw)
	}
	if loader == nil {
		return nil, types.NewSpecError(field.Name, "%s %q given but no loader is available", ConfigRefKey, refName)
	}
	ref, ok := loader.GetRef(refName)
	if !ok {
		return nil, types.NewSpecError(field.Name, "no ref found for %s %q", ConfigRefKey, refName)
	}
	if len(ref.Config) == 0 {
		return nil, types.NewSpecError(field.Name, "ref %q for %s has no config", refName, ConfigRefKey)
	}
	for k, v := range ref.Config {
		if _, set := config[k]; !set {
			config[k] = v
		}
	}
	return config, nil
}
