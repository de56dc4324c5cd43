// Package types holds the field and data spec model shared by the plugin,
// the registry and the generator.
package types

import (
	"encoding/json"
	"fmt"
)

// FieldSpec describes how to generate values for one named output field.
type FieldSpec struct {
	// Name is the key the field is declared under in its data spec. It is
	// not part of the serialized spec.
	Name   string         `json:"-" yaml:"-"`
	Type   string         `json:"type" yaml:"type"`
	Data   any            `json:"data,omitempty" yaml:"data,omitempty"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// HasData reports whether the spec carries a data entry.
func (f FieldSpec) HasData() bool { return f.Data != nil }

// ToMap returns the spec in the generic shape used for schema validation.
func (f FieldSpec) ToMap() map[string]any {
	m := map[string]any{"type": f.Type}
	if f.Data != nil {
		m["data"] = f.Data
	}
	if f.Config != nil {
		m["config"] = f.Config
	}
	return m
}

// String renders the spec as compact JSON.
func (f FieldSpec) String() string {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Sprintf("%+v", f.ToMap())
	}
	return string(data)
}

// FieldSpecFromMap builds a FieldSpec from its generic map form.
func FieldSpecFromMap(name string, m map[string]any) (FieldSpec, error) {
	fs := FieldSpec{Name: name, Data: m["data"]}

	if raw, ok := m["type"]; ok {
		typ, ok := raw.(string)
		if !ok {
			return FieldSpec{}, NewSpecError(name, "type must be a string, got %T", raw)
		}
		fs.Type = typ
	}

	if raw, ok := m["config"]; ok && raw != nil {
		cfg, ok := raw.(map[string]any)
		if !ok {
			return FieldSpec{}, NewSpecError(name, "config must be a mapping, got %T", raw)
		}
		fs.Config = cfg
	}
	return fs, nil
}
