package types

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RefsKey is the top-level data spec key holding reusable field specs.
const RefsKey = "refs"

// DataSpec is a parsed data spec: output fields in declaration order plus
// named refs other fields can point at.
type DataSpec struct {
	Fields []FieldSpec
	Refs   map[string]FieldSpec
}

// Field returns the field declared under name.
func (d *DataSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Ref returns the ref declared under name.
func (d *DataSpec) Ref(name string) (FieldSpec, bool) {
	f, ok := d.Refs[name]
	return f, ok
}

// LoadDataSpec reads and parses a data spec file.
func LoadDataSpec(path string) (*DataSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data spec %s: %w", path, err)
	}
	return ParseDataSpec(data)
}

// ParseDataSpec parses a YAML or JSON data spec.
//
// Field keys may use the shorthand "name:type?param=value&...": the type and
// config params are taken from the key, and a non-mapping value becomes the
// field's data.
func ParseDataSpec(data []byte) (*DataSpec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing data spec: %w", err)
	}

	spec := &DataSpec{Refs: make(map[string]FieldSpec)}
	if root.Kind == 0 {
		return spec, nil
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, NewSpecError("", "data spec must be a mapping of field names to field specs")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i].Value, doc.Content[i+1]
		if key == RefsKey {
			if err := parseRefs(spec, value); err != nil {
				return nil, err
			}
			continue
		}
		fs, err := parseField(key, value)
		if err != nil {
			return nil, err
		}
		if _, dup := spec.Field(fs.Name); dup {
			return nil, NewSpecError(fs.Name, "declared more than once")
		}
		spec.Fields = append(spec.Fields, fs)
	}
	return spec, nil
}

func parseRefs(spec *DataSpec, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return NewSpecError(RefsKey, "refs must be a mapping of ref names to field specs")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fs, err := parseField(node.Content[i].Value, node.Content[i+1])
		if err != nil {
			return err
		}
		spec.Refs[fs.Name] = fs
	}
	return nil
}

func parseField(key string, node *yaml.Node) (FieldSpec, error) {
	name, typ, params, err := ParseKey(key)
	if err != nil {
		return FieldSpec{}, err
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return FieldSpec{}, fmt.Errorf("decoding field %q: %w", name, err)
	}

	var fs FieldSpec
	if m, ok := value.(map[string]any); ok {
		fs, err = FieldSpecFromMap(name, m)
		if err != nil {
			return FieldSpec{}, err
		}
	} else {
		fs = FieldSpec{Name: name, Data: value}
	}

	if typ != "" {
		if fs.Type != "" && fs.Type != typ {
			return FieldSpec{}, NewSpecError(name, "key declares type %q but spec declares %q", typ, fs.Type)
		}
		fs.Type = typ
	}
	if fs.Type == "" {
		return FieldSpec{}, NewSpecError(name, "type is required")
	}

	if len(params) > 0 {
		if fs.Config == nil {
			fs.Config = make(map[string]any, len(params))
		}
		for k, v := range params {
			if _, set := fs.Config[k]; !set {
				fs.Config[k] = v
			}
		}
	}
	return fs, nil
}

// ParseKey splits a field key of the form "name:type?param=value" into its
// parts. Both the type and the params are optional. A param given more than
// once becomes a list.
func ParseKey(key string) (name, typ string, params map[string]any, err error) {
	rest, query, hasQuery := strings.Cut(key, "?")
	name, typ, _ = strings.Cut(rest, ":")
	name = strings.TrimSpace(name)
	typ = strings.TrimSpace(typ)
	if name == "" {
		return "", "", nil, NewSpecError(key, "field name is empty")
	}
	if !hasQuery {
		return name, typ, nil, nil
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return "", "", nil, NewSpecError(name, "invalid key params %q: %v", query, err)
	}
	params = make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			params[k] = vs[0]
			continue
		}
		list := make([]any, len(vs))
		for i, v := range vs {
			list[i] = v
		}
		params[k] = list
	}
	return name, typ, params, nil
}
