package plugin

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bbux-dev/datacraft-faker/types"
)

const usageExamples = 3

// Usage renders an example spec as JSON and YAML followed by values it
// produces.
func (p *Plugin) Usage() string {
	example := map[string]types.FieldSpec{
		"name": {
			Name:   "name",
			Type:   Key,
			Data:   "name",
			Config: map[string]any{LocaleKey: "fr_FR"},
		},
	}

	var b strings.Builder
	b.WriteString("Example Spec:\n")

	js, err := json.MarshalIndent(example, "", "  ")
	if err == nil {
		b.Write(js)
		b.WriteString("\n\n")
	}

	ym, err := yaml.Marshal(example)
	if err == nil {
		b.Write(ym)
		b.WriteString("\n")
	}

	supplier, err := p.Supplier(example["name"], nil)
	if err != nil {
		fmt.Fprintf(&b, "unable to generate example values: %v\n", err)
		return b.String()
	}
	values := make([]string, 0, usageExamples)
	for i := 0; i < usageExamples; i++ {
		v, err := supplier.Next(i)
		if err != nil {
			fmt.Fprintf(&b, "unable to generate example values: %v\n", err)
			return b.String()
		}
		values = append(values, fmt.Sprint(v))
	}
	fmt.Fprintf(&b, "Example values:\n  %s\n", strings.Join(values, "\n  "))
	return b.String()
}
