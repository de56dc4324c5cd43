package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func resetFlags() {
	verbose = false
	entriesSpecFile, entriesInline, entriesFormat = "", "", "json"
	entriesCount, entriesStrict = 1, false
	valuesData, valuesLocales, valuesInclude, valuesSeed, valuesCount = "", nil, nil, 0, 1
	methodsLocales, methodsInclude = nil, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	rootCmd.SetArgs(args)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEntriesCmd_Inline(t *testing.T) {
	out, err := execute(t, "entries", "--inline", `{"name": {"type": "faker", "data": "name"}, "email:faker": "email"}`, "-n", "3")
	if err != nil {
		t.Fatalf("entries error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		var rec map[string]string
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		if rec["name"] == "" || !strings.Contains(rec["email"], "@") {
			t.Errorf("unexpected record: %v", rec)
		}
	}
}

func TestEntriesCmd_SpecFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	spec := "make:\n  type: faker\n  data: vehicle_make\n  config:\n    include: faker_vehicle\n"
	if err := os.WriteFile(path, []byte(spec), 0o644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}

	out, err := execute(t, "entries", "-s", path, "-n", "2", "--format", "yaml", "--strict")
	if err != nil {
		t.Fatalf("entries error: %v", err)
	}
	var records []map[string]string
	if err := yaml.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid YAML output %q: %v", out, err)
	}
	if len(records) != 2 || records[0]["make"] == "" {
		t.Errorf("unexpected records: %v", records)
	}
}

func TestEntriesCmd_Errors(t *testing.T) {
	tests := [][]string{
		{"entries"},
		{"entries", "--inline", `{"x": {"type": "faker", "data": "not_defined"}}`},
		{"entries", "--inline", `{"x": {"type": "faker", "data": "name"}}`, "--format", "xml"},
		{"entries", "-s", "does-not-exist.yaml"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestValuesCmd(t *testing.T) {
	out, err := execute(t, "values", "--data", "name", "--locale", "de_DE", "--seed", "9", "-n", "4")
	if err != nil {
		t.Fatalf("values error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 values, got %q", out)
	}

	again, err := execute(t, "values", "--data", "name", "--locale", "de_DE", "--seed", "9", "-n", "4")
	if err != nil {
		t.Fatalf("values error: %v", err)
	}
	if again != out {
		t.Errorf("seeded output differs:\n%s\n%s", out, again)
	}
}

func TestValuesCmd_Include(t *testing.T) {
	out, err := execute(t, "values", "--data", "machine_make", "--include", "faker_vehicle")
	if err != nil {
		t.Fatalf("values error: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Error("expected a value")
	}
}

func TestMethodsCmd(t *testing.T) {
	out, err := execute(t, "methods", "--include", "faker_vehicle")
	if err != nil {
		t.Fatalf("methods error: %v", err)
	}
	for _, want := range []string{"METHOD", "person.name", "vehicle_make", "license_plate"} {
		if !strings.Contains(out, want) {
			t.Errorf("methods output missing %q", want)
		}
	}
}

func TestMethodsCmd_UnknownModule(t *testing.T) {
	if _, err := execute(t, "methods", "--include", "faker_missing"); err == nil {
		t.Fatal("expected error for unknown module")
	}
}

func TestSchemaCmd(t *testing.T) {
	out, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}
	var schema map[string]any
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if _, ok := schema["properties"]; !ok {
		t.Error("schema has no properties")
	}
}

func TestUsageCmd(t *testing.T) {
	out, err := execute(t, "usage")
	if err != nil {
		t.Fatalf("usage error: %v", err)
	}
	if !strings.HasPrefix(out, "faker\n") {
		t.Errorf("expected plain heading when not a terminal, got %q", out)
	}
	if !strings.Contains(out, "Example values:") {
		t.Errorf("usage missing examples: %q", out)
	}
}
