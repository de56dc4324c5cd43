package types

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldSpecFromMap(t *testing.T) {
	fs, err := FieldSpecFromMap("n", map[string]any{
		"type":   "faker",
		"data":   "name",
		"config": map[string]any{"locale": "fr_FR"},
	})
	if err != nil {
		t.Fatalf("FieldSpecFromMap error: %v", err)
	}
	if fs.Name != "n" || fs.Type != "faker" || fs.Data != "name" || fs.Config["locale"] != "fr_FR" {
		t.Errorf("unexpected spec: %+v", fs)
	}
	if !fs.HasData() {
		t.Error("expected HasData")
	}
}

func TestFieldSpec_ToMapAndString(t *testing.T) {
	fs := FieldSpec{Name: "n", Type: "faker"}
	m := fs.ToMap()
	if _, ok := m["data"]; ok {
		t.Error("ToMap should omit nil data")
	}
	if _, ok := m["config"]; ok {
		t.Error("ToMap should omit nil config")
	}
	if fs.HasData() {
		t.Error("expected no data")
	}
	if got := fs.String(); got != `{"type":"faker"}` {
		t.Errorf("String: got %s", got)
	}
}

func TestSpecError(t *testing.T) {
	err := error(NewSpecError("name", "data must be a %s", "string"))
	if !strings.Contains(err.Error(), `field "name"`) || !strings.Contains(err.Error(), "data must be a string") {
		t.Errorf("unexpected message: %s", err)
	}
	var specErr *SpecError
	if !errors.As(err, &specErr) || specErr.Field != "name" {
		t.Errorf("errors.As failed: %v", err)
	}
	if got := NewSpecError("", "bare").Error(); got != "bare" {
		t.Errorf("bare message: got %q", got)
	}
}
