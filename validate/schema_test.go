package validate

import (
	"testing"

	"github.com/bbux-dev/datacraft-faker/schemas"
	"github.com/bbux-dev/datacraft-faker/types"
)

func TestValidateFieldSpec_Valid(t *testing.T) {
	specs := []types.FieldSpec{
		{Type: "faker", Data: "name"},
		{Type: "faker"},
		{Type: "faker", Data: "address", Config: map[string]any{"locale": "fr_FR"}},
		{Type: "faker", Data: "name", Config: map[string]any{"locale": []any{"fr_FR", "de_DE"}}},
		{Type: "faker", Data: "vehicle_make", Config: map[string]any{"include": "faker_vehicle"}},
		{Type: "faker", Data: "vehicle_make", Config: map[string]any{"include": []any{"faker_vehicle"}}},
		{Type: "faker", Data: "vehicle_make", Config: map[string]any{
			"providers": []any{map[string]any{"faker_vehicle": "VehicleProvider"}},
		}},
		{Type: "faker", Data: "name", Config: map[string]any{"seed": 42}},
	}
	for _, spec := range specs {
		t.Run(spec.String(), func(t *testing.T) {
			errs, err := ValidateFieldSpec(schemas.FakerSchema, spec)
			if err != nil {
				t.Fatalf("ValidateFieldSpec error: %v", err)
			}
			if len(errs) > 0 {
				t.Errorf("expected no validation errors, got: %v", errs)
			}
		})
	}
}

func TestValidateFieldSpec_Invalid(t *testing.T) {
	specs := []types.FieldSpec{
		{Type: "other", Data: "name"},
		{Type: "faker", Data: 42},
		{Type: "faker", Data: "name", Config: map[string]any{"locale": 3}},
		{Type: "faker", Data: "name", Config: map[string]any{"locale": []any{}}},
		{Type: "faker", Data: "name", Config: map[string]any{"include": map[string]any{"a": "b"}}},
		{Type: "faker", Data: "name", Config: map[string]any{"providers": "faker_vehicle"}},
		{Type: "faker", Data: "name", Config: map[string]any{"providers": []any{map[string]any{"m": 1}}}},
		{Type: "faker", Data: "name", Config: map[string]any{"providers": []any{map[string]any{"a": "X", "b": "Y"}}}},
		{Type: "faker", Data: "name", Config: map[string]any{
			"include":   "faker_vehicle",
			"providers": []any{map[string]any{"faker_vehicle": "VehicleProvider"}},
		}},
		{Type: "faker", Data: "name", Config: map[string]any{"seed": "abc"}},
	}
	for _, spec := range specs {
		t.Run(spec.String(), func(t *testing.T) {
			errs, err := ValidateFieldSpec(schemas.FakerSchema, spec)
			if err != nil {
				t.Fatalf("ValidateFieldSpec error: %v", err)
			}
			if len(errs) == 0 {
				t.Error("expected validation errors")
			}
		})
	}
}

func TestValidateFieldSpec_BadSchema(t *testing.T) {
	_, err := ValidateFieldSpec([]byte(`{"type": 12}`), types.FieldSpec{Type: "faker"})
	if err == nil {
		t.Fatal("expected error for invalid schema")
	}
}
