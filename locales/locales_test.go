package locales

import (
	"errors"
	"testing"
)

func TestAvailable(t *testing.T) {
	codes := Available()
	if len(codes) == 0 {
		t.Fatal("Available() returned no locales")
	}
	seen := make(map[string]bool)
	for _, c := range codes {
		seen[c] = true
	}
	for _, want := range []string{"en_US", "en_GB", "fr_FR", "de_DE", "es_ES", "it_IT"} {
		if !seen[want] {
			t.Errorf("expected locale %q to be available", want)
		}
	}
}

func TestLoad_AllTablesComplete(t *testing.T) {
	for _, code := range Available() {
		loc, err := Load(code)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", code, err)
		}
		if loc.Country == "" {
			t.Errorf("%s: empty country", code)
		}
		lists := map[string][]string{
			"prefixes":               loc.Prefixes,
			"first_names":            loc.FirstNames,
			"last_names":             loc.LastNames,
			"name_formats":           loc.NameFormats,
			"street_names":           loc.StreetNames,
			"street_address_formats": loc.StreetAddressFormats,
			"cities":                 loc.Cities,
			"regions":                loc.Regions,
			"address_formats":        loc.AddressFormats,
			"phone_patterns":         loc.PhonePatterns,
		}
		for name, list := range lists {
			if len(list) == 0 {
				t.Errorf("%s: %s is empty", code, name)
			}
		}
		if loc.PostcodePattern == "" || loc.BuildingNumberPattern == "" {
			t.Errorf("%s: missing postcode or building number pattern", code)
		}
	}
}

func TestLoad_Normalizes(t *testing.T) {
	loc, err := Load("fr-fr")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loc.Code != "fr_FR" {
		t.Errorf("code: got %q, want fr_FR", loc.Code)
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("xx_YY")
	if err == nil {
		t.Fatal("expected error for unknown locale")
	}
	if !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("expected ErrUnknownLocale, got %v", err)
	}
}
