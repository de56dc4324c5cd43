// Package locales provides the locale tables bundled with the faker engine.
// Tables are embedded at compile time, one JSON file per locale code.
package locales

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

// Default is the locale used when a field spec does not name one.
const Default = "en_US"

// ErrUnknownLocale is returned by Load for codes with no bundled table.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed data/*.json
var dataFS embed.FS

// Locale holds the word lists and formats for one locale.
type Locale struct {
	Code                  string   `json:"code"`
	Country               string   `json:"country"`
	Prefixes              []string `json:"prefixes"`
	FirstNames            []string `json:"first_names"`
	LastNames             []string `json:"last_names"`
	NameFormats           []string `json:"name_formats"`
	StreetNames           []string `json:"street_names"`
	StreetAddressFormats  []string `json:"street_address_formats"`
	Cities                []string `json:"cities"`
	Regions               []string `json:"regions"`
	AddressFormats        []string `json:"address_formats"`
	BuildingNumberPattern string   `json:"building_number_pattern"`
	PostcodePattern       string   `json:"postcode_pattern"`
	PhonePatterns         []string `json:"phone_patterns"`
}

var (
	loaded    map[string]*Locale
	loadOnce  sync.Once
	loadError error
)

func loadAll() (map[string]*Locale, error) {
	loadOnce.Do(func() {
		entries, err := dataFS.ReadDir("data")
		if err != nil {
			loadError = fmt.Errorf("reading locale tables: %w", err)
			return
		}
		loaded = make(map[string]*Locale, len(entries))
		for _, e := range entries {
			data, err := dataFS.ReadFile(path.Join("data", e.Name()))
			if err != nil {
				loadError = fmt.Errorf("reading locale table %s: %w", e.Name(), err)
				return
			}
			var loc Locale
			if err := json.Unmarshal(data, &loc); err != nil {
				loadError = fmt.Errorf("parsing locale table %s: %w", e.Name(), err)
				return
			}
			if want := strings.TrimSuffix(e.Name(), ".json"); loc.Code != want {
				loadError = fmt.Errorf("locale table %s declares code %q", e.Name(), loc.Code)
				return
			}
			loaded[loc.Code] = &loc
		}
	})
	return loaded, loadError
}

// Load returns the table for the given locale code. The code is normalized
// first, so "fr-FR" and "fr_fr" both load fr_FR.
func Load(code string) (*Locale, error) {
	all, err := loadAll()
	if err != nil {
		return nil, err
	}
	normalized := Normalize(code)
	loc, ok := all[normalized]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLocale, code, strings.Join(Available(), ", "))
	}
	return loc, nil
}

// Available returns the bundled locale codes, sorted.
func Available() []string {
	all, err := loadAll()
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(all))
	for code := range all {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
