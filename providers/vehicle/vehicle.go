// Package vehicle registers the faker_vehicle provider module: fake vehicle
// and machine makes, models, years and categories, plus locale shaped
// license plates.
//
// Import it for its side effect to make the module available to field specs:
//
//	import _ "github.com/bbux-dev/datacraft-faker/providers/vehicle"
package vehicle

import (
	"strconv"

	"github.com/bbux-dev/datacraft-faker/faker"
)

// ModuleName is the name field specs use to include this module.
const ModuleName = "faker_vehicle"

func init() {
	faker.RegisterModule(ModuleName, VehicleProvider{}, MachineProvider{})
}

type model struct {
	Make     string
	Model    string
	Category string
	From, To int
}

// licensePlates maps a locale code to the plate formats used there.
var licensePlates = map[string][]string{
	"en_US": {`[0-9][A-Z]{3}[0-9]{3}`, `[A-Z]{3}-[0-9]{4}`, `[A-Z]{3} [0-9]{3}`},
	"en_GB": {`[A-Z]{2}[0-9]{2} [A-Z]{3}`},
	"fr_FR": {`[A-Z]{2}-[0-9]{3}-[A-Z]{2}`},
	"de_DE": {`[A-Z]{1,3}-[A-Z]{1,2} [1-9][0-9]{0,3}`},
	"es_ES": {`[0-9]{4} [B-DF-HJ-NP-TV-Z]{3}`},
	"it_IT": {`[A-Z]{2}[0-9]{3}[A-Z]{2}`},
}

var defaultPlates = []string{`[A-Z]{3}-[0-9]{4}`}

// VehicleProvider contributes road vehicle methods.
type VehicleProvider struct{}

func (VehicleProvider) Name() string { return "VehicleProvider" }

func (VehicleProvider) Methods(g *faker.Generator) map[string]faker.Method {
	pick := func() model { return vehicles[g.Rand().IntN(len(vehicles))] }
	plates := licensePlates[g.Locale().Code]
	if len(plates) == 0 {
		plates = defaultPlates
	}

	methods := map[string]faker.Method{
		"vehicle_make":  func() (any, error) { return pick().Make, nil },
		"vehicle_model": func() (any, error) { return pick().Model, nil },
		"vehicle_year": func() (any, error) {
			return strconv.Itoa(year(g, pick())), nil
		},
		"vehicle_make_model": func() (any, error) {
			v := pick()
			return v.Make + " " + v.Model, nil
		},
		"vehicle_year_make_model": func() (any, error) {
			v := pick()
			return strconv.Itoa(year(g, v)) + " " + v.Make + " " + v.Model, nil
		},
		"vehicle_category": func() (any, error) { return pick().Category, nil },
		"vehicle_object": func() (any, error) {
			v := pick()
			return map[string]any{
				"Year":     year(g, v),
				"Make":     v.Make,
				"Model":    v.Model,
				"Category": v.Category,
			}, nil
		},
		"license_plate": func() (any, error) {
			return g.Pattern(g.RandomElement(plates))
		},
	}
	for _, name := range []string{"make", "model", "year", "make_model", "category"} {
		methods["vehicle."+name] = methods["vehicle_"+name]
	}
	return methods
}

// MachineProvider contributes construction and farm machine methods.
type MachineProvider struct{}

func (MachineProvider) Name() string { return "MachineProvider" }

func (MachineProvider) Methods(g *faker.Generator) map[string]faker.Method {
	pick := func() model { return machines[g.Rand().IntN(len(machines))] }
	return map[string]faker.Method{
		"machine_make":  func() (any, error) { return pick().Make, nil },
		"machine_model": func() (any, error) { return pick().Model, nil },
		"machine_year": func() (any, error) {
			return strconv.Itoa(year(g, pick())), nil
		},
		"machine_make_model": func() (any, error) {
			m := pick()
			return m.Make + " " + m.Model, nil
		},
		"machine_category": func() (any, error) { return pick().Category, nil },
	}
}

func year(g *faker.Generator, m model) int {
	return m.From + g.Rand().IntN(m.To-m.From+1)
}
