package faker

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// dateEpoch is the earliest date the date methods return.
var dateEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

type baseProvider struct{}

// Base returns the base provider. Every Faker registers it on creation.
func Base() Provider { return baseProvider{} }

func (baseProvider) Name() string { return BaseProviderName }

func (baseProvider) Methods(g *Generator) map[string]Method {
	loc := g.Locale()
	fake := g.Gofakeit()

	pick := func(items []string) Method {
		return func() (any, error) { return g.RandomElement(items), nil }
	}
	format := func(formats []string) Method {
		return func() (any, error) { return g.Parse(g.RandomElement(formats)) }
	}
	pattern := func(patterns ...string) Method {
		return func() (any, error) { return g.Pattern(g.RandomElement(patterns)) }
	}
	text := func(fn func() string) Method {
		return func() (any, error) { return fn(), nil }
	}
	date := func() time.Time {
		return fake.DateRange(dateEpoch, g.dateEnd)
	}

	methods := map[string]Method{
		// person
		"prefix":     pick(loc.Prefixes),
		"first_name": pick(loc.FirstNames),
		"last_name":  pick(loc.LastNames),
		"name":       format(loc.NameFormats),

		// address
		"building_number": pattern(loc.BuildingNumberPattern),
		"street_name":     pick(loc.StreetNames),
		"street_address":  format(loc.StreetAddressFormats),
		"city":            pick(loc.Cities),
		"state":           pick(loc.Regions),
		"postcode":        pattern(loc.PostcodePattern),
		"address":         format(loc.AddressFormats),
		"current_country": text(func() string { return loc.Country }),
		"country":         text(fake.Country),

		// phone
		"phone_number": pattern(loc.PhonePatterns...),

		// internet
		"email":       text(fake.Email),
		"user_name":   text(fake.Username),
		"domain_name": text(fake.DomainName),
		"url":         text(fake.URL),
		"ipv4":        text(fake.IPv4Address),
		"uuid4": func() (any, error) {
			id, err := uuid.NewRandomFromReader(g.Reader())
			if err != nil {
				return nil, err
			}
			return id.String(), nil
		},

		// company
		"company": text(fake.Company),
		"job":     text(fake.JobTitle),

		// lorem
		"word":     text(func() string { return strings.ToLower(fake.Word()) }),
		"sentence": text(func() string { return fake.Sentence(fake.IntRange(4, 9)) }),
		"text": text(func() string {
			return fake.Paragraph(1, fake.IntRange(2, 4), fake.IntRange(4, 9), " ")
		}),

		// date and time
		"date":      text(func() string { return date().Format(time.DateOnly) }),
		"date_time": func() (any, error) { return date(), nil },
		"iso8601":   text(func() string { return date().Format(time.RFC3339) }),
		"year":      text(func() string { return strconv.Itoa(date().Year()) }),

		// misc
		"color_name": text(fake.Color),
		"boolean":    func() (any, error) { return fake.Bool(), nil },
		"random_int": func() (any, error) { return fake.IntRange(0, 9999), nil },

		// geo
		"geo.latitude":  func() (any, error) { return fake.Latitude(), nil },
		"geo.longitude": func() (any, error) { return fake.Longitude(), nil },
	}

	// namespaced aliases
	for _, name := range []string{"prefix", "first_name", "last_name", "name"} {
		methods["person."+name] = methods[name]
	}
	for _, name := range []string{"city", "state", "postcode", "country", "street_address"} {
		methods["geo."+name] = methods[name]
	}
	return methods
}
