package faker

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/bbux-dev/datacraft-faker/locales"
)

// seededDateEnd is the latest date a seeded Faker returns, so seeded date
// output does not drift with the wall clock.
var seededDateEnd = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrUnknownLocale is returned by New when a locale has no bundled table.
var ErrUnknownLocale = locales.ErrUnknownLocale

// Option configures a Faker.
type Option func(*options)

type options struct {
	locales []string
	seed    uint64
	seeded  bool
}

// WithLocales sets the locales the Faker draws from. With more than one
// locale every call picks one of them at random.
func WithLocales(codes ...string) Option {
	return func(o *options) { o.locales = append(o.locales, codes...) }
}

// WithSeed makes the Faker's output reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = uint64(seed)
		o.seeded = true
	}
}

// Faker is a faking engine bound to one or more locales. A Faker is not safe
// for concurrent use.
type Faker struct {
	codes     []string
	gens      map[string]*Generator
	order     []*Generator
	rnd       *rand.Rand
	providers []string
	unique    *uniqueState
}

// New creates a Faker with the base provider registered. Without
// WithLocales it uses locales.Default.
func New(opts ...Option) (*Faker, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	codes := o.locales
	if len(codes) == 0 {
		codes = []string{locales.Default}
	}
	seed := o.seed
	dateEnd := seededDateEnd
	if !o.seeded {
		seed = rand.Uint64()
		dateEnd = time.Now().UTC().Truncate(24 * time.Hour)
	}

	f := &Faker{
		gens:   make(map[string]*Generator, len(codes)),
		rnd:    rand.New(rand.NewPCG(seed, ^seed)),
		unique: newUniqueState(),
	}
	for i, code := range codes {
		loc, err := locales.Load(code)
		if err != nil {
			return nil, err
		}
		if _, dup := f.gens[loc.Code]; dup {
			continue
		}
		g := newGenerator(loc, seed+uint64(i)+1, dateEnd)
		f.gens[loc.Code] = g
		f.order = append(f.order, g)
		f.codes = append(f.codes, loc.Code)
	}
	f.AddProvider(Base())
	return f, nil
}

// AddProvider registers p with every locale generator. Methods of later
// providers replace methods of the same name.
func (f *Faker) AddProvider(p Provider) {
	for _, g := range f.order {
		g.addProvider(p)
	}
	if !slices.Contains(f.providers, p.Name()) {
		f.providers = append(f.providers, p.Name())
	}
}

// Locales returns the canonical codes of the configured locales.
func (f *Faker) Locales() []string { return slices.Clone(f.codes) }

// Providers returns the names of the registered providers in registration order.
func (f *Faker) Providers() []string { return slices.Clone(f.providers) }

// Generator returns the generator for a configured locale.
func (f *Faker) Generator(code string) (*Generator, bool) {
	g, ok := f.gens[locales.Normalize(code)]
	return g, ok
}

// Methods returns the dotted paths of every callable method, sorted.
func (f *Faker) Methods() []string { return f.order[0].Methods() }

// ClearUnique forgets the values returned through the unique namespace.
func (f *Faker) ClearUnique() { f.unique.clear() }

// Attr exposes the Faker's method surface:
//
//   - "locales" and "providers" are plain values;
//   - "unique" is a namespace whose methods never repeat a value;
//   - a configured locale code is that locale's generator;
//   - anything else is looked up in the generators.
func (f *Faker) Attr(name string) (any, bool) {
	switch name {
	case "locales":
		return f.Locales(), true
	case "providers":
		return f.Providers(), true
	case "unique":
		return &uniqueProxy{f: f, target: f}, true
	}
	if g, ok := f.gens[name]; ok {
		return g, true
	}
	if len(f.order) == 1 {
		return f.order[0].Attr(name)
	}
	return localeProxy{f: f}.Attr(name)
}

func (f *Faker) pick() *Generator {
	return f.order[f.rnd.IntN(len(f.order))]
}
