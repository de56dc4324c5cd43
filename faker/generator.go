package faker

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lucasjones/reggen"

	"github.com/bbux-dev/datacraft-faker/locales"
)

// patternRepeatLimit bounds '*' and '+' repetition in reggen patterns.
const patternRepeatLimit = 10

var formatToken = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Generator is the per-locale half of a Faker. Providers receive it when
// building their methods and use it for randomness and locale data.
type Generator struct {
	locale   *locales.Locale
	source   *rand.ChaCha8
	rnd      *rand.Rand
	fake     *gofakeit.Faker
	root     *Namespace
	patterns map[string]*reggen.Generator
	dateEnd  time.Time
}

// newGenerator derives every random stream of the generator (gofakeit,
// reggen seeds, uuids) from one ChaCha8 source keyed by seed and locale.
func newGenerator(loc *locales.Locale, seed uint64, dateEnd time.Time) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed^0x9e3779b97f4a7c15)
	copy(key[16:], loc.Code)

	source := rand.NewChaCha8(key)
	return &Generator{
		locale:   loc,
		source:   source,
		rnd:      rand.New(source),
		fake:     gofakeit.NewFaker(source, false),
		root:     NewNamespace(),
		patterns: make(map[string]*reggen.Generator),
		dateEnd:  dateEnd,
	}
}

// Locale returns the locale table this generator draws from.
func (g *Generator) Locale() *locales.Locale { return g.locale }

// Rand returns the generator's random source.
func (g *Generator) Rand() *rand.Rand { return g.rnd }

// Reader returns a byte stream from the generator's random source, for
// libraries that consume an io.Reader.
func (g *Generator) Reader() io.Reader { return g.source }

// Gofakeit returns the gofakeit instance used for locale independent values.
func (g *Generator) Gofakeit() *gofakeit.Faker { return g.fake }

// Attr returns a member of this generator's method surface.
func (g *Generator) Attr(name string) (any, bool) { return g.root.Attr(name) }

// Methods returns the dotted paths of all callable members, sorted.
func (g *Generator) Methods() []string { return g.root.Methods() }

// RandomElement returns a random item of items, or "" when items is empty.
func (g *Generator) RandomElement(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[g.rnd.IntN(len(items))]
}

// Pattern returns a random string matching the regular expression.
func (g *Generator) Pattern(expr string) (string, error) {
	gen, ok := g.patterns[expr]
	if !ok {
		var err error
		gen, err = reggen.NewGenerator(expr)
		if err != nil {
			return "", fmt.Errorf("compiling pattern %q: %w", expr, err)
		}
		gen.SetSeed(g.rnd.Int64())
		g.patterns[expr] = gen
	}
	return gen.Generate(patternRepeatLimit), nil
}

// Parse expands every {{method}} token in format by invoking the named
// method of this generator. Tokens may be dotted paths.
func (g *Generator) Parse(format string) (string, error) {
	matches := formatToken.FindAllStringSubmatchIndex(format, -1)
	if len(matches) == 0 {
		return format, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(format[last:m[0]])
		token := format[m[2]:m[3]]
		v, ok := walk(g, strings.Split(token, "."))
		if !ok {
			return "", fmt.Errorf("format token %q: method does not exist", token)
		}
		fn, ok := AsMethod(v)
		if !ok {
			return "", fmt.Errorf("format token %q: not callable", token)
		}
		val, err := fn()
		if err != nil {
			return "", fmt.Errorf("format token %q: %w", token, err)
		}
		fmt.Fprint(&b, val)
		last = m[1]
	}
	b.WriteString(format[last:])
	return b.String(), nil
}

func (g *Generator) addProvider(p Provider) {
	for name, m := range p.Methods(g) {
		g.root.Set(name, m)
	}
}
