package faker

// BaseProviderName is the name of the provider every Faker starts with.
// Module scans never return it.
const BaseProviderName = "BaseProvider"

// Provider contributes methods to a Faker. Methods is called once per locale
// generator; keys may be dotted to place methods in nested namespaces.
type Provider interface {
	Name() string
	Methods(g *Generator) map[string]Method
}

// IsBase reports whether p is the base provider capability.
func IsBase(p Provider) bool {
	return p != nil && p.Name() == BaseProviderName
}

type funcProvider struct {
	name  string
	build func(g *Generator) map[string]Method
}

// NewProvider builds a Provider from a name and a function returning its
// methods for a generator.
func NewProvider(name string, build func(g *Generator) map[string]Method) Provider {
	return funcProvider{name: name, build: build}
}

func (p funcProvider) Name() string { return p.name }

func (p funcProvider) Methods(g *Generator) map[string]Method { return p.build(g) }
