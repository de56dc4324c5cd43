package faker

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrModuleNotFound is returned when no provider module is registered
	// under the requested name.
	ErrModuleNotFound = errors.New("no module named")
	// ErrProviderNotFound is returned when a module has no provider with the
	// requested name.
	ErrProviderNotFound = errors.New("module has no provider")
)

// Module is a named set of providers that field specs can import.
type Module struct {
	name      string
	providers []Provider
}

var (
	modulesMu sync.RWMutex
	modules   = make(map[string]*Module)
)

// RegisterModule makes a provider module importable under name. It is meant
// to be called from the provider package's init function and panics if name
// is empty or already registered.
func RegisterModule(name string, providers ...Provider) {
	modulesMu.Lock()
	defer modulesMu.Unlock()

	if name == "" {
		panic("faker: RegisterModule with empty name")
	}
	if _, dup := modules[name]; dup {
		panic(fmt.Sprintf("faker: RegisterModule called twice for module %q", name))
	}
	for _, p := range providers {
		if p == nil {
			panic(fmt.Sprintf("faker: RegisterModule %q with nil provider", name))
		}
	}
	modules[name] = &Module{name: name, providers: providers}
}

// ImportModule returns the module registered under name.
func ImportModule(name string) (*Module, error) {
	modulesMu.RLock()
	defer modulesMu.RUnlock()

	m, ok := modules[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrModuleNotFound, name)
	}
	return m, nil
}

// Modules returns the names of all registered modules, sorted.
func Modules() []string {
	modulesMu.RLock()
	defer modulesMu.RUnlock()

	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name the module was registered under.
func (m *Module) Name() string { return m.name }

// Providers returns every provider the module contributes, in registration
// order. The base provider is never included, even when a module lists it.
func (m *Module) Providers() []Provider {
	out := make([]Provider, 0, len(m.providers))
	for _, p := range m.providers {
		if IsBase(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Provider returns the provider registered under name in this module.
func (m *Module) Provider(name string) (Provider, error) {
	for _, p := range m.providers {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w %q: module %q", ErrProviderNotFound, name, m.name)
}
