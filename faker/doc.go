// Package faker is the fake-value engine that faker field specs resolve their
// method paths against.
//
// A Faker is built for one or more locales. Its method surface is an explicit
// tree of namespaces: every name maps to a Method, a nested namespace, or a
// plain (non-callable) value. Providers populate the tree; the base provider
// is always present and further providers are registered with AddProvider,
// usually after importing them by module name:
//
//	f, err := faker.New(faker.WithLocales("fr_FR"))
//	mod, err := faker.ImportModule("faker_vehicle")
//	for _, p := range mod.Providers() {
//		f.AddProvider(p)
//	}
//
// Provider modules make themselves importable by calling RegisterModule from
// an init function, so a blank import of the provider package is enough.
package faker
