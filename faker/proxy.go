package faker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// maxUniqueAttempts bounds the retries of a unique method.
const maxUniqueAttempts = 1000

// ErrUniquenessExhausted is returned by a unique method that could not find
// an unseen value.
var ErrUniquenessExhausted = errors.New("uniqueness exhausted")

// localeProxy dispatches every call to a randomly chosen locale generator.
type localeProxy struct {
	f    *Faker
	path []string
}

func (p localeProxy) Attr(name string) (any, bool) {
	path := append(slices.Clone(p.path), name)
	v, ok := walk(p.f.order[0], path)
	if !ok {
		return nil, false
	}
	if _, isMethod := AsMethod(v); isMethod {
		return Method(func() (any, error) {
			g := p.f.pick()
			v, ok := walk(g, path)
			fn, isMethod := AsMethod(v)
			if !ok || !isMethod {
				return nil, fmt.Errorf("%s is not available for locale %s", strings.Join(path, "."), g.locale.Code)
			}
			return fn()
		}), true
	}
	if _, ok := v.(Attributes); ok {
		return localeProxy{f: p.f, path: path}, true
	}
	return v, true
}

type uniqueState struct {
	seen map[string]map[string]struct{}
}

func newUniqueState() *uniqueState {
	return &uniqueState{seen: make(map[string]map[string]struct{})}
}

func (u *uniqueState) clear() {
	u.seen = make(map[string]map[string]struct{})
}

// uniqueProxy mirrors target, wrapping each method so it never returns a
// value it has returned before for the same path.
type uniqueProxy struct {
	f      *Faker
	target Attributes
	path   []string
}

func (p *uniqueProxy) Attr(name string) (any, bool) {
	v, ok := p.target.Attr(name)
	if !ok {
		return nil, false
	}
	path := append(slices.Clone(p.path), name)
	if fn, isMethod := AsMethod(v); isMethod {
		return p.wrap(strings.Join(path, "."), fn), true
	}
	if sub, ok := v.(Attributes); ok {
		return &uniqueProxy{f: p.f, target: sub, path: path}, true
	}
	return v, true
}

func (p *uniqueProxy) wrap(key string, fn Method) Method {
	return func() (any, error) {
		seen := p.f.unique.seen[key]
		if seen == nil {
			seen = make(map[string]struct{})
			p.f.unique.seen[key] = seen
		}
		for range maxUniqueAttempts {
			v, err := fn()
			if err != nil {
				return nil, err
			}
			k := fmt.Sprint(v)
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				return v, nil
			}
		}
		return nil, fmt.Errorf("%w: %s after %d attempts", ErrUniquenessExhausted, key, maxUniqueAttempts)
	}
}
