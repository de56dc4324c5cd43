package faker

import (
	"sort"
	"strings"
)

// Attributes is implemented by every object a method path can walk through.
// Attr reports the member registered under name.
type Attributes interface {
	Attr(name string) (any, bool)
}

// Method produces one fake value per call.
type Method func() (any, error)

// AsMethod reports whether v can be invoked with no arguments and returns it
// as a Method. Besides Method itself it accepts the plain function shapes
// providers commonly return.
func AsMethod(v any) (Method, bool) {
	switch fn := v.(type) {
	case Method:
		return fn, fn != nil
	case func() (any, error):
		return fn, fn != nil
	case func() any:
		if fn == nil {
			return nil, false
		}
		return func() (any, error) { return fn(), nil }, true
	case func() string:
		if fn == nil {
			return nil, false
		}
		return func() (any, error) { return fn(), nil }, true
	}
	return nil, false
}

// Namespace is a named group of members. Members are Methods, nested
// Namespaces, or plain values.
type Namespace struct {
	members map[string]any
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{members: make(map[string]any)}
}

// Attr returns the member registered under name.
func (n *Namespace) Attr(name string) (any, bool) {
	v, ok := n.members[name]
	return v, ok
}

// Set registers v under a dotted path, creating intermediate namespaces as
// needed. An existing member at the path is replaced; a non-namespace member
// in an intermediate position is replaced by a namespace.
func (n *Namespace) Set(path string, v any) {
	parts := strings.Split(path, ".")
	cur := n
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur.members[part].(*Namespace)
		if !ok {
			next = NewNamespace()
			cur.members[part] = next
		}
		cur = next
	}
	cur.members[parts[len(parts)-1]] = v
}

// Names returns the member names of this namespace, sorted.
func (n *Namespace) Names() []string {
	names := make([]string, 0, len(n.members))
	for name := range n.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Methods returns the dotted paths of every callable member reachable from
// this namespace, sorted.
func (n *Namespace) Methods() []string {
	var paths []string
	n.collect("", &paths)
	sort.Strings(paths)
	return paths
}

func (n *Namespace) collect(prefix string, paths *[]string) {
	for name, v := range n.members {
		if _, ok := AsMethod(v); ok {
			*paths = append(*paths, prefix+name)
			continue
		}
		if sub, ok := v.(*Namespace); ok {
			sub.collect(prefix+name+".", paths)
		}
	}
}

// walk follows path from root and returns the member it ends at.
func walk(root Attributes, path []string) (any, bool) {
	var cur any = root
	for _, part := range path {
		obj, ok := cur.(Attributes)
		if !ok {
			return nil, false
		}
		cur, ok = obj.Attr(part)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
