package plugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bbux-dev/datacraft-faker/faker"
)

var (
	// ErrMethodNotFound means a segment of a method path does not exist.
	ErrMethodNotFound = errors.New("method does not exist")
	// ErrNotCallable means a method path resolves to a plain value.
	ErrNotCallable = errors.New("not a callable method")
)

// ResolutionError reports a method path that does not resolve to a
// callable method. Path is always the full path that was requested.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	if errors.Is(e.Err, ErrNotCallable) {
		return fmt.Sprintf("%s is not a callable method", e.Path)
	}
	return fmt.Sprintf("faker method %s does not exist", e.Path)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ResolveMethod walks path segment by segment from f and returns the method
// it ends on.
func ResolveMethod(f *faker.Faker, path string) (faker.Method, error) {
	var current any = f
	for _, segment := range strings.Split(path, ".") {
		attrs, ok := current.(faker.Attributes)
		if !ok {
			return nil, &ResolutionError{Path: path, Err: ErrMethodNotFound}
		}
		next, ok := attrs.Attr(segment)
		if !ok {
			return nil, &ResolutionError{Path: path, Err: ErrMethodNotFound}
		}
		current = next
	}

	fn, ok := faker.AsMethod(current)
	if !ok {
		return nil, &ResolutionError{Path: path, Err: ErrNotCallable}
	}
	return fn, nil
}
