package plugin

import "github.com/bbux-dev/datacraft-faker/faker"

// Supplier yields the result of one faking method per iteration.
type Supplier struct {
	fn faker.Method
}

// NewSupplier wraps fn.
func NewSupplier(fn faker.Method) *Supplier { return &Supplier{fn: fn} }

// Next calls the method again. The iteration is not used.
func (s *Supplier) Next(iteration int) (any, error) {
	return s.fn()
}
