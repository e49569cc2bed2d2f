package workers

import (
	"fmt"
	"slices"
	"strings"
)

// PoolError is returned by Pool.Join when at least one unit failed. Each
// failure keeps its own wrapped context, so errors.Is and errors.As see
// through it.
//
// The failures of a nested pool stay grouped under the unit that joined it.
type PoolError struct {
	Label string
	errs  []error
}

func newPoolError(label string, errs []error) *PoolError {
	return &PoolError{Label: label, errs: errs}
}

// Errors returns every failure, in completion order.
func (e *PoolError) Errors() []error {
	return slices.Clone(e.errs)
}

func (e *PoolError) Unwrap() []error {
	return e.Errors()
}

func (e *PoolError) Error() string {
	errs := e.Errors()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d error(s)", e.Label, len(errs))
	for _, err := range errs {
		b.WriteString("\n  - ")
		b.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return b.String()
}

// UnitPanic is the value Pool.Join panics with when a unit panicked.
type UnitPanic struct {
	Value any
	Stack []byte
}

func (p *UnitPanic) Error() string {
	return fmt.Sprintf("unit panicked: %v\n%s", p.Value, p.Stack)
}
