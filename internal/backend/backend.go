// Package backend wraps concrete logarithm implementations behind a uniform
// adapter contract. An adapter evaluates log(base^exp) inside its own numeric
// representation and reports failure through one of two channels: a typed
// error, or a sentinel negative-infinity result.
package backend

import "fmt"

// Result is the outcome of a single successful evaluation.
type Result struct {
	// Value is the computed logarithm, formatted by the backend.
	Value string
	// NegInf marks the sentinel negative-infinity result that
	// arbitrary-precision decimal arithmetic returns for log(0).
	NegInf bool
}

// Backend evaluates log(base^exp) in its own numeric representation.
// base^exp must be computed inside that representation too: the failure
// boundary is a property of the representation's underflow behavior, not of
// the log function in isolation.
type Backend interface {
	Name() string
	Eval(exp int) (Result, error)
}

// DomainError reports a log input outside the function's domain
// (zero or negative after underflow).
type DomainError struct {
	Backend string
	Exp     int
	Input   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: log domain error at exponent %d (input %g)", e.Backend, e.Exp, e.Input)
}

// UnderflowError reports a non-finite lane produced by a vectorized
// evaluation, escalated from a numeric warning into a hard failure.
type UnderflowError struct {
	Backend string
	Exp     int
	Lane    int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s: non-finite result in lane %d at exponent %d", e.Backend, e.Lane, e.Exp)
}

// Options configures adapter construction.
type Options struct {
	// Base of the probed powers. Must be >= 2.
	Base int
	// EscalateWarnings controls whether the vector adapter turns
	// non-finite lanes into hard errors. Without it the probe has no
	// stopping condition on that backend.
	EscalateWarnings bool
	// Decimal holds the arbitrary-precision decimal context parameters.
	Decimal DecimalParams
}

// Kind names accepted by New. "vectorized-float" is an alias for "vector".
const (
	KindFloat   = "float"
	KindVector  = "vector"
	KindDecimal = "decimal"
)

// Kinds returns the canonical backend kinds in declaration order.
func Kinds() []string {
	return []string{KindFloat, KindVector, KindDecimal}
}

// New constructs the named backend adapter.
func New(kind string, opts Options) (Backend, error) {
	if opts.Base < 2 {
		return nil, fmt.Errorf("backend: base must be >= 2, got %d", opts.Base)
	}
	switch kind {
	case KindFloat:
		return NewFloat(opts.Base), nil
	case KindVector, "vectorized-float":
		return NewVector(opts.Base, opts.EscalateWarnings), nil
	case KindDecimal:
		return NewDecimal(opts.Base, opts.Decimal)
	default:
		return nil, fmt.Errorf("backend: unknown kind %q (valid: %v)", kind, Kinds())
	}
}
