package indices

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/limes/workspace"
)

// Sentinel errors for index computation.
var (
	// ErrNilWorkspace is returned when a nil workspace is passed.
	ErrNilWorkspace = errors.New("indices: workspace is nil")

	// ErrForeignMethod is returned for a method that does not belong to the
	// workspace it is evaluated against.
	ErrForeignMethod = workspace.ErrForeignMethod

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("indices: invalid option supplied")
)

// Index is a ratio kept with its numerator and denominator.
type Index struct {
	Num int
	Den int
}

// Ratio returns Num/Den, or false when Den is zero.
func (x Index) Ratio() (float64, bool) {
	if x.Den == 0 {
		return 0, false
	}
	return float64(x.Num) / float64(x.Den), true
}

// String renders "num/den=ratio", with "-" for an undefined ratio.
func (x Index) String() string {
	r, ok := x.Ratio()
	if !ok {
		return fmt.Sprintf("%d/%d=-", x.Num, x.Den)
	}
	return fmt.Sprintf("%d/%d=%.3f", x.Num, x.Den, r)
}

// MethodIndex is the index of one method.
type MethodIndex struct {
	Method string
	Index
}

// PairIndex is the index of an unordered pair of methods, First < Second.
type PairIndex struct {
	First  string
	Second string
	Index
}

// Option configures Warm.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of Warm.
type Options struct {
	// Concurrency bounds the number of pairs computed at once.
	Concurrency int

	err error
}

// DefaultOptions returns Options with Concurrency 1.
func DefaultOptions() Options {
	return Options{Concurrency: 1}
}

// WithConcurrency sets the number of concurrent workers.
//
//	n < 1: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Concurrency must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}
