package method

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for method construction.
var (
	// ErrEmptyMethod indicates an operation would work over zero samples.
	ErrEmptyMethod = errors.New("method: no sample")

	// ErrRedundantName indicates a name collision where uniqueness is required.
	ErrRedundantName = errors.New("method: redundant name")

	// ErrLengthMismatch indicates samples and codes slices differ in length.
	ErrLengthMismatch = errors.New("method: samples and codes lengths differ")

	// ErrNilSample indicates a nil *Sample was passed to NewFromSamples.
	ErrNilSample = errors.New("method: nil sample")
)

// Sample identifies one specimen by name.
type Sample struct {
	Name string
}

// NewSample returns a pointer to a Sample named name.
func NewSample(name string) *Sample {
	return &Sample{Name: name}
}

// String returns the sample name.
func (s *Sample) String() string {
	return s.Name
}

// codeKind tags the dynamic type held by a Code.
type codeKind uint8

const (
	kindInt codeKind = iota + 1
	kindString
)

// Code is an opaque species label. It is comparable and may be used as a map
// key; the zero Code is not a valid label.
type Code struct {
	kind codeKind
	i    int64
	s    string
}

// IntCode returns an integer species code.
func IntCode(v int64) Code {
	return Code{kind: kindInt, i: v}
}

// StringCode returns a string species code.
func StringCode(v string) Code {
	return Code{kind: kindString, s: v}
}

// IsZero reports whether c was never assigned.
func (c Code) IsZero() bool {
	return c.kind == 0
}

// String renders the code the way it was produced.
func (c Code) String() string {
	switch c.kind {
	case kindInt:
		return strconv.FormatInt(c.i, 10)
	case kindString:
		return c.s
	default:
		return "<nil>"
	}
}

// Species is one group of a Method: the samples sharing one Code, in the
// order they appear in the Method.
type Species struct {
	Code    Code
	Samples []*Sample

	key string
}

// Len returns the number of samples in the species.
func (sp Species) Len() int {
	return len(sp.Samples)
}

// Key returns a canonical identifier of the sample set: two species made of
// the same samples have the same Key regardless of order or code.
func (sp Species) Key() string {
	return sp.key
}

// SetKey builds the canonical key of an arbitrary sample list. Names are
// sorted and joined with a NUL byte, which cannot appear in a useful name.
func SetKey(samples []*Sample) string {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name
	}
	sort.Strings(names)

	return strings.Join(names, "\x00")
}
