package method

import (
	"fmt"
	"sync"
)

// Method is an immutable classification of samples into species.
//
// Samples keep the producer's order (source column order); that order is
// only used to make results deterministic, never to change them.
type Method struct {
	name    string
	samples []*Sample
	codes   map[*Sample]Code
	byName  map[string]*Sample

	speciesOnce sync.Once
	species     []Species
}

// New builds a Method named name from parallel slices of sample names and
// species codes. Each name yields a fresh *Sample.
//
// Returns ErrLengthMismatch, ErrEmptyMethod or ErrRedundantName (wrapped with
// the offending names) on invalid input.
func New(name string, samples []string, codes []Code) (*Method, error) {
	if len(samples) != len(codes) {
		return nil, fmt.Errorf("%w: method %q: %d samples, %d codes",
			ErrLengthMismatch, name, len(samples), len(codes))
	}
	ptrs := make([]*Sample, len(samples))
	for i, n := range samples {
		ptrs[i] = NewSample(n)
	}

	return NewFromSamples(name, ptrs, codes)
}

// NewFromSamples builds a Method over caller-owned sample pointers. The
// pointers are stored as given, so several methods built from one pool share
// sample identity.
func NewFromSamples(name string, samples []*Sample, codes []Code) (*Method, error) {
	switch {
	case len(samples) != len(codes):
		return nil, fmt.Errorf("%w: method %q: %d samples, %d codes",
			ErrLengthMismatch, name, len(samples), len(codes))
	case len(samples) == 0:
		return nil, fmt.Errorf("%w: method %q", ErrEmptyMethod, name)
	}

	m := &Method{
		name:    name,
		samples: make([]*Sample, 0, len(samples)),
		codes:   make(map[*Sample]Code, len(samples)),
		byName:  make(map[string]*Sample, len(samples)),
	}
	for i, s := range samples {
		if s == nil {
			return nil, fmt.Errorf("%w: method %q: index %d", ErrNilSample, name, i)
		}
		if _, dup := m.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: method %q: sample %q", ErrRedundantName, name, s.Name)
		}
		m.samples = append(m.samples, s)
		m.codes[s] = codes[i]
		m.byName[s.Name] = s
	}

	return m, nil
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.name
}

// String implements fmt.Stringer.
func (m *Method) String() string {
	return m.name
}

// Len returns the number of samples classified by the method.
func (m *Method) Len() int {
	return len(m.samples)
}

// Samples returns the samples in method order. The slice is a copy.
func (m *Method) Samples() []*Sample {
	out := make([]*Sample, len(m.samples))
	copy(out, m.samples)

	return out
}

// CodeOf returns the species code of s. The lookup is by pointer; use Lookup
// to go through a name first.
func (m *Method) CodeOf(s *Sample) (Code, bool) {
	c, ok := m.codes[s]
	return c, ok
}

// Lookup returns the sample of this method named name.
func (m *Method) Lookup(name string) (*Sample, bool) {
	s, ok := m.byName[name]
	return s, ok
}

// Species returns the species of the method in order of first appearance.
// The grouping is computed on first use and shared afterwards; callers must
// not modify the returned slices.
func (m *Method) Species() []Species {
	m.speciesOnce.Do(m.buildSpecies)
	return m.species
}

// SpeciesCount returns the number of species of the method.
func (m *Method) SpeciesCount() int {
	return len(m.Species())
}

// buildSpecies groups samples by code, preserving discovery order.
func (m *Method) buildSpecies() {
	index := make(map[Code]int)
	var groups []Species
	for _, s := range m.samples {
		c := m.codes[s]
		i, ok := index[c]
		if !ok {
			i = len(groups)
			index[c] = i
			groups = append(groups, Species{Code: c})
		}
		groups[i].Samples = append(groups[i].Samples, s)
	}
	for i := range groups {
		groups[i].key = SetKey(groups[i].Samples)
	}
	m.species = groups
}
