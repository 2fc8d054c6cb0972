package partition

import (
	"errors"

	"github.com/katalvlaran/limes/method"
)

// ErrNoMethods is returned when an operation needs at least one method.
var ErrNoMethods = errors.New("partition: no methods")

// Grouping is the view of a classification the algebra works on.
type Grouping interface {
	// Samples returns the classified samples in a stable order.
	Samples() []*method.Sample
	// CodeOf returns the species code of s, false if s is not classified.
	CodeOf(s *method.Sample) (method.Code, bool)
	// Species returns the species groups in a stable order.
	Species() []method.Species
}

// Of adapts a typed slice to the variadic form taken by Union,
// Intersection and Communes.
func Of[G Grouping](ms []G) []Grouping {
	out := make([]Grouping, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

// Block is one element of a partition.
type Block []*method.Sample

// Key returns the canonical identifier of the block's sample set.
func (b Block) Key() string {
	return method.SetKey(b)
}

// Partition is a list of disjoint, non-empty blocks.
type Partition []Block

// Len returns the number of blocks.
func (p Partition) Len() int {
	return len(p)
}

// Keys returns the key of every block, in partition order.
func (p Partition) Keys() []string {
	out := make([]string, len(p))
	for i, b := range p {
		out[i] = b.Key()
	}
	return out
}

// Contains reports whether some block of p holds exactly the samples of b.
func (p Partition) Contains(b Block) bool {
	k := b.Key()
	for _, x := range p {
		if len(x) == len(b) && x.Key() == k {
			return true
		}
	}
	return false
}

// NamedBlock pairs a block with its alphabetic label.
type NamedBlock struct {
	Label string
	Block Block
}
