package workspace

import (
	"sync"

	"github.com/katalvlaran/limes/method"
	"github.com/katalvlaran/limes/partition"
)

// NormalizedMethod is a method rebuilt over the canonical sample pool of a
// Workspace. The embedded *method.Method carries the (possibly renamed)
// name, the canonical samples and their codes; it satisfies
// partition.Grouping.
type NormalizedMethod struct {
	*method.Method

	origin   *method.Method
	index    int
	all      map[*method.Sample]*method.Sample
	excluded []*method.Sample

	mu    sync.RWMutex
	pairs map[*NormalizedMethod]Pair
}

// Pair holds the partitions Ctax is computed from for one pair of methods.
type Pair struct {
	Intersection partition.Partition
	Union        partition.Partition
}

// Origin returns the method this one was built from.
func (nm *NormalizedMethod) Origin() *method.Method {
	return nm.origin
}

// Index returns the position of the method in its workspace.
func (nm *NormalizedMethod) Index() int {
	return nm.index
}

// Renamed reports whether the name differs from the origin's name.
func (nm *NormalizedMethod) Renamed() bool {
	return nm.Name() != nm.origin.Name()
}

// Original returns the origin sample behind canonical sample s, or nil if
// the origin never had it.
func (nm *NormalizedMethod) Original(s *method.Sample) *method.Sample {
	return nm.all[s]
}

// All returns, for every sample of the workspace, the origin sample it maps
// to in this method, nil when absent. The map is a copy.
func (nm *NormalizedMethod) All() map[*method.Sample]*method.Sample {
	out := make(map[*method.Sample]*method.Sample, len(nm.all))
	for k, v := range nm.all {
		out[k] = v
	}
	return out
}

// Excluded returns the origin samples dropped by common filtering, in
// origin order, or nil.
func (nm *NormalizedMethod) Excluded() []*method.Sample {
	if len(nm.excluded) == 0 {
		return nil
	}
	out := make([]*method.Sample, len(nm.excluded))
	copy(out, nm.excluded)
	return out
}

// cached returns the pair stored for other, if any.
func (nm *NormalizedMethod) cached(other *NormalizedMethod) (Pair, bool) {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	p, ok := nm.pairs[other]
	return p, ok
}

// store records p for other unless a value is already present, and returns
// the value kept.
func (nm *NormalizedMethod) store(other *NormalizedMethod, p Pair) Pair {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	if old, ok := nm.pairs[other]; ok {
		return old
	}
	nm.pairs[other] = p
	return p
}
