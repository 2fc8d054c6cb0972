package workspace

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/limes/method"
	"github.com/katalvlaran/limes/partition"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Workspace is an ordered, fixed collection of normalized methods sharing
// one pool of canonical samples. It is immutable after New except for its
// compute-once caches, and is safe for concurrent use.
type Workspace struct {
	methods   []*NormalizedMethod
	byName    map[string]*NormalizedMethod
	samples   []*method.Sample
	modified  int
	discarded int
	opts      Options

	flight     singleflight.Group
	mu         sync.RWMutex
	blocks     partition.Partition
	blocksDone bool
}

// New builds a workspace from ms, in order.
//
// Steps:
//  1. Compute the canonical name of every sample; fail with
//     ErrRedundantName if two samples of one method collide.
//  2. Count, per canonical name, the methods holding it and build the pool
//     in lexicographic name order, keeping only names held by every method
//     when Common is set. Fail with ErrEmptyMethod if the pool is empty.
//  3. Resolve duplicate method names (see resolveNames).
//  4. Rebuild each method over the pool, recording excluded samples.
//
// No partial workspace is ever returned.
//
// Complexity: O(k·n + N log N) time, O(k·N) memory, for k methods of at
// most n samples and N canonical names.
func New(ms []*method.Method, opts ...Option) (*Workspace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(ms) == 0 {
		return nil, ErrNoMethods
	}

	// 1) canonical names, per method, aligned with Samples()
	canon := make([][]string, len(ms))
	holders := make(map[string]int)
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%w: method #%d is nil", ErrNoMethods, i)
		}
		seen := make(map[string]bool, m.Len())
		names := make([]string, 0, m.Len())
		for _, s := range m.Samples() {
			c := CanonicalName(s.Name, o.Strict)
			if seen[c] {
				return nil, fmt.Errorf("%w: method %q: sample %q after normalization",
					ErrRedundantName, m.Name(), s.Name)
			}
			seen[c] = true
			names = append(names, c)
			holders[c]++
		}
		canon[i] = names
	}

	// 2) canonical pool
	all := make([]string, 0, len(holders))
	for n := range holders {
		all = append(all, n)
	}
	sort.Strings(all)
	pool := make(map[string]*method.Sample, len(all))
	samples := make([]*method.Sample, 0, len(all))
	for _, n := range all {
		if o.Common && holders[n] != len(ms) {
			continue
		}
		s := method.NewSample(n)
		pool[n] = s
		samples = append(samples, s)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no common sample between all methods", ErrEmptyMethod)
	}

	// 3) method names
	original := make([]string, len(ms))
	for i, m := range ms {
		original[i] = m.Name()
	}
	resolved := resolveNames(original)

	// 4) normalized methods
	ws := &Workspace{
		methods:   make([]*NormalizedMethod, 0, len(ms)),
		byName:    make(map[string]*NormalizedMethod, len(ms)),
		samples:   samples,
		discarded: len(all) - len(samples),
		opts:      o,
	}
	for i, m := range ms {
		nm, err := normalize(m, resolved[i], canon[i], pool, samples)
		if err != nil {
			return nil, err
		}
		nm.index = i
		if nm.Renamed() {
			o.Logger.Debug("method renamed",
				zap.String("from", m.Name()),
				zap.String("to", nm.Name()))
		}
		if len(nm.excluded) > 0 {
			ws.modified++
		}
		ws.methods = append(ws.methods, nm)
		ws.byName[nm.Name()] = nm
	}

	o.Logger.Debug("workspace built",
		zap.Int("methods", len(ws.methods)),
		zap.Int("samples", len(ws.samples)),
		zap.Int("discarded", ws.discarded),
		zap.Int("modified", ws.modified),
		zap.Bool("strict", o.Strict),
		zap.Bool("common", o.Common))

	return ws, nil
}

// normalize rebuilds m under name over the canonical pool. canon holds the
// canonical name of each sample of m, in m's order.
func normalize(m *method.Method, name string, canon []string,
	pool map[string]*method.Sample, samples []*method.Sample) (*NormalizedMethod, error) {
	var (
		kept     []*method.Sample
		codes    []method.Code
		excluded []*method.Sample
	)
	all := make(map[*method.Sample]*method.Sample, len(samples))
	for i, s := range m.Samples() {
		p, ok := pool[canon[i]]
		if !ok {
			excluded = append(excluded, s)
			continue
		}
		c, _ := m.CodeOf(s)
		kept = append(kept, p)
		codes = append(codes, c)
		all[p] = s
	}
	for _, p := range samples {
		if _, ok := all[p]; !ok {
			all[p] = nil
		}
	}

	rebuilt, err := method.NewFromSamples(name, kept, codes)
	if err != nil {
		return nil, err
	}
	return &NormalizedMethod{
		Method:   rebuilt,
		origin:   m,
		all:      all,
		excluded: excluded,
		pairs:    make(map[*NormalizedMethod]Pair),
	}, nil
}

// Len returns the number of methods.
func (ws *Workspace) Len() int {
	return len(ws.methods)
}

// Methods returns the normalized methods in input order. The slice is a copy.
func (ws *Workspace) Methods() []*NormalizedMethod {
	out := make([]*NormalizedMethod, len(ws.methods))
	copy(out, ws.methods)
	return out
}

// Method returns the method with the (resolved) name.
func (ws *Workspace) Method(name string) (*NormalizedMethod, bool) {
	nm, ok := ws.byName[name]
	return nm, ok
}

// Contains reports whether nm belongs to ws.
func (ws *Workspace) Contains(nm *NormalizedMethod) bool {
	return nm != nil && ws.byName[nm.Name()] == nm
}

// Sorted returns the methods ordered by name, using byte-wise comparison.
func (ws *Workspace) Sorted() []*NormalizedMethod {
	out := ws.Methods()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Groupings returns the methods, in input order, as partition.Grouping values.
func (ws *Workspace) Groupings() []partition.Grouping {
	return partition.Of(ws.methods)
}

// Samples returns the canonical samples in name order. The slice is a copy.
func (ws *Workspace) Samples() []*method.Sample {
	out := make([]*method.Sample, len(ws.samples))
	copy(out, ws.samples)
	return out
}

// SampleCount returns the number of canonical samples.
func (ws *Workspace) SampleCount() int {
	return len(ws.samples)
}

// ModifiedMethodCount returns the number of methods that lost at least one
// sample to common filtering.
func (ws *Workspace) ModifiedMethodCount() int {
	return ws.modified
}

// DiscardedSampleCount returns the number of canonical names dropped by
// common filtering.
func (ws *Workspace) DiscardedSampleCount() int {
	return ws.discarded
}

// Options returns the options the workspace was built with.
func (ws *Workspace) Options() Options {
	return ws.opts
}

// Logger returns the workspace logger.
func (ws *Workspace) Logger() *zap.Logger {
	return ws.opts.Logger
}
