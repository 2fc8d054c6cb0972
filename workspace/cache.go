package workspace

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/limes/partition"
)

const blocksKey = "blocks"

// Blocks returns the union of all methods of the workspace, the finest
// partition consistent with every method ("paquets"). It is computed on
// first use; concurrent first calls share one computation.
func (ws *Workspace) Blocks() partition.Partition {
	ws.mu.RLock()
	if ws.blocksDone {
		b := ws.blocks
		ws.mu.RUnlock()
		return b
	}
	ws.mu.RUnlock()

	v, _, _ := ws.flight.Do(blocksKey, func() (interface{}, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		if !ws.blocksDone {
			// a workspace always holds at least one method
			ws.blocks, _ = partition.Union(partition.Of(ws.methods)...)
			ws.blocksDone = true
		}
		return ws.blocks, nil
	})
	return v.(partition.Partition)
}

// Pair returns the intersection and union of m1 and m2, computing them on
// first use. Both partitions are always computed with the method of lower
// workspace index first, so the result depends only on the unordered pair:
// Pair(m1, m2) and Pair(m2, m1) return the same partitions whichever call,
// or concurrent caller, fills the cache. The result is stored on both methods.
//
// Complexity: O(n) time per pair on first use (n samples), O(1) afterwards.
func (ws *Workspace) Pair(m1, m2 *NormalizedMethod) (Pair, error) {
	for _, m := range []*NormalizedMethod{m1, m2} {
		if !ws.Contains(m) {
			return Pair{}, fmt.Errorf("%w: %v", ErrForeignMethod, m)
		}
	}
	if p, ok := m1.cached(m2); ok {
		return p, nil
	}
	if p, ok := m2.cached(m1); ok {
		return p, nil
	}

	first, second := m1, m2
	if second.index < first.index {
		first, second = second, first
	}
	v, _, _ := ws.flight.Do(pairKey(first, second), func() (interface{}, error) {
		if p, ok := first.cached(second); ok {
			return p, nil
		}
		// union and intersection cover only the samples of their first method
		inter, _ := partition.Intersection(first, second)
		union, _ := partition.Union(first, second)
		p := first.store(second, Pair{Intersection: inter, Union: union})
		second.store(first, p)
		return p, nil
	})
	return v.(Pair), nil
}

// pairKey identifies an unordered pair of methods for the flight group.
// first must be the method of lower index.
func pairKey(first, second *NormalizedMethod) string {
	return "pair\x00" + strconv.Itoa(first.index) + "\x00" + strconv.Itoa(second.index)
}
