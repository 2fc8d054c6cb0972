package partition

import "github.com/katalvlaran/limes/method"

// Intersection returns the coarsest partition in which two samples grouped
// together by any method share a block (transitive closure of "same species
// under some method").
//
// Steps:
//  1. Take the next unassigned sample of ms[0] (method order) as a seed.
//  2. Pop samples off a frontier; for every method, pull the whole species
//     of the popped sample into the block and push the new members.
//  3. When the frontier is empty the block is closed; repeat from 1.
//
// Each (method, species) pair is expanded at most once, so the closure is
// linear in the total number of memberships. Samples outside ms[0] can link
// two of its samples but are not reported in the blocks.
//
// Complexity: O(k·n) time, O(k·n) memory for the species index.
func Intersection(ms ...Grouping) (Partition, error) {
	if len(ms) == 0 {
		return nil, ErrNoMethods
	}

	// members[i][code] lists the samples of one species of method i.
	members := make([]map[method.Code][]*method.Sample, len(ms))
	for i, m := range ms {
		idx := make(map[method.Code][]*method.Sample)
		for _, sp := range m.Species() {
			idx[sp.Code] = sp.Samples
		}
		members[i] = idx
	}

	pool := ms[0].Samples()
	inPool := make(map[*method.Sample]bool, len(pool))
	for _, s := range pool {
		inPool[s] = true
	}

	assigned := make(map[*method.Sample]bool, len(pool))
	expanded := make([]map[method.Code]bool, len(ms))
	for i := range expanded {
		expanded[i] = make(map[method.Code]bool)
	}

	var out Partition
	for _, seed := range pool {
		if assigned[seed] {
			continue
		}
		assigned[seed] = true
		block := Block{seed}
		frontier := []*method.Sample{seed}

		for len(frontier) > 0 {
			s := frontier[0]
			frontier = frontier[1:]
			for i, m := range ms {
				c, ok := m.CodeOf(s)
				if !ok || expanded[i][c] {
					continue
				}
				expanded[i][c] = true
				for _, o := range members[i][c] {
					if assigned[o] {
						continue
					}
					assigned[o] = true
					frontier = append(frontier, o)
					if inPool[o] {
						block = append(block, o)
					}
				}
			}
		}
		out = append(out, block)
	}
	return out, nil
}
