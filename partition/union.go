package partition

import "github.com/katalvlaran/limes/method"

// Union returns the finest partition of the first method's samples that is
// consistent with every method: two samples separated by at least one
// method end up in different blocks.
//
// Steps:
//  1. Start with a single block holding ms[0].Samples().
//  2. For each method in order, split every block by that method's codes.
//     Sub-blocks appear in order of first sample; a block that does not
//     split is carried over unchanged.
//
// Samples a method does not classify stay together under that method.
//
// Complexity: O(k·n) time, O(n) memory, for k methods over n samples.
func Union(ms ...Grouping) (Partition, error) {
	if len(ms) == 0 {
		return nil, ErrNoMethods
	}

	blocks := Partition{Block(ms[0].Samples())}
	for _, m := range ms {
		blocks = split(m, blocks)
	}
	return blocks, nil
}

// split refines every block of blocks along the species of m.
func split(m Grouping, blocks Partition) Partition {
	out := make(Partition, 0, len(blocks))
	for _, b := range blocks {
		if uniform(m, b) {
			out = append(out, b)
			continue
		}
		index := make(map[codeOrAbsent]int)
		for _, s := range b {
			c, ok := m.CodeOf(s)
			key := codeOrAbsent{code: c, absent: !ok}
			i, seen := index[key]
			if !seen {
				i = len(out)
				index[key] = i
				out = append(out, nil)
			}
			out[i] = append(out[i], s)
		}
	}
	return out
}

// codeOrAbsent keys the split map so unclassified samples form their own group.
type codeOrAbsent struct {
	code   method.Code
	absent bool
}

// uniform reports whether every sample of b carries the same code under m.
func uniform(m Grouping, b Block) bool {
	if len(b) < 2 {
		return true
	}
	c0, ok0 := m.CodeOf(b[0])
	for _, s := range b[1:] {
		c, ok := m.CodeOf(s)
		if ok != ok0 || c != c0 {
			return false
		}
	}
	return true
}
