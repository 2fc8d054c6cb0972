package partition

// Communes returns the species of ms[0] whose exact sample set is also a
// species of every other method, in ms[0] species order. It returns an
// empty partition when ms is empty.
//
// Complexity: O(k·n) time to key every species, O(s) lookups per method
// for the s species of ms[0].
func Communes(ms ...Grouping) Partition {
	if len(ms) == 0 {
		return Partition{}
	}

	others := make([]map[string]bool, 0, len(ms)-1)
	for _, m := range ms[1:] {
		keys := make(map[string]bool)
		for _, sp := range m.Species() {
			keys[sp.Key()] = true
		}
		others = append(others, keys)
	}

	out := Partition{}
	for _, sp := range ms[0].Species() {
		common := true
		for _, keys := range others {
			if !keys[sp.Key()] {
				common = false
				break
			}
		}
		if common {
			out = append(out, Block(sp.Samples))
		}
	}
	return out
}
