package indices

import (
	"github.com/katalvlaran/limes/workspace"
	"gonum.org/v1/gonum/stat/combin"
)

// pairs returns every unordered pair of indices below n in lexicographic
// order: (0,1), (0,2), ..., (n-2,n-1).
func pairs(n int) [][]int {
	if n < 2 {
		return nil
	}
	return combin.Combinations(n, 2)
}

// AllRtax returns Rtax for every method of ws, sorted by method name.
func AllRtax(ws *workspace.Workspace) []MethodIndex {
	if ws == nil {
		return nil
	}
	sorted := ws.Sorted()
	out := make([]MethodIndex, 0, len(sorted))
	for _, m := range sorted {
		x, _ := Rtax(ws, m)
		out = append(out, MethodIndex{Method: m.Name(), Index: x})
	}
	return out
}

// AllCtax returns Ctax for every unordered pair of methods of ws, sorted by
// first then second method name.
func AllCtax(ws *workspace.Workspace) []PairIndex {
	if ws == nil {
		return nil
	}
	sorted := ws.Sorted()
	out := make([]PairIndex, 0, len(sorted)*(len(sorted)-1)/2)
	for _, c := range pairs(len(sorted)) {
		m1, m2 := sorted[c[0]], sorted[c[1]]
		x, _ := Ctax(ws, m1, m2)
		out = append(out, PairIndex{First: m1.Name(), Second: m2.Name(), Index: x})
	}
	return out
}

// AllMatchRatio returns MatchRatio for every unordered pair of methods of
// ws, in the order of AllCtax.
func AllMatchRatio(ws *workspace.Workspace) []PairIndex {
	if ws == nil {
		return nil
	}
	sorted := ws.Sorted()
	out := make([]PairIndex, 0, len(sorted)*(len(sorted)-1)/2)
	for _, c := range pairs(len(sorted)) {
		m1, m2 := sorted[c[0]], sorted[c[1]]
		out = append(out, PairIndex{First: m1.Name(), Second: m2.Name(), Index: MatchRatio(m1, m2)})
	}
	return out
}
