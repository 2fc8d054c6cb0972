package indices

import (
	"math"

	"github.com/katalvlaran/limes/matrix"
	"github.com/katalvlaran/limes/workspace"
)

// CtaxTable returns the Ctax ratios of ws as a square matrix in workspace
// order. The diagonal is 1 and undefined ratios are NaN.
func CtaxTable(ws *workspace.Workspace) (*matrix.Dense, error) {
	return table(ws, func(m1, m2 *workspace.NormalizedMethod) (Index, error) {
		return Ctax(ws, m1, m2)
	})
}

// MatchRatioTable returns the match ratios of ws as a square matrix in
// workspace order. The diagonal is 1.
func MatchRatioTable(ws *workspace.Workspace) (*matrix.Dense, error) {
	return table(ws, func(m1, m2 *workspace.NormalizedMethod) (Index, error) {
		return MatchRatio(m1, m2), nil
	})
}

// table fills the upper triangle with index and mirrors it. Cells whose
// ratio is undefined keep the NaN seed.
func table(ws *workspace.Workspace,
	index func(m1, m2 *workspace.NormalizedMethod) (Index, error)) (*matrix.Dense, error) {
	if ws == nil {
		return nil, ErrNilWorkspace
	}
	ms := ws.Methods()
	n := len(ms)
	t, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	t.Fill(math.NaN())
	for i := 0; i < n; i++ {
		if err = t.Set(i, i, 1); err != nil {
			return nil, err
		}
	}
	for _, c := range pairs(n) {
		i, j := c[0], c[1]
		x, err := index(ms[i], ms[j])
		if err != nil {
			return nil, err
		}
		v, ok := x.Ratio()
		if !ok {
			continue
		}
		if err = t.Set(i, j, v); err != nil {
			return nil, err
		}
		if err = t.Set(j, i, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}
