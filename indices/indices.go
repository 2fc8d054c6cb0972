package indices

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/limes/partition"
	"github.com/katalvlaran/limes/workspace"
	"github.com/montanaflynn/stats"
)

// check validates that every method belongs to ws.
func check(ws *workspace.Workspace, ms ...*workspace.NormalizedMethod) error {
	if ws == nil {
		return ErrNilWorkspace
	}
	for _, m := range ms {
		if !ws.Contains(m) {
			return fmt.Errorf("%w: %v", ErrForeignMethod, m)
		}
	}
	return nil
}

// Rtax returns the share of the workspace speciation events found by m:
// (species(m)-1, blocks(ws)-1).
func Rtax(ws *workspace.Workspace, m *workspace.NormalizedMethod) (Index, error) {
	if err := check(ws, m); err != nil {
		return Index{}, err
	}
	return Index{
		Num: m.SpeciesCount() - 1,
		Den: ws.Blocks().Len() - 1,
	}, nil
}

// Ctax returns the share of speciation events m1 and m2 agree on:
// (intersection-1, union-1) of the pair. Ctax(ws, m1, m2) and
// Ctax(ws, m2, m1) are computed once and are equal.
func Ctax(ws *workspace.Workspace, m1, m2 *workspace.NormalizedMethod) (Index, error) {
	if err := check(ws, m1, m2); err != nil {
		return Index{}, err
	}
	p, err := ws.Pair(m1, m2)
	if err != nil {
		return Index{}, err
	}
	return Index{
		Num: p.Intersection.Len() - 1,
		Den: p.Union.Len() - 1,
	}, nil
}

// MatchRatio returns (2*shared, species(m1)+species(m2)) where shared is the
// number of species made of exactly the same samples in both methods.
// Samples are compared by name, so m1 and m2 need not share a workspace.
//
// Complexity: O(n) time over the samples of both methods once their species
// are built.
func MatchRatio(m1, m2 partition.Grouping) Index {
	shared := partition.Communes(m1, m2).Len()
	return Index{
		Num: 2 * shared,
		Den: len(m1.Species()) + len(m2.Species()),
	}
}

// MCtax returns the mean of the defined Ctax ratios between m and every
// other method of ws. The second result is false when no ratio is defined.
func MCtax(ws *workspace.Workspace, m *workspace.NormalizedMethod) (float64, bool, error) {
	if err := check(ws, m); err != nil {
		return 0, false, err
	}
	var ratios stats.Float64Data
	for _, other := range ws.Methods() {
		if other == m {
			continue
		}
		x, err := Ctax(ws, m, other)
		if err != nil {
			return 0, false, err
		}
		if r, ok := x.Ratio(); ok {
			ratios = append(ratios, r)
		}
	}
	mean, err := stats.Mean(ratios)
	if errors.Is(err, stats.ErrEmptyInput) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return mean, true, nil
}
