// Package indices computes the agreement indices between the delimitation
// methods of a workspace.
//
// Every index is a ratio Num/Den reported together with its parts:
//
//	Rtax(ws, m)           speciation events of m over those of the whole
//	                      workspace (species(m)-1, blocks(ws)-1).
//	Ctax(ws, m1, m2)      events shared by m1 and m2 over events found by
//	                      either (intersection-1, union-1).
//	MatchRatio(m1, m2)    species identical in both methods, counted twice,
//	                      over the species count of both.
//	MCtax(ws, m)          mean of the defined Ctax ratios between m and every
//	                      other method.
//
// A ratio is undefined when its denominator is zero; Index.Ratio reports it
// with a false second result and tables hold NaN.
//
// The batch forms AllRtax, AllCtax and AllMatchRatio return results sorted
// by method name, pairs in lexicographic order of the sorted method list.
// CtaxTable and MatchRatioTable lay the pairwise values out in a
// matrix.Dense in workspace order.
//
// Ctax relies on the pair cache of the workspace. Warm fills that cache and
// the workspace blocks concurrently ahead of reporting:
//
//	if err := indices.Warm(ctx, ws, indices.WithConcurrency(4)); err != nil {
//	    return err
//	}
//	for _, r := range indices.AllCtax(ws) {
//	    fmt.Println(r.First, r.Second, r.Index)
//	}
package indices
