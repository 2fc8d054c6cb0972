// Package limes compares species delimitations: several methods each sort
// the same specimens into putative species, and limes measures how far
// they agree.
//
// The library is organized in five subpackages:
//
//	method/     Sample, Code, Species and the immutable Method classification
//	workspace/  normalizes sample names, builds the shared sample pool and
//	            resolves duplicate method names; caches the global union and
//	            every pairwise intersection/union
//	partition/  union (finest common partition), intersection (transitive
//	            closure), communes (species identical in every method) and
//	            alphabetic block labels
//	indices/    Rtax, Ctax, match ratio, mean Ctax, sorted batch reports,
//	            pairwise tables and concurrent cache warm-up
//	matrix/     Dense, the square table of pairwise ratios
//
// Quick example:
//
//	m1, _ := method.New("abgd", []string{"A", "B", "C"}, codes(1, 1, 2))
//	m2, _ := method.New("gmyc", []string{"A", "B", "C"}, codes(1, 2, 2))
//	ws, _ := workspace.New([]*method.Method{m1, m2})
//	for _, r := range indices.AllCtax(ws) {
//	    fmt.Println(r.First, r.Second, r.Index)
//	}
//
// Reading method files (CSV, spreadsheets, Spart) and rendering reports
// belong to the callers; see examples/ for a complete report.
package limes
