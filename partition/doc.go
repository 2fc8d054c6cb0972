// Package partition implements the set-partition algebra used to compare
// species delimitations: the finest common partition (Union), the
// transitive-closure merge (Intersection) and the exact structural agreement
// finder (Communes).
//
// What:
//
//   - Union: start from one block holding every sample of the first method,
//     then let each method in turn split every block along its species. A
//     block lying inside a single species is kept as is (same slice).
//   - Intersection: seed a block with an unassigned sample and keep pulling
//     in whole species, from every method, until nothing changes. Uses an
//     explicit frontier so each (method, species) pair is expanded once.
//   - Communes: species of the first method whose exact sample set is also a
//     species of every other method.
//   - Label / Named: alphabetic names (A, B, …, BA, …) for common species.
//
// All operations accept any Grouping; *method.Method and the workspace's
// normalized methods both qualify. Use Of to pass a typed slice. Samples are
// matched by pointer, so the methods must share one pool of *method.Sample,
// which is what a workspace guarantees.
//
// Complexity (n samples, k methods):
//
//   - Union:        O(k·n) time, O(n) memory.
//   - Intersection: O(k·n) time, O(n + k·s) memory (s = species per method).
//   - Communes:     O(k·n) time.
//
// Errors:
//
//   - ErrNoMethods  Union or Intersection called without any method.
package partition
