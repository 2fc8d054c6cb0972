// Package matrix provides Dense, a small row-major float64 matrix used to
// lay out pairwise agreement indices (Ctax, match ratio) between the methods
// of a workspace, in workspace order.
//
// Undefined cells are conventionally NaN; callers test them with math.IsNaN.
//
// Errors:
//
//   - ErrInvalidDimensions  rows or cols ≤ 0.
//   - ErrIndexOutOfBounds   At/Set outside the matrix, wrapped with the
//     method name and coordinates.
package matrix
