// Package workspace merges several independently produced methods into one
// shared namespace so that they can be compared sample by sample.
//
// What:
//
//   - Identity normalization: every sample name is mapped to a canonical
//     name. With WithStrict(true) (default) the name is kept as is; with
//     WithStrict(false) it is lower-cased and every run of characters other
//     than ASCII letters, digits and '_' becomes a single '_', so "Sample-1"
//     and "sample 1" both become "sample_1".
//   - Common filtering: with WithCommon(true) only canonical names present in
//     every method are kept; the others are reported per method in
//     NormalizedMethod.Excluded.
//   - Method renaming: methods sharing a name are suffixed "_1", "_2", … in
//     input order, skipping suffixes already taken by another method.
//   - Caches: the global union of all methods (Blocks) and the pairwise
//     intersection/union used by Ctax (Pair) are computed once, on demand,
//     and are safe for concurrent use.
//
// Every NormalizedMethod of a Workspace points into one pool of canonical
// *method.Sample values, one per canonical name, so partition operations can
// compare samples by pointer.
//
// Errors:
//
//   - ErrNoMethods      New called with no method, or with a nil one.
//   - ErrRedundantName  two samples of one method share a canonical name.
//   - ErrEmptyMethod    no sample survives common filtering.
//   - ErrForeignMethod  a method passed to Pair belongs to another workspace.
package workspace
