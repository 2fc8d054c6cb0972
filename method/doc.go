// Package method defines the input side of a taxonomic comparison: the
// specimens (samples) being classified, the opaque species codes assigned to
// them, and Method, one immutable classification of a set of samples into
// species.
//
// What:
//
//   - Sample: a specimen identified by name. Two samples are equal iff their
//     names are equal, so Sample values can be used directly as map keys.
//   - Code: an opaque species label (integer or string) compared only for
//     equality. IntCode(1) and StringCode("1") are different codes.
//   - Method: an ordered mapping Sample → Code plus a lazily computed
//     grouping of the samples into species (Species), computed once.
//
// Methods are built by producers (spreadsheet or Spart readers, fixtures)
// with New, or with NewFromSamples when the caller owns a pool of shared
// *Sample pointers, as a workspace does.
//
// Complexity:
//
//   - New / NewFromSamples: O(n) time and memory, n = number of samples.
//   - CodeOf, Lookup:       O(1).
//   - Species:              O(n) on first call, O(1) afterwards.
//
// Errors:
//
//   - ErrEmptyMethod     the method would contain no sample.
//   - ErrRedundantName   two samples of one method share a name.
//   - ErrLengthMismatch  samples and codes have different lengths.
//   - ErrNilSample       a nil *Sample was supplied to NewFromSamples.
package method
