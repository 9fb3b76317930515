// Package matrix provides the integer weight grid underlying the assignment
// solvers.
//
// The matrix package provides:
//
//   - The Matrix interface: bounds-checked cell access, deep cloning, and
//     row/column minima queries over a W×H grid of int64 weights.
//   - Dense, a row-major implementation backed by a flat slice, giving O(1)
//     cell access and cache-friendly scans.
//
// All mutating access goes through Set, which touches exactly one cell;
// Clone returns storage fully independent of the receiver, so solver
// pipelines can reduce a private copy without aliasing the caller's matrix.
//
// See the examples in this package and in assign for usage patterns.
package matrix
