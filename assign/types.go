// SPDX-License-Identifier: MIT
// Package assign: sentinel error set and result types.
// This file defines ONLY package-level sentinel errors and the public result
// shapes used across the assign package. All solvers MUST return these
// sentinels and tests MUST check them via errors.Is. No solver panics on
// user-triggered error conditions.

package assign

import "errors"

var (
	// ErrInvalidMatrix is returned when a solver receives a nil matrix or a
	// matrix with non-positive dimensions. Solvers must validate before any
	// allocation or scan.
	ErrInvalidMatrix = errors.New("assign: nil matrix or non-positive dimensions")

	// ErrNonConvergence is returned when the Hungarian reduction loop exceeds
	// its iteration bound. With the exact minimum-cover step this indicates a
	// broken invariant, never normal operation.
	ErrNonConvergence = errors.New("assign: reduction loop exceeded iteration bound")

	// ErrExtractionFailure is returned when the Hungarian extraction cannot
	// match min(H,W) zero cells. A partial selection is never returned.
	ErrExtractionFailure = errors.New("assign: cannot extract a complete assignment")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("assign: unsupported algorithm")
)

// SelectedElement is one chosen cell: its position and original weight.
type SelectedElement struct {
	// Row and Col locate the cell in the caller's matrix (0-indexed).
	Row, Col int

	// Value is the cell's weight as stored in the caller's matrix.
	Value int64
}

// Solution is the outcome of a solver call.
//
// Invariants on any returned Solution:
//   - rows of all selected elements are pairwise distinct;
//   - columns are pairwise distinct;
//   - len(Selection) <= min(W, H);
//   - Sum equals the sum of Selection values.
//
// A Solution is produced fresh per call and owned by the caller; solvers
// retain no references into it.
type Solution struct {
	// Selection lists the chosen elements in ascending row order.
	Selection []SelectedElement

	// Sum is the total weight of the selection.
	Sum int64
}
