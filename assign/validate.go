// Package assign - validation utilities shared by all solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(1) shape checks; value scans belong to the solvers themselves.
package assign

import "github.com/matchmax/matchmax/matrix"

// validateMatrix verifies the solver input contract and returns (H, W).
//
// Contract:
//   - m must be non-nil with Rows() > 0 and Cols() > 0.
//
// Complexity: O(1).
func validateMatrix(m matrix.Matrix) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, ErrInvalidMatrix
	}
	rows, cols = m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrInvalidMatrix
	}

	return rows, cols, nil
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
