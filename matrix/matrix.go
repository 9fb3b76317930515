// Package matrix: the Matrix interface shared by all solvers.
// This file intentionally contains ONLY the public abstraction; the concrete
// row-major implementation lives in dense.go and the sentinels in errors.go.
package matrix

// Matrix represents a two-dimensional mutable grid of int64 weights.
// Each method enforces bounds checking and returns sentinel errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// solvers depend only on this surface.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c))
// and the minima queries (O(c) per row, O(r) per column).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrOutOfRange if row<0, row>=Rows(), col<0 or col>=Cols().
	// Complexity: O(1).
	At(row, col int) (int64, error)

	// Set assigns the value v at position (row, col).
	// Returns ErrOutOfRange if indices are invalid.
	// Set is the only mutator and affects only the addressed cell.
	// Complexity: O(1).
	Set(row, col int, v int64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the original.
	// Complexity: O(rows*cols).
	Clone() Matrix

	// RowMin scans row and returns its minimum value.
	// Returns ErrOutOfRange if row is outside [0, Rows()).
	// Complexity: O(cols).
	RowMin(row int) (int64, error)

	// ColMin scans col and returns its minimum value.
	// Returns ErrOutOfRange if col is outside [0, Cols()).
	// Complexity: O(rows).
	ColMin(col int) (int64, error)
}
