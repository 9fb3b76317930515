// Package matrix provides core primitives for grid-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// maxCells bounds the total cell count a single Dense may allocate.
// Requests above it surface ErrAllocationFailure instead of an OOM abort;
// no operation is permitted to terminate the process.
const maxCells = 1 << 30

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 weights.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// compile-time interface compliance check.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0, and the cell count fits
// the allocation budget.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense.
// Errors: ErrInvalidDimensions, ErrAllocationFailure.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Guard the cell budget before touching the allocator.
	if rows > maxCells/cols {
		return nil, ErrAllocationFailure
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Set is the only mutator on Dense and
// affects exactly one cell.
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// The copy shares no storage with the receiver, so reduction passes on the
// clone can never leak into the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowMin scans row and returns its minimum value.
// Errors: ErrOutOfRange if row is outside [0, r).
// Complexity: O(c).
func (m *Dense) RowMin(row int) (int64, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("RowMin", row, 0, ErrOutOfRange)
	}

	base := row * m.c
	min := m.data[base]
	for j := 1; j < m.c; j++ {
		if v := m.data[base+j]; v < min {
			min = v
		}
	}

	return min, nil
}

// ColMin scans col and returns its minimum value.
// Errors: ErrOutOfRange if col is outside [0, c).
// Complexity: O(r).
func (m *Dense) ColMin(col int) (int64, error) {
	if col < 0 || col >= m.c {
		return 0, denseErrorf("ColMin", 0, col, ErrOutOfRange)
	}

	min := m.data[col]
	for i := 1; i < m.r; i++ {
		if v := m.data[i*m.c+col]; v < min {
			min = v
		}
	}

	return min, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
