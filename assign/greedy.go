package assign

import "github.com/matchmax/matchmax/matrix"

// SolveGreedy — row-by-row local maximization.
//
// Description:
//
//	Iterate rows in index order 0..H-1. For each row, scan its columns in
//	index order and track the maximum value among columns not yet used; if
//	one exists, take it, mark the column used and accumulate the sum. A
//	choice is never revisited.
//
// Determinism:
//
//	The first-encountered maximum wins (column-ascending scan), so the
//	result is deterministic, though not canonical when equal maxima exist.
//
// Optimality:
//
//	NOT guaranteed. The greedy sum can be strictly below the exact solvers'
//	sum; that is expected behavior, not a bug. Use SolveBacktrack or
//	SolveHungarian when optimality matters.
//
// Errors:
//   - ErrInvalidMatrix — nil matrix or non-positive dimensions.
//
// Complexity: O(H·W) time, O(W) extra space.
func SolveGreedy(m matrix.Matrix) (Solution, error) {
	// Stage 1 (Validate): shape contract.
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return Solution{}, err
	}

	// Stage 2 (Prepare): column usage marks and the selection buffer.
	usedCols := make([]bool, cols)
	selection := make([]SelectedElement, 0, minInt(rows, cols))

	// Stage 3 (Execute): one pass over the rows.
	var (
		sum     int64
		bestVal int64
		bestCol int
		v       int64
		aerr    error
	)
	for row := 0; row < rows; row++ {
		bestCol = -1
		for col := 0; col < cols; col++ {
			if usedCols[col] {
				continue
			}
			if v, aerr = m.At(row, col); aerr != nil {
				return Solution{}, aerr
			}
			// Strict > keeps the first-encountered maximum on ties.
			if bestCol == -1 || v > bestVal {
				bestVal, bestCol = v, col
			}
		}
		if bestCol == -1 {
			// Every column is consumed (only possible when W < H);
			// the row contributes nothing.
			continue
		}
		usedCols[bestCol] = true
		selection = append(selection, SelectedElement{Row: row, Col: bestCol, Value: bestVal})
		sum += bestVal
	}

	return Solution{Selection: selection, Sum: sum}, nil
}
