// Package assign — exhaustive search over row→column assignments.
//
// SolveBacktrack enumerates every valid row/column-exclusive selection via a
// depth-first search with true backtracking: usage marks set before a
// recursive branch are undone after it returns, so sibling branches always
// see a clean state.
//
// Rationale (succinct):
//  1. The matrix is prefetched into a dense buffer to remove interface
//     overhead from the hot recursion (the search itself is the cost).
//  2. No pruning beyond row/column exclusivity: every complete assignment is
//     visited, which is what guarantees global optimality. An H×H input
//     therefore explores exactly H! leaf assignments.
//  3. When W < H, not every row can be assigned. A row may be left out only
//     while enough rows remain below it to consume all free columns, so the
//     search still ranges over every selection of min(W,H) cells and the
//     optimality guarantee holds for rectangular inputs too. For W >= H the
//     condition never fires and every row is assigned, keeping the square
//     leaf count at exactly H!. Left-out rows are simply absent from the
//     returned selection.
//
// Complexity:
//   - Worst case O(H!·W) time when W ≥ H; inherent to exhaustive search.
//   - Memory: O(W) usage marks + O(H) assignment state + O(H·W) prefetch.

package assign

import "github.com/matchmax/matchmax/matrix"

// btEngine holds the search state for one SolveBacktrack invocation.
// A dedicated engine struct (instead of closures) keeps hot-path state
// explicit and the leaf instrumentation testable.
type btEngine struct {
	rows, cols int

	// Prefetched weights: w[row*cols+col].
	w []int64

	// Current search state.
	usedCols []bool
	freeCols int   // number of false entries in usedCols
	chosen   []int // chosen[row] = column index, or -1 when unassigned

	// Best complete assignment seen so far.
	best     []int
	bestSum  int64
	haveBest bool

	// leaves counts completed assignments (row == rows reached).
	leaves uint64
}

// at is a fast accessor into the dense weight buffer.
func (e *btEngine) at(row, col int) int64 { return e.w[row*e.cols+col] }

// prefetch loads the matrix into the dense buffer.
func (e *btEngine) prefetch(m matrix.Matrix) error {
	e.w = make([]int64, e.rows*e.cols)
	var (
		v   int64
		err error
	)
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			if v, err = m.At(row, col); err != nil {
				return err
			}
			e.w[row*e.cols+col] = v
		}
	}

	return nil
}

// explore performs the depth-first search from the given row with the given
// running sum. On reaching row == rows the completed sum is compared against
// the best seen so far; strictly greater snapshots the assignment, so the
// first-found assignment wins among equal sums (deterministic).
func (e *btEngine) explore(row int, sum int64) {
	if row == e.rows {
		e.leaves++
		if !e.haveBest || sum > e.bestSum {
			e.bestSum = sum
			e.haveBest = true
			copy(e.best, e.chosen)
		}

		return
	}

	for col := 0; col < e.cols; col++ {
		if e.usedCols[col] {
			continue
		}

		// Tentatively choose (row, col).
		e.usedCols[col] = true
		e.freeCols--
		e.chosen[row] = col

		e.explore(row+1, sum+e.at(row, col))

		// Backtrack: undo the marks so siblings see a clean state.
		e.chosen[row] = -1
		e.freeCols++
		e.usedCols[col] = false
	}

	// Leave the row out when the rows below can still consume every free
	// column. For W >= H this never fires; for W < H it is what lets the
	// search range over every selection of min(W,H) cells (and it is the
	// only branch once all columns are consumed).
	if e.rows-row > e.freeCols {
		e.explore(row+1, sum)
	}
}

// solveBacktrack runs the engine and returns it alongside the solution so
// white-box tests can read the instrumentation.
func solveBacktrack(m matrix.Matrix) (Solution, *btEngine, error) {
	// Stage 1 (Validate).
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return Solution{}, nil, err
	}

	// Stage 2 (Prepare): engine state.
	e := &btEngine{
		rows:     rows,
		cols:     cols,
		usedCols: make([]bool, cols),
		freeCols: cols,
		chosen:   make([]int, rows),
		best:     make([]int, rows),
	}
	for i := range e.chosen {
		e.chosen[i] = -1
		e.best[i] = -1
	}
	if err = e.prefetch(m); err != nil {
		return Solution{}, nil, err
	}

	// Stage 3 (Execute): full search. Positive dimensions guarantee at least
	// one complete assignment is reached, so haveBest holds afterwards.
	e.explore(0, 0)

	// Stage 4 (Finalize): materialize the best assignment.
	selection := make([]SelectedElement, 0, minInt(rows, cols))
	for row := 0; row < rows; row++ {
		if e.best[row] == -1 {
			continue
		}
		selection = append(selection, SelectedElement{
			Row:   row,
			Col:   e.best[row],
			Value: e.at(row, e.best[row]),
		})
	}

	return Solution{Selection: selection, Sum: e.bestSum}, e, nil
}

// SolveBacktrack — exhaustive recursive search, guaranteed optimal.
//
// The returned sum equals the true maximum over all valid row/column-
// exclusive selections. The caller's matrix is only read, never mutated.
//
// Errors:
//   - ErrInvalidMatrix — nil matrix or non-positive dimensions.
//
// Complexity: O(H!·W) worst case; see the package doc for guidance on sizes.
func SolveBacktrack(m matrix.Matrix) (Solution, error) {
	sol, _, err := solveBacktrack(m)

	return sol, err
}
