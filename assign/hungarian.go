// Package assign — Hungarian method (reduction + covering + augmentation).
//
// SolveHungarian converts the maximum-sum assignment into the classical
// minimum-sum problem and solves it with the matrix form of the Hungarian
// method. The pipeline, run on a private copy of the input:
//
//  1. Negate every cell (max-sum → min-sum).
//  2. Shift by the global minimum if negative, so all cells are >= 0;
//     a uniform shift moves every candidate selection's sum equally and
//     preserves the optimum.
//  3. Row reduction: subtract each row's minimum — one zero per row.
//  4. Column reduction (square inputs only, see below): subtract each
//     column's minimum — one zero per column.
//  5. Fixpoint loop: compute the exact minimum zero cover (cover.go); the
//     matrix is optimal once the covered lines reach min(H,W) —
//     equivalently, once the zero matching is perfect on the min side.
//     Otherwise adjust by the minimum uncovered value and grow the matching.
//  6. Extraction: emit the perfect matching with the original pre-negation
//     values; fewer than min(H,W) pairs is ErrExtractionFailure.
//
// Rectangular inputs:
//   - The engine transposes internally when H > W so reduction and covering
//     always run with rows <= cols; indices are swapped back on extraction.
//   - Column reduction is applied only to square inputs: a selection of
//     min(H,W) cells uses every row but not every column, so subtracting a
//     column constant would skew candidate selections unevenly and break
//     optimality. Row reduction alone exposes the zeros the loop needs.
//
// Termination:
//   - Each outer round strictly grows the maximum zero matching, so the
//     outer loop is bounded by min(H,W) rounds.
//   - Within a round, each adjustment either enables an augmenting path or
//     strictly extends alternating reachability, so it is bounded by H+W
//     adjustments.
//   - Exceeding either bound returns ErrNonConvergence instead of looping.
//
// Complexity: O(min(H,W) · H·W) per matching round in the typical case;
// memory O(H·W) for the two private buffers.

package assign

import (
	"sort"

	"github.com/matchmax/matchmax/matrix"
)

// hungarianEngine holds the reduction state for one SolveHungarian call.
// The working orientation always satisfies rows <= cols.
type hungarianEngine struct {
	rows, cols int  // working shape (rows is the matching side)
	transposed bool // true when the caller's matrix was H > W

	orig []int64 // original values in working orientation; never mutated
	red  []int64 // reduced working buffer

	matchRow []int // row -> matched column, or -1
	matchCol []int // column -> matched row, or -1

	rowCovered []bool
	colCovered []bool

	iterations int // outer matching-growth rounds performed
}

// prefetch loads the caller's matrix into the private buffers, transposing
// when H > W. This is the engine's deep clone: from here on the caller's
// matrix is never touched again.
func (e *hungarianEngine) prefetch(m matrix.Matrix) error {
	h, w := m.Rows(), m.Cols()
	e.transposed = h > w
	if e.transposed {
		e.rows, e.cols = w, h
	} else {
		e.rows, e.cols = h, w
	}

	e.orig = make([]int64, e.rows*e.cols)
	e.red = make([]int64, e.rows*e.cols)

	var (
		v   int64
		err error
	)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if e.transposed {
				e.orig[j*e.cols+i] = v
			} else {
				e.orig[i*e.cols+j] = v
			}
		}
	}
	copy(e.red, e.orig)

	return nil
}

// negate flips the sign of every working cell (max-sum → min-sum).
func (e *hungarianEngine) negate() {
	for i := range e.red {
		e.red[i] = -e.red[i]
	}
}

// shiftNonnegative subtracts the global minimum from every cell when it is
// negative, making the whole buffer nonnegative without changing the
// relative order of any candidate selection.
func (e *hungarianEngine) shiftNonnegative() {
	min := e.red[0]
	for _, v := range e.red[1:] {
		if v < min {
			min = v
		}
	}
	if min >= 0 {
		return
	}
	for i := range e.red {
		e.red[i] -= min
	}
}

// reduceRows subtracts each row's minimum from the row, guaranteeing at
// least one zero per row.
func (e *hungarianEngine) reduceRows() {
	var (
		base int
		min  int64
	)
	for row := 0; row < e.rows; row++ {
		base = row * e.cols
		min = e.red[base]
		for col := 1; col < e.cols; col++ {
			if v := e.red[base+col]; v < min {
				min = v
			}
		}
		if min == 0 {
			continue
		}
		for col := 0; col < e.cols; col++ {
			e.red[base+col] -= min
		}
	}
}

// reduceCols subtracts each column's minimum from the column. Only called
// for square inputs; see the file header for why.
func (e *hungarianEngine) reduceCols() {
	var min int64
	for col := 0; col < e.cols; col++ {
		min = e.red[col]
		for row := 1; row < e.rows; row++ {
			if v := e.red[row*e.cols+col]; v < min {
				min = v
			}
		}
		if min == 0 {
			continue
		}
		for row := 0; row < e.rows; row++ {
			e.red[row*e.cols+col] -= min
		}
	}
}

// run executes the fixpoint loop until the zero matching is perfect on the
// min side, bounded by maxIter outer rounds.
func (e *hungarianEngine) run(maxIter int) error {
	size := e.growMatching()

	// innerBound caps adjustments within one matching-growth round: each
	// adjustment extends alternating reachability by at least one column.
	innerBound := e.rows + e.cols

	for size < e.rows {
		if e.iterations >= maxIter {
			return ErrNonConvergence
		}
		e.iterations++

		grown := false
		for inner := 0; inner < innerBound; inner++ {
			e.computeCover()
			if !e.adjust() {
				return ErrNonConvergence
			}
			if next := e.growMatching(); next > size {
				size = next
				grown = true

				break
			}
		}
		if !grown {
			return ErrNonConvergence
		}
	}

	return nil
}

// extract materializes the perfect matching as a Solution carrying the
// original (pre-negation) values, with indices swapped back to the caller's
// orientation when the engine transposed.
func (e *hungarianEngine) extract() (Solution, error) {
	selection := make([]SelectedElement, 0, e.rows)
	var sum int64
	for row := 0; row < e.rows; row++ {
		col := e.matchRow[row]
		if col == -1 {
			continue
		}
		v := e.orig[row*e.cols+col]
		elem := SelectedElement{Row: row, Col: col, Value: v}
		if e.transposed {
			elem.Row, elem.Col = col, row
		}
		selection = append(selection, elem)
		sum += v
	}

	// The loop only terminates on a perfect min-side matching, so a short
	// selection means a broken invariant; never return it silently.
	if len(selection) < e.rows {
		return Solution{}, ErrExtractionFailure
	}

	sort.Slice(selection, func(i, j int) bool { return selection[i].Row < selection[j].Row })

	return Solution{Selection: selection, Sum: sum}, nil
}

// solveHungarian runs the full pipeline and returns the engine for
// white-box instrumentation.
func solveHungarian(m matrix.Matrix, opts Options) (Solution, *hungarianEngine, error) {
	// Stage 1 (Validate).
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return Solution{}, nil, err
	}

	// Stage 2 (Prepare): private buffers and matching state.
	e := &hungarianEngine{}
	if err = e.prefetch(m); err != nil {
		return Solution{}, nil, err
	}
	e.matchRow = make([]int, e.rows)
	e.matchCol = make([]int, e.cols)
	for i := range e.matchRow {
		e.matchRow[i] = -1
	}
	for i := range e.matchCol {
		e.matchCol[i] = -1
	}
	e.rowCovered = make([]bool, e.rows)
	e.colCovered = make([]bool, e.cols)

	// Stage 3 (Reduce): negate, shift, row/column reduction.
	e.negate()
	e.shiftNonnegative()
	e.reduceRows()
	if rows == cols {
		e.reduceCols()
	}

	// Stage 4 (Fixpoint): exact covering + augmentation until optimal.
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = minInt(rows, cols)
	}
	if err = e.run(maxIter); err != nil {
		return Solution{}, e, err
	}

	// Stage 5 (Extract).
	sol, err := e.extract()
	if err != nil {
		return Solution{}, e, err
	}

	return sol, e, nil
}

// SolveHungarian — reduction-based exact solver.
//
// The caller's matrix is never mutated: all passes run on a private copy.
// The returned sum equals the true maximum (agrees with SolveBacktrack).
//
// Errors:
//   - ErrInvalidMatrix      — nil matrix or non-positive dimensions.
//   - ErrNonConvergence     — iteration bound exceeded (broken invariant).
//   - ErrExtractionFailure  — fewer than min(H,W) matched zeros at the end.
func SolveHungarian(m matrix.Matrix) (Solution, error) {
	sol, _, err := solveHungarian(m, DefaultOptions())

	return sol, err
}
