// Package assign — exact zero covering for the Hungarian pipeline.
//
// The original formulation of the covering step ("cover the column if it has
// another zero, else the row") is a heuristic approximation of a minimum
// vertex cover and can fail to make progress, leaving the reduction loop
// spinning forever. This file replaces it with the exact computation:
//
//  1. A maximum matching over the zero cells of the reduced matrix, built
//     with augmenting-path search (Kuhn's algorithm) — the same
//     alternating-path discipline used by residual-graph max-flow searches.
//  2. The König construction, which converts that matching into a minimum
//     vertex cover: rows NOT reachable by an alternating path from an
//     unmatched row, plus columns that ARE reachable.
//
// By König's theorem the cover size equals the matching size, so "covered
// lines == min(H,W)" and "perfect matching on the min side" are the same
// optimality test, and every matching-growth round makes provable progress.
//
// All functions operate on the engine's reduced buffer; rows <= cols holds
// (the engine transposes beforehand), so the matching side is always rows.

package assign

// tryAugment searches for an augmenting path from row over zero cells,
// flipping matched edges on success. visitedCols guards one search pass.
//
// Complexity: O(rows·cols) worst case per call.
func (e *hungarianEngine) tryAugment(row int, visitedCols []bool) bool {
	for col := 0; col < e.cols; col++ {
		if visitedCols[col] || e.red[row*e.cols+col] != 0 {
			continue
		}
		visitedCols[col] = true

		// Free column, or its matched row can be re-routed elsewhere.
		if e.matchCol[col] == -1 || e.tryAugment(e.matchCol[col], visitedCols) {
			e.matchRow[row] = col
			e.matchCol[col] = row

			return true
		}
	}

	return false
}

// growMatching extends the current matching from every unmatched row and
// returns the new matching size. Matched edges survive adjustment passes
// (their cells are singly covered, see adjust), so growing incrementally
// is sound.
//
// Complexity: O(rows²·cols) worst case.
func (e *hungarianEngine) growMatching() int {
	size := 0
	for row := 0; row < e.rows; row++ {
		if e.matchRow[row] != -1 {
			size++
		}
	}

	visited := make([]bool, e.cols)
	for row := 0; row < e.rows; row++ {
		if e.matchRow[row] != -1 {
			continue
		}
		for i := range visited {
			visited[i] = false
		}
		if e.tryAugment(row, visited) {
			size++
		}
	}

	return size
}

// computeCover fills rowCovered/colCovered with the exact minimum vertex
// cover of the zero cells, derived from the current maximum matching via
// König's construction:
//
//	reachable := alternating-path closure from unmatched rows
//	             (row → zero col via non-matching edge, col → its matched row)
//	cover     := (rows \ reachableRows) ∪ (cols ∩ reachableCols)
//
// Complexity: O(rows·cols) time, O(rows+cols) space.
func (e *hungarianEngine) computeCover() {
	reachRow := make([]bool, e.rows)
	reachCol := make([]bool, e.cols)

	// Seed: every unmatched row.
	queue := make([]int, 0, e.rows)
	for row := 0; row < e.rows; row++ {
		if e.matchRow[row] == -1 {
			reachRow[row] = true
			queue = append(queue, row)
		}
	}

	// BFS over alternating paths.
	var row int
	for len(queue) > 0 {
		row, queue = queue[0], queue[1:]
		for col := 0; col < e.cols; col++ {
			if reachCol[col] || e.red[row*e.cols+col] != 0 {
				continue
			}
			reachCol[col] = true
			if next := e.matchCol[col]; next != -1 && !reachRow[next] {
				reachRow[next] = true
				queue = append(queue, next)
			}
		}
	}

	for r := 0; r < e.rows; r++ {
		e.rowCovered[r] = !reachRow[r]
	}
	for c := 0; c < e.cols; c++ {
		e.colCovered[c] = reachCol[c]
	}
}

// adjust performs the augmentation step of the Hungarian method: find the
// minimum value among uncovered cells, subtract it from every uncovered cell
// and add it to every doubly covered cell. Singly covered cells — which
// include every matched zero, since König covers exactly one endpoint of
// each matched edge — are unchanged, so the matching survives and at least
// one new zero appears at an (uncovered row, uncovered col) position.
//
// Returns false if no uncovered cell exists (broken invariant: the loop
// should have declared optimality before).
//
// Complexity: O(rows·cols).
func (e *hungarianEngine) adjust() bool {
	var (
		delta int64
		found bool
		idx   int
	)
	for row := 0; row < e.rows; row++ {
		if e.rowCovered[row] {
			continue
		}
		for col := 0; col < e.cols; col++ {
			if e.colCovered[col] {
				continue
			}
			idx = row*e.cols + col
			if !found || e.red[idx] < delta {
				delta, found = e.red[idx], true
			}
		}
	}
	if !found {
		return false
	}

	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			idx = row*e.cols + col
			switch {
			case !e.rowCovered[row] && !e.colCovered[col]:
				e.red[idx] -= delta
			case e.rowCovered[row] && e.colCovered[col]:
				e.red[idx] += delta
			}
		}
	}

	return true
}
