// SPDX-License-Identifier: MIT

package assign

// Test-Bridge (White-Box) for solver instrumentation.
//
// Purpose:
//   - Expose the backtrack leaf counter and the Hungarian iteration counter
//     to assign_test ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while the
//     package-internal placement grants access to private engine state.

import "github.com/matchmax/matchmax/matrix"

// BacktrackLeafCount_TestOnly runs the exhaustive engine on m and reports how
// many complete assignments (leaves) the search visited alongside the result.
func BacktrackLeafCount_TestOnly(m matrix.Matrix) (Solution, uint64, error) {
	sol, e, err := solveBacktrack(m)
	if err != nil {
		return Solution{}, 0, err
	}

	return sol, e.leaves, nil
}

// HungarianIterations_TestOnly runs the Hungarian engine on m and reports how
// many outer matching-growth rounds the fixpoint loop performed.
func HungarianIterations_TestOnly(m matrix.Matrix) (Solution, int, error) {
	sol, e, err := solveHungarian(m, DefaultOptions())
	if err != nil {
		return Solution{}, 0, err
	}

	return sol, e.iterations, nil
}
