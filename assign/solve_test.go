package assign_test

import (
	"testing"

	"github.com/matchmax/matchmax/assign"
	"github.com/stretchr/testify/require"
)

func TestSolve_InvalidMatrix(t *testing.T) {
	_, err := assign.Solve(nil, assign.DefaultOptions())
	require.ErrorIs(t, err, assign.ErrInvalidMatrix)
}

func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	m := mustDense(t, [][]int64{{1}})
	_, err := assign.Solve(m, assign.Options{Algo: assign.Algorithm(99)})
	require.ErrorIs(t, err, assign.ErrUnsupportedAlgorithm)
}

func TestSolve_RoutesByAlgorithm(t *testing.T) {
	// The fixture separates the strategies: greedy locks onto 5 at (0,0) and
	// ends with 6, while both exact solvers find 8.
	m := mustDense(t, [][]int64{{5, 4}, {4, 1}})

	cases := []struct {
		algo assign.Algorithm
		want int64
	}{
		{assign.Greedy, 6},
		{assign.Backtrack, 8},
		{assign.Hungarian, 8},
	}
	for _, tc := range cases {
		sol, err := assign.Solve(m, assign.Options{Algo: tc.algo})
		require.NoError(t, err, tc.algo)
		requireValidSolution(t, m, sol)
		require.Equal(t, tc.want, sol.Sum, tc.algo)
	}
}

func TestSolve_DefaultOptionsIsHungarian(t *testing.T) {
	opts := assign.DefaultOptions()
	require.Equal(t, assign.Hungarian, opts.Algo)
	require.Zero(t, opts.MaxIterations)

	m := mustDense(t, [][]int64{{5, 4}, {4, 1}})
	sol, err := assign.Solve(m, opts)
	require.NoError(t, err)
	require.EqualValues(t, 8, sol.Sum)
}

func TestSolve_CrossAlgorithmOrdering(t *testing.T) {
	// On every fixture: greedy ≤ backtrack, and backtrack == hungarian (both
	// are exact, so their sums must coincide even when selections differ).
	fixtures := [][][]int64{
		{{5}},
		{{1, 2}, {3, 4}},
		{{7, 7}, {7, 7}},
		{{5, 4}, {4, 1}},
		{{9, 1, 1}, {1, 9, 1}, {1, 1, 9}},
		{{-5, -1}, {-2, -3}},
		{{1, 2, 3}, {4, 5, 6}},
		{{1, 2}, {3, 4}, {5, 6}},
		{{3, 8, 2}, {8, 1, 5}, {2, 5, 9}},
		{{7, 3, 1, 8, 5}, {2, 9, 4, 6, 1}, {5, 2, 8, 3, 7}, {4, 6, 2, 9, 3}, {8, 1, 5, 2, 6}},
	}
	for i, vals := range fixtures {
		m := mustDense(t, vals)

		greedy, err := assign.Solve(m, assign.Options{Algo: assign.Greedy})
		require.NoError(t, err, "fixture %d", i)
		requireValidSolution(t, m, greedy)

		bt, err := assign.Solve(m, assign.Options{Algo: assign.Backtrack})
		require.NoError(t, err, "fixture %d", i)
		requireValidSolution(t, m, bt)

		hu, err := assign.Solve(m, assign.Options{Algo: assign.Hungarian})
		require.NoError(t, err, "fixture %d", i)
		requireValidSolution(t, m, hu)

		require.LessOrEqual(t, greedy.Sum, bt.Sum, "fixture %d", i)
		require.Equal(t, bt.Sum, hu.Sum, "fixture %d", i)
	}
}

func TestAlgorithm_String(t *testing.T) {
	require.Equal(t, "greedy", assign.Greedy.String())
	require.Equal(t, "backtrack", assign.Backtrack.String())
	require.Equal(t, "hungarian", assign.Hungarian.String())
	require.Equal(t, "unknown", assign.Algorithm(99).String())
}
