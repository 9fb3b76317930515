package assign_test

import (
	"testing"

	"github.com/matchmax/matchmax/assign"
	"github.com/matchmax/matchmax/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense matrix from row-major literals.
func mustDense(t *testing.T, vals [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(vals), len(vals[0]))
	require.NoError(t, err)
	for i, row := range vals {
		require.Len(t, row, len(vals[0]), "ragged fixture")
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// requireValidSolution asserts the invariants every returned Solution must
// satisfy: pairwise-distinct rows and columns, selection size bounded by the
// min dimension, values matching the source matrix, and Sum matching the
// selection.
func requireValidSolution(t *testing.T, m matrix.Matrix, sol assign.Solution) {
	t.Helper()

	minDim := m.Rows()
	if m.Cols() < minDim {
		minDim = m.Cols()
	}
	require.LessOrEqual(t, len(sol.Selection), minDim)

	seenRows := make(map[int]bool, len(sol.Selection))
	seenCols := make(map[int]bool, len(sol.Selection))
	var sum int64
	for _, el := range sol.Selection {
		require.False(t, seenRows[el.Row], "duplicate row %d", el.Row)
		require.False(t, seenCols[el.Col], "duplicate col %d", el.Col)
		seenRows[el.Row] = true
		seenCols[el.Col] = true

		v, err := m.At(el.Row, el.Col)
		require.NoError(t, err)
		require.Equal(t, v, el.Value, "value mismatch at (%d,%d)", el.Row, el.Col)
		sum += el.Value
	}
	require.Equal(t, sum, sol.Sum, "Sum must equal the selection total")
}
