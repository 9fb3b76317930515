package matrix_test

import (
	"testing"

	"github.com/matchmax/matchmax/matrix"
	"github.com/stretchr/testify/require"
)

// fill writes vals row-major into m and fails the test on any Set error.
func fill(t *testing.T, m matrix.Matrix, vals [][]int64) {
	t.Helper()
	for i, row := range vals {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNewDense_AllocationGuard(t *testing.T) {
	// rows*cols above the cell budget must fail before allocating.
	_, err := matrix.NewDense(1<<16, 1<<16)
	require.ErrorIs(t, err, matrix.ErrAllocationFailure)
}

func TestDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Zero(t, v)
		}
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}} {
		_, aerr := m.At(idx[0], idx[1])
		require.ErrorIs(t, aerr, matrix.ErrOutOfRange, "At%v", idx)
		serr := m.Set(idx[0], idx[1], 1)
		require.ErrorIs(t, serr, matrix.ErrOutOfRange, "Set%v", idx)
	}

	// A failed Set must not have touched any cell.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Zero(t, v)
		}
	}
}

func TestDense_SetTouchesSingleCell(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 42))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			if i == 1 && j == 2 {
				require.EqualValues(t, 42, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	fill(t, m, [][]int64{{1, 2}, {3, 4}})

	cp := m.Clone()
	require.Equal(t, m.Rows(), cp.Rows())
	require.Equal(t, m.Cols(), cp.Cols())

	// Mutate the clone; the original must be untouched (no aliased storage).
	require.NoError(t, cp.Set(0, 0, -99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)

	// And the other way around.
	require.NoError(t, m.Set(1, 1, 77))
	v, err = cp.At(1, 1)
	require.NoError(t, err)
	require.EqualValues(t, 4, v)
}

func TestDense_RowMin_ColMin(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	fill(t, m, [][]int64{
		{5, -2, 7},
		{0, 4, -9},
		{3, 3, 3},
	})

	wantRow := []int64{-2, -9, 3}
	for i, want := range wantRow {
		got, rerr := m.RowMin(i)
		require.NoError(t, rerr)
		require.Equal(t, want, got, "row %d", i)
	}

	wantCol := []int64{0, -2, -9}
	for j, want := range wantCol {
		got, cerr := m.ColMin(j)
		require.NoError(t, cerr)
		require.Equal(t, want, got, "col %d", j)
	}

	_, err = m.RowMin(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ColMin(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	fill(t, m, [][]int64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
