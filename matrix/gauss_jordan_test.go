package matrix_test

import (
	"testing"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/stretchr/testify/require"
)

func TestGaussJordanBasic(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{2, 4, 6},
		{1, 3, 5},
		{3, 1, 2},
	})
	require.NoError(t, err)

	out, err := matrix.GaussJordan(m, 0, 0)
	require.NoError(t, err)

	want := [][]float64{
		{1, 2, 3},
		{0, 1, 2},
		{0, -5, -7},
	}
	got := out.ToRows()
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], 1e-12)
	}

	// Input untouched.
	v, _ := m.At(0, 0)
	require.Equal(t, 2.0, v)
}

func TestGaussJordanErrors(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)

	_, err = matrix.GaussJordan(m, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDegeneratePivot)

	_, err = matrix.GaussJordan(m, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.GaussJordan(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Tiny pivot below a custom tolerance is degenerate too.
	tiny, _ := matrix.NewFromRows([][]float64{{1e-7, 1}})
	_, err = matrix.GaussJordan(tiny, 0, 0, matrix.WithEpsilon(1e-6))
	require.ErrorIs(t, err, matrix.ErrDegeneratePivot)
	_, err = matrix.GaussJordan(tiny, 0, 0)
	require.NoError(t, err)
}

// Pivoting twice on the same cell is a no-op: column c is already e_r.
func TestGaussJordanRoundTrip(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{3, -1, 2, 7},
		{1, 4, -2, 0.5},
		{-2, 1, 5, 3},
	})
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			once, err := matrix.GaussJordan(m, r, c)
			require.NoError(t, err)
			twice, err := matrix.GaussJordan(once, r, c)
			require.NoError(t, err)

			a, b := once.ToRows(), twice.ToRows()
			for i := range a {
				require.InDeltaSlice(t, a[i], b[i], 1e-9)
			}
			col, _ := once.Col(c)
			for i := range col {
				if i == r {
					require.Equal(t, 1.0, col[i])
				} else {
					require.Equal(t, 0.0, col[i])
				}
			}
		}
	}
}

// Large tableaux take the parallel path; results must match sequential.
func TestGaussJordanParallelMatchesSequential(t *testing.T) {
	const n = 80
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64((i*7+j*13)%17) - 8
		}
		rows[i][i] += 50
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	seq, err := matrix.GaussJordan(m, 3, 3)
	require.NoError(t, err)
	par, err := matrix.GaussJordan(m, 3, 3, matrix.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, seq.ToRows(), par.ToRows())
}

func TestParallelApply(t *testing.T) {
	m, err := matrix.NewDense(100, 100)
	require.NoError(t, err)

	require.NoError(t, matrix.ParallelApply(m, 8, func(i, j int, _ float64) float64 {
		return float64(i*100 + j)
	}))
	v, _ := m.At(99, 99)
	require.Equal(t, 9999.0, v)
	v, _ = m.At(42, 7)
	require.Equal(t, 4207.0, v)

	require.ErrorIs(t, matrix.ParallelApply(nil, 2, nil), matrix.ErrNilMatrix)
}
