package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/minimax/gomory"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/solver"
	"github.com/katalvlaran/minimax/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for _, a := range solver.Algorithms() {
		got, err := solver.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
		assert.True(t, a.Valid())
	}

	got, err := solver.ParseAlgorithm(" Single-BnB ")
	require.NoError(t, err)
	assert.Equal(t, solver.SingleIncrementBranchAndBound, got)

	_, err = solver.ParseAlgorithm("genetic")
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	assert.False(t, solver.Simplex.Boolean())
	assert.False(t, solver.Gomory.Boolean())
	assert.True(t, solver.MultiBranchAndBound.Boolean())
	assert.Equal(t, "Algorithm(9)", solver.Algorithm(9).String())
}

func TestNewRejectsUnknown(t *testing.T) {
	_, err := solver.New(solver.Algorithm(-1))
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	_, err = solver.Solve(context.Background(), &model.Problem{C: []float64{1}}, solver.Algorithm(42))
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
}

func TestEveryAlgorithmReportsInfeasible(t *testing.T) {
	// x1 >= 5 and x1 <= 2.
	p := &model.Problem{
		A: [][]float64{{1}, {1}}, B: []float64{5, 2},
		R: []model.Relation{model.GreaterEqual, model.LessEqual}, C: []float64{1},
	}
	for _, a := range solver.Algorithms() {
		res, err := solver.Solve(context.Background(), p, a)
		require.NoError(t, err, a.String())
		assert.Equal(t, model.Infeasible, res.Status, a.String())
		_, _, ok := res.Best()
		assert.False(t, ok, a.String())
	}
}

func TestDomains(t *testing.T) {
	// max x1 + x2 s.t. x1 + x2 <= 4: continuous and integer reach 4, the
	// boolean variants stop at (1, 1).
	p, err := model.New([][]int{{1, 1}}, []int{4}, []model.Relation{model.LessEqual}, []int{1, 1}, model.Maximize)
	require.NoError(t, err)

	want := map[solver.Algorithm]float64{
		solver.Simplex:                       4,
		solver.Gomory:                        4,
		solver.TreeBranchAndBound:            2,
		solver.MultiBranchAndBound:           2,
		solver.SingleIncrementBranchAndBound: 2,
	}
	for a, value := range want {
		s, err := solver.New(a)
		require.NoError(t, err)
		res, err := s.Solve(context.Background(), p)
		require.NoError(t, err, a.String())
		x, v, ok := res.Best()
		require.True(t, ok, a.String())
		assert.InDelta(t, value, v, 1e-9, a.String())
		feasible, _ := p.Feasible(x, 1e-9)
		assert.True(t, feasible, a.String())
	}
}

func TestOptionsReachPackages(t *testing.T) {
	p, _ := model.New([][]int{{2}}, []int{3}, []model.Relation{model.LessEqual}, []int{1}, model.Maximize)

	_, err := solver.Solve(context.Background(), p, solver.Gomory, solver.WithMaxCuts(0))
	require.ErrorIs(t, err, gomory.ErrCutLimit)

	_, err = solver.Solve(context.Background(), p, solver.Simplex, solver.WithMaxPivots(-3))
	require.ErrorIs(t, err, simplex.ErrOptionViolation)

	var rec trace.Recorder
	res, err := solver.Solve(context.Background(), p, solver.TreeBranchAndBound,
		solver.WithHooks(rec.Hooks()), solver.WithWorkers(4), solver.WithEpsilon(1e-6))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, res.Values)
	assert.Equal(t, 1, rec.Completed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, a := range solver.Algorithms() {
		_, err = solver.Solve(ctx, p, a)
		assert.ErrorIs(t, err, model.ErrCanceled, a.String())
	}
}

func TestBooleanVariantsAgree(t *testing.T) {
	rng := model.NewRand(3)
	boolean := []solver.Algorithm{
		solver.TreeBranchAndBound, solver.MultiBranchAndBound, solver.SingleIncrementBranchAndBound,
	}
	for trial := 0; trial < 30; trial++ {
		p := model.Random(rng, 2, 5, -4, 6)
		var ref solver.Result
		for i, a := range boolean {
			name := fmt.Sprintf("trial %d %v", trial, a)
			res, err := solver.Solve(context.Background(), p, a)
			require.NoError(t, err, name)
			if i == 0 {
				ref = res
				continue
			}
			require.Equal(t, ref.Status, res.Status, name)
			if res.Status == model.Optimal {
				require.InDelta(t, ref.Values[0], res.Values[0], 1e-9, name)
			}
			if a == solver.MultiBranchAndBound {
				require.ElementsMatch(t, ref.Vectors, res.Vectors, name)
			}
		}
	}
}
