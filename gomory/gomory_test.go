package gomory_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/minimax/gomory"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/trace"
	"github.com/stretchr/testify/require"
)

const tol = 1e-7

func requireIntegral(t *testing.T, x []float64) {
	t.Helper()
	for j, v := range x {
		require.InDelta(t, math.Round(v), v, tol, "x[%d]=%g is not integral", j, v)
	}
}

func TestSingleCut(t *testing.T) {
	// max x1 s.t. 2x1 <= 3: relaxation 1.5, one cut gives 1.
	p, err := model.New([][]int{{2}}, []int{3}, []model.Relation{model.LessEqual}, []int{1}, model.Maximize)
	require.NoError(t, err)

	var rec trace.Recorder
	res, err := gomory.Solve(context.Background(), p, gomory.WithHooks(rec.Hooks()))
	require.NoError(t, err)
	require.Equal(t, model.Optimal, res.Status)
	require.Equal(t, []float64{1}, res.Vectors[0])
	require.Equal(t, 1.0, res.Values[0])
	require.Equal(t, [][2]int{{1, 1}}, progressOfCuts(rec.Progress()))
	require.Equal(t, 1, rec.Completed())
}

// progressOfCuts keeps only the cut-level progress events (total == MaxCuts).
func progressOfCuts(all [][2]int) [][2]int {
	var out [][2]int
	for _, e := range all {
		if e[1] == gomory.DefaultMaxCuts {
			out = append(out, [2]int{e[0], 1})
		}
	}

	return out
}

func TestTextbookExample(t *testing.T) {
	// max x2 s.t. 3x1 + 2x2 <= 6, -3x1 + 2x2 <= 0: LP (1, 1.5), IP value 1.
	p, err := model.New(
		[][]int{{3, 2}, {-3, 2}}, []int{6, 0},
		[]model.Relation{model.LessEqual, model.LessEqual},
		[]int{0, 1}, model.Maximize)
	require.NoError(t, err)

	res, err := gomory.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, model.Optimal, res.Status)
	require.InDelta(t, 1.0, res.Values[0], tol)
	requireIntegral(t, res.Vectors[0])
	ok, _ := p.Feasible(res.Vectors[0], tol)
	require.True(t, ok)
}

func TestMinimizeWithSurplus(t *testing.T) {
	// min x1 + x2 s.t. 2x1 + 2x2 >= 3: LP 1.5, IP 2.
	p, err := model.New([][]int{{2, 2}}, []int{3}, []model.Relation{model.GreaterEqual}, []int{1, 1}, model.Minimize)
	require.NoError(t, err)

	res, err := gomory.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, model.Optimal, res.Status)
	require.Equal(t, 2.0, res.Values[0])
	require.Equal(t, []float64{2, 0}, res.Vectors[0])
}

func TestInfeasible(t *testing.T) {
	// Continuous infeasibility propagates.
	p := &model.Problem{
		A: [][]float64{{1}, {1}}, B: []float64{5, 2},
		R: []model.Relation{model.GreaterEqual, model.LessEqual}, C: []float64{1},
	}
	res, err := gomory.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, model.Infeasible, res.Status)

	// 2x1 == 1 has a continuous solution but no integer one.
	q := &model.Problem{A: [][]float64{{2}}, B: []float64{1}, R: []model.Relation{model.Equal}, C: []float64{1}}
	res, err = gomory.Solve(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, model.Infeasible, res.Status)
}

func TestCutLimitAndOptions(t *testing.T) {
	p, _ := model.New([][]int{{2}}, []int{3}, []model.Relation{model.LessEqual}, []int{1}, model.Maximize)

	_, err := gomory.Solve(context.Background(), p, gomory.WithMaxCuts(0))
	require.ErrorIs(t, err, gomory.ErrCutLimit)

	_, err = gomory.Solve(context.Background(), p, gomory.WithMaxCuts(-1))
	require.ErrorIs(t, err, gomory.ErrOptionViolation)
	_, err = gomory.Solve(context.Background(), p, gomory.WithEpsilon(0.7))
	require.ErrorIs(t, err, gomory.ErrOptionViolation)
	_, err = gomory.Solve(context.Background(), p, gomory.WithMaxPivots(0))
	require.ErrorIs(t, err, gomory.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gomory.Solve(ctx, p)
	require.ErrorIs(t, err, model.ErrCanceled)
}

// bruteForce enumerates x in [0, limit]^n.
func bruteForce(p *model.Problem, limit int) (best float64, found bool) {
	n := len(p.C)
	x := make([]float64, n)
	var rec func(j int)
	rec = func(j int) {
		if j == n {
			if ok, _ := p.Feasible(x, tol); ok {
				v, _ := p.Evaluate(x)
				if !found || p.Target.Better(v, best) {
					best, found = v, true
				}
			}
			return
		}
		for k := 0; k <= limit; k++ {
			x[j] = float64(k)
			rec(j + 1)
		}
	}
	rec(0)

	return best, found
}

func TestAgreesWithEnumeration(t *testing.T) {
	rng := model.NewRand(11)
	for trial := 0; trial < 20; trial++ {
		a := [][]int{
			{1 + rng.Intn(4), 1 + rng.Intn(4)},
			{1 + rng.Intn(4), 1 + rng.Intn(4)},
		}
		b := []int{3 + rng.Intn(10), 3 + rng.Intn(10)}
		c := []int{1 + rng.Intn(5), 1 + rng.Intn(5)}
		p, err := model.New(a, b, []model.Relation{model.LessEqual, model.LessEqual}, c, model.Maximize)
		require.NoError(t, err)

		want, found := bruteForce(p, 12)
		require.True(t, found)

		res, err := gomory.Solve(context.Background(), p, gomory.WithMaxCuts(1000))
		require.NoError(t, err, "trial %d: %+v", trial, p)
		require.Equal(t, model.Optimal, res.Status)
		require.InDelta(t, want, res.Values[0], tol, "trial %d", trial)
		requireIntegral(t, res.Vectors[0])
		ok, _ := p.Feasible(res.Vectors[0], tol)
		require.True(t, ok)
	}
}
