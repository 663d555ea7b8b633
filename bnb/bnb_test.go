package bnb_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/minimax/bnb"
	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/trace"
	"github.com/stretchr/testify/require"
)

const tol = 1e-7

type solveFunc func(context.Context, *model.Problem, ...bnb.Option) (model.Result, error)

var variants = []struct {
	name  string
	solve solveFunc
	ties  bool // returns every optimal vector
}{
	{"tree", bnb.SolveTree, true},
	{"multi", bnb.SolveMulti, true},
	{"single", bnb.SolveSingle, false},
}

func TestScenarioTwoVariables(t *testing.T) {
	// max x1 + x2 s.t. x1 + x2 <= 4 over {0,1}^2: both variables set.
	p, err := model.New([][]int{{1, 1}}, []int{4}, []model.Relation{model.LessEqual}, []int{1, 1}, model.Maximize)
	require.NoError(t, err)

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.solve(context.Background(), p)
			require.NoError(t, err)
			require.Equal(t, model.Optimal, res.Status)
			require.Equal(t, [][]float64{{1, 1}}, res.Vectors)
			require.Equal(t, []float64{2}, res.Values)
		})
	}
}

func TestInfeasible(t *testing.T) {
	p := &model.Problem{
		A: [][]float64{{1}, {1}}, B: []float64{5, 2},
		R: []model.Relation{model.GreaterEqual, model.LessEqual}, C: []float64{1},
	}
	// Root bounds pass; every leaf breaks one of the two rows.
	q := &model.Problem{
		A:      [][]float64{{1, 1}, {1, 1}},
		B:      []float64{1, 0.5},
		R:      []model.Relation{model.GreaterEqual, model.LessEqual},
		C:      []float64{1, 1},
		Target: model.Minimize,
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for _, prob := range []*model.Problem{p, q} {
				res, err := v.solve(context.Background(), prob)
				require.NoError(t, err)
				require.Equal(t, model.Infeasible, res.Status)
				require.Empty(t, res.Vectors)
			}
		})
	}
}

func TestTies(t *testing.T) {
	// max x1 + x2 s.t. x1 + x2 <= 1: (0,1) and (1,0) tie at 1.
	p, _ := model.New([][]int{{1, 1}}, []int{1}, []model.Relation{model.LessEqual}, []int{1, 1}, model.Maximize)
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.solve(context.Background(), p)
			require.NoError(t, err)
			require.Equal(t, model.Optimal, res.Status)
			if v.ties {
				require.ElementsMatch(t, [][]float64{{0, 1}, {1, 0}}, res.Vectors)
				require.Equal(t, []float64{1, 1}, res.Values)
				return
			}
			require.Len(t, res.Vectors, 1)
			require.Equal(t, 1.0, res.Values[0])
		})
	}
}

func TestNoConstraints(t *testing.T) {
	p := &model.Problem{C: []float64{3, -1, 0}, Target: model.Minimize}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.solve(context.Background(), p)
			require.NoError(t, err)
			require.Equal(t, model.Optimal, res.Status)
			x, val, ok := res.Best()
			require.True(t, ok)
			require.Equal(t, -1.0, val)
			require.Equal(t, 0.0, x[0])
			require.Equal(t, 1.0, x[1])
		})
	}
}

// enumerate returns the optimal value and every optimal vector of p over
// {0,1}^n, or found=false.
func enumerate(p *model.Problem, eps float64) (best float64, opt [][]float64, found bool) {
	n := len(p.C)
	for mask := 0; mask < 1<<n; mask++ {
		x := make([]float64, n)
		for j := range x {
			if mask&(1<<j) != 0 {
				x[j] = 1
			}
		}
		if ok, _ := p.Feasible(x, eps); !ok {
			continue
		}
		v, _ := p.Evaluate(x)
		switch {
		case !found || p.Target.Better(v, best) && math.Abs(v-best) > tol:
			best, opt, found = v, [][]float64{x}, true
		case math.Abs(v-best) <= tol:
			opt = append(opt, x)
		}
	}

	return best, opt, found
}

func TestAgreesWithEnumeration(t *testing.T) {
	rng := model.NewRand(7)
	for trial := 0; trial < 60; trial++ {
		rows, cols := 1+rng.Intn(3), 1+rng.Intn(6)
		p := model.Random(rng, rows, cols, -5, 5)
		want, opt, found := enumerate(p, matrix.DefaultEpsilon)

		for _, v := range variants {
			name := fmt.Sprintf("trial %d %s", trial, v.name)
			res, err := v.solve(context.Background(), p)
			require.NoError(t, err, name)
			if !found {
				require.Equal(t, model.Infeasible, res.Status, name)
				continue
			}
			require.Equal(t, model.Optimal, res.Status, name)
			for i, x := range res.Vectors {
				require.InDelta(t, want, res.Values[i], tol, name)
				require.Contains(t, opt, x, name)
			}
			if v.ties {
				require.ElementsMatch(t, opt, res.Vectors, name)
			}
		}
	}
}

func TestSimpleBenchmarkProblem(t *testing.T) {
	// Minimizing Σx with only <= rows: the zero vector is the unique optimum.
	p := model.Simple(4, 6)
	for _, v := range variants {
		res, err := v.solve(context.Background(), p)
		require.NoError(t, err, v.name)
		require.Equal(t, [][]float64{make([]float64, 6)}, res.Vectors, v.name)
		require.Equal(t, []float64{0}, res.Values, v.name)
	}
}

func TestHooksAndCancel(t *testing.T) {
	p, _ := model.New([][]int{{1, 1, 1}}, []int{2}, []model.Relation{model.LessEqual}, []int{1, 2, 3}, model.Maximize)

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			var rec trace.Recorder
			_, err := v.solve(context.Background(), p, bnb.WithHooks(rec.Hooks()))
			require.NoError(t, err)
			require.Equal(t, 1, rec.Completed())
			require.NotEmpty(t, rec.Progress())
			last := rec.Progress()[len(rec.Progress())-1]
			require.Equal(t, [2]int{3, 3}, last)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = v.solve(ctx, p)
			require.ErrorIs(t, err, model.ErrCanceled)
			require.ErrorIs(t, err, context.Canceled)

			_, err = v.solve(context.Background(), p, bnb.WithEpsilon(-1))
			require.ErrorIs(t, err, bnb.ErrOptionViolation)

			_, err = v.solve(context.Background(), &model.Problem{})
			require.ErrorIs(t, err, model.ErrEmptyProblem)
		})
	}
}
