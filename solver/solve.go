// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/minimax/bnb"
	"github.com/katalvlaran/minimax/gomory"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
)

// dispatcher is the Solver returned by New.
type dispatcher struct {
	algo Algorithm
	opts Options
}

// New returns a Solver running algo with opts.
//
// Errors: ErrUnsupportedAlgorithm.
func New(algo Algorithm, opts ...Option) (Solver, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("solver.New(%v): %w", algo, ErrUnsupportedAlgorithm)
	}

	return &dispatcher{algo: algo, opts: gatherOptions(opts...)}, nil
}

// Solve is shorthand for New(algo, opts...) followed by Solve(ctx, p).
func Solve(ctx context.Context, p *model.Problem, algo Algorithm, opts ...Option) (Result, error) {
	s, err := New(algo, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(ctx, p)
}

// Solve routes p to the selected package, which validates it and fires
// Hooks.OnComplete on return. Infeasible and Unbounded come back as
// Result.Status with a nil error.
//
// Errors: model validation errors, the selected package's
// ErrOptionViolation, simplex.ErrPivotLimit, gomory.ErrCutLimit,
// model.ErrCanceled.
func (d *dispatcher) Solve(ctx context.Context, p *model.Problem) (Result, error) {
	o := d.opts
	switch d.algo {
	case Simplex:
		return simplex.Solve(ctx, p,
			simplex.WithHooks(o.Hooks),
			simplex.WithEpsilon(o.Epsilon),
			simplex.WithMaxPivots(o.MaxPivots),
			simplex.WithWorkers(o.Workers),
		)

	case Gomory:
		return gomory.Solve(ctx, p,
			gomory.WithHooks(o.Hooks),
			gomory.WithEpsilon(o.Epsilon),
			gomory.WithMaxPivots(o.MaxPivots),
			gomory.WithMaxCuts(o.MaxCuts),
			gomory.WithWorkers(o.Workers),
		)

	case TreeBranchAndBound:
		return bnb.SolveTree(ctx, p, d.bnbOptions()...)

	case MultiBranchAndBound:
		return bnb.SolveMulti(ctx, p, d.bnbOptions()...)

	case SingleIncrementBranchAndBound:
		return bnb.SolveSingle(ctx, p, d.bnbOptions()...)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

func (d *dispatcher) bnbOptions() []bnb.Option {
	return []bnb.Option{
		bnb.WithHooks(d.opts.Hooks),
		bnb.WithEpsilon(d.opts.Epsilon),
	}
}
