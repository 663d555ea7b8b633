// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/minimax/gomory"
	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/trace"
)

// ErrUnsupportedAlgorithm is returned for an Algorithm outside the enum or
// a name ParseAlgorithm does not know.
var ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

// Result is the shared solve outcome.
type Result = model.Result

// Solver is anything that can solve a Problem.
type Solver interface {
	Solve(ctx context.Context, p *model.Problem) (Result, error)
}

// Algorithm selects a solver.
type Algorithm int

// Enum values (stable ordering).
const (
	Simplex                       Algorithm = iota // continuous LP, x >= 0
	Gomory                                         // integer x >= 0, cutting planes
	TreeBranchAndBound                             // boolean x, breadth-first, all ties
	MultiBranchAndBound                            // boolean x, cyclic multi-front, all ties
	SingleIncrementBranchAndBound                  // boolean x, depth-first, one vector
)

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Simplex:
		return "simplex"
	case Gomory:
		return "gomory"
	case TreeBranchAndBound:
		return "tree"
	case MultiBranchAndBound:
		return "multi"
	case SingleIncrementBranchAndBound:
		return "single"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is one of the enum values.
func (a Algorithm) Valid() bool { return a >= Simplex && a <= SingleIncrementBranchAndBound }

// Boolean reports whether a restricts variables to {0, 1}.
func (a Algorithm) Boolean() bool { return a >= TreeBranchAndBound && a.Valid() }

// Algorithms lists every algorithm in enum order.
func Algorithms() []Algorithm {
	return []Algorithm{Simplex, Gomory, TreeBranchAndBound, MultiBranchAndBound, SingleIncrementBranchAndBound}
}

// ParseAlgorithm maps a case-insensitive name (String output, or the long
// forms "tree-bnb", "multi-bnb", "single-bnb") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "-bnb")
	for _, a := range Algorithms() {
		if a.String() == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("solver.ParseAlgorithm(%q): %w", name, ErrUnsupportedAlgorithm)
}

// Option configures every solver through one set of knobs.
type Option func(*Options)

// Options is the union of the per-package options. Fields that an
// algorithm does not use are ignored (MaxCuts outside Gomory, MaxPivots
// and Workers for branch-and-bound).
type Options struct {
	Hooks     trace.Hooks
	Epsilon   float64
	MaxPivots int
	MaxCuts   int
	Workers   int
}

// DefaultOptions collects the package defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:   matrix.DefaultEpsilon,
		MaxPivots: simplex.DefaultMaxPivots,
		MaxCuts:   gomory.DefaultMaxCuts,
		Workers:   matrix.DefaultWorkers,
	}
}

// WithHooks installs trace hooks.
func WithHooks(h trace.Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

// WithEpsilon sets the tolerance. Range checks happen in the selected
// package at solve time.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxPivots bounds each simplex pivot loop.
func WithMaxPivots(n int) Option {
	return func(o *Options) { o.MaxPivots = n }
}

// WithMaxCuts bounds the number of Gomory cuts.
func WithMaxCuts(n int) Option {
	return func(o *Options) { o.MaxCuts = n }
}

// WithWorkers sets the pivot kernel's goroutine count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
