// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/trace"
)

// Sentinel errors for simplex execution.
var (
	// ErrPivotLimit is returned when one pivot loop exceeds MaxPivots.
	ErrPivotLimit = errors.New("simplex: pivot limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplex: invalid option supplied")
)

// DefaultMaxPivots bounds one primal or dual pivot loop.
const DefaultMaxPivots = 10_000

// Option configures a Tableau via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one solve.
type Options struct {
	// Ctx allows cancellation; checked before every pivot.
	Ctx context.Context

	// Hooks receives (phase, phases) progress at the end of each phase and
	// log lines on pivots, phase changes and outcomes.
	Hooks trace.Hooks

	// Epsilon is the one tolerance for pivots, optimality and feasibility.
	Epsilon float64

	// MaxPivots bounds each pivot loop (> 0).
	MaxPivots int

	// Workers is forwarded to the Gauss-Jordan kernel.
	Workers int

	err error
}

// DefaultOptions returns:
//   - context.Background()
//   - no hooks
//   - Epsilon = matrix.DefaultEpsilon
//   - MaxPivots = DefaultMaxPivots
//   - Workers = 1
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   matrix.DefaultEpsilon,
		MaxPivots: DefaultMaxPivots,
		Workers:   matrix.DefaultWorkers,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHooks installs trace hooks.
func WithHooks(h trace.Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

// WithEpsilon sets the tolerance. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxPivots bounds each pivot loop. n must be > 0.
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPivots must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPivots = n
	}
}

// WithWorkers sets the pivot kernel's goroutine count (values < 1 mean 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// gatherOptions applies opts in order and reports the first violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

// VarKind classifies a tableau column.
type VarKind int

const (
	// Original is a decision variable of the problem (ids 1..n).
	Original VarKind = iota
	// Slack is the +1 column of a <= row.
	Slack
	// Surplus is the -1 column of a >= row.
	Surplus
	// Artificial is the phase-1 helper of a >= or == row.
	Artificial
	// Cut is the slack of an appended cutting-plane row.
	Cut
)

var varKindNames = [...]string{"x", "s", "e", "a", "g"}

// String returns a one-letter prefix used in tableau dumps.
func (k VarKind) String() string {
	if k < 0 || int(k) >= len(varKindNames) {
		return "?"
	}

	return varKindNames[k]
}
