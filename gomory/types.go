// SPDX-License-Identifier: MIT

package gomory

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/trace"
)

// Sentinel errors for cutting-plane execution.
var (
	// ErrCutLimit is returned when more than MaxCuts cuts would be needed.
	ErrCutLimit = errors.New("gomory: cut limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gomory: invalid option supplied")
)

// DefaultMaxCuts bounds the number of appended cutting planes.
const DefaultMaxCuts = 200

// Option configures the solver via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one solve.
type Options struct {
	Ctx       context.Context
	Hooks     trace.Hooks
	Epsilon   float64 // integrality, pivot and optimality tolerance
	MaxPivots int     // per pivot loop, forwarded to simplex
	MaxCuts   int     // cutting planes before ErrCutLimit
	Workers   int     // forwarded to the pivot kernel

	err error
}

// DefaultOptions mirrors simplex.DefaultOptions plus MaxCuts = DefaultMaxCuts.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   matrix.DefaultEpsilon,
		MaxPivots: simplex.DefaultMaxPivots,
		MaxCuts:   DefaultMaxCuts,
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

// WithHooks installs trace hooks (shared with the inner simplex).
func WithHooks(h trace.Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

// WithEpsilon sets the tolerance; eps must be finite and in (0, 0.5).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || eps <= 0 || eps >= 0.5 {
			o.err = fmt.Errorf("%w: Epsilon must be in (0, 0.5) (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxPivots bounds each inner pivot loop (n > 0).
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPivots must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPivots = n
	}
}

// WithMaxCuts bounds the number of cuts (n >= 0; 0 means the LP optimum
// must already be integral).
func WithMaxCuts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCuts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCuts = n
	}
}

// WithWorkers sets the pivot kernel's goroutine count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

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

// simplexOptions projects o onto the inner engine.
func (o Options) simplexOptions() []simplex.Option {
	return []simplex.Option{
		simplex.WithContext(o.Ctx),
		simplex.WithHooks(o.Hooks),
		simplex.WithEpsilon(o.Epsilon),
		simplex.WithMaxPivots(o.MaxPivots),
		simplex.WithWorkers(o.Workers),
	}
}
