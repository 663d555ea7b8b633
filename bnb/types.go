// SPDX-License-Identifier: MIT

package bnb

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/trace"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bnb: invalid option supplied")

// Node is a partial 0/1 assignment. Vector[k] is the value chosen for
// variable Indices[k], in decision order. Nodes are immutable.
type Node struct {
	Vector  []bool
	Indices []int

	// FuncMin/FuncMax bound C·x over every completion of the assignment:
	// fixed contribution plus the negative (resp. positive) objective
	// coefficients of the unfixed variables. FuncMin <= FuncMax always.
	FuncMin float64
	FuncMax float64

	// ArgBound[i] is the best-case slack of constraint i; a negative entry
	// proves no completion satisfies it.
	ArgBound []float64
}

// Depth returns how many variables the node fixes.
func (n *Node) Depth() int { return len(n.Indices) }

// Dense expands the assignment into a length-size vector (unfixed = 0).
func (n *Node) Dense(size int) []float64 {
	x := make([]float64, size)
	for k, idx := range n.Indices {
		if n.Vector[k] {
			x[idx] = 1
		}
	}

	return x
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation; checked at every depth level or stack step.
	Ctx context.Context

	// Hooks receives (depth, n) progress and log lines.
	Hooks trace.Hooks

	// Epsilon is used for bound comparisons and ArgBound feasibility.
	Epsilon float64

	err error
}

// DefaultOptions returns Background context, no hooks and
// Epsilon = matrix.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: matrix.DefaultEpsilon,
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

// WithEpsilon sets the tolerance; eps must be finite and >= 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

func gatherOptions(ctx context.Context, opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range append(append([]Option(nil), opts...), WithContext(ctx)) {
		if fn != nil {
			fn(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
