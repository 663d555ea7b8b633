// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

// ErrCanceled is returned (wrapping ctx.Err()) when a solve is aborted by
// its context. Every solver checks between pivots or search levels.
var ErrCanceled = errors.New("minimax: solve canceled")

// Canceled wraps cause with ErrCanceled so both match with errors.Is.
func Canceled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}

// Status is the outcome of one solve call. Infeasible and Unbounded are
// defined outcomes, not errors.
type Status int

const (
	// Optimal means Vectors/Values hold at least one optimal point.
	Optimal Status = iota
	// Infeasible means no point satisfies every constraint.
	Infeasible
	// Unbounded means the objective improves without limit.
	Unbounded
)

// String returns a lower-case name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds every optimal vector a solver found and its objective value
// (Values[i] belongs to Vectors[i]). Branch-and-bound may return ties;
// simplex and Gomory return one vector. Both slices are empty unless
// Status == Optimal.
type Result struct {
	Status  Status
	Vectors [][]float64
	Values  []float64
}

// Best returns the first vector and its value. ok is false when the
// result holds no vector.
func (r Result) Best() (x []float64, value float64, ok bool) {
	if r.Status != Optimal || len(r.Vectors) == 0 {
		return nil, 0, false
	}

	return r.Vectors[0], r.Values[0], true
}
