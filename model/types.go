// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors. Call sites wrap them with context via %w.
var (
	// ErrDimensionMismatch is returned when rows(A), len(B), len(R) or
	// columns(A), len(C) disagree.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrEmptyProblem is returned for a problem with no variables.
	ErrEmptyProblem = errors.New("model: problem has no variables")

	// ErrNaNInf is returned when a coefficient is NaN or ±Inf.
	ErrNaNInf = errors.New("model: NaN or Inf coefficient")

	// ErrUnsupportedRelation is returned for a relation outside {<=, >=, ==}.
	ErrUnsupportedRelation = errors.New("model: unsupported relation")

	// ErrUnsupportedTarget is returned for a direction other than max/min.
	ErrUnsupportedTarget = errors.New("model: unsupported target")

	// ErrInvalidGrid is returned by ParseGrid for malformed cells.
	ErrInvalidGrid = errors.New("model: invalid grid")
)

// Relation is the comparison operator of one constraint row.
type Relation int

const (
	// LessEqual is a·x <= b.
	LessEqual Relation = iota
	// GreaterEqual is a·x >= b.
	GreaterEqual
	// Equal is a·x == b.
	Equal
)

// Relation symbols as they appear in grids and YAML.
const (
	symLessEqual    = "<="
	symGreaterEqual = ">="
	symEqual        = "=="
)

// String returns "<=", ">=" or "==".
func (r Relation) String() string {
	switch r {
	case LessEqual:
		return symLessEqual
	case GreaterEqual:
		return symGreaterEqual
	case Equal:
		return symEqual
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Valid reports whether r is one of the three supported relations.
func (r Relation) Valid() bool { return r >= LessEqual && r <= Equal }

// Flip swaps <= and >=; == is its own mirror. Used when a row is negated.
func (r Relation) Flip() Relation {
	switch r {
	case LessEqual:
		return GreaterEqual
	case GreaterEqual:
		return LessEqual
	default:
		return r
	}
}

// ParseRelation maps "<=", ">=", "==" (and "=") to a Relation.
func ParseRelation(s string) (Relation, error) {
	switch s {
	case symLessEqual:
		return LessEqual, nil
	case symGreaterEqual:
		return GreaterEqual, nil
	case symEqual, "=":
		return Equal, nil
	default:
		return 0, fmt.Errorf("ParseRelation(%q): %w", s, ErrUnsupportedRelation)
	}
}

// Target is the optimization direction.
type Target int

const (
	// Maximize the objective.
	Maximize Target = iota
	// Minimize the objective.
	Minimize
)

// String returns "max" or "min".
func (t Target) String() string {
	switch t {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Valid reports whether t is Maximize or Minimize.
func (t Target) Valid() bool { return t == Maximize || t == Minimize }

// Better reports whether a is strictly better than b in direction t.
func (t Target) Better(a, b float64) bool {
	if t == Minimize {
		return a < b
	}

	return a > b
}

// ParseTarget maps "max"/"min" to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "max":
		return Maximize, nil
	case "min":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("ParseTarget(%q): %w", s, ErrUnsupportedTarget)
	}
}

// Number is any integer or floating-point type accepted by New.
type Number interface {
	constraints.Integer | constraints.Float
}

// Problem is one LP/IP instance:
//
//	optimize  C·x   (Target)
//	subject   A[i]·x  R[i]  B[i]   for every row i
//	          x >= 0
//
// Solvers never mutate a Problem; they copy it into their own structures.
type Problem struct {
	A      [][]float64 `yaml:"a"`
	B      []float64   `yaml:"b"`
	R      []Relation  `yaml:"r"`
	C      []float64   `yaml:"c"`
	Target Target      `yaml:"target"`
}
