// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/minimax/trace"
)

// Sentinel errors for table construction.
var (
	// ErrInvalidField reports an unnamed, duplicated or incomplete field.
	ErrInvalidField = errors.New("sweep: invalid field")

	// ErrNoTarget is returned when no field has RoleTarget.
	ErrNoTarget = errors.New("sweep: no target field")
)

// Role tells Build what to do with a field.
type Role int

// Enum values (stable ordering).
const (
	RoleVariable Role = iota // enumerated, free inside a group
	RoleOption               // enumerated, part of the group key
	RoleConstant             // Values[0] everywhere, part of the group key
	RoleTarget               // computed by Eval, weighted into the score
)

// String returns a lower-case name.
func (r Role) String() string {
	switch r {
	case RoleVariable:
		return "variable"
	case RoleOption:
		return "option"
	case RoleConstant:
		return "constant"
	case RoleTarget:
		return "target"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Field is one column of the table.
type Field struct {
	Name string
	Role Role

	// Values lists the candidates of a Variable or Option; a Constant uses
	// Values[0].
	Values []float64

	// Eval computes a Target from the row's other columns.
	Eval func(Row) float64

	// Weight scales a Target's contribution to Row.Score. Use a positive
	// weight for quantities to maximize and a negative one to minimize.
	Weight float64
}

// Option configures Build.
type Option func(*options)

type options struct {
	ctx   context.Context
	hooks trace.Hooks
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithHooks installs trace hooks; progress counts enumerated rows.
func WithHooks(h trace.Hooks) Option {
	return func(o *options) { o.hooks = h }
}
