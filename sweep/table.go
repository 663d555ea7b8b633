// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/minimax/model"
)

// ctxEvery is how many enumerated rows pass between context checks.
const ctxEvery = 1024

// Row is one assignment of every field. Values follows the field order.
type Row struct {
	Values []float64
	Score  float64

	index map[string]int
}

// Get returns the value of the named field.
func (r Row) Get(name string) (float64, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}

	return r.Values[i], true
}

// Must returns the value of the named field or 0 when the name is unknown.
func (r Row) Must(name string) float64 {
	v, _ := r.Get(name)

	return v
}

// Table is the result of Build: the best row of every option group, in
// the order the groups first appear in the enumeration.
type Table struct {
	Names []string
	Rows  []Row
}

// Build enumerates the cartesian product of all Variable and Option value
// lists (Constants fixed), evaluates the Targets, drops rows rejected by
// valid (nil accepts everything) and keeps, per distinct combination of
// Option and Constant values, the row with the highest Score (first on
// ties).
//
// Complexity: O(Π|Values| · len(fields)).
//
// Errors: ErrInvalidField, ErrNoTarget, model.ErrCanceled.
func Build(fields []Field, valid func(Row) bool, opts ...Option) (Table, error) {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	defer o.hooks.Complete()

	index, err := checkFields(fields)
	if err != nil {
		return Table{}, err
	}

	var (
		enum []int // field positions enumerated by the generator
		lens []int
	)
	for i, f := range fields {
		if f.Role == RoleVariable || f.Role == RoleOption {
			enum = append(enum, i)
			lens = append(lens, len(f.Values))
		}
	}
	total := 1
	if len(lens) > 0 {
		total = combin.Card(lens)
	}

	var (
		gen     = combin.NewCartesianGenerator(lens)
		pick    = make([]int, len(lens))
		groups  = make(map[string]int)
		out     Table
		current int
	)
	out.Names = make([]string, len(fields))
	for i, f := range fields {
		out.Names[i] = f.Name
	}
	next := func() bool {
		if len(lens) == 0 {
			current++
			return current == 1
		}
		if !gen.Next() {
			return false
		}
		current++
		gen.Product(pick)

		return true
	}
	for next() {
		if current%ctxEvery == 0 {
			select {
			case <-o.ctx.Done():
				return Table{}, model.Canceled(o.ctx.Err())
			default:
			}
			o.hooks.Progress(current, total)
		}

		row := Row{Values: make([]float64, len(fields)), index: index}
		for k, i := range enum {
			row.Values[i] = fields[i].Values[pick[k]]
		}
		for i, f := range fields {
			if f.Role == RoleConstant {
				row.Values[i] = f.Values[0]
			}
		}
		for i, f := range fields {
			if f.Role == RoleTarget {
				row.Values[i] = f.Eval(row)
				row.Score += f.Weight * row.Values[i]
			}
		}
		if valid != nil && !valid(row) {
			continue
		}

		key := groupKey(fields, row)
		if at, ok := groups[key]; ok {
			if row.Score > out.Rows[at].Score {
				out.Rows[at] = row
			}
			continue
		}
		groups[key] = len(out.Rows)
		out.Rows = append(out.Rows, row)
	}
	o.hooks.Progress(total, total)
	o.hooks.Logf("%d rows enumerated, %d groups kept", total, len(out.Rows))

	return out, nil
}

// checkFields validates fields and returns the name index.
func checkFields(fields []Field) (map[string]int, error) {
	index := make(map[string]int, len(fields))
	targets := 0
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("sweep.Build: field %d has no name: %w", i, ErrInvalidField)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("sweep.Build: duplicate field %q: %w", f.Name, ErrInvalidField)
		}
		index[f.Name] = i
		switch f.Role {
		case RoleVariable, RoleOption, RoleConstant:
			if len(f.Values) == 0 {
				return nil, fmt.Errorf("sweep.Build: %s %q has no values: %w", f.Role, f.Name, ErrInvalidField)
			}
		case RoleTarget:
			if f.Eval == nil {
				return nil, fmt.Errorf("sweep.Build: target %q has no Eval: %w", f.Name, ErrInvalidField)
			}
			targets++
		default:
			return nil, fmt.Errorf("sweep.Build: field %q: %v: %w", f.Name, f.Role, ErrInvalidField)
		}
	}
	if targets == 0 {
		return nil, ErrNoTarget
	}

	return index, nil
}

// groupKey joins the Option and Constant values of row.
func groupKey(fields []Field, row Row) string {
	buf := make([]byte, 0, 8*len(fields))
	for i, f := range fields {
		if f.Role == RoleOption || f.Role == RoleConstant {
			buf = strconv.AppendFloat(buf, row.Values[i], 'g', -1, 64)
			buf = append(buf, ';')
		}
	}

	return string(buf)
}

// WriteCSV writes a header line of field names followed by one line per
// row, separated by ';'.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(t.Names); err != nil {
		return err
	}
	rec := make([]string, len(t.Names))
	for _, r := range t.Rows {
		for i, v := range r.Values {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
