package sweep_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/sweep"
	"github.com/katalvlaran/minimax/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxFields: pick a width w for each height option h, maximizing area
// w·h minus material cost 2·(w+h)·price, with w·h <= limit.
func boxFields() []sweep.Field {
	return []sweep.Field{
		{Name: "w", Role: sweep.RoleVariable, Values: []float64{1, 2, 3, 4}},
		{Name: "h", Role: sweep.RoleOption, Values: []float64{1, 2}},
		{Name: "price", Role: sweep.RoleConstant, Values: []float64{0.5}},
		{Name: "area", Role: sweep.RoleTarget, Weight: 1, Eval: func(r sweep.Row) float64 {
			return r.Must("w") * r.Must("h")
		}},
		{Name: "cost", Role: sweep.RoleTarget, Weight: -1, Eval: func(r sweep.Row) float64 {
			return 2 * (r.Must("w") + r.Must("h")) * r.Must("price")
		}},
	}
}

func TestBuildKeepsBestPerOption(t *testing.T) {
	valid := func(r sweep.Row) bool { return r.Must("area") <= 6 }

	var rec trace.Recorder
	tab, err := sweep.Build(boxFields(), valid, sweep.WithHooks(rec.Hooks()))
	require.NoError(t, err)
	require.Equal(t, []string{"w", "h", "price", "area", "cost"}, tab.Names)
	require.Len(t, tab.Rows, 2)

	// h=1: score(w) = w - (w+1) = -1 for every w; the first (w=1) stays.
	assert.Equal(t, []float64{1, 1, 0.5, 1, 2}, tab.Rows[0].Values)
	assert.Equal(t, -1.0, tab.Rows[0].Score)
	// h=2: score(w) = 2w - (w+2) = w - 2, w=3 is the widest valid.
	assert.Equal(t, []float64{3, 2, 0.5, 6, 5}, tab.Rows[1].Values)
	assert.Equal(t, 1.0, tab.Rows[1].Score)

	assert.Equal(t, [][2]int{{8, 8}}, rec.Progress())
	assert.Equal(t, 1, rec.Completed())
	assert.NotEmpty(t, rec.Lines())

	v, ok := tab.Rows[1].Get("area")
	assert.True(t, ok)
	assert.Equal(t, 6.0, v)
	_, ok = tab.Rows[1].Get("volume")
	assert.False(t, ok)
}

func TestBuildOnlyConstants(t *testing.T) {
	tab, err := sweep.Build([]sweep.Field{
		{Name: "k", Role: sweep.RoleConstant, Values: []float64{3}},
		{Name: "t", Role: sweep.RoleTarget, Weight: 1, Eval: func(r sweep.Row) float64 { return r.Must("k") * 2 }},
	}, nil)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, []float64{3, 6}, tab.Rows[0].Values)
}

func TestBuildErrors(t *testing.T) {
	target := sweep.Field{Name: "t", Role: sweep.RoleTarget, Eval: func(sweep.Row) float64 { return 0 }}

	cases := []struct {
		name   string
		fields []sweep.Field
		want   error
	}{
		{"no target", []sweep.Field{{Name: "x", Role: sweep.RoleVariable, Values: []float64{1}}}, sweep.ErrNoTarget},
		{"unnamed", []sweep.Field{{Role: sweep.RoleVariable, Values: []float64{1}}, target}, sweep.ErrInvalidField},
		{"duplicate", []sweep.Field{target, target}, sweep.ErrInvalidField},
		{"no values", []sweep.Field{{Name: "x", Role: sweep.RoleOption}, target}, sweep.ErrInvalidField},
		{"no eval", []sweep.Field{{Name: "t", Role: sweep.RoleTarget}}, sweep.ErrInvalidField},
		{"bad role", []sweep.Field{{Name: "x", Role: sweep.Role(7)}, target}, sweep.ErrInvalidField},
	}
	for _, tc := range cases {
		_, err := sweep.Build(tc.fields, nil)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBuildCancel(t *testing.T) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = float64(i)
	}
	fields := []sweep.Field{
		{Name: "a", Role: sweep.RoleVariable, Values: values},
		{Name: "b", Role: sweep.RoleVariable, Values: values},
		{Name: "t", Role: sweep.RoleTarget, Weight: 1, Eval: func(r sweep.Row) float64 { return r.Must("a") - r.Must("b") }},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep.Build(fields, nil, sweep.WithContext(ctx))
	require.ErrorIs(t, err, model.ErrCanceled)

	tab, err := sweep.Build(fields, nil)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, 63.0, tab.Rows[0].Score)
}

func TestWriteCSV(t *testing.T) {
	tab, err := sweep.Build(boxFields(), func(r sweep.Row) bool { return r.Must("w") == 2 })
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tab.WriteCSV(&buf))
	assert.Equal(t, "w;h;price;area;cost\n2;1;0.5;2;3\n2;2;0.5;4;4\n", buf.String())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "option", sweep.RoleOption.String())
	assert.Equal(t, "Role(9)", sweep.Role(9).String())
}
