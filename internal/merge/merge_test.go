// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_Table(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   []any
		want any
	}{
		{
			name: "no values",
			in:   nil,
			want: nil,
		},
		{
			name: "single value is copied unchanged",
			in:   []any{map[string]any{"a": 1}},
			want: map[string]any{"a": 1},
		},
		{
			name: "later scalar wins",
			in:   []any{map[string]any{"a": 1, "b": "x"}, map[string]any{"a": 2}},
			want: map[string]any{"a": 2, "b": "x"},
		},
		{
			name: "nested objects merge key-wise",
			in: []any{
				map[string]any{"output": map[string]any{"path": "dist", "filename": "[name].js"}},
				map[string]any{"output": map[string]any{"filename": "bundle.js"}},
			},
			want: map[string]any{"output": map[string]any{"path": "dist", "filename": "bundle.js"}},
		},
		{
			name: "lists concatenate by default",
			in: []any{
				map[string]any{"plugins": []any{"a"}},
				map[string]any{"plugins": []any{"b", "c"}},
			},
			want: map[string]any{"plugins": []any{"a", "b", "c"}},
		},
		{
			name: "replace strategy on a nested path",
			opts: []Option{WithReplace("resolve.extensions")},
			in: []any{
				map[string]any{"resolve": map[string]any{"extensions": []any{".js"}}},
				map[string]any{"resolve": map[string]any{"extensions": []any{".ts"}}},
			},
			want: map[string]any{"resolve": map[string]any{"extensions": []any{".ts"}}},
		},
		{
			name: "prepend strategy",
			opts: []Option{WithStrategy("entry", Prepend)},
			in: []any{
				map[string]any{"entry": []any{"./src/index.js"}},
				map[string]any{"entry": []any{"babel-polyfill"}},
			},
			want: map[string]any{"entry": []any{"babel-polyfill", "./src/index.js"}},
		},
		{
			name: "nil later value keeps earlier value",
			in:   []any{map[string]any{"devtool": "eval"}, map[string]any{"devtool": nil}},
			want: map[string]any{"devtool": "eval"},
		},
		{
			name: "type change replaces",
			in:   []any{map[string]any{"entry": "./a.js"}, map[string]any{"entry": map[string]any{"main": "./b.js"}}},
			want: map[string]any{"entry": map[string]any{"main": "./b.js"}},
		},
		{
			name: "typed slices and maps are normalised",
			in: []any{
				map[string]any{"extensions": []string{".js"}},
				map[string]any{"extensions": []string{".ts"}, "alias": map[string]string{"@": "src"}},
			},
			want: map[string]any{"extensions": []any{".js", ".ts"}, "alias": map[string]any{"@": "src"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...).Merge(tt.in...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := map[string]any{"module": map[string]any{"rules": []any{map[string]any{"test": "a"}}}}
	b := map[string]any{"module": map[string]any{"rules": []any{map[string]any{"test": "b"}}}}

	out := New().Merge(a, b).(map[string]any)
	out["module"].(map[string]any)["rules"].([]any)[0].(map[string]any)["test"] = "changed"

	assert.Equal(t, "a", a["module"].(map[string]any)["rules"].([]any)[0].(map[string]any)["test"])
	assert.Len(t, a["module"].(map[string]any)["rules"], 1)
	assert.Len(t, b["module"].(map[string]any)["rules"], 1)
}

func TestObjects_SkipsNil(t *testing.T) {
	got := New().Objects(nil, map[string]any{"a": 1}, nil)
	assert.Equal(t, map[string]any{"a": 1}, got)

	empty := New().Objects()
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestZeroMergerAppends(t *testing.T) {
	var m *Merger
	got := m.Merge(map[string]any{"a": []any{1}}, map[string]any{"a": []any{2}})
	assert.Equal(t, map[string]any{"a": []any{1, 2}}, got)
	assert.Nil(t, m.Strategies())
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{"": Append, "append": Append, "Prepend": Prepend, " replace ": Replace} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		if name != "" {
			assert.Equal(t, want.String(), got.String())
		}
	}
	_, err := ParseStrategy("zip")
	require.Error(t, err)
	assert.Equal(t, "strategy(9)", Strategy(9).String())
}

func TestClone_BytesAreScalars(t *testing.T) {
	b := []byte("raw")
	assert.Equal(t, b, Clone(b))
}
