package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountLeaves(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want int
	}{
		{
			name: "empty",
			tree: Tree{},
			want: 0,
		},
		{
			name: "nil",
			tree: nil,
			want: 0,
		},
		{
			name: "flat",
			tree: Tree{
				{Key: "a", Value: "1"},
				{Key: "b", Value: "2"},
				{Key: "c", Value: "3"},
			},
			want: 3,
		},
		{
			name: "lists count once",
			tree: Tree{
				{Key: "src", Value: []string{"a.go", "b.go", "c.go"}},
				{Key: "docs", Value: []string{"README.md"}},
			},
			want: 2,
		},
		{
			name: "nested",
			tree: Tree{
				{Key: "README.md", Value: "readme"},
				{Key: "backend/", Value: Tree{
					{Key: "src/", Value: Tree{
						{Key: "server.js", Value: "server"},
						{Key: "routes/", Value: "routes"},
					}},
					{Key: "package.json", Value: "deps"},
				}},
				{Key: "empty/", Value: Tree{}},
			},
			want: 4,
		},
		{
			name: "deep",
			tree: Tree{{Key: "a", Value: Tree{{Key: "b", Value: Tree{{Key: "c", Value: Tree{{Key: "d", Value: Tree{{Key: "e", Value: "leaf"}}}}}}}}}},
			want: 1,
		},
		{
			name: "typed nested maps",
			tree: Tree{
				{Key: "scripts", Value: OrderedMap[string]{
					{Key: "build", Value: "tsc"},
					{Key: "test", Value: "jest"},
				}},
				{Key: "tables", Value: OrderedMap[OrderedMap[string]]{
					{Key: "users", Value: OrderedMap[string]{{Key: "id", Value: "primary key"}}},
					{Key: "empty", Value: OrderedMap[string]{}},
				}},
				{Key: "main", Value: "index.js"},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CountLeaves(tt.tree))
		})
	}
}

func TestOrderedMap_MarshalKeepsInsertionOrder(t *testing.T) {
	m := OrderedMap[string]{
		{Key: "zeta", Value: "1"},
		{Key: "alpha", Value: "2"},
		{Key: "mid", Value: "3"},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, `{"zeta":"1","alpha":"2","mid":"3"}`, string(data))
}

func TestOrderedMap_MarshalDoesNotEscapeHTML(t *testing.T) {
	m := OrderedMap[string]{{Key: "user_id", Value: "foreign key -> users.id"}}

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"user_id":"foreign key -> users.id"}`, string(data))
}

func TestOrderedMap_EmptyAndNil(t *testing.T) {
	data, err := json.Marshal(OrderedMap[string]{})
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))

	var m OrderedMap[string]
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	require.Nil(t, m)
}

func TestOrderedMap_UnmarshalKeepsOrder(t *testing.T) {
	var m OrderedMap[int]
	require.NoError(t, json.Unmarshal([]byte(`{"c": 3, "a": 1, "b": 2}`), &m))

	require.Equal(t, []string{"c", "a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("missing")
	require.False(t, ok)
}

func TestOrderedMap_UnmarshalRejectsNonObject(t *testing.T) {
	var m OrderedMap[string]
	err := json.Unmarshal([]byte(`["a", "b"]`), &m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected JSON object")
}

func TestTree_RoundTrip(t *testing.T) {
	want := Tree{
		{Key: "project", Value: Tree{
			{Key: "src", Value: Tree{
				{Key: "components", Value: []string{"Editor.tsx", "Timer.tsx"}},
			}},
			{Key: "docs", Value: []string{"README.md"}},
			{Key: "notes", Value: "plain leaf"},
		}},
		{Key: "empty", Value: []string{}},
	}

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var decoded Tree
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, want, decoded)
	require.Equal(t, CountLeaves(want), CountLeaves(decoded))
}

func TestTree_DecodesMixedArrays(t *testing.T) {
	var decoded Tree
	require.NoError(t, json.Unmarshal([]byte(`{"mixed": ["a", 1, true], "n": 2.5}`), &decoded))

	mixed, ok := decoded.Get("mixed")
	require.True(t, ok)
	require.Equal(t, []any{"a", float64(1), true}, mixed)

	n, ok := decoded.Get("n")
	require.True(t, ok)
	require.Equal(t, 2.5, n)
}
