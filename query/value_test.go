package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Scalars(t *testing.T) {
	testCases := []struct {
		name  string
		input any
		want  Value
	}{
		{"string", "openai", String("openai")},
		{"empty string", "", String("")},
		{"bool true", true, Boolean(true)},
		{"bool false", false, Boolean(false)},
		{"int", 5, Integer(5)},
		{"int32 widened", int32(7), Integer(7)},
		{"int64", int64(-3), Integer(-3)},
		{"float64", 10.5, Float(10.5)},
		{"nil", nil, Null{}},
		{"value passthrough", String("keep"), String("keep")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValueOf(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValueOf_Lists(t *testing.T) {
	got, err := ValueOf([]any{"openai", "anthropic"})
	require.NoError(t, err)
	assert.Equal(t, List{String("openai"), String("anthropic")}, got)

	got, err = ValueOf([]any{1, 2.5, true, nil})
	require.NoError(t, err)
	assert.Equal(t, List{Integer(1), Float(2.5), Boolean(true), Null{}}, got)

	// Nested lists convert recursively.
	got, err = ValueOf([]any{[]any{"a"}, "b"})
	require.NoError(t, err)
	assert.Equal(t, List{List{String("a")}, String("b")}, got)
}

func TestValueOf_Unsupported(t *testing.T) {
	_, err := ValueOf(struct{}{})
	require.Error(t, err)

	_, err = ValueOf(map[string]any{"k": "v"})
	require.Error(t, err)

	// An unsupported element poisons the whole list.
	_, err = ValueOf([]any{"fine", struct{}{}})
	require.Error(t, err)
}
