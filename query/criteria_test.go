package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_BuilderChaining(t *testing.T) {
	c := NewCriteria().
		WithCondition(Eq("provider", String("openai"))).
		WithCondition(Gt("price", Integer(10))).
		WithSort(Asc("model_name")).
		WithSort(Desc("created_at")).
		WithLimit(10).
		WithOffset(20)

	require.Len(t, c.Conditions, 2)
	assert.Equal(t, "provider", c.Conditions[0].Field)
	assert.Equal(t, Equal, c.Conditions[0].Operator)
	assert.Equal(t, "price", c.Conditions[1].Field)
	assert.Equal(t, GreaterThan, c.Conditions[1].Operator)

	require.Len(t, c.Sort, 2)
	assert.Equal(t, Ascending, c.Sort[0].Direction)
	assert.Equal(t, Descending, c.Sort[1].Direction)

	require.NotNil(t, c.Limit)
	assert.Equal(t, int64(10), *c.Limit)
	require.NotNil(t, c.Offset)
	assert.Equal(t, int64(20), *c.Offset)
}

func TestCriteria_BuilderDoesNotAliasBase(t *testing.T) {
	base := NewCriteria().WithCondition(Eq("provider", String("openai")))

	// Two branches built from the same base must not see each other's
	// conditions, and the base must stay untouched.
	left := base.WithCondition(Gt("price", Integer(10)))
	right := base.WithCondition(Lt("price", Integer(5)))

	require.Len(t, base.Conditions, 1)
	require.Len(t, left.Conditions, 2)
	require.Len(t, right.Conditions, 2)
	assert.Equal(t, GreaterThan, left.Conditions[1].Operator)
	assert.Equal(t, LessThan, right.Conditions[1].Operator)
}

func TestCriteria_EmptyByDefault(t *testing.T) {
	c := NewCriteria()

	assert.Empty(t, c.Conditions)
	assert.Empty(t, c.Sort)
	assert.Nil(t, c.Limit)
	assert.Nil(t, c.Offset)
}

func TestCondition_Sugar(t *testing.T) {
	testCases := []struct {
		name string
		cond Condition
		op   Operator
	}{
		{"eq", Eq("f", Integer(1)), Equal},
		{"ne", Ne("f", Integer(1)), NotEqual},
		{"gt", Gt("f", Integer(1)), GreaterThan},
		{"gte", Gte("f", Integer(1)), GreaterThanOrEqual},
		{"lt", Lt("f", Integer(1)), LessThan},
		{"lte", Lte("f", Integer(1)), LessThanOrEqual},
		{"match", Match("f", "%gpt%"), Like},
		{"missing", Missing("f"), IsNull},
		{"present", Present("f"), IsNotNull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "f", tc.cond.Field)
			assert.Equal(t, tc.op, tc.cond.Operator)
		})
	}
}

func TestCondition_InList(t *testing.T) {
	cond := InList("provider", String("openai"), String("anthropic"))

	assert.Equal(t, In, cond.Operator)
	assert.Equal(t, List{String("openai"), String("anthropic")}, cond.Value)
}
