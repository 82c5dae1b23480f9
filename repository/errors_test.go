package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := NewError(KindNotFound, "user 42")
	assert.Equal(t, "NOT_FOUND: user 42", err.Error())

	cause := errors.New("connection refused")
	wrapped := WrapError(KindConnection, "ping database", cause)
	assert.Equal(t, "CONNECTION_ERROR: ping database: connection refused", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := WrapError(KindConstraintViolation, "insert user", cause)

	require.ErrorIs(t, err, cause)

	// Wrapping further with %w keeps the chain intact.
	outer := fmt.Errorf("service layer: %w", err)
	var repoErr *Error
	require.ErrorAs(t, outer, &repoErr)
	assert.Equal(t, KindConstraintViolation, repoErr.Kind)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindQuery, KindOf(NewError(KindQuery, "bad syntax")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain error")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(KindTransaction, "commit failed"))

	assert.True(t, IsKind(err, KindTransaction))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewError(KindNotFound, "gone")))
	assert.False(t, IsNotFound(NewError(KindInternal, "broken")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
