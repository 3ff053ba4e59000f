package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("projet", "abc123")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvalidID(err))
	assert.Contains(t, err.Error(), "projet")
	assert.Contains(t, err.Error(), "abc123")
}

func TestInvalidID(t *testing.T) {
	err := NewInvalidID("not-a-hex")

	assert.True(t, IsInvalidID(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not-a-hex")
}

func TestStoreOperationFailedWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreOperationFailed("projects", "find", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "projects")
	assert.Contains(t, err.Error(), "find")
	assert.False(t, IsNotFound(err))
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewBaseError(ErrorTypeGraph, "boom", nil), ErrorTypeGraph))
	assert.False(t, IsErrorType(NewBaseError(ErrorTypeGraph, "boom", nil), ErrorTypeStore))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeGraph))
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewBaseError(ErrorTypeNotFound, "gone", nil))
	assert.True(t, IsNotFound(wrapped))
}
