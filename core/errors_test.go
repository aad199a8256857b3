package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError(errors.New("boom"), FieldError{Field: "batchId", Error: "batch does not exist"})

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "boom", vErr.Error())
	assert.Equal(t, "batchId", vErr.Fields[0].Field)

	// field-only errors carry no message of their own
	vErr, ok = NewValidationError(nil, FieldError{Field: "id", Error: "in use"}).(*ValidationError)
	assert.True(t, ok)
	assert.Empty(t, vErr.Error())
}

func TestIsShutdown(t *testing.T) {
	err := NewShutdownError("store integrity lost")
	assert.True(t, IsShutdown(err))
	assert.True(t, IsShutdown(errors.Wrap(err, "handling request")), "wrapped shutdown errors are still caught")
	assert.False(t, IsShutdown(errors.New("boom")))
}
