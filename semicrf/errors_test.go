package semicrf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError_UnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewInputError("reading file", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestInputError_MessageOnlyWhenCauseNil(t *testing.T) {
	err := NewInputError("missing field", nil)
	assert.Equal(t, "input error: missing field", err.Error())
}

func TestFeatureError_UnwrapsCause(t *testing.T) {
	cause := errors.New("bad column")
	err := NewFeatureError("digit", cause)
	assert.ErrorIs(t, err, cause)
}

func TestDimensionError_HasNoUnderlyingCause(t *testing.T) {
	err := NewDimensionError("mismatch")
	assert.Equal(t, "dimension error: mismatch", err.Error())
}

func TestNumericalError_Message(t *testing.T) {
	err := NewNumericalError("partition function Z")
	assert.Equal(t, "numerical error: partition function Z", err.Error())
}

func TestFatalError_Message(t *testing.T) {
	err := NewFatalError("invariant violated")
	assert.Equal(t, "fatal error: invariant violated", err.Error())
}
