package compileerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsc/internal/compileerrors"
)

func TestDuplicateDeclMessageNamesTheIdentifier(t *testing.T) {
	err := compileerrors.DuplicateDecl("x")
	assert.Equal(t, compileerrors.Duplicate, err.Kind)
	assert.Contains(t, err.Error(), "x")
}

func TestUndeclaredRefMessageNamesTheIdentifier(t *testing.T) {
	err := compileerrors.UndeclaredRef("y")
	assert.Equal(t, compileerrors.Undeclared, err.Kind)
	assert.Contains(t, err.Error(), "y")
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := compileerrors.Wrap(compileerrors.IOFailure, cause, "writing output")

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
