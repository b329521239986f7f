package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	base := EmptyParentErr("orders", "merchants")
	wrapped := fmt.Errorf("run: %w", base)

	assert.True(t, Is(Config, wrapped))
	assert.False(t, Is(IO, wrapped))
	assert.False(t, Is(Config, stderrors.New("plain")))
	assert.False(t, Is(Config, nil))
}

func TestIsFindsInnerKind(t *testing.T) {
	err := E(Sink, "publish failed", E(IO, "disk full", nil))
	assert.True(t, Is(Sink, err))
	assert.True(t, Is(IO, err))
}

func TestValidationErrsAggregatesSorted(t *testing.T) {
	ve := ValidationErrs()
	require.NoError(t, ve.Err())

	ve.Add("zeta", "cannot be empty")
	ve.Add("alpha", "must be positive")
	ve.Add("alpha", "must be an integer")

	err := ve.Err()
	require.Error(t, err)
	assert.Equal(t, 2, ve.Len())
	assert.True(t, Is(Invalid, err))
	assert.Equal(t, "invalid error: alpha: must be positive, must be an integer; zeta: cannot be empty", err.Error())
}

func TestEmptyParentErr(t *testing.T) {
	err := EmptyParentErr("orders", "merchants")
	assert.True(t, Is(Config, err))
	assert.Equal(t, "config error: cannot generate orders: parent dataset merchants is empty", err.Error())
}
