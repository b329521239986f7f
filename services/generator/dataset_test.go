package generator

import (
	// Go Internal Packages
	"context"
	stderrors "errors"
	"testing"

	// Local Packages
	errors "psp-datagen/errors"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed struct {
	V string `json:"v"`
}

func TestBuildStopsOnBatchBoundary(t *testing.T) {
	next := func() (fixed, error) { return fixed{V: "x"}, nil }

	// each record is {"v":"x"} plus a newline: 10 bytes
	ds, err := build(context.Background(), "fixed", 25.0/BytesPerMB, 10, next)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 10)
	assert.Equal(t, int64(100), ds.EstimatedBytes)

	ds, err = build(context.Background(), "fixed", 150.0/BytesPerMB, 10, next)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 20)
	assert.InDelta(t, 200.0/BytesPerMB, ds.SizeMB(), 1e-12)
}

func TestBuildRejectsBadArguments(t *testing.T) {
	next := func() (fixed, error) { return fixed{}, nil }

	_, err := build(context.Background(), "fixed", 0, 10, next)
	assert.True(t, errors.Is(errors.Config, err))

	_, err = build(context.Background(), "fixed", 1, 0, next)
	assert.True(t, errors.Is(errors.Config, err))
}

func TestBuildPropagatesRecordErrors(t *testing.T) {
	boom := stderrors.New("boom")
	calls := 0
	next := func() (fixed, error) {
		calls++
		if calls == 3 {
			return fixed{}, boom
		}
		return fixed{}, nil
	}
	_, err := build(context.Background(), "fixed", 1, 10, next)
	assert.ErrorIs(t, err, boom)
}

func TestBuildStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	next := func() (fixed, error) {
		calls++
		return fixed{}, nil
	}
	_, err := build(ctx, "fixed", 100, 10, next)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, calls)
}
