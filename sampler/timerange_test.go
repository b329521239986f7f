package sampler

import (
	// Go Internal Packages
	"testing"
	"time"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestTrimEnd(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := NewWindow(start, start.Add(time.Minute))

	trimmed := w.TrimEnd(time.Second)
	assert.Equal(t, start, trimmed.Start)
	assert.Equal(t, start.Add(59*time.Second), trimmed.End)

	pinned := w.TrimEnd(time.Hour)
	assert.Equal(t, start, pinned.Start)
	assert.Equal(t, start, pinned.End)
}
