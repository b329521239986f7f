package sampler

import (
	// Go Internal Packages
	"math/rand"
	"regexp"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternRender(t *testing.T) {
	tests := []struct {
		template string
		want     *regexp.Regexp
	}{
		{"m_#####??##", regexp.MustCompile(`^m_[0-9]{5}[A-Z]{2}[0-9]{2}$`)},
		{"txn_#####??####", regexp.MustCompile(`^txn_[0-9]{5}[A-Z]{2}[0-9]{4}$`)},
		{"hash_????????????????", regexp.MustCompile(`^hash_[A-Z]{16}$`)},
		{"####", regexp.MustCompile(`^[0-9]{4}$`)},
		{"static", regexp.MustCompile(`^static$`)},
	}

	r := rand.New(rand.NewSource(11))
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			p := Compile(tt.template)
			assert.Equal(t, tt.template, p.String())
			for i := 0; i < 100; i++ {
				got := p.Render(r)
				require.Regexp(t, tt.want, got)
			}
		})
	}
}

func TestPatternSpaceAndCollisions(t *testing.T) {
	p := Compile("m_#####??##")
	assert.Equal(t, 1e7*26*26, p.Space())
	assert.Equal(t, 1.0, Compile("literal").Space())

	// a few thousand merchants stay far below the identifier space
	assert.Less(t, p.CollisionProbability(20000), 0.05)
	assert.InDelta(t, 1.0, Compile("#").CollisionProbability(100), 1e-9)
}

func TestWindowInstant(t *testing.T) {
	start, err := ParseISO("2024-01-01T00:00:00Z")
	require.NoError(t, err)
	end, err := ParseISO("2024-01-02T00:00:00Z")
	require.NoError(t, err)
	w := NewWindow(start, end)

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		at := w.Instant(r)
		require.True(t, w.Contains(at), "instant %s outside window", at)
		require.Zero(t, at.Nanosecond())
	}

	pinned := w.After(end.AddDate(0, 0, 1))
	assert.Equal(t, pinned.Start, pinned.Instant(r))
	assert.Equal(t, "2024-01-01T00:00:00Z", FormatISO(start))
}

func TestBetween(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		n := IntBetween(r, 20, 35)
		require.GreaterOrEqual(t, n, 20)
		require.LessOrEqual(t, n, 35)

		f := FloatBetween(r, 0.024, 0.032)
		require.GreaterOrEqual(t, f, 0.024)
		require.Less(t, f, 0.032)
	}

	_, ok := PickOne[int](r, nil)
	assert.False(t, ok)
	v, ok := PickOne(r, []int{7})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
