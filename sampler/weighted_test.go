package sampler

import (
	// Go Internal Packages
	"math/rand"
	"testing"

	// Local Packages
	errors "psp-datagen/errors"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChoiceRejectsBadTables(t *testing.T) {
	_, err := NewChoice[string]()
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Config, err))

	_, err = NewChoice(W(0, "a"), W(0, "b"))
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Config, err))

	_, err = NewChoice(W(5, "a"), W(-1, "b"))
	require.Error(t, err)

	assert.Panics(t, func() { MustChoice[int]() })
}

func TestChoiceConvergesToWeights(t *testing.T) {
	c := MustChoice(W(70, "US"), W(15, "GB"), W(10, "CA"), W(5, "AU"))
	r := rand.New(rand.NewSource(7))

	const draws = 200000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[c.Pick(r)]++
	}

	assert.InDelta(t, 0.70, float64(counts["US"])/draws, 0.01)
	assert.InDelta(t, 0.15, float64(counts["GB"])/draws, 0.01)
	assert.InDelta(t, 0.10, float64(counts["CA"])/draws, 0.01)
	assert.InDelta(t, 0.05, float64(counts["AU"])/draws, 0.01)
}

func TestChoiceSkipsZeroWeight(t *testing.T) {
	c := MustChoice(W(0, "never"), W(3, "always"), W(0, "nope"))
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		require.Equal(t, "always", c.Pick(r))
	}
}

func TestChoiceSupportsAbsentOutcome(t *testing.T) {
	applepay := "applepay"
	c := MustChoice(W[*string](50, nil), W(50, &applepay))
	r := rand.New(rand.NewSource(3))

	var sawNil, sawWallet bool
	for i := 0; i < 200; i++ {
		if v := c.Pick(r); v == nil {
			sawNil = true
		} else {
			sawWallet = true
			assert.Equal(t, "applepay", *v)
		}
	}
	assert.True(t, sawNil)
	assert.True(t, sawWallet)
}

func TestChoiceDeterministicUnderSeed(t *testing.T) {
	c := Uniform("a", "b", "c", "d", "e")
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		require.Equal(t, c.Pick(r1), c.Pick(r2))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, c.Values())
}
