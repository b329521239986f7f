package generator

import (
	// Go Internal Packages
	"math/rand"
	"testing"

	// Local Packages
	errors "psp-datagen/errors"
	sampler "psp-datagen/sampler"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLifecycleTerminals(t *testing.T) {
	m, err := NewStateMachine(StatePending, PaymentTransitions)
	require.NoError(t, err)

	assert.Equal(t, []string{StateCancelled, StateClosed, StateCompleted, StateFailed}, m.TerminalStates())
	assert.False(t, m.IsTerminal(StatePending))
	assert.False(t, m.IsTerminal("unknown"))

	r := rand.New(rand.NewSource(1))
	seen := map[string]int{}
	for i := 0; i < 20000; i++ {
		state, err := m.Resolve(r)
		require.NoError(t, err)
		require.True(t, m.IsTerminal(state))
		seen[state]++
	}
	// every terminal state is reachable
	assert.Len(t, seen, 4)
	assert.Greater(t, seen[StateCompleted], seen[StateFailed])
}

func TestResolveReplaysUnderSameDraws(t *testing.T) {
	m, err := NewStateMachine(StatePending, PaymentTransitions)
	require.NoError(t, err)

	r1 := rand.New(rand.NewSource(2024))
	r2 := rand.New(rand.NewSource(2024))
	for i := 0; i < 1000; i++ {
		a, err := m.Resolve(r1)
		require.NoError(t, err)
		b, err := m.Resolve(r2)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestEmptyTransitionSetEndsWalk(t *testing.T) {
	m, err := NewStateMachine("start", map[string][]sampler.Weighted[string]{"start": {}})
	require.NoError(t, err)

	state, err := m.Resolve(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "start", state)
}

func TestNewStateMachineRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		table map[string][]sampler.Weighted[string]
	}{
		{"missing initial", map[string][]sampler.Weighted[string]{"other": nil}},
		{"undeclared target", map[string][]sampler.Weighted[string]{"start": {sampler.W(1, "nowhere")}}},
		{"zero weights", map[string][]sampler.Weighted[string]{"start": {sampler.W(0, "end")}, "end": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStateMachine("start", tt.table)
			require.Error(t, err)
			assert.True(t, errors.Is(errors.Config, err))
		})
	}
}

func TestResolveDetectsCycles(t *testing.T) {
	m, err := NewStateMachine("a", map[string][]sampler.Weighted[string]{
		"a": {sampler.W(1, "b")},
		"b": {sampler.W(1, "a")},
	})
	require.NoError(t, err)

	_, err = m.Resolve(rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Config, err))
}
