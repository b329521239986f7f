package generator

import (
	// Go Internal Packages
	"fmt"
	"math/rand"
	"sort"

	// Local Packages
	errors "psp-datagen/errors"
	sampler "psp-datagen/sampler"
)

// maxWalk bounds a walk so a cyclic table cannot spin forever.
const maxWalk = 1000

// StateMachine resolves the terminal state of a probabilistic lifecycle.
type StateMachine struct {
	initial     string
	transitions map[string]*sampler.Choice[string]
}

// NewStateMachine validates the table: the initial state and every transition
// target must be declared, and every non-terminal weight set must be valid.
func NewStateMachine(initial string, table map[string][]sampler.Weighted[string]) (*StateMachine, error) {
	if _, ok := table[initial]; !ok {
		return nil, errors.E(errors.Config, fmt.Sprintf("initial state %q is not declared", initial), nil)
	}

	m := &StateMachine{initial: initial, transitions: make(map[string]*sampler.Choice[string], len(table))}
	for state, next := range table {
		if len(next) == 0 {
			m.transitions[state] = nil
			continue
		}
		for _, n := range next {
			if _, ok := table[n.Value]; !ok {
				return nil, errors.E(errors.Config, fmt.Sprintf("state %q moves to undeclared state %q", state, n.Value), nil)
			}
		}
		choice, err := sampler.NewChoice(next...)
		if err != nil {
			return nil, errors.E(errors.Config, fmt.Sprintf("state %q", state), err)
		}
		m.transitions[state] = choice
	}
	return m, nil
}

// Resolve walks from the initial state until a state without outgoing
// transitions. Only the terminal state is returned.
func (m *StateMachine) Resolve(r *rand.Rand) (string, error) {
	state := m.initial
	for i := 0; i < maxWalk; i++ {
		next := m.transitions[state]
		if next == nil {
			return state, nil
		}
		state = next.Pick(r)
	}
	return "", errors.E(errors.Config, fmt.Sprintf("no terminal state reached after %d transitions", maxWalk), nil)
}

func (m *StateMachine) IsTerminal(state string) bool {
	next, ok := m.transitions[state]
	return ok && next == nil
}

func (m *StateMachine) TerminalStates() []string {
	var out []string
	for state, next := range m.transitions {
		if next == nil {
			out = append(out, state)
		}
	}
	sort.Strings(out)
	return out
}
