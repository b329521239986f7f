// Package sampler holds the seeded random building blocks of the generator:
// weighted categorical choices, identifier patterns and time windows. Every
// function takes the *rand.Rand of the run so a fixed seed replays a run exactly.
package sampler

import (
	// Go Internal Packages
	"math/rand"
	"sort"

	// Local Packages
	errors "psp-datagen/errors"
)

// Weighted pairs an outcome with its relative weight.
type Weighted[T any] struct {
	Weight int
	Value  T
}

func W[T any](weight int, value T) Weighted[T] {
	return Weighted[T]{Weight: weight, Value: value}
}

// Choice draws one of a fixed set of outcomes with probability weight/total.
// Outcomes may be zero values (nil pointers for "absent").
type Choice[T any] struct {
	values     []T
	cumulative []int
	total      int
}

// NewChoice validates the table once: it must be non-empty, no weight may be
// negative and the total must be positive.
func NewChoice[T any](outcomes ...Weighted[T]) (*Choice[T], error) {
	if len(outcomes) == 0 {
		return nil, errors.EmptyChoiceErr()
	}

	c := &Choice[T]{
		values:     make([]T, 0, len(outcomes)),
		cumulative: make([]int, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		if o.Weight < 0 {
			return nil, errors.NonPositiveWeightErr(o.Weight)
		}
		c.total += o.Weight
		c.values = append(c.values, o.Value)
		c.cumulative = append(c.cumulative, c.total)
	}
	if c.total <= 0 {
		return nil, errors.NonPositiveWeightErr(c.total)
	}
	return c, nil
}

// MustChoice is NewChoice for compiled-in tables; it panics on a bad table.
func MustChoice[T any](outcomes ...Weighted[T]) *Choice[T] {
	c, err := NewChoice(outcomes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Uniform gives every value the same weight.
func Uniform[T any](values ...T) *Choice[T] {
	outcomes := make([]Weighted[T], len(values))
	for i, v := range values {
		outcomes[i] = W(1, v)
	}
	return MustChoice(outcomes...)
}

func (c *Choice[T]) Pick(r *rand.Rand) T {
	n := r.Intn(c.total)
	// first bucket whose cumulative weight exceeds n; zero-weight buckets are skipped
	idx := sort.SearchInts(c.cumulative, n+1)
	return c.values[idx]
}

func (c *Choice[T]) Len() int {
	return len(c.values)
}

// Values returns the outcomes in table order.
func (c *Choice[T]) Values() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}
