package sampler

import (
	// Go Internal Packages
	"math/rand"
	"time"
)

const (
	ISOLayout  = "2006-01-02T15:04:05Z"
	DateLayout = "2006-01-02"
)

// Window is an inclusive [Start, End] range of instants, second resolution.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) Window {
	return Window{Start: start.UTC(), End: end.UTC()}
}

// Instant draws a whole second uniformly from the window.
func (w Window) Instant(r *rand.Rand) time.Time {
	span := int64(w.End.Sub(w.Start) / time.Second)
	if span <= 0 {
		return w.Start
	}
	return w.Start.Add(time.Duration(r.Int63n(span+1)) * time.Second)
}

// After narrows the window to start at t. t outside the window yields an
// empty window pinned at t.
func (w Window) After(t time.Time) Window {
	if t.After(w.End) {
		return Window{Start: t, End: t}
	}
	if t.Before(w.Start) {
		return w
	}
	return Window{Start: t, End: w.End}
}

// TrimEnd moves the end of the window back by d, never before Start.
func (w Window) TrimEnd(d time.Duration) Window {
	end := w.End.Add(-d)
	if end.Before(w.Start) {
		end = w.Start
	}
	return Window{Start: w.Start, End: end}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}

// IntBetween is uniform over [lo, hi].
func IntBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// FloatBetween is uniform over [lo, hi).
func FloatBetween(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// PickOne returns a uniformly chosen element; ok is false for an empty slice.
func PickOne[T any](r *rand.Rand, values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	return values[r.Intn(len(values))], true
}
