package math3d

import "math"

// Interval is an inclusive range of reals [Start, End].
//
// Start <= End is expected but never checked; a malformed interval just
// produces whatever the arithmetic gives.
type Interval struct {
	Start, End float64
}

// NewInterval creates a new Interval.
func NewInterval(start, end float64) Interval {
	return Interval{start, end}
}

// Contains reports whether v lies in [Start, End], endpoints included.
func (iv Interval) Contains(v float64) bool {
	return iv.Start <= v && v <= iv.End
}

// Surrounds reports whether v lies strictly inside the interval.
func (iv Interval) Surrounds(v float64) bool {
	return iv.Start < v && v < iv.End
}

// Clamp restricts v to [Start, End]. NaN clamps to Start.
func (iv Interval) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = iv.Start
	}
	return math.Min(math.Max(v, iv.Start), iv.End)
}

// Expand returns the interval grown by delta in total, half on each side.
// A negative delta shrinks it.
func (iv Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{iv.Start - padding, iv.End + padding}
}

// Size returns End - Start.
func (iv Interval) Size() float64 {
	return iv.End - iv.Start
}

// Sample draws a value uniformly from the interval.
func (iv Interval) Sample(r Rand) float64 {
	return iv.Start + (iv.End-iv.Start)*r.Float64()
}

// unitInterval is the range every non-ranged vector sampler draws from.
var unitInterval = Interval{0, 1}
