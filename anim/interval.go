package anim

import "fmt"

// An Interval is the sub-range of global progress during which one property
// animates. Intervals are immutable once constructed.
type Interval struct {
	start float64
	end   float64
}

// NewInterval creates an Interval covering [start, end]. Bounds are
// validated here so that evaluation never fails; a zero-length interval is
// rejected because it cannot be re-normalised.
func NewInterval(start, end float64) (Interval, error) {
	if start < 0 || end > 1 || start >= end {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, start, end)
	}
	return Interval{start: start, end: end}, nil
}

// Start returns the global progress at which the interval begins.
func (iv Interval) Start() float64 {
	return iv.start
}

// End returns the global progress at which the interval finishes.
func (iv Interval) End() float64 {
	return iv.end
}

// LocalProgress maps global progress into this interval, clamped to [0, 1]
// and re-normalised. Both boundaries are inclusive: global progress equal
// to Start yields 0 and equal to End yields 1.
func (iv Interval) LocalProgress(global float64) float64 {
	if global <= iv.start {
		return 0.0
	}
	if global >= iv.end {
		return 1.0
	}

	return (global - iv.start) / (iv.end - iv.start)
}
