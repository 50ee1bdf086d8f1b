package anim

import "fmt"

// A Property binds one interval, one curve and one tween to a name. Its
// value is a pure function of the driver's global progress; nothing is
// cached between ticks.
type Property struct {
	name     string
	interval Interval
	curve    Curve
	tween    Tween
}

// NewProperty creates an instance of a Property. A nil curve defaults to
// linear.
func NewProperty(name string, interval Interval, curve Curve, tween Tween) (*Property, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if tween == nil {
		return nil, fmt.Errorf("%w: %q has no tween", ErrBadTween, name)
	}
	if curve == nil {
		curve = curves["linear"]
	}

	return &Property{name: name, interval: interval, curve: curve, tween: tween}, nil
}

// Name returns the property's scene-unique name.
func (p *Property) Name() string {
	return p.name
}

// Interval returns the sub-range of global progress the property animates over.
func (p *Property) Interval() Interval {
	return p.interval
}

// Value computes the property value at the given global progress.
func (p *Property) Value(progress float64) any {
	return p.tween.Value(p.curve(p.interval.LocalProgress(progress)))
}
