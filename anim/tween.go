package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Lerp linearly interpolates between a and b. t is deliberately not
// clamped; the interval mapper owns clamping, and a t outside [0, 1]
// extrapolates so that overshoot curves work.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// A Tween maps eased local progress to a concrete value for one property.
type Tween interface {
	Value(t float64) any
}

// FloatTween interpolates a scalar property such as opacity or width.
type FloatTween struct {
	Begin float64
	End   float64
}

// Float computes the interpolated scalar at t.
func (tw FloatTween) Float(t float64) float64 {
	return Lerp(tw.Begin, tw.End, t)
}

func (tw FloatTween) Value(t float64) any {
	return tw.Float(t)
}

// ColourMode selects how a ColourTween blends between its endpoints.
type ColourMode int

const (
	// ColourRGB interpolates each RGB channel independently.
	ColourRGB ColourMode = iota
	// ColourHcl blends through HCL space for perceptually even sweeps.
	ColourHcl
)

// ColourTween interpolates between two colours.
type ColourTween struct {
	Begin colorful.Color
	End   colorful.Color
	Mode  ColourMode
}

// Colour computes the blended colour at t.
func (tw ColourTween) Colour(t float64) colorful.Color {
	if tw.Mode == ColourHcl {
		return tw.Begin.BlendHcl(tw.End, t)
	}

	return colorful.Color{
		R: Lerp(tw.Begin.R, tw.End.R, t),
		G: Lerp(tw.Begin.G, tw.End.G, t),
		B: Lerp(tw.Begin.B, tw.End.B, t),
	}
}

func (tw ColourTween) Value(t float64) any {
	return tw.Colour(t)
}

// Insets describes rectangular padding around a drawn element.
type Insets struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// InsetsTween interpolates each inset component independently.
type InsetsTween struct {
	Begin Insets
	End   Insets
}

// Insets computes the interpolated insets at t.
func (tw InsetsTween) Insets(t float64) Insets {
	return Insets{
		Top:    Lerp(tw.Begin.Top, tw.End.Top, t),
		Right:  Lerp(tw.Begin.Right, tw.End.Right, t),
		Bottom: Lerp(tw.Begin.Bottom, tw.End.Bottom, t),
		Left:   Lerp(tw.Begin.Left, tw.End.Left, t),
	}
}

func (tw InsetsTween) Value(t float64) any {
	return tw.Insets(t)
}

// Corners describes the rounding radius of each corner of a drawn element.
type Corners struct {
	TopLeft     float64 `json:"topLeft" yaml:"topLeft"`
	TopRight    float64 `json:"topRight" yaml:"topRight"`
	BottomRight float64 `json:"bottomRight" yaml:"bottomRight"`
	BottomLeft  float64 `json:"bottomLeft" yaml:"bottomLeft"`
}

// CornersTween interpolates each corner radius independently.
type CornersTween struct {
	Begin Corners
	End   Corners
}

// Corners computes the interpolated radii at t.
func (tw CornersTween) Corners(t float64) Corners {
	return Corners{
		TopLeft:     Lerp(tw.Begin.TopLeft, tw.End.TopLeft, t),
		TopRight:    Lerp(tw.Begin.TopRight, tw.End.TopRight, t),
		BottomRight: Lerp(tw.Begin.BottomRight, tw.End.BottomRight, t),
		BottomLeft:  Lerp(tw.Begin.BottomLeft, tw.End.BottomLeft, t),
	}
}

func (tw CornersTween) Value(t float64) any {
	return tw.Corners(t)
}
