package anim

import (
	"fmt"

	"github.com/fogleman/ease"
)

// A Curve shapes local progress before interpolation. A curve must map 0 to
// 0 and 1 to 1; values in between may leave [0, 1] for overshoot effects.
type Curve func(t float64) float64

var curves = map[string]Curve{
	"linear":            ease.Linear,
	"ease-in":           ease.InQuad,
	"ease-out":          ease.OutQuad,
	"ease":              ease.InOutQuad,
	"ease-in-out":       ease.InOutQuad,
	"ease-in-cubic":     ease.InCubic,
	"ease-out-cubic":    ease.OutCubic,
	"ease-in-out-cubic": ease.InOutCubic,
	"ease-in-sine":      ease.InSine,
	"ease-out-sine":     ease.OutSine,
	"ease-out-back":     ease.OutBack,
	"ease-out-elastic":  ease.OutElastic,
	"ease-out-bounce":   ease.OutBounce,
}

// CurveByName resolves a scene-file curve name to its shaping function.
func CurveByName(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// CurveNames lists every name CurveByName accepts.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	return names
}
