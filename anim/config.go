package anim

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// SceneConfig is the YAML description of a staggered scene.
type SceneConfig struct {
	Duration    string           `yaml:"duration"`
	Autoreverse bool             `yaml:"autoreverse"`
	Properties  []PropertyConfig `yaml:"properties"`
}

// PropertyConfig describes one animated property. Exactly one of the tween
// stanzas must be set.
type PropertyConfig struct {
	Name     string         `yaml:"name"`
	Interval IntervalConfig `yaml:"interval"`
	Curve    string         `yaml:"curve"`
	Float    *FloatConfig   `yaml:"float,omitempty"`
	Colour   *ColourConfig  `yaml:"colour,omitempty"`
	Insets   *InsetsConfig  `yaml:"insets,omitempty"`
	Corners  *CornersConfig `yaml:"corners,omitempty"`
}

// IntervalConfig is the [start, end] sub-range of global progress.
type IntervalConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// FloatConfig is a scalar tween definition.
type FloatConfig struct {
	Begin float64 `yaml:"begin"`
	End   float64 `yaml:"end"`
}

// ColourConfig is a colour tween definition with hex endpoints. Mode is
// "rgb" (default) or "hcl".
type ColourConfig struct {
	Begin string `yaml:"begin"`
	End   string `yaml:"end"`
	Mode  string `yaml:"mode,omitempty"`
}

// InsetsConfig is a rectangular insets tween definition.
type InsetsConfig struct {
	Begin Insets `yaml:"begin"`
	End   Insets `yaml:"end"`
}

// CornersConfig is a corner radii tween definition.
type CornersConfig struct {
	Begin Corners `yaml:"begin"`
	End   Corners `yaml:"end"`
}

// BuildScene validates a scene definition and assembles the runtime scene
// and sweep duration. Every configuration error surfaces here; evaluation
// never fails afterwards.
func BuildScene(cfg SceneConfig) (*Scene, time.Duration, error) {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: bad scene duration %q", ErrInvalidDuration, cfg.Duration)
	}
	if duration <= 0 {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	scene := NewScene()
	for _, pc := range cfg.Properties {
		p, err := buildProperty(pc)
		if err != nil {
			return nil, 0, err
		}
		if err := scene.Add(p); err != nil {
			return nil, 0, err
		}
	}

	return scene, duration, nil
}

func buildProperty(cfg PropertyConfig) (*Property, error) {
	interval, err := NewInterval(cfg.Interval.Start, cfg.Interval.End)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", cfg.Name, err)
	}

	curveName := cfg.Curve
	if curveName == "" {
		curveName = "linear"
	}
	curve, err := CurveByName(curveName)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", cfg.Name, err)
	}

	tween, err := buildTween(cfg)
	if err != nil {
		return nil, err
	}

	return NewProperty(cfg.Name, interval, curve, tween)
}

func buildTween(cfg PropertyConfig) (Tween, error) {
	var tweens []Tween

	if cfg.Float != nil {
		tweens = append(tweens, FloatTween{Begin: cfg.Float.Begin, End: cfg.Float.End})
	}
	if cfg.Colour != nil {
		tw, err := buildColourTween(cfg.Name, cfg.Colour)
		if err != nil {
			return nil, err
		}
		tweens = append(tweens, tw)
	}
	if cfg.Insets != nil {
		tweens = append(tweens, InsetsTween{Begin: cfg.Insets.Begin, End: cfg.Insets.End})
	}
	if cfg.Corners != nil {
		tweens = append(tweens, CornersTween{Begin: cfg.Corners.Begin, End: cfg.Corners.End})
	}

	if len(tweens) != 1 {
		return nil, fmt.Errorf("%w: %q has %d", ErrBadTween, cfg.Name, len(tweens))
	}
	return tweens[0], nil
}

func buildColourTween(name string, cfg *ColourConfig) (Tween, error) {
	begin, err := colorful.Hex(cfg.Begin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q begin colour %q", ErrBadTween, name, cfg.Begin)
	}
	end, err := colorful.Hex(cfg.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %q end colour %q", ErrBadTween, name, cfg.End)
	}

	var mode ColourMode
	switch cfg.Mode {
	case "", "rgb":
		mode = ColourRGB
	case "hcl":
		mode = ColourHcl
	default:
		return nil, fmt.Errorf("%w: %q colour mode %q", ErrBadTween, name, cfg.Mode)
	}

	return ColourTween{Begin: begin, End: end, Mode: mode}, nil
}
