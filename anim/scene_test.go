package anim_test

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/staggertx/anim"
)

const sceneYaml = `
duration: 2s
autoreverse: true
properties:
  - name: opacity
    interval: {start: 0.0, end: 0.1}
    float: {begin: 0.0, end: 1.0}
  - name: width
    interval: {start: 0.125, end: 0.25}
    curve: ease
    float: {begin: 50.0, end: 150.0}
  - name: padding
    interval: {start: 0.25, end: 0.375}
    curve: ease
    insets:
      begin: {top: 16, right: 16, bottom: 16, left: 16}
      end: {top: 16, right: 16, bottom: 75, left: 16}
  - name: borderRadius
    interval: {start: 0.375, end: 0.5}
    curve: ease
    corners:
      begin: {topLeft: 4, topRight: 4, bottomRight: 4, bottomLeft: 4}
      end: {topLeft: 75, topRight: 75, bottomRight: 75, bottomLeft: 75}
  - name: colour
    interval: {start: 0.5, end: 0.75}
    curve: ease
    colour: {begin: "#303f9f", end: "#7986cb"}
`

func loadScene(t *testing.T, doc string) (*anim.Scene, time.Duration) {
	t.Helper()

	var cfg anim.SceneConfig
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	scene, duration, err := anim.BuildScene(cfg)
	require.NoError(t, err)
	return scene, duration
}

// TestBuildScene_FromYaml parses a full staggered scene definition and
// evaluates it at a few representative progress points.
func TestBuildScene_FromYaml(t *testing.T) {
	scene, duration := loadScene(t, sceneYaml)
	assert.Equal(t, 2*time.Second, duration)
	assert.Len(t, scene.Properties(), 5)

	begin := scene.ComputeAll(0.0)
	assert.Equal(t, 0.0, begin["opacity"])
	assert.Equal(t, 50.0, begin["width"])
	assert.Equal(t, anim.Insets{Top: 16, Right: 16, Bottom: 16, Left: 16}, begin["padding"])

	mid := scene.ComputeAll(0.05)
	assert.InDelta(t, 0.5, mid["opacity"].(float64), 1e-12, "linear opacity over [0, 0.1]")
	assert.Equal(t, 50.0, mid["width"], "width has not entered its interval yet")

	end := scene.ComputeAll(1.0)
	assert.Equal(t, 1.0, end["opacity"])
	assert.Equal(t, 150.0, end["width"])
	assert.Equal(t, anim.Corners{TopLeft: 75, TopRight: 75, BottomRight: 75, BottomLeft: 75}, end["borderRadius"])
}

// TestScene_DuplicateName rejects two properties under one name.
func TestScene_DuplicateName(t *testing.T) {
	scene := anim.NewScene()

	p1, err := anim.NewProperty("opacity", mustInterval(t, 0.0, 0.5), nil, anim.FloatTween{End: 1})
	require.NoError(t, err)
	p2, err := anim.NewProperty("opacity", mustInterval(t, 0.5, 1.0), nil, anim.FloatTween{End: 1})
	require.NoError(t, err)

	require.NoError(t, scene.Add(p1))
	assert.ErrorIs(t, scene.Add(p2), anim.ErrDuplicateProperty)
}

// TestBuildScene_Errors exercises every construction-time failure mode of
// the scene definition.
func TestBuildScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"bad duration",
			"duration: fast\nproperties: []",
			anim.ErrInvalidDuration,
		},
		{
			"negative duration",
			"duration: -2s\nproperties: []",
			anim.ErrInvalidDuration,
		},
		{
			"bad interval",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0.5, end: 0.25}\n    float: {begin: 0, end: 1}",
			anim.ErrInvalidInterval,
		},
		{
			"unknown curve",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 1}\n    curve: wobble\n    float: {begin: 0, end: 1}",
			anim.ErrUnknownCurve,
		},
		{
			"no tween",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 1}",
			anim.ErrBadTween,
		},
		{
			"two tweens",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 1}\n    float: {begin: 0, end: 1}\n    colour: {begin: \"#000000\", end: \"#ffffff\"}",
			anim.ErrBadTween,
		},
		{
			"bad colour hex",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 1}\n    colour: {begin: \"notahex\", end: \"#ffffff\"}",
			anim.ErrBadTween,
		},
		{
			"bad colour mode",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 1}\n    colour: {begin: \"#000000\", end: \"#ffffff\", mode: cmyk}",
			anim.ErrBadTween,
		},
		{
			"empty name",
			"duration: 1s\nproperties:\n  - interval: {start: 0, end: 1}\n    float: {begin: 0, end: 1}",
			anim.ErrEmptyName,
		},
		{
			"duplicate names",
			"duration: 1s\nproperties:\n  - name: a\n    interval: {start: 0, end: 0.5}\n    float: {begin: 0, end: 1}\n  - name: a\n    interval: {start: 0.5, end: 1}\n    float: {begin: 0, end: 1}",
			anim.ErrDuplicateProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg anim.SceneConfig
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &cfg))

			_, _, err := anim.BuildScene(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestScene_HclColourMode builds an HCL-mode colour property through the
// config path and checks both endpoints reproduce exactly.
func TestScene_HclColourMode(t *testing.T) {
	doc := `
duration: 1s
properties:
  - name: glow
    interval: {start: 0.0, end: 1.0}
    colour: {begin: "#303f9f", end: "#7986cb", mode: hcl}
`
	scene, _ := loadScene(t, doc)

	want, err := colorful.Hex("#303f9f")
	require.NoError(t, err)

	begin, ok := scene.ComputeAll(0.0)["glow"].(colorful.Color)
	require.True(t, ok, "colour property must evaluate to a colour")
	assert.InDelta(t, want.R, begin.R, 1e-9)
	assert.InDelta(t, want.G, begin.G, 1e-9)
	assert.InDelta(t, want.B, begin.B, 1e-9)
}
