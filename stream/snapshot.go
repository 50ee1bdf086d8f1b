package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/staggertx/anim"
)

// Snapshot carries the computed value of every property at one tick.
type Snapshot struct {
	Progress   float64        `json:"progress"`
	State      string         `json:"state"`
	Properties map[string]any `json:"properties"`
}

// CompleteMessage announces that a run reached a terminal bound.
type CompleteMessage struct {
	Type  string `json:"type"`
	Bound string `json:"bound"`
}

// CommandMessage instructs the streamer: "start", "reverse" or "cancel".
type CommandMessage struct {
	Type string `json:"type"`
}

func newSnapshot(progress float64, state anim.State, values map[string]any) Snapshot {
	props := make(map[string]any, len(values))
	for name, v := range values {
		props[name] = encodeValue(v)
	}

	return Snapshot{Progress: progress, State: state.String(), Properties: props}
}

// encodeValue converts property values into wire-friendly forms; colours
// become hex strings for the receiving device.
func encodeValue(v any) any {
	if c, ok := v.(colorful.Color); ok {
		return c.Clamped().Hex()
	}
	return v
}
