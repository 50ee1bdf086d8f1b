package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/staggertx/anim"
	"github.com/matt-g-everett/staggertx/stream"
)

type nullToken struct {
	mqtt.Token
}

func (nullToken) Wait() bool {
	return true
}

func (nullToken) Error() error {
	return nil
}

type nullClient struct {
	mqtt.Client
	mu sync.Mutex
}

func (c *nullClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return nullToken{}
}

// TestApi_State serves the streamer's latest snapshot as JSON.
func TestApi_State(t *testing.T) {
	var cfg stream.Config
	cfg.Mqtt.Topics.Stream = "test/stream"
	cfg.Scene = anim.SceneConfig{
		Duration: "1s",
		Properties: []anim.PropertyConfig{
			{
				Name:     "opacity",
				Interval: anim.IntervalConfig{Start: 0.0, End: 1.0},
				Float:    &anim.FloatConfig{Begin: 0.0, End: 1.0},
			},
		},
	}

	logger := log.NewWithOptions(io.Discard, log.Options{})
	streamer, err := stream.NewStreamer(cfg, new(nullClient), logger)
	require.NoError(t, err)

	a := NewApi(":0", streamer, logger)

	rec := httptest.NewRecorder()
	a.handleState(rec, httptest.NewRequest("GET", "/state", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap stream.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 0.0, snap.Progress)
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, 0.0, snap.Properties["opacity"])
}
