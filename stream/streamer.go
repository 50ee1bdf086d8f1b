package stream

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/staggertx/anim"
	"github.com/matt-g-everett/staggertx/util"
)

const defaultFrameRate = 30.0

// Streamer drives a scene and publishes the computed property values to a
// receiving device over MQTT.
type Streamer struct {
	config Config
	client mqtt.Client
	logger *log.Logger

	driver *anim.Driver
	scene  *anim.Scene

	// shimmer gently breathes colour properties while the driver is idle
	// so the device shows the stream is alive
	shimmer   []float64
	shimmerAt int

	mu   sync.Mutex
	last Snapshot

	commands chan CommandMessage
	stop     chan struct{}
}

// NewStreamer builds the scene from config and wires up the driver.
func NewStreamer(config Config, client mqtt.Client, logger *log.Logger) (*Streamer, error) {
	scene, duration, err := anim.BuildScene(config.Scene)
	if err != nil {
		return nil, err
	}
	driver, err := anim.NewDriver(duration)
	if err != nil {
		return nil, err
	}

	s := new(Streamer)
	s.config = config
	s.client = client
	s.logger = logger
	s.driver = driver
	s.scene = scene
	s.commands = make(chan CommandMessage, 4)
	s.stop = make(chan struct{})

	if config.Stream.Shimmer {
		ease, _ := anim.CurveByName("ease")
		s.shimmer = util.GenerateLut(ease, int(s.frameRate()*2))
	}

	driver.OnComplete(s.handleComplete)
	s.last = newSnapshot(0, driver.State(), scene.ComputeAll(0))

	return s, nil
}

// Subscribe attaches the command topic handler. Call this from the MQTT
// on-connect callback so the subscription survives reconnects.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Command
	if topic == "" {
		return
	}
	if token := s.client.Subscribe(topic, 0, s.handleCommand); token.Wait() && token.Error() != nil {
		s.logger.Error("command subscribe failed", "topic", topic, "err", token.Error())
	}
}

// Run advances the driver at the configured frame rate and publishes a
// snapshot on every tick until Stop is called. The driver is only ever
// touched from this goroutine.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.frameRate())

	if err := s.driver.Start(); err != nil {
		s.logger.Error("driver start failed", "err", err)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-s.stop:
			s.driver.Cancel()
			return
		case cmd := <-s.commands:
			s.apply(cmd)
		case now := <-ticker.C:
			s.driver.Advance(now.Sub(last))
			last = now
			s.publishSnapshot()
		}
	}
}

// Stop cancels the driver and ends the run loop. Any pending completion is
// suppressed.
func (s *Streamer) Stop() {
	close(s.stop)
}

// Snapshot returns the most recently published snapshot.
func (s *Streamer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Streamer) frameRate() float64 {
	if s.config.Stream.FrameRate > 0 {
		return s.config.Stream.FrameRate
	}
	return defaultFrameRate
}

func (s *Streamer) handleCommand(client mqtt.Client, msg mqtt.Message) {
	var cmd CommandMessage
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		s.logger.Warn("bad command payload", "err", err)
		return
	}

	// Handled on the run-loop goroutine so the driver stays single-threaded.
	select {
	case s.commands <- cmd:
	default:
		s.logger.Warn("command dropped", "type", cmd.Type)
	}
}

func (s *Streamer) apply(cmd CommandMessage) {
	var err error
	switch cmd.Type {
	case "start":
		err = s.driver.Start()
	case "reverse":
		err = s.driver.Reverse()
	case "cancel":
		s.driver.Cancel()
	default:
		s.logger.Warn("unknown command", "type", cmd.Type)
		return
	}

	if err != nil {
		s.logger.Warn("command rejected", "type", cmd.Type, "err", err)
	} else {
		s.logger.Debug("command applied", "type", cmd.Type)
	}
}

func (s *Streamer) handleComplete(b anim.Bound) {
	s.publishComplete(b)

	if b == anim.AtEnd && s.config.Scene.Autoreverse {
		if err := s.driver.Reverse(); err != nil {
			s.logger.Error("autoreverse failed", "err", err)
		}
	}
}

func (s *Streamer) publishSnapshot() {
	progress := s.driver.Progress()
	values := s.scene.ComputeAll(progress)
	s.applyShimmer(values)
	snap := newSnapshot(progress, s.driver.State(), values)

	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()

	payload, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("snapshot marshal failed", "err", err)
		return
	}

	token := s.client.Publish(s.config.Mqtt.Topics.Stream, byte(s.config.Stream.Qos), false, payload)
	token.Wait()
}

// applyShimmer lifts the luminance of colour values by the current LUT gain
// while the driver sits at a terminal bound.
func (s *Streamer) applyShimmer(values map[string]any) {
	if s.shimmer == nil || s.driver.State() != anim.StateIdle {
		return
	}

	gain := s.shimmer[s.shimmerAt]
	s.shimmerAt = (s.shimmerAt + 1) % len(s.shimmer)

	for name, v := range values {
		if c, ok := v.(colorful.Color); ok {
			h, ch, l := c.Hcl()
			values[name] = colorful.Hcl(h, ch, l+(0.6-l)*gain*0.2)
		}
	}
}

func (s *Streamer) publishComplete(b anim.Bound) {
	payload, err := json.Marshal(CompleteMessage{Type: "complete", Bound: b.String()})
	if err != nil {
		s.logger.Error("complete marshal failed", "err", err)
		return
	}

	token := s.client.Publish(s.config.Mqtt.Topics.Complete, byte(s.config.Stream.Qos), false, payload)
	token.Wait()
	s.logger.Info("run complete", "bound", b.String())
}
