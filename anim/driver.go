package anim

import (
	"fmt"
	"time"
)

// State identifies the driver's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunningForward
	StateRunningReverse
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunningForward:
		return "runningForward"
	case StateRunningReverse:
		return "runningReverse"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Bound identifies which end of the progress range a run finished at.
type Bound int

const (
	AtStart Bound = iota
	AtEnd
)

func (b Bound) String() string {
	if b == AtEnd {
		return "end"
	}
	return "start"
}

// A Driver owns the single global progress value for a scene and sweeps it
// over a fixed duration. All methods must be called from one goroutine;
// tick delivery and value computation happen synchronously inside Advance,
// so observers never see a torn progress value.
type Driver struct {
	duration time.Duration
	progress float64
	state    State
	ticks    []func(progress float64)
	complete []func(Bound)
}

// NewDriver creates a Driver that sweeps progress across [0, 1] over the
// given duration.
func NewDriver(duration time.Duration) (*Driver, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	return &Driver{duration: duration}, nil
}

// OnTick registers an observer called with the new progress on every tick
// while the driver is running.
func (d *Driver) OnTick(fn func(progress float64)) {
	d.ticks = append(d.ticks, fn)
}

// OnComplete registers fn to be called when a run reaches its terminal
// bound. A cancelled driver never fires it.
func (d *Driver) OnComplete(fn func(Bound)) {
	d.complete = append(d.complete, fn)
}

// Progress returns the current global progress in [0, 1].
func (d *Driver) Progress() float64 {
	return d.progress
}

// State returns the driver's lifecycle phase.
func (d *Driver) State() State {
	return d.state
}

// Duration returns the wall-clock time of one full sweep.
func (d *Driver) Duration() time.Duration {
	return d.duration
}

// Start begins a forward run from the current progress.
func (d *Driver) Start() error {
	switch d.state {
	case StateCancelled:
		return ErrDriverCancelled
	case StateRunningForward, StateRunningReverse:
		return ErrAlreadyRunning
	}

	d.state = StateRunningForward
	return nil
}

// Reverse begins a reverse run toward zero, typically issued after a
// forward run completes so the scene plays forward then backward.
func (d *Driver) Reverse() error {
	switch d.state {
	case StateCancelled:
		return ErrDriverCancelled
	case StateRunningForward, StateRunningReverse:
		return ErrAlreadyRunning
	}

	d.state = StateRunningReverse
	return nil
}

// Cancel permanently stops the driver. A completion that would otherwise
// fire in the current tick is suppressed.
func (d *Driver) Cancel() {
	d.state = StateCancelled
}

// Advance moves progress by delta of wall-clock time, clamps it to [0, 1]
// and fans the new value out to every tick observer. The completion check
// runs after observer delivery, so an observer that cancels the driver
// mid-tick suppresses the completion event even when progress reached the
// terminal bound that tick. Advance is a no-op unless a run is in flight.
func (d *Driver) Advance(delta time.Duration) {
	var direction float64
	switch d.state {
	case StateRunningForward:
		direction = 1.0
	case StateRunningReverse:
		direction = -1.0
	default:
		return
	}

	d.progress += direction * float64(delta) / float64(d.duration)
	if d.progress > 1.0 {
		d.progress = 1.0
	} else if d.progress < 0.0 {
		d.progress = 0.0
	}

	for _, fn := range d.ticks {
		fn(d.progress)
	}

	switch {
	case d.state == StateRunningForward && d.progress >= 1.0:
		d.state = StateIdle
		d.fireComplete(AtEnd)
	case d.state == StateRunningReverse && d.progress <= 0.0:
		d.state = StateIdle
		d.fireComplete(AtStart)
	}
}

func (d *Driver) fireComplete(b Bound) {
	for _, fn := range d.complete {
		fn(b)
	}
}
