package anim

import "errors"

var (
	// ErrInvalidInterval indicates interval bounds outside [0, 1] or a
	// zero-length or inverted interval.
	ErrInvalidInterval = errors.New("anim: interval bounds must satisfy 0 <= start < end <= 1")
	// ErrUnknownCurve indicates a curve name with no registered shape.
	ErrUnknownCurve = errors.New("anim: unknown curve")
	// ErrBadTween indicates a property definition without exactly one
	// well-formed tween.
	ErrBadTween = errors.New("anim: property must define exactly one tween")
	// ErrEmptyName indicates a property without a name.
	ErrEmptyName = errors.New("anim: property name must not be empty")
	// ErrDuplicateProperty indicates two properties registered under one name.
	ErrDuplicateProperty = errors.New("anim: duplicate property name")
	// ErrInvalidDuration indicates a non-positive driver duration.
	ErrInvalidDuration = errors.New("anim: duration must be positive")
	// ErrAlreadyRunning indicates a start or reverse command while a run is
	// in flight.
	ErrAlreadyRunning = errors.New("anim: driver is already running")
	// ErrDriverCancelled indicates a command issued after cancellation.
	ErrDriverCancelled = errors.New("anim: driver is cancelled")
)
