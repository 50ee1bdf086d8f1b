package anim

import "fmt"

// A Scene is the set of named properties driven by one shared progress
// value.
type Scene struct {
	props  []*Property
	byName map[string]*Property
}

// NewScene creates an empty Scene.
func NewScene() *Scene {
	return &Scene{byName: make(map[string]*Property)}
}

// Add registers a property. Names must be unique within a scene; callers
// that want to layer several intervals onto one logical output register
// them under distinct names and combine downstream.
func (s *Scene) Add(p *Property) error {
	if _, ok := s.byName[p.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProperty, p.Name())
	}

	s.byName[p.Name()] = p
	s.props = append(s.props, p)
	return nil
}

// Properties returns the registered properties in registration order.
func (s *Scene) Properties() []*Property {
	return s.props
}

// ComputeAll evaluates every property at the given global progress.
func (s *Scene) ComputeAll(progress float64) map[string]any {
	values := make(map[string]any, len(s.props))
	for _, p := range s.props {
		values[p.Name()] = p.Value(progress)
	}
	return values
}
