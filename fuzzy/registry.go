// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"

	"go.uber.org/zap"
)

// Registry tracks live systems by id so nodes of one system can read the
// output of another. It is owned by the host; there is no process-wide
// registry. Not safe for concurrent use.
type Registry struct {
	systems map[string]*System
	order   []string
	log     *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the registry logger. A nil logger has no effect.
func WithRegistryLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		systems: make(map[string]*System),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds s. A second system with the same id is rejected with
// ErrAlreadyRegistered.
func (r *Registry) Register(s *System) error {
	if s == nil {
		return ErrNilSystem
	}
	if err := s.check(); err != nil {
		return err
	}
	if _, dup := r.systems[s.id]; dup {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, s.id)
	}
	r.systems[s.id] = s
	r.order = append(r.order, s.id)
	if s.registry == nil {
		s.registry = r
	}
	r.log.Debug("system registered", zap.String("system", s.id), zap.String("name", s.name))

	return nil
}

// Unregister removes the system with the given id and reports whether it
// was present. Nodes elsewhere that read it resolve to 0 from now on.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.systems[id]; !ok {
		return false
	}
	delete(r.systems, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.log.Debug("system unregistered", zap.String("system", id))

	return true
}

// Lookup returns the system with the given id.
func (r *Registry) Lookup(id string) (*System, bool) {
	s, ok := r.systems[id]

	return s, ok
}

// Len returns the number of registered systems.
func (r *Registry) Len() int { return len(r.systems) }

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Clear unregisters every system.
func (r *Registry) Clear() {
	r.systems = make(map[string]*System)
	r.order = r.order[:0]
	r.log.Debug("registry cleared")
}

// IsCycleReference reports whether evaluating s ends up reading s again
// through the systems its nodes read.
func (r *Registry) IsCycleReference(s *System) bool {
	if s.check() != nil {
		return false
	}

	return s.isSystemCycle()
}
