package gateway

import (
	"fmt"
	"sort"

	"github.com/cassiomorais/paygrid/internal/domain/errors"
)

// Constructor builds a gateway factory with the given options.
type Constructor func(opts ...Option) Factory

// Registry maps gateway names to factory constructors so callers can select
// a gateway at runtime. Direct factory construction stays the primary path;
// the registry only serves dynamic selection (config, HTTP).
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor under the given name, replacing any previous
// registration.
func (r *Registry) Register(name string, c Constructor) {
	r.constructors[name] = c
}

// New constructs the factory registered under name.
func (r *Registry) New(name string, opts ...Option) (Factory, error) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("gateway %q: %w", name, errors.ErrUnknownGateway)
	}
	return c(opts...), nil
}

// Names returns the registered gateway names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with every built-in gateway registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(omniName, func(opts ...Option) Factory { return NewOmniPayFactory(opts...) })
	r.Register(maxiName, func(opts ...Option) Factory { return NewMaxiPayFactory(opts...) })
	r.Register(veloName, func(opts ...Option) Factory { return NewVeloPayFactory(opts...) })
	return r
}
