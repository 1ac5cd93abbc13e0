// Package target ties together everything the compiler knows about one
// accelerator: its cost model and its operator lowerings. Backends are
// registered on a Registry instance owned by the application; nothing is
// process-global.
package target

import (
	"fmt"
	"sort"

	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/lower"
)

// Backend describes one accelerator target.
type Backend struct {
	Name   string
	Model  costmodel.Model
	Lowers []lower.Lower
}

// NewBackend creates a backend from its parts.
func NewBackend(name string, model costmodel.Model, lowers ...lower.Lower) *Backend {
	return &Backend{Name: name, Model: model, Lowers: lowers}
}

// Registry holds the backends available to one application instance.
type Registry struct {
	backends map[string]*Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend. Registering the same name twice is an error.
func (r *Registry) Register(b *Backend) error {
	if _, ok := r.backends[b.Name]; ok {
		return fmt.Errorf("target %q is already registered", b.Name)
	}
	r.backends[b.Name] = b
	return nil
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (*Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown target %q (available: %v)", name, r.Names())
	}
	return b, nil
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
