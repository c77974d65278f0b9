package registry

import (
	"context"
	"fmt"
)

// Handler executes one operation against the upstream API. Handlers receive
// only the call arguments; anything a handler returns as an error is converted
// into a failure outcome at the dispatch boundary and never escapes further.
type Handler func(ctx context.Context, args Args) (any, error)

// Param describes one named parameter of an operation. Required is advisory
// metadata surfaced through discovery; presence of required parameters is
// enforced by the dispatcher before the handler runs.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Descriptor is the static metadata for one invokable operation. Descriptors
// are created once at startup and shared read-only across all sessions.
type Descriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params,omitempty"`
	Handler     Handler `json:"-"`
}

// Required returns the names of the descriptor's required parameters, in
// declaration order.
func (d Descriptor) Required() []string {
	var names []string
	for _, p := range d.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Registry is the immutable operation catalog. Contents are fixed at process
// start; List and Resolve are safe for unsynchronized concurrent use.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// New builds a registry from the given descriptors, preserving their order
// for discovery responses. Duplicate or empty operation names are a wiring
// mistake and fail construction.
func New(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(descriptors)),
		byName: make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("operation with empty name")
		}
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("duplicate operation: %s", d.Name)
		}
		if d.Handler == nil {
			return nil, fmt.Errorf("operation %s has no handler", d.Name)
		}
		r.order = append(r.order, d.Name)
		r.byName[d.Name] = d
	}
	return r, nil
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Resolve looks up a descriptor by operation name.
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the operation names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.order)
}
