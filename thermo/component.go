// Package thermo provides chemical components and material streams. It is
// the thin, concrete face of the chemical-property engine that the
// unit-operation packages consume.
package thermo

import (
	"github.com/prosimlab/unitops"
)

// A Component is a pure chemical species tracked by a simulation.
type Component struct {
	// Name identifies the component within a registry, e.g. "Water".
	Name string

	// MW is the molar mass in kg/kmol.
	MW float64
}

// A Registry is the ordered set of components available to a simulation.
// All streams of one flowsheet share a single registry, so their flow
// vectors are index-aligned.
type Registry struct {
	components []Component
	index      map[string]int
}

// NewRegistry creates a registry holding the given components. Component
// names must be unique and molar masses must be positive.
func NewRegistry(components ...Component) *Registry {
	r := &Registry{
		index: make(map[string]int),
	}

	for _, c := range components {
		if c.Name == "" {
			unitops.PanicConfigErrorf("component name must not be empty")
		}

		if c.MW <= 0 {
			unitops.PanicConfigErrorf(
				"component %s must have a positive molar mass, got %g",
				c.Name, c.MW)
		}

		if _, dup := r.index[c.Name]; dup {
			unitops.PanicConfigErrorf(
				"component %s is registered twice", c.Name)
		}

		r.index[c.Name] = len(r.components)
		r.components = append(r.components, c)
	}

	return r
}

// NumComponents returns the number of components in the registry.
func (r *Registry) NumComponents() int {
	return len(r.components)
}

// Components returns the components in registration order.
func (r *Registry) Components() []Component {
	return r.components
}

// Has reports whether a component with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, found := r.index[name]
	return found
}

// IndexOf returns the flow-vector index of the named component. It panics
// with a ConfigError if the component is not registered.
func (r *Registry) IndexOf(name string) int {
	i, found := r.index[name]
	if !found {
		unitops.PanicConfigErrorf("component %s is not registered", name)
	}

	return i
}
