// Package units provides the unit operations that run on a flowsheet.
package units

import (
	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
)

// A SplitSpec maps each component to the fraction of its inlet flow routed
// to the primary outlet. Components without an entry are routed entirely to
// the secondary outlet. The uniform form applies one fraction to every
// component present in the inlet.
type SplitSpec struct {
	fractions map[string]float64
	uniform   float64
	isUniform bool
}

// SplitByComponent creates a per-component split spec.
func SplitByComponent(fractions map[string]float64) SplitSpec {
	copied := make(map[string]float64, len(fractions))
	for name, f := range fractions {
		copied[name] = f
	}

	return SplitSpec{fractions: copied}
}

// SplitUniform creates a split spec that routes the same fraction of every
// component to the primary outlet.
func SplitUniform(fraction float64) SplitSpec {
	return SplitSpec{uniform: fraction, isUniform: true}
}

// Fraction returns the fraction of the named component routed to the
// primary outlet.
func (s SplitSpec) Fraction(component string) float64 {
	if s.isUniform {
		return s.uniform
	}

	return s.fractions[component]
}

// MustBeValid panics with a ConfigError if any fraction lies outside [0, 1]
// or if the spec references a component that is not registered.
func (s SplitSpec) MustBeValid(reg *thermo.Registry) {
	if s.isUniform {
		if s.uniform < 0 || s.uniform > 1 {
			unitops.PanicConfigErrorf(
				"split fraction must be in [0, 1], got %g", s.uniform)
		}

		return
	}

	for name, f := range s.fractions {
		if !reg.Has(name) {
			unitops.PanicConfigErrorf(
				"split spec references unregistered component %s", name)
		}

		if f < 0 || f > 1 {
			unitops.PanicConfigErrorf(
				"split fraction of %s must be in [0, 1], got %g", name, f)
		}
	}
}

// applySplit distributes the inlet flows over the two outlets. It is a pure
// function of the inlet composition and the spec: it rewrites the outlet
// flow vectors in place and touches no other stream attribute. The
// secondary outlet receives the remainder, so per-component conservation
// holds to within one rounding step.
func applySplit(in, out0, out1 *thermo.Stream, spec SplitSpec) {
	reg := in.Registry()

	for i, c := range reg.Components() {
		flow := in.FlowAt(i)
		toPrimary := flow * spec.Fraction(c.Name)

		out0.SetFlowAt(i, toPrimary)
		out1.SetFlowAt(i, flow-toPrimary)
	}
}

// A Splitter splits one inlet stream into two outlets component-wise. It
// performs no thermal work: outlets leave at the inlet condition.
type Splitter struct {
	flowsheet.UnitBase

	split SplitSpec
}

// NewSplitter creates a splitter. The split spec is validated against the
// inlet's component registry; outlets must share that registry.
func NewSplitter(
	name string,
	in, out0, out1 *thermo.Stream,
	split SplitSpec,
) *Splitter {
	streamsMustShareRegistry(name, in, out0, out1)
	split.MustBeValid(in.Registry())

	return &Splitter{
		UnitBase: flowsheet.NewUnitBase(
			name, "Splitter",
			[]*thermo.Stream{in},
			[]*thermo.Stream{out0, out1},
		),
		split: split,
	}
}

// Run splits the inlet over the two outlets and copies the inlet condition
// to both.
func (s *Splitter) Run() error {
	s.ResetPass()

	in := s.Ins()[0]
	out0, out1 := s.Outs()[0], s.Outs()[1]

	applySplit(in, out0, out1, s.split)
	out0.CopyConditionFrom(in)
	out1.CopyConditionFrom(in)

	return nil
}

// Design is a no-op: a plain splitter has no sizing basis.
func (s *Splitter) Design() error {
	return nil
}

func streamsMustShareRegistry(
	unitName string,
	in *thermo.Stream,
	outs ...*thermo.Stream,
) {
	if in == nil {
		unitops.PanicConfigErrorf(
			"unit %s has no inlet stream", unitName)
	}

	for _, out := range outs {
		if out == nil {
			unitops.PanicConfigErrorf(
				"unit %s has an unbound outlet stream", unitName)
		}

		if out.Registry() != in.Registry() {
			unitops.PanicConfigErrorf(
				"streams of unit %s do not share a component registry",
				unitName)
		}
	}
}
