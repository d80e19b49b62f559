package units

import (
	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/costing"
	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
)

// MolecularSieveKind is the unit-kind identifier of the molecular sieve in
// the cost-correlation registry.
const MolecularSieveKind = "MolecularSieve"

// Empirical per-unit-mass energy intensities of the desorption cycle, in
// kJ per kg of reject flow, from the NREL corn stover ethanol costing
// study. Heating regenerates the adsorbent; cooling condenses the
// desorbed vapor.
const (
	regenerationDutyPerKg = 1429.65
	condensationDutyPerKg = -55.51
)

func init() {
	costing.Register(MolecularSieveKind, costing.Correlation{
		Basis:      "Flow rate",
		Equipment:  "Column",
		Cost:       2601000,
		Size:       22687,
		Index:      521.9,
		Exponent:   0.6,
		BareModule: 1.8,
		KW:         151,
	})
}

// A MolecularSieve is an adsorption column modeled as a component-wise
// separator, sized by the mass flow of its reject stream. The split
// fractions are supplied, not derived: the sieve assumes isothermal,
// isobaric-unless-overridden operation and leaves phase equilibrium to the
// upstream property engine.
type MolecularSieve struct {
	flowsheet.UnitBase

	split        SplitSpec
	pressure     float64
	hasPressure  bool
	approximates bool
}

// A MolecularSieveBuilder can build molecular sieves.
type MolecularSieveBuilder struct {
	split       SplitSpec
	pressure    float64
	hasPressure bool
	approxDuty  bool
}

// MakeMolecularSieveBuilder creates a builder with duty approximation
// enabled.
func MakeMolecularSieveBuilder() MolecularSieveBuilder {
	return MolecularSieveBuilder{
		approxDuty: true,
	}
}

// WithSplit sets the component-wise split to the primary outlet.
func (b MolecularSieveBuilder) WithSplit(
	split SplitSpec,
) MolecularSieveBuilder {
	b.split = split
	return b
}

// WithOutletPressure overrides the pressure of both outlets, in Pa. Without
// an override the outlets inherit the inlet pressure.
func (b MolecularSieveBuilder) WithOutletPressure(
	p float64,
) MolecularSieveBuilder {
	b.pressure = p
	b.hasPressure = true
	return b
}

// WithoutApproxDuty disables the built-in desorption-cycle duty
// approximation. The caller must then book heat duties externally.
func (b MolecularSieveBuilder) WithoutApproxDuty() MolecularSieveBuilder {
	b.approxDuty = false
	return b
}

// Build builds a molecular sieve separating the inlet into a primary
// (product) outlet and a secondary (reject) outlet.
func (b MolecularSieveBuilder) Build(
	name string,
	in, out0, out1 *thermo.Stream,
) *MolecularSieve {
	streamsMustShareRegistry(name, in, out0, out1)
	b.split.MustBeValid(in.Registry())

	if b.hasPressure && b.pressure <= 0 {
		unitops.PanicConfigErrorf(
			"outlet pressure of unit %s must be positive, got %g",
			name, b.pressure)
	}

	return &MolecularSieve{
		UnitBase: flowsheet.NewUnitBase(
			name, MolecularSieveKind,
			[]*thermo.Stream{in},
			[]*thermo.Stream{out0, out1},
		),
		split:        b.split,
		pressure:     b.pressure,
		hasPressure:  b.hasPressure,
		approximates: b.approxDuty,
	}
}

// Run splits the inlet over the two outlets and propagates pressure: the
// override if one is configured, the inlet pressure otherwise. Temperature
// and phase pass through unchanged.
func (m *MolecularSieve) Run() error {
	m.ResetPass()

	in := m.Ins()[0]
	if in.TotalFlow() == 0 {
		return unitops.ValidationErrorf(
			"inlet %s of unit %s has zero total flow, the split is "+
				"undefined", in.Name(), m.Name())
	}

	out0, out1 := m.Outs()[0], m.Outs()[1]
	applySplit(in, out0, out1, m.split)

	p := in.P
	if m.hasPressure {
		p = m.pressure
	}

	for _, out := range m.Outs() {
		out.T = in.T
		out.Phase = in.Phase
		out.P = p
	}

	return nil
}

// Design records the sizing basis and books the desorption-cycle duties.
// The sieve is sized by the reject stream: equipment size is driven by the
// lower-value, higher-volume water-rich flow, not by the product.
func (m *MolecularSieve) Design() error {
	rejectMass := m.Outs()[1].TotalMassFlow()
	m.DesignResults()["Flow rate"] = rejectMass

	if m.approximates {
		t := m.Outs()[0].T
		m.Utilities().AddHeat(regenerationDutyPerKg*rejectMass, t)
		m.Utilities().AddHeat(condensationDutyPerKg*rejectMass, t)
	}

	return nil
}
