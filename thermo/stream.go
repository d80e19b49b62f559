package thermo

// A Stream is a multi-component material flow together with its state. Flow
// amounts are molar (kmol/hr) and index-aligned with the stream's registry.
// A stream is created once per named port and mutated in place by unit runs,
// so it keeps a single logical identity across re-simulation passes.
type Stream struct {
	name  string
	reg   *Registry
	flows []float64

	// T is the temperature in K.
	T float64

	// P is the pressure in Pa.
	P float64

	// Phase tags the physical state of the stream.
	Phase Phase
}

// NewStream creates an empty stream bound to a component registry.
func NewStream(name string, reg *Registry) *Stream {
	return &Stream{
		name:  name,
		reg:   reg,
		flows: make([]float64, reg.NumComponents()),
	}
}

// Name returns the name of the stream.
func (s *Stream) Name() string {
	return s.name
}

// Registry returns the component registry the stream is bound to.
func (s *Stream) Registry() *Registry {
	return s.reg
}

// Flow returns the molar flow of the named component in kmol/hr.
func (s *Stream) Flow(component string) float64 {
	return s.flows[s.reg.IndexOf(component)]
}

// SetFlow sets the molar flow of the named component in kmol/hr.
func (s *Stream) SetFlow(component string, flow float64) {
	s.flows[s.reg.IndexOf(component)] = flow
}

// FlowAt returns the molar flow at a registry index in kmol/hr.
func (s *Stream) FlowAt(i int) float64 {
	return s.flows[i]
}

// SetFlowAt sets the molar flow at a registry index in kmol/hr.
func (s *Stream) SetFlowAt(i int, flow float64) {
	s.flows[i] = flow
}

// TotalFlow returns the total molar flow in kmol/hr.
func (s *Stream) TotalFlow() float64 {
	total := 0.0
	for _, f := range s.flows {
		total += f
	}

	return total
}

// MassFlow returns the mass flow of the named component in kg/hr.
func (s *Stream) MassFlow(component string) float64 {
	i := s.reg.IndexOf(component)
	return s.flows[i] * s.reg.components[i].MW
}

// TotalMassFlow returns the total mass flow in kg/hr.
func (s *Stream) TotalMassFlow() float64 {
	total := 0.0
	for i, f := range s.flows {
		total += f * s.reg.components[i].MW
	}

	return total
}

// MoleFraction returns the mole fraction of the named component. It returns
// 0 for an empty stream.
func (s *Stream) MoleFraction(component string) float64 {
	total := s.TotalFlow()
	if total == 0 {
		return 0
	}

	return s.Flow(component) / total
}

// Empty reports whether the stream carries no material.
func (s *Stream) Empty() bool {
	for _, f := range s.flows {
		if f != 0 {
			return false
		}
	}

	return true
}

// Clear zeroes all component flows, leaving T, P, and phase untouched.
func (s *Stream) Clear() {
	for i := range s.flows {
		s.flows[i] = 0
	}
}

// CopyConditionFrom copies temperature, pressure, and phase from another
// stream, leaving flows untouched.
func (s *Stream) CopyConditionFrom(other *Stream) {
	s.T = other.T
	s.P = other.P
	s.Phase = other.Phase
}
