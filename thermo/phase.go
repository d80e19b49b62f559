package thermo

// A Phase tags the physical state of a stream.
type Phase byte

// Phases that a stream can carry.
const (
	PhaseGas Phase = iota
	PhaseLiquid
	PhaseSolid
	PhaseMixed
)

func (p Phase) String() string {
	switch p {
	case PhaseGas:
		return "gas"
	case PhaseLiquid:
		return "liquid"
	case PhaseSolid:
		return "solid"
	case PhaseMixed:
		return "mixed"
	}

	return "unknown"
}
