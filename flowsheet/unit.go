// Package flowsheet provides the unit-operation interface and the flowsheet
// that sequences unit simulation, costing, and utility accounting.
package flowsheet

import (
	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/thermo"
	"github.com/prosimlab/unitops/utility"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// Status tracks how far a unit has progressed through the current
// simulation pass.
type Status int

// The statuses a unit moves through during one pass. A unit is re-entrant:
// a new pass restarts it at StatusConfigured and overwrites all prior
// results.
const (
	StatusConfigured Status = iota
	StatusRun
	StatusDesigned
	StatusCosted
)

func (s Status) String() string {
	switch s {
	case StatusConfigured:
		return "configured"
	case StatusRun:
		return "run"
	case StatusDesigned:
		return "designed"
	case StatusCosted:
		return "costed"
	}

	return "unknown"
}

// A Unit is one unit operation of a flowsheet. The flowsheet calls Run
// (mass balance) and then Design (sizing metrics) exactly once per pass,
// after all inlet streams have been finalized by upstream units. Costing is
// performed by the flowsheet from the unit's design results and its
// registered cost correlation.
//
// Units are implemented by embedding UnitBase.
type Unit interface {
	Named

	// Kind identifies the unit type in the cost-correlation registry.
	Kind() string

	// Ins returns the inlet streams of the unit.
	Ins() []*thermo.Stream

	// Outs returns the outlet streams of the unit.
	Outs() []*thermo.Stream

	// Run performs the steady-state mass balance, writing outlet streams
	// in place.
	Run() error

	// Design computes the unit's design metrics and books its utility
	// duties.
	Design() error

	// DesignResults returns the design metrics of the current pass.
	DesignResults() map[string]float64

	// Utilities returns the utility ledger of the current pass.
	Utilities() *utility.Ledger

	// Status returns the unit's progress through the current pass.
	Status() Status

	beginPass()
	setStatus(Status)
}

// UnitBase provides the bookkeeping that all units share: identity, stream
// bindings, design results, and the utility ledger.
type UnitBase struct {
	name string
	kind string
	ins  []*thermo.Stream
	outs []*thermo.Stream

	designResults map[string]float64
	utilities     *utility.Ledger
	status        Status
}

// NewUnitBase creates a UnitBase. The name must not be empty and every
// stream binding must be non-nil.
func NewUnitBase(
	name, kind string,
	ins, outs []*thermo.Stream,
) UnitBase {
	if name == "" {
		unitops.PanicConfigErrorf("unit name must not be empty")
	}

	for i, s := range ins {
		if s == nil {
			unitops.PanicConfigErrorf(
				"inlet %d of unit %s is not bound to a stream", i, name)
		}
	}

	for i, s := range outs {
		if s == nil {
			unitops.PanicConfigErrorf(
				"outlet %d of unit %s is not bound to a stream", i, name)
		}
	}

	return UnitBase{
		name:          name,
		kind:          kind,
		ins:           ins,
		outs:          outs,
		designResults: make(map[string]float64),
		utilities:     utility.NewLedger(),
	}
}

// Name returns the name of the unit.
func (u *UnitBase) Name() string {
	return u.name
}

// Kind returns the unit-kind identifier used for correlation lookup.
func (u *UnitBase) Kind() string {
	return u.kind
}

// Ins returns the inlet streams of the unit.
func (u *UnitBase) Ins() []*thermo.Stream {
	return u.ins
}

// Outs returns the outlet streams of the unit.
func (u *UnitBase) Outs() []*thermo.Stream {
	return u.outs
}

// DesignResults returns the design metrics of the current pass.
func (u *UnitBase) DesignResults() map[string]float64 {
	return u.designResults
}

// Utilities returns the utility ledger of the current pass.
func (u *UnitBase) Utilities() *utility.Ledger {
	return u.utilities
}

// Status returns the unit's progress through the current pass.
func (u *UnitBase) Status() Status {
	return u.status
}

// ResetPass discards the results of any prior pass so that re-simulation
// overwrites instead of accumulating. Units call it at the top of Run; the
// flowsheet also calls it before each pass.
func (u *UnitBase) ResetPass() {
	u.designResults = make(map[string]float64)
	u.utilities.Reset()
	u.status = StatusConfigured
}

func (u *UnitBase) beginPass() {
	u.ResetPass()
}

func (u *UnitBase) setStatus(s Status) {
	u.status = s
}
