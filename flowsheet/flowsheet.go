package flowsheet

import (
	"fmt"

	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/costing"
	"github.com/prosimlab/unitops/thermo"
	"github.com/prosimlab/unitops/utility"
)

// A CostReport holds the priced results of one unit for one simulation
// pass. Units without a registered correlation get a report with zero
// equipment cost but still have their utilities priced.
type CostReport struct {
	// Equipment names the priced piece of equipment, empty if the unit
	// kind has no correlation.
	Equipment string

	// PurchaseCost is the index-adjusted base equipment cost in USD.
	PurchaseCost float64

	// InstalledCost is the purchase cost times the bare-module factor.
	InstalledCost float64

	// ElectricityKW is the continuous electricity draw of the unit.
	ElectricityKW float64

	// UtilityCost is the total utility operating cost in USD/hr.
	UtilityCost float64
}

// A Flowsheet owns the units and streams of one simulation and sequences
// each pass: for every unit in registration order, Run, then Design, then
// costing. Simulation is synchronous and single-threaded; a pass runs to
// completion before control returns.
type Flowsheet struct {
	id   string
	name string

	units     []Unit
	unitIndex map[string]int

	streams     []*thermo.Stream
	streamIndex map[string]int

	indexProvider costing.IndexProvider
	catalog       *utility.Catalog
	costYear      int

	costReports map[string]*CostReport
}

// ID returns the unique id of the flowsheet.
func (f *Flowsheet) ID() string {
	return f.id
}

// Name returns the name of the flowsheet.
func (f *Flowsheet) Name() string {
	return f.name
}

// CostYear returns the year whose cost index prices the equipment.
func (f *Flowsheet) CostYear() int {
	return f.costYear
}

// Catalog returns the utility agent catalog in use.
func (f *Flowsheet) Catalog() *utility.Catalog {
	return f.catalog
}

// RegisterUnit registers a unit and its stream bindings with the
// flowsheet. Units simulate in registration order, so upstream units must
// be registered first. Registering two units or two distinct streams with
// the same name panics.
func (f *Flowsheet) RegisterUnit(u Unit) {
	name := u.Name()
	if _, dup := f.unitIndex[name]; dup {
		unitops.PanicConfigErrorf("unit %s is already registered", name)
	}

	f.units = append(f.units, u)
	f.unitIndex[name] = len(f.units) - 1

	for _, s := range u.Ins() {
		f.registerStream(s)
	}

	for _, s := range u.Outs() {
		f.registerStream(s)
	}
}

// registerStream registers a stream with the flowsheet. A stream shared by
// two units is registered once; it keeps a single logical identity.
func (f *Flowsheet) registerStream(s *thermo.Stream) {
	if i, seen := f.streamIndex[s.Name()]; seen {
		if f.streams[i] != s {
			unitops.PanicConfigErrorf(
				"two distinct streams are named %s", s.Name())
		}

		return
	}

	f.streams = append(f.streams, s)
	f.streamIndex[s.Name()] = len(f.streams) - 1
}

// Units returns the registered units in registration order.
func (f *Flowsheet) Units() []Unit {
	return f.units
}

// Streams returns the registered streams in registration order.
func (f *Flowsheet) Streams() []*thermo.Stream {
	return f.streams
}

// UnitByName returns the registered unit with the given name, or nil.
func (f *Flowsheet) UnitByName(name string) Unit {
	i, found := f.unitIndex[name]
	if !found {
		return nil
	}

	return f.units[i]
}

// StreamByName returns the registered stream with the given name, or nil.
func (f *Flowsheet) StreamByName(name string) *thermo.Stream {
	i, found := f.streamIndex[name]
	if !found {
		return nil
	}

	return f.streams[i]
}

// Simulate executes one full pass over all units. Each pass fully
// overwrites the design results, utility entries, and cost reports of the
// previous pass.
func (f *Flowsheet) Simulate() error {
	for _, u := range f.units {
		if err := f.simulateUnit(u); err != nil {
			return fmt.Errorf("unit %s: %w", u.Name(), err)
		}
	}

	return nil
}

func (f *Flowsheet) simulateUnit(u Unit) error {
	u.beginPass()

	if err := u.Run(); err != nil {
		return err
	}
	u.setStatus(StatusRun)

	if err := u.Design(); err != nil {
		return err
	}
	u.setStatus(StatusDesigned)

	if err := f.costUnit(u); err != nil {
		return err
	}
	u.setStatus(StatusCosted)

	return nil
}

// costUnit prices the unit's design metric through its registered
// correlation, books the correlation's electricity draw as an always-on
// power entry, and prices the utility ledger against the agent catalog.
func (f *Flowsheet) costUnit(u Unit) error {
	report := &CostReport{}

	if corr, found := costing.Lookup(u.Kind()); found {
		metric, ok := u.DesignResults()[corr.Basis]
		if !ok {
			return unitops.ValidationErrorf(
				"unit %s did not produce the %s design result its "+
					"correlation is sized by", u.Name(), corr.Basis)
		}

		index, err := f.indexProvider.Index(f.costYear)
		if err != nil {
			return err
		}

		pricing, err := corr.Price(metric, index)
		if err != nil {
			return err
		}

		u.Utilities().AddPower(pricing.ElectricityKW)

		report.Equipment = pricing.Equipment
		report.PurchaseCost = pricing.PurchaseCost
		report.InstalledCost = pricing.InstalledCost
		report.ElectricityKW = pricing.ElectricityKW
	}

	utilityCost, err := u.Utilities().Price(f.catalog)
	if err != nil {
		return err
	}
	report.UtilityCost = utilityCost

	f.costReports[u.Name()] = report

	return nil
}

// CostReportOf returns the cost report of a unit from the latest pass, or
// nil if the unit has not been costed.
func (f *Flowsheet) CostReportOf(unitName string) *CostReport {
	return f.costReports[unitName]
}

// TotalPurchaseCost sums the purchase costs of all costed units in USD.
func (f *Flowsheet) TotalPurchaseCost() float64 {
	total := 0.0
	for _, r := range f.costReports {
		total += r.PurchaseCost
	}

	return total
}

// TotalInstalledCost sums the installed costs of all costed units in USD.
func (f *Flowsheet) TotalInstalledCost() float64 {
	total := 0.0
	for _, r := range f.costReports {
		total += r.InstalledCost
	}

	return total
}

// TotalUtilityCost sums the utility operating costs of all costed units in
// USD/hr.
func (f *Flowsheet) TotalUtilityCost() float64 {
	total := 0.0
	for _, r := range f.costReports {
		total += r.UtilityCost
	}

	return total
}
