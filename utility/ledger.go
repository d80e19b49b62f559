package utility

import "math"

// A HeatEntry is one heating or cooling duty booked by a unit. Entries are
// not netted against each other: a heating entry and a cooling entry at the
// same stream are physically distinct utility streams with different agents
// and prices, even if their net duty is zero.
type HeatEntry struct {
	// Duty is the heat rate in kJ/hr. Positive duty heats, negative cools.
	Duty float64

	// T is the stream temperature the duty is exchanged at, in K.
	T float64

	// Agent names the resolved utility agent. Filled in by Price.
	Agent string

	// Cost is the operating cost in USD/hr. Filled in by Price.
	Cost float64
}

// A PowerEntry is a continuous electricity draw. Power entries have no
// temperature level; they are always on.
type PowerEntry struct {
	// KW is the electric power drawn.
	KW float64

	// Cost is the operating cost in USD/hr. Filled in by Price.
	Cost float64
}

// A Ledger is the ordered record of the utility duties of one unit for one
// simulation pass. Re-simulation resets the ledger instead of appending, so
// repeated passes do not accumulate entries.
type Ledger struct {
	heat  []HeatEntry
	power []PowerEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddHeat books a heat duty in kJ/hr at a stream temperature in K.
func (l *Ledger) AddHeat(duty, t float64) {
	l.heat = append(l.heat, HeatEntry{Duty: duty, T: t})
}

// AddPower books a continuous electricity draw in kW.
func (l *Ledger) AddPower(kw float64) {
	l.power = append(l.power, PowerEntry{KW: kw})
}

// Reset discards all entries. Units call it at the start of each pass.
func (l *Ledger) Reset() {
	l.heat = nil
	l.power = nil
}

// HeatEntries returns the booked heat duties in booking order.
func (l *Ledger) HeatEntries() []HeatEntry {
	return l.heat
}

// PowerEntries returns the booked electricity draws in booking order.
func (l *Ledger) PowerEntries() []PowerEntry {
	return l.power
}

// Price resolves an agent for every entry against the catalog and returns
// the total operating cost in USD/hr. Cooling duties are priced on their
// magnitude. Zero duties resolve no agent and cost nothing.
func (l *Ledger) Price(catalog *Catalog) (float64, error) {
	total := 0.0

	for i := range l.heat {
		e := &l.heat[i]
		if e.Duty == 0 {
			e.Agent = ""
			e.Cost = 0
			continue
		}

		var agent Agent
		var err error
		if e.Duty > 0 {
			agent, err = catalog.ResolveHeating(e.T)
		} else {
			agent, err = catalog.ResolveCooling(e.T)
		}

		if err != nil {
			return 0, err
		}

		e.Agent = agent.Name
		e.Cost = math.Abs(e.Duty) * agent.Price
		total += e.Cost
	}

	for i := range l.power {
		e := &l.power[i]
		e.Cost = e.KW * catalog.ElectricityPrice
		total += e.Cost
	}

	return total, nil
}
