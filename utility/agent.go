// Package utility tracks heating, cooling, and electricity duties of units
// and converts them to operating cost through an agent catalog.
package utility

import (
	"sort"

	"gopkg.in/ini.v1"

	"github.com/prosimlab/unitops"
)

// ApproachT is the minimum temperature difference, in K, required between a
// utility agent and the stream it serves.
const ApproachT = 10.0

// An Agent is one external heating or cooling medium, such as a steam grade
// or a cooling-water source.
type Agent struct {
	// Name identifies the agent, e.g. "Low pressure steam".
	Name string

	// T is the temperature the agent is supplied at, in K.
	T float64

	// Price is the cost per unit duty, in USD/kJ.
	Price float64
}

// A Catalog resolves utility agents by duty sign and temperature level, and
// carries the electricity price.
type Catalog struct {
	heating []Agent
	cooling []Agent

	// ElectricityPrice is the cost of electric power in USD/kWh.
	ElectricityPrice float64
}

// NewCatalog creates a catalog from heating and cooling agents. Heating
// agents are tried coldest first and cooling agents warmest first, so the
// mildest (cheapest) adequate agent wins.
func NewCatalog(
	heating, cooling []Agent,
	electricityPrice float64,
) *Catalog {
	for _, a := range append(append([]Agent{}, heating...), cooling...) {
		if a.Name == "" {
			unitops.PanicConfigErrorf("utility agent name must not be empty")
		}

		if a.T <= 0 {
			unitops.PanicConfigErrorf(
				"utility agent %s must have a positive temperature, got %g",
				a.Name, a.T)
		}

		if a.Price < 0 {
			unitops.PanicConfigErrorf(
				"utility agent %s must not have a negative price, got %g",
				a.Name, a.Price)
		}
	}

	if electricityPrice < 0 {
		unitops.PanicConfigErrorf(
			"electricity price must not be negative, got %g",
			electricityPrice)
	}

	c := &Catalog{
		heating:          append([]Agent{}, heating...),
		cooling:          append([]Agent{}, cooling...),
		ElectricityPrice: electricityPrice,
	}

	sort.Slice(c.heating, func(i, j int) bool {
		return c.heating[i].T < c.heating[j].T
	})
	sort.Slice(c.cooling, func(i, j int) bool {
		return c.cooling[i].T > c.cooling[j].T
	})

	return c
}

// DefaultCatalog returns a catalog with three saturated steam grades, plant
// cooling water, chilled water, and a grid electricity price.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]Agent{
			{Name: "Low pressure steam", T: 412.19, Price: 6.462e-6},
			{Name: "Medium pressure steam", T: 454.77, Price: 7.23e-6},
			{Name: "High pressure steam", T: 508.99, Price: 8.07e-6},
		},
		[]Agent{
			{Name: "Cooling water", T: 305.37, Price: 3.335e-7},
			{Name: "Chilled water", T: 280.37, Price: 5.0e-6},
		},
		0.0782,
	)
}

// ResolveHeating returns the coldest heating agent that is still hotter
// than the stream temperature by at least the approach.
func (c *Catalog) ResolveHeating(streamT float64) (Agent, error) {
	for _, a := range c.heating {
		if a.T >= streamT+ApproachT {
			return a, nil
		}
	}

	return Agent{}, unitops.ValidationErrorf(
		"no heating agent is hot enough for a stream at %g K", streamT)
}

// ResolveCooling returns the warmest cooling agent that is still colder
// than the stream temperature by at least the approach.
func (c *Catalog) ResolveCooling(streamT float64) (Agent, error) {
	for _, a := range c.cooling {
		if a.T <= streamT-ApproachT {
			return a, nil
		}
	}

	return Agent{}, unitops.ValidationErrorf(
		"no cooling agent is cold enough for a stream at %g K", streamT)
}

// LoadPrices overrides agent and electricity prices from an ini file. Each
// agent is a section named after the agent with a `price` key; the
// `electricity` section carries a `price` key in USD/kWh. Unknown sections
// are rejected so that typos do not silently keep default prices.
func (c *Catalog) LoadPrices(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return err
	}

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}

		price, err := section.Key("price").Float64()
		if err != nil {
			return unitops.ConfigErrorf(
				"price of %s is not a number: %v", name, err)
		}

		if name == "electricity" {
			c.ElectricityPrice = price
			continue
		}

		if !c.setAgentPrice(name, price) {
			return unitops.ConfigErrorf(
				"utility agent %s is not in the catalog", name)
		}
	}

	return nil
}

func (c *Catalog) setAgentPrice(name string, price float64) bool {
	for i := range c.heating {
		if c.heating[i].Name == name {
			c.heating[i].Price = price
			return true
		}
	}

	for i := range c.cooling {
		if c.cooling[i].Name == name {
			c.cooling[i].Price = price
			return true
		}
	}

	return false
}
