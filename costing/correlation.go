// Package costing provides the power-law equipment cost correlation engine
// and the unit-kind correlation registry.
package costing

import (
	"math"

	"github.com/prosimlab/unitops"
)

// A Correlation is the immutable parameter set of a power-law (six-tenths
// rule) cost model for one kind of unit. Correlations are defined once per
// unit kind, not per instance.
type Correlation struct {
	// Basis names the design metric the correlation is sized by. The
	// metric is read from a unit's design results under this key.
	Basis string

	// Equipment names the piece of equipment being priced, e.g. "Column".
	Equipment string

	// Cost is the reference purchase cost at the reference size.
	Cost float64

	// Size is the reference value of the design metric.
	Size float64

	// Index is the cost index of the year the reference cost was quoted.
	Index float64

	// Exponent is the power-law scaling exponent, typically near 0.6.
	Exponent float64

	// BareModule converts base equipment cost to installed cost.
	BareModule float64

	// KW is the electricity draw at the reference size.
	KW float64
}

// MustBeValid panics with a ConfigError if the correlation parameters are
// out of range. It is called when the correlation is registered, not when
// it is priced.
func (c Correlation) MustBeValid() {
	if c.Basis == "" {
		unitops.PanicConfigErrorf("cost correlation must name a basis")
	}

	if c.Exponent <= 0 || c.Exponent > 2 {
		unitops.PanicConfigErrorf(
			"cost correlation exponent must be in (0, 2], got %g",
			c.Exponent)
	}

	if c.Size <= 0 {
		unitops.PanicConfigErrorf(
			"cost correlation reference size must be positive, got %g",
			c.Size)
	}

	if c.Cost < 0 {
		unitops.PanicConfigErrorf(
			"cost correlation reference cost must not be negative, got %g",
			c.Cost)
	}

	if c.Index <= 0 {
		unitops.PanicConfigErrorf(
			"cost correlation reference index must be positive, got %g",
			c.Index)
	}

	if c.BareModule <= 0 {
		unitops.PanicConfigErrorf(
			"cost correlation bare-module factor must be positive, got %g",
			c.BareModule)
	}

	if c.KW < 0 {
		unitops.PanicConfigErrorf(
			"cost correlation electricity draw must not be negative, got %g",
			c.KW)
	}
}

// A Pricing is the result of applying a correlation to a design metric.
type Pricing struct {
	// Equipment names the priced piece of equipment.
	Equipment string

	// PurchaseCost is the index-adjusted base equipment cost.
	PurchaseCost float64

	// InstalledCost is the purchase cost multiplied by the bare-module
	// factor.
	InstalledCost float64

	// ElectricityKW is the continuous electricity draw at the given size.
	ElectricityKW float64
}

// Price applies the correlation to a design metric value, normalizing the
// reference cost to the current cost index. A zero metric prices to zero.
// A negative metric is physically unsizeable and returns a ValidationError.
//
// The capacity ratio is computed once and reused for both the cost and the
// electricity draw so that repeated pricing reproduces bit-identical
// results.
func (c Correlation) Price(metric, currentIndex float64) (Pricing, error) {
	if metric < 0 {
		return Pricing{}, unitops.ValidationErrorf(
			"design metric %s is negative (%g), cannot size equipment",
			c.Basis, metric)
	}

	ratio := metric / c.Size
	inflation := currentIndex / c.Index

	purchase := c.Cost * math.Pow(ratio, c.Exponent) * inflation

	return Pricing{
		Equipment:     c.Equipment,
		PurchaseCost:  purchase,
		InstalledCost: purchase * c.BareModule,
		ElectricityKW: c.KW * ratio,
	}, nil
}
