package costing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/costing"
)

func sieveCorrelation() costing.Correlation {
	return costing.Correlation{
		Basis:      "Flow rate",
		Equipment:  "Column",
		Cost:       2601000,
		Size:       22687,
		Index:      521.9,
		Exponent:   0.6,
		BareModule: 1.8,
		KW:         151,
	}
}

func TestCorrelationExponentBounds(t *testing.T) {
	tests := []struct {
		exponent float64
		valid    bool
	}{
		{exponent: 0.6, valid: true},
		{exponent: 1.0, valid: true},
		{exponent: 2.0, valid: true},
		{exponent: 0.0, valid: false},
		{exponent: -0.6, valid: false},
		{exponent: 2.1, valid: false},
	}

	for _, tt := range tests {
		c := sieveCorrelation()
		c.Exponent = tt.exponent

		if tt.valid {
			assert.NotPanics(t, c.MustBeValid,
				"exponent %g should be accepted", tt.exponent)
		} else {
			assert.Panics(t, c.MustBeValid,
				"exponent %g should be rejected", tt.exponent)
		}
	}
}

func TestCorrelationRejectsMissingBasis(t *testing.T) {
	c := sieveCorrelation()
	c.Basis = ""

	assert.Panics(t, c.MustBeValid)
}

func TestPriceAtReferenceSize(t *testing.T) {
	c := sieveCorrelation()

	p, err := c.Price(c.Size, c.Index)
	require.NoError(t, err)

	assert.InDelta(t, c.Cost, p.PurchaseCost, 1e-6)
	assert.InDelta(t, c.Cost*c.BareModule, p.InstalledCost, 1e-6)
	assert.InDelta(t, c.KW, p.ElectricityKW, 1e-9)
}

func TestPriceScalingIdentityAtDoubleSize(t *testing.T) {
	c := sieveCorrelation()
	currentIndex := 567.5
	inflation := currentIndex / c.Index

	p, err := c.Price(2*c.Size, currentIndex)
	require.NoError(t, err)

	want := c.Cost * math.Pow(2, c.Exponent) * inflation * c.BareModule
	assert.InEpsilon(t, want, p.InstalledCost, 1e-12)
	assert.InEpsilon(t, 2*c.KW, p.ElectricityKW, 1e-12)
}

func TestPriceIsMonotonicInMetric(t *testing.T) {
	c := sieveCorrelation()

	prev := -1.0
	for metric := 0.0; metric <= 5*c.Size; metric += c.Size / 8 {
		p, err := c.Price(metric, c.Index)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.PurchaseCost, prev,
			"purchase cost must be non-decreasing in the design metric")
		prev = p.PurchaseCost
	}
}

func TestPriceZeroMetricCostsNothing(t *testing.T) {
	c := sieveCorrelation()

	p, err := c.Price(0, c.Index)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.PurchaseCost)
	assert.Equal(t, 0.0, p.InstalledCost)
	assert.Equal(t, 0.0, p.ElectricityKW)
}

func TestPriceNegativeMetricIsInvalid(t *testing.T) {
	c := sieveCorrelation()

	_, err := c.Price(-1, c.Index)
	require.Error(t, err)

	var vErr *unitops.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestRegisterRejectsDuplicateKind(t *testing.T) {
	costing.Register("TestDuplicateKind", sieveCorrelation())

	assert.Panics(t, func() {
		costing.Register("TestDuplicateKind", sieveCorrelation())
	})
}

func TestLookupUnknownKind(t *testing.T) {
	_, found := costing.Lookup("NoSuchKind")
	assert.False(t, found)
}
