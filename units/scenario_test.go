package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/units"
)

// Reproduces the NREL ethanol dehydration case: a 362 kmol/hr
// ethanol-water vapor feed at its bubble point, dried over a molecular
// sieve, costed at the 2017 CEPCI.
func TestEthanolDehydrationScenario(t *testing.T) {
	f := makeSieveFixture()

	sieve := units.MakeMolecularSieveBuilder().
		WithSplit(referenceSplit()).
		Build("MS1", f.in, f.out0, f.out1)

	fs := flowsheet.MakeBuilder().
		WithCostYear(2017).
		Build("EthanolDehydration")
	fs.RegisterUnit(sieve)

	require.NoError(t, fs.Simulate())
	assert.Equal(t, flowsheet.StatusCosted, sieve.Status())

	// Product: ~277 kmol/hr at 95.6% ethanol.
	assert.InDelta(t, 276.66, f.out0.TotalFlow(), 0.01)
	assert.InDelta(t, 0.956, f.out0.MoleFraction("Ethanol"), 0.001)

	// Reject: ~85 kmol/hr at 74.8% water, ~2130 kg/hr.
	assert.InDelta(t, 85.04, f.out1.TotalFlow(), 0.01)
	assert.InDelta(t, 0.748, f.out1.MoleFraction("Water"), 0.001)
	assert.InDelta(t, 2133.7, sieve.DesignResults()["Flow rate"], 0.5)

	report := fs.CostReportOf("MS1")
	require.NotNil(t, report)

	assert.Equal(t, "Column", report.Equipment)
	assert.InEpsilon(t, 685000, report.PurchaseCost, 0.01)
	assert.InEpsilon(t, 1.8*report.PurchaseCost, report.InstalledCost, 1e-12)
	assert.InDelta(t, 14.2, report.ElectricityKW, 0.05)

	// Regeneration steam, condenser cooling water, and electricity.
	entries := sieve.Utilities().HeatEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Low pressure steam", entries[0].Agent)
	assert.Equal(t, "Cooling water", entries[1].Agent)
	assert.InDelta(t, 19.7, entries[0].Cost, 0.1)
	assert.InDelta(t, 0.0395, entries[1].Cost, 0.001)

	require.Len(t, sieve.Utilities().PowerEntries(), 1)
	assert.InDelta(t, 20.9, report.UtilityCost, 0.1)

	assert.Equal(t, report.PurchaseCost, fs.TotalPurchaseCost())
	assert.Equal(t, report.UtilityCost, fs.TotalUtilityCost())
}

// Re-simulating with unchanged inputs must reproduce identical results.
func TestScenarioResimulationIsIdempotent(t *testing.T) {
	f := makeSieveFixture()

	sieve := units.MakeMolecularSieveBuilder().
		WithSplit(referenceSplit()).
		Build("MS1", f.in, f.out0, f.out1)

	fs := flowsheet.MakeBuilder().
		WithCostYear(2017).
		Build("EthanolDehydration")
	fs.RegisterUnit(sieve)

	require.NoError(t, fs.Simulate())
	firstReport := *fs.CostReportOf("MS1")
	firstReject := sieve.DesignResults()["Flow rate"]

	require.NoError(t, fs.Simulate())

	assert.Equal(t, firstReject, sieve.DesignResults()["Flow rate"])
	assert.Equal(t, firstReport, *fs.CostReportOf("MS1"))
	assert.Len(t, sieve.Utilities().HeatEntries(), 2)
	assert.Len(t, sieve.Utilities().PowerEntries(), 1)
}
