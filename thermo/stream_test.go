package thermo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/thermo"
)

func ethanolWaterRegistry() *thermo.Registry {
	return thermo.NewRegistry(
		thermo.Component{Name: "Water", MW: 18.01528},
		thermo.Component{Name: "Ethanol", MW: 46.06844},
	)
}

func TestRegistryRejectsDuplicateComponents(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "duplicate component should panic")

		_, ok := r.(*unitops.ConfigError)
		assert.True(t, ok, "panic value should be a ConfigError")
	}()

	thermo.NewRegistry(
		thermo.Component{Name: "Water", MW: 18.01528},
		thermo.Component{Name: "Water", MW: 18.01528},
	)
}

func TestRegistryRejectsNonPositiveMolarMass(t *testing.T) {
	assert.Panics(t, func() {
		thermo.NewRegistry(thermo.Component{Name: "Water", MW: 0})
	})
}

func TestRegistryIndexOfUnknownComponent(t *testing.T) {
	reg := ethanolWaterRegistry()

	assert.Panics(t, func() {
		reg.IndexOf("Methanol")
	})
}

func TestStreamMolarAndMassFlows(t *testing.T) {
	reg := ethanolWaterRegistry()

	s := thermo.NewStream("Feed", reg)
	s.SetFlow("Water", 75.7)
	s.SetFlow("Ethanol", 286)

	assert.InDelta(t, 361.7, s.TotalFlow(), 1e-9)
	assert.InDelta(t, 75.7*18.01528, s.MassFlow("Water"), 1e-9)
	assert.InDelta(t,
		75.7*18.01528+286*46.06844, s.TotalMassFlow(), 1e-9)
	assert.InDelta(t, 286.0/361.7, s.MoleFraction("Ethanol"), 1e-12)
}

func TestStreamClearKeepsCondition(t *testing.T) {
	reg := ethanolWaterRegistry()

	s := thermo.NewStream("Feed", reg)
	s.SetFlow("Water", 10)
	s.T = 351.39
	s.P = 101325
	s.Phase = thermo.PhaseGas

	s.Clear()

	assert.True(t, s.Empty())
	assert.Equal(t, 351.39, s.T)
	assert.Equal(t, 101325.0, s.P)
	assert.Equal(t, thermo.PhaseGas, s.Phase)
}

func TestStreamCopyConditionFrom(t *testing.T) {
	reg := ethanolWaterRegistry()

	in := thermo.NewStream("In", reg)
	in.T = 400
	in.P = 2e5
	in.Phase = thermo.PhaseLiquid

	out := thermo.NewStream("Out", reg)
	out.SetFlow("Water", 5)
	out.CopyConditionFrom(in)

	assert.Equal(t, 400.0, out.T)
	assert.Equal(t, 2e5, out.P)
	assert.Equal(t, thermo.PhaseLiquid, out.Phase)
	assert.Equal(t, 5.0, out.Flow("Water"))
}

func TestMoleFractionOfEmptyStream(t *testing.T) {
	reg := ethanolWaterRegistry()
	s := thermo.NewStream("Empty", reg)

	assert.Equal(t, 0.0, s.MoleFraction("Water"))
}
