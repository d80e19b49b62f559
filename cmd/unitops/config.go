package main

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
	"github.com/prosimlab/unitops/units"
)

// loadFlowsheet builds a flowsheet from an ini description. The file holds
// a [components] section mapping component names to molar masses, a [feed]
// section with the inlet state and flow.<component> keys, a [sieve] section
// with split.<component> keys, and an optional [economics] section.
func loadFlowsheet(path string, costYear int) (*flowsheet.Flowsheet, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	reg, err := loadComponents(file)
	if err != nil {
		return nil, err
	}

	feed, err := loadFeed(file, reg)
	if err != nil {
		return nil, err
	}

	if year := file.Section("economics").Key("year").MustInt(0); year > 0 {
		costYear = year
	}

	fs := flowsheet.MakeBuilder().
		WithCostYear(costYear).
		Build(file.Section("").Key("name").MustString("Flowsheet"))

	sieve, err := loadSieve(file, reg, feed)
	if err != nil {
		return nil, err
	}
	fs.RegisterUnit(sieve)

	return fs, nil
}

func loadComponents(file *ini.File) (*thermo.Registry, error) {
	section := file.Section("components")
	if len(section.Keys()) == 0 {
		return nil, fmt.Errorf("the [components] section is empty")
	}

	components := make([]thermo.Component, 0, len(section.Keys()))
	for _, key := range section.Keys() {
		mw, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf(
				"molar mass of %s is not a number: %w", key.Name(), err)
		}

		components = append(components, thermo.Component{
			Name: key.Name(),
			MW:   mw,
		})
	}

	return thermo.NewRegistry(components...), nil
}

func loadFeed(
	file *ini.File,
	reg *thermo.Registry,
) (*thermo.Stream, error) {
	section := file.Section("feed")

	feed := thermo.NewStream(
		section.Key("name").MustString("Feed"), reg)
	feed.T = section.Key("T").MustFloat64(298.15)
	feed.P = section.Key("P").MustFloat64(101325)
	feed.Phase = parsePhase(section.Key("phase").MustString("liquid"))

	for _, key := range section.Keys() {
		name, ok := strings.CutPrefix(key.Name(), "flow.")
		if !ok {
			continue
		}

		flow, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf(
				"feed flow of %s is not a number: %w", name, err)
		}

		feed.SetFlow(name, flow)
	}

	return feed, nil
}

func loadSieve(
	file *ini.File,
	reg *thermo.Registry,
	feed *thermo.Stream,
) (*units.MolecularSieve, error) {
	section := file.Section("sieve")

	fractions := make(map[string]float64)
	for _, key := range section.Keys() {
		name, ok := strings.CutPrefix(key.Name(), "split.")
		if !ok {
			continue
		}

		f, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf(
				"split fraction of %s is not a number: %w", name, err)
		}

		fractions[name] = f
	}

	builder := units.MakeMolecularSieveBuilder().
		WithSplit(units.SplitByComponent(fractions))

	if p := section.Key("pressure").MustFloat64(0); p > 0 {
		builder = builder.WithOutletPressure(p)
	}

	if !section.Key("approx_duty").MustBool(true) {
		builder = builder.WithoutApproxDuty()
	}

	return builder.Build(
		section.Key("name").MustString("MS1"),
		feed,
		thermo.NewStream(
			section.Key("product").MustString("Product"), reg),
		thermo.NewStream(
			section.Key("reject").MustString("Reject"), reg),
	), nil
}

func parsePhase(s string) thermo.Phase {
	switch strings.ToLower(s) {
	case "g", "gas", "vapor":
		return thermo.PhaseGas
	case "l", "liquid":
		return thermo.PhaseLiquid
	case "s", "solid":
		return thermo.PhaseSolid
	default:
		return thermo.PhaseMixed
	}
}

// exampleFlowsheet builds the NREL ethanol dehydration case used
// throughout the documentation.
func exampleFlowsheet(costYear int) *flowsheet.Flowsheet {
	reg := thermo.NewRegistry(
		thermo.Component{Name: "Water", MW: 18.01528},
		thermo.Component{Name: "Ethanol", MW: 46.06844},
	)

	feed := thermo.NewStream("Feed", reg)
	feed.SetFlow("Water", 75.7)
	feed.SetFlow("Ethanol", 286)
	feed.T = 351.39
	feed.P = 101325
	feed.Phase = thermo.PhaseGas

	sieve := units.MakeMolecularSieveBuilder().
		WithSplit(units.SplitByComponent(map[string]float64{
			"Water":   0.160,
			"Ethanol": 0.925,
		})).
		Build("MS1", feed,
			thermo.NewStream("EthanolRich", reg),
			thermo.NewStream("WaterRich", reg))

	fs := flowsheet.MakeBuilder().
		WithCostYear(costYear).
		Build("EthanolDehydration")
	fs.RegisterUnit(sieve)

	return fs
}
