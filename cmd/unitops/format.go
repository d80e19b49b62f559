package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
)

// printResults writes a per-unit results table followed by flowsheet
// totals, in the style of a techno-economic summary sheet.
func printResults(w io.Writer, fs *flowsheet.Flowsheet) {
	for _, u := range fs.Units() {
		printUnit(w, fs, u)
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total purchase cost\tUSD\t%.4g\n",
		fs.TotalPurchaseCost())
	fmt.Fprintf(tw, "Total installed cost\tUSD\t%.4g\n",
		fs.TotalInstalledCost())
	fmt.Fprintf(tw, "Total utility cost\tUSD/hr\t%.4g\n",
		fs.TotalUtilityCost())
	tw.Flush()
}

func printUnit(w io.Writer, fs *flowsheet.Flowsheet, u flowsheet.Unit) {
	fmt.Fprintf(w, "%s: %s\n", u.Kind(), u.Name())

	for _, s := range u.Ins() {
		printStream(w, "in ", s)
	}
	for _, s := range u.Outs() {
		printStream(w, "out", s)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for metric, value := range u.DesignResults() {
		fmt.Fprintf(tw, "Design\t%s\t%.4g\n", metric, value)
	}

	for _, e := range u.Utilities().HeatEntries() {
		fmt.Fprintf(tw, "%s\tkJ/hr\t%.4g\tUSD/hr\t%.4g\n",
			e.Agent, e.Duty, e.Cost)
	}

	for _, e := range u.Utilities().PowerEntries() {
		fmt.Fprintf(tw, "Electricity\tkW\t%.4g\tUSD/hr\t%.4g\n",
			e.KW, e.Cost)
	}

	if report := fs.CostReportOf(u.Name()); report != nil &&
		report.Equipment != "" {
		fmt.Fprintf(tw, "Purchase cost\t%s\tUSD\t%.4g\n",
			report.Equipment, report.PurchaseCost)
		fmt.Fprintf(tw, "Installed cost\t%s\tUSD\t%.4g\n",
			report.Equipment, report.InstalledCost)
	}

	tw.Flush()
}

func printStream(w io.Writer, tag string, s *thermo.Stream) {
	fmt.Fprintf(w, "  [%s] %s: %.4g kmol/hr, %.4g K, %.4g Pa, %s\n",
		tag, s.Name(), s.TotalFlow(), s.T, s.P, s.Phase)
}
