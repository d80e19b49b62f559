package main

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/monitoring"
	"github.com/prosimlab/unitops/recording"
)

var runFlags = struct {
	configPath  string
	agentsPath  string
	costYear    int
	record      bool
	output      string
	monitor     bool
	monitorPort int
	openBrowser bool
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a flowsheet and report design and cost results.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runFlowsheet()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.configPath, "config", "c", "",
		"ini file describing the flowsheet (default: built-in example)")
	runCmd.Flags().StringVar(&runFlags.agentsPath, "agents", "",
		"ini file overriding utility agent prices")
	runCmd.Flags().IntVar(&runFlags.costYear, "year", defaultCostYear(),
		"year whose cost index prices the equipment")
	runCmd.Flags().BoolVar(&runFlags.record, "record", false,
		"record results into a SQLite file")
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "",
		"output file name for recorded results")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"serve the flowsheet over HTTP after simulating")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"port number for the monitoring server")
	runCmd.Flags().BoolVar(&runFlags.openBrowser, "browser", false,
		"open the monitoring server in the default browser")
}

func defaultCostYear() int {
	if s := os.Getenv("UNITOPS_COST_YEAR"); s != "" {
		if year, err := strconv.Atoi(s); err == nil {
			return year
		}
	}

	return 2017
}

func runFlowsheet() error {
	fs, err := buildFlowsheet()
	if err != nil {
		return err
	}

	if runFlags.agentsPath != "" {
		if err := fs.Catalog().LoadPrices(runFlags.agentsPath); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"flowsheet": fs.Name(),
		"cost_year": fs.CostYear(),
	}).Info("simulating")

	if err := fs.Simulate(); err != nil {
		return err
	}

	printResults(os.Stdout, fs)

	if runFlags.record {
		rec := recording.NewFlowsheetRecorder(runFlags.output)
		defer rec.Close()

		passID := rec.RecordPass(fs)
		logrus.WithField("pass", passID).Info("results recorded")
	}

	if runFlags.monitor {
		serveMonitor(fs)
	}

	return nil
}

func buildFlowsheet() (*flowsheet.Flowsheet, error) {
	if runFlags.configPath == "" {
		logrus.Info("no config given, running the built-in " +
			"ethanol dehydration example")
		return exampleFlowsheet(runFlags.costYear), nil
	}

	return loadFlowsheet(runFlags.configPath, runFlags.costYear)
}

func serveMonitor(fs *flowsheet.Flowsheet) {
	monitor := monitoring.NewMonitor()
	if runFlags.monitorPort > 0 {
		monitor.WithPortNumber(runFlags.monitorPort)
	}
	if runFlags.openBrowser {
		monitor.WithBrowser()
	}

	monitor.RegisterFlowsheet(fs)
	monitor.StartServer()

	// The monitor serves from a goroutine; block until interrupted.
	select {}
}
