// The unitops command runs flowsheet simulations from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "unitops",
	Short: "Unitops simulates chemical-process flowsheets and estimates " +
		"equipment and utility costs.",
	Long: `Unitops simulates chemical-process flowsheets and estimates ` +
		`equipment and utility costs. A flowsheet is described by an ini ` +
		`file; without one, the built-in ethanol dehydration example runs.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
