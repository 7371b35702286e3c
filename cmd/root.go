// Package cmd provides command-line interface functionality for ParkTools.
// ParkTools is a collection of utilities for exporting and inspecting
// classic park simulation save files in the legacy S6 format.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the ParkTools application.
var rootCmd = &cobra.Command{
	Use:   "parktools",
	Short: "Tools for working with classic park simulation save files",
	Long: `ParkTools - A collection of utilities for exporting and inspecting
classic park simulation save files in the legacy S6 format.

Currently supports:
  - SV6 saved games (export a park state fixture as a saved game)
  - SC6 scenarios (export a park state fixture as a scenario)
  - Park state inspection (dump a decoded fixture for debugging)

Examples:
  parktools sv6 savegame park.yaml park.sv6
  parktools sv6 scenario park.yaml park.sc6
  parktools sv6 dump park.yaml

Use 'parktools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
