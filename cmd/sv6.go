/*
Copyright © 2025 Hans Bonini

*/
package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/hansbonini/parktools/pkg"
	"github.com/hansbonini/parktools/pkg/common"
	"github.com/hansbonini/parktools/pkg/park"
	"github.com/spf13/cobra"
)

var (
	sv6Verbose            bool
	sv6KeepTracklessRides bool
	sv6PackObjects        []string
	sv6ObjectDir          string
)

// sv6Cmd represents the sv6 command
var sv6Cmd = &cobra.Command{
	Use:   "sv6",
	Short: "Export park state fixtures to S6 save files",
	Long: `Export park state fixtures to save files in the legacy S6 format.

A park state fixture is a YAML document describing the live state of a
park: map, sprites, rides, finances, research and so on. The exporter
transcodes it into the chunked, checksummed binary layout the classic
game reads.

Example:
  parktools sv6 savegame park.yaml park.sv6`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.SetVerboseMode(sv6Verbose)
	},
}

// sv6SavegameCmd exports a fixture as a saved game
var sv6SavegameCmd = &cobra.Command{
	Use:   "savegame [park_state_file] [output_file]",
	Short: "Export a park state fixture as an SV6 saved game",
	Long: `Export a park state fixture as an SV6 saved game.

This command will:
- Load and validate the YAML park state fixture
- Repair sprite pool linkage before exporting
- Transcode the state into the packed S6 image
- Write a chunked, checksummed SV6 file

Example:
  parktools sv6 savegame park.yaml park.sv6`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportS6(args[0], args[1], false)
	},
}

// sv6ScenarioCmd exports a fixture as a scenario
var sv6ScenarioCmd = &cobra.Command{
	Use:   "scenario [park_state_file] [output_file]",
	Short: "Export a park state fixture as an SC6 scenario",
	Long: `Export a park state fixture as an SC6 scenario.

Scenario files carry the scenario information chunk and omit the
progress-only segments of the game state, so the park can be restarted
from its initial conditions.

Example:
  parktools sv6 scenario park.yaml park.sc6`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportS6(args[0], args[1], true)
	},
}

// sv6DumpCmd prints the exported image for debugging
var sv6DumpCmd = &cobra.Command{
	Use:   "dump [park_state_file]",
	Short: "Dump the exported S6 image of a park state fixture",
	Long: `Dump the exported S6 image of a park state fixture.

The fixture is exported in memory and the packed header, scenario
information and object table are printed, which is useful to verify a
fixture without writing a file.

Example:
  parktools sv6 dump park.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := park.Load(args[0])
		if err != nil {
			return err
		}

		exporter := pkg.NewS6Exporter()
		if err := exporter.Export(state); err != nil {
			return err
		}

		dumper := spew.ConfigState{Indent: "  ", MaxDepth: 3}
		dumper.Dump(exporter.Data.Header)
		dumper.Dump(exporter.Data.Info)
		dumper.Dump(exporter.Data.DateRand)
		fmt.Printf("Tile elements in use: %d\n", exporter.Data.Core.NextFreeTileElementPointerIndex)
		fmt.Printf("Rides: %d\n", exporter.Data.Rest.RideCount)
		fmt.Printf("Park rating: %d\n", exporter.Data.ParkRating)

		return nil
	},
}

// exportS6 loads a fixture, repairs sprite linkage and writes a save
func exportS6(inputFile, outputFile string, isScenario bool) error {
	if isScenario {
		common.LogInfo(common.InfoSavingScenario)
	} else {
		common.LogInfo(common.InfoSavingGame)
	}

	state, err := park.Load(inputFile)
	if err != nil {
		return err
	}
	common.LogInfo(common.InfoParkFileLoaded)

	// Broken sprite linkage corrupts saves, so refuse to export it
	if index := state.CheckSpriteListCycles(); index >= 0 {
		return common.FormatErrorString(common.ErrSpriteListCycle, "sprite %d", index)
	}
	if index := state.CheckSpatialIndexCycles(); index >= 0 {
		return common.FormatErrorString(common.ErrSpatialIndexCycle, "sprite %d", index)
	}
	state.FixDisjointSprites()
	state.ClearUnusedSprites()

	exporter := pkg.NewS6Exporter()
	exporter.RemoveTracklessRides = !sv6KeepTracklessRides
	exporter.ExportObjectsList = sv6PackObjects
	if sv6ObjectDir != "" {
		exporter.Objects = &pkg.DirectoryObjectRepository{Dir: sv6ObjectDir}
	}

	if isScenario {
		err = exporter.SaveScenario(outputFile, state)
	} else {
		err = exporter.SaveGame(outputFile, state)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", outputFile, err)
	}

	common.LogInfo(common.InfoSaveFileCreated)
	return nil
}

func init() {
	rootCmd.AddCommand(sv6Cmd)
	sv6Cmd.AddCommand(sv6SavegameCmd)
	sv6Cmd.AddCommand(sv6ScenarioCmd)
	sv6Cmd.AddCommand(sv6DumpCmd)

	sv6Cmd.PersistentFlags().BoolVarP(&sv6Verbose, "verbose", "v", false, "enable verbose debug output")
	sv6Cmd.PersistentFlags().BoolVar(&sv6KeepTracklessRides, "keep-trackless-rides", false, "keep rides that have no track on the map")
	sv6Cmd.PersistentFlags().StringSliceVar(&sv6PackObjects, "pack-object", nil, "object names to embed in the save (repeatable)")
	sv6Cmd.PersistentFlags().StringVar(&sv6ObjectDir, "object-dir", "", "directory containing .DAT object files for --pack-object")
}
