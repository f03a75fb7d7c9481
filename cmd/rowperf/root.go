package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rowlab/rowperf/config"
	"github.com/rowlab/rowperf/sim"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "rowperf",
	Short: "Rowperf analyzes row usage patterns under settling time " +
		"constraints.",
	Long: `Rowperf models a bank of memory rows that are periodically ` +
		`rewritten in bulk and need a fixed settling delay after each write ` +
		`before their values are trustworthy. It can step the bank through ` +
		`write sweeps one nanosecond at a time and compute the same settling ` +
		`quantities in closed form.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if useXID, _ := cmd.Flags().GetBool("xid-event-ids"); useXID {
			sim.UseParallelIDGenerator()
		} else {
			sim.UseSequentialIDGenerator()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("xid-event-ids", false,
		"use globally unique xid event IDs instead of sequential ones")
}

// addParamFlags registers the model parameter flags shared by the
// subcommands.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "default", "named parameter bundle")
	cmd.Flags().Int("rows", 0, "total number of rows (overrides preset)")
	cmd.Flags().Int64("write-time", 0,
		"write time per row in ns (overrides preset)")
	cmd.Flags().Int64("settling", 0, "settling time in ns (overrides preset)")
	cmd.Flags().Int64("horizon", 0,
		"last simulated instant in ns (overrides preset)")
	cmd.Flags().Int64Slice("triggers", nil,
		"sweep start instants in ns (overrides preset)")
}

// paramsFromFlags resolves the preset and applies flag overrides.
func paramsFromFlags(cmd *cobra.Command) (config.Params, error) {
	presetName, _ := cmd.Flags().GetString("preset")

	params, err := config.Preset(presetName)
	if err != nil {
		return config.Params{}, err
	}

	if cmd.Flags().Changed("rows") {
		params.TotalRows, _ = cmd.Flags().GetInt("rows")
	}

	if cmd.Flags().Changed("write-time") {
		v, _ := cmd.Flags().GetInt64("write-time")
		params.WriteTimePerRow = sim.VTimeInNs(v)
	}

	if cmd.Flags().Changed("settling") {
		v, _ := cmd.Flags().GetInt64("settling")
		params.SettlingTime = sim.VTimeInNs(v)
	}

	if cmd.Flags().Changed("horizon") {
		v, _ := cmd.Flags().GetInt64("horizon")
		params.Horizon = sim.VTimeInNs(v)
	}

	if cmd.Flags().Changed("triggers") {
		vs, _ := cmd.Flags().GetInt64Slice("triggers")
		params.Triggers = make([]sim.VTimeInNs, 0, len(vs))
		for _, v := range vs {
			params.Triggers = append(params.Triggers, sim.VTimeInNs(v))
		}
	}

	params.MustValidate()

	return params, nil
}
