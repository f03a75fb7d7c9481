package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowlab/rowperf/analysis"
	"github.com/rowlab/rowperf/sim"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the usable row fraction at an instant in closed form",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}

		t, _ := cmd.Flags().GetInt64("time")
		targetTime := sim.VTimeInNs(t)

		fraction := analysis.UsableFraction(
			targetTime, params.TotalRows,
			params.WriteTimePerRow, params.SettlingTime)
		usableRows := int(fraction * float64(params.TotalRows))

		fmt.Printf("Analysis at %s:\n", targetTime)
		fmt.Printf("  Usable fraction: %.3f\n", fraction)
		fmt.Printf("  Usable rows:     %d/%d\n", usableRows, params.TotalRows)
		fmt.Printf("  Settling rows:   %d\n", params.TotalRows-usableRows)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addParamFlags(analyzeCmd)
	analyzeCmd.Flags().Int64("time", 0, "instant to analyze, in ns")
	_ = analyzeCmd.MarkFlagRequired("time")
}
