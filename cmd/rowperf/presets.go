package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowlab/rowperf/config"
	"github.com/rowlab/rowperf/sim"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named parameter bundles",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, name := range config.List() {
			p, err := config.Preset(name)
			if err != nil {
				return err
			}

			writeDuration :=
				sim.VTimeInNs(p.TotalRows) * p.WriteTimePerRow
			totalSettle := writeDuration + p.SettlingTime

			fmt.Printf("%s:\n", name)
			fmt.Printf("  Total rows:     %d\n", p.TotalRows)
			fmt.Printf("  Write time:     %s/row\n", p.WriteTimePerRow)
			fmt.Printf("  Settling time:  %s\n", p.SettlingTime)
			fmt.Printf("  Horizon:        %s\n", p.Horizon)
			fmt.Printf("  Sweeps start:   %v\n", p.Triggers)
			fmt.Printf("  Write duration: %s\n", writeDuration)
			fmt.Printf("  Full settle:    %s\n", totalSettle)
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
