package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowlab/rowperf/analysis"
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Compute pipeline trapezoid width and sustained throughput",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}

		n, _ := cmd.Flags().GetInt("n")

		width := analysis.TrapezoidWidth(n, params.TotalRows)
		eff := analysis.PipelineEfficiency(n, params.TotalRows)

		fmt.Printf("Pipeline of %d full-bank usages over %d rows:\n",
			n, params.TotalRows)
		fmt.Printf("  Trapezoid width: %s\n", width)
		fmt.Printf("  Efficiency:      %.1f rows/ns\n", eff)

		fmt.Printf("\nReference points:\n")
		for _, refN := range []int{1024, 2048, 5000, 10000, 25000} {
			fmt.Printf("  N=%-6d width=%-8s %.1f rows/ns\n",
				refN,
				analysis.TrapezoidWidth(refN, params.TotalRows),
				analysis.PipelineEfficiency(refN, params.TotalRows))
		}
		fmt.Printf("  Asymptotic limit: %d rows/ns\n", params.TotalRows)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(efficiencyCmd)

	addParamFlags(efficiencyCmd)
	efficiencyCmd.Flags().Int("n", 1024, "number of pipelined usage instances")
}
