package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/rowlab/rowperf/analysis"
	"github.com/rowlab/rowperf/config"
	"github.com/rowlab/rowperf/model"
	"github.com/rowlab/rowperf/monitoring"
	"github.com/rowlab/rowperf/recording"
	"github.com/rowlab/rowperf/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Step the row bank through its write sweeps tick by tick",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}

		samples := model.Simulate(
			params.TotalRows, params.Triggers,
			params.SettlingTime, params.Horizon)

		printRunSummary(params, samples)

		if path, _ := cmd.Flags().GetString("record"); path != "" {
			rec := recording.NewDataRecorder(path)
			recording.RecordRun(rec, samples)

			writeTime := params.WriteTimePerRow
			if writeTime > 0 {
				recording.RecordCurve(rec, "usable_fraction",
					analysis.UsableFractionSeries(
						params.Horizon, 1, params.TotalRows,
						writeTime, params.SettlingTime))
			}

			recording.RecordCurve(rec, "pipeline_efficiency",
				analysis.PipelineEfficiencyCurve(25000, 250, params.TotalRows))

			rec.Close()
		}

		if serve, _ := cmd.Flags().GetBool("serve"); serve {
			m := monitoring.NewMonitor()

			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				m.WithPortNumber(port)
			}

			m.RegisterRun(params, samples)
			url := m.StartServer()

			if open, _ := cmd.Flags().GetBool("open"); open {
				monitoring.OpenBrowser(url)
			}

			// Serve until interrupted.
			select {}
		}

		atexit.Exit(0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	addParamFlags(simulateCmd)
	simulateCmd.Flags().String("record", "",
		"record the trace into a SQLite database at this path")
	simulateCmd.Flags().Bool("serve", false,
		"serve the finished run over HTTP")
	simulateCmd.Flags().Int("port", 0, "port for --serve (0 picks one)")
	simulateCmd.Flags().Bool("open", false,
		"open the served run in the default browser")
}

func printRunSummary(params config.Params, samples []model.Sample) {
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Total rows:    %d\n", params.TotalRows)
	fmt.Printf("  Settling time: %s\n", params.SettlingTime)
	fmt.Printf("  Horizon:       %s\n", params.Horizon)
	fmt.Printf("  Sweeps start:  %v\n", params.Triggers)

	fmt.Printf("\nKey time points:\n")
	for _, t := range keyTimePoints(params) {
		s := samples[int(t)]
		fmt.Printf("  %8s: %4d settled green, %4d settled blue, "+
			"%4d unsettled\n",
			s.Time, s.SettledGreen, s.SettledBlue, s.Unsettled)
	}
}

// keyTimePoints picks the instants worth printing: the start, each sweep
// start, each sweep end, each full-settle instant, and the horizon.
func keyTimePoints(params config.Params) []sim.VTimeInNs {
	seen := map[sim.VTimeInNs]bool{0: true, params.Horizon: true}

	for _, trig := range params.Triggers {
		sweepEnd := trig + sim.VTimeInNs(params.TotalRows)
		settled := sweepEnd - 1 + params.SettlingTime

		for _, t := range []sim.VTimeInNs{trig, sweepEnd, settled} {
			if t >= 0 && t <= params.Horizon {
				seen[t] = true
			}
		}
	}

	points := make([]sim.VTimeInNs, 0, len(seen))
	for t := range seen {
		points = append(points, t)
	}

	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	return points
}
