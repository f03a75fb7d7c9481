package model

import "github.com/rowlab/rowperf/sim"

// Simulate runs the tick-by-tick model and returns the full trace, one sample
// per nanosecond from t=0 to horizon inclusive. The trace is a pure function
// of the arguments; re-running with identical inputs reproduces identical
// output.
func Simulate(
	totalRows int,
	triggers []sim.VTimeInNs,
	settling sim.VTimeInNs,
	horizon sim.VTimeInNs,
) []Sample {
	engine := sim.NewSerialEngine()

	comp := MakeBuilder().
		WithEngine(engine).
		WithTotalRows(totalRows).
		WithTriggers(triggers...).
		WithSettlingTime(settling).
		WithHorizon(horizon).
		Build("RowBankModel")

	comp.KickStart()

	err := engine.Run()
	if err != nil {
		panic(err)
	}

	engine.Finished()

	return comp.Samples()
}
