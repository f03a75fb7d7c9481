package analysis

import (
	"log"

	"github.com/rowlab/rowperf/sim"
)

// A Point is one (x, y) pair handed to a rendering collaborator. The core
// has no knowledge of how points are displayed or persisted.
type Point struct {
	X float64
	Y float64
}

// UsableFractionSeries samples UsableFraction from t=0 to horizon inclusive,
// every step nanoseconds.
func UsableFractionSeries(
	horizon sim.VTimeInNs,
	step sim.VTimeInNs,
	totalRows int,
	writeTimePerRow sim.VTimeInNs,
	settling sim.VTimeInNs,
) []Point {
	if horizon < 0 {
		log.Panicf("horizon must not be negative, got %d", horizon)
	}

	if step <= 0 {
		log.Panicf("step must be positive, got %d", step)
	}

	points := make([]Point, 0, int(horizon/step)+1)
	for t := sim.VTimeInNs(0); t <= horizon; t += step {
		points = append(points, Point{
			X: float64(t),
			Y: UsableFraction(t, totalRows, writeTimePerRow, settling),
		})
	}

	return points
}

// PipelineEfficiencyCurve samples PipelineEfficiency for n = 0 to maxN
// inclusive, every step instances. The reference analysis sweeps n up to
// 25000 in steps of 250.
func PipelineEfficiencyCurve(maxN, step, totalRows int) []Point {
	if maxN < 0 {
		log.Panicf("maximum instance count must not be negative, got %d", maxN)
	}

	if step <= 0 {
		log.Panicf("step must be positive, got %d", step)
	}

	points := make([]Point, 0, maxN/step+1)
	for n := 0; n <= maxN; n += step {
		points = append(points, Point{
			X: float64(n),
			Y: PipelineEfficiency(n, totalRows),
		})
	}

	return points
}
