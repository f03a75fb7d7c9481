// Package analysis computes the settling behavior of a row bank in closed
// form, without stepping through individual nanoseconds.
//
// The closed forms treat the write time per row as a true divisor of elapsed
// time, while the tick-by-tick model always writes one row per nanosecond.
// The two paths therefore only agree at a write time of 1 ns; that shared
// configuration is the cross-check between them. The discrepancy is
// preserved from the reference behavior on purpose rather than resolved.
package analysis

import (
	"log"

	"github.com/rowlab/rowperf/sim"
)

// UsableFraction returns the fraction of rows, in [0, 1], that are settled at
// targetTime under continuous single-pass writing that starts at t=0.
//
// A bank with zero rows, or with a zero settling time, is instantly usable
// and yields 1.0. A non-positive write time per row is a configuration error
// since it divides elapsed time.
func UsableFraction(
	targetTime sim.VTimeInNs,
	totalRows int,
	writeTimePerRow sim.VTimeInNs,
	settling sim.VTimeInNs,
) float64 {
	if totalRows < 0 {
		log.Panicf("total rows must not be negative, got %d", totalRows)
	}

	if settling < 0 {
		log.Panicf("settling time must not be negative, got %d", settling)
	}

	if totalRows == 0 || settling == 0 {
		return 1.0
	}

	if writeTimePerRow <= 0 {
		log.Panicf("write time per row must be positive, got %d",
			writeTimePerRow)
	}

	if targetTime <= 0 {
		return 1.0
	}

	rowsWritten := int64(targetTime / writeTimePerRow)
	if rowsWritten > int64(totalRows) {
		rowsWritten = int64(totalRows)
	}

	if rowsWritten == 0 {
		return 1.0
	}

	// A row is settling if it was written within the last settling window.
	cutoff := targetTime - settling

	rowsSettling := rowsWritten
	if cutoff > 0 {
		rowsWrittenBeforeCutoff := int64(cutoff / writeTimePerRow)
		if rowsWrittenBeforeCutoff > rowsWritten {
			rowsWrittenBeforeCutoff = rowsWritten
		}
		rowsSettling = rowsWritten - rowsWrittenBeforeCutoff
	}

	return float64(int64(totalRows)-rowsSettling) / float64(totalRows)
}

// TrapezoidWidth returns the total time span needed to process n pipelined
// usage instances, each consuming the full row bank: a rising ramp of
// totalRows ticks, a falling ramp of totalRows ticks, and, once n exceeds the
// bank size, a flat top proportional to the excess.
func TrapezoidWidth(n int, totalRows int) sim.VTimeInNs {
	if totalRows < 0 {
		log.Panicf("total rows must not be negative, got %d", totalRows)
	}

	rampWidth := sim.VTimeInNs(totalRows)

	if n <= totalRows {
		return 2 * rampWidth
	}

	flatTopWidth := sim.VTimeInNs(n - totalRows)

	return 2*rampWidth + flatTopWidth
}

// PipelineEfficiency returns the average useful work per nanosecond sustained
// by a pipeline of n sequential full-bank usages. It approaches totalRows as
// n grows.
func PipelineEfficiency(n int, totalRows int) float64 {
	if n <= 0 {
		return 0
	}

	width := TrapezoidWidth(n, totalRows)
	if width == 0 {
		return 0
	}

	return float64(n) * float64(totalRows) / float64(width)
}
