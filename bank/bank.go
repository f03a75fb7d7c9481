// Package bank models a bank of memory rows that need a settling delay after
// each write before their values are trustworthy.
package bank

import (
	"fmt"
	"log"

	"github.com/rowlab/rowperf/sim"
)

// Color marks which of the two bulk-write passes last touched a row.
type Color int

// The two row colors. Every row starts green and flips on every write.
const (
	ColorGreen Color = iota
	ColorBlue
)

// Flip returns the other color.
func (c Color) Flip() Color {
	if c == ColorGreen {
		return ColorBlue
	}
	return ColorGreen
}

func (c Color) String() string {
	if c == ColorGreen {
		return "green"
	}
	return "blue"
}

// RowStatus classifies a row at an instant.
type RowStatus int

// A row is unsettled while its ReadyAt deadline is still in the future.
// Otherwise it is settled in its current color.
const (
	RowUnsettled RowStatus = iota
	RowSettledGreen
	RowSettledBlue
)

// A Row is a unit of storage. Color and ReadyAt are only ever changed
// together, by Bank.Write.
type Row struct {
	Color   Color
	ReadyAt sim.VTimeInNs
}

// A Bank is a fixed-size ordered collection of rows. All rows start settled
// green at time 0. The bank is exclusively owned by the component that steps
// it; nothing else may mutate it.
type Bank struct {
	settling sim.VTimeInNs
	rows     []Row
}

// NewBank creates a bank of totalRows rows that each need settling nanoseconds
// after a write before they are usable again.
func NewBank(totalRows int, settling sim.VTimeInNs) *Bank {
	if totalRows < 0 {
		log.Panicf("total rows must not be negative, got %d", totalRows)
	}

	if settling < 0 {
		log.Panicf("settling time must not be negative, got %d", settling)
	}

	return &Bank{
		settling: settling,
		rows:     make([]Row, totalRows),
	}
}

// Size returns the number of rows in the bank.
func (b *Bank) Size() int {
	return len(b.rows)
}

// SettlingTime returns the per-write settling delay.
func (b *Bank) SettlingTime() sim.VTimeInNs {
	return b.settling
}

// Write rewrites row index at the given time. The row's color flips and its
// value is not trustworthy again until at+settling.
func (b *Bank) Write(index int, at sim.VTimeInNs) {
	b.mustBeInRange(index)

	row := &b.rows[index]
	row.Color = row.Color.Flip()
	row.ReadyAt = at + b.settling
}

// Classify reports the status of row index at the given time. It has no side
// effects.
func (b *Bank) Classify(index int, at sim.VTimeInNs) RowStatus {
	b.mustBeInRange(index)

	row := b.rows[index]
	if row.ReadyAt > at {
		return RowUnsettled
	}

	if row.Color == ColorGreen {
		return RowSettledGreen
	}

	return RowSettledBlue
}

// Row returns a copy of row index.
func (b *Bank) Row(index int) Row {
	b.mustBeInRange(index)
	return b.rows[index]
}

func (b *Bank) mustBeInRange(index int) {
	if index < 0 || index >= len(b.rows) {
		panic(fmt.Sprintf(
			"row index %d out of range [0, %d)", index, len(b.rows)))
	}
}
