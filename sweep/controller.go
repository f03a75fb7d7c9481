// Package sweep decides, tick by tick, whether a bulk rewrite of the row bank
// is in flight and which row to write next.
package sweep

import (
	"log"

	"github.com/rowlab/rowperf/bank"
	"github.com/rowlab/rowperf/sim"
)

// State is the sweep state machine state.
type State int

// The controller is either idle or in the middle of a sweep.
const (
	StateIdle State = iota
	StateSweeping
)

func (s State) String() string {
	if s == StateIdle {
		return "idle"
	}
	return "sweeping"
}

// A Controller starts a sweep when a trigger instant arrives and then writes
// one row per nanosecond until every row in the bank has been written once.
//
// The one-row-per-nanosecond pace is deliberate and independent of the
// configured write time per row. The closed-form analyzer instead treats the
// write time as a true divisor of elapsed time; the two models only agree at
// a write time of 1 ns. See the analysis package.
type Controller struct {
	bankSize int
	triggers []sim.VTimeInNs
	period   sim.VTimeInNs

	state       State
	nextIndex   int
	masterColor bank.Color
}

// NewController creates a sweep controller for a bank of bankSize rows. A
// sweep starts whenever the current time matches one of the trigger instants.
// A positive period makes the trigger list repeat every period nanoseconds;
// a zero period makes every trigger one-shot.
func NewController(
	bankSize int,
	triggers []sim.VTimeInNs,
	period sim.VTimeInNs,
) *Controller {
	if bankSize < 0 {
		log.Panicf("bank size must not be negative, got %d", bankSize)
	}

	if period < 0 {
		log.Panicf("trigger period must not be negative, got %d", period)
	}

	for _, trig := range triggers {
		if trig < 0 {
			log.Panicf("trigger instant must not be negative, got %d", trig)
		}
	}

	return &Controller{
		bankSize:    bankSize,
		triggers:    append([]sim.VTimeInNs{}, triggers...),
		period:      period,
		state:       StateIdle,
		masterColor: bank.ColorGreen,
	}
}

// State returns the current state of the controller.
func (c *Controller) State() State {
	return c.state
}

// MasterColor returns the color the whole bank is considered to hold. It
// flips exactly once per completed sweep and never mid-sweep. It is
// bookkeeping only and does not affect per-row state.
func (c *Controller) MasterColor() bank.Color {
	return c.masterColor
}

// TryStart moves the controller from Idle to Sweeping if now matches a
// trigger instant. A trigger that fires while a sweep is already in flight is
// ignored; sweeps are never queued.
func (c *Controller) TryStart(now sim.VTimeInNs) bool {
	if c.state != StateIdle {
		return false
	}

	if !c.triggered(now) {
		return false
	}

	c.state = StateSweeping
	c.nextIndex = 0

	return true
}

// NextWrite returns the index of the row to write during the current tick.
// It advances the sweep by one row. The second return value is false when the
// controller is idle or the sweep has already covered the whole bank.
func (c *Controller) NextWrite() (int, bool) {
	if c.state != StateSweeping || c.nextIndex >= c.bankSize {
		return 0, false
	}

	index := c.nextIndex
	c.nextIndex++

	return index, true
}

// TryComplete moves the controller back to Idle once every row has been
// written during the current sweep, flipping the master color.
func (c *Controller) TryComplete() bool {
	if c.state != StateSweeping || c.nextIndex < c.bankSize {
		return false
	}

	c.state = StateIdle
	c.masterColor = c.masterColor.Flip()

	return true
}

func (c *Controller) triggered(now sim.VTimeInNs) bool {
	for _, trig := range c.triggers {
		if now == trig {
			return true
		}

		if c.period > 0 && now > trig && (now-trig)%c.period == 0 {
			return true
		}
	}

	return false
}
