// Package model steps a row bank through repeated write sweeps, one
// nanosecond at a time, and records how many rows are settled in each color
// versus still settling at every instant.
package model

import (
	"log"
	"reflect"

	"github.com/rowlab/rowperf/bank"
	"github.com/rowlab/rowperf/sim"
	"github.com/rowlab/rowperf/sweep"
)

// A Sample is one record of the simulation output, taken after the tick at
// Time has fully completed. SettledGreen + SettledBlue + Unsettled always
// equals the bank size.
type Sample struct {
	Time         sim.VTimeInNs
	SettledGreen int
	SettledBlue  int
	Unsettled    int
}

// Comp owns a row bank and a sweep controller and advances both one
// nanosecond per tick until the horizon is reached. Each tick it asks the
// controller for the write decision, applies it to the bank, and scans the
// bank into one Sample.
type Comp struct {
	name    string
	engine  sim.Engine
	bank    *bank.Bank
	ctrl    *sweep.Controller
	horizon sim.VTimeInNs

	samples []Sample
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// KickStart emits the t=0 sample, with every row settled in its initial
// color, and schedules the first tick. It must be called exactly once,
// before the engine runs.
func (c *Comp) KickStart() {
	c.samples = append(c.samples, c.scan(0))

	if c.horizon >= 1 {
		c.engine.Schedule(sim.MakeTickEvent(c, 1))
	}
}

// Handle advances the model by one tick.
func (c *Comp) Handle(e sim.Event) error {
	switch evt := e.(type) {
	case sim.TickEvent:
		c.tick(evt.Time())
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

// Samples returns the trace produced so far, one sample per nanosecond
// starting at t=0.
func (c *Comp) Samples() []Sample {
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	return out
}

// MasterColor returns the reported whole-bank color. It flips exactly once
// per completed sweep.
func (c *Comp) MasterColor() bank.Color {
	return c.ctrl.MasterColor()
}

func (c *Comp) tick(now sim.VTimeInNs) {
	c.ctrl.TryStart(now)

	if index, ok := c.ctrl.NextWrite(); ok {
		c.bank.Write(index, now)
	}

	c.ctrl.TryComplete()

	c.samples = append(c.samples, c.scan(now))

	if now < c.horizon {
		c.engine.Schedule(sim.MakeTickEvent(c, now+1))
	}
}

func (c *Comp) scan(now sim.VTimeInNs) Sample {
	sample := Sample{Time: now}

	for i := 0; i < c.bank.Size(); i++ {
		switch c.bank.Classify(i, now) {
		case bank.RowUnsettled:
			sample.Unsettled++
		case bank.RowSettledGreen:
			sample.SettledGreen++
		case bank.RowSettledBlue:
			sample.SettledBlue++
		}
	}

	return sample
}
