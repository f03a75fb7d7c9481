package model

import (
	"log"

	"github.com/rowlab/rowperf/bank"
	"github.com/rowlab/rowperf/sim"
	"github.com/rowlab/rowperf/sweep"
)

// Builder can build row-bank model components. The defaults reproduce the
// reference configuration: 1024 rows, 1 us settling, a green-to-blue sweep at
// t=10 and a blue-to-green sweep at t=4000, over an 8000 ns horizon.
type Builder struct {
	engine        sim.Engine
	totalRows     int
	settling      sim.VTimeInNs
	triggers      []sim.VTimeInNs
	triggerPeriod sim.VTimeInNs
	horizon       sim.VTimeInNs
}

// MakeBuilder returns a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		totalRows: 1024,
		settling:  1000,
		triggers:  []sim.VTimeInNs{10, 4000},
		horizon:   8000,
	}
}

// WithEngine sets the engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithTotalRows sets the number of rows in the bank.
func (b Builder) WithTotalRows(totalRows int) Builder {
	b.totalRows = totalRows
	return b
}

// WithSettlingTime sets the delay after each write before a row is usable.
func (b Builder) WithSettlingTime(settling sim.VTimeInNs) Builder {
	b.settling = settling
	return b
}

// WithTriggers sets the instants at which sweeps start.
func (b Builder) WithTriggers(triggers ...sim.VTimeInNs) Builder {
	b.triggers = triggers
	return b
}

// WithTriggerPeriod makes the trigger list repeat with the given period. A
// zero period makes every trigger one-shot.
func (b Builder) WithTriggerPeriod(period sim.VTimeInNs) Builder {
	b.triggerPeriod = period
	return b
}

// WithHorizon sets the last simulated instant, inclusive.
func (b Builder) WithHorizon(horizon sim.VTimeInNs) Builder {
	b.horizon = horizon
	return b
}

// Build builds a new Comp. Negative configuration values are rejected here,
// before any computation starts.
func (b Builder) Build(name string) *Comp {
	if b.engine == nil {
		log.Panic("an engine is required to build a row-bank model")
	}

	if b.horizon < 0 {
		log.Panicf("horizon must not be negative, got %d", b.horizon)
	}

	c := &Comp{
		name:    name,
		engine:  b.engine,
		bank:    bank.NewBank(b.totalRows, b.settling),
		ctrl:    sweep.NewController(b.totalRows, b.triggers, b.triggerPeriod),
		horizon: b.horizon,
	}

	c.samples = make([]Sample, 0, int(b.horizon)+1)

	return c
}
