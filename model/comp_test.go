package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rowlab/rowperf/analysis"
	"github.com/rowlab/rowperf/bank"
	"github.com/rowlab/rowperf/sim"
)

var _ = Describe("RowBankModel", func() {
	defaultTriggers := []sim.VTimeInNs{10, 4000}

	It("should start with every row settled green", func() {
		samples := Simulate(1024, defaultTriggers, 1000, 8000)

		Expect(samples[0]).To(Equal(Sample{
			Time:         0,
			SettledGreen: 1024,
			SettledBlue:  0,
			Unsettled:    0,
		}))
	})

	It("should conserve the row count in every sample", func() {
		samples := Simulate(1024, defaultTriggers, 1000, 8000)

		Expect(samples).To(HaveLen(8001))
		for _, s := range samples {
			Expect(s.SettledGreen + s.SettledBlue + s.Unsettled).
				To(Equal(1024))
		}
	})

	It("should reproduce the reference time points", func() {
		samples := Simulate(1024, defaultTriggers, 1000, 8000)

		// One row is written the instant the first sweep starts.
		Expect(samples[10]).To(Equal(Sample{
			Time: 10, SettledGreen: 1023, SettledBlue: 0, Unsettled: 1}))

		// Right after the sweep finished: rows written in the last 1000 ns
		// are still settling, the earliest 25 writes have settled blue.
		Expect(samples[1034]).To(Equal(Sample{
			Time: 1034, SettledGreen: 0, SettledBlue: 25, Unsettled: 999}))

		// The last row of the sweep was written at t=1033 and settles at
		// t=2033.
		Expect(samples[2032].Unsettled).To(Equal(1))
		Expect(samples[2033]).To(Equal(Sample{
			Time: 2033, SettledGreen: 0, SettledBlue: 1024, Unsettled: 0}))

		// The second sweep rewrites the bank back to green.
		Expect(samples[4000]).To(Equal(Sample{
			Time: 4000, SettledGreen: 0, SettledBlue: 1023, Unsettled: 1}))
		Expect(samples[6023]).To(Equal(Sample{
			Time: 6023, SettledGreen: 1024, SettledBlue: 0, Unsettled: 0}))
		Expect(samples[8000]).To(Equal(Sample{
			Time: 8000, SettledGreen: 1024, SettledBlue: 0, Unsettled: 0}))
	})

	It("should cap the unsettled count at the settling window", func() {
		samples := Simulate(1024, defaultTriggers, 1000, 8000)

		maxUnsettled := 0
		for _, s := range samples {
			if s.Unsettled > maxUnsettled {
				maxUnsettled = s.Unsettled
			}
		}

		Expect(maxUnsettled).To(Equal(1000))
		Expect(samples[9].Unsettled).To(Equal(0))
		Expect(samples[1033].Unsettled).To(Equal(1000))
	})

	It("should flip the master color exactly once per completed sweep", func() {
		engine := sim.NewSerialEngine()
		comp := MakeBuilder().
			WithEngine(engine).
			WithHorizon(3000).
			Build("RowBankModel")

		comp.KickStart()
		Expect(engine.Run()).To(Succeed())

		// Only the green-to-blue sweep completed within the horizon.
		Expect(comp.MasterColor()).To(Equal(bank.ColorBlue))

		engine = sim.NewSerialEngine()
		comp = MakeBuilder().
			WithEngine(engine).
			Build("RowBankModel")

		comp.KickStart()
		Expect(engine.Run()).To(Succeed())

		Expect(comp.MasterColor()).To(Equal(bank.ColorGreen))
	})

	It("should never flip the master color mid-sweep", func() {
		engine := sim.NewSerialEngine()
		comp := MakeBuilder().
			WithEngine(engine).
			WithHorizon(500).
			Build("RowBankModel")

		comp.KickStart()
		Expect(engine.Run()).To(Succeed())

		// The first sweep is still in flight at t=500.
		Expect(comp.MasterColor()).To(Equal(bank.ColorGreen))
	})

	It("should be deterministic", func() {
		first := Simulate(1024, defaultTriggers, 1000, 8000)
		second := Simulate(1024, defaultTriggers, 1000, 8000)

		Expect(second).To(Equal(first))
	})

	It("should agree with the closed form at a write time of 1 ns", func() {
		samples := Simulate(1024, []sim.VTimeInNs{1}, 1000, 1024)

		s := samples[1024]
		settledFraction :=
			float64(s.SettledGreen+s.SettledBlue) / float64(1024)

		Expect(settledFraction).To(BeNumerically(
			"~", analysis.UsableFraction(1024, 1024, 1, 1000), 1e-12))
	})

	It("should emit trivially-zero samples for an empty bank", func() {
		samples := Simulate(0, defaultTriggers, 1000, 100)

		Expect(samples).To(HaveLen(101))
		for _, s := range samples {
			Expect(s).To(Equal(Sample{Time: s.Time}))
		}
	})

	It("should emit only the initial sample for a zero horizon", func() {
		samples := Simulate(1024, defaultTriggers, 1000, 0)

		Expect(samples).To(HaveLen(1))
		Expect(samples[0].Time).To(Equal(sim.VTimeInNs(0)))
	})

	It("should support repeating triggers", func() {
		engine := sim.NewSerialEngine()
		comp := MakeBuilder().
			WithEngine(engine).
			WithTotalRows(4).
			WithSettlingTime(2).
			WithTriggers(10).
			WithTriggerPeriod(100).
			WithHorizon(250).
			Build("RowBankModel")

		comp.KickStart()
		Expect(engine.Run()).To(Succeed())

		// Three sweeps completed: t=10, t=110, t=210.
		Expect(comp.MasterColor()).To(Equal(bank.ColorBlue))

		samples := comp.Samples()
		Expect(samples[110].Unsettled).To(Equal(1))
	})

	It("should reject a negative horizon before simulating", func() {
		Expect(func() {
			Simulate(1024, defaultTriggers, 1000, -1)
		}).To(Panic())
	})

	It("should reject a negative row count", func() {
		Expect(func() {
			Simulate(-1, defaultTriggers, 1000, 100)
		}).To(Panic())
	})

	It("should reject a negative settling time", func() {
		Expect(func() {
			Simulate(1024, defaultTriggers, -1, 100)
		}).To(Panic())
	})

	It("should require an engine", func() {
		Expect(func() {
			MakeBuilder().Build("RowBankModel")
		}).To(Panic())
	})
})
