// Package config provides named parameter bundles for the row-settling model
// and environment-based overrides. It supplies plain values only; validation
// beyond sign checks is left to the core.
package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rowlab/rowperf/sim"
)

// Params bundles the inputs shared by the tick-by-tick model and the
// closed-form analyzer.
type Params struct {
	TotalRows       int
	WriteTimePerRow sim.VTimeInNs
	SettlingTime    sim.VTimeInNs
	Horizon         sim.VTimeInNs
	Triggers        []sim.VTimeInNs
}

// MustValidate panics on negative values. Degenerate-but-legal values such as
// a zero row count pass through untouched; nothing is silently clamped.
func (p Params) MustValidate() {
	if p.TotalRows < 0 {
		log.Panicf("total rows must not be negative, got %d", p.TotalRows)
	}

	if p.WriteTimePerRow < 0 {
		log.Panicf("write time per row must not be negative, got %d",
			p.WriteTimePerRow)
	}

	if p.SettlingTime < 0 {
		log.Panicf("settling time must not be negative, got %d",
			p.SettlingTime)
	}

	if p.Horizon < 0 {
		log.Panicf("horizon must not be negative, got %d", p.Horizon)
	}

	for _, trig := range p.Triggers {
		if trig < 0 {
			log.Panicf("trigger instant must not be negative, got %d", trig)
		}
	}
}

// The preset bundles. Times are in nanoseconds; the reference configuration
// uses a 1 us settling time.
var presets = map[string]Params{
	"default": {
		TotalRows:       1024,
		WriteTimePerRow: 1,
		SettlingTime:    1000,
		Horizon:         8000,
		Triggers:        []sim.VTimeInNs{10, 4000},
	},
	"high-perf": {
		TotalRows:       2048,
		WriteTimePerRow: 1,
		SettlingTime:    500,
		Horizon:         8192,
		Triggers:        []sim.VTimeInNs{10, 4096},
	},
	"low-power": {
		TotalRows:       512,
		WriteTimePerRow: 2,
		SettlingTime:    2000,
		Horizon:         8192,
		Triggers:        []sim.VTimeInNs{10, 4096},
	},
	"long-settling": {
		TotalRows:       1024,
		WriteTimePerRow: 1,
		SettlingTime:    5000,
		Horizon:         16384,
		Triggers:        []sim.VTimeInNs{10, 8192},
	},
	"fast-write-slow-settling": {
		TotalRows:       1024,
		WriteTimePerRow: 1,
		SettlingTime:    10000,
		Horizon:         24576,
		Triggers:        []sim.VTimeInNs{10, 12288},
	},
}

// List returns the preset names in sorted order.
func List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Preset returns the named preset with environment overrides applied. A .env
// file in the working directory is honored when present. Recognized
// variables: ROWPERF_TOTAL_ROWS, ROWPERF_WRITE_TIME_NS, ROWPERF_SETTLING_NS,
// ROWPERF_HORIZON_NS, ROWPERF_TRIGGERS_NS (comma separated).
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("unknown preset %q, have %s",
			name, strings.Join(List(), ", "))
	}

	p.Triggers = append([]sim.VTimeInNs{}, p.Triggers...)

	// Missing .env files are fine; explicit environment variables still
	// apply.
	_ = godotenv.Load()

	if err := applyEnvOverrides(&p); err != nil {
		return Params{}, err
	}

	return p, nil
}

// MustPreset is Preset, panicking on unknown names or bad overrides.
func MustPreset(name string) Params {
	p, err := Preset(name)
	if err != nil {
		log.Panic(err)
	}

	return p
}

func applyEnvOverrides(p *Params) error {
	if v, ok := os.LookupEnv("ROWPERF_TOTAL_ROWS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROWPERF_TOTAL_ROWS: %w", err)
		}
		p.TotalRows = n
	}

	intOverrides := []struct {
		name  string
		field *sim.VTimeInNs
	}{
		{"ROWPERF_WRITE_TIME_NS", &p.WriteTimePerRow},
		{"ROWPERF_SETTLING_NS", &p.SettlingTime},
		{"ROWPERF_HORIZON_NS", &p.Horizon},
	}

	for _, o := range intOverrides {
		v, ok := os.LookupEnv(o.name)
		if !ok {
			continue
		}

		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}

		*o.field = sim.VTimeInNs(n)
	}

	if v, ok := os.LookupEnv("ROWPERF_TRIGGERS_NS"); ok {
		triggers, err := parseTriggers(v)
		if err != nil {
			return fmt.Errorf("ROWPERF_TRIGGERS_NS: %w", err)
		}
		p.Triggers = triggers
	}

	return nil
}

func parseTriggers(v string) ([]sim.VTimeInNs, error) {
	parts := strings.Split(v, ",")

	triggers := make([]sim.VTimeInNs, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}

		triggers = append(triggers, sim.VTimeInNs(n))
	}

	return triggers, nil
}
