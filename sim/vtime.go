package sim

import "fmt"

// VTimeInNs defines the time in the simulated space in the unit of nanosecond.
// The row-settling model is fully discrete and one tick always lasts 1 ns.
type VTimeInNs int64

func (t VTimeInNs) String() string {
	return fmt.Sprintf("%dns", int64(t))
}
