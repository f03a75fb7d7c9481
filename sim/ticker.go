package sim

// TickEvent is a generic event that a stepped component can use to update its
// status once per nanosecond.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a new TickEvent.
func MakeTickEvent(handler Handler, time VTimeInNs) TickEvent {
	return TickEvent{EventBase: *NewEventBase(time, handler)}
}
