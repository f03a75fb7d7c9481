package sim

import (
	"log"
	"reflect"
)

// A SerialEngine is an Engine that always runs events one after another.
type SerialEngine struct {
	HookableBase

	now            VTimeInNs
	queue          EventQueue
	secondaryQueue EventQueue

	simulationEndHandlers []SimulationEndHandler
}

// NewSerialEngine creates a SerialEngine.
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)

	e.queue = NewEventQueue()
	e.secondaryQueue = NewEventQueue()

	return e
}

// Schedule registers an event to happen in the future.
func (e *SerialEngine) Schedule(evt Event) {
	if evt.Time() < e.now {
		log.Panic("scheduling an event earlier than current time")
	}

	if evt.IsSecondary() {
		e.secondaryQueue.Push(evt)
		return
	}

	e.queue.Push(evt)
}

// Run processes all the events scheduled in the SerialEngine.
func (e *SerialEngine) Run() error {
	for {
		if e.noMoreEvent() {
			return nil
		}

		evt := e.nextEvent()
		if evt.Time() < e.now {
			log.Panicf(
				"cannot run event in the past, evt %s @ %d, now %d",
				reflect.TypeOf(evt), evt.Time(), e.now,
			)
		}
		e.now = evt.Time()

		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosBeforeEvent,
			Item:   evt,
		}
		e.InvokeHook(hookCtx)

		handler := evt.Handler()
		_ = handler.Handle(evt)

		hookCtx.Pos = HookPosAfterEvent
		e.InvokeHook(hookCtx)
	}
}

func (e *SerialEngine) noMoreEvent() bool {
	return e.queue.Len() == 0 && e.secondaryQueue.Len() == 0
}

func (e *SerialEngine) nextEvent() Event {
	if e.queue.Len() == 0 {
		return e.secondaryQueue.Pop()
	}

	if e.secondaryQueue.Len() == 0 {
		return e.queue.Pop()
	}

	primaryEvt := e.queue.Peek()
	secondaryEvt := e.secondaryQueue.Peek()

	if primaryEvt.Time() <= secondaryEvt.Time() {
		e.queue.Pop()
		return primaryEvt
	}

	e.secondaryQueue.Pop()
	return secondaryEvt
}

// CurrentTime returns the current time at which the engine is at.
// Specifically, the run time of the current event.
func (e *SerialEngine) CurrentTime() VTimeInNs {
	return e.now
}

// RegisterSimulationEndHandler registers a handler to be called after the
// simulation ends.
func (e *SerialEngine) RegisterSimulationEndHandler(
	handler SimulationEndHandler,
) {
	e.simulationEndHandlers = append(e.simulationEndHandlers, handler)
}

// Finished should be called after the simulation ends. This function
// calls all the registered SimulationEndHandler.
func (e *SerialEngine) Finished() {
	for _, h := range e.simulationEndHandlers {
		h.Handle(e.now)
	}
}
