package sim

import (
	"container/heap"
	"sync"
)

// EventQueue is a queue of events ordered by the time of the events.
type EventQueue interface {
	Push(evt Event)
	Pop() Event
	Len() int
	Peek() Event
}

// EventQueueImpl provides a thread-safe event queue.
type EventQueueImpl struct {
	sync.Mutex
	events eventHeap
}

// NewEventQueue creates and returns a newly created EventQueue.
func NewEventQueue() *EventQueueImpl {
	q := new(EventQueueImpl)
	q.events = make([]Event, 0)
	heap.Init(&q.events)
	return q
}

// Push adds an event to the event queue.
func (q *EventQueueImpl) Push(evt Event) {
	q.Lock()
	heap.Push(&q.events, evt)
	q.Unlock()
}

// Pop returns the next earliest event.
func (q *EventQueueImpl) Pop() Event {
	q.Lock()
	e := heap.Pop(&q.events).(Event)
	q.Unlock()
	return e
}

// Len returns the number of events in the queue.
func (q *EventQueueImpl) Len() int {
	q.Lock()
	l := q.events.Len()
	q.Unlock()
	return l
}

// Peek returns the event in front of the queue without removing it from the
// queue.
func (q *EventQueueImpl) Peek() Event {
	q.Lock()
	evt := q.events[0]
	q.Unlock()
	return evt
}

type eventHeap []Event

func (h eventHeap) Len() int {
	return len(h)
}

// Less returns true if the i-th event happens before the j-th event.
func (h eventHeap) Less(i, j int) bool {
	return h[i].Time() < h[j].Time()
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x interface{}) {
	event := x.(Event)
	*h = append(*h, event)
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	event := old[n-1]
	*h = old[0 : n-1]
	return event
}
