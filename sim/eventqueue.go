package sim

import "container/heap"

// EventQueue is the future-event list: a priority queue with deterministic
// ordering. Ordering: timestamp → insertion sequence. The sequence tie-break
// matters because tie order decides which of two simultaneous events mutates
// station state first.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty future-event list.
func NewEventQueue() *EventQueue {
	h := &EventQueue{
		events: make([]Event, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventQueue) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering.
func (h *EventQueue) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]

	// Primary: timestamp (lower first)
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}

	// Secondary: insertion sequence (lower first, deterministic tie-breaker)
	return ei.Seq() < ej.Seq()
}

// Swap implements heap.Interface.
func (h *EventQueue) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface.
func (h *EventQueue) Push(x any) {
	h.events = append(h.events, x.(Event))
}

// Pop implements heap.Interface.
func (h *EventQueue) Pop() any {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the future-event list in O(log n).
func (h *EventQueue) Schedule(e Event) {
	heap.Push(h, e)
}

// PopNext removes and returns the earliest event, or nil if none remain.
func (h *EventQueue) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(Event)
}

// Peek returns the earliest event without removing it, or nil if none remain.
func (h *EventQueue) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0]
}
