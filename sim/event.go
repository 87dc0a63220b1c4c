package sim

// EventType identifies the concrete variant of a simulation event.
type EventType string

const (
	EventTypeArrival   EventType = "Arrival"
	EventTypeDeparture EventType = "Departure"
)

// Event is implemented by everything the future-event list can hold.
// Timestamp is in simulated hours. Seq is the insertion sequence number the
// Simulator assigns on Schedule; events with equal timestamps dispatch in Seq
// order. The unexported setSeq keeps the variant set closed: only the event
// types defined in this file can enter the future-event list.
type Event interface {
	Timestamp() float64
	Seq() uint64
	Type() EventType
	Execute(*Simulator)
	setSeq(uint64)
}

// baseEvent carries the fields shared by all event variants.
type baseEvent struct {
	time float64
	seq  uint64
}

func (e *baseEvent) Timestamp() float64 { return e.time }

func (e *baseEvent) Seq() uint64 { return e.seq }

func (e *baseEvent) setSeq(n uint64) { e.seq = n }

// ArrivalEvent represents a customer arriving at a station.
type ArrivalEvent struct {
	baseEvent
	Station  string
	Customer int64
}

// NewArrivalEvent creates an ArrivalEvent at the given simulated time.
func NewArrivalEvent(time float64, station string, customer int64) *ArrivalEvent {
	return &ArrivalEvent{baseEvent: baseEvent{time: time}, Station: station, Customer: customer}
}

func (e *ArrivalEvent) Type() EventType { return EventTypeArrival }

func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.handleArrival(e)
}

// DepartureEvent represents a customer finishing service on a specific server
// slot, either releasing the slot or handing it to the head of the wait queue.
type DepartureEvent struct {
	baseEvent
	Station  string
	Slot     int
	Customer int64
}

// NewDepartureEvent creates a DepartureEvent at the given simulated time.
func NewDepartureEvent(time float64, station string, slot int, customer int64) *DepartureEvent {
	return &DepartureEvent{baseEvent: baseEvent{time: time}, Station: station, Slot: slot, Customer: customer}
}

func (e *DepartureEvent) Type() EventType { return EventTypeDeparture }

func (e *DepartureEvent) Execute(sim *Simulator) {
	sim.handleDeparture(e)
}
