// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stationsim/stationsim/sim/trace"
)

// Simulator is the core object that holds simulation time, all station state,
// the future-event list, and the statistics. It exclusively owns everything it
// holds for the duration of a run; construct a fresh Simulator per run.
type Simulator struct {
	// Clock is the current simulated time in hours. It only moves forward, at
	// event-processing boundaries: it is set to the popped event's timestamp
	// immediately before dispatch, never between events.
	Clock float64

	// EventQueue is the future-event list.
	EventQueue *EventQueue

	// Trace records one state snapshot per processed event.
	Trace *trace.Log

	// RNG hands out the per-station sampling streams.
	RNG *PartitionedRNG

	// EventsProcessed counts dispatched events across Run calls.
	EventsProcessed int64

	runID          uuid.UUID
	stations       []*Station // configuration order; fixes t=0 arrival tie order
	stationsByName map[string]*Station
	nextSeq        uint64
}

// NewSimulator validates the configuration, builds all station state, and
// schedules each station's first arrival at t=0 in configuration order.
// A configuration error is returned before any event is scheduled.
func NewSimulator(cfg *Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sim := &Simulator{
		EventQueue:     NewEventQueue(),
		Trace:          trace.NewLog(),
		RNG:            NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		runID:          uuid.New(),
		stations:       make([]*Station, 0, len(cfg.Stations)),
		stationsByName: make(map[string]*Station, len(cfg.Stations)),
	}

	for _, sc := range cfg.Stations {
		st := newStation(sc,
			NewExponentialSampler(sc.ArrivalRate, sim.RNG.ForSubsystem(SubsystemArrival(sc.Name))),
			NewExponentialSampler(sc.ServiceRate, sim.RNG.ForSubsystem(SubsystemService(sc.Name))),
		)
		sim.stations = append(sim.stations, st)
		sim.stationsByName[st.Name] = st
	}

	// Seed the event stream: one arrival per station at t=0. The stream is
	// self-sustaining from here on because every arrival schedules its
	// successor.
	for _, st := range sim.stations {
		sim.Schedule(NewArrivalEvent(0, st.Name, st.mintCustomerID()))
	}

	return sim, nil
}

// Station returns the named station, or nil if it does not exist. Useful for
// substituting deterministic samplers before calling Run.
func (sim *Simulator) Station(name string) *Station {
	return sim.stationsByName[name]
}

// Schedule pushes an event into the future-event list, stamping it with the
// next insertion sequence number so equal-timestamp events dispatch in the
// order they were scheduled.
func (sim *Simulator) Schedule(ev Event) {
	ev.setSeq(sim.nextSeq)
	sim.nextSeq++
	sim.EventQueue.Schedule(ev)
}

// Run pops and dispatches events in timestamp order until the event budget is
// exhausted or no events remain. On exit it closes each station's open
// busy-time interval at the current clock, so utilization reflects the full
// elapsed horizon. Run may be called again to extend a finished run by a
// further budget.
func (sim *Simulator) Run(eventBudget int64) error {
	if eventBudget <= 0 {
		return fmt.Errorf("event budget must be positive, got %d", eventBudget)
	}

	for processed := int64(0); processed < eventBudget; processed++ {
		ev := sim.EventQueue.PopNext()
		if ev == nil {
			break
		}
		// advance the clock, then process the event
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%010.4f] executing %s event", sim.Clock, ev.Type())
		ev.Execute(sim)
		sim.EventsProcessed++
	}

	sim.finalize()
	logrus.Infof("[t=%010.4f] run ended after %d events", sim.Clock, sim.EventsProcessed)
	return nil
}

// finalize integrates every station's busy time up to the current clock.
func (sim *Simulator) finalize() {
	for _, st := range sim.stations {
		st.stats.Accumulate(sim.Clock, st.busyCount())
	}
}

// Report produces a point-in-time snapshot of derived metrics for every
// station. Safe to call mid-run: it checkpoints the busy-time integral at the
// current clock without disturbing any run state.
func (sim *Simulator) Report() *Report {
	stations := make(map[string]StationReport, len(sim.stations))
	for _, st := range sim.stations {
		st.stats.Accumulate(sim.Clock, st.busyCount())
		stations[st.Name] = StationReport{
			MeanWait:       st.stats.MeanWait(),
			Utilization:    st.stats.Utilization(sim.Clock, st.Servers),
			TotalCustomers: st.stats.TotalCustomers,
		}
	}
	return &Report{
		RunID:           sim.runID,
		ElapsedHours:    sim.Clock,
		EventsProcessed: sim.EventsProcessed,
		Stations:        stations,
	}
}

// handleArrival processes an ArrivalEvent: seize the lowest-index free server
// slot or join the wait queue, then unconditionally schedule the station's
// next arrival.
func (sim *Simulator) handleArrival(e *ArrivalEvent) {
	st := sim.station(e.Station)
	t := e.Timestamp()
	st.stats.TotalCustomers++

	if slot, ok := st.freeSlot(); ok {
		// Integrate with the busy count that was in effect during the elapsed
		// interval, then mark the slot busy.
		st.stats.Accumulate(t, st.busyCount())
		st.busy[slot] = true
		st.occupant[slot] = e.Customer

		// Service starts now. Wait time is charged strictly at the moment a
		// customer's own service begins, so a seizing customer is charged 0
		// here by construction.
		st.waitStart[e.Customer] = t
		sim.chargeWait(st, e.Customer, t)

		dur := st.ServiceSampler.Sample()
		sim.Schedule(NewDepartureEvent(t+dur, st.Name, slot, e.Customer))
		logrus.Debugf("<< arrival station=%s: customer %d seized server %d until t=%.4f", st.Name, e.Customer, slot, t+dur)
		sim.appendTrace(fmt.Sprintf("arrival station=%s: customer %d seized server %d", st.Name, e.Customer, slot))
	} else {
		st.waitQ.Enqueue(e.Customer)
		st.waitStart[e.Customer] = t
		logrus.Debugf("<< arrival station=%s: customer %d queued at position %d", st.Name, e.Customer, st.waitQ.Len())
		sim.appendTrace(fmt.Sprintf("arrival station=%s: customer %d queued (queue length %d)", st.Name, e.Customer, st.waitQ.Len()))
	}

	// Arrivals perpetually reschedule themselves; the next id comes from the
	// station-owned counter.
	sim.Schedule(NewArrivalEvent(t+st.ArrivalSampler.Sample(), st.Name, st.mintCustomerID()))
}

// handleDeparture processes a DepartureEvent: record the completed service,
// then either hand the slot to the head of the wait queue or free it.
func (sim *Simulator) handleDeparture(e *DepartureEvent) {
	st := sim.station(e.Station)
	t := e.Timestamp()

	// A departure must name the customer its slot is actually serving;
	// anything else means the event list is corrupt.
	if e.Slot < 0 || e.Slot >= st.Servers || !st.busy[e.Slot] || st.occupant[e.Slot] != e.Customer {
		panic(fmt.Sprintf("departure for station %s slot %d customer %d does not match server state", st.Name, e.Slot, e.Customer))
	}

	logrus.Debugf(">> departure station=%s: customer %d left server %d", st.Name, e.Customer, e.Slot)
	sim.appendTrace(fmt.Sprintf("departure station=%s: customer %d completed on server %d", st.Name, e.Customer, e.Slot))

	if next, ok := st.waitQ.Dequeue(); ok {
		// FIFO promotion: the slot stays busy throughout, so the busy count is
		// unchanged and no integration step fires.
		waited := sim.chargeWait(st, next, t)
		st.occupant[e.Slot] = next
		dur := st.ServiceSampler.Sample()
		sim.Schedule(NewDepartureEvent(t+dur, st.Name, e.Slot, next))
		sim.appendTrace(fmt.Sprintf("service start station=%s: customer %d waited %.4f h, seized server %d", st.Name, next, waited, e.Slot))
	} else {
		st.stats.Accumulate(t, st.busyCount())
		st.busy[e.Slot] = false
		st.occupant[e.Slot] = -1
	}
}

// chargeWait accumulates a customer's wait-to-service-start duration at the
// moment its service begins and consumes the wait-start entry, so no later
// event can charge the same customer twice.
func (sim *Simulator) chargeWait(st *Station, customer int64, serviceStart float64) float64 {
	start, ok := st.waitStart[customer]
	if !ok {
		panic(fmt.Sprintf("station %s: no wait-start recorded for customer %d", st.Name, customer))
	}
	delete(st.waitStart, customer)
	waited := serviceStart - start
	st.stats.TotalWaitTime += waited
	return waited
}

// station resolves an event's station name. Events are minted only inside the
// engine, so a miss is event-list corruption.
func (sim *Simulator) station(name string) *Station {
	st, ok := sim.stationsByName[name]
	if !ok {
		panic(fmt.Sprintf("event references unknown station %q", name))
	}
	return st
}

// appendTrace snapshots the system state after the current event.
func (sim *Simulator) appendTrace(description string) {
	queueLengths := make(map[string]int, len(sim.stations))
	busy := 0
	for _, st := range sim.stations {
		queueLengths[st.Name] = st.waitQ.Len()
		busy += st.busyCount()
	}
	sim.Trace.Append(trace.Record{
		Time:         sim.Clock,
		Description:  description,
		QueueLengths: queueLengths,
		BusyServers:  busy,
	})
}
