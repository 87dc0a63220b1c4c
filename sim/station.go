package sim

// Station holds one independent service line: its fixed configuration and the
// mutable runtime state the event handlers operate on. All state is created at
// engine construction and lives for the whole run.
type Station struct {
	Name        string
	ArrivalRate float64 // lambda, customers per hour
	ServiceRate float64 // mu, customers per hour per server
	Servers     int     // c, size of the server pool

	// ArrivalSampler and ServiceSampler feed the event generators. They are
	// exported so tests can substitute deterministic samplers for the
	// exponential defaults.
	ArrivalSampler DurationSampler
	ServiceSampler DurationSampler

	busy     []bool  // busy[k] reports whether server slot k is serving
	occupant []int64 // customer currently on slot k; -1 when the slot is idle
	waitQ    *WaitQueue
	// waitStart maps a customer id to the simulated time it began waiting.
	// Recorded for every arriving customer (an immediately seized customer's
	// entry equals its service-start time) and consumed the moment the
	// customer's own service begins.
	waitStart map[int64]float64

	// nextCustomerID is the station-owned running counter that mints arrival
	// ids. Ids are unique per station, not globally.
	nextCustomerID int64

	stats *StationStats
}

func newStation(cfg StationConfig, arrival, service DurationSampler) *Station {
	st := &Station{
		Name:           cfg.Name,
		ArrivalRate:    cfg.ArrivalRate,
		ServiceRate:    cfg.ServiceRate,
		Servers:        cfg.Servers,
		ArrivalSampler: arrival,
		ServiceSampler: service,
		busy:           make([]bool, cfg.Servers),
		occupant:       make([]int64, cfg.Servers),
		waitQ:          &WaitQueue{},
		waitStart:      make(map[int64]float64),
		stats:          &StationStats{},
	}
	for k := range st.occupant {
		st.occupant[k] = -1
	}
	return st
}

// mintCustomerID returns the next arrival id and advances the counter.
func (st *Station) mintCustomerID() int64 {
	id := st.nextCustomerID
	st.nextCustomerID++
	return id
}

// freeSlot returns the lowest-index idle server slot. The lowest-index policy
// is the slot tie-break: not load-balanced, not randomized.
func (st *Station) freeSlot() (int, bool) {
	for k := range st.busy {
		if !st.busy[k] {
			return k, true
		}
	}
	return 0, false
}

// busyCount returns the number of busy server slots.
func (st *Station) busyCount() int {
	n := 0
	for _, b := range st.busy {
		if b {
			n++
		}
	}
	return n
}

// QueueLen returns the number of customers currently waiting.
func (st *Station) QueueLen() int {
	return st.waitQ.Len()
}

// Stats exposes the station's statistics accumulator for read access.
func (st *Station) Stats() *StationStats {
	return st.stats
}
