// Package trace provides the append-only state-snapshot log of a simulation
// run. This package has no dependencies on sim/ — it stores pure data types.
package trace

// Record captures the system state right after one event was processed.
type Record struct {
	Time         float64        // simulated hours
	Description  string         // human-readable account of the transition
	QueueLengths map[string]int // waiting customers per station
	BusyServers  int            // busy server slots summed across all stations
}
