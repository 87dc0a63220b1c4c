// Tracks per-station statistics accumulated by the event handlers and the
// derived metrics (mean wait, utilization) reported at the end of a run.

package sim

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// StationStats accumulates one station's raw counters. One instance per
// station, owned by the Station itself, so every busy-count transition updates
// the same record through an explicit reference instead of a keyed lookup.
type StationStats struct {
	TotalCustomers int64   // arrivals processed
	TotalWaitTime  float64 // sum of per-customer wait-to-service-start durations, hours
	TotalBusyTime  float64 // time-integral of the busy-server count, server-hours
	// LastStateChangeTime is the simulated time of the last busy-count change.
	// TotalBusyTime is only correct if Accumulate runs on every change.
	LastStateChangeTime float64
}

// Accumulate advances the busy-time integral to now, charging busyCount
// servers for the interval since the last state change. It must be called with
// the busy count in effect DURING the elapsed interval, i.e. before any
// busy-count mutation, and once more at run end to close the open interval.
// Calling it with an unchanged busy count is a pure checkpoint and never skews
// the integral, which is what makes mid-run snapshots safe.
func (s *StationStats) Accumulate(now float64, busyCount int) {
	s.TotalBusyTime += (now - s.LastStateChangeTime) * float64(busyCount)
	s.LastStateChangeTime = now
}

// MeanWait returns the average wait-to-service-start in hours.
// Returns 0 when no customers have been processed.
func (s *StationStats) MeanWait() float64 {
	if s.TotalCustomers == 0 {
		return 0
	}
	return s.TotalWaitTime / float64(s.TotalCustomers)
}

// Utilization returns the fraction of server-time spent busy over the elapsed
// simulated time, in [0, 1]. Returns 0 when elapsed time or server count is 0.
func (s *StationStats) Utilization(elapsed float64, servers int) float64 {
	if elapsed <= 0 || servers <= 0 {
		return 0
	}
	return s.TotalBusyTime / (elapsed * float64(servers))
}

// StationReport is the per-station projection handed to presentation layers.
type StationReport struct {
	MeanWait       float64 `json:"mean_wait_hours"`
	Utilization    float64 `json:"utilization"`
	TotalCustomers int64   `json:"total_customers"`
}

// Report is a point-in-time snapshot of derived metrics for every station.
// It is recomputed from the accumulated totals on every call, never cached.
type Report struct {
	RunID           uuid.UUID                `json:"run_id"`
	ElapsedHours    float64                  `json:"elapsed_hours"`
	EventsProcessed int64                    `json:"events_processed"`
	Stations        map[string]StationReport `json:"stations"`
}

// Print displays the report as a plain-text table.
func (r *Report) Print() {
	fmt.Println("=== Simulation Report ===")
	fmt.Printf("Run ID           : %s\n", r.RunID)
	fmt.Printf("Elapsed          : %.4f h\n", r.ElapsedHours)
	fmt.Printf("Events processed : %d\n", r.EventsProcessed)
	fmt.Println()
	fmt.Printf("%-16s %12s %12s %12s\n", "Station", "Customers", "MeanWait(h)", "Util(%)")

	names := make([]string, 0, len(r.Stations))
	for name := range r.Stations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sr := r.Stations[name]
		fmt.Printf("%-16s %12d %12.4f %12.2f\n", name, sr.TotalCustomers, sr.MeanWait, sr.Utilization*100)
	}
}
