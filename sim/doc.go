// Package sim provides the core discrete-event simulation engine for a
// multi-station queueing system.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the closed set of event variants (Arrival, Departure) that drive the simulation
//   - eventqueue.go: the future-event list, a stable min-heap ordered by timestamp
//   - simulator.go: the event loop and the arrival/departure handlers
//
// # Architecture
//
// A Simulator owns a logical clock, the future-event list, one Station per
// configured service line, and the per-station statistics. Stochastic behavior
// comes from DurationSampler implementations (sampler.go) seeded through a
// PartitionedRNG (rng.go), so a run is bit-for-bit reproducible given a seed.
// Snapshots of every processed event are appended to a sim/trace Log for
// post-hoc inspection.
//
// The simulated concurrency (many customers, many servers) is expressed purely
// through the event list; the engine itself is single-threaded and a Simulator
// must not be shared across goroutines.
package sim
