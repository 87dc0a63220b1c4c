package sim

import "math/rand"

// DurationSampler generates durations in simulated hours.
// Implementations are pure apart from consuming randomness.
type DurationSampler interface {
	// Sample returns the next duration. Always positive.
	Sample() float64
}

// ExponentialSampler draws exponentially-distributed durations with a fixed
// rate (events per hour). Inter-arrival times drawn this way make arrivals a
// Poisson process; service times drawn this way make each server an
// exponential server.
type ExponentialSampler struct {
	rate float64
	rng  *rand.Rand
}

// NewExponentialSampler creates a sampler for the given rate, backed by its
// own deterministic RNG stream. The rate must be positive; configuration
// validation rejects non-positive rates before a sampler is ever built.
func NewExponentialSampler(rate float64, rng *rand.Rand) *ExponentialSampler {
	return &ExponentialSampler{rate: rate, rng: rng}
}

func (s *ExponentialSampler) Sample() float64 {
	return s.rng.ExpFloat64() / s.rate
}

// FixedSampler always returns the same duration. Substituted for the
// stochastic samplers in deterministic scenario tests.
type FixedSampler struct {
	Duration float64
}

func (s FixedSampler) Sample() float64 {
	return s.Duration
}

// SequenceSampler replays a fixed list of durations in order; once exhausted
// it keeps returning the last element.
type SequenceSampler struct {
	Durations []float64
	next      int
}

func (s *SequenceSampler) Sample() float64 {
	if len(s.Durations) == 0 {
		panic("SequenceSampler: no durations configured")
	}
	d := s.Durations[s.next]
	if s.next < len(s.Durations)-1 {
		s.next++
	}
	return d
}
