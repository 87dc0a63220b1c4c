package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationsim/stationsim/sim"
)

func testConfig() *sim.Config {
	return &sim.Config{
		Seed: 1,
		Stations: []sim.StationConfig{
			{Name: "teller", ArrivalRate: 10, ServiceRate: 20, Servers: 1},
			{Name: "loans", ArrivalRate: 4, ServiceRate: 3, Servers: 2},
		},
	}
}

func TestApplyOverride_RewritesOneParameter(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value float64
		check func(t *testing.T, cfg *sim.Config)
	}{
		{
			name:  "arrival rate",
			param: "arrival-rate",
			value: 12.5,
			check: func(t *testing.T, cfg *sim.Config) {
				assert.Equal(t, 12.5, cfg.Stations[0].ArrivalRate)
			},
		},
		{
			name:  "service rate",
			param: "service-rate",
			value: 25,
			check: func(t *testing.T, cfg *sim.Config) {
				assert.Equal(t, 25.0, cfg.Stations[0].ServiceRate)
			},
		},
		{
			name:  "servers",
			param: "servers",
			value: 3,
			check: func(t *testing.T, cfg *sim.Config) {
				assert.Equal(t, 3, cfg.Stations[0].Servers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			require.NoError(t, applyOverride(cfg, "teller", tt.param, tt.value))
			tt.check(t, cfg)
			// The untouched station keeps its parameters
			assert.Equal(t, 4.0, cfg.Stations[1].ArrivalRate)
		})
	}
}

func TestApplyOverride_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		station string
		param   string
		value   float64
		wantErr string
	}{
		{"unknown station", "vault", "arrival-rate", 5, "unknown station"},
		{"unknown parameter", "teller", "queue-depth", 5, "unknown parameter"},
		{"fractional servers", "teller", "servers", 2.5, "must be an integer"},
		{"non-positive result", "teller", "service-rate", -1, "service_rate must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyOverride(testConfig(), tt.station, tt.param, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunOnce_ProducesReport(t *testing.T) {
	// GIVEN a valid config and a small budget
	eventBudget = 100

	// WHEN one run executes
	report, err := runOnce(testConfig())

	// THEN the report covers every configured station
	require.NoError(t, err)
	assert.Len(t, report.Stations, 2)
	assert.Equal(t, int64(100), report.EventsProcessed)
}
