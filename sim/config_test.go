package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_Valid(t *testing.T) {
	cfg := &Config{
		Seed: 42,
		Stations: []StationConfig{
			{Name: "teller", ArrivalRate: 10, ServiceRate: 20, Servers: 1},
			{Name: "loans", ArrivalRate: 4, ServiceRate: 3, Servers: 2},
		},
	}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no stations",
			cfg:     Config{},
			wantErr: "at least one station",
		},
		{
			name: "empty name",
			cfg: Config{Stations: []StationConfig{
				{Name: "", ArrivalRate: 1, ServiceRate: 1, Servers: 1},
			}},
			wantErr: "name must not be empty",
		},
		{
			name: "duplicate name",
			cfg: Config{Stations: []StationConfig{
				{Name: "teller", ArrivalRate: 1, ServiceRate: 1, Servers: 1},
				{Name: "teller", ArrivalRate: 2, ServiceRate: 2, Servers: 2},
			}},
			wantErr: "duplicate station name",
		},
		{
			name: "zero arrival rate",
			cfg: Config{Stations: []StationConfig{
				{Name: "teller", ArrivalRate: 0, ServiceRate: 1, Servers: 1},
			}},
			wantErr: "arrival_rate must be positive",
		},
		{
			name: "negative service rate",
			cfg: Config{Stations: []StationConfig{
				{Name: "teller", ArrivalRate: 1, ServiceRate: -3, Servers: 1},
			}},
			wantErr: "service_rate must be positive",
		},
		{
			name: "zero servers",
			cfg: Config{Stations: []StationConfig{
				{Name: "teller", ArrivalRate: 1, ServiceRate: 1, Servers: 0},
			}},
			wantErr: "servers must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	// GIVEN a configuration file on disk
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `seed: 7
stations:
  - name: teller
    arrival_rate: 10.0
    service_rate: 20.0
    servers: 1
  - name: loans
    arrival_rate: 4.0
    service_rate: 3.0
    servers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	// WHEN it is loaded
	cfg, err := LoadConfig(path)

	// THEN all fields round-trip
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	require.Len(t, cfg.Stations, 2)
	assert.Equal(t, "teller", cfg.Stations[0].Name)
	assert.Equal(t, 10.0, cfg.Stations[0].ArrivalRate)
	assert.Equal(t, 20.0, cfg.Stations[0].ServiceRate)
	assert.Equal(t, 1, cfg.Stations[0].Servers)
	assert.Equal(t, 2, cfg.Stations[1].Servers)
}

func TestLoadConfig_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `stations:
  - name: teller
    arrival_rate: -1.0
    service_rate: 20.0
    servers: 1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrival_rate must be positive")
}

func TestLoadConfig_MissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading simulation config")
}
