package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StationConfig is one station's fixed parameters, read-only for a run.
type StationConfig struct {
	Name        string  `yaml:"name"`
	ArrivalRate float64 `yaml:"arrival_rate"` // customers per hour, > 0
	ServiceRate float64 `yaml:"service_rate"` // customers per hour per server, > 0
	Servers     int     `yaml:"servers"`      // server pool size, > 0
}

// Config is the engine construction input, loadable from a YAML file.
type Config struct {
	Seed     int64           `yaml:"seed"`
	Stations []StationConfig `yaml:"stations"`
}

// LoadConfig reads and parses a YAML simulation configuration file and
// validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration. It fails fast: NewSimulator refuses to
// schedule any event for an invalid configuration.
func (c *Config) Validate() error {
	if len(c.Stations) == 0 {
		return fmt.Errorf("at least one station required")
	}
	seen := make(map[string]bool, len(c.Stations))
	for i, s := range c.Stations {
		prefix := fmt.Sprintf("station[%d]", i)
		if s.Name == "" {
			return fmt.Errorf("%s: name must not be empty", prefix)
		}
		if seen[s.Name] {
			return fmt.Errorf("%s: duplicate station name %q", prefix, s.Name)
		}
		seen[s.Name] = true
		if s.ArrivalRate <= 0 {
			return fmt.Errorf("%s (%s): arrival_rate must be positive, got %f", prefix, s.Name, s.ArrivalRate)
		}
		if s.ServiceRate <= 0 {
			return fmt.Errorf("%s (%s): service_rate must be positive, got %f", prefix, s.Name, s.ServiceRate)
		}
		if s.Servers <= 0 {
			return fmt.Errorf("%s (%s): servers must be positive, got %d", prefix, s.Name, s.Servers)
		}
	}
	return nil
}
