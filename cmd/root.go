package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stationsim/stationsim/sim"
)

var (
	// CLI flags for the simulation run
	configFile  string // Path to the YAML station configuration
	eventBudget int64  // Number of events to process
	seed        int64  // Master seed; overrides the config seed when set
	logLevel    string // Log verbosity level
	output      string // Report format: text or json
	traceStart  int    // First trace record to display
	traceCount  int    // Number of trace records to display (0 = none)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "stationsim",
	Short: "Discrete-event simulator for multi-station queueing systems",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := sim.LoadConfig(configFile)
		if err != nil {
			logrus.Fatalf("Unable to read simulation config: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}

		logrus.Infof("Starting simulation with %d stations, budget=%d events, seed=%d",
			len(cfg.Stations), eventBudget, cfg.Seed)

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Unable to construct simulator: %v", err)
		}
		if err := s.Run(eventBudget); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		report := s.Report()
		switch output {
		case "json":
			data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
			if err != nil {
				logrus.Fatalf("Unable to serialize report: %v", err)
			}
			fmt.Println(string(data))
		case "text":
			report.Print()
		default:
			logrus.Fatalf("Unknown output format %q; valid: text, json", output)
		}

		if traceCount > 0 {
			records, err := s.Trace.Range(traceStart, traceCount)
			if err != nil {
				// A bad range is local to this query; the report above is
				// already complete.
				fmt.Fprintf(os.Stderr, "trace query failed: %v\n", err)
				return
			}
			fmt.Println()
			fmt.Printf("=== Trace [%d, %d) of %d ===\n", traceStart, traceStart+len(records), s.Trace.Len())
			for i, r := range records {
				fmt.Printf("%6d  t=%010.4f  busy=%d  %s\n", traceStart+i, r.Time, r.BusyServers, r.Description)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to station configuration file")
	runCmd.Flags().Int64VarP(&eventBudget, "events", "e", 10000, "Event budget: number of events to process")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed (overrides the config file seed)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")
	runCmd.Flags().StringVarP(&output, "output", "o", "text", "Report format: text or json")
	runCmd.Flags().IntVar(&traceStart, "trace-start", 0, "First trace record index to display")
	runCmd.Flags().IntVar(&traceCount, "trace-count", 0, "Number of trace records to display (0 disables)")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
