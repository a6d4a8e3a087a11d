package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	sim "github.com/checkout-sim/checkout-sim/sim"
	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// RunReport is the YAML document written by --report.
type RunReport struct {
	RunID          string              `yaml:"run_id"`
	GeneratedAt    string              `yaml:"generated_at"`
	Parameters     sim.SimConfig       `yaml:"parameters"`
	Statistics     sim.Statistics      `yaml:"statistics"`
	AvgWaitingTime float64             `yaml:"avg_waiting_time"`
	Summary        *trace.TraceSummary `yaml:"summary"`
}

func newRunReport(cfg sim.SimConfig, stats sim.Statistics, summary *trace.TraceSummary) RunReport {
	return RunReport{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Parameters:     cfg,
		Statistics:     stats,
		AvgWaitingTime: stats.AvgWaitingTime(),
		Summary:        summary,
	}
}

// writeReport marshals the report and writes it to path.
func writeReport(path string, r RunReport) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
