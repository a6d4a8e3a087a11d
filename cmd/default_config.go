package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/checkout-sim/checkout-sim/sim"
)

// defaultSimConfig is the parameter set used when neither a file, stdin nor
// flags provide a value.
func defaultSimConfig() sim.SimConfig {
	return sim.SimConfig{
		Seed: 42,
		RNG:  sim.RNGLCG48,
		Roster: sim.RosterConfig{
			NumHumanServers:  2,
			NumSelfCheckouts: 1,
			MaxQueueLength:   2,
		},
		Workload: sim.WorkloadConfig{
			NumCustomers:      20,
			ArrivalRate:       1.0,
			ServiceRate:       1.0,
			GreedyProbability: 0.5,
		},
		Rest: sim.RestConfig{
			RestRate:        0.1,
			RestProbability: 0.5,
		},
	}
}

// loadSimConfig parses a YAML parameter file on top of the defaults.
// Fields absent from the file keep their default. Unknown keys are errors.
func loadSimConfig(path string) (sim.SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg := defaultSimConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return sim.SimConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
