package cmd

import (
	"bufio"
	"fmt"
	"io"

	sim "github.com/checkout-sim/checkout-sim/sim"
)

// readStdinParams reads the ten whitespace-separated positional parameters
// seed humans selfs maxQ customers arrivalRate serviceRate restRate restProb greedyProb
// into cfg. All ten are required.
func readStdinParams(r io.Reader, cfg *sim.SimConfig) error {
	var p sim.SimConfig
	p.RNG = cfg.RNG
	fields := []struct {
		name string
		dst  any
	}{
		{"seed", &p.Seed},
		{"humans", &p.Roster.NumHumanServers},
		{"selfs", &p.Roster.NumSelfCheckouts},
		{"maxQ", &p.Roster.MaxQueueLength},
		{"customers", &p.Workload.NumCustomers},
		{"arrivalRate", &p.Workload.ArrivalRate},
		{"serviceRate", &p.Workload.ServiceRate},
		{"restRate", &p.Rest.RestRate},
		{"restProb", &p.Rest.RestProbability},
		{"greedyProb", &p.Workload.GreedyProbability},
	}
	br := bufio.NewReader(r)
	for i, f := range fields {
		if _, err := fmt.Fscan(br, f.dst); err != nil {
			return fmt.Errorf("reading stdin parameter %d (%s): %w", i+1, f.name, err)
		}
	}
	*cfg = p
	return nil
}
