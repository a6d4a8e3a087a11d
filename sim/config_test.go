package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimConfig_Validate_AcceptsValidConfig(t *testing.T) {
	cfg := goldenConfig(1, 2, 1, 2, 20, 1.0, 1.0, 0.1, 0.5, 0.5)
	assert.NoError(t, cfg.Validate())
}

func TestSimConfig_Validate_AcceptsZeroRatesWhenUnused(t *testing.T) {
	// GIVEN no customers and no resting
	cfg := SimConfig{Roster: RosterConfig{NumHumanServers: 1}}

	// THEN zero rates are fine
	assert.NoError(t, cfg.Validate())
}

func TestSimConfig_Validate_RejectsBadValues(t *testing.T) {
	base := goldenConfig(1, 2, 1, 2, 20, 1.0, 1.0, 0.1, 0.5, 0.5)
	tests := []struct {
		name    string
		mutate  func(*SimConfig)
		wantErr string
	}{
		{"negative humans", func(c *SimConfig) { c.Roster.NumHumanServers = -1 }, "roster.human_servers"},
		{"negative self-checkouts", func(c *SimConfig) { c.Roster.NumSelfCheckouts = -2 }, "roster.self_checkouts"},
		{"negative capacity", func(c *SimConfig) { c.Roster.MaxQueueLength = -1 }, "roster.max_queue_length"},
		{"negative customers", func(c *SimConfig) { c.Workload.NumCustomers = -5 }, "workload.customers"},
		{"negative arrival rate", func(c *SimConfig) { c.Workload.ArrivalRate = -1 }, "workload.arrival_rate"},
		{"zero arrival rate with customers", func(c *SimConfig) { c.Workload.ArrivalRate = 0 }, "workload.arrival_rate"},
		{"zero service rate with customers", func(c *SimConfig) { c.Workload.ServiceRate = 0 }, "workload.service_rate"},
		{"infinite rest rate", func(c *SimConfig) { c.Rest.RestRate = math.Inf(1) }, "rest.rest_rate"},
		{"zero rest rate with resting", func(c *SimConfig) { c.Rest.RestRate = 0 }, "rest.rest_rate"},
		{"greedy probability above 1", func(c *SimConfig) { c.Workload.GreedyProbability = 1.5 }, "workload.greedy_probability"},
		{"negative rest probability", func(c *SimConfig) { c.Rest.RestProbability = -0.1 }, "rest.rest_probability"},
		{"NaN probability", func(c *SimConfig) { c.Rest.RestProbability = math.NaN() }, "rest.rest_probability"},
		{"unknown rng", func(c *SimConfig) { c.RNG = "mersenne" }, "unknown rng family"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSimConfig_Validate_ZeroRestRateAllowedWithoutHumans(t *testing.T) {
	cfg := goldenConfig(1, 0, 2, 1, 10, 1.0, 1.0, 0, 0.8, 0)
	assert.NoError(t, cfg.Validate())
}
