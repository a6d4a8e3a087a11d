package sim

import (
	"fmt"
	"math"
)

// RosterConfig groups the checkout points built at simulation start.
type RosterConfig struct {
	NumHumanServers  int `yaml:"human_servers"`    // human servers, first in roster order
	NumSelfCheckouts int `yaml:"self_checkouts"`   // self-checkout machines sharing one queue
	MaxQueueLength   int `yaml:"max_queue_length"` // waitlist capacity, excluding the customer in service
}

// WorkloadConfig groups customer generation parameters.
type WorkloadConfig struct {
	NumCustomers      int     `yaml:"customers"`
	ArrivalRate       float64 `yaml:"arrival_rate"`       // customers per unit time
	ServiceRate       float64 `yaml:"service_rate"`       // services per unit time
	GreedyProbability float64 `yaml:"greedy_probability"` // chance a new customer is greedy
}

// RestConfig groups human-server break parameters.
type RestConfig struct {
	RestRate        float64 `yaml:"rest_rate"`        // breaks end at this rate
	RestProbability float64 `yaml:"rest_probability"` // chance a human server rests after a service
}

// SimConfig is the full parameter set of one simulation run.
type SimConfig struct {
	Seed     int64          `yaml:"seed"`
	RNG      RNGFamily      `yaml:"rng"`
	Roster   RosterConfig   `yaml:"roster"`
	Workload WorkloadConfig `yaml:"workload"`
	Rest     RestConfig     `yaml:"rest"`
}

// Validate rejects parameter sets the simulator must not start with.
func (c SimConfig) Validate() error {
	if !IsValidRNGFamily(string(c.RNG)) {
		return fmt.Errorf("unknown rng family %q; valid: lcg48, partitioned", c.RNG)
	}
	if err := validateNonNegativeInt("roster.human_servers", c.Roster.NumHumanServers); err != nil {
		return err
	}
	if err := validateNonNegativeInt("roster.self_checkouts", c.Roster.NumSelfCheckouts); err != nil {
		return err
	}
	if err := validateNonNegativeInt("roster.max_queue_length", c.Roster.MaxQueueLength); err != nil {
		return err
	}
	if err := validateNonNegativeInt("workload.customers", c.Workload.NumCustomers); err != nil {
		return err
	}
	rates := []struct {
		name string
		val  float64
	}{
		{"workload.arrival_rate", c.Workload.ArrivalRate},
		{"workload.service_rate", c.Workload.ServiceRate},
		{"rest.rest_rate", c.Rest.RestRate},
	}
	for _, r := range rates {
		if err := validateFiniteNonNegative(r.name, r.val); err != nil {
			return err
		}
	}
	if err := validateProbability("workload.greedy_probability", c.Workload.GreedyProbability); err != nil {
		return err
	}
	if err := validateProbability("rest.rest_probability", c.Rest.RestProbability); err != nil {
		return err
	}
	if c.Workload.NumCustomers > 0 {
		if c.Workload.ArrivalRate <= 0 {
			return fmt.Errorf("workload.arrival_rate must be positive when customers > 0, got %f", c.Workload.ArrivalRate)
		}
		if c.Workload.ServiceRate <= 0 {
			return fmt.Errorf("workload.service_rate must be positive when customers > 0, got %f", c.Workload.ServiceRate)
		}
	}
	if c.Rest.RestProbability > 0 && c.Roster.NumHumanServers > 0 && c.Rest.RestRate <= 0 {
		return fmt.Errorf("rest.rest_rate must be positive when rest.rest_probability > 0, got %f", c.Rest.RestRate)
	}
	return nil
}

func validateNonNegativeInt(name string, val int) error {
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %d", name, val)
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}

func validateProbability(name string, val float64) error {
	if math.IsNaN(val) || val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}
