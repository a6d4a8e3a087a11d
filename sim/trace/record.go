// Package trace provides event and routing-decision recording for checkout simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures one processed event, including server-only REST/BACK events.
type EventRecord struct {
	Clock      float64 `yaml:"clock"`
	Kind       string  `yaml:"kind"`                  // "customer", "rest" or "back"
	CustomerID int     `yaml:"customer_id"`           // 0 for REST/BACK
	State      string  `yaml:"state,omitempty"`       // customer state verb; empty for REST/BACK
	ServerID   int     `yaml:"server_id,omitempty"`   // 0 when no server is involved
	ServerKind string  `yaml:"server_kind,omitempty"` // "human" or "self-checkout"
}

// CandidateQueue captures one eligible waitlist slot at decision time.
type CandidateQueue struct {
	ServerID    int  `yaml:"server_id"`
	QueueLength int  `yaml:"queue_length"`
	HasCapacity bool `yaml:"has_capacity"`
}

// RoutingRecord captures the waitlist routing of one arriving customer who
// found no idle server.
type RoutingRecord struct {
	CustomerID     int              `yaml:"customer_id"`
	Clock          float64          `yaml:"clock"`
	Policy         string           `yaml:"policy"`
	ChosenServerID int              `yaml:"chosen_server_id"` // 0 when the customer leaves
	Reason         string           `yaml:"reason"`
	Candidates     []CandidateQueue `yaml:"candidates"`
}
