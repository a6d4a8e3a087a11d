package trace

// Event kinds and state verbs as recorded by the simulator.
const (
	kindRest     = "rest"
	stateServed  = "served by"
	stateWaits   = "waits to be served by"
	stateLeaves  = "leaves"
	stateDone    = "done serving by"
	stateArrives = "arrives"
)

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents        int         `yaml:"total_events"`
	Arrivals           int         `yaml:"arrivals"`
	ServiceStarts      int         `yaml:"service_starts"`
	Waits              int         `yaml:"waits"`
	Leaves             int         `yaml:"leaves"`
	Completions        int         `yaml:"completions"`
	Rests              int         `yaml:"rests"`
	RoutingDecisions   int         `yaml:"routing_decisions"`
	MaxQueueAtDecision int         `yaml:"max_queue_at_decision"`
	ServerCompletions  map[int]int `yaml:"server_completions"` // server ID → completed services
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ServerCompletions: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		if e.Kind == kindRest {
			summary.Rests++
			continue
		}
		switch e.State {
		case stateArrives:
			summary.Arrivals++
		case stateServed:
			summary.ServiceStarts++
		case stateWaits:
			summary.Waits++
		case stateLeaves:
			summary.Leaves++
		case stateDone:
			summary.Completions++
			summary.ServerCompletions[e.ServerID]++
		}
	}

	summary.RoutingDecisions = len(st.Routings)
	for _, r := range st.Routings {
		for _, c := range r.Candidates {
			if c.QueueLength > summary.MaxQueueAtDecision {
				summary.MaxQueueAtDecision = c.QueueLength
			}
		}
	}

	return summary
}
