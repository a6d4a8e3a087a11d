package trace

// TraceLevel controls the verbosity of simulation tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every processed event.
	TraceLevelEvents TraceLevel = "events"
	// TraceLevelDecisions captures every processed event and every routing decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelEvents:    true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects records during a simulation.
type SimulationTrace struct {
	Level    TraceLevel
	Events   []EventRecord
	Routings []RoutingRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:    level,
		Events:   make([]EventRecord, 0),
		Routings: make([]RoutingRecord, 0),
	}
}

// RecordEvent appends an event record. No-op at TraceLevelNone.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	if st.Level == TraceLevelNone || st.Level == "" {
		return
	}
	st.Events = append(st.Events, record)
}

// RecordRouting appends a routing decision record. Only kept at TraceLevelDecisions.
func (st *SimulationTrace) RecordRouting(record RoutingRecord) {
	if st.Level != TraceLevelDecisions {
		return
	}
	st.Routings = append(st.Routings, record)
}
