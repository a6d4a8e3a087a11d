package sim

import "testing"

// scriptedProcess is a RandomProcess that replays fixed draws per stream.
// When a stream runs out, its last value repeats; an empty stream panics so
// that an unexpected draw fails the test loudly.
type scriptedProcess struct {
	interArrival []float64
	service      []float64
	rest         []float64
	customerType []float64
	restOccurs   []float64

	calls map[string]int
}

func (p *scriptedProcess) draw(name string, vals []float64) float64 {
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	if len(vals) == 0 {
		panic("scriptedProcess: unexpected draw from " + name)
	}
	i := p.calls[name]
	p.calls[name]++
	if i >= len(vals) {
		return vals[len(vals)-1]
	}
	return vals[i]
}

func (p *scriptedProcess) NextInterArrivalTime() float64 {
	return p.draw("interArrival", p.interArrival)
}
func (p *scriptedProcess) NextServiceTime() float64 { return p.draw("service", p.service) }
func (p *scriptedProcess) NextRestDuration() float64 { return p.draw("rest", p.rest) }
func (p *scriptedProcess) NextCustomerTypeDraw() float64 {
	return p.draw("customerType", p.customerType)
}
func (p *scriptedProcess) NextRestOccursDraw() float64 {
	return p.draw("restOccurs", p.restOccurs)
}

// testConfig returns a valid config; callers override the fields they need.
func testConfig(humans, selfs, maxQ, customers int) SimConfig {
	return SimConfig{
		Seed: 1,
		RNG:  RNGLCG48,
		Roster: RosterConfig{
			NumHumanServers:  humans,
			NumSelfCheckouts: selfs,
			MaxQueueLength:   maxQ,
		},
		Workload: WorkloadConfig{
			NumCustomers: customers,
			ArrivalRate:  1.0,
			ServiceRate:  1.0,
		},
		Rest: RestConfig{RestRate: 1.0},
	}
}

// runAndCollect runs sim to completion and returns every processed event.
func runAndCollect(t *testing.T, s *Simulator) []Event {
	t.Helper()
	var events []Event
	s.Run(func(ev Event) { events = append(events, ev) })
	return events
}

// visibleLines renders the printed trace (REST/BACK excluded).
func visibleLines(events []Event) []string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		if !ev.IsInternal() {
			lines = append(lines, ev.String())
		}
	}
	return lines
}
