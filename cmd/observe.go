package cmd

import (
	"fmt"
	"io"
	"sort"

	sim "github.com/checkout-sim/checkout-sim/sim"
	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// tracePrinter writes one line per customer-visible event. Server-only
// REST and BACK events are skipped. The first write error stops output and
// is kept for Err.
type tracePrinter struct {
	w   io.Writer
	err error
}

func newTracePrinter(w io.Writer) *tracePrinter {
	return &tracePrinter{w: w}
}

// Observe is passed to Simulator.Run.
func (p *tracePrinter) Observe(ev sim.Event) {
	if p.err != nil || ev.IsInternal() {
		return
	}
	_, p.err = fmt.Fprintln(p.w, ev)
}

func (p *tracePrinter) Err() error {
	return p.err
}

// printSummary writes the trace summary as a short table.
func printSummary(w io.Writer, s *trace.TraceSummary) error {
	rows := []struct {
		label string
		value int
	}{
		{"Arrivals", s.Arrivals},
		{"Service starts", s.ServiceStarts},
		{"Waitlisted", s.Waits},
		{"Left", s.Leaves},
		{"Completions", s.Completions},
		{"Rests", s.Rests},
		{"Routing decisions", s.RoutingDecisions},
		{"Max queue at decision", s.MaxQueueAtDecision},
	}
	if _, err := fmt.Fprintln(w, "=== Trace Summary ==="); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-22s: %d\n", r.label, r.value); err != nil {
			return err
		}
	}

	ids := make([]int, 0, len(s.ServerCompletions))
	for id := range s.ServerCompletions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "  server %d completions: %d\n", id, s.ServerCompletions[id]); err != nil {
			return err
		}
	}
	return nil
}
