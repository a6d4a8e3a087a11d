// Waitlist routing for customers who find no idle server on arrival.

package sim

import (
	"fmt"

	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// RoutingDecision is the outcome of waitlist routing.
type RoutingDecision struct {
	Target     *Server // chosen server; nil when the customer must leave
	Reason     string
	Candidates []trace.CandidateQueue // every eligible slot with its queue length at decision time
}

// Admitted reports whether a server was chosen.
func (d RoutingDecision) Admitted() bool {
	return d.Target != nil
}

// RouteWaitList picks the server c waitlists at, dispatching on c.Policy.
// Only the roster's eligible slots are considered.
func RouteWaitList(r *Roster, c Customer) RoutingDecision {
	eligible := r.Eligible()
	candidates := make([]trace.CandidateQueue, 0, len(eligible))
	for _, s := range eligible {
		candidates = append(candidates, trace.CandidateQueue{
			ServerID:    s.ID,
			QueueLength: r.Queue(s).Len(),
			HasCapacity: r.CanWaitList(s),
		})
	}

	var d RoutingDecision
	switch c.Policy {
	case PolicyGreedy:
		d = routeGreedy(r, eligible)
	case PolicyTypical:
		d = routeTypical(r, eligible)
	default:
		panic(fmt.Sprintf("RouteWaitList: unknown customer policy %q", c.Policy))
	}
	d.Candidates = candidates
	return d
}

// routeTypical takes the first eligible server with spare capacity.
func routeTypical(r *Roster, eligible []*Server) RoutingDecision {
	for _, s := range eligible {
		if r.CanWaitList(s) {
			return RoutingDecision{Target: s, Reason: fmt.Sprintf("first-with-capacity (queue=%d)", r.Queue(s).Len())}
		}
	}
	return RoutingDecision{Reason: "all queues full"}
}

// routeGreedy takes the eligible server whose queue is strictly shortest;
// on equal lengths the earlier server in roster order is kept.
func routeGreedy(r *Roster, eligible []*Server) RoutingDecision {
	var best *Server
	bestLen := 0
	for _, s := range eligible {
		if !r.CanWaitList(s) {
			continue
		}
		n := r.Queue(s).Len()
		if best == nil || n < bestLen {
			best, bestLen = s, n
		}
	}
	if best == nil {
		return RoutingDecision{Reason: "all queues full"}
	}
	return RoutingDecision{Target: best, Reason: fmt.Sprintf("shortest-queue (queue=%d)", bestLen)}
}
