// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/checkout-sim/checkout-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the server
// roster, the statistics and the event loop.
type Simulator struct {
	Clock float64
	// EventQueue has all pending events, ordered by (time, customer id)
	EventQueue EventQueue
	// Trace records processed events and routing decisions when non-nil
	Trace *trace.SimulationTrace

	roster      *Roster
	stats       Statistics
	rp          RandomProcess
	restProb    float64
	greedyProb  float64
	customerIDs customerIDSequence
	arrivals    int
}

// NewSimulator validates cfg, builds the roster and seeds the event queue
// with every arrival drawn from rp.
func NewSimulator(cfg SimConfig, rp RandomProcess) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if rp == nil {
		return nil, fmt.Errorf("random process must not be nil")
	}
	s := &Simulator{
		Clock:      0,
		EventQueue: make(EventQueue, 0, cfg.Workload.NumCustomers),
		roster:     NewRoster(cfg.Roster.NumHumanServers, cfg.Roster.NumSelfCheckouts, cfg.Roster.MaxQueueLength),
		rp:         rp,
		restProb:   cfg.Rest.RestProbability,
		greedyProb: cfg.Workload.GreedyProbability,
	}
	s.generateArrivals(cfg.Workload.NumCustomers)
	return s, nil
}

// generateArrivals pushes all ARRIVES events up front. The first customer
// arrives at t=0; each later one arrives one inter-arrival draw after the
// previous. The customer-type draw precedes the inter-arrival draw.
func (sim *Simulator) generateArrivals(n int) {
	arrivalTime := 0.0
	for i := 0; i < n; i++ {
		policy := PolicyTypical
		if sim.rp.NextCustomerTypeDraw() < sim.greedyProb {
			policy = PolicyGreedy
		}
		c := NewCustomer(sim.customerIDs.next(), arrivalTime, policy)
		sim.Schedule(NewArrivalEvent(c))
		arrivalTime += sim.rp.NextInterArrivalTime()
	}
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Time < sim.Clock {
		panic(fmt.Sprintf("Schedule: event at %f is before clock %f", ev.Time, sim.Clock))
	}
	sim.EventQueue.PushEvent(ev)
}

// HasEvent reports whether any event is pending.
func (sim *Simulator) HasEvent() bool {
	return !sim.EventQueue.Empty()
}

// PeekEvent returns the next event to be processed without removing it.
func (sim *Simulator) PeekEvent() (Event, bool) {
	return sim.EventQueue.PeekMin()
}

// Statistics returns the statistics accumulated so far.
func (sim *Simulator) Statistics() Statistics {
	return sim.stats
}

// ArrivalsProcessed returns how many ARRIVES events have been handled.
func (sim *Simulator) ArrivalsProcessed() int {
	return sim.arrivals
}

// Roster exposes the server roster for inspection.
func (sim *Simulator) Roster() *Roster {
	return sim.roster
}

// Run drains the event queue. observe, when non-nil, is called with each
// event after it has been processed.
func (sim *Simulator) Run(observe func(Event)) {
	logrus.Infof("[t=%.3f] Simulation started with %d pending events", sim.Clock, len(sim.EventQueue))
	for sim.HasEvent() {
		ev, _ := sim.ProcessEvent()
		if observe != nil {
			observe(ev)
		}
	}
	logrus.Infof("[t=%.3f] Simulation ended: %s", sim.Clock, sim.stats)
}

// ProcessEvent pops the earliest event, advances the clock and applies it.
// The boolean is false when there was nothing to process.
func (sim *Simulator) ProcessEvent() (Event, bool) {
	ev, ok := sim.EventQueue.PopMin()
	if !ok {
		return Event{}, false
	}
	sim.Clock = ev.Time
	logrus.Debugf("[t=%.3f] Executing %s", sim.Clock, ev)
	sim.recordEvent(ev)

	switch ev.Kind {
	case EventRest:
		sim.handleRest(ev)
	case EventBack:
		sim.handleBack(ev)
	case EventCustomer:
		sim.handleCustomer(ev)
	default:
		panic(fmt.Sprintf("ProcessEvent: unknown event kind %d", ev.Kind))
	}
	return ev, true
}

func (sim *Simulator) handleCustomer(ev Event) {
	switch ev.Customer.State {
	case StateArrives:
		sim.handleArrival(ev)
	case StateServed:
		sim.handleServed(ev)
	case StateDone:
		sim.handleDone(ev)
	case StateWaits, StateLeaves:
		// WAITS: service is started later by the server's DONE or BACK.
		// LEAVES: terminal.
	default:
		panic(fmt.Sprintf("handleCustomer: unknown customer state %q", ev.Customer.State))
	}
}

// handleArrival tries immediate service in roster order, then waitlist
// routing by the customer's policy, and finally lets the customer leave.
func (sim *Simulator) handleArrival(ev Event) {
	sim.arrivals++
	c := ev.Customer

	if server, ok := sim.roster.FirstIdle(); ok {
		mustTransition("handleArrival", c.State, StateServed)
		next := ev.Transition(StateServed, server)
		sim.roster.Serve(server, next.Customer)
		sim.Schedule(next)
		sim.stats = sim.stats.AddServed()
		return
	}

	d := RouteWaitList(sim.roster, c)
	sim.recordRouting(ev, d)
	logrus.Tracef("[t=%.3f] routing %s (%s): %s", ev.Time, c, c.Policy, d.Reason)
	if d.Admitted() {
		mustTransition("handleArrival", c.State, StateWaits)
		next := ev.Transition(StateWaits, d.Target)
		sim.roster.WaitList(d.Target, next.Customer)
		sim.Schedule(next)
		sim.stats = sim.stats.AddServed()
		return
	}

	mustTransition("handleArrival", c.State, StateLeaves)
	sim.Schedule(ev.Transition(StateLeaves, nil))
	sim.stats = sim.stats.AddLeft()
}

// handleServed draws the service duration and books the waiting time.
func (sim *Simulator) handleServed(ev Event) {
	if ev.Server == nil {
		panic(fmt.Sprintf("handleServed: customer %s has no server", ev.Customer))
	}
	mustTransition("handleServed", ev.Customer.State, StateDone)
	sim.Schedule(ev.After(sim.rp.NextServiceTime(), StateDone))
	sim.stats = sim.stats.AddWaitingTime(ev.WaitingTime(ev.Customer))
}

// handleDone frees the server. A human server may go on a break, which
// defers serving its queue to the matching BACK event.
func (sim *Simulator) handleDone(ev Event) {
	server := ev.Server
	sim.roster.Release(server)

	if server.Kind == KindHuman && sim.rp.NextRestOccursDraw() < sim.restProb {
		sim.Schedule(NewRestEvent(ev.Time, server))
		return
	}
	sim.serveNext(ev)
}

func (sim *Simulator) handleRest(ev Event) {
	sim.roster.Rest(ev.Server)
	sim.Schedule(NewBackEvent(ev.Time+sim.rp.NextRestDuration(), ev.Server))
}

func (sim *Simulator) handleBack(ev Event) {
	sim.roster.Back(ev.Server)
	sim.serveNext(ev)
}

// serveNext starts service for the head of ev.Server's queue, if any.
func (sim *Simulator) serveNext(ev Event) {
	next, ok := sim.roster.ServeNext(ev.Server)
	if !ok {
		return
	}
	mustTransition("serveNext", next.State, StateServed)
	sim.Schedule(ev.Handoff(next, StateServed))
}

func (sim *Simulator) recordEvent(ev Event) {
	if sim.Trace == nil {
		return
	}
	rec := trace.EventRecord{
		Clock:      ev.Time,
		Kind:       ev.Kind.String(),
		CustomerID: ev.Customer.ID,
	}
	if !ev.IsInternal() {
		rec.State = string(ev.Customer.State)
	}
	if ev.Server != nil {
		rec.ServerID = ev.Server.ID
		rec.ServerKind = string(ev.Server.Kind)
	}
	sim.Trace.RecordEvent(rec)
}

func (sim *Simulator) recordRouting(ev Event, d RoutingDecision) {
	if sim.Trace == nil {
		return
	}
	chosen := 0
	if d.Target != nil {
		chosen = d.Target.ID
	}
	sim.Trace.RecordRouting(trace.RoutingRecord{
		CustomerID:     ev.Customer.ID,
		Clock:          ev.Time,
		Policy:         string(ev.Customer.Policy),
		ChosenServerID: chosen,
		Reason:         d.Reason,
		Candidates:     d.Candidates,
	})
}
