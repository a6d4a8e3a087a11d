package sim

import (
	"container/heap"
	"fmt"
)

// EventKind tags the variant of an Event.
type EventKind int

const (
	// EventCustomer is an ordinary customer state change.
	EventCustomer EventKind = iota
	// EventRest marks a server beginning a break.
	EventRest
	// EventBack marks a server returning from a break.
	EventBack
)

func (k EventKind) String() string {
	switch k {
	case EventRest:
		return "rest"
	case EventBack:
		return "back"
	default:
		return "customer"
	}
}

// Event is a scheduled state change. Events are values; every follow-on
// event is derived as a new Event.
type Event struct {
	Time     float64  // simulation time
	Customer Customer // customer snapshot, or the sentinel for REST/BACK
	Server   *Server  // handling server; nil for ARRIVES and LEAVES
	Kind     EventKind
}

// Timestamp returns the scheduled time of the event.
func (e Event) Timestamp() float64 {
	return e.Time
}

// NewArrivalEvent creates the ARRIVES event for a freshly generated customer.
func NewArrivalEvent(c Customer) Event {
	return Event{Time: c.ArrivalTime, Customer: c.WithState(StateArrives), Kind: EventCustomer}
}

// NewRestEvent creates the server-only event that starts a break.
func NewRestEvent(time float64, s *Server) Event {
	return Event{Time: time, Customer: sentinelCustomer(), Server: s, Kind: EventRest}
}

// NewBackEvent creates the server-only event that ends a break.
func NewBackEvent(time float64, s *Server) Event {
	return Event{Time: time, Customer: sentinelCustomer(), Server: s, Kind: EventBack}
}

// Transition derives an event at the same time for the same customer in a
// new state, handled by s.
func (e Event) Transition(state CustomerState, s *Server) Event {
	return Event{Time: e.Time, Customer: e.Customer.WithState(state), Server: s, Kind: EventCustomer}
}

// After derives an event delta later for the same customer and server.
func (e Event) After(delta float64, state CustomerState) Event {
	return Event{Time: e.Time + delta, Customer: e.Customer.WithState(state), Server: e.Server, Kind: EventCustomer}
}

// Handoff derives an event at the same time and server for another customer,
// used when a server pulls the next customer off its queue.
func (e Event) Handoff(c Customer, state CustomerState) Event {
	return Event{Time: e.Time, Customer: c.WithState(state), Server: e.Server, Kind: EventCustomer}
}

// WaitingTime is the time c has spent in the system up to this event.
func (e Event) WaitingTime(c Customer) float64 {
	return e.Time - c.ArrivalTime
}

// IsInternal reports whether the event is a server-only REST/BACK event,
// which never appears in the printed trace.
func (e Event) IsInternal() bool {
	return e.Kind != EventCustomer
}

// String renders one trace line: "1.234 7(greedy) waits to be served by server 2".
func (e Event) String() string {
	if e.IsInternal() {
		return fmt.Sprintf("%.3f %s %s", e.Time, e.Kind, e.Server)
	}
	if e.Server == nil {
		return fmt.Sprintf("%.3f %s %s", e.Time, e.Customer, e.Customer.State)
	}
	return fmt.Sprintf("%.3f %s %s %s", e.Time, e.Customer, e.Customer.State, e.Server)
}

// EventQueue implements heap.Interface and orders events by timestamp, then
// by customer id. Sentinel REST/BACK events (id 0) come before customer
// events scheduled at the same instant.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Time != eq[j].Time {
		return eq[i].Time < eq[j].Time
	}
	return eq[i].Customer.ID < eq[j].Customer.ID
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// PushEvent inserts ev in O(log n).
func (eq *EventQueue) PushEvent(ev Event) {
	heap.Push(eq, ev)
}

// PeekMin returns the earliest event without removing it.
// The boolean is false when the queue is empty.
func (eq EventQueue) PeekMin() (Event, bool) {
	if len(eq) == 0 {
		return Event{}, false
	}
	return eq[0], true
}

// PopMin removes and returns the earliest event.
// The boolean is false when the queue is empty.
func (eq *EventQueue) PopMin() (Event, bool) {
	if len(*eq) == 0 {
		return Event{}, false
	}
	return heap.Pop(eq).(Event), true
}

// Empty reports whether no events remain.
func (eq EventQueue) Empty() bool {
	return len(eq) == 0
}
