// Defines checkout points (servers), the shared self-checkout bank, and the
// roster that owns them for the lifetime of a simulation.

package sim

import "fmt"

// ServerKind distinguishes staffed counters from self-service machines.
type ServerKind string

const (
	KindHuman        ServerKind = "human"
	KindSelfCheckout ServerKind = "self-checkout"
)

// Server is one checkout point. Its wait queue is not stored on the server;
// QueueHandle indexes the roster's queue table, so every machine of a
// self-checkout bank resolves to the same WaitQueue.
type Server struct {
	ID          int        // 1-based, in roster order
	Kind        ServerKind // human or self-checkout
	Capacity    int        // max waitlist length, excluding the customer in service
	QueueHandle int        // index into Roster.queues
	Resting     bool

	occupant *Customer
}

// CanServe reports whether the server can take a customer right now.
func (s *Server) CanServe() bool {
	return !s.Resting && s.occupant == nil
}

// Occupant returns the customer in service, if any.
func (s *Server) Occupant() (Customer, bool) {
	if s.occupant == nil {
		return Customer{}, false
	}
	return *s.occupant, true
}

// String renders the server the way the event trace prints it.
func (s *Server) String() string {
	if s.Kind == KindSelfCheckout {
		return fmt.Sprintf("self-check %d", s.ID)
	}
	return fmt.Sprintf("server %d", s.ID)
}

// CheckoutBank is the set of self-checkout machines sharing one wait queue.
type CheckoutBank struct {
	Machines    []*Server
	QueueHandle int
}

// Representative is the machine that stands in for the whole bank during
// waitlist routing. Nil when the bank is empty.
func (b *CheckoutBank) Representative() *Server {
	if len(b.Machines) == 0 {
		return nil
	}
	return b.Machines[0]
}

// Roster is the fixed set of servers: human servers first, then the
// self-checkout bank. It owns every wait queue.
type Roster struct {
	Servers []*Server
	Bank    CheckoutBank

	numHuman int
	queues   []*WaitQueue
}

// NewRoster builds numHuman human servers followed by numSelf self-checkout
// machines, all with the same waitlist capacity.
func NewRoster(numHuman, numSelf, capacity int) *Roster {
	r := &Roster{
		Servers:  make([]*Server, 0, numHuman+numSelf),
		numHuman: numHuman,
	}
	nextID := 0
	for i := 0; i < numHuman; i++ {
		nextID++
		r.Servers = append(r.Servers, &Server{
			ID:          nextID,
			Kind:        KindHuman,
			Capacity:    capacity,
			QueueHandle: r.newQueue(),
		})
	}
	if numSelf > 0 {
		r.Bank.QueueHandle = r.newQueue()
		for i := 0; i < numSelf; i++ {
			nextID++
			m := &Server{
				ID:          nextID,
				Kind:        KindSelfCheckout,
				Capacity:    capacity,
				QueueHandle: r.Bank.QueueHandle,
			}
			r.Servers = append(r.Servers, m)
			r.Bank.Machines = append(r.Bank.Machines, m)
		}
	}
	return r
}

func (r *Roster) newQueue() int {
	r.queues = append(r.queues, &WaitQueue{})
	return len(r.queues) - 1
}

// Queue resolves the wait queue a server draws from.
func (r *Roster) Queue(s *Server) *WaitQueue {
	return r.queues[s.QueueHandle]
}

// NumHuman returns the number of human servers at the front of the roster.
func (r *Roster) NumHuman() int {
	return r.numHuman
}

// Eligible returns the servers considered for waitlisting, in roster order:
// every human server, then one representative slot for the self-checkout bank.
func (r *Roster) Eligible() []*Server {
	eligible := make([]*Server, 0, r.numHuman+1)
	eligible = append(eligible, r.Servers[:r.numHuman]...)
	if rep := r.Bank.Representative(); rep != nil {
		eligible = append(eligible, rep)
	}
	return eligible
}

// FirstIdle returns the first server in roster order that can serve now.
func (r *Roster) FirstIdle() (*Server, bool) {
	for _, s := range r.Servers {
		if s.CanServe() {
			return s, true
		}
	}
	return nil, false
}

// CanWaitList reports whether the server's queue has spare capacity.
// A resting server can still accept waitlisted customers.
func (r *Roster) CanWaitList(s *Server) bool {
	return r.Queue(s).Len() < s.Capacity
}

// Serve makes c the occupant of s.
func (r *Roster) Serve(s *Server, c Customer) {
	if !s.CanServe() {
		panic(fmt.Sprintf("Serve: %s cannot serve (resting=%v, occupied=%v)", s, s.Resting, s.occupant != nil))
	}
	s.occupant = &c
}

// WaitList appends c to the queue s draws from.
func (r *Roster) WaitList(s *Server, c Customer) {
	if !r.CanWaitList(s) {
		panic(fmt.Sprintf("WaitList: %s queue is full (capacity %d)", s, s.Capacity))
	}
	r.Queue(s).Enqueue(c)
}

// ServeNext moves the head of s's queue into service.
// The boolean is false, and s is left idle, when the queue is empty.
func (r *Roster) ServeNext(s *Server) (Customer, bool) {
	next, ok := r.Queue(s).Dequeue()
	if !ok {
		return Customer{}, false
	}
	r.Serve(s, next)
	return next, true
}

// Release clears the occupant of s after a completed service.
func (r *Roster) Release(s *Server) {
	if s.occupant == nil {
		panic(fmt.Sprintf("Release: %s has no occupant", s))
	}
	s.occupant = nil
}

// Rest puts a human server on a break.
func (r *Roster) Rest(s *Server) {
	if s.Kind != KindHuman {
		panic(fmt.Sprintf("Rest: %s is not a human server", s))
	}
	if s.occupant != nil {
		panic(fmt.Sprintf("Rest: %s is still serving", s))
	}
	s.Resting = true
}

// Back ends a break.
func (r *Roster) Back(s *Server) {
	if !s.Resting {
		panic(fmt.Sprintf("Back: %s is not resting", s))
	}
	s.Resting = false
}
