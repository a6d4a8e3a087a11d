// Defines the Customer value that models one shopper moving through the checkout system.
// Customers are values: a state change yields a new Customer carrying the same identity.

package sim

import "fmt"

// CustomerState represents the lifecycle state of a customer.
// The string value is the verb printed in the event trace.
type CustomerState string

const (
	StateArrives CustomerState = "arrives"
	StateServed  CustomerState = "served by"
	StateWaits   CustomerState = "waits to be served by"
	StateLeaves  CustomerState = "leaves"
	StateDone    CustomerState = "done serving by"
)

// IsTerminal reports whether no further event may follow this state.
func (s CustomerState) IsTerminal() bool {
	return s == StateLeaves || s == StateDone
}

// CustomerPolicy selects how a customer picks a queue when no server is idle.
type CustomerPolicy string

const (
	// PolicyTypical waitlists at the first server with spare capacity in roster order.
	PolicyTypical CustomerPolicy = "typical"
	// PolicyGreedy waitlists at the server with the strictly shortest queue.
	PolicyGreedy CustomerPolicy = "greedy"
)

// SentinelCustomerID is carried by server-only REST/BACK events so that they
// sort ahead of real customers scheduled at the same instant.
const SentinelCustomerID = 0

// Customer models a single shopper.
// ID and ArrivalTime never change once the customer is created; WithState
// derives a new value instead of mutating.
type Customer struct {
	ID          int            // 1-based, in creation order; 0 is the sentinel
	ArrivalTime float64        // simulation time of arrival
	State       CustomerState  // current lifecycle state
	Policy      CustomerPolicy // fixed at creation
}

// NewCustomer creates a customer in the ARRIVES state.
func NewCustomer(id int, arrivalTime float64, policy CustomerPolicy) Customer {
	if id <= SentinelCustomerID {
		panic(fmt.Sprintf("NewCustomer: id must be positive, got %d", id))
	}
	return Customer{
		ID:          id,
		ArrivalTime: arrivalTime,
		State:       StateArrives,
		Policy:      policy,
	}
}

// sentinelCustomer returns the placeholder used by REST and BACK events.
func sentinelCustomer() Customer {
	return Customer{ID: SentinelCustomerID, Policy: PolicyTypical}
}

// IsSentinel reports whether c is the server-event placeholder.
func (c Customer) IsSentinel() bool {
	return c.ID == SentinelCustomerID
}

// WithState returns a copy of c in the given state.
// No transition checking happens here; the Simulator owns legality.
func (c Customer) WithState(state CustomerState) Customer {
	c.State = state
	return c
}

// String renders the customer the way the event trace prints it: "7" or "7(greedy)".
func (c Customer) String() string {
	if c.Policy == PolicyGreedy {
		return fmt.Sprintf("%d(greedy)", c.ID)
	}
	return fmt.Sprintf("%d", c.ID)
}

// customerIDSequence hands out customer ids starting at 1.
// Owned by a Simulator; there is no process-wide counter.
type customerIDSequence struct {
	last int
}

func (s *customerIDSequence) next() int {
	s.last++
	return s.last
}
