// Tracks the aggregate statistics reported at the end of a checkout simulation.

package sim

import "fmt"

// Statistics is an immutable accumulator. Each update returns a new value.
//
// NumServed counts customers who did not leave: it increments when a
// customer starts service on arrival or is successfully waitlisted, not
// when service completes.
type Statistics struct {
	NumServed        int     `yaml:"num_served"`
	NumLeft          int     `yaml:"num_left"`
	TotalWaitingTime float64 `yaml:"total_waiting_time"`
}

// AddServed returns s with one more served customer.
func (s Statistics) AddServed() Statistics {
	s.NumServed++
	return s
}

// AddLeft returns s with one more customer who left.
func (s Statistics) AddLeft() Statistics {
	s.NumLeft++
	return s
}

// AddWaitingTime returns s with d added to the total waiting time.
func (s Statistics) AddWaitingTime(d float64) Statistics {
	if d < 0 {
		panic(fmt.Sprintf("AddWaitingTime: negative waiting time %f", d))
	}
	s.TotalWaitingTime += d
	return s
}

// AvgWaitingTime is TotalWaitingTime / NumServed, or 0 when nobody was served.
func (s Statistics) AvgWaitingTime() float64 {
	if s.NumServed == 0 {
		return 0
	}
	return s.TotalWaitingTime / float64(s.NumServed)
}

// String renders the final summary line: "[avgWait numServed numLeft]".
func (s Statistics) String() string {
	return fmt.Sprintf("[%.3f %d %d]", s.AvgWaitingTime(), s.NumServed, s.NumLeft)
}
