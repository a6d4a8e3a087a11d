package sim

import "fmt"

// transitionMap lists the states a customer event may be derived from.
// ARRIVES has no predecessor; it only comes from arrival generation.
var transitionMap = map[CustomerState][]CustomerState{
	StateServed: {StateArrives, StateWaits},
	StateWaits:  {StateArrives},
	StateLeaves: {StateArrives},
	StateDone:   {StateServed},
}

// ValidTransition reports whether a customer in state from may move to state to.
func ValidTransition(from, to CustomerState) bool {
	allowed, ok := transitionMap[to]
	if !ok {
		return false
	}
	for _, state := range allowed {
		if state == from {
			return true
		}
	}
	return false
}

// mustTransition panics when the move from -> to is illegal.
func mustTransition(op string, from, to CustomerState) {
	if !ValidTransition(from, to) {
		panic(fmt.Sprintf("%s: illegal customer transition %q -> %q", op, from, to))
	}
}
