package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerState_Constants_HaveTraceVerbs(t *testing.T) {
	assert.Equal(t, CustomerState("arrives"), StateArrives)
	assert.Equal(t, CustomerState("served by"), StateServed)
	assert.Equal(t, CustomerState("waits to be served by"), StateWaits)
	assert.Equal(t, CustomerState("leaves"), StateLeaves)
	assert.Equal(t, CustomerState("done serving by"), StateDone)
}

func TestCustomerState_IsTerminal(t *testing.T) {
	assert.True(t, StateLeaves.IsTerminal())
	assert.True(t, StateDone.IsTerminal())
	assert.False(t, StateArrives.IsTerminal())
	assert.False(t, StateServed.IsTerminal())
	assert.False(t, StateWaits.IsTerminal())
}

func TestCustomer_WithState_KeepsIdentity(t *testing.T) {
	// GIVEN a greedy customer
	c := NewCustomer(9, 4.5, PolicyGreedy)

	// WHEN its state changes
	w := c.WithState(StateWaits)

	// THEN id, arrival time and policy carry forward and the original is untouched
	assert.Equal(t, 9, w.ID)
	assert.Equal(t, 4.5, w.ArrivalTime)
	assert.Equal(t, PolicyGreedy, w.Policy)
	assert.Equal(t, StateWaits, w.State)
	assert.Equal(t, StateArrives, c.State)
}

func TestCustomer_String(t *testing.T) {
	assert.Equal(t, "3", NewCustomer(3, 0, PolicyTypical).String())
	assert.Equal(t, "3(greedy)", NewCustomer(3, 0, PolicyGreedy).String())
}

func TestNewCustomer_NonPositiveID_Panics(t *testing.T) {
	assert.Panics(t, func() { NewCustomer(0, 0, PolicyTypical) })
}

func TestCustomerIDSequence_StartsAtOne(t *testing.T) {
	var seq customerIDSequence
	assert.Equal(t, 1, seq.next())
	assert.Equal(t, 2, seq.next())

	// a second sequence is independent
	var other customerIDSequence
	assert.Equal(t, 1, other.next())
}
