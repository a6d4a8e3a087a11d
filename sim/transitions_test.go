package sim

import "testing"

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from  CustomerState
		to    CustomerState
		valid bool
	}{
		{StateArrives, StateServed, true},
		{StateArrives, StateWaits, true},
		{StateArrives, StateLeaves, true},
		{StateWaits, StateServed, true},
		{StateServed, StateDone, true},
		{StateWaits, StateWaits, false},
		{StateLeaves, StateServed, false},
		{StateLeaves, StateWaits, false},
		{StateDone, StateServed, false},
		{StateServed, StateWaits, false},
		{StateArrives, StateDone, false},
		{StateDone, StateArrives, false},
	}

	for _, tt := range cases {
		if got := ValidTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("ValidTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestMustTransition_Illegal_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for LEAVES -> SERVED")
		}
	}()
	mustTransition("test", StateLeaves, StateServed)
}
