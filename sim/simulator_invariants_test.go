package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkout-sim/checkout-sim/sim/internal/testutil"
	"github.com/checkout-sim/checkout-sim/sim/trace"
)

func newStreamSimulator(t *testing.T, cfg SimConfig) *Simulator {
	t.Helper()
	rp, err := NewRandomProcess(cfg.RNG, cfg.Seed, cfg.Workload.ArrivalRate, cfg.Workload.ServiceRate, cfg.Rest.RestRate)
	require.NoError(t, err)
	s, err := NewSimulator(cfg, rp)
	require.NoError(t, err)
	return s
}

func invariantConfigs() []SimConfig {
	var cfgs []SimConfig
	for _, family := range []RNGFamily{RNGLCG48, RNGPartitioned} {
		for _, seed := range []int64{1, 7, 42} {
			cfgs = append(cfgs,
				goldenConfig(seed, 3, 2, 2, 300, 1.5, 1.0, 0.2, 0.3, 0.4),
				goldenConfig(seed, 0, 3, 1, 200, 2.0, 1.0, 0.0, 0.0, 0.7),
				goldenConfig(seed, 2, 0, 0, 150, 1.0, 1.0, 0.5, 1.0, 0.5),
			)
			cfgs[len(cfgs)-1].RNG = family
			cfgs[len(cfgs)-2].RNG = family
			cfgs[len(cfgs)-3].RNG = family
		}
	}
	return cfgs
}

func TestSimulator_Invariants_HoldForRandomRuns(t *testing.T) {
	for _, cfg := range invariantConfigs() {
		name := fmt.Sprintf("%s/seed=%d/h=%d/s=%d/q=%d", cfg.RNG, cfg.Seed,
			cfg.Roster.NumHumanServers, cfg.Roster.NumSelfCheckouts, cfg.Roster.MaxQueueLength)
		t.Run(name, func(t *testing.T) {
			s := newStreamSimulator(t, cfg)
			s.Trace = trace.NewSimulationTrace(trace.TraceLevelDecisions)
			events := runAndCollect(t, s)

			// timestamps never decrease
			for i := 1; i < len(events); i++ {
				require.GreaterOrEqual(t, events[i].Time, events[i-1].Time, "event %d out of order", i)
			}

			// every arrival is either counted as served or as left
			st := s.Statistics()
			assert.Equal(t, cfg.Workload.NumCustomers, s.ArrivalsProcessed())
			assert.Equal(t, s.ArrivalsProcessed(), st.NumServed+st.NumLeft)

			// total waiting time is the sum of arrival-to-service gaps
			assert.GreaterOrEqual(t, st.TotalWaitingTime, 0.0)
			gaps := 0.0
			for _, ev := range events {
				if !ev.IsInternal() && ev.Customer.State == StateServed {
					gaps += ev.Time - ev.Customer.ArrivalTime
				}
			}
			testutil.AssertFloat64Equal(t, "total waiting time", gaps, st.TotalWaitingTime, 1e-9)

			// terminal states have no outgoing events, and WAITS never repeats
			last := map[int]CustomerState{}
			for _, ev := range events {
				if ev.IsInternal() {
					continue
				}
				id := ev.Customer.ID
				if prev, ok := last[id]; ok {
					assert.False(t, prev.IsTerminal(), "customer %d has an event after %q", id, prev)
					assert.True(t, ValidTransition(prev, ev.Customer.State),
						"customer %d moved %q -> %q", id, prev, ev.Customer.State)
				}
				last[id] = ev.Customer.State
			}
			for id, state := range last {
				assert.True(t, state.IsTerminal(), "customer %d ended in %q", id, state)
			}

			// greedy routing always picks a queue no longer than any other open queue
			for _, r := range s.Trace.Routings {
				if r.Policy != string(PolicyGreedy) || r.ChosenServerID == 0 {
					continue
				}
				chosenLen := -1
				for _, c := range r.Candidates {
					if c.ServerID == r.ChosenServerID {
						chosenLen = c.QueueLength
					}
				}
				require.NotEqual(t, -1, chosenLen)
				for _, c := range r.Candidates {
					if c.HasCapacity {
						assert.LessOrEqual(t, chosenLen, c.QueueLength)
					}
				}
			}

			// the run drains fully: no occupant, no resting server, empty queues
			for _, srv := range s.Roster().Servers {
				_, occupied := srv.Occupant()
				assert.False(t, occupied, "%s still occupied", srv)
				assert.False(t, srv.Resting, "%s still resting", srv)
				assert.Zero(t, s.Roster().Queue(srv).Len())
			}
		})
	}
}

func TestSimulator_SameSeed_IdenticalTrace(t *testing.T) {
	for _, family := range []RNGFamily{RNGLCG48, RNGPartitioned} {
		t.Run(string(family), func(t *testing.T) {
			// GIVEN two simulators built from the same config
			cfg := goldenConfig(99, 2, 2, 3, 250, 1.2, 1.0, 0.3, 0.4, 0.5)
			cfg.RNG = family

			// WHEN both run
			a := visibleLines(runAndCollect(t, newStreamSimulator(t, cfg)))
			b := visibleLines(runAndCollect(t, newStreamSimulator(t, cfg)))

			// THEN the traces are byte-identical
			assert.Equal(t, a, b)
		})
	}
}

func TestSimulator_DifferentSeeds_DifferentTrace(t *testing.T) {
	cfgA := goldenConfig(1, 2, 1, 2, 50, 1.0, 1.0, 0.1, 0.2, 0.5)
	cfgB := cfgA
	cfgB.Seed = 2
	a := visibleLines(runAndCollect(t, newStreamSimulator(t, cfgA)))
	b := visibleLines(runAndCollect(t, newStreamSimulator(t, cfgB)))
	assert.NotEqual(t, a, b)
}

func TestSimulator_SelfCheckoutBank_EveryMachineSeesSameQueue(t *testing.T) {
	// GIVEN a bank of four machines under heavy load
	cfg := goldenConfig(5, 1, 4, 3, 120, 5.0, 1.0, 0.2, 0.2, 0.5)
	s := newStreamSimulator(t, cfg)

	// WHEN events are processed one at a time
	for s.HasEvent() {
		s.ProcessEvent()

		// THEN each machine's effective queue is the same sequence
		machines := s.Roster().Bank.Machines
		first := s.Roster().Queue(machines[0]).Items()
		for _, m := range machines[1:] {
			require.Equal(t, first, s.Roster().Queue(m).Items())
		}
	}
}
