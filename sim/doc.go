// Package sim provides the discrete-event simulation engine for a checkout
// queueing system.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (arrives → served/waits/leaves → done)
//   - event.go: Event variants (customer, rest, back) and the EventQueue ordering
//   - simulator.go: The event loop and the per-event state machine
//
// Supporting files:
//   - server.go: Server, the shared self-checkout CheckoutBank, and the Roster
//     that owns every wait queue
//   - routing.go: typical (first with capacity) and greedy (shortest queue)
//     waitlist routing
//   - rng.go: RandomProcess and its lcg48 / partitioned stream families
//   - metrics.go: the immutable Statistics accumulator
//
// # Determinism
//
// The simulator is single-threaded. Events are ordered by (time, customer id)
// and server-only events carry the sentinel id 0, so for a fixed
// RandomProcess the processed trace is exactly reproducible.
//
// Decision traces are recorded by sim/trace/, which has no dependency on
// this package.
package sim
