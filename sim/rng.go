package sim

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical traces.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

// Each random decision in the checkout model draws from its own stream.
// The order of this list is also the seed offset used by the lcg48 family.
const (
	SubsystemArrival      = "arrival"
	SubsystemService      = "service"
	SubsystemRestOccurs   = "rest_occurs"
	SubsystemRestPeriod   = "rest_period"
	SubsystemCustomerType = "customer_type"
)

var subsystemOrder = []string{
	SubsystemArrival,
	SubsystemService,
	SubsystemRestOccurs,
	SubsystemRestPeriod,
	SubsystemCustomerType,
}

// === RNG families ===

// RNGFamily names a generator family for RandomProcess streams.
type RNGFamily string

const (
	// RNGLCG48 uses one 48-bit LCG per stream, seeded with seed+offset.
	RNGLCG48 RNGFamily = "lcg48"
	// RNGPartitioned uses PartitionedRNG subsystems over math/rand.
	RNGPartitioned RNGFamily = "partitioned"
)

var validRNGFamilies = map[RNGFamily]bool{
	RNGLCG48:       true,
	RNGPartitioned: true,
	"":             true, // empty defaults to lcg48
}

// IsValidRNGFamily returns true if the given string names a known family.
func IsValidRNGFamily(name string) bool {
	return validRNGFamilies[RNGFamily(name)]
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === LCG48 ===

const (
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 0xB
	lcgMask       = (1 << 48) - 1
)

// LCG48 is a 48-bit linear congruential generator. Doubles are assembled
// from 53 high-order bits of two consecutive steps.
type LCG48 struct {
	state int64
}

// NewLCG48 seeds a generator; the seed is scrambled with the multiplier.
func NewLCG48(seed int64) *LCG48 {
	return &LCG48{state: (seed ^ lcgMultiplier) & lcgMask}
}

func (g *LCG48) next(bits uint) int64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) & lcgMask
	return g.state >> (48 - bits)
}

// Float64 returns a uniform draw in [0, 1).
func (g *LCG48) Float64() float64 {
	return float64(g.next(26)<<27+g.next(27)) * (1.0 / (1 << 53))
}

// === RandomProcess ===

// RandomProcess supplies every random quantity the simulator consumes.
// Each method advances an independent stream, so the sequence of one kind of
// draw never depends on how many draws of another kind were taken.
type RandomProcess interface {
	NextInterArrivalTime() float64
	NextServiceTime() float64
	NextRestDuration() float64
	NextCustomerTypeDraw() float64
	NextRestOccursDraw() float64
}

// UniformStream is a source of uniform doubles in [0, 1).
// *rand.Rand and *LCG48 both satisfy it.
type UniformStream interface {
	Float64() float64
}

// StreamProcess is the RandomProcess built from five uniform streams and the
// arrival, service and rest rates. Durations are exponentially distributed.
type StreamProcess struct {
	arrivalRate float64
	serviceRate float64
	restRate    float64

	arrival      UniformStream
	service      UniformStream
	restOccurs   UniformStream
	restPeriod   UniformStream
	customerType UniformStream
}

// NewRandomProcess builds the StreamProcess for a family and seed.
func NewRandomProcess(family RNGFamily, seed int64, arrivalRate, serviceRate, restRate float64) (*StreamProcess, error) {
	streams := make(map[string]UniformStream, len(subsystemOrder))
	switch family {
	case RNGLCG48, "":
		for offset, name := range subsystemOrder {
			streams[name] = NewLCG48(seed + int64(offset))
		}
	case RNGPartitioned:
		p := NewPartitionedRNG(NewSimulationKey(seed))
		for _, name := range subsystemOrder {
			streams[name] = p.ForSubsystem(name)
		}
	default:
		return nil, fmt.Errorf("unknown rng family %q; valid: lcg48, partitioned", family)
	}
	return &StreamProcess{
		arrivalRate:  arrivalRate,
		serviceRate:  serviceRate,
		restRate:     restRate,
		arrival:      streams[SubsystemArrival],
		service:      streams[SubsystemService],
		restOccurs:   streams[SubsystemRestOccurs],
		restPeriod:   streams[SubsystemRestPeriod],
		customerType: streams[SubsystemCustomerType],
	}, nil
}

// exponential draws an Exp(rate) duration by inverting the CDF.
func exponential(stream UniformStream, rate float64) float64 {
	u := stream.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // prevent -ln(0) = +Inf
	}
	return -math.Log(u) / rate
}

func (p *StreamProcess) NextInterArrivalTime() float64 {
	return exponential(p.arrival, p.arrivalRate)
}

func (p *StreamProcess) NextServiceTime() float64 {
	return exponential(p.service, p.serviceRate)
}

func (p *StreamProcess) NextRestDuration() float64 {
	return exponential(p.restPeriod, p.restRate)
}

func (p *StreamProcess) NextCustomerTypeDraw() float64 {
	return p.customerType.Float64()
}

func (p *StreamProcess) NextRestOccursDraw() float64 {
	return p.restOccurs.Float64()
}
