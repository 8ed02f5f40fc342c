package simkernel

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// PartitionedRNG provides deterministic, isolated RNG streams per
// subsystem, derived from a single master seed.
//
// Derivation: masterSeed XOR fnv1a64(subsystemName). Each subsystem name
// always derives the same stream, and distinct subsystems never share one,
// so a station's interarrival/service/routing draws never perturb another
// station's sequence — a run is bit-for-bit reproducible given a fixed
// seed and network.
type PartitionedRNG struct {
	masterSeed int64
	streams    map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG rooted at masterSeed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		streams:    make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the (lazily created, cached) RNG stream for name.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.masterSeed ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// ForStation returns the RNG stream dedicated to station index idx. All of
// a station's exponential draws (interarrival, service) and its routing
// draw go through this single stream, so a station's own event sequence is
// reproducible independent of how many other stations are in the network.
func (p *PartitionedRNG) ForStation(idx int) *rand.Rand {
	return p.ForSubsystem(stationSubsystem(idx))
}

func stationSubsystem(idx int) string {
	return "station_" + strconv.Itoa(idx)
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Exp draws an exponentially-distributed interval with the given mean,
// using rng.ExpFloat64 — Go's standard Exp(1) generator scaled by mean.
// mean_interarrival and mean_service are means, not rates.
func Exp(rng *rand.Rand, mean float64) float64 {
	return rng.ExpFloat64() * mean
}
