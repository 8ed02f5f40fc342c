package simkernel

import (
	"math"
	"testing"
)

func TestPartitionedRNG_SameSubsystemReturnsCachedStream(t *testing.T) {
	rng := NewPartitionedRNG(42)
	a := rng.ForSubsystem("station_0")
	b := rng.ForSubsystem("station_0")
	if a != b {
		t.Fatal("ForSubsystem must cache and return the same *rand.Rand for repeated calls")
	}
}

func TestPartitionedRNG_DistinctSubsystemsDiverge(t *testing.T) {
	rng := NewPartitionedRNG(42)
	a := rng.ForStation(0).Float64()
	b := rng.ForStation(1).Float64()
	if a == b {
		t.Fatal("distinct stations should (overwhelmingly likely) draw distinct values")
	}
}

func TestPartitionedRNG_SameSeedReproducesStream(t *testing.T) {
	rng1 := NewPartitionedRNG(7)
	rng2 := NewPartitionedRNG(7)

	for i := 0; i < 10; i++ {
		a := rng1.ForStation(3).Float64()
		b := rng2.ForStation(3).Float64()
		if a != b {
			t.Fatalf("draw %d: %v != %v, same seed must reproduce the same stream", i, a, b)
		}
	}
}

func TestExp_MeanMatchesParameter(t *testing.T) {
	rng := NewPartitionedRNG(1).ForStation(0)
	const mean = 5.0
	const n = 50000

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Exp(rng, mean)
	}
	got := sum / n
	if math.Abs(got-mean)/mean > 0.05 {
		t.Errorf("Exp(mean=%.1f) average over %d draws = %.3f, want within 5%% of %.1f", mean, n, got, mean)
	}
}
