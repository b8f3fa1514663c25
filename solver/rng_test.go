package solver

import (
	"math"
	"math/rand"
	"testing"
)

// === RunKey Tests ===

func TestRunKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewRunKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewRunKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewRunKey(42))
	rng2 := NewPartitionedRNG(NewRunKey(42))

	vals1 := make([]float64, 3)
	vals2 := make([]float64, 3)

	for i := 0; i < 3; i++ {
		vals1[i] = rng1.ForSubsystem(SubsystemAnnealing).Float64()
	}
	for i := 0; i < 3; i++ {
		vals2[i] = rng2.ForSubsystem(SubsystemAnnealing).Float64()
	}

	for i := 0; i < 3; i++ {
		if vals1[i] != vals2[i] {
			t.Errorf("Value %d: got %v and %v, want identical", i, vals1[i], vals2[i])
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from subsystem A doesn't affect subsystem B
	rngA := NewPartitionedRNG(NewRunKey(42))
	rngB := NewPartitionedRNG(NewRunKey(42))

	// Draw 10 values from A's sampling subsystem (this should NOT affect annealing)
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemSampling).Float64()
	}

	// Draw 5 values from B's annealing subsystem
	for i := 0; i < 5; i++ {
		rngB.ForSubsystem(SubsystemAnnealing).Float64()
	}

	// Now draw from A's annealing - should be 1st value in annealing sequence
	aAnnealFirst := rngA.ForSubsystem(SubsystemAnnealing).Float64()

	// Draw 6th value from B's annealing
	bAnnealSixth := rngB.ForSubsystem(SubsystemAnnealing).Float64()

	// Create fresh RNG to get expected 1st annealing value
	fresh := NewPartitionedRNG(NewRunKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemAnnealing).Float64()

	if aAnnealFirst != expectedFirst {
		t.Errorf("A's annealing first value = %v, want %v (isolation broken)", aAnnealFirst, expectedFirst)
	}

	if bAnnealSixth == expectedFirst {
		t.Error("B's 6th annealing value equals 1st value - unexpected")
	}
}

func TestPartitionedRNG_SamplingUsesMasterSeed(t *testing.T) {
	// BDD: "sampling" subsystem uses master seed directly
	seed := int64(42)
	rng := NewPartitionedRNG(NewRunKey(seed))

	samplingRNG := rng.ForSubsystem(SubsystemSampling)

	// A direct RNG with the same seed must match
	directRNG := newRandFromSeed(seed)

	for i := 0; i < 10; i++ {
		got := samplingRNG.Float64()
		want := directRNG.Float64()
		if got != want {
			t.Errorf("Value %d: sampling RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewRunKey(42))

	rng1 := rng.ForSubsystem(SubsystemSampling)
	rng2 := rng.ForSubsystem(SubsystemSampling)

	if rng1 != rng2 {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewRunKey(seed))

	if rng.Key() != RunKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_ZeroSeed(t *testing.T) {
	// BDD: Seed 0 works correctly
	rng := NewPartitionedRNG(NewRunKey(0))

	sampling := rng.ForSubsystem(SubsystemSampling)
	annealing := rng.ForSubsystem(SubsystemAnnealing)

	if sampling == nil || annealing == nil {
		t.Error("ForSubsystem returned nil with zero seed")
	}

	// sampling should use seed 0 directly
	directRNG := newRandFromSeed(0)
	if sampling.Float64() != directRNG.Float64() {
		t.Error("Sampling with seed 0 not matching direct RNG")
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	// BDD: Subsystems map is empty until ForSubsystem is called
	rng := NewPartitionedRNG(NewRunKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemSampling)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Deterministic(t *testing.T) {
	input := "test_subsystem"
	hash1 := fnv1a64(input)
	hash2 := fnv1a64(input)

	if hash1 != hash2 {
		t.Errorf("fnv1a64(%q) not deterministic: %v != %v", input, hash1, hash2)
	}
}

func TestFnv1a64_Collision(t *testing.T) {
	// Different subsystem names should produce different hashes (spot check)
	names := []string{
		SubsystemSampling,
		SubsystemAnnealing,
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewRunKey(42))
	// Prime the cache
	rng.ForSubsystem(SubsystemSampling)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemSampling)
	}
}

func BenchmarkPartitionedRNG_ForSubsystem_CacheMiss(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng := NewPartitionedRNG(NewRunKey(42))
		rng.ForSubsystem(SubsystemSampling)
	}
}

// === Helper ===

// newRandFromSeed creates a *rand.Rand with the given seed (mirrors direct seeding)
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
