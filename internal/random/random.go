// Package random provides deterministic RNG derivation, grounded on
// internal/world/random.go from the teacher repository: a root seed plus a
// label is hashed into a stable int64 seed so the same (seed, label) pair
// always yields the same pseudo-random stream. spec.md §5 requires any RNG
// used inside a step (e.g. the windy move function's wind push) to be seeded
// from state.Seed combined with the turn counter, never from wall-clock time.
package random

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// DeterministicSeedValue hashes rootSeed and label into a stable int64 seed.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// New returns an RNG deterministically seeded from (rootSeed, label).
func New(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}

// ForTurn derives an RNG scoped to a specific step, combining rootSeed with
// both label and turn so repeated calls within a replay are reproducible
// while distinct turns don't share a stream.
func ForTurn(rootSeed, label string, turn int) *rand.Rand {
	return New(rootSeed, fmt.Sprintf("%s#%d", label, turn))
}
