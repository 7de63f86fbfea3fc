// Package random provides the coin used by artifact evaluation and encounters.
//
// Everything that needs randomness takes a Source so tests can substitute a
// Scripted sequence for a seeded generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is a uniform two-outcome generator
type Source interface {
	Bool() bool
}

// Rand is a seeded Source that is safe for concurrent use
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Rand from a seed. The same seed yields the same sequence.
func New(seed int64) *Rand {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// NewFromSeed returns New(seed), or a crypto-seeded Rand when seed is 0
func NewFromSeed(seed int64) (*Rand, error) {
	if seed != 0 {
		return New(seed), nil
	}
	s, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// Bool returns true or false with equal probability
func (r *Rand) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(2) == 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
