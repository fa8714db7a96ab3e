package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

// Source provides uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// NewSource creates a goroutine-safe math/rand source. A zero seed means the
// source is seeded from the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
