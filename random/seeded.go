package random

import (
	"math/rand"
	"sync"
)

// Seeded is a reproducible, non-cryptographic source. It is safe for
// concurrent use.
type Seeded struct {
	r  *rand.Rand
	mu sync.Mutex
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} //nolint:gosec
}

func (s *Seeded) Uint64() uint64 {
	s.mu.Lock()
	v := s.r.Uint64()
	s.mu.Unlock()
	return v
}
