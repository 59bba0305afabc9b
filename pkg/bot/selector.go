package bot

import (
	"math/rand"
	"sync/atomic"
)

// ReplySelector picks an index into the default reply pool. Injected so
// Route stays deterministic under test: production wires RandomSelector,
// tests wire RotatingSelector (or a fixed fake).
type ReplySelector interface {
	Pick(n int) int
}

// RandomSelector picks uniformly at random.
type RandomSelector struct{}

func (RandomSelector) Pick(n int) int {
	return rand.Intn(n)
}

// RotatingSelector cycles through the pool round-robin. Safe for
// concurrent use.
type RotatingSelector struct {
	counter atomic.Uint64
}

func (s *RotatingSelector) Pick(n int) int {
	return int((s.counter.Add(1) - 1) % uint64(n))
}
