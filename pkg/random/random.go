package random

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness source consumed by the offer generator and the
// status simulator. Injected so tests can supply a deterministic sequence.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// New returns a time-seeded source safe for concurrent use.
func New() Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic source safe for concurrent use.
func NewSeeded(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniformly random int in [lo, hi], both ends inclusive.
func Between(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Pick returns a uniformly random element of items.
func Pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
