package impl

import (
	"math/rand/v2"
	"sync"

	"shop/internal/domain/entity"
)

// lockedRand guards a rand source with a mutex so concurrent command
// handlers can share one injected generator.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSource creates the process-wide random source for business
// identifier generation.
func NewRandSource() entity.RandSource {
	return &lockedRand{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rnd.IntN(n)
}
