package board

import (
	"math/rand"
	"time"
)

// Random draws integers uniformly from the inclusive range [low, high].
// Implementations are not expected to be safe for concurrent use; give each
// goroutine its own source.
type Random interface {
	IntRange(low, high int) int
}

type mathRand struct {
	r *rand.Rand
}

func NewRandom(seed int64) Random {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func newTimeSeededRandom() Random {
	return NewRandom(time.Now().UnixNano())
}

func (m *mathRand) IntRange(low, high int) int {
	return low + m.r.Intn(high-low+1)
}

// PseudoRand is a xorshift generator, reproducible across platforms and Go
// releases for a given seed.
type PseudoRand struct {
	s uint64
}

const pseudoRandZeroSeed = 0x9E3779B97F4A7C15

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. Xorshift state must be non-zero, so a zero seed
// is replaced by a fixed constant.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = pseudoRandZeroSeed
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func (r *PseudoRand) IntRange(low, high int) int {
	return low + int(r.Uint64()%uint64(high-low+1))
}
