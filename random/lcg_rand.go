package random

import (
	"sync"

	"github.com/shabbyrobe/go-num"
)

// Knuth's MMIX constants.
const (
	LCG_A uint64 = 6364136223846793005
	LCG_C uint64 = 1442695040888963407
)

// LCG is a deterministic generator. Two LCGs with the same seed yield the
// same sequence, which keeps property sweeps reproducible.
type LCG struct {
	seed uint64
	x    uint64
	lock sync.Mutex
}

func NewLCG(seed uint64) *LCG {
	return &LCG{seed: seed, x: seed}
}

// Seed returns the seed the generator started from.
func (lcg *LCG) Seed() uint64 {
	return lcg.seed
}

func (lcg *LCG) Next() uint64 {
	lcg.lock.Lock()
	defer lcg.lock.Unlock()
	lcg.x = LCG_A*lcg.x + LCG_C
	return lcg.x
}

// Next128 combines two draws into a 128-bit value.
func (lcg *LCG) Next128() num.U128 {
	hi := lcg.Next()
	return num.U128FromRaw(hi, lcg.Next())
}
