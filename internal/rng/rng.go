// Package rng provides the injectable random source used by the word models.
package rng

import (
	"math/rand/v2"
)

// Source draws the random values a word model needs.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
	// Between returns a uniform integer in [min, max], both ends inclusive.
	Between(min, max int) int
}

// PCG is a Source backed by a seeded PCG generator. It is not safe for
// concurrent use; give each goroutine its own instance.
type PCG struct {
	r *rand.Rand
}

// New returns a source seeded with seed. Equal seeds replay equal sequences.
func New(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, splitmix(seed)))}
}

// Derive returns the source for word index i, attempt k of a batch seeded
// with seed. Sources for different (i, k) pairs are independent, which keeps
// batch output stable regardless of how words are scheduled.
func Derive(seed uint64, i, k int) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(
		splitmix(seed^splitmix(uint64(k))),
		splitmix(seed+splitmix(uint64(i)+1)),
	))}
}

// RandomSeed returns a seed from the runtime's auto-seeded generator.
func RandomSeed() uint64 {
	return rand.Uint64()
}

func (p *PCG) Intn(n int) int {
	return p.r.IntN(n)
}

func (p *PCG) Between(min, max int) int {
	return min + p.r.IntN(max-min+1)
}

// Choose returns a uniformly drawn element of items.
func Choose[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
