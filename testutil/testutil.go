package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/rablab/interactome/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Identifiers returns n distinct gene-like identifiers.
func Identifiers(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("GENE%05d", i)
	}
	return out
}

// Collections generates k collections named "DS0".."DS<k-1>" drawing from a
// universe of n identifiers. Each identifier joins each collection with
// probability p. Collections may be empty and the union may be smaller
// than n.
func (r *RNG) Collections(k, n int, p float64) []model.Collection {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := Identifiers(n)
	cols := make([]model.Collection, k)
	for i := range cols {
		cols[i].Name = fmt.Sprintf("DS%d", i)
	}
	for _, id := range ids {
		for i := range cols {
			if r.rand.Float64() < p {
				cols[i].Elements = append(cols[i].Elements, id)
			}
		}
	}
	return cols
}

// Permute returns cols reordered so that out[i] = cols[perm[i]].
func Permute(cols []model.Collection, perm []int) []model.Collection {
	out := make([]model.Collection, len(cols))
	for i, j := range perm {
		out[i] = cols[j]
	}
	return out
}

// Union returns the sorted distinct identifiers of all collections.
func Union(cols []model.Collection) []string {
	seen := make(map[string]struct{})
	for _, c := range cols {
		for _, e := range c.Elements {
			seen[e] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}
