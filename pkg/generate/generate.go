// Package generate builds random undirected graphs for testing.
//
// [Generate] fills an n×n symmetric 0/1 adjacency matrix. For every row i it
// draws a count k uniformly from [0, n), samples k distinct target indices
// from [0, n) without replacement, and sets both [i][j] and [j][i] for each
// target j. Because k is re-drawn per row, the result is not a fixed-density
// Erdős–Rényi graph. Self-loops are possible and are kept.
//
// The returned graph carries only the matrix; its node table and edge list
// are empty. Use [graph.Graph.MaterializeMatrix] in the other direction.
//
// Randomness is always injected, so output is reproducible for a fixed seed:
//
//	g := generate.New(42).Generate(100)
package generate

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/adjgraph/pkg/graph"
	"github.com/matzehuels/adjgraph/pkg/observability"
)

// Generator produces random graphs from an owned random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return NewWithRand(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
}

// NewWithRand returns a Generator that draws from rng.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a graph with a random symmetric n×n matrix.
func (g *Generator) Generate(n int) *graph.Graph {
	return Generate(n, g.rng)
}

// Generate returns a graph with a random symmetric n×n matrix drawn from rng.
// A negative n is treated as 0.
func Generate(n int, rng *rand.Rand) *graph.Graph {
	start := time.Now()
	n = max(n, 0)
	m := graph.NewMatrix(n)
	for i := 0; i < n; i++ {
		k := rng.IntN(n)
		for _, j := range sample(rng, n, k) {
			m.Set(i, j, 1)
			m.Set(j, i, 1)
		}
	}
	observability.Generate().OnGenerate(n, m.Ones(), time.Since(start))
	return graph.NewWithMatrix(m)
}

// sample returns k distinct indices drawn uniformly from [0, n).
func sample(rng *rand.Rand, n, k int) []int {
	return rng.Perm(n)[:k]
}
