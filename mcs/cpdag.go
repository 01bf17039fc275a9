package mcs

import (
	"math/big"

	"github.com/katalvlaran/mecenum/core"
)

// EnumerateCPDAG emits every DAG in the Markov equivalence class
// represented by the CPDAG (or undirected chordal graph) g, by bucket
// recursion (see the package doc for the cost of each step). Returns
// the emitted count. The input is
// trusted to be a valid representative; directed edges are copied into
// every output unchanged.
func EnumerateCPDAG(g *core.Digraph, opts ...Option) (*big.Int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Component mirror: only the undirected edges of g, bidirected
	n := g.VertexCount()
	c := core.NewDigraph(n)
	for u := 1; u <= n; u++ {
		for _, v := range g.OutNeighbors(u) {
			if v > u && g.IsUndirected(u, v) {
				c.AddUndirectedEdge(u, v)
			}
		}
	}

	// 4. Bucket recursion over all components at once
	count := new(big.Int)
	h := newHelper(g, c, nil, &emitter{opts: o, count: count})

	return count, h.recurse()
}
