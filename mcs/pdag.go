package mcs

import (
	"math/big"

	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/extend"
	"github.com/katalvlaran/mecenum/meek"
)

// EnumeratePDAG emits every DAG in the Markov equivalence class of g
// that respects g's background directions, by two-axis bucket recursion
// (see the package doc for the cost of each step). The input is first
// checked for extendability (a
// non-extendable g yields count zero, no error), then Meek-closed into
// its MPDAG on a private copy before the bucket recursion starts.
func EnumeratePDAG(g *core.Digraph, opts ...Option) (*big.Int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Extendability gate (not an error: the class is simply empty)
	count := new(big.Int)
	if !extend.Extendable(g) {
		return count, nil
	}

	// 4. Maximally orient a private copy
	m := g.Clone()
	meek.Close(m)

	// 5. Components of the undirected subgraph U
	n := m.VertexCount()
	u := core.NewDigraph(n)
	for x := 1; x <= n; x++ {
		for _, y := range m.OutNeighbors(x) {
			if y > x && m.IsUndirected(x, y) {
				u.AddUndirectedEdge(x, y)
			}
		}
	}
	comp := components(u)

	// 6. Component mirror: every edge of m whose endpoints share a
	// U-component joins bidirected, so the recursion can traverse
	// background-directed edges; their origin is kept in parents.
	c := core.NewDigraph(n)
	parents := make([][]int, n+1)
	for _, a := range m.Edges() {
		if comp[a.From] != comp[a.To] {
			continue
		}
		if m.IsUndirected(a.From, a.To) {
			if a.From < a.To {
				c.AddUndirectedEdge(a.From, a.To)
			}

			continue
		}
		c.AddUndirectedEdge(a.From, a.To)
		parents[a.To] = insertSorted(parents[a.To], a.From)
	}

	// 7. Two-axis bucket recursion
	h := newHelper(m, c, parents, &emitter{opts: o, count: count})

	return count, h.recurse()
}
