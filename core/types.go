// Package core: type declarations and sentinel errors for the Digraph
// primitive. Algorithmic methods live in digraph.go.
package core

import "errors"

// Sentinel errors for Digraph mutations.
var (
	// ErrVertexRange indicates a vertex id outside the range 1..n.
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an attempt to add an edge u→u.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the arc is already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Arc is a single directed edge From→To. An undirected edge appears as
// two Arcs, one per direction.
type Arc struct {
	From, To int
}

// Digraph is a directed graph over the fixed vertex set 1..n.
//
// Both adjacency directions are maintained: out[v] holds the heads of arcs
// leaving v, in[v] the tails of arcs entering v, each sorted ascending.
// Invariant: v appears in out[u] iff u appears in in[v]. Index 0 of either
// slice table is unused so vertex ids index directly.
type Digraph struct {
	n    int     // number of vertices
	out  [][]int // out[v]: sorted heads of arcs v→·
	in   [][]int // in[v]: sorted tails of arcs ·→v
	arcs int     // cached arc count
}

// NewDigraph returns an empty Digraph on the vertex set 1..n.
// A non-positive n yields a graph with no vertices.
func NewDigraph(n int) *Digraph {
	if n < 0 {
		n = 0
	}

	return &Digraph{
		n:   n,
		out: make([][]int, n+1),
		in:  make([][]int, n+1),
	}
}

// VertexCount reports the number of vertices n.
func (g *Digraph) VertexCount() int { return g.n }

// ArcCount reports the number of stored arcs. An undirected edge counts
// as two arcs.
func (g *Digraph) ArcCount() int { return g.arcs }
