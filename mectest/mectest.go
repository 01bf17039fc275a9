package mectest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mecenum/core"
)

// MaxUndirected bounds the undirected-edge count Class will exhaust over.
const MaxUndirected = 20

// IsDAG reports whether every edge of g is directed and g is acyclic.
func IsDAG(g *core.Digraph) bool {
	n := g.VertexCount()
	for u := 1; u <= n; u++ {
		for _, v := range g.OutNeighbors(u) {
			if g.HasEdge(v, u) {
				return false // undirected pair
			}
		}
	}

	// Cycle check by coloring: vis marks every vertex entered so far, path
	// the current recursion stack.
	vis := bits.New(n + 1)
	path := bits.New(n + 1)
	var dfs func(v int) bool
	dfs = func(v int) bool {
		vis.SetBit(v, 1)
		path.SetBit(v, 1)
		for _, w := range g.OutNeighbors(v) {
			if path.Bit(w) == 1 {
				return false
			}
			if vis.Bit(w) == 0 && !dfs(w) {
				return false
			}
		}
		path.SetBit(v, 0)

		return true
	}
	for v := 1; v <= n; v++ {
		if vis.Bit(v) == 0 && !dfs(v) {
			return false
		}
	}

	return true
}

// Skeleton returns a canonical encoding of g's underlying undirected
// graph: the adjacent pairs u<v in lexicographic order.
func Skeleton(g *core.Digraph) string {
	var sb strings.Builder
	n := g.VertexCount()
	for u := 1; u <= n; u++ {
		for _, v := range g.AllNeighbors(u) {
			if v > u {
				fmt.Fprintf(&sb, "%d-%d;", u, v)
			}
		}
	}

	return sb.String()
}

// VStructures returns a canonical encoding of g's unshielded colliders:
// triples a→b←c with a<c and a,c non-adjacent, sorted.
func VStructures(g *core.Digraph) string {
	var triples []string
	n := g.VertexCount()
	for b := 1; b <= n; b++ {
		parents := make([]int, 0, 4)
		for _, a := range g.InNeighbors(b) {
			if g.IsDirected(a, b) {
				parents = append(parents, a)
			}
		}
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				a, c := parents[i], parents[j]
				if !g.HasEdge(a, c) && !g.HasEdge(c, a) {
					triples = append(triples, fmt.Sprintf("%d>%d<%d;", a, b, c))
				}
			}
		}
	}
	sort.Strings(triples)

	return strings.Join(triples, "")
}

// Class exhaustively computes the Markov equivalence class of g
// restricted to g's existing directions: every orientation of the
// undirected edges that yields an acyclic graph with unchanged
// v-structures. Returned as sorted fingerprints. Panics when g carries
// more than MaxUndirected undirected edges.
func Class(g *core.Digraph) []string {
	// 1. Collect the undirected pairs u<v
	type pair struct{ u, v int }
	var und []pair
	n := g.VertexCount()
	for u := 1; u <= n; u++ {
		for _, v := range g.OutNeighbors(u) {
			if v > u && g.IsUndirected(u, v) {
				und = append(und, pair{u, v})
			}
		}
	}
	if len(und) > MaxUndirected {
		panic(fmt.Sprintf("mectest: %d undirected edges exceed MaxUndirected=%d", len(und), MaxUndirected))
	}

	// 2. Exhaust all orientations
	want := VStructures(g)
	var class []string
	for mask := 0; mask < 1<<len(und); mask++ {
		d := g.Clone()
		for i, p := range und {
			if mask&(1<<i) != 0 {
				d.RemoveEdge(p.v, p.u) // keep u→v
			} else {
				d.RemoveEdge(p.u, p.v) // keep v→u
			}
		}
		if IsDAG(d) && VStructures(d) == want {
			class = append(class, d.Fingerprint())
		}
	}
	sort.Strings(class)

	return class
}
