package extend

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/mecenum/core"
)

// extGraph is a working copy of the input plus the six counter vectors
// that make the potential-sink probe O(1).
type extGraph struct {
	g *core.Digraph

	outDir, inDir     []int // directed out/in degree
	outUndir, inUndir []int // undirected degree (counted on both axes)
	alpha             []int // adjacent pairs among undirected neighbors
	beta              []int // adjacent ⟨undirected neighbor, directed predecessor⟩ pairs
}

// newExtGraph builds the counters by inserting g's edges one unordered
// pair at a time (adj < v) into an initially empty working copy. Each
// insertion updates the α/β contributions over the common neighborhood
// seen so far, so every triple is counted exactly once — by whichever of
// its edges arrives last.
func newExtGraph(g *core.Digraph) *extGraph {
	n := g.VertexCount()
	e := &extGraph{
		g:        core.NewDigraph(n),
		outDir:   make([]int, n+1),
		inDir:    make([]int, n+1),
		outUndir: make([]int, n+1),
		inUndir:  make([]int, n+1),
		alpha:    make([]int, n+1),
		beta:     make([]int, n+1),
	}
	for v := 1; v <= n; v++ {
		for _, adj := range g.AllNeighbors(v) {
			if adj >= v {
				break // sorted; each unordered pair once
			}
			switch {
			case g.IsUndirected(v, adj):
				e.g.AddUndirectedEdge(adj, v)
				e.outUndir[v]++
				e.inUndir[v]++
				e.outUndir[adj]++
				e.inUndir[adj]++
				e.updateAlphaBeta(adj, v, 1, false)
			case g.HasEdge(adj, v): // adj→v
				e.g.AddEdge(adj, v)
				e.outDir[adj]++
				e.inDir[v]++
				e.updateAlphaBeta(adj, v, 1, true)
			default: // v→adj
				e.g.AddEdge(v, adj)
				e.outDir[v]++
				e.inDir[adj]++
				e.updateAlphaBeta(v, adj, 1, true)
			}
		}
	}

	return e
}

// commonNeighbors intersects the sorted neighbor lists of u and v.
func (e *extGraph) commonNeighbors(u, v int) []int {
	a, b := e.g.AllNeighbors(u), e.g.AllNeighbors(v)
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// updateAlphaBeta adjusts the α/β contributions of the edge u~v (directed
// u→v when isD) by val ∈ {+1,−1}, scanning the common neighborhood of its
// endpoints. The case table is applied as written; the edge itself must be
// present in the working graph when adding and still present when removing.
func (e *extGraph) updateAlphaBeta(u, v, val int, isD bool) {
	for _, x := range e.commonNeighbors(u, v) {
		ux := e.g.IsUndirected(u, x)
		vx := e.g.IsUndirected(v, x)

		if !isD && ux {
			e.alpha[u] += val
		}
		if !isD && !e.g.HasEdge(u, x) && e.g.HasEdge(x, u) {
			e.beta[u] += val
		}
		if !isD && vx {
			e.alpha[v] += val
		}
		if isD && vx {
			e.beta[v] += val
		}
		if !isD && e.g.HasEdge(x, v) && !e.g.HasEdge(v, x) {
			e.beta[v] += val
		}
		if ux && vx {
			e.alpha[x] += val
		}
		if vx && e.g.HasEdge(u, x) && !e.g.HasEdge(x, u) {
			e.beta[x] += val
		}
		if ux && !e.g.HasEdge(x, v) && e.g.HasEdge(v, x) {
			e.beta[x] += val
		}
	}
}

// potentialSink probes the invariant: no outgoing directed edge, the
// undirected neighbors form a clique, and every directed predecessor is
// adjacent to every undirected neighbor.
func (e *extGraph) potentialSink(s int) bool {
	if e.outDir[s] != 0 {
		return false
	}
	k := e.outUndir[s]
	pairs := 0
	if k >= 2 {
		pairs = combin.Binomial(k, 2)
	}

	return e.alpha[s] == pairs && e.beta[s] == k*e.inDir[s]
}

// removeVertex deletes every edge incident to s from the working graph,
// rolling the counters back with val=−1 before each erase so later probes
// stay exact. s must currently be a potential sink.
func (e *extGraph) removeVertex(s int) {
	for _, u := range e.g.AllNeighbors(s) {
		if e.g.IsUndirected(s, u) {
			e.updateAlphaBeta(s, u, -1, false)
			e.g.RemoveEdge(s, u)
			e.g.RemoveEdge(u, s)
			e.outUndir[s]--
			e.inUndir[s]--
			e.outUndir[u]--
			e.inUndir[u]--

			continue
		}
		// A potential sink has no outgoing directed edge, so the only
		// remaining case is the incoming directed u→s.
		e.updateAlphaBeta(u, s, -1, true)
		e.g.RemoveEdge(u, s)
		e.outDir[u]--
		e.inDir[s]--
	}
}
