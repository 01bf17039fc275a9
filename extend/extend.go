package extend

import (
	"errors"

	"github.com/katalvlaran/mecenum/core"
)

// ErrNotExtendable indicates that g admits no consistent DAG extension.
var ErrNotExtendable = errors.New("extend: no consistent extension")

// Extendable reports whether g has a consistent DAG extension.
func Extendable(g *core.Digraph) bool {
	return eliminate(newExtGraph(g), nil) == 0
}

// Extend returns a consistent DAG extension of g: same skeleton, every
// directed edge of g preserved, no new v-structures. The undirected edges
// at each eliminated potential sink are oriented inward, so the produced
// DAG is determined by the documented elimination order. Returns
// ErrNotExtendable when no extension exists.
func Extend(g *core.Digraph) (*core.Digraph, error) {
	d := g.Clone()
	if eliminate(newExtGraph(g), d) != 0 {
		return nil, ErrNotExtendable
	}

	return d, nil
}

// eliminate runs potential-sink elimination on e and returns the number of
// vertices left unremoved (zero iff extendable). When mirror is non-nil,
// popping sink s drops every arc s→u from it, orienting s's undirected
// edges inward; on success mirror holds the extension.
//
// The stack is seeded with all initial potential sinks in ascending id
// (so the largest is popped first) and grows LIFO as eliminations create
// new sinks among former neighbors.
func eliminate(e *extGraph, mirror *core.Digraph) int {
	n := e.g.VertexCount()
	removed := make([]bool, n+1)
	queued := make([]bool, n+1)
	stack := make([]int, 0, n)

	// 1. Seed with the initial potential sinks
	for v := 1; v <= n; v++ {
		if e.potentialSink(v) {
			queued[v] = true
			stack = append(stack, v)
		}
	}

	// 2. Eliminate until the stack drains
	remaining := n
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		queued[s] = false
		// Edges may have changed since s was queued; re-probe.
		if removed[s] || !e.potentialSink(s) {
			continue
		}
		removed[s] = true
		remaining--

		// 3. Snapshot before mutation
		nbrs := e.g.AllNeighbors(s)
		if mirror != nil {
			for _, u := range e.g.OutNeighbors(s) {
				mirror.RemoveEdge(s, u)
			}
		}

		// 4. Strip s from the working graph, counters in lockstep
		e.removeVertex(s)

		// 5. Former neighbors may have become potential sinks
		for _, u := range nbrs {
			if !removed[u] && !queued[u] && e.potentialSink(u) {
				queued[u] = true
				stack = append(stack, u)
			}
		}
	}

	return remaining
}
