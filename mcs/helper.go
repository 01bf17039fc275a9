package mcs

import (
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mecenum/core"
)

// helper is the bucket state driving the MCS recursion over all chordal
// components at once.
//
// Buckets a[k] hold the unvisited vertices whose current label is k, as
// sorted slices; inv[v] is v's label, negated once v is visited; tau is
// the ordering under construction with write cursor i; maxA tracks the
// highest non-empty bucket among unvisited vertices.
//
// On the CPDAG axis the label is 1 + (#visited component neighbors). The
// PDAG variant doubles the scale — 1 + 2·(#visited) + indegZero — where
// indegZero flags that no unvisited in-component directed parent of the
// vertex remains (parents/indeg are nil on the CPDAG path).
type helper struct {
	base *core.Digraph // emission base: input CPDAG, or the MPDAG copy
	c    *core.Digraph // component mirror, all edges bidirected
	n    int

	a    [][]int
	inv  []int
	tau  []int
	pos  []int // tau position per vertex; 0 while unplaced
	i    int   // next tau index, 1-based
	maxA int

	parents [][]int // PDAG: sorted in-component directed parents
	indeg   []int   // PDAG: unvisited portion of parents

	undirPairs [][2]int // undirected pairs of base, u<v, for emission
	em         *emitter
}

// newHelper assembles the bucket state. parents is nil for the CPDAG
// variant; for the PDAG variant indeg is derived from it.
func newHelper(base, c *core.Digraph, parents [][]int, em *emitter) *helper {
	n := base.VertexCount()
	h := &helper{
		base:    base,
		c:       c,
		n:       n,
		inv:     make([]int, n+1),
		tau:     make([]int, n+1),
		pos:     make([]int, n+1),
		i:       1,
		parents: parents,
		em:      em,
	}

	// 1. Undirected pairs of the emission base
	for u := 1; u <= n; u++ {
		for _, v := range base.OutNeighbors(u) {
			if v > u && base.IsUndirected(u, v) {
				h.undirPairs = append(h.undirPairs, [2]int{u, v})
			}
		}
	}

	// 2. Buckets and initial labels
	if parents == nil {
		h.a = make([][]int, n+3)
		for v := 1; v <= n; v++ {
			h.inv[v] = 1
			h.a[1] = append(h.a[1], v)
		}
		h.maxA = 1

		return h
	}

	h.indeg = make([]int, n+1)
	h.a = make([][]int, 2*n+5)
	for v := 1; v <= n; v++ {
		h.indeg[v] = len(parents[v])
		lab := 1
		if h.indeg[v] == 0 {
			lab = 2
		}
		h.inv[v] = lab
		h.a[lab] = append(h.a[lab], v)
	}
	h.maxA = 2
	if len(h.a[2]) == 0 {
		h.maxA = 1
	}

	return h
}

// rise is the largest possible label increase of a neighbor during set:
// +1 on the CPDAG axis, +2 plus the indeg-zero flag on the PDAG axis.
func (h *helper) rise() int {
	if h.parents == nil {
		return 1
	}

	return 3
}

// move relabels unvisited vertex w.
func (h *helper) move(w, lab int) {
	h.a[h.inv[w]] = removeSorted(h.a[h.inv[w]], w)
	h.inv[w] = lab
	h.a[lab] = insertSorted(h.a[lab], w)
}

// set visits v: removes it from the top bucket, appends it to tau, and
// lifts every unvisited component neighbor into its next bucket; on the
// PDAG axis it also decrements indeg of v's in-component children and
// raises their indeg-zero flag when indeg reaches zero. O(deg(v))
// bucket moves.
func (h *helper) set(v int) {
	lab := h.inv[v]
	h.inv[v] = -lab
	h.a[lab] = removeSorted(h.a[lab], v)
	h.tau[h.i] = v
	h.pos[v] = h.i
	h.i++

	for _, w := range h.c.InNeighbors(v) {
		if h.inv[w] <= 0 {
			continue
		}
		delta := 1
		if h.parents != nil {
			delta = 2
			if containsSorted(h.parents[w], v) {
				h.indeg[w]--
				if h.indeg[w] == 0 {
					delta = 3
				}
			}
		}
		h.move(w, h.inv[w]+delta)
	}

	h.maxA += h.rise()
	for h.maxA > 0 && len(h.a[h.maxA]) == 0 {
		h.maxA--
	}
}

// reset is the exact inverse of set.
func (h *helper) reset(v int) {
	for _, w := range h.c.InNeighbors(v) {
		if h.inv[w] <= 0 {
			continue
		}
		delta := -1
		if h.parents != nil {
			delta = -2
			if containsSorted(h.parents[w], v) {
				if h.indeg[w] == 0 {
					delta = -3
				}
				h.indeg[w]++
			}
		}
		h.move(w, h.inv[w]+delta)
	}

	h.i--
	h.tau[h.i] = 0
	h.pos[v] = 0
	lab := -h.inv[v]
	h.inv[v] = lab
	h.a[lab] = insertSorted(h.a[lab], v)
	// v came off the top bucket, and set never leaves a non-empty bucket
	// above it, so the pre-set top is exactly v's label.
	h.maxA = lab
}

// reachable returns, sorted, the vertices reachable from v through
// vertices currently in the top bucket (v included).
func (h *helper) reachable(v int) []int {
	lab := h.maxA
	seen := bits.New(h.n + 1)
	seen.SetBit(v, 1)
	queue := []int{v}
	out := make([]int, 0, len(h.a[lab]))
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		out = append(out, x)
		for _, w := range h.c.OutNeighbors(x) {
			if seen.Bit(w) == 0 && h.inv[w] == lab {
				seen.SetBit(w, 1)
				queue = append(queue, w)
			}
		}
	}
	sort.Ints(out)

	return out
}

// recurse drives the enumeration: take the top bucket's first vertex,
// recurse, then branch over its bucket-reachable siblings.
func (h *helper) recurse() error {
	if h.i > h.n {
		return h.emitDAG()
	}

	v := h.a[h.maxA][0]
	h.set(v)
	if err := h.recurse(); err != nil {
		return err
	}
	h.reset(v)

	for _, x := range h.reachable(v) {
		if x == v {
			continue
		}
		h.set(x)
		if err := h.recurse(); err != nil {
			return err
		}
		h.reset(x)
	}

	return nil
}

// emitDAG materializes the DAG of the completed tau: undirected pairs
// orient low-position→high-position, everything else copies as-is.
func (h *helper) emitDAG() error {
	d := h.base.Clone()
	for _, p := range h.undirPairs {
		u, v := p[0], p[1]
		if h.pos[u] < h.pos[v] {
			d.RemoveEdge(v, u)
		} else {
			d.RemoveEdge(u, v)
		}
	}

	return h.em.emit(d)
}

// components labels the connected components of the bidirected graph u,
// returning comp ids 1..k per vertex (0 stays unused).
func components(u *core.Digraph) []int {
	n := u.VertexCount()
	comp := make([]int, n+1)
	vis := bits.New(n + 1)
	next := 0
	for s := 1; s <= n; s++ {
		if vis.Bit(s) == 1 {
			continue
		}
		next++
		vis.SetBit(s, 1)
		queue := []int{s}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			comp[x] = next
			for _, w := range u.OutNeighbors(x) {
				if vis.Bit(w) == 0 {
					vis.SetBit(w, 1)
					queue = append(queue, w)
				}
			}
		}
	}

	return comp
}
