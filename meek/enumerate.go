package meek

import (
	"math/big"

	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/extend"
)

// Enumerate emits every DAG in the Markov equivalence class of g that is
// compatible with g's existing directions, by recursive edge branching
// under Meek closure. Returns the emitted count; a non-extendable input
// yields count zero and no error. On ErrOutputCap or
// measure.ErrDeadline the partial count is still returned.
func Enumerate(g *core.Digraph, opts ...Option) (*big.Int, error) {
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
	if !o.TrustedInput && !extend.Extendable(g) {
		return count, nil
	}

	// 4. Branch-and-close recursion on a private copy
	e := &enumerator{emitter: emitter{opts: o, count: count}}
	err := e.recurse(g.Clone(), 1)

	return count, err
}

// enumerator carries the emission state through the recursion.
type enumerator struct {
	emitter
}

// recurse closes g under the Meek rules, finds the first undirected edge
// whose smaller endpoint is ≥ lastIdx, and branches on its two
// orientations. Pairs below lastIdx were already fully directed on this
// path and closure never undoes an orientation, so the pruned scan is
// exact.
func (e *enumerator) recurse(g *core.Digraph, lastIdx int) error {
	Close(g)

	// Locate the pivot edge.
	n := g.VertexCount()
	u, v := 0, 0
scan:
	for uu := lastIdx; uu <= n; uu++ {
		for _, vv := range g.OutNeighbors(uu) {
			if vv > uu && g.IsUndirected(uu, vv) {
				u, v = uu, vv

				break scan
			}
		}
	}

	// Fully oriented: one member of the class.
	if u == 0 {
		return e.emit(g)
	}

	// Branch u→v.
	left := g.Clone()
	left.RemoveEdge(v, u)
	if err := e.recurse(left, u); err != nil {
		return err
	}

	// Branch v→u.
	right := g.Clone()
	right.RemoveEdge(u, v)

	return e.recurse(right, u)
}
