package chickering

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/extend"
)

// Enumerate emits every DAG in the Markov equivalence class of g that is
// compatible with g's directions, by covered-edge reversals from one
// extension, emitting each first-seen DAG on entry. Returns the emitted
// count; a non-extendable input yields count zero and no error.
func Enumerate(g *core.Digraph, opts ...Option) (*big.Int, error) {
	return run(g, false, opts)
}

// EnumerateDFS is Enumerate with parity emission: on entry at even
// depth, on exit at odd depth. Consecutive outputs differ in at most
// three edge orientations.
func EnumerateDFS(g *core.Digraph, opts ...Option) (*big.Int, error) {
	return run(g, true, opts)
}

func run(g *core.Digraph, parity bool, opts []Option) (*big.Int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed DAG (not an error when absent: the class is empty)
	count := new(big.Int)
	d, err := extend.Extend(g)
	if err != nil {
		if errors.Is(err, extend.ErrNotExtendable) {
			return count, nil
		}

		return count, err
	}

	// 4. Depth-first reversal walk
	w := &walker{
		input:   g,
		d:       d,
		parity:  parity,
		visited: map[string]bool{d.Fingerprint(): true},
		emitter: emitter{opts: o, count: count},
	}

	return count, w.walk(0)
}

// walker carries the reversal walk's state: the mutable DAG d and the
// fingerprints of every DAG already claimed by some tree node.
type walker struct {
	input   *core.Digraph
	d       *core.Digraph
	parity  bool
	visited map[string]bool
	emitter
}

// coveredEdges lists, in lexicographic order, the arcs x→y of d that
// were undirected in the input and satisfy parents(x) = parents(y)\{x}.
func (w *walker) coveredEdges() [][2]int {
	var out [][2]int
	for _, a := range w.d.Edges() {
		if !w.input.IsUndirected(a.From, a.To) {
			continue
		}
		px := w.d.InNeighbors(a.From)
		py := w.d.InNeighbors(a.To)
		if len(py) != len(px)+1 {
			continue
		}
		// py minus {a.From} must equal px; both are sorted.
		i := 0
		match := true
		for _, p := range py {
			if p == a.From {
				continue
			}
			if i == len(px) || px[i] != p {
				match = false

				break
			}
			i++
		}
		if match && i == len(px) {
			out = append(out, [2]int{a.From, a.To})
		}
	}

	return out
}

// walk explores the reversal tree rooted at the current d.
func (w *walker) walk(depth int) error {
	if !w.parity || depth%2 == 0 {
		if err := w.emit(w.d); err != nil {
			return err
		}
	}

	for _, ce := range w.coveredEdges() {
		x, y := ce[0], ce[1]
		// Reverse x→y in place.
		w.d.RemoveEdge(x, y)
		w.d.AddEdge(y, x)

		fp := w.d.Fingerprint()
		if !w.visited[fp] {
			w.visited[fp] = true
			if err := w.walk(depth + 1); err != nil {
				return err
			}
		}

		// Undo.
		w.d.RemoveEdge(y, x)
		w.d.AddEdge(x, y)
	}

	if w.parity && depth%2 == 1 {
		return w.emit(w.d)
	}

	return nil
}
