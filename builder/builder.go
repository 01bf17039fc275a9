// SPDX-License-Identifier: MIT
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mecenum/core"
)

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum. Branch with errors.Is.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// Minimal sizes per constructor.
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Path builds the undirected path 1—2—…—n.
func Path(n int) (*core.Digraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := core.NewDigraph(n)
	for i := 1; i < n; i++ {
		if err := g.AddUndirectedEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: AddUndirectedEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Cycle builds the undirected cycle 1—2—…—n—1.
func Cycle(n int) (*core.Digraph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := core.NewDigraph(n)
	for i := 1; i < n; i++ {
		if err := g.AddUndirectedEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Cycle: AddUndirectedEdge(%d,%d): %w", i, i+1, err)
		}
	}
	if err := g.AddUndirectedEdge(n, 1); err != nil {
		return nil, fmt.Errorf("Cycle: AddUndirectedEdge(%d,%d): %w", n, 1, err)
	}

	return g, nil
}

// Complete builds the undirected clique K_n.
func Complete(n int) (*core.Digraph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := core.NewDigraph(n)
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if err := g.AddUndirectedEdge(u, v); err != nil {
				return nil, fmt.Errorf("Complete: AddUndirectedEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// Star builds the undirected star with center 1 and leaves 2..n.
func Star(n int) (*core.Digraph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := core.NewDigraph(n)
	for v := 2; v <= n; v++ {
		if err := g.AddUndirectedEdge(1, v); err != nil {
			return nil, fmt.Errorf("Star: AddUndirectedEdge(%d,%d): %w", 1, v, err)
		}
	}

	return g, nil
}

// Union builds the disjoint union of gs, shifting the vertices of each
// operand past those of the previous ones. Edge directions are preserved.
func Union(gs ...*core.Digraph) (*core.Digraph, error) {
	// 1. Total vertex count
	n := 0
	for _, g := range gs {
		n += g.VertexCount()
	}
	u := core.NewDigraph(n)
	// 2. Copy arcs with per-operand offset
	off := 0
	for _, g := range gs {
		for _, a := range g.Edges() {
			if err := u.AddEdge(a.From+off, a.To+off); err != nil {
				return nil, fmt.Errorf("Union: AddEdge(%d,%d): %w", a.From+off, a.To+off, err)
			}
		}
		off += g.VertexCount()
	}

	return u, nil
}
