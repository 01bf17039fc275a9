package meek

import "github.com/katalvlaran/mecenum/core"

// adjacent reports any edge between x and y, whatever its direction.
func adjacent(g *core.Digraph, x, y int) bool {
	return g.HasEdge(x, y) || g.HasEdge(y, x)
}

// Close applies the four Meek rules to fixpoint, in place. Edges are
// scanned in ascending (u,v) order each pass; the pass repeats until no
// rule fires, so the result is the unique maximally oriented graph.
func Close(g *core.Digraph) {
	n := g.VertexCount()
	for changed := true; changed; {
		changed = false
		for u := 1; u <= n; u++ {
			for _, v := range g.OutNeighbors(u) {
				if g.IsUndirected(u, v) && forces(g, u, v) {
					g.RemoveEdge(v, u) // orient u→v
					changed = true
				}
			}
		}
	}
}

// forces reports whether some Meek rule orients the undirected edge u—v
// as u→v.
func forces(g *core.Digraph, u, v int) bool {
	// R1: a→u, u—v, a and v non-adjacent.
	for _, a := range g.InNeighbors(u) {
		if a != v && g.IsDirected(a, u) && !adjacent(g, a, v) {
			return true
		}
	}

	// R2: u→b→v with u—v.
	for _, b := range g.OutNeighbors(u) {
		if g.IsDirected(u, b) && g.IsDirected(b, v) {
			return true
		}
	}

	// R3: u—b, u—d, b→v, d→v, b and d non-adjacent.
	var spokes []int
	for _, b := range g.AllNeighbors(u) {
		if g.IsUndirected(u, b) && g.IsDirected(b, v) {
			spokes = append(spokes, b)
		}
	}
	for i := 0; i < len(spokes); i++ {
		for j := i + 1; j < len(spokes); j++ {
			if !adjacent(g, spokes[i], spokes[j]) {
				return true
			}
		}
	}

	// R4: u—c, u—d, d→c→v, d≠v, v and d non-adjacent.
	for _, c := range g.AllNeighbors(u) {
		if !g.IsUndirected(u, c) || !g.IsDirected(c, v) {
			continue
		}
		for _, d := range g.AllNeighbors(u) {
			if d != v && g.IsUndirected(u, d) && g.IsDirected(d, c) && !adjacent(g, v, d) {
				return true
			}
		}
	}

	return false
}
