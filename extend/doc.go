// Package extend decides whether a partially directed acyclic graph has a
// consistent DAG extension and, when it does, produces one.
//
// What:
//
//   - Extendable(g): reports whether some DAG has g's skeleton, keeps
//     every directed edge of g, and introduces no new v-structure.
//   - Extend(g): returns such a DAG, or ErrNotExtendable.
//
// How:
//
//	Repeated potential-sink elimination. A vertex s is a potential sink
//	when it has no outgoing directed edge, its undirected neighbors are
//	pairwise adjacent, and every directed predecessor is adjacent to
//	every undirected neighbor. Orienting all undirected edges at such an
//	s inward is always safe; g is extendable iff eliminating potential
//	sinks one by one consumes the whole graph.
//
//	To keep the sink test O(1) per probe, the working copy carries six
//	per-vertex counters: directed and undirected out/in degrees, α
//	(adjacent pairs among undirected neighbors) and β (adjacent
//	⟨undirected neighbor, directed predecessor⟩ pairs), updated
//	incrementally over the common neighborhood of each touched edge.
//
//	Elimination order is LIFO over the work stack: candidates enter in
//	ascending vertex id, newly created sinks are pushed as discovered.
//	The order never affects Extendable's answer, but it does select
//	which extension Extend returns; the order above is part of the API.
//
// Complexity: building the counters costs O(Σ_e |N(u)∩N(v)|); the whole
// elimination is O(n·d_max²) worst case, linear on sparse graphs.
//
// Errors:
//
//   - ErrNotExtendable  g admits no consistent extension
package extend
