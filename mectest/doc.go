// Package mectest provides the independent oracles the enumeration tests
// are checked against: DAG-ness, skeletons, v-structures, and a
// brute-force Markov equivalence class.
//
// What:
//
//   - IsDAG(g): all edges directed and the graph acyclic.
//   - Skeleton(g): canonical string of the underlying undirected pairs.
//   - VStructures(g): canonical string of all unshielded colliders
//     a→b←c with a,c non-adjacent.
//   - Class(g): every orientation of g's undirected edges that is
//     acyclic and introduces no new v-structure, as a sorted slice of
//     arc-set fingerprints. This is the set each enumerator must emit,
//     computed by exhaustion rather than by any of the enumerators.
//
// Why:
//   - Soundness, completeness, uniqueness, and cross-algorithm agreement
//     all reduce to comparisons against these oracles; keeping them
//     independent of the production algorithms is what makes the
//     comparisons meaningful.
//
// Class is exponential by construction and refuses instances with more
// than MaxUndirected undirected edges.
package mectest
