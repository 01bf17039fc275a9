// Package mcs enumerates Markov equivalence classes with
// maximum-cardinality-search bucket recursion, in two variants:
//
//   - EnumerateCPDAG: for undirected chordal graphs and CPDAGs. Buckets
//     A[k] hold the unvisited vertices with k-1 visited neighbors; the
//     recursion always takes the top bucket's smallest vertex, then
//     branches over the vertices reachable from it inside that bucket.
//     Every perfect elimination ordering produced this way orients each
//     chordal component into a distinct acyclic, v-structure-free DAG.
//   - EnumeratePDAG: for PDAGs with background knowledge. The input is
//     first checked for extendability and Meek-closed into its MPDAG.
//     Directed edges inside an undirected-connected component join the
//     component mirror as traversable bidirected edges, and the bucket
//     label gains a second axis — 1 + 2·(visited neighbors) + 1 when no
//     unvisited in-component parent remains — so vertices with
//     unresolved background parents are dominated and the emitted
//     orderings always respect the background directions.
//
// The bucket triple (A, invA, maxA) supports set/reset of one vertex
// with one bucket move per component neighbor. Buckets are sorted
// slices, so each move is a sorted insert plus a sorted delete, costing
// time linear in the sizes of the buckets involved; set/reset is
// therefore not O(degree), and the delay between two emitted DAGs is not
// linear in the size of the output (dense components such as cliques
// pay an extra factor of up to the component size).
//
// Because buckets are sorted, "first of the top bucket" is the
// smallest vertex id and the whole emission sequence is deterministic.
//
// Errors:
//
//   - ErrGraphNil          nil input graph
//   - measure.ErrDeadline  propagated from the sink
package mcs
