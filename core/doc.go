// Package core defines the Digraph primitive shared by every enumeration
// and orientation algorithm in mecenum.
//
// What:
//
//   - Digraph: a mutable directed graph over the fixed vertex set 1..n,
//     with forward and backward adjacency kept as sorted int slices.
//   - An undirected edge u—v is encoded as the arc pair u→v and v→u;
//     a directed edge u→v is an arc without its reverse. The derived
//     predicates IsDirected and IsUndirected make the distinction.
//   - Deterministic accessors: Edges() lists arcs in lexicographic (u,v)
//     order, neighbor slices are always sorted ascending, Fingerprint()
//     canonicalizes the arc set into a comparable string.
//
// Why:
//   - Partially directed graphs (CPDAGs, PDAGs, MPDAGs) and their DAG
//     extensions all live in one representation, so orienting an
//     undirected edge means nothing more than removing the reverse arc.
//   - Sorted adjacency gives O(log d) membership and keeps every
//     iteration order stable, which the enumerators rely on for
//     reproducible output sequences.
//
// Complexity:
//
//   - HasEdge / IsDirected / IsUndirected:  O(log d)
//   - AddEdge / RemoveEdge:                 O(d) (sorted insert/delete)
//   - Neighbor iteration:                   O(d)
//   - Edges / Clone / Fingerprint:          O(n + m)
//
// Errors:
//
//   - ErrVertexRange    vertex id outside 1..n
//   - ErrSelfLoop       attempt to add u→u
//   - ErrDuplicateEdge  arc already present
package core
