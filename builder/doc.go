// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph families used as
// enumeration instances: undirected paths, cycles, cliques, stars,
// and disjoint unions.
//
// What:
//
//   - Path(n), Cycle(n), Complete(n), Star(n): classic undirected shapes
//     on vertices 1..n, emitted in stable ascending edge order.
//   - Union(gs...): disjoint union with vertices of later operands shifted
//     past those of earlier ones.
//
// Why:
//   - Markov-equivalence enumeration is usually exercised on chordal
//     families (paths, cliques) and their unions; keeping the
//     constructors deterministic makes enumeration outputs reproducible
//     bit for bit.
//
// Complexity: O(n + m) per constructor; O(Σ(nᵢ+mᵢ)) for Union.
//
// Errors:
//
//   - ErrTooFewVertices  parameter below the constructor's minimum
package builder
