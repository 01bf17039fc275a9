// Package meek applies the four Meek orientation rules and enumerates a
// Markov equivalence class by branching on undirected edges.
//
// What:
//
//   - Close(g): orients undirected edges in place until no rule fires.
//     R1: a→b, b—c, a,c non-adjacent            ⇒ b→c
//     R2: a→b→c, a—c                            ⇒ a→c
//     R3: a—b, a—c, a—d, b→c, d→c, b,d non-adj  ⇒ a→c
//     R4: a—b, a—c, a—d, d→c→b, b,d non-adj     ⇒ a→b
//   - Enumerate(g, opts...): checks extendability (skippable with
//     WithTrustedInput), then recursively picks the first undirected
//     edge at pair index ≥ the last pivot, orients it both ways on
//     copies, Meek-closes each branch, and emits when no undirected
//     edge remains.
//
// Why:
//   - Every rule application is forced: all members of the class agree
//     on the oriented edge, so closure never cuts valid DAGs. Each rule
//     strictly reduces the undirected edge count, bounding passes by m.
//   - Branching both ways on one undirected edge of a closed graph
//     partitions the class, so the recursion emits each DAG exactly once.
//
// Complexity: Close is O(passes · Σ_v d_v²) with passes ≤ m; Enumerate
// clones the graph per branch, O(n+m) per node of the recursion tree.
//
// Errors:
//
//   - ErrGraphNil          nil input graph
//   - ErrOutputCap         emitted DAGs reached WithMaxDAGs (default 2²⁰)
//   - measure.ErrDeadline  propagated from the sink
package meek
