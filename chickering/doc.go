// Package chickering enumerates a Markov equivalence class by walking
// the covered-edge reversal graph of one DAG extension.
//
// What:
//
//   - Enumerate(g, opts...): seeds with extend.Extend(g), then
//     depth-first reverses covered edges — x→y with parents(x) =
//     parents(y)\{x}, restricted to pairs undirected in g — emitting
//     each first-seen DAG on entry. Reversing a covered edge preserves
//     both acyclicity and Markov equivalence, and the reversal graph is
//     connected over the class, so the walk reaches every member.
//   - EnumerateDFS(g, opts...): the same tree walk, but emitting on
//     entry at even depth and on exit at odd depth. Consecutive outputs
//     then differ in at most three edge orientations.
//
// The visited set stores one canonical arc-list fingerprint per DAG:
// O(m) memory per member, O(m·count) total. That is acceptable only for
// small instances, so both walks stop with ErrOutputCap once WithMaxDAGs
// (default 2²⁰) DAGs have been emitted.
//
// Errors:
//
//   - ErrGraphNil          nil input graph
//   - ErrOutputCap         emitted DAGs reached WithMaxDAGs
//   - measure.ErrDeadline  propagated from the sink
package chickering
