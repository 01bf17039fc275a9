// Package mecenum enumerates the directed acyclic graphs that are Markov
// equivalent to a given partially directed input graph.
//
// 🚀 What is mecenum?
//
//	A library of four interchangeable enumeration algorithms over one
//	shared graph representation:
//
//	  • mcs.EnumerateCPDAG     — maximum-cardinality bucket recursion for
//	    undirected chordal graphs and CPDAGs
//	  • mcs.EnumeratePDAG      — the same machinery extended with a
//	    second bucket axis for background-knowledge directions
//	  • meek.Enumerate         — branch on an undirected edge, close
//	    under the Meek rules, recurse
//	  • chickering.Enumerate / EnumerateDFS — walk the covered-edge
//	    reversal graph of one extension (the DFS variant keeps
//	    consecutive outputs within structural Hamming distance 3)
//
// ✨ Why mecenum?
//
//   - Deterministic — sorted adjacency and stable bucket orders make
//     every emission sequence reproducible bit for bit
//   - Measurable — a per-emission sink tracks delay statistics and
//     enforces a wall-clock deadline
//   - Grounded — extension (extend), Meek closure (meek.Close), and the
//     text instance format (graphio) are usable on their own
//
// Everything is organized under small focused subpackages:
//
//	core/       — the Digraph primitive shared by all algorithms
//	builder/    — deterministic instance families (paths, cliques, …)
//	graphio/    — plain-text instance and DAG files
//	measure/    — per-emission statistics, delay log, deadline
//	extend/     — consistent-extension engine (potential-sink elimination)
//	meek/       — Meek closure and the branching enumerator
//	mcs/        — maximum-cardinality-search bucket enumerators
//	chickering/ — covered-edge reversal enumerators
//	mectest/    — brute-force oracles backing the test suite
//
// Quick ASCII example:
//
//	    1───2
//	     ╲  │
//	      ╲ │
//	        3
//
//	the undirected triangle admits 6 Markov-equivalent DAGs — one per
//	topological order — and all four algorithms emit exactly those.
//
//	go get github.com/katalvlaran/mecenum
package mecenum
