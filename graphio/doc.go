// Package graphio reads and writes the plain-text graph format used for
// enumeration instances and emitted DAGs.
//
// What:
//
//	The format is a header line "<n> <m>", one blank line, then m lines
//	"<u> <v>" with 1-indexed endpoints:
//
//	    4 3
//
//	    1 2
//	    2 3
//	    3 4
//
//   - Read / ReadFile: parse a graph. With undirected=true each listed
//     pair contributes both arcs u→v and v→u; otherwise lines are taken
//     literally and an undirected edge must appear as two lines.
//   - Write / WriteFile: emit all arcs in lexicographic (u,v) order with
//     m equal to the number of lines. WriteFile stages through a temp
//     file in the target directory and renames, so readers never observe
//     a partial file.
//
// Complexity: O(n + m) either direction.
//
// Errors:
//
//   - ErrMalformed  header/edge line does not parse, fewer edge lines
//     than the header's m, or an edge is rejected by the graph (endpoint
//     out of range, self-loop, duplicate); wrapped with line context.
//     Lines after the m-th edge line are not read, so surplus lines are
//     not reported.
package graphio
