// Package measure implements the per-emission measurement sink shared by
// all enumerators: running delay statistics, an optional delay log, and
// cooperative deadline cancellation.
//
// What:
//
//   - Sink: observes one event per emitted DAG. Each Observe() samples
//     the wall-clock delay since the previous emission and folds it into
//     min/max and Welford mean/M2 accumulators.
//   - WithTimeout(d): once wall clock from construction exceeds d,
//     Observe returns ErrDeadline; the caller unwinds its recursion and
//     reports a partial count. The aggregates stay valid.
//   - WithDelayLog(path): appends one "n,elapsed_ms" row per emission.
//   - WithClock(fn): injectable clock for deterministic tests.
//
// Why:
//   - Enumeration delay (not just total runtime) is the quantity of
//     interest for linear-delay algorithms; Welford's recurrence keeps
//     mean and variance numerically stable over millions of samples
//     without storing them.
//
// Complexity: Observe is O(1) plus one buffered write when logging.
//
// Errors:
//
//   - ErrDeadline  wall clock from start exceeded the configured timeout
package measure
