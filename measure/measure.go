package measure

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
)

// ErrDeadline is returned by Observe once the wall clock measured from
// Sink construction exceeds the configured timeout. Enumerators propagate
// it unchanged; callers branch with errors.Is.
var ErrDeadline = errors.New("measure: deadline exceeded")

// Stats is the aggregate view over all observed emission delays.
type Stats struct {
	// Min and Max are the extreme inter-emission delays.
	Min, Max time.Duration

	// Mean is the average inter-emission delay.
	Mean time.Duration

	// Std is the sample standard deviation, sqrt(M2/(n-1)); zero when
	// fewer than two samples were observed.
	Std time.Duration

	// N is the number of observed emissions.
	N int64
}

// Option configures a Sink at construction time.
type Option func(*Sink)

// WithTimeout sets the cancellation deadline measured from Sink
// construction. Non-positive d disables the deadline (the default).
func WithTimeout(d time.Duration) Option {
	return func(s *Sink) { s.timeout = d }
}

// WithDelayLog makes the Sink append one "n,elapsed_ms" row per emission
// to the file at path. The file is created or truncated by NewSink and
// flushed by Close.
func WithDelayLog(path string) Option {
	return func(s *Sink) { s.logPath = path }
}

// WithClock installs fn as the Sink's time source. Nil is ignored.
// Intended for deterministic tests; defaults to time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *Sink) {
		if fn != nil {
			s.now = fn
		}
	}
}

// Sink accumulates running statistics over emission delays and checks
// the cancellation deadline. A Sink belongs to a single enumeration call
// and is not safe for concurrent use.
type Sink struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	timeout time.Duration

	min, max time.Duration
	mean, m2 float64 // Welford accumulators, nanoseconds
	n        int64

	logPath string
	logFile *os.File
	logW    *bufio.Writer
}

// NewSink constructs a Sink, opening the delay log when configured.
func NewSink(opts ...Option) (*Sink, error) {
	s := &Sink{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logPath != "" {
		f, err := os.Create(s.logPath)
		if err != nil {
			return nil, fmt.Errorf("measure: open delay log: %w", err)
		}
		s.logFile = f
		s.logW = bufio.NewWriter(f)
	}
	s.start = s.now()
	s.last = s.start

	return s, nil
}

// Observe records one emission. It samples the delay since the previous
// emission, folds it into the aggregates, appends the delay-log row, and
// finally checks the deadline. Returns ErrDeadline past the timeout, or
// a delay-log write error.
func (s *Sink) Observe() error {
	// 1. Sample
	ts := s.now()
	elapsed := ts.Sub(s.last)
	s.n++

	// 2. Extremes
	if s.n == 1 || elapsed < s.min {
		s.min = elapsed
	}
	if s.n == 1 || elapsed > s.max {
		s.max = elapsed
	}

	// 3. Welford recurrence on nanoseconds
	delta := float64(elapsed) - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (float64(elapsed) - s.mean)

	// 4. Optional delay-log row
	if s.logW != nil {
		if _, err := fmt.Fprintf(s.logW, "%d,%.6f\n", s.n, float64(elapsed)/1e6); err != nil {
			return fmt.Errorf("measure: delay log write: %w", err)
		}
	}

	// 5. Restart the delay clock, then enforce the deadline
	s.last = s.now()
	if s.timeout > 0 && ts.Sub(s.start) >= s.timeout {
		return ErrDeadline
	}

	return nil
}

// Stats returns the aggregate view over all observations so far.
// Valid even after ErrDeadline (partial tallies stay meaningful).
func (s *Sink) Stats() Stats {
	st := Stats{Min: s.min, Max: s.max, Mean: time.Duration(s.mean), N: s.n}
	if s.n > 1 {
		st.Std = time.Duration(math.Sqrt(s.m2 / float64(s.n-1)))
	}

	return st
}

// Close flushes and closes the delay log, if any. Safe on a log-less Sink.
func (s *Sink) Close() error {
	if s.logW == nil {
		return nil
	}
	if err := s.logW.Flush(); err != nil {
		s.logFile.Close()

		return fmt.Errorf("measure: delay log flush: %w", err)
	}
	if err := s.logFile.Close(); err != nil {
		return fmt.Errorf("measure: delay log close: %w", err)
	}
	s.logW, s.logFile = nil, nil

	return nil
}
