// Package chickering: options, sentinel errors, and emission plumbing
// for the covered-edge enumerators.
package chickering

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/graphio"
	"github.com/katalvlaran/mecenum/measure"
)

var (
	// ErrGraphNil is returned when a nil *core.Digraph is passed to
	// Enumerate or EnumerateDFS.
	ErrGraphNil = errors.New("chickering: graph is nil")

	// ErrOutputCap is returned when the emitted-DAG cap is reached; the
	// count so far accompanies it.
	ErrOutputCap = errors.New("chickering: output cap reached")
)

// DefaultMaxDAGs caps emitted DAGs — and with them the fingerprint
// memory — unless overridden with WithMaxDAGs.
const DefaultMaxDAGs = 1 << 20

// Option configures optional behavior of the enumerators.
type Option func(*Options)

// Options holds configurable parameters for both covered-edge walks.
type Options struct {
	// Sink, if non-nil, observes one event per emitted DAG and may
	// cancel the enumeration with measure.ErrDeadline.
	Sink *measure.Sink

	// OutputDir, if non-empty, receives one dag_<seq>.txt file per
	// emitted DAG.
	OutputDir string

	// OnEmit, if non-nil, is invoked with each emitted DAG. The graph is
	// the walk's working copy; clone it to retain. Returning an error
	// aborts the enumeration with that error.
	OnEmit func(d *core.Digraph) error

	// MaxDAGs bounds the number of emitted DAGs; 0 means unlimited.
	// Default DefaultMaxDAGs.
	MaxDAGs uint64
}

// DefaultOptions returns the Options both walks start from.
func DefaultOptions() Options {
	return Options{MaxDAGs: DefaultMaxDAGs}
}

// WithSink directs per-emission measurement to s.
func WithSink(s *measure.Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithOutputDir writes every emitted DAG to dir.
func WithOutputDir(dir string) Option {
	return func(o *Options) { o.OutputDir = dir }
}

// WithOnEmit installs fn as the per-emission hook.
func WithOnEmit(fn func(d *core.Digraph) error) Option {
	return func(o *Options) { o.OnEmit = fn }
}

// WithMaxDAGs bounds the number of emitted DAGs; 0 removes the bound.
func WithMaxDAGs(limit uint64) Option {
	return func(o *Options) { o.MaxDAGs = limit }
}

// emitter funnels every produced DAG through the hook, the output
// directory, the measurement sink, and the cap, in that order.
type emitter struct {
	opts  Options
	seq   uint64
	count *big.Int
}

var bigOne = big.NewInt(1)

func (e *emitter) emit(d *core.Digraph) error {
	e.seq++
	e.count.Add(e.count, bigOne)
	if e.opts.OnEmit != nil {
		if err := e.opts.OnEmit(d); err != nil {
			return fmt.Errorf("chickering: OnEmit: %w", err)
		}
	}
	if e.opts.OutputDir != "" {
		path := filepath.Join(e.opts.OutputDir, fmt.Sprintf("dag_%08d.txt", e.seq))
		if err := graphio.WriteFile(path, d); err != nil {
			return err
		}
	}
	if e.opts.Sink != nil {
		if err := e.opts.Sink.Observe(); err != nil {
			return err
		}
	}
	if e.opts.MaxDAGs > 0 && e.seq >= e.opts.MaxDAGs {
		return ErrOutputCap
	}

	return nil
}
