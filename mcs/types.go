// Package mcs: options, sentinel errors, and emission plumbing shared by
// the CPDAG and PDAG enumerators.
package mcs

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/graphio"
	"github.com/katalvlaran/mecenum/measure"
)

// ErrGraphNil is returned when a nil *core.Digraph is passed to
// EnumerateCPDAG or EnumeratePDAG.
var ErrGraphNil = errors.New("mcs: graph is nil")

// Option configures optional behavior of the enumerators.
type Option func(*Options)

// Options holds configurable parameters for both MCS enumerators.
type Options struct {
	// Sink, if non-nil, observes one event per emitted DAG and may
	// cancel the enumeration with measure.ErrDeadline.
	Sink *measure.Sink

	// OutputDir, if non-empty, receives one dag_<seq>.txt file per
	// emitted DAG.
	OutputDir string

	// OnEmit, if non-nil, is invoked with each emitted DAG. The graph is
	// freshly constructed per emission; the callee may retain it.
	// Returning an error aborts the enumeration with that error.
	OnEmit func(d *core.Digraph) error
}

// DefaultOptions returns the zero configuration: no sink, no output
// directory, no hook.
func DefaultOptions() Options { return Options{} }

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

// emitter funnels every produced DAG through the hook, the output
// directory, and the measurement sink, in that order.
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
			return fmt.Errorf("mcs: OnEmit: %w", err)
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

	return nil
}

// insertSorted returns s with x added at its sorted position.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// removeSorted returns s with x removed; x must be present.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)

	return append(s[:i], s[i+1:]...)
}

// containsSorted reports whether sorted slice s holds x.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}
