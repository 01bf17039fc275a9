package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/mecenum/core"
)

// ErrMalformed indicates input that does not follow the graph format.
// Wrapped errors carry the offending line. Branch with errors.Is.
var ErrMalformed = errors.New("graphio: malformed input")

// parsePair splits line into exactly two ints.
func parsePair(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("graphio: want two fields, got %q: %w", line, ErrMalformed)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("graphio: bad integer %q: %w", fields[0], ErrMalformed)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("graphio: bad integer %q: %w", fields[1], ErrMalformed)
	}

	return a, b, nil
}

// Read parses a graph from r. When undirected is true each listed pair
// yields both arcs; otherwise lines are taken literally.
func Read(r io.Reader, undirected bool) (*core.Digraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// 1. Header: "<n> <m>"
	if !sc.Scan() {
		return nil, fmt.Errorf("graphio: missing header: %w", ErrMalformed)
	}
	n, m, err := parsePair(sc.Text())
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("graphio: negative count in header: %w", ErrMalformed)
	}

	// 2. Separator blank line
	if !sc.Scan() {
		return nil, fmt.Errorf("graphio: missing separator line: %w", ErrMalformed)
	}
	if strings.TrimSpace(sc.Text()) != "" {
		return nil, fmt.Errorf("graphio: want blank separator, got %q: %w", sc.Text(), ErrMalformed)
	}

	// 3. Edge lines
	g := core.NewDigraph(n)
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("graphio: want %d edge lines, got %d: %w", m, i, ErrMalformed)
		}
		u, v, err := parsePair(sc.Text())
		if err != nil {
			return nil, err
		}
		if undirected {
			err = g.AddUndirectedEdge(u, v)
		} else {
			err = g.AddEdge(u, v)
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: edge %d %d: %v: %w", u, v, err, ErrMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// ReadFile parses the graph stored at path.
func ReadFile(path string, undirected bool) (*core.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, undirected)
}

// Write emits g in the text format: header, blank line, then every arc in
// lexicographic (u,v) order. An undirected edge appears as two lines.
func Write(w io.Writer, g *core.Digraph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n\n", g.VertexCount(), g.ArcCount()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, a := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", a.From, a.To); err != nil {
			return fmt.Errorf("graphio: write edge: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: flush: %w", err)
	}

	return nil
}

// WriteFile writes g to path atomically: the content is staged in a temp
// file inside the same directory and renamed over path, so a cancelled
// enumeration never leaves a half-written DAG behind.
func WriteFile(path string, g *core.Digraph) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".graphio-*")
	if err != nil {
		return fmt.Errorf("graphio: temp file in %s: %w", dir, err)
	}
	if err = Write(tmp, g); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("graphio: close temp: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("graphio: rename: %w", err)
	}

	return nil
}
