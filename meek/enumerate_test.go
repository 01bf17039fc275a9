package meek_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecenum/builder"
	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/measure"
	"github.com/katalvlaran/mecenum/mectest"
	"github.com/katalvlaran/mecenum/meek"
)

// collect runs Enumerate gathering the emitted fingerprints.
func collect(t *testing.T, g *core.Digraph, opts ...meek.Option) (int64, []string) {
	t.Helper()
	var fps []string
	opts = append(opts, meek.WithOnEmit(func(d *core.Digraph) error {
		fps = append(fps, d.Fingerprint())

		return nil
	}))
	count, err := meek.Enumerate(g, opts...)
	require.NoError(t, err)
	sort.Strings(fps)

	return count.Int64(), fps
}

func TestEnumerate_MatchesOracle(t *testing.T) {
	tri, err := builder.Complete(3)
	require.NoError(t, err)
	p4, err := builder.Path(4)
	require.NoError(t, err)
	k4, err := builder.Complete(4)
	require.NoError(t, err)
	two, err := builder.Union(tri, tri)
	require.NoError(t, err)

	for name, g := range map[string]*core.Digraph{
		"triangle": tri, "path4": p4, "k4": k4, "two-triangles": two,
	} {
		t.Run(name, func(t *testing.T) {
			count, fps := collect(t, g)
			want := mectest.Class(g)
			assert.Equal(t, int64(len(want)), count)
			assert.Equal(t, want, fps, "emitted set must equal the class, no duplicates")
		})
	}
}

func TestEnumerate_ForcedByR2(t *testing.T) {
	// 1→2, 2→3, 1—3: closure forces 1→3, a single DAG remains.
	g := core.NewDigraph(3)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddUndirectedEdge(1, 3))

	count, fps := collect(t, g)
	assert.Equal(t, int64(1), count)
	require.Len(t, fps, 1)

	d := core.NewDigraph(3)
	require.NoError(t, d.AddEdge(1, 2))
	require.NoError(t, d.AddEdge(2, 3))
	require.NoError(t, d.AddEdge(1, 3))
	assert.Equal(t, d.Fingerprint(), fps[0])
}

func TestEnumerate_BackgroundKnowledge(t *testing.T) {
	// Triangle with 1→2 and 3→2 fixed: exactly the two orders 1,3,2 and
	// 3,1,2 survive.
	g := core.NewDigraph(3)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 2))
	require.NoError(t, g.AddUndirectedEdge(1, 3))

	count, fps := collect(t, g)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, mectest.Class(g), fps)
}

func TestEnumerate_NotExtendable(t *testing.T) {
	c4, err := builder.Cycle(4)
	require.NoError(t, err)

	count, err := meek.Enumerate(c4)
	require.NoError(t, err)
	assert.Zero(t, count.Int64())
}

func TestEnumerate_Soundness(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	skel, vs := mectest.Skeleton(g), mectest.VStructures(g)
	count, err := meek.Enumerate(g, meek.WithOnEmit(func(d *core.Digraph) error {
		assert.True(t, mectest.IsDAG(d))
		assert.Equal(t, skel, mectest.Skeleton(d))
		assert.Equal(t, vs, mectest.VStructures(d))

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(24), count.Int64())
}

func TestEnumerate_NilGraph(t *testing.T) {
	_, err := meek.Enumerate(nil)
	assert.ErrorIs(t, err, meek.ErrGraphNil)
}

func TestEnumerate_OutputCap(t *testing.T) {
	k4, err := builder.Complete(4)
	require.NoError(t, err)

	count, err := meek.Enumerate(k4, meek.WithMaxDAGs(5))
	assert.ErrorIs(t, err, meek.ErrOutputCap)
	assert.Equal(t, int64(5), count.Int64())
}

func TestEnumerate_Deadline(t *testing.T) {
	// The clock jumps far past the timeout before the first emission.
	epoch := time.Unix(1000, 0)
	instants := []time.Time{epoch, epoch.Add(2 * time.Hour)}
	i := 0
	clock := func() time.Time {
		ts := instants[i]
		if i < len(instants)-1 {
			i++
		}

		return ts
	}
	sink, err := measure.NewSink(measure.WithClock(clock), measure.WithTimeout(time.Hour))
	require.NoError(t, err)

	k4, err := builder.Complete(4)
	require.NoError(t, err)

	count, err := meek.Enumerate(k4, meek.WithSink(sink))
	assert.ErrorIs(t, err, measure.ErrDeadline)
	assert.Equal(t, int64(1), count.Int64(), "deadline cancels at the emission boundary")
	assert.Equal(t, int64(1), sink.Stats().N)
}

func TestEnumerate_OnEmitError(t *testing.T) {
	tri, err := builder.Complete(3)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = meek.Enumerate(tri, meek.WithOnEmit(func(*core.Digraph) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestEnumerate_TrustedSkipsCheck(t *testing.T) {
	tri, err := builder.Complete(3)
	require.NoError(t, err)

	count, err := meek.Enumerate(tri, meek.WithTrustedInput())
	require.NoError(t, err)
	assert.Equal(t, int64(6), count.Int64())
}
