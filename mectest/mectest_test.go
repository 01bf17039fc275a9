package mectest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecenum/builder"
	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/mectest"
)

func TestIsDAG(t *testing.T) {
	chain := core.NewDigraph(3)
	require.NoError(t, chain.AddEdge(1, 2))
	require.NoError(t, chain.AddEdge(2, 3))
	assert.True(t, mectest.IsDAG(chain))

	cyc := chain.Clone()
	require.NoError(t, cyc.AddEdge(3, 1))
	assert.False(t, mectest.IsDAG(cyc))

	und := core.NewDigraph(2)
	require.NoError(t, und.AddUndirectedEdge(1, 2))
	assert.False(t, mectest.IsDAG(und), "undirected pair is not a DAG edge")
}

func TestSkeleton_IgnoresOrientation(t *testing.T) {
	a := core.NewDigraph(3)
	require.NoError(t, a.AddEdge(1, 2))
	require.NoError(t, a.AddUndirectedEdge(2, 3))

	b := core.NewDigraph(3)
	require.NoError(t, b.AddEdge(2, 1))
	require.NoError(t, b.AddEdge(3, 2))

	assert.Equal(t, "1-2;2-3;", mectest.Skeleton(a))
	assert.Equal(t, mectest.Skeleton(a), mectest.Skeleton(b))
}

func TestVStructures(t *testing.T) {
	// Collider 1→2←3, 1 and 3 non-adjacent.
	coll := core.NewDigraph(3)
	require.NoError(t, coll.AddEdge(1, 2))
	require.NoError(t, coll.AddEdge(3, 2))
	assert.Equal(t, "1>2<3;", mectest.VStructures(coll))

	// Shielded: adding 1—3 hides the collider.
	shielded := coll.Clone()
	require.NoError(t, shielded.AddUndirectedEdge(1, 3))
	assert.Equal(t, "", mectest.VStructures(shielded))
}

func TestClass_Sizes(t *testing.T) {
	tri, err := builder.Complete(3)
	require.NoError(t, err)
	assert.Len(t, mectest.Class(tri), 6)

	p4, err := builder.Path(4)
	require.NoError(t, err)
	assert.Len(t, mectest.Class(p4), 4)

	k4, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Len(t, mectest.Class(k4), 24)

	two, err := builder.Union(tri, tri)
	require.NoError(t, err)
	assert.Len(t, mectest.Class(two), 36)

	// A chordless cycle admits no valid orientation.
	c4, err := builder.Cycle(4)
	require.NoError(t, err)
	assert.Empty(t, mectest.Class(c4))
}

func TestClass_RespectsDirections(t *testing.T) {
	// Triangle with background 1→2 and 3→2: only two orders remain.
	g := core.NewDigraph(3)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 2))
	require.NoError(t, g.AddUndirectedEdge(1, 3))
	assert.Len(t, mectest.Class(g), 2)
}
