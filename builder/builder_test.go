package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecenum/builder"
	"github.com/katalvlaran/mecenum/core"
)

func TestPath(t *testing.T) {
	_, err := builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.ArcCount()) // 3 undirected edges
	assert.True(t, g.IsUndirected(2, 3))
	assert.False(t, g.HasEdge(1, 3))
}

func TestCycle(t *testing.T) {
	_, err := builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	assert.Equal(t, 8, g.ArcCount())
	assert.True(t, g.IsUndirected(4, 1))
	assert.False(t, g.HasEdge(1, 3))
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.ArcCount()) // C(4,2)=6 undirected edges
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			assert.True(t, g.IsUndirected(u, v))
		}
	}
}

func TestStar(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)
	assert.Equal(t, 8, g.ArcCount())
	assert.True(t, g.IsUndirected(1, 5))
	assert.False(t, g.HasEdge(2, 3))
}

func TestUnion_ShiftsVertices(t *testing.T) {
	t1, err := builder.Complete(3)
	require.NoError(t, err)
	t2, err := builder.Complete(3)
	require.NoError(t, err)

	u, err := builder.Union(t1, t2)
	require.NoError(t, err)
	assert.Equal(t, 6, u.VertexCount())
	assert.Equal(t, 12, u.ArcCount())
	assert.True(t, u.IsUndirected(1, 2))
	assert.True(t, u.IsUndirected(4, 5))
	assert.False(t, u.HasEdge(3, 4))
}

func TestUnion_PreservesDirections(t *testing.T) {
	g := core.NewDigraph(2)
	require.NoError(t, g.AddEdge(1, 2))

	u, err := builder.Union(g, g)
	require.NoError(t, err)
	assert.True(t, u.IsDirected(1, 2))
	assert.True(t, u.IsDirected(3, 4))
}
