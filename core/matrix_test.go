package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalmeida/routegraph/core"
)

// TestGraph_ScratchMatrices covers lazy allocation at the current |V|,
// persistence across calls, and reallocation after release.
func TestGraph_ScratchMatrices(t *testing.T) {
	g := core.NewGraph[string]()
	for _, k := range []string{"A", "B", "C"} {
		g.AddVertex(k)
	}

	dist := g.DistMatrix()
	require.Len(t, dist, 3)
	for _, row := range dist {
		require.Len(t, row, 3)
	}

	// cells persist: same storage on the next call
	dist[g.IndexOf("A")][g.IndexOf("C")] = 12.5
	assert.Equal(t, 12.5, g.DistMatrix()[0][2])

	path := g.PathMatrix()
	require.Len(t, path, 3)
	path[1][2] = 4
	assert.Equal(t, 4, g.PathMatrix()[1][2])

	// matrices are stale after |V| changes; callers release and reallocate
	g.AddVertex("D")
	assert.Len(t, g.DistMatrix(), 3, "stale until released")
	g.ReleaseMatrices()
	assert.Len(t, g.DistMatrix(), 4)
	assert.Len(t, g.PathMatrix(), 4)
}

// TestGraph_ReleaseMatrices_Unallocated confirms release is safe before any
// allocation happened.
func TestGraph_ReleaseMatrices_Unallocated(t *testing.T) {
	g := core.NewGraph[int]()
	g.ReleaseMatrices() // no-op, must not panic
	g.AddVertex(1)
	assert.Len(t, g.DistMatrix(), 1)
}

// TestGraph_Close verifies teardown empties the graph, drops the matrices,
// and leaves a reusable container behind.
func TestGraph_Close(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddBidirectionalEdge("A", "B", 1)
	g.DistMatrix()
	g.PathMatrix()

	g.Close()
	assert.Equal(t, 0, g.NumVertices())
	assert.Nil(t, g.FindVertex("A"))
	checkInvariants(t, g)

	// the container stays usable after teardown
	assert.True(t, g.AddVertex("A"))
	assert.Len(t, g.DistMatrix(), 1)
}
