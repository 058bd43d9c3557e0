package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalmeida/routegraph/core"
	"github.com/mvalmeida/routegraph/dfs"
)

// buildDiamond wires 1→{2,3}, 2→4, 3→5.
func buildDiamond(t *testing.T) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for k := 1; k <= 5; k++ {
		require.True(t, g.AddVertex(k))
	}
	require.True(t, g.AddEdge(1, 2, 1))
	require.True(t, g.AddEdge(1, 3, 1))
	require.True(t, g.AddEdge(2, 4, 1))
	require.True(t, g.AddEdge(3, 5, 1))

	return g
}

// TestDFSFrom_PreOrder checks the branch-first discovery order: the whole
// subtree of 2 is emitted before 3 is reached.
func TestDFSFrom_PreOrder(t *testing.T) {
	g := buildDiamond(t)

	res := dfs.DFSFrom(g, 1)
	assert.Equal(t, []int{1, 2, 4, 3, 5}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 4: 2, 3: 1, 5: 2}, res.Depth)
	assert.Equal(t, 2, res.Parent[4])
}

// TestDFSFrom_AbsentSource yields an empty result.
func TestDFSFrom_AbsentSource(t *testing.T) {
	g := buildDiamond(t)

	res := dfs.DFSFrom(g, 42)
	assert.Empty(t, res.Order)
}

// TestDFS_ForestCoversEveryVertexOnce runs the full traversal over a graph
// with two components plus an isolated vertex; the order must be a
// permutation of the key set.
func TestDFS_ForestCoversEveryVertexOnce(t *testing.T) {
	g := buildDiamond(t)
	g.AddVertex(10)
	g.AddVertex(11)
	g.AddEdge(10, 11, 1)
	g.AddVertex(12)

	res := dfs.DFS(g)
	assert.Len(t, res.Order, g.NumVertices())
	seen := make(map[int]bool, len(res.Order))
	for _, k := range res.Order {
		assert.False(t, seen[k], "vertex %d visited twice", k)
		seen[k] = true
	}
	for _, k := range g.Keys() {
		assert.True(t, seen[k], "vertex %d never visited", k)
	}
}

// TestDFS_ForestRestartsInInsertionOrder pins the concatenation order of the
// forest's trees.
func TestDFS_ForestRestartsInInsertionOrder(t *testing.T) {
	g := core.NewGraph[string]()
	for _, k := range []string{"A", "B", "C", "D"} {
		g.AddVertex(k)
	}
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)

	res := dfs.DFS(g)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Order)
}

// TestDFS_CyclicGraphTerminates makes sure revisits are cut off.
func TestDFS_CyclicGraphTerminates(t *testing.T) {
	g := core.NewGraph[int]()
	for k := 1; k <= 3; k++ {
		g.AddVertex(k)
	}
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 1, 1)

	res := dfs.DFSFrom(g, 1)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

// TestDFS_MaxDepth limits recursion; depth 0 visits only the root.
func TestDFS_MaxDepth(t *testing.T) {
	g := buildDiamond(t)

	res := dfs.DFSFrom(g, 1, dfs.WithMaxDepth[int](1))
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	res = dfs.DFSFrom(g, 1, dfs.WithMaxDepth[int](0))
	assert.Equal(t, []int{1}, res.Order)
}

// TestDFS_FilterNeighbor prunes a branch before recursion.
func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildDiamond(t)

	res := dfs.DFSFrom(g, 1, dfs.WithFilterNeighbor(func(k int) bool {
		return k != 2
	}))
	assert.Equal(t, []int{1, 3, 5}, res.Order)
}

// TestDFS_Hooks verifies pre-order and post-order callbacks: OnVisit fires
// in discovery order, OnExit in finish order.
func TestDFS_Hooks(t *testing.T) {
	g := buildDiamond(t)

	var pre, post []int
	dfs.DFSFrom(g, 1,
		dfs.WithOnVisit(func(k int) { pre = append(pre, k) }),
		dfs.WithOnExit(func(k int) { post = append(post, k) }),
	)
	assert.Equal(t, []int{1, 2, 4, 3, 5}, pre)
	assert.Equal(t, []int{4, 2, 5, 3, 1}, post)
}
