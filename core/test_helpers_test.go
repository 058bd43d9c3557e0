package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvalmeida/routegraph/core"
)

// checkInvariants verifies the structural invariants the graph promises
// after every public mutation:
//
//  1. vertex sequence and key index agree, and FindVertex(k).Info() == k;
//  2. keys are unique;
//  3. every edge sits in its origin's adj and its destination's incoming;
//  4. reverse pairing is symmetric and mirrors the endpoints;
//  5. no edge references a vertex outside the graph.
func checkInvariants[K comparable](t *testing.T, g *core.Graph[K]) {
	t.Helper()

	vs := g.VertexSet()
	require.Len(t, vs, g.NumVertices(), "vertex snapshot and count disagree")

	seen := make(map[K]bool, len(vs))
	for _, v := range vs {
		require.False(t, seen[v.Info()], "duplicate key %v", v.Info())
		seen[v.Info()] = true
		require.Same(t, v, g.FindVertex(v.Info()), "index lookup for %v", v.Info())

		for _, e := range v.Adj() {
			require.Same(t, v, e.Orig(), "edge origin back-reference")
			require.NotNil(t, g.FindVertex(e.Dest().Info()), "edge targets a removed vertex")
			require.True(t, containsEdge(e.Dest().Incoming(), e),
				"edge %v→%v missing from destination incoming", v.Info(), e.Dest().Info())

			if r := e.Reverse(); r != nil {
				require.Same(t, e, r.Reverse(), "reverse pairing not symmetric")
				require.Same(t, e.Orig(), r.Dest(), "reverse endpoints not mirrored")
				require.Same(t, e.Dest(), r.Orig(), "reverse endpoints not mirrored")
			}
		}
		for _, in := range v.Incoming() {
			require.Same(t, v, in.Dest(), "incoming back-reference")
			require.True(t, containsEdge(in.Orig().Adj(), in),
				"incoming entry not owned by its origin")
		}
	}
}

func containsEdge[K comparable](edges []*core.Edge[K], e *core.Edge[K]) bool {
	for _, candidate := range edges {
		if candidate == e {
			return true
		}
	}

	return false
}

// buildDiamond wires the 1→{2,3}→{4,5} fixture used across traversal tests.
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
