package mst

import (
	"sort"

	"github.com/mvalmeida/routegraph/core"
)

// KruskalFrom runs the source-rooted greedy sweep over g.
//
// Steps:
//  1. Snapshot all edges (value copies) and all vertex keys in insertion order.
//  2. Sort edges: arcs whose origin key equals source first, the remainder by
//     ascending weight (stable, so insertion order breaks ties).
//  3. Sweep in sorted order with a union-find, keeping each edge that joins
//     two distinct components.
//  4. Keep only the chosen edges whose origin or destination landed in
//     source's component. An absent source yields an empty sequence.
//
// The source bias makes the first sweep prefer any edge incident to source,
// so growth starts there; it also means the result is not guaranteed to be a
// globally minimum forest. MinimumSpanningForest is the classical variant.
func KruskalFrom[K comparable](g *core.Graph[K], source K) []core.Edge[K] {
	// 1. Snapshot keys and edge copies.
	vertices := g.VertexSet()
	keys := make([]K, 0, len(vertices))
	var edges []core.Edge[K]
	for _, v := range vertices {
		keys = append(keys, v.Info())
		for _, e := range v.Adj() {
			edges = append(edges, *e)
		}
	}

	// 2. Source-biased order.
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := &edges[i], &edges[j]
		aAtSource := a.Orig().Info() == source
		bAtSource := b.Orig().Info() == source
		if aAtSource != bAtSource {
			return aAtSource
		}

		return a.Weight() < b.Weight()
	})

	// 3. Greedy sweep.
	ds := newDisjointSets[K](len(keys))
	for _, k := range keys {
		ds.makeSet(k)
	}
	var chosen []core.Edge[K]
	for i := range edges {
		u := edges[i].Orig().Info()
		v := edges[i].Dest().Info()
		if ds.findSet(u) != ds.findSet(v) {
			chosen = append(chosen, edges[i])
			ds.unionSets(u, v)
		}
	}

	// 4. Filter to source's component.
	if !g.HasVertex(source) {
		return []core.Edge[K]{}
	}
	component := ds.findSet(source)
	result := make([]core.Edge[K], 0, len(chosen))
	for i := range chosen {
		if ds.findSet(chosen[i].Orig().Info()) == component ||
			ds.findSet(chosen[i].Dest().Info()) == component {
			result = append(result, chosen[i])
		}
	}

	return result
}

// MinimumSpanningForest computes a minimum spanning forest of g with
// classical Kruskal: self-loops are dropped, the remaining edges are swept in
// ascending weight order, and a union-find keeps exactly the edges that join
// two distinct components. For graphs built with AddBidirectionalEdge the
// second arc of each pair is skipped naturally, since its endpoints are
// already united.
//
// Returns the chosen edge copies and their total weight. On a disconnected
// graph the result spans every component.
func MinimumSpanningForest[K comparable](g *core.Graph[K]) ([]core.Edge[K], float64) {
	vertices := g.VertexSet()
	var edges []core.Edge[K]
	for _, v := range vertices {
		for _, e := range v.Adj() {
			if e.Dest() == v {
				continue // self-loops never span anything
			}
			edges = append(edges, *e)
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	ds := newDisjointSets[K](len(vertices))
	for _, v := range vertices {
		ds.makeSet(v.Info())
	}

	forest := make([]core.Edge[K], 0, max(len(vertices)-1, 0))
	var total float64
	for i := range edges {
		u := edges[i].Orig().Info()
		v := edges[i].Dest().Info()
		if ds.findSet(u) != ds.findSet(v) {
			ds.unionSets(u, v)
			forest = append(forest, edges[i])
			total += edges[i].Weight()
			if len(forest) == len(vertices)-1 {
				break
			}
		}
	}

	return forest, total
}

// TotalWeight sums the weights of a chosen edge sequence.
func TotalWeight[K comparable](edges []core.Edge[K]) float64 {
	var total float64
	for i := range edges {
		total += edges[i].Weight()
	}

	return total
}
