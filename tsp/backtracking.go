package tsp

import (
	"math"

	"github.com/mvalmeida/routegraph/core"
)

// Result holds the best tour found.
type Result[K comparable] struct {
	// Route is the closed tour: it starts and ends at the start key and
	// visits every other vertex exactly once. Nil when no tour exists.
	Route []K

	// Length is the total weight of Route, or +Inf when no tour exists.
	Length float64
}

// solver carries the backtracking state: the route under construction, the
// visited set, and the best complete tour so far.
type solver[K comparable] struct {
	graph   *core.Graph[K]
	start   K
	n       int
	visited map[K]bool
	current []K
	best    []K
	bestLen float64
}

// Backtracking finds the shortest Hamiltonian cycle of g through start by
// exhaustive depth-first search with branch-and-bound pruning: a partial
// route is abandoned as soon as its length reaches the best tour found.
//
// An absent start or a graph with no Hamiltonian cycle yields a nil Route
// and Length +Inf.
func Backtracking[K comparable](g *core.Graph[K], start K) Result[K] {
	s := g.FindVertex(start)
	if s == nil {
		return Result[K]{Length: math.Inf(1)}
	}

	sv := &solver[K]{
		graph:   g,
		start:   start,
		n:       g.NumVertices(),
		visited: map[K]bool{start: true},
		current: []K{start},
		bestLen: math.Inf(1),
	}
	sv.explore(s, 0)

	return Result[K]{Route: sv.best, Length: sv.bestLen}
}

// explore extends the current route from v, recursing into unvisited
// neighbors and closing the tour once every vertex is on the route.
func (s *solver[K]) explore(v *core.Vertex[K], length float64) {
	if length >= s.bestLen {
		return
	}

	// Complete route: close it with the arc back to start, if one exists.
	if len(s.current) == s.n {
		total := length + s.graph.EdgeWeight(v.Info(), s.start)
		if total < s.bestLen {
			s.bestLen = total
			s.best = append(append([]K(nil), s.current...), s.start)
		}

		return
	}

	for _, e := range v.Adj() {
		dest := e.Dest()
		key := dest.Info()
		if s.visited[key] {
			continue
		}
		s.visited[key] = true
		s.current = append(s.current, key)
		s.explore(dest, length+e.Weight())
		s.current = s.current[:len(s.current)-1]
		s.visited[key] = false
	}
}
