package mst

// disjointSets is a union-find structure over vertex keys with path
// compression and union by rank. Callers makeSet every key before any
// findSet or unionSets touches it.
type disjointSets[K comparable] struct {
	parent map[K]K
	rank   map[K]int
}

func newDisjointSets[K comparable](hint int) *disjointSets[K] {
	return &disjointSets[K]{
		parent: make(map[K]K, hint),
		rank:   make(map[K]int, hint),
	}
}

// makeSet registers key as a singleton set.
func (d *disjointSets[K]) makeSet(key K) {
	d.parent[key] = key
	d.rank[key] = 0
}

// findSet returns the representative of key's set, compressing the walked
// path as it goes.
func (d *disjointSets[K]) findSet(key K) K {
	for d.parent[key] != key {
		// point key at its grandparent before stepping up
		d.parent[key] = d.parent[d.parent[key]]
		key = d.parent[key]
	}

	return key
}

// unionSets merges the sets containing a and b. The lower-rank root is
// linked under the higher-rank one; on equal ranks b's root goes under a's,
// whose rank then grows by one.
func (d *disjointSets[K]) unionSets(a, b K) {
	rootA := d.findSet(a)
	rootB := d.findSet(b)
	if rootA == rootB {
		return
	}
	switch {
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}
}
