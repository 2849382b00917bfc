// Package mst - dense Prim construction of the aggregation tree.
package mst

import (
	"math"
	"sort"

	"github.com/katalvlaran/wsnsim/core"
)

// Build computes the minimum-spanning tree of the complete Euclidean
// graph over points, rooted at root, and returns it in parent-indexed
// form ready for tree-walk routing.
//
// Error Conditions:
//   - ErrNoPoints       : len(points) == 0.
//   - ErrRootOutOfRange : root < 0 or root >= len(points).
//
// Steps:
//  1. Validate inputs; a single point yields the trivial tree.
//  2. Run dense Prim from root: key[v] tracks the cheapest attachment
//     distance of v to the growing tree, parent[v] the attachment point.
//  3. Selection ties break by lowest vertex index; attachment ties by
//     lowest parent index — both keep the result fully deterministic.
//  4. Precompute per-vertex children lists (ascending) for routing.
//
// Duplicate positions produce zero-weight edges and are valid input.
//
// Complexity: O(n²) time, O(n) space.
func Build(points []core.Point, root int) (*Tree, error) {
	// 1. Validate.
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if root < 0 || root >= n {
		return nil, ErrRootOutOfRange
	}

	t := &Tree{
		Parent:     make([]int, n),
		Root:       root,
		edgeWeight: make([]float64, n),
	}

	// Trivial single-vertex tree: no edges, no children.
	if n == 1 {
		t.Parent[0] = -1
		t.children = make([][]int, 1)

		return t, nil
	}

	// 2. Dense Prim state.
	const unattached = -1
	var (
		inTree = make([]bool, n)    // vertex already in the tree
		key    = make([]float64, n) // cheapest attachment distance so far
		parent = make([]int, n)     // attachment point realizing key
	)
	for v := 0; v < n; v++ {
		key[v] = math.Inf(1)
		parent[v] = unattached
	}
	key[root] = 0

	for range points {
		// Select the unattached vertex with the smallest key;
		// ties resolve to the lowest vertex index by scan order.
		next := unattached
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if next == unattached || key[v] < key[next] {
				next = v
			}
		}
		inTree[next] = true

		// Relax every remaining vertex against the new tree member.
		for v := 0; v < n; v++ {
			if inTree[v] || v == next {
				continue
			}
			d := core.Dist(points[next], points[v])
			// 3. Strict improvement wins; an exact tie prefers the
			//    lower parent index for deterministic output.
			if d < key[v] || (d == key[v] && next < parent[v]) {
				key[v] = d
				parent[v] = next
			}
		}
	}

	// Assemble the tree and total weight.
	t.Parent[root] = -1
	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		t.Parent[v] = parent[v]
		t.edgeWeight[v] = key[v]
		t.Weight += key[v]
	}

	// 4. Children lists, ascending by construction order then sorted
	//    for an explicit guarantee.
	t.children = make([][]int, n)
	for v := 0; v < n; v++ {
		p := t.Parent[v]
		if p >= 0 {
			t.children[p] = append(t.children[p], v)
		}
	}
	for v := 0; v < n; v++ {
		sort.Ints(t.children[v])
	}

	return t, nil
}
