// Package mst - Tree, Edge, and sentinel errors for aggregation trees.
package mst

import "errors"

// ErrNoPoints indicates Build was called with an empty point set.
var ErrNoPoints = errors.New("mst: no points")

// ErrRootOutOfRange indicates the requested root index is not a point.
var ErrRootOutOfRange = errors.New("mst: root index out of range")

// Edge is one undirected tree edge between point indices U and V,
// oriented parent→child (U is the parent side).
type Edge struct {
	U      int
	V      int
	Weight float64
}

// Tree is a spanning tree in parent-indexed form, rooted at Root.
//
// Parent[v] is the unique next hop from v toward Root; Parent[Root] == -1.
// The children map is precomputed at Build time so routing can walk the
// tree top-down without scanning the parent array.
type Tree struct {
	// Parent holds the next hop toward the root per vertex (-1 at the root).
	Parent []int

	// Root is the vertex every path ends at.
	Root int

	// Weight is the total weight of all tree edges.
	Weight float64

	children   [][]int
	edgeWeight []float64 // attachment weight per child vertex; 0 at the root
}

// Len returns the number of vertices in the tree.
func (t *Tree) Len() int {
	return len(t.Parent)
}

// Children returns the direct children of vertex v, ascending by index.
// The returned slice is owned by the Tree; callers must not mutate it.
//
// Complexity: O(1).
func (t *Tree) Children(v int) []int {
	if v < 0 || v >= len(t.children) {
		return nil
	}

	return t.children[v]
}

// Edges returns the n-1 tree edges, ordered by child vertex index.
// A fresh slice is allocated on every call.
//
// Complexity: O(n) time and space.
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, len(t.Parent)-1)
	for v, p := range t.Parent {
		if p < 0 {
			continue // root
		}
		edges = append(edges, Edge{U: p, V: v, Weight: t.weightOf(v)})
	}

	return edges
}

// PathToRoot returns the vertex sequence from v (inclusive) to the root
// (inclusive). For the root itself, the path is just {Root}.
//
// Complexity: O(depth) time and space.
func (t *Tree) PathToRoot(v int) []int {
	if v < 0 || v >= len(t.Parent) {
		return nil
	}
	path := []int{v}
	for t.Parent[v] >= 0 {
		v = t.Parent[v]
		path = append(path, v)
	}

	return path
}

// weightOf returns the weight of the edge between v and its parent.
func (t *Tree) weightOf(v int) float64 {
	return t.edgeWeight[v]
}
