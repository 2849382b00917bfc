package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/mst"
)

// TestBuild_Errors covers the fail-fast contract.
func TestBuild_Errors(t *testing.T) {
	_, err := mst.Build(nil, 0)
	assert.ErrorIs(t, err, mst.ErrNoPoints)

	_, err = mst.Build([]core.Point{{X: 1}}, 3)
	assert.ErrorIs(t, err, mst.ErrRootOutOfRange)

	_, err = mst.Build([]core.Point{{X: 1}}, -1)
	assert.ErrorIs(t, err, mst.ErrRootOutOfRange)
}

// TestBuild_SingleVertex yields the trivial tree: no edges, root only.
func TestBuild_SingleVertex(t *testing.T) {
	tree, err := mst.Build([]core.Point{{X: 4, Y: 2}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, -1, tree.Parent[0])
	assert.Empty(t, tree.Edges())
	assert.Zero(t, tree.Weight)
}

// TestBuild_Square verifies the MST of a unit square: three unit edges,
// never a diagonal.
func TestBuild_Square(t *testing.T) {
	pts := []core.Point{
		{X: 0, Y: 0}, // root
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	tree, err := mst.Build(pts, 0)
	require.NoError(t, err)

	assert.Len(t, tree.Edges(), 3, "n-1 edges")
	assert.InDelta(t, 3.0, tree.Weight, 1e-12, "three unit edges, no diagonal")
	for _, e := range tree.Edges() {
		assert.InDelta(t, 1.0, e.Weight, 1e-12)
	}
}

// TestBuild_PathToRoot threads a line topology and walks it back.
func TestBuild_PathToRoot(t *testing.T) {
	pts := []core.Point{
		{X: 0}, {X: 10}, {X: 20}, {X: 30},
	}
	tree, err := mst.Build(pts, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 0}, tree.PathToRoot(3))
	assert.Equal(t, []int{0}, tree.PathToRoot(0), "root path is itself")
	assert.Nil(t, tree.PathToRoot(99))
}

// TestBuild_DuplicatePositions tolerates coincident points via
// zero-weight edges.
func TestBuild_DuplicatePositions(t *testing.T) {
	pts := []core.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 5, Y: 5},
	}
	tree, err := mst.Build(pts, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 2)

	var zero int
	for _, e := range tree.Edges() {
		if e.Weight == 0 {
			zero++
		}
	}
	assert.Equal(t, 1, zero, "exactly one zero-weight edge joins the twins")
}

// TestBuild_RandomTreeInvariants checks n-1 edges, acyclicity and
// connectivity via union-find over seeded random point clouds.
func TestBuild_RandomTreeInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{2, 5, 17, 64} {
		pts := make([]core.Point, n)
		for i := range pts {
			pts[i] = core.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		}

		tree, err := mst.Build(pts, 0)
		require.NoError(t, err)
		require.Len(t, tree.Edges(), n-1, "n=%d", n)

		// Union-find: every edge must join two distinct components.
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(u int) int {
			for parent[u] != u {
				parent[u] = parent[parent[u]]
				u = parent[u]
			}
			return u
		}
		for _, e := range tree.Edges() {
			ru, rv := find(e.U), find(e.V)
			require.NotEqual(t, ru, rv, "cycle detected at edge %v (n=%d)", e, n)
			parent[ru] = rv
		}

		// One component remains: the tree is connected.
		root := find(0)
		for v := 1; v < n; v++ {
			assert.Equal(t, root, find(v), "disconnected vertex %d (n=%d)", v, n)
		}
	}
}

// TestBuild_Deterministic ensures identical input yields identical trees,
// including under weight ties.
func TestBuild_Deterministic(t *testing.T) {
	// A symmetric cross: every arm is equidistant from the center.
	pts := []core.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	}
	a, err := mst.Build(pts, 0)
	require.NoError(t, err)
	b, err := mst.Build(pts, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Parent, b.Parent)
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestTree_Children verifies children lists are ascending and read-only
// views of the tree structure.
func TestTree_Children(t *testing.T) {
	pts := []core.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: -1, Y: 0},
	}
	tree, err := mst.Build(pts, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tree.Children(0))
	assert.Empty(t, tree.Children(1))
	assert.Nil(t, tree.Children(-3))
}
