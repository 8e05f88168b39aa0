package dungeon

import (
	"testing"

	"warrens/internal/geom"
	"warrens/internal/rng"
)

func squareFixture() ([]triangulationEdge, []geom.Vec3) {
	centers := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	edges := []triangulationEdge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
		{A: 0, B: 2},
	}
	return edges, centers
}

func TestBuildMSTWithoutReinsertionIsATree(t *testing.T) {
	edges, centers := squareFixture()
	r := rng.New(1)

	tree, err := buildMST(edges, centers, 0, r)
	if err != nil {
		t.Fatalf("buildMST() error = %v", err)
	}
	if len(tree) != len(centers)-1 {
		t.Errorf("len(tree) = %d, want %d (N-1 edges for N vertices)", len(tree), len(centers)-1)
	}

	uf := newUnionFind(len(centers))
	for _, e := range tree {
		uf.union(e.A, e.B)
	}
	root := uf.find(0)
	for i := 1; i < len(centers); i++ {
		if uf.find(i) != root {
			t.Errorf("vertex %d is not connected to the rest of the tree", i)
		}
	}
}

func TestBuildMSTWithFullReinsertionKeepsAllEdges(t *testing.T) {
	edges, centers := squareFixture()
	r := rng.New(1)

	tree, err := buildMST(edges, centers, 1, r)
	if err != nil {
		t.Fatalf("buildMST() error = %v", err)
	}
	if len(tree) != len(edges) {
		t.Errorf("len(tree) = %d, want %d when every discarded edge is reinserted", len(tree), len(edges))
	}
}

func TestUnionFindDetectsCycles(t *testing.T) {
	uf := newUnionFind(3)
	if !uf.union(0, 1) {
		t.Fatalf("union(0,1) = false, want true for disjoint sets")
	}
	if !uf.union(1, 2) {
		t.Fatalf("union(1,2) = false, want true for disjoint sets")
	}
	if uf.union(0, 2) {
		t.Errorf("union(0,2) = true, want false once all three are connected")
	}
}
