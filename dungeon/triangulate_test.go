package dungeon

import (
	"testing"

	"warrens/internal/geom"
)

func TestTriangulateTooFewPoints(t *testing.T) {
	_, err := triangulate([]geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	if err != TriangulationFailed {
		t.Errorf("triangulate(2 points) error = %v, want TriangulationFailed", err)
	}
}

func TestTriangulateCoplanarSquareConnectsEveryPoint(t *testing.T) {
	centers := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}

	edges, err := triangulate(centers)
	if err != nil {
		t.Fatalf("triangulate() error = %v", err)
	}
	if len(edges) == 0 {
		t.Fatalf("triangulate() returned no edges")
	}

	degree := map[int]int{}
	for _, e := range edges {
		degree[e.A]++
		degree[e.B]++
	}
	for i := range centers {
		if degree[i] == 0 {
			t.Errorf("room center %d has no triangulation edge", i)
		}
	}
}

func TestTriangulateNonCoplanarCloud(t *testing.T) {
	centers := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
		{X: 0, Y: 0, Z: 10},
		{X: 5, Y: 5, Z: 5},
	}

	edges, err := triangulate(centers)
	if err != nil {
		t.Fatalf("triangulate() error = %v", err)
	}
	if len(edges) == 0 {
		t.Fatalf("triangulate() returned no edges for a non-degenerate point cloud")
	}
}
