package dungeon

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"

	"warrens/internal/geom"
	"warrens/internal/rng"
)

// mstEdge is one surviving edge after Kruskal extraction and probabilistic
// re-insertion, still indexed by room-center position.
type mstEdge struct {
	A, B   int
	Weight float64
}

// buildMST hosts the triangulation's edge set in a katalvlaran/lvlath
// core.Graph (one vertex per room, named by its index), then extracts a
// minimum spanning tree by hand-rolled Kruskal over union-find — the
// observed lvlath surface exposes core.Graph's vertex/edge primitives but no
// Kruskal/Prim call the generator could delegate to, so the MST algorithm
// itself is ours while the graph storage is lvlath's.
//
// Discarded edges are reinserted with probability p to avoid a purely
// tree-shaped dungeon, giving the corridor graph occasional loops.
func buildMST(edges []triangulationEdge, centers []geom.Vec3, p float64, r *rng.Random) ([]mstEdge, error) {
	g := core.NewGraph(core.WithWeighted())
	for i := range centers {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("dungeon: mst: AddVertex: %w", err)
		}
	}

	weighted := make([]mstEdge, 0, len(edges))
	for _, e := range edges {
		w := centers[e.A].Distance(centers[e.B])
		if !g.HasEdge(vertexID(e.A), vertexID(e.B)) && !g.HasEdge(vertexID(e.B), vertexID(e.A)) {
			if _, err := g.AddEdge(vertexID(e.A), vertexID(e.B), int(w*1000)); err != nil {
				return nil, fmt.Errorf("dungeon: mst: AddEdge: %w", err)
			}
		}
		weighted = append(weighted, mstEdge{A: e.A, B: e.B, Weight: w})
	}

	sort.Slice(weighted, func(i, j int) bool { return weighted[i].Weight < weighted[j].Weight })

	uf := newUnionFind(len(centers))
	var tree []mstEdge
	var discarded []mstEdge

	for _, e := range weighted {
		if uf.union(e.A, e.B) {
			tree = append(tree, e)
		} else {
			discarded = append(discarded, e)
		}
	}

	for _, e := range discarded {
		if r.RealIn(0, 1) < p {
			tree = append(tree, e)
		}
	}

	return tree, nil
}

func vertexID(i int) string { return fmt.Sprintf("room%d", i) }

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b, returning true if they were
// previously disjoint (i.e. this edge belongs in the spanning tree).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
