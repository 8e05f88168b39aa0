package dungeon

import (
	"math"

	"warrens/internal/geom"
	"warrens/internal/gridcell"
)

// extractionAisles triangulates room centers, extracts an MST (with
// probabilistic edge re-insertion for loops), and returns the surviving
// edges ordered shortest-first — the order GenerateAisle carves them in, so
// shorter corridors get first claim on any cell reuse.
func (g *Generator) extractionAisles(p GenerateParameter) ([]mstEdge, error) {
	if len(g.rooms) < 3 {
		return nil, TriangulationFailed
	}

	centers := make([]geom.Vec3, len(g.rooms))
	for i, r := range g.rooms {
		centers[i] = r.Center()
	}

	edges, err := triangulate(centers)
	if err != nil {
		return nil, err
	}

	tree, err := buildMST(edges, centers, p.edgeReinsertionProbability(), g.random)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(tree); i++ {
		for j := i + 1; j < len(tree); j++ {
			if tree[j].Weight < tree[i].Weight {
				tree[i], tree[j] = tree[j], tree[i]
			}
		}
	}

	return tree, nil
}

// generateVoxel stamps every room's cells as Floor, except its top layer
// (z = Max.Z-1), which is stamped as Deck.
func (g *Generator) generateVoxel(p GenerateParameter, events *GenerationEvents) error {
	for _, r := range g.rooms {
		for z := r.Box.Min.Z; z < r.Box.Max.Z; z++ {
			for y := r.Box.Min.Y; y < r.Box.Max.Y; y++ {
				for x := r.Box.Min.X; x < r.Box.Max.X; x++ {
					loc := geom.IVec3{X: x, Y: y, Z: z}
					onPerimeter := x == r.Box.Min.X || x == r.Box.Max.X-1 ||
						y == r.Box.Min.Y || y == r.Box.Max.Y-1 ||
						z == r.Box.Max.Z-1

					cellType := gridcell.Floor
					if onPerimeter && z == r.Box.Max.Z-1 {
						cellType = gridcell.Deck
					}

					flags := gridcell.Flags(0)
					if r.NoFloorMeshGeneration {
						flags |= gridcell.NoFloorMeshGeneration
					}
					if r.NoRoofMeshGeneration {
						flags |= gridcell.NoRoofMeshGeneration
					}

					g.vox.Set(loc, gridcell.Cell{
						Type:       cellType,
						Identifier: r.Identifier,
						Direction:  geom.North,
						Flags:      flags,
					})
					events.fireCell(loc)
				}
			}
		}
		events.fireRoom(r)
	}
	return nil
}

// gateDirection picks the cardinal direction from room a toward room b's
// center, used to pick which face of a a gate opens onto.
func gateDirection(a, b *Room) geom.Direction {
	ca, cb := a.Center(), b.Center()
	dx, dy := cb.X-ca.X, cb.Y-ca.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return geom.East
		}
		return geom.West
	}
	if dy >= 0 {
		return geom.South
	}
	return geom.North
}

// gateCell returns the boundary floor cell on room r's face in direction
// dir, roughly centered along that face, and the adjacent cell just outside
// it (where A* search should start/end). The outside cell is not checked
// for being empty.
func gateCell(r *Room, dir geom.Direction) (boundary, outside geom.IVec3) {
	box := r.Box
	midX := box.Min.X + box.Width()/2
	midY := box.Min.Y + box.Depth()/2
	z := box.Min.Z

	switch dir {
	case geom.East:
		boundary = geom.IVec3{X: box.Max.X - 1, Y: midY, Z: z}
	case geom.West:
		boundary = geom.IVec3{X: box.Min.X, Y: midY, Z: z}
	case geom.South:
		boundary = geom.IVec3{X: midX, Y: box.Max.Y - 1, Z: z}
	case geom.North:
		boundary = geom.IVec3{X: midX, Y: box.Min.Y, Z: z}
	}

	outside = boundary.Add(dir.UnitVector())
	return boundary, outside
}

// generateAisle carves a corridor for every surviving MST edge, in
// shortest-first order, marking each room's gate cell and calling the
// voxel A* router between the two gates' outward-facing cells.
func (g *Generator) generateAisle(tree []mstEdge, events *GenerationEvents) error {
	for i, e := range tree {
		roomA, roomB := g.rooms[e.A], g.rooms[e.B]

		dirAB := gateDirection(roomA, roomB)
		dirBA := dirAB.Inverse()

		gateA, outA := gateCell(roomA, dirAB)
		gateB, outB := gateCell(roomB, dirBA)

		if !g.vox.InBounds(outA) || !g.vox.InBounds(outB) {
			return RouteSearchFailed
		}

		// When the cell just outside a room's chosen gate belongs to another
		// room, that room cannot be given a gate on that face.
		if occupied := g.vox.Get(outA); occupied.IsRoomLike() && occupied.Identifier != roomA.Identifier {
			return GateSearchFailed
		}
		if occupied := g.vox.Get(outB); occupied.IsRoomLike() && occupied.Identifier != roomB.Identifier {
			return GateSearchFailed
		}

		identifier := uint16(i + 1)

		g.vox.Set(gateA, gridcell.Cell{Type: gridcell.Gate, Identifier: roomA.Identifier, Direction: dirAB})
		g.vox.Set(gateB, gridcell.Cell{Type: gridcell.Gate, Identifier: roomB.Identifier, Direction: dirBA})
		events.fireCell(gateA)
		events.fireCell(gateB)

		path, err := g.vox.Aisle(outA, outB, identifier, e.Weight < 8)
		if err != nil {
			return RouteSearchFailed
		}
		for _, loc := range path {
			events.fireCell(loc)
		}

		aisle := NewAisle(
			PointAndRoom{Location: gateA, Room: roomA},
			PointAndRoom{Location: gateB, Room: roomB},
		)
		aisle.Identifier = identifier
		aisle.Weight = e.Weight
		g.aisles = append(g.aisles, aisle)
		events.fireAisle(&g.aisles[len(g.aisles)-1])
	}
	return nil
}

// computeRouteMetadata assigns depthFromStart by BFS over the aisle graph,
// picks start/goal points, collects leaf points, and labels branch ids by
// DFS over the same aisle graph. Reinserted loop edges are not separated
// from spanning-tree edges: the DFS follows any aisle that leads to a room
// not yet visited, so which edge hands a room its branch id can depend on
// aisle order.
func (g *Generator) computeRouteMetadata() error {
	if len(g.rooms) == 0 {
		return GoalPointIsOutsideGoalRange
	}

	startRoom := g.rooms[0]
	for _, r := range g.rooms {
		if r.Parts == PartsStart {
			startRoom = r
			break
		}
	}

	degree := map[*Room]int{}
	adjacency := map[*Room][]*Aisle{}
	for i := range g.aisles {
		a := &g.aisles[i]
		ra, rb := a.Rooms()
		if ra != nil {
			degree[ra]++
			adjacency[ra] = append(adjacency[ra], a)
		}
		if rb != nil {
			degree[rb]++
			adjacency[rb] = append(adjacency[rb], a)
		}
	}

	depth := map[*Room]uint8{startRoom: 0}
	queue := []*Room{startRoom}
	var deepest uint8
	var deepestRoom *Room = startRoom

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		d := depth[r]
		if d > deepest {
			deepest = d
			deepestRoom = r
		}
		for _, a := range adjacency[r] {
			other := a.Other(r)
			if other == nil {
				continue
			}
			if _, seen := depth[other]; !seen {
				depth[other] = d + 1
				queue = append(queue, other)
			}
		}
	}

	for r, d := range depth {
		r.DepthFromStart = d
	}
	g.distance = deepest

	var branch uint8
	visited := map[*Room]bool{startRoom: true}
	var assignBranch func(r *Room, b uint8)
	assignBranch = func(r *Room, b uint8) {
		r.BranchId = b
		for _, a := range adjacency[r] {
			other := a.Other(r)
			if other != nil && !visited[other] {
				visited[other] = true
				branch++
				assignBranch(other, branch)
			}
		}
	}
	assignBranch(startRoom, 0)

	startGate, _ := gateCell(startRoom, geom.North)
	for i := range g.aisles {
		if g.aisles[i].Point(0).Room == startRoom {
			startGate = g.aisles[i].Point(0).Location
			break
		}
		if g.aisles[i].Point(1).Room == startRoom {
			startGate = g.aisles[i].Point(1).Location
			break
		}
	}
	g.startPoint = PointAndRoom{Location: startGate, Room: startRoom}

	goalGate := startGate
	for i := range g.aisles {
		a := &g.aisles[i]
		if a.Point(0).Room == deepestRoom {
			goalGate = a.Point(0).Location
		} else if a.Point(1).Room == deepestRoom {
			goalGate = a.Point(1).Location
		}
	}
	g.goalPoint = PointAndRoom{Location: goalGate, Room: deepestRoom}

	if !deepestRoom.Contains(goalGate) && !g.vox.InBounds(goalGate) {
		return GoalPointIsOutsideGoalRange
	}

	g.leafPoints = g.leafPoints[:0]
	for r, d := range degree {
		if d != 1 || r == startRoom || r == deepestRoom {
			continue
		}
		for i := range g.aisles {
			a := &g.aisles[i]
			if a.Point(0).Room == r {
				g.leafPoints = append(g.leafPoints, a.Point(0))
			} else if a.Point(1).Room == r {
				g.leafPoints = append(g.leafPoints, a.Point(1))
			}
		}
	}

	return nil
}
