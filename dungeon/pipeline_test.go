package dungeon

import (
	"testing"

	"warrens/internal/geom"
	"warrens/internal/gridcell"
)

func TestGateDirectionPicksDominantAxis(t *testing.T) {
	a := &Room{Box: geom.NewBox3(geom.IVec3{X: 0, Y: 0, Z: 0}, geom.IVec3{X: 4, Y: 4, Z: 1})}
	east := &Room{Box: geom.NewBox3(geom.IVec3{X: 10, Y: 0, Z: 0}, geom.IVec3{X: 4, Y: 4, Z: 1})}
	south := &Room{Box: geom.NewBox3(geom.IVec3{X: 0, Y: 10, Z: 0}, geom.IVec3{X: 4, Y: 4, Z: 1})}

	if got := gateDirection(a, east); got != geom.East {
		t.Errorf("gateDirection(a, east) = %v, want East", got)
	}
	if got := gateDirection(a, south); got != geom.South {
		t.Errorf("gateDirection(a, south) = %v, want South", got)
	}
}

func TestGateCellLiesOnBoundaryAndOutsideIsAdjacent(t *testing.T) {
	r := &Room{Box: geom.NewBox3(geom.IVec3{X: 0, Y: 0, Z: 0}, geom.IVec3{X: 4, Y: 4, Z: 1})}

	boundary, outside := gateCell(r, geom.East)
	if !r.Contains(boundary) {
		t.Errorf("gateCell boundary %v is not inside the room", boundary)
	}
	if r.Contains(outside) {
		t.Errorf("gateCell outside %v is inside the room, want just past its boundary", outside)
	}
	if outside.Sub(boundary) != geom.East.UnitVector() {
		t.Errorf("outside - boundary = %v, want the East unit vector", outside.Sub(boundary))
	}
}

func TestGenerateVoxelStampsRoomInteriorsAsFloor(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams(11))
	if g.LastError() != Success {
		t.Fatalf("LastError() = %v, want Success", g.LastError())
	}

	for _, r := range g.Rooms() {
		cell := g.Voxel().Get(r.Box.Min)
		if cell.Type != gridcell.Floor && cell.Type != gridcell.Deck {
			t.Errorf("room origin cell = %v, want Floor or Deck", cell.Type)
		}
		if cell.Identifier != r.Identifier {
			t.Errorf("room origin cell Identifier = %d, want %d", cell.Identifier, r.Identifier)
		}
	}
}

func TestGenerateAisleStampsGateCellsForEveryEdge(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams(17))
	if g.LastError() != Success {
		t.Fatalf("LastError() = %v, want Success", g.LastError())
	}

	for _, a := range g.Aisles() {
		for i := 0; i < 2; i++ {
			cell := g.Voxel().Get(a.Point(i).Location)
			if cell.Type != gridcell.Gate {
				t.Errorf("aisle endpoint %v = %v, want Gate", a.Point(i).Location, cell.Type)
			}
		}
	}
}

func TestGenerateAisleFiresOnCellForEveryRoutedCell(t *testing.T) {
	g := NewGenerator()

	seen := map[geom.IVec3]bool{}
	g.SetEvents(&GenerationEvents{
		OnCell: func(loc geom.IVec3) { seen[loc] = true },
	})

	g.Generate(smallParams(17))
	if g.LastError() != Success {
		t.Fatalf("LastError() = %v, want Success", g.LastError())
	}

	for _, a := range g.Aisles() {
		for i := 0; i < 2; i++ {
			loc := a.Point(i).Location
			if !seen[loc] {
				t.Errorf("OnCell never fired for gate cell %v", loc)
			}
		}
	}

	nonEmptyRouted := false
	g.Voxel().Each(func(loc geom.IVec3, cell gridcell.Cell) bool {
		if cell.Type == gridcell.Aisle || cell.Type == gridcell.Slope {
			nonEmptyRouted = true
			if !seen[loc] {
				t.Errorf("OnCell never fired for routed cell %v (%v)", loc, cell.Type)
			}
		}
		return true
	})
	if !nonEmptyRouted {
		t.Fatalf("generated dungeon carved no Aisle or Slope cells, test setup invalid")
	}
}

func TestComputeRouteMetadataAssignsDepthFromStartZeroAtTheStartRoom(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams(29))
	if g.LastError() != Success {
		t.Fatalf("LastError() = %v, want Success", g.LastError())
	}

	startRoom := g.StartPoint().Room
	if startRoom.DepthFromStart != 0 {
		t.Errorf("start room DepthFromStart = %d, want 0", startRoom.DepthFromStart)
	}
}

func TestDeepestDepthFromStartMatchesTheGoalRoom(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams(31))
	if g.LastError() != Success {
		t.Fatalf("LastError() = %v, want Success", g.LastError())
	}

	goalRoom := g.GoalPoint().Room
	if goalRoom.DepthFromStart != g.DeepestDepthFromStart() {
		t.Errorf("goal room DepthFromStart = %d, want %d (the deepest reached)", goalRoom.DepthFromStart, g.DeepestDepthFromStart())
	}
}
