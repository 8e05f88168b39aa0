package gridcell

import (
	"testing"

	"warrens/internal/geom"
)

func TestCanBuildWall_AdjacentRoomsNoMerge(t *testing.T) {
	a := Cell{Type: Floor, Identifier: 1}
	b := Cell{Type: Floor, Identifier: 2}
	if !CanBuildWall(a, b, geom.East, false) {
		t.Errorf("CanBuildWall(roomA, roomB, mergeRooms=false) = false, want true")
	}
	if CanBuildWall(a, b, geom.East, true) {
		t.Errorf("CanBuildWall(roomA, roomB, mergeRooms=true) = true, want false")
	}
}

func TestCanBuildWall_SameRoomNoWall(t *testing.T) {
	a := Cell{Type: Floor, Identifier: 1}
	b := Cell{Type: Deck, Identifier: 1}
	if CanBuildWall(a, b, geom.East, false) {
		t.Errorf("CanBuildWall(sameRoom floor/deck) = true, want false")
	}
}

func TestCanBuildGate_MatchingDirectionGates(t *testing.T) {
	g1 := Cell{Type: Gate, Identifier: 1, Direction: geom.East}
	g2 := Cell{Type: Gate, Identifier: 2, Direction: geom.East}
	if !CanBuildGate(g1, g2, geom.West) {
		t.Errorf("CanBuildGate(matching-direction gates, inverse dir) = false, want true")
	}
	if CanBuildGate(g1, g2, geom.East) {
		t.Errorf("CanBuildGate(matching-direction gates, same dir) = true, want false")
	}
}

func TestCanBuildGate_OnlyFromGateCell(t *testing.T) {
	floor := Cell{Type: Floor, Identifier: 1}
	aisle := Cell{Type: Aisle, Identifier: 9}
	if CanBuildGate(floor, aisle, geom.East) {
		t.Errorf("CanBuildGate from non-Gate cell = true, want false")
	}
}

func TestCanBuildFloor_SuppressedByFlag(t *testing.T) {
	s := Cell{Type: Floor, Identifier: 1, Flags: NoFloorMeshGeneration}
	tgt := Cell{Type: Empty}
	if CanBuildFloor(s, tgt, true) {
		t.Errorf("CanBuildFloor with suppression flag set and checkMeshSuppression=true = true, want false")
	}
	if !CanBuildFloor(s, tgt, false) {
		t.Errorf("CanBuildFloor with suppression flag set and checkMeshSuppression=false = false, want true")
	}
}

func TestCanBuildPillar(t *testing.T) {
	s := Cell{Type: Floor, Identifier: 1}
	if !CanBuildPillar(s, Cell{Type: Aisle, Identifier: 2}) {
		t.Errorf("CanBuildPillar vs Aisle = false, want true")
	}
	if CanBuildPillar(s, Cell{Type: Slope, Identifier: 2}) {
		t.Errorf("CanBuildPillar vs Slope = true, want false")
	}
	if CanBuildPillar(s, Cell{Type: Empty}) {
		t.Errorf("CanBuildPillar vs Empty = true, want false")
	}
}

func TestCanBuildWallForMinimap_DivergesFromCanBuildWall(t *testing.T) {
	room := Cell{Type: Floor, Identifier: 1}
	slope := Cell{Type: Slope, Identifier: 2, Direction: geom.North}

	if !CanBuildWall(room, slope, geom.East, true) {
		t.Errorf("CanBuildWall(room, slope) = false, want true (3D wall exists toward a slope)")
	}
	if CanBuildWallForMinimap(room, slope, geom.East, true) {
		t.Errorf("CanBuildWallForMinimap(room, slope) = true, want false (minimap hides this wall)")
	}
}
