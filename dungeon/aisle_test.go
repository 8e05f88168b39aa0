package dungeon

import (
	"testing"

	"warrens/internal/geom"
)

func TestAisleRoomsAndConnects(t *testing.T) {
	roomA := &Room{Identifier: 1}
	roomB := &Room{Identifier: 2}
	roomC := &Room{Identifier: 3}

	a := NewAisle(
		PointAndRoom{Location: geom.IVec3{X: 0, Y: 0, Z: 0}, Room: roomA},
		PointAndRoom{Location: geom.IVec3{X: 5, Y: 0, Z: 0}, Room: roomB},
	)

	gotA, gotB := a.Rooms()
	if gotA != roomA || gotB != roomB {
		t.Errorf("Rooms() = (%v, %v), want (%v, %v)", gotA, gotB, roomA, roomB)
	}

	if !a.ConnectsRoom(roomA) || !a.ConnectsRoom(roomB) {
		t.Errorf("ConnectsRoom() false for an endpoint room")
	}
	if a.ConnectsRoom(roomC) {
		t.Errorf("ConnectsRoom() true for a non-endpoint room")
	}
}

func TestAisleOther(t *testing.T) {
	roomA := &Room{Identifier: 1}
	roomB := &Room{Identifier: 2}
	roomC := &Room{Identifier: 3}

	a := NewAisle(
		PointAndRoom{Room: roomA},
		PointAndRoom{Room: roomB},
	)

	if got := a.Other(roomA); got != roomB {
		t.Errorf("Other(roomA) = %v, want roomB", got)
	}
	if got := a.Other(roomB); got != roomA {
		t.Errorf("Other(roomB) = %v, want roomA", got)
	}
	if got := a.Other(roomC); got != nil {
		t.Errorf("Other(roomC) = %v, want nil", got)
	}
}

func TestAisleFlagsHas(t *testing.T) {
	f := UniqueLocked | MainRoute
	if !f.Has(UniqueLocked) {
		t.Errorf("Has(UniqueLocked) = false, want true")
	}
	if !f.Has(MainRoute) {
		t.Errorf("Has(MainRoute) = false, want true")
	}
	if AisleFlags(0).Has(MainRoute) {
		t.Errorf("Has(MainRoute) = true for zero-value flags")
	}
}

func TestAislePointReturnsBothEndpoints(t *testing.T) {
	pa := PointAndRoom{Location: geom.IVec3{X: 1, Y: 2, Z: 3}}
	pb := PointAndRoom{Location: geom.IVec3{X: 4, Y: 5, Z: 6}}
	a := NewAisle(pa, pb)

	if !a.Point(0).Equal(pa) {
		t.Errorf("Point(0) = %v, want %v", a.Point(0), pa)
	}
	if !a.Point(1).Equal(pb) {
		t.Errorf("Point(1) = %v, want %v", a.Point(1), pb)
	}
}
