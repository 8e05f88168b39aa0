package dungeon

import (
	"testing"

	"warrens/internal/geom"
)

func TestGenerationEventsFireOnlySetCallbacks(t *testing.T) {
	var sawRoom *Room
	var sawAisle *Aisle
	var sawCell geom.IVec3

	events := &GenerationEvents{
		OnRoom: func(r *Room) { sawRoom = r },
	}

	room := &Room{Identifier: 7}
	events.fireRoom(room)
	if sawRoom != room {
		t.Errorf("fireRoom did not invoke OnRoom with the given room")
	}

	// OnAisle and OnCell are unset; firing them must not panic.
	events.fireAisle(&Aisle{Identifier: 1})
	events.fireCell(geom.IVec3{X: 1, Y: 2, Z: 3})
	if sawAisle != nil || sawCell != (geom.IVec3{}) {
		t.Errorf("unset callbacks must not have run")
	}
}

func TestGenerationEventsNilSinkIsNoop(t *testing.T) {
	var events *GenerationEvents
	events.fireRoom(&Room{})
	events.fireAisle(&Aisle{})
	events.fireCell(geom.IVec3{})
}
