package dungeon

import "warrens/internal/geom"

// GenerationEvents is an optional sink of pipeline observation callbacks,
// grouping what would otherwise be several separate per-event callback
// fields into a single capability. Every callback is a pure observer: it
// must not mutate Generator state and must not call back into the
// Generator that invoked it.
type GenerationEvents struct {
	// OnRoom fires once per room as it is stamped into the voxel.
	OnRoom func(room *Room)

	// OnAisle fires once per aisle edge as it is carved.
	OnAisle func(aisle *Aisle)

	// OnCell fires for every room cell and gate cell the pipeline stamps,
	// and for every cell on a carved corridor path, including existing
	// cells the path only passes through. A location can be reported more
	// than once.
	OnCell func(loc geom.IVec3)
}

func (e *GenerationEvents) fireRoom(room *Room) {
	if e != nil && e.OnRoom != nil {
		e.OnRoom(room)
	}
}

func (e *GenerationEvents) fireAisle(aisle *Aisle) {
	if e != nil && e.OnAisle != nil {
		e.OnAisle(aisle)
	}
}

func (e *GenerationEvents) fireCell(loc geom.IVec3) {
	if e != nil && e.OnCell != nil {
		e.OnCell(loc)
	}
}
