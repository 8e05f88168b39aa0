// Package voxel provides the dense 3D array of gridcell.Cell the dungeon is
// carved into, plus the A*-based corridor router used to connect rooms.
package voxel

import (
	"warrens/internal/geom"
	"warrens/internal/gridcell"
)

// Voxel is a bounded, dense 3D array of gridcell.Cell. Reads outside bounds
// return gridcell.OutOfBoundsCell; writes outside bounds are no-ops.
// Indexing is row-major in (x, y, z); z is vertical.
type Voxel struct {
	width, depth, height int
	cells                []gridcell.Cell
}

// New allocates a Voxel of the given dimensions, every cell initialized to
// gridcell.EmptyCell.
func New(width, depth, height int) *Voxel {
	v := &Voxel{
		width:  width,
		depth:  depth,
		height: height,
		cells:  make([]gridcell.Cell, width*depth*height),
	}
	for i := range v.cells {
		v.cells[i] = gridcell.EmptyCell
	}
	return v
}

// Width returns the voxel's x extent.
func (v *Voxel) Width() int { return v.width }

// Depth returns the voxel's y extent.
func (v *Voxel) Depth() int { return v.depth }

// Height returns the voxel's z extent.
func (v *Voxel) Height() int { return v.height }

// InBounds reports whether loc lies within the voxel's allocated extent.
func (v *Voxel) InBounds(loc geom.IVec3) bool {
	return loc.X >= 0 && loc.X < v.width &&
		loc.Y >= 0 && loc.Y < v.depth &&
		loc.Z >= 0 && loc.Z < v.height
}

func (v *Voxel) index(loc geom.IVec3) int {
	return loc.X + loc.Y*v.width + loc.Z*v.width*v.depth
}

// Get returns the cell at loc, or gridcell.OutOfBoundsCell if loc is
// outside the voxel's bounds. OutOfBounds is synthesized on read and never
// stored.
func (v *Voxel) Get(loc geom.IVec3) gridcell.Cell {
	if !v.InBounds(loc) {
		return gridcell.OutOfBoundsCell
	}
	return v.cells[v.index(loc)]
}

// Set writes cell at loc. Out-of-bounds writes are silently ignored.
func (v *Voxel) Set(loc geom.IVec3, cell gridcell.Cell) {
	if !v.InBounds(loc) {
		return
	}
	v.cells[v.index(loc)] = cell
}

// Each iterates every cell in the voxel in row-major order, calling fn with
// the cell's location and value. Iteration stops early if fn returns false.
func (v *Voxel) Each(fn func(loc geom.IVec3, cell gridcell.Cell) bool) {
	for z := 0; z < v.height; z++ {
		for y := 0; y < v.depth; y++ {
			for x := 0; x < v.width; x++ {
				loc := geom.IVec3{X: x, Y: y, Z: z}
				if !fn(loc, v.cells[v.index(loc)]) {
					return
				}
			}
		}
	}
}

// NeighborHorizontal returns the cell adjacent to loc in the given
// horizontal direction, along with its location.
func (v *Voxel) NeighborHorizontal(loc geom.IVec3, dir geom.Direction) (geom.IVec3, gridcell.Cell) {
	n := loc.Add(dir.UnitVector())
	return n, v.Get(n)
}
