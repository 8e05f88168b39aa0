// Package dungeon orchestrates the full generation pipeline: room
// placement, overlap separation, triangulation and MST extraction, A*
// corridor carving, and the start/goal/depth/branch bookkeeping that turns
// a bag of rooms into a connected dungeon.
package dungeon

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"warrens/internal/geom"
	"warrens/internal/rng"
	"warrens/internal/voxel"
)

// Generator owns one dungeon generation run: its Random, Voxel, Rooms, and
// Aisles are exclusive to this Generator and shared with no other —
// multiple Generators may run in separate goroutines without synchronization
// since none share mutable state.
type Generator struct {
	random *rng.Random

	parameter GenerateParameter

	vox   *voxel.Voxel
	rooms []*Room

	floorHeights []int

	leafPoints []PointAndRoom
	startPoint PointAndRoom
	goalPoint  PointAndRoom

	aisles []Aisle

	queryParts func(room *Room)
	events     *GenerationEvents

	distance uint8

	lastError Error
}

// NewGenerator constructs an idle Generator. Call Generate to run the
// pipeline.
func NewGenerator() *Generator {
	return &Generator{}
}

// OnQueryParts registers the phase-5 callback, invoked once per room after
// separation and before voxelisation, letting the caller override a room's
// parts/size. The callback must not retain the handle past return and must
// not call back into the Generator.
func (g *Generator) OnQueryParts(fn func(room *Room)) {
	g.queryParts = fn
}

// SetEvents installs a GenerationEvents sink invoked at well-defined points
// during the next Generate call. Pass nil to detach.
func (g *Generator) SetEvents(events *GenerationEvents) {
	g.events = events
}

// LastError reports the outcome of the most recent Generate call.
func (g *Generator) LastError() Error { return g.lastError }

// Seed returns the effective random seed used by the most recent Generate
// call (never 0, even if the caller passed RandomSeed: 0).
func (g *Generator) Seed() uint32 {
	if g.random == nil {
		return 0
	}
	return g.random.Seed()
}

// Voxel returns the generated voxel grid.
func (g *Generator) Voxel() *voxel.Voxel { return g.vox }

// Rooms returns every generated room.
func (g *Generator) Rooms() []*Room { return g.rooms }

// Aisles returns every generated aisle edge.
func (g *Generator) Aisles() []Aisle { return g.aisles }

// StartPoint returns the point chosen as the dungeon's entrance.
func (g *Generator) StartPoint() PointAndRoom { return g.startPoint }

// GoalPoint returns the point chosen as the dungeon's furthest objective.
func (g *Generator) GoalPoint() PointAndRoom { return g.goalPoint }

// EachLeafPoint calls fn once for every dead-end point: the gate of a room
// that exactly one aisle connects to, excluding the start and goal rooms.
// Degree is counted over all aisles, reinserted loop edges included, so a
// room whose only spanning-tree edge is joined by a loop edge is not a leaf.
func (g *Generator) EachLeafPoint(fn func(point PointAndRoom)) {
	for _, p := range g.leafPoints {
		fn(p)
	}
}

// FloorHeights returns the sorted, deduplicated list of distinct room
// z-levels detected during generation.
func (g *Generator) FloorHeights() []int { return g.floorHeights }

// FindFloor returns the largest index i with FloorHeights()[i] <= z, or 0
// if there is no such index.
func (g *Generator) FindFloor(z int) int {
	idx := 0
	for i, h := range g.floorHeights {
		if h <= z {
			idx = i
		}
	}
	return idx
}

// DeepestDepthFromStart returns the maximum depthFromStart assigned to any
// room during the BFS labelling phase.
func (g *Generator) DeepestDepthFromStart() uint8 { return g.distance }

// FindRoomAt returns the first room containing point, or nil.
func (g *Generator) FindRoomAt(point geom.IVec3) *Room {
	for _, r := range g.rooms {
		if r.Contains(point) {
			return r
		}
	}
	return nil
}

// FindAllRoomsAt returns every room containing point.
func (g *Generator) FindAllRoomsAt(point geom.IVec3) []*Room {
	var out []*Room
	for _, r := range g.rooms {
		if r.Contains(point) {
			out = append(out, r)
		}
	}
	return out
}

// FindByDepth returns every room at the given depthFromStart.
func (g *Generator) FindByDepth(depth uint8) []*Room {
	var out []*Room
	for _, r := range g.rooms {
		if r.DepthFromStart == depth {
			out = append(out, r)
		}
	}
	return out
}

// FindByBranch returns every room tagged with the given branch id.
func (g *Generator) FindByBranch(branchID uint8) []*Room {
	var out []*Room
	for _, r := range g.rooms {
		if r.BranchId == branchID {
			out = append(out, r)
		}
	}
	return out
}

// FindByRoute returns every room reachable from startRoom by following
// aisle edges.
func (g *Generator) FindByRoute(startRoom *Room) []*Room {
	visited := mapset.New[*Room]()
	visited.Put(startRoom)
	queue := []*Room{startRoom}
	var out []*Room

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		out = append(out, r)

		for i := range g.aisles {
			a := &g.aisles[i]
			if !a.ConnectsRoom(r) {
				continue
			}
			other := a.Other(r)
			if other != nil && !visited.Has(other) {
				visited.Put(other)
				queue = append(queue, other)
			}
		}
	}
	return out
}

// reset clears all owned state and the last error before a new Generate
// call, so a Generator can be reused across independent runs.
func (g *Generator) reset() {
	g.vox = nil
	g.rooms = nil
	g.floorHeights = nil
	g.leafPoints = nil
	g.startPoint = PointAndRoom{}
	g.goalPoint = PointAndRoom{}
	g.aisles = nil
	g.distance = 0
	g.lastError = Success
}

// Generate runs the full room-placement, separation, triangulation, and
// corridor-carving pipeline. It never returns an error value directly — the
// outcome is read back through LastError, matching a last_error()-style
// contract. If an events sink was installed with SetEvents, it observes
// pipeline progress synchronously as each phase runs.
func (g *Generator) Generate(parameter GenerateParameter) {
	events := g.events
	g.reset()
	g.parameter = parameter
	g.random = rng.New(parameter.RandomSeed)

	g.generateRooms(parameter)

	if err := g.separateRooms(parameter); err != nil {
		g.lastError = SeparateRoomsFailed
		return
	}

	g.removeInvalidRooms(parameter)
	g.expandSpace(parameter)

	if g.queryParts != nil {
		for _, r := range g.rooms {
			g.queryParts(r)
		}
	}

	g.detectFloorHeight()

	tree, err := g.extractionAisles(parameter)
	if err != nil {
		g.lastError = TriangulationFailed
		return
	}

	if err := g.generateVoxel(parameter, events); err != nil {
		g.lastError = err.(Error)
		return
	}

	if err := g.generateAisle(tree, events); err != nil {
		g.lastError = err.(Error)
		return
	}

	if err := g.computeRouteMetadata(); err != nil {
		g.lastError = err.(Error)
		return
	}

	g.lastError = Success
}

// generateRooms draws NumberOfCandidateRooms candidate rooms: center from a
// bivariate Gaussian around the origin, width/depth/height uniform within
// their configured bounds, z quantised to NumberOfCandidateFloors levels.
func (g *Generator) generateRooms(p GenerateParameter) {
	floors := p.NumberOfCandidateFloors
	if floors < 1 {
		floors = 1
	}

	avgSize := float64(p.MinRoomWidth+p.MaxRoomWidth+p.MinRoomDepth+p.MaxRoomDepth) / 4
	stddev := avgSize * float64(p.NumberOfCandidateRooms) / 6
	if stddev < avgSize {
		stddev = avgSize
	}

	g.rooms = make([]*Room, 0, p.NumberOfCandidateRooms)
	for i := 0; i < p.NumberOfCandidateRooms; i++ {
		cx := int(g.random.Gauss(0, stddev))
		cy := int(g.random.Gauss(0, stddev))

		w := g.random.IntIn(p.MinRoomWidth, p.MaxRoomWidth)
		d := g.random.IntIn(p.MinRoomDepth, p.MaxRoomDepth)
		h := g.random.IntIn(p.MinRoomHeight, p.MaxRoomHeight)

		floor := g.random.IntIn(0, floors-1)
		z := floor * (p.MaxRoomHeight + p.VerticalRoomMargin)

		origin := geom.IVec3{X: cx - w/2, Y: cy - d/2, Z: z}
		box := geom.NewBox3(origin, geom.IVec3{X: w, Y: d, Z: h})

		g.rooms = append(g.rooms, &Room{
			Box:        box,
			Identifier: uint16(i + 1),
		})
	}
}

// separateRooms iteratively pushes overlapping room pairs apart until a
// full pass records zero overlaps, or the iteration cap is hit.
func (g *Generator) separateRooms(p GenerateParameter) error {
	margin := p.HorizontalRoomMargin
	maxIter := p.maxSeparationIterations()

	for iter := 0; iter < maxIter; iter++ {
		anyOverlap := false

		for i := 0; i < len(g.rooms); i++ {
			for j := i + 1; j < len(g.rooms); j++ {
				a, b := g.rooms[i], g.rooms[j]
				expandedA := a.Box.Expand(margin)

				mtv, overlaps := expandedA.Overlap(b.Box)
				if !overlaps {
					continue
				}
				anyOverlap = true

				half := geom.IVec3{X: mtv.X / 2, Y: mtv.Y / 2}
				if half.X == 0 && half.Y == 0 {
					half = mtv
				}

				a.Box = a.Box.Translate(geom.IVec3{X: half.X, Y: half.Y})
				b.Box = b.Box.Translate(geom.IVec3{X: -half.X, Y: -half.Y})
			}
		}

		if !anyOverlap {
			return nil
		}
	}

	for i := 0; i < len(g.rooms); i++ {
		for j := i + 1; j < len(g.rooms); j++ {
			if g.rooms[i].Box.Intersects(g.rooms[j].Box) {
				return SeparateRoomsFailed
			}
		}
	}
	return nil
}

// removeInvalidRooms discards rooms that shrank below the minimum footprint.
// Separation pushes never change width/depth in this implementation, so in
// practice nothing is removed here; it runs before the onQueryParts
// callback, so rooms that callback shrinks are not re-checked.
func (g *Generator) removeInvalidRooms(p GenerateParameter) {
	kept := g.rooms[:0]
	for _, r := range g.rooms {
		if r.Width() < p.MinRoomWidth || r.Depth() < p.MinRoomDepth {
			continue
		}
		kept = append(kept, r)
	}
	g.rooms = kept
}

// expandSpace translates every room so the overall bounding box starts at
// (1, 1, 1), then sizes the Voxel to that box plus a one-cell margin on
// every face.
func (g *Generator) expandSpace(p GenerateParameter) {
	if len(g.rooms) == 0 {
		g.vox = voxel.New(1, 1, 1)
		return
	}

	min := g.rooms[0].Box.Min
	max := g.rooms[0].Box.Max
	for _, r := range g.rooms[1:] {
		min = geom.IVec3{
			X: minInt(min.X, r.Box.Min.X),
			Y: minInt(min.Y, r.Box.Min.Y),
			Z: minInt(min.Z, r.Box.Min.Z),
		}
		max = geom.IVec3{
			X: maxInt(max.X, r.Box.Max.X),
			Y: maxInt(max.Y, r.Box.Max.Y),
			Z: maxInt(max.Z, r.Box.Max.Z),
		}
	}

	delta := geom.IVec3{X: 1 - min.X, Y: 1 - min.Y, Z: 1 - min.Z}
	for _, r := range g.rooms {
		r.Box = r.Box.Translate(delta)
	}

	size := max.Sub(min)
	g.vox = voxel.New(size.X+2, size.Y+2, size.Z+2)
}

// detectFloorHeight sorts and dedupes every room's z-origin into
// floorHeights.
func (g *Generator) detectFloorHeight() {
	seen := map[int]bool{}
	for _, r := range g.rooms {
		seen[r.Box.Min.Z] = true
	}
	heights := make([]int, 0, len(seen))
	for z := range seen {
		heights = append(heights, z)
	}
	sort.Ints(heights)
	g.floorHeights = heights
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
