package voxel

import (
	"container/heap"
	"errors"

	"warrens/internal/geom"
	"warrens/internal/gridcell"
)

// ErrGoalOutsideRange is returned by Aisle when goal does not lie within the
// voxel's bounds at all (distinct from a search that completes but finds no
// path, which returns ErrRouteNotFound).
var ErrGoalOutsideRange = errors.New("voxel: goal point is outside voxel bounds")

// ErrRouteNotFound is returned by Aisle when the open set empties without
// ever reaching goal.
var ErrRouteNotFound = errors.New("voxel: no route found between start and goal")

const slopeCost = 3

// aisleNode is one entry in the A* open set.
type aisleNode struct {
	loc      geom.IVec3
	g        int
	f        int
	index    int
	fromSlop bool
	slopeDir geom.Direction
}

type nodeQueue []*aisleNode

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *nodeQueue) Push(x interface{}) { n := x.(*aisleNode); n.index = len(*q); *q = append(*q, n) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// candidateStep is a single step out of loc considered during search: either
// a plain horizontal move, or the two-cell slope segment that ascends or
// descends one floor.
type candidateStep struct {
	next      geom.IVec3
	cost      int
	isSlope   bool
	slopeDir  geom.Direction
	slopeCell geom.IVec3 // the intermediate cell written as Slope on commit
}

func (v *Voxel) neighbors(loc geom.IVec3, identifier uint16) []candidateStep {
	var steps []candidateStep

	for _, dir := range geom.AllDirections() {
		unit := dir.UnitVector()
		flat := loc.Add(unit)

		if v.InBounds(flat) {
			cell := v.Get(flat)
			if cell.IsHorizontallyPassable() || cell.Type == gridcell.Empty {
				cost := 1
				if cell.IsAisle() {
					cost = 0
				}
				steps = append(steps, candidateStep{next: flat, cost: cost})
			}
		}

		// Ascend: step onto the cell one unit over and one floor up, via an
		// intermediate Slope cell at (loc+unit, z) that is actually placed at
		// the lower floor but mesh-classified to bridge to z+1.
		up := geom.IVec3{X: loc.X + unit.X, Y: loc.Y + unit.Y, Z: loc.Z + 1}
		if v.InBounds(up) && v.InBounds(flat) {
			if v.Get(flat).Type == gridcell.Empty && v.Get(up).IsVerticallyPassable() {
				steps = append(steps, candidateStep{
					next:      up,
					cost:      slopeCost,
					isSlope:   true,
					slopeDir:  dir,
					slopeCell: flat,
				})
			}
		}

		// Descend: symmetric to ascend, approaching from the higher floor.
		down := geom.IVec3{X: loc.X + unit.X, Y: loc.Y + unit.Y, Z: loc.Z - 1}
		if v.InBounds(down) && v.InBounds(flat) {
			if v.Get(flat).Type == gridcell.Empty && v.Get(down).IsVerticallyPassable() {
				steps = append(steps, candidateStep{
					next:      down,
					cost:      slopeCost,
					isSlope:   true,
					slopeDir:  dir.Inverse(),
					slopeCell: flat,
				})
			}
		}
	}

	return steps
}

type cameFromEntry struct {
	from      geom.IVec3
	isSlope   bool
	slopeDir  geom.Direction
	slopeCell geom.IVec3
}

// Aisle carves an A*-routed corridor from start to goal, mutating Empty
// cells along the path to Aisle (tagged with identifier) and any slope
// segment cells to Slope (tagged with identifier and the climb direction).
// It returns the ordered path of cell locations actually carved.
//
// goalIsNearStart, when true, adds the expanding node's path cost divided by
// 8 to the heuristic of each neighbor it queues, biasing the search toward
// nodes reached cheaply from start — used when connecting an already-short
// MST edge, where a direct route is strongly preferred over one that
// wanders to lay cheap slopes elsewhere.
func (v *Voxel) Aisle(start, goal geom.IVec3, identifier uint16, goalIsNearStart bool) ([]geom.IVec3, error) {
	if !v.InBounds(start) || !v.InBounds(goal) {
		return nil, ErrGoalOutsideRange
	}

	open := &nodeQueue{}
	heap.Init(open)

	gScore := map[geom.IVec3]int{start: 0}
	cameFrom := map[geom.IVec3]cameFromEntry{}

	startNode := &aisleNode{loc: start, g: 0, f: heuristic(start, goal)}
	heap.Push(open, startNode)

	visited := map[geom.IVec3]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*aisleNode)
		if visited[current.loc] {
			continue
		}
		visited[current.loc] = true

		if current.loc == goal {
			return v.commitPath(cameFrom, start, goal, identifier), nil
		}

		for _, step := range v.neighbors(current.loc, identifier) {
			if visited[step.next] {
				continue
			}
			tentativeG := current.g + step.cost
			if prev, ok := gScore[step.next]; ok && prev <= tentativeG {
				continue
			}
			gScore[step.next] = tentativeG
			h := heuristic(step.next, goal)
			if goalIsNearStart {
				h += current.g / 8
			}
			cameFrom[step.next] = cameFromEntry{
				from:      current.loc,
				isSlope:   step.isSlope,
				slopeDir:  step.slopeDir,
				slopeCell: step.slopeCell,
			}
			heap.Push(open, &aisleNode{loc: step.next, g: tentativeG, f: tentativeG + h})
		}
	}

	return nil, ErrRouteNotFound
}

func heuristic(a, b geom.IVec3) int {
	return a.ManhattanDistance(b)
}

// commitPath walks cameFrom backward from goal to start, writes Aisle/Slope
// cells into the voxel, and returns the path in start->goal order.
func (v *Voxel) commitPath(cameFrom map[geom.IVec3]cameFromEntry, start, goal geom.IVec3, identifier uint16) []geom.IVec3 {
	var reversed []geom.IVec3
	loc := goal
	for loc != start {
		entry := cameFrom[loc]
		if entry.isSlope {
			existing := v.Get(entry.slopeCell)
			if existing.Type == gridcell.Empty {
				v.Set(entry.slopeCell, gridcell.Cell{
					Type:       gridcell.Slope,
					Identifier: identifier,
					Direction:  entry.slopeDir,
				})
			}
			reversed = append(reversed, entry.slopeCell)

			// loc is the slope segment's upper/lower arrival cell. It is
			// always vertically-passable already (never Empty, see
			// neighbors), so it must be written unconditionally: the two
			// cells of a slope pair always both carry Type Slope.
			v.Set(loc, gridcell.Cell{
				Type:       gridcell.Slope,
				Identifier: identifier,
				Direction:  entry.slopeDir,
			})
			reversed = append(reversed, loc)

			loc = entry.from
			continue
		}

		existing := v.Get(loc)
		if existing.Type == gridcell.Empty {
			v.Set(loc, gridcell.Cell{Type: gridcell.Aisle, Identifier: identifier})
		}
		reversed = append(reversed, loc)

		loc = entry.from
	}

	path := make([]geom.IVec3, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
