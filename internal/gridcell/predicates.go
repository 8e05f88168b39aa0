package gridcell

import "warrens/internal/geom"

// CanBuildFloor reports whether a floor mesh is generated on the face of s
// facing t. checkMeshSuppression, when true, short-circuits to false if s
// has NoFloorMeshGeneration set.
func CanBuildFloor(s, t Cell, checkMeshSuppression bool) bool {
	if checkMeshSuppression && s.NoFloorMesh() {
		return false
	}

	if s.IsRoomLike() || s.IsAisle() {
		return t.Identifier != s.Identifier || t.IsAisle() || t.IsSlopeLike() || t.IsSpatial()
	}

	return false
}

// CanBuildSlope reports whether s itself is a slope cell.
func CanBuildSlope(s Cell) bool {
	return s.Type == Slope
}

// CanBuildRoof reports whether a roof mesh is generated on the face of s
// facing t. checkMeshSuppression mirrors CanBuildFloor's flag.
func CanBuildRoof(s, t Cell, checkMeshSuppression bool) bool {
	if checkMeshSuppression && s.NoRoofMesh() {
		return false
	}

	switch {
	case s.IsRoomLike():
		return t.Type == Deck || t.Type == Gate || t.IsAisle() || t.IsSlopeLike() || t.IsSpatial()
	case s.IsAisle():
		return t.IsRoomLike() || t.IsAisle() || t.IsSlopeLike() || t.IsSpatial()
	case s.IsSlopeLike():
		return t.IsRoomLike() || t.IsAisle() || t.Type == Slope || t.IsSpatial()
	default:
		return false
	}
}

// CanBuildWall reports whether a wall is generated on the face of s facing
// t, where dir is the direction from s to t. mergeRooms, when true,
// suppresses the wall that would otherwise separate two adjacent
// same-height rooms.
func CanBuildWall(s, t Cell, dir geom.Direction, mergeRooms bool) bool {
	if !mergeRooms && s.IsRoomWithoutGate() && t.IsRoomWithoutGate() {
		if s.Identifier != t.Identifier {
			return true
		}
	}

	switch {
	case s.IsGate():
		if t.IsRoomLike() || t.IsSlopeLike() {
			return s.Identifier != t.Identifier && s.Direction.IsNorthSouth() != dir.IsNorthSouth()
		}
		return t.IsSpatial()

	case s.IsRoomWithoutGate():
		return t.IsAisle() || t.IsSlopeLike() || t.IsSpatial()

	case s.IsAisle():
		if t.IsAisle() || t.IsSlopeLike() {
			return t.Identifier != s.Identifier
		}
		return t.IsRoomWithoutGate() || t.IsSpatial()

	case s.Type == Slope:
		if t.IsSlopeLike() {
			return t.Direction.IsNorthSouth() != dir.IsNorthSouth() || t.Identifier != s.Identifier
		}
		return t.IsSpatial()

	case s.Type == Atrium:
		if t.IsSlopeLike() {
			return t.Direction.IsNorthSouth() != dir.IsNorthSouth() || t.Identifier != s.Identifier
		}
		return t.IsSpatial()

	default:
		return false
	}
}

// CanBuildWallForMinimap is CanBuildWall's minimap-only variant: it
// deliberately does NOT treat a room-without-gate cell facing a slope-like
// cell as a wall, because slopes visually connect rooms on the minimap.
// This is intentionally kept separate from CanBuildWall rather than
// unified, since the two renderers disagree on whether a slope should
// read as an opening or a solid face.
func CanBuildWallForMinimap(s, t Cell, dir geom.Direction, mergeRooms bool) bool {
	if !mergeRooms && s.IsRoomWithoutGate() && t.IsRoomWithoutGate() {
		if s.Identifier != t.Identifier {
			return true
		}
	}

	switch {
	case s.IsGate():
		if t.IsRoomLike() || t.IsSlopeLike() {
			return s.Identifier != t.Identifier && s.Direction.IsNorthSouth() != dir.IsNorthSouth()
		}
		return t.IsSpatial()

	case s.IsRoomWithoutGate():
		return t.IsAisle() || t.IsSpatial() // no IsSlopeLike() check here

	case s.IsAisle():
		if t.IsAisle() || t.IsSlopeLike() {
			return t.Identifier != s.Identifier
		}
		return t.IsRoomWithoutGate() || t.IsSpatial()

	case s.Type == Slope:
		if t.IsSlopeLike() {
			return t.Direction.IsNorthSouth() != dir.IsNorthSouth() || t.Identifier != s.Identifier
		}
		return t.IsSpatial()

	case s.Type == Atrium:
		if t.IsSlopeLike() {
			return t.Direction.IsNorthSouth() != dir.IsNorthSouth() || t.Identifier != s.Identifier
		}
		return t.IsSpatial()

	default:
		return false
	}
}

// CanBuildPillar reports whether a pillar is generated at the corner shared
// by s and t (in practice evaluated over the four cells meeting at a grid
// corner; here for the single-neighbor form).
func CanBuildPillar(s, t Cell) bool {
	return t.IsHorizontallyPassable() && t.Type != Empty && t.Type != Atrium && t.Type != Slope
}

// CanBuildGate reports whether a gate mesh is generated on the face of s
// facing t, where dir is the direction from s to t. Only meaningful when s
// is itself a Gate cell.
func CanBuildGate(s, t Cell, dir geom.Direction) bool {
	if s.Type != Gate {
		return false
	}

	if t.Type == Gate {
		return s.Direction == t.Direction && s.Direction.Inverse() == dir
	}

	if t.IsSlopeLike() {
		return s.Direction.IsNorthSouth() == t.Direction.IsNorthSouth() && s.Direction.IsNorthSouth() == dir.IsNorthSouth()
	}

	return t.IsAisle()
}
