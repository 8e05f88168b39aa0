package dungeon

import "warrens/internal/geom"

// PointAndRoom is a point in grid space with a non-owning back-reference to
// the Room it originated from (nil for intermediate corridor vertices that
// are not a room's gate). Equality is by coordinates only — the Room
// pointer is metadata, not part of identity. The referenced Room's lifetime
// is the owning Generator's; PointAndRoom never extends it.
type PointAndRoom struct {
	Location geom.IVec3
	Room     *Room
}

// Equal reports whether a and b denote the same grid coordinate, ignoring
// which Room (if any) each carries.
func (a PointAndRoom) Equal(b PointAndRoom) bool {
	return a.Location == b.Location
}

// HasRoom reports whether this point originated from a room's gate, as
// opposed to an intermediate corridor vertex.
func (a PointAndRoom) HasRoom() bool { return a.Room != nil }
