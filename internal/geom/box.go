package geom

// Box3 is an axis-aligned integer box over the half-open range
// [Min, Max) in each of x, y, z.
type Box3 struct {
	Min, Max IVec3
}

// NewBox3 builds a box spanning [origin, origin+size).
func NewBox3(origin IVec3, size IVec3) Box3 {
	return Box3{Min: origin, Max: origin.Add(size)}
}

// Width returns Max.X - Min.X.
func (b Box3) Width() int { return b.Max.X - b.Min.X }

// Depth returns Max.Y - Min.Y.
func (b Box3) Depth() int { return b.Max.Y - b.Min.Y }

// Height returns Max.Z - Min.Z.
func (b Box3) Height() int { return b.Max.Z - b.Min.Z }

// Center returns the real-valued center of the box.
func (b Box3) Center() Vec3 {
	return Vec3{
		X: float64(b.Min.X) + float64(b.Width())/2,
		Y: float64(b.Min.Y) + float64(b.Depth())/2,
		Z: float64(b.Min.Z) + float64(b.Height())/2,
	}
}

// Contains reports whether p lies within the half-open box.
func (b Box3) Contains(p IVec3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// ContainsXY reports whether (x, y) lies within the box's footprint,
// ignoring z entirely.
func (b Box3) ContainsXY(x, y int) bool {
	return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
}

// Intersects reports whether b and other overlap in all three axes.
func (b Box3) Intersects(other Box3) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// Translate returns b shifted by delta.
func (b Box3) Translate(delta IVec3) Box3 {
	return Box3{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Expand returns a box grown by margin cells on every face.
func (b Box3) Expand(margin int) Box3 {
	m := IVec3{margin, margin, margin}
	return Box3{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Overlap returns the minimum-translation vector needed to separate b from
// other along the axis of least penetration (x and y only — rooms are
// separated horizontally; vertical placement is resolved by floor
// quantization, not by push-apart). The second return value is false if the
// boxes do not intersect.
func (b Box3) Overlap(other Box3) (IVec3, bool) {
	if !b.Intersects(other) {
		return IVec3{}, false
	}

	// Penetration depth on each horizontal axis.
	xOverlap := minInt(b.Max.X, other.Max.X) - maxInt(b.Min.X, other.Min.X)
	yOverlap := minInt(b.Max.Y, other.Max.Y) - maxInt(b.Min.Y, other.Min.Y)

	bCenter := b.Center()
	oCenter := other.Center()

	if xOverlap < yOverlap {
		sign := 1
		if bCenter.X < oCenter.X {
			sign = -1
		}
		return IVec3{X: sign * xOverlap}, true
	}

	sign := 1
	if bCenter.Y < oCenter.Y {
		sign = -1
	}
	return IVec3{Y: sign * yOverlap}, true
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
