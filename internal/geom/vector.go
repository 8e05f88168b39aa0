// Package geom provides the integer and real 2D/3D vector primitives, the
// axis-aligned integer box, and the 6-way-reducible Direction type the rest
// of the module is built on. No 3D math library is imported here: vectors
// are specified entirely by the semantics the dungeon generator needs, per
// the module's "no binding to a specific 3D math library" constraint.
package geom

import "math"

// IVec2 is an integer 2D vector (grid-space x/y).
type IVec2 struct {
	X, Y int
}

// Add returns the component-wise sum of a and b.
func (a IVec2) Add(b IVec2) IVec2 { return IVec2{a.X + b.X, a.Y + b.Y} }

// Sub returns the component-wise difference a-b.
func (a IVec2) Sub(b IVec2) IVec2 { return IVec2{a.X - b.X, a.Y - b.Y} }

// IVec3 is an integer 3D vector (grid-space x/y/z, z is vertical).
type IVec3 struct {
	X, Y, Z int
}

// Add returns the component-wise sum of a and b.
func (a IVec3) Add(b IVec3) IVec3 { return IVec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns the component-wise difference a-b.
func (a IVec3) Sub(b IVec3) IVec3 { return IVec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// ManhattanDistance returns |dx|+|dy|+|dz| between a and b.
func (a IVec3) ManhattanDistance(b IVec3) int {
	return iabs(a.X-b.X) + iabs(a.Y-b.Y) + iabs(a.Z-b.Z)
}

// ToVec3 widens an IVec3 into a real-valued Vec3.
func (a IVec3) ToVec3() Vec3 {
	return Vec3{float64(a.X), float64(a.Y), float64(a.Z)}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vec2 is a real-valued 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a real-valued 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of a and b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns the component-wise difference a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Normalized returns a scaled to unit length, or the zero vector if a is
// (near) zero-length.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float64 { return a.Sub(b).Length() }
