package dungeon

import (
	"math"

	"warrens/internal/geom"
)

// triangulationEdge is an undirected pair of room-center indices, emitted by
// triangulate for the MST stage to consume.
type triangulationEdge struct {
	A, B int
}

const coplanarEpsilon = 1e-6

// triangulate computes the Delaunay edge set over centers (one entry per
// room, indexed identically to the caller's room slice). It runs a 3D
// Bowyer-Watson tetrahedralization inside a super-tetrahedron; degenerate or
// coplanar point sets (most commonly a single-floor dungeon, where every
// center shares the same z) fall back to a 2D Delaunay triangulation
// projected onto the plane through the first center and the first pair of
// centers not collinear with it.
func triangulate(centers []geom.Vec3) ([]triangulationEdge, error) {
	if len(centers) < 3 {
		return nil, TriangulationFailed
	}
	if len(centers) == 3 {
		return []triangulationEdge{{0, 1}, {0, 2}, {1, 2}}, nil
	}

	if isCoplanar(centers) {
		return triangulate2D(centers)
	}

	edges, err := triangulate3D(centers)
	if err != nil {
		return triangulate2D(centers)
	}
	return edges, nil
}

func isCoplanar(points []geom.Vec3) bool {
	origin := points[0]
	var normal geom.Vec3
	found := false
	for i := 1; i < len(points)-1 && !found; i++ {
		v1 := points[i].Sub(origin)
		for j := i + 1; j < len(points); j++ {
			v2 := points[j].Sub(origin)
			n := v1.Cross(v2)
			if n.Length() > coplanarEpsilon {
				normal = n.Normalized()
				found = true
				break
			}
		}
	}
	if !found {
		return true // every point collinear with origin
	}
	for _, p := range points[1:] {
		if math.Abs(normal.Dot(p.Sub(origin))) > coplanarEpsilon {
			return false
		}
	}
	return true
}

// --- 3D Bowyer-Watson ---

type tetrahedron struct {
	v [4]int
}

type triFace [3]int

func (f triFace) normalize() triFace {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return triFace{a, b, c}
}

func facesOf(t tetrahedron) [4]triFace {
	return [4]triFace{
		{t.v[0], t.v[1], t.v[2]},
		{t.v[0], t.v[1], t.v[3]},
		{t.v[0], t.v[2], t.v[3]},
		{t.v[1], t.v[2], t.v[3]},
	}
}

func sharesVertex(t tetrahedron, ids [4]int) bool {
	for _, v := range t.v {
		for _, s := range ids {
			if v == s {
				return true
			}
		}
	}
	return false
}

// circumsphere solves the 3x3 linear system giving the center equidistant
// from a, b, c, d, via Cramer's rule. ok is false for a degenerate
// (near-coplanar) tetrahedron.
func circumsphere(a, b, c, d geom.Vec3) (center geom.Vec3, radiusSq float64, ok bool) {
	ax, ay, az := a.X, a.Y, a.Z
	bx, by, bz := b.X-ax, b.Y-ay, b.Z-az
	cx, cy, cz := c.X-ax, c.Y-ay, c.Z-az
	dx, dy, dz := d.X-ax, d.Y-ay, d.Z-az

	bLen := bx*bx + by*by + bz*bz
	cLen := cx*cx + cy*cy + cz*cz
	dLen := dx*dx + dy*dy + dz*dz

	det := bx*(cy*dz-cz*dy) - by*(cx*dz-cz*dx) + bz*(cx*dy-cy*dx)
	if math.Abs(det) < 1e-9 {
		return geom.Vec3{}, 0, false
	}

	// Solve 2*M*center' = rhs where center' is relative to a.
	rx := 0.5 * (bLen*(cy*dz-cz*dy) - by*(cLen*dz-cz*dLen) + bz*(cLen*dy-cy*dLen))
	ry := 0.5 * (bx*(cLen*dz-cz*dLen) - bLen*(cx*dz-cz*dx) + bz*(cx*dLen-cLen*dx))
	rz := 0.5 * (bx*(cy*dLen-cLen*dy) - by*(cx*dLen-cLen*dx) + bLen*(cx*dy-cy*dx))

	ox := rx / det
	oy := ry / det
	oz := rz / det

	center = geom.Vec3{X: ax + ox, Y: ay + oy, Z: az + oz}
	radiusSq = ox*ox + oy*oy + oz*oz
	return center, radiusSq, true
}

func superTetrahedron(points []geom.Vec3) [4]geom.Vec3 {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = geom.Vec3{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = geom.Vec3{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	center := min.Add(max).Scale(0.5)
	extent := max.Sub(min).Length() + 1
	scale := extent * 20

	return [4]geom.Vec3{
		center.Add(geom.Vec3{X: 0, Y: 0, Z: scale}),
		center.Add(geom.Vec3{X: scale, Y: scale, Z: -scale}),
		center.Add(geom.Vec3{X: scale, Y: -scale, Z: -scale}),
		center.Add(geom.Vec3{X: -scale, Y: 0, Z: -scale}),
	}
}

func triangulate3D(points []geom.Vec3) ([]triangulationEdge, error) {
	n := len(points)
	super := superTetrahedron(points)
	all := make([]geom.Vec3, 0, n+4)
	all = append(all, points...)
	all = append(all, super[:]...)
	superIDs := [4]int{n, n + 1, n + 2, n + 3}

	tets := []tetrahedron{{v: superIDs}}

	for i := 0; i < n; i++ {
		p := all[i]
		var badIdx []int
		for ti, t := range tets {
			c, r2, ok := circumsphere(all[t.v[0]], all[t.v[1]], all[t.v[2]], all[t.v[3]])
			if !ok {
				continue
			}
			if p.Distance(c)*p.Distance(c) <= r2+1e-7 {
				badIdx = append(badIdx, ti)
			}
		}
		if len(badIdx) == 0 {
			continue
		}

		faceCount := map[triFace]int{}
		for _, ti := range badIdx {
			for _, f := range facesOf(tets[ti]) {
				faceCount[f.normalize()]++
			}
		}

		bad := make(map[int]bool, len(badIdx))
		for _, ti := range badIdx {
			bad[ti] = true
		}
		var kept []tetrahedron
		for ti, t := range tets {
			if !bad[ti] {
				kept = append(kept, t)
			}
		}

		for f, count := range faceCount {
			if count == 1 {
				kept = append(kept, tetrahedron{v: [4]int{f[0], f[1], f[2], i}})
			}
		}
		tets = kept
	}

	var final []tetrahedron
	for _, t := range tets {
		if !sharesVertex(t, superIDs) {
			final = append(final, t)
		}
	}
	if len(final) == 0 {
		return nil, TriangulationFailed
	}

	edgeSet := map[triangulationEdge]bool{}
	for _, t := range final {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				edgeSet[normalizeEdge(t.v[i], t.v[j])] = true
			}
		}
	}
	edges := make([]triangulationEdge, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	return edges, nil
}

func normalizeEdge(a, b int) triangulationEdge {
	if a > b {
		a, b = b, a
	}
	return triangulationEdge{a, b}
}

// --- 2D Delaunay fallback (projected onto the plane of the first non-collinear triple) ---

func triangulate2D(points []geom.Vec3) ([]triangulationEdge, error) {
	n := len(points)
	origin := points[0]

	var normal geom.Vec3
	found := false
	for i := 1; i < n-1 && !found; i++ {
		v1 := points[i].Sub(origin)
		for j := i + 1; j < n; j++ {
			v2 := points[j].Sub(origin)
			cr := v1.Cross(v2)
			if cr.Length() > coplanarEpsilon {
				normal = cr.Normalized()
				found = true
				break
			}
		}
	}
	if !found {
		return nil, TriangulationFailed
	}

	ref := geom.Vec3{X: 1, Y: 0, Z: 0}
	if math.Abs(normal.Dot(ref)) > 0.9 {
		ref = geom.Vec3{X: 0, Y: 1, Z: 0}
	}
	u := normal.Cross(ref).Normalized()
	v := normal.Cross(u).Normalized()

	pts2 := make([]geom.Vec2, n)
	for i, p := range points {
		rel := p.Sub(origin)
		pts2[i] = geom.Vec2{X: rel.Dot(u), Y: rel.Dot(v)}
	}

	return bowyerWatson2D(pts2)
}

type triangle2 struct {
	v [3]int
}

func circumcircle2D(a, b, c geom.Vec2) (center geom.Vec2, radiusSq float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-9 {
		return geom.Vec2{}, 0, false
	}
	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	ux := (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d
	uy := (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d

	center = geom.Vec2{X: ux, Y: uy}
	dx, dy := a.X-ux, a.Y-uy
	radiusSq = dx*dx + dy*dy
	return center, radiusSq, true
}

func bowyerWatson2D(points []geom.Vec2) ([]triangulationEdge, error) {
	n := len(points)
	minX, minY, maxX, maxY := points[0].X, points[0].Y, points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy) + 1
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	all := make([]geom.Vec2, 0, n+3)
	all = append(all, points...)
	superA := geom.Vec2{X: midX - 20*deltaMax, Y: midY - deltaMax}
	superB := geom.Vec2{X: midX, Y: midY + 20*deltaMax}
	superC := geom.Vec2{X: midX + 20*deltaMax, Y: midY - deltaMax}
	all = append(all, superA, superB, superC)
	superIDs := [3]int{n, n + 1, n + 2}

	tris := []triangle2{{v: superIDs}}

	for i := 0; i < n; i++ {
		p := all[i]
		var badIdx []int
		for ti, t := range tris {
			c, r2, ok := circumcircle2D(all[t.v[0]], all[t.v[1]], all[t.v[2]])
			if !ok {
				continue
			}
			ddx, ddy := p.X-c.X, p.Y-c.Y
			if ddx*ddx+ddy*ddy <= r2+1e-7 {
				badIdx = append(badIdx, ti)
			}
		}
		if len(badIdx) == 0 {
			continue
		}

		type edge2 [2]int
		normalizeE := func(a, b int) edge2 {
			if a > b {
				a, b = b, a
			}
			return edge2{a, b}
		}
		edgeCount := map[edge2]int{}
		bad := make(map[int]bool, len(badIdx))
		for _, ti := range badIdx {
			bad[ti] = true
			t := tris[ti]
			edgeCount[normalizeE(t.v[0], t.v[1])]++
			edgeCount[normalizeE(t.v[1], t.v[2])]++
			edgeCount[normalizeE(t.v[0], t.v[2])]++
		}

		var kept []triangle2
		for ti, t := range tris {
			if !bad[ti] {
				kept = append(kept, t)
			}
		}
		for e, count := range edgeCount {
			if count == 1 {
				kept = append(kept, triangle2{v: [3]int{e[0], e[1], i}})
			}
		}
		tris = kept
	}

	var final []triangle2
	for _, t := range tris {
		shares := false
		for _, v := range t.v {
			if v == superIDs[0] || v == superIDs[1] || v == superIDs[2] {
				shares = true
				break
			}
		}
		if !shares {
			final = append(final, t)
		}
	}
	if len(final) == 0 {
		return nil, TriangulationFailed
	}

	edgeSet := map[triangulationEdge]bool{}
	for _, t := range final {
		edgeSet[normalizeEdge(t.v[0], t.v[1])] = true
		edgeSet[normalizeEdge(t.v[1], t.v[2])] = true
		edgeSet[normalizeEdge(t.v[0], t.v[2])] = true
	}
	edges := make([]triangulationEdge, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	return edges, nil
}
