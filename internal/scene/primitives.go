package scene

import (
	"math"

	"mini-rt/internal/vecmath"
)

// Sphere is centered at Center, which is the origin for every preset.
type Sphere struct {
	Center vecmath.Vec3
	Radius float64
}

// Intersect returns the distance to the near surface along a unit-length ray.
// Hits at t <= Epsilon, including those behind the origin, are rejected.
func (s Sphere) Intersect(r vecmath.Ray) (float64, bool) {
	o := r.Origin.Sub(s.Center)
	b := o.Dot(r.Direction)
	disc := b*b - o.Dot(o) + s.Radius*s.Radius
	if !(disc >= 0) {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if !(t > vecmath.Epsilon) {
		return 0, false
	}
	return t, true
}

// Normal returns the outward unit normal at a surface point.
func (s Sphere) Normal(p vecmath.Vec3) vecmath.Vec3 {
	return p.Sub(s.Center).Normalize()
}

// Triangle stores its first vertex and the two edges leaving it, which is the
// form Moller-Trumbore consumes.
type Triangle struct {
	V0    vecmath.Vec3
	Edge1 vecmath.Vec3
	Edge2 vecmath.Vec3
	Color vecmath.Vec3
}

// NewTriangle builds a triangle from three vertices.
func NewTriangle(v0, v1, v2, color vecmath.Vec3) Triangle {
	return Triangle{
		V0:    v0,
		Edge1: v1.Sub(v0),
		Edge2: v2.Sub(v0),
		Color: color,
	}
}

// TriangleHit carries the ray parameter and the barycentric coordinates
// of the hit relative to Edge1 (U) and Edge2 (W).
type TriangleHit struct {
	T float64
	U float64
	W float64
}

// Intersect runs Moller-Trumbore. Rays parallel to the plane, hits outside the
// barycentric bounds and hits at t <= Epsilon are misses.
func (tr Triangle) Intersect(r vecmath.Ray) (TriangleHit, bool) {
	h := r.Direction.Cross(tr.Edge2)
	a := tr.Edge1.Dot(h)
	if !(math.Abs(a) >= vecmath.Epsilon) {
		return TriangleHit{}, false
	}

	f := 1 / a
	s := r.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if !(u >= 0 && u <= 1) {
		return TriangleHit{}, false
	}

	q := s.Cross(tr.Edge1)
	w := f * r.Direction.Dot(q)
	if !(w >= 0) || u+w > 1 {
		return TriangleHit{}, false
	}

	t := f * tr.Edge2.Dot(q)
	if !(t > vecmath.Epsilon) {
		return TriangleHit{}, false
	}
	return TriangleHit{T: t, U: u, W: w}, true
}

// Normal returns the unit normal given by the winding v0 -> v1 -> v2.
func (tr Triangle) Normal() vecmath.Vec3 {
	return tr.Edge1.Cross(tr.Edge2).Normalize()
}

// Centroid returns (v0+v1+v2)/3.
func (tr Triangle) Centroid() vecmath.Vec3 {
	return tr.V0.Add(tr.Edge1.Add(tr.Edge2).Mul(1.0 / 3.0))
}
