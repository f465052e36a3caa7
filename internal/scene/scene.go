package scene

import (
	"fmt"
	"math"

	"mini-rt/internal/vecmath"
)

// Kind identifies which primitive a Scene holds and how hits are shaded.
type Kind int

const (
	KindSphereMask Kind = iota
	KindSphereNormals
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindSphereMask:
		return "sphere-mask"
	case KindSphereNormals:
		return "sphere-normals"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	Background = vecmath.V(0, 0, 0)
	White      = vecmath.V(1, 1, 1)
)

type shadeFunc func(r vecmath.Ray, phase float64) vecmath.Vec3

// Scene holds exactly one primitive. The shading function is picked once in the
// constructor so the per-pixel path never switches on Kind.
type Scene struct {
	kind     Kind
	sphere   Sphere
	triangle Triangle
	shade    shadeFunc
}

// NewSphereMask shades every hit solid white.
func NewSphereMask(s Sphere) *Scene {
	sc := &Scene{kind: KindSphereMask, sphere: s}
	sc.shade = sc.shadeSphereMask
	return sc
}

// NewSphereNormals colours hits by the azimuth of the surface normal, rotated by phase.
func NewSphereNormals(s Sphere) *Scene {
	sc := &Scene{kind: KindSphereNormals, sphere: s}
	sc.shade = sc.shadeSphereNormals
	return sc
}

// NewTriangleScene shades hits with the triangle's fixed colour.
func NewTriangleScene(tr Triangle) *Scene {
	sc := &Scene{kind: KindTriangle, triangle: tr}
	sc.shade = sc.shadeTriangle
	return sc
}

func (sc *Scene) Kind() Kind { return sc.kind }

// Sphere returns the scene's sphere; the zero value for triangle scenes.
func (sc *Scene) Sphere() Sphere { return sc.sphere }

// Triangle returns the scene's triangle; the zero value for sphere scenes.
func (sc *Scene) Triangle() Triangle { return sc.triangle }

// Shade intersects the ray with the scene and returns a linear colour in [0,1].
// phase is the animation offset in radians; only the normals variant reads it.
// Misses return Background.
func (sc *Scene) Shade(r vecmath.Ray, phase float64) vecmath.Vec3 {
	return sc.shade(r, phase)
}

func (sc *Scene) shadeSphereMask(r vecmath.Ray, _ float64) vecmath.Vec3 {
	if _, ok := sc.sphere.Intersect(r); ok {
		return White
	}
	return Background
}

func (sc *Scene) shadeSphereNormals(r vecmath.Ray, phase float64) vecmath.Vec3 {
	t, ok := sc.sphere.Intersect(r)
	if !ok {
		return Background
	}
	n := sc.sphere.Normal(r.At(t))
	return HueColor(math.Atan2(n.Z(), n.X()) + phase)
}

func (sc *Scene) shadeTriangle(r vecmath.Ray, _ float64) vecmath.Vec3 {
	if _, ok := sc.triangle.Intersect(r); ok {
		return sc.triangle.Color
	}
	return Background
}

// HueColor maps an angle to RGB with three sine waves 120 degrees apart.
func HueColor(phase float64) vecmath.Vec3 {
	const third = 2 * math.Pi / 3
	return vecmath.V(
		0.5+0.5*math.Sin(phase),
		0.5+0.5*math.Sin(phase+third),
		0.5+0.5*math.Sin(phase+2*third),
	)
}
