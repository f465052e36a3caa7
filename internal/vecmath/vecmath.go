package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a plain value vector. Add, Sub, Mul, Dot, Cross, Normalize and Len
// come from mgl64 and never mutate the receiver.
type Vec3 = mgl64.Vec3

// Epsilon guards against self-intersection and near-parallel rays.
const Epsilon = 1e-5

// WorldUp is the fixed up axis the camera basis is built against.
var WorldUp = Vec3{0, 1, 0}

// V constructs a vector from its components.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Ray is a half-line. Direction is not required to be unit length unless the
// consumer says otherwise.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay returns a ray with the given origin and direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Clamp01 clamps x into [0, 1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// IsFinite reports whether every component is a finite number.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
