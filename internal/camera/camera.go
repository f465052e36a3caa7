package camera

import (
	"math"

	"mini-rt/internal/vecmath"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// PitchLimit keeps the front vector away from WorldUp so the basis never degenerates.
	PitchLimit = 89.0

	DefaultYaw   = -90.0
	DefaultPitch = 0.0
	DefaultFOV   = 60.0
)

// Camera is a pinhole camera driven by yaw/pitch in degrees.
// The basis is private and rebuilt on every pose change.
type Camera struct {
	Position vecmath.Vec3
	Yaw      float64
	Pitch    float64
	FOV      float64 // vertical, degrees

	front vecmath.Vec3
	right vecmath.Vec3
	up    vecmath.Vec3
}

// New returns a camera at the origin looking down -Z with a 60 degree field of view.
func New() *Camera {
	c := &Camera{
		Yaw:   DefaultYaw,
		Pitch: DefaultPitch,
		FOV:   DefaultFOV,
	}
	c.Update()
	return c
}

// Update recomputes front/right/up from yaw and pitch.
// Call after any direct write to Position, Yaw or Pitch.
func (c *Camera) Update() {
	y := mgl64.DegToRad(c.Yaw)
	p := mgl64.DegToRad(c.Pitch)
	c.front = vecmath.V(
		math.Cos(y)*math.Cos(p),
		math.Sin(p),
		math.Sin(y)*math.Cos(p),
	).Normalize()
	c.right = c.front.Cross(vecmath.WorldUp).Normalize()
	c.up = c.right.Cross(c.front)
}

// Rotate adds the deltas, clamps pitch and rebuilds the basis.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = clampPitch(c.Pitch + dPitch)
	c.Update()
}

// Move translates the camera by direction*speed. direction is expected to be
// unit length already (Front and Right are).
func (c *Camera) Move(direction vecmath.Vec3, speed float64) {
	c.Position = c.Position.Add(direction.Mul(speed))
	c.Update()
}

// SetPose places the camera, clamping pitch like Rotate does.
func (c *Camera) SetPose(position vecmath.Vec3, yaw, pitch float64) {
	c.Position = position
	c.Yaw = yaw
	c.Pitch = clampPitch(pitch)
	c.Update()
}

// GetRay returns the primary ray through viewport-plane offset (u, v).
func (c *Camera) GetRay(u, v float64) vecmath.Ray {
	dir := c.front.Add(c.right.Mul(u)).Add(c.up.Mul(v)).Normalize()
	return vecmath.NewRay(c.Position, dir)
}

func (c *Camera) Front() vecmath.Vec3 { return c.front }
func (c *Camera) Right() vecmath.Vec3 { return c.right }
func (c *Camera) Up() vecmath.Vec3    { return c.up }

func clampPitch(p float64) float64 {
	if p > PitchLimit {
		return PitchLimit
	}
	if p < -PitchLimit {
		return -PitchLimit
	}
	return p
}
