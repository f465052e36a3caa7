package camera_test

import (
	"math"
	"testing"

	"mini-rt/internal/camera"
	"mini-rt/internal/vecmath"
)

const tol = 1e-9

func approx(a, b vecmath.Vec3) bool {
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol && math.Abs(a[2]-b[2]) < tol
}

func TestNewDefaults(t *testing.T) {
	c := camera.New()

	if c.Position != vecmath.V(0, 0, 0) {
		t.Errorf("Expected origin, got %v", c.Position)
	}
	if c.Yaw != -90 || c.Pitch != 0 || c.FOV != 60 {
		t.Errorf("Expected yaw -90 pitch 0 fov 60, got %v %v %v", c.Yaw, c.Pitch, c.FOV)
	}
	if !approx(c.Front(), vecmath.V(0, 0, -1)) {
		t.Errorf("Expected front (0,0,-1), got %v", c.Front())
	}
	if !approx(c.Right(), vecmath.V(1, 0, 0)) {
		t.Errorf("Expected right (1,0,0), got %v", c.Right())
	}
	if !approx(c.Up(), vecmath.V(0, 1, 0)) {
		t.Errorf("Expected up (0,1,0), got %v", c.Up())
	}
}

func TestBasisOrthonormal(t *testing.T) {
	poses := []struct {
		yaw, pitch float64
	}{
		{-90, 0},
		{-90, -20},
		{0, 45},
		{137, -88.9},
		{-400, 89},
	}
	for _, p := range poses {
		c := camera.New()
		c.SetPose(vecmath.V(0, 3, 10), p.yaw, p.pitch)

		f, r, u := c.Front(), c.Right(), c.Up()
		for name, v := range map[string]vecmath.Vec3{"front": f, "right": r, "up": u} {
			if math.Abs(v.Len()-1) > 1e-9 {
				t.Errorf("yaw=%v pitch=%v: %s not unit length: %f", p.yaw, p.pitch, name, v.Len())
			}
		}
		if math.Abs(f.Dot(r)) > 1e-9 || math.Abs(f.Dot(u)) > 1e-9 || math.Abs(r.Dot(u)) > 1e-9 {
			t.Errorf("yaw=%v pitch=%v: basis not orthogonal", p.yaw, p.pitch)
		}
		// right x up = -front for a right-handed camera looking down its front
		if !approx(r.Cross(u), f.Mul(-1)) {
			t.Errorf("yaw=%v pitch=%v: basis not right-handed", p.yaw, p.pitch)
		}
	}
}

func TestUpdateIdempotent(t *testing.T) {
	c := camera.New()
	c.SetPose(vecmath.V(1, 2, 3), 33, -12)

	c.Update()
	f1, r1, u1 := c.Front(), c.Right(), c.Up()
	c.Update()
	if c.Front() != f1 || c.Right() != r1 || c.Up() != u1 {
		t.Errorf("Update changed basis without a pose change")
	}
}

func TestRotatePitchSaturates(t *testing.T) {
	c := camera.New()
	for i := 0; i < 10000; i++ {
		c.Rotate(0, 5)
		if c.Pitch > camera.PitchLimit || c.Pitch < -camera.PitchLimit {
			t.Fatalf("Pitch escaped clamp after %d calls: %f", i+1, c.Pitch)
		}
	}
	if c.Pitch != camera.PitchLimit {
		t.Errorf("Expected pitch to saturate at %v, got %v", camera.PitchLimit, c.Pitch)
	}

	for i := 0; i < 10000; i++ {
		c.Rotate(0, -5)
	}
	if c.Pitch != -camera.PitchLimit {
		t.Errorf("Expected pitch to saturate at %v, got %v", -camera.PitchLimit, c.Pitch)
	}
	if !vecmath.IsFinite(c.Right()) {
		t.Errorf("Basis degenerated at pitch clamp: right=%v", c.Right())
	}
}

func TestRotateYaw(t *testing.T) {
	c := camera.New()
	c.Rotate(90, 0)
	if !approx(c.Front(), vecmath.V(1, 0, 0)) {
		t.Errorf("Expected front (1,0,0) after yaw to 0, got %v", c.Front())
	}
}

func TestMove(t *testing.T) {
	c := camera.New()
	c.Move(c.Front(), 2)
	if !approx(c.Position, vecmath.V(0, 0, -2)) {
		t.Errorf("Expected (0,0,-2), got %v", c.Position)
	}
	c.Move(c.Right(), -0.5)
	if !approx(c.Position, vecmath.V(-0.5, 0, -2)) {
		t.Errorf("Expected (-0.5,0,-2), got %v", c.Position)
	}
}

func TestGetRay(t *testing.T) {
	c := camera.New()
	c.SetPose(vecmath.V(0, 0, 5), -90, 0)

	r := c.GetRay(0, 0)
	if r.Origin != c.Position {
		t.Errorf("Expected origin at camera position, got %v", r.Origin)
	}
	if !approx(r.Direction, c.Front()) {
		t.Errorf("Center ray should follow front, got %v", r.Direction)
	}

	r = c.GetRay(1, 1)
	if math.Abs(r.Direction.Len()-1) > 1e-12 {
		t.Errorf("Expected normalized direction, got length %f", r.Direction.Len())
	}
	if r.Direction.X() <= 0 || r.Direction.Y() <= 0 {
		t.Errorf("Positive u/v should tilt right and up, got %v", r.Direction)
	}
}
