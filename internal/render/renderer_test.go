package render_test

import (
	"slices"
	"testing"

	"mini-rt/internal/camera"
	"mini-rt/internal/framebuffer"
	"mini-rt/internal/render"
	"mini-rt/internal/scene"
	"mini-rt/internal/vecmath"
)

func TestRenderSphereEndToEnd(t *testing.T) {
	cam := camera.New()
	cam.SetPose(vecmath.V(0, 0, 5), -90, 0)
	sc := scene.NewSphereMask(scene.Sphere{Radius: 1})

	fb, err := framebuffer.New(100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	render.New(4).Render(cam, sc, 0, fb)

	if got := fb.At(50, 50); got == framebuffer.Black {
		t.Errorf("Center pixel should hit the sphere, got background")
	}
	if got := fb.At(50, 50); got != 0xFFFFFFFF {
		t.Errorf("Center pixel should be white, got %#08x", got)
	}
	if got := fb.At(0, 0); got != framebuffer.Black {
		t.Errorf("Corner pixel should be background, got %#08x", got)
	}
	for _, p := range fb.Pix {
		if p>>24 != 0xFF {
			t.Fatalf("Every pixel must be opaque, got %#08x", p)
		}
	}
}

func TestRenderImageNotFlipped(t *testing.T) {
	// triangle entirely above the view axis must land in the top half
	cam := camera.New()
	cam.SetPose(vecmath.V(0, 0, 5), -90, 0)
	tr := scene.NewTriangle(vecmath.V(-1, 0.5, 0), vecmath.V(1, 0.5, 0), vecmath.V(0, 1.5, 0), vecmath.V(0, 1, 0))
	sc := scene.NewTriangleScene(tr)

	fb, _ := framebuffer.New(64, 64)
	render.New(2).Render(cam, sc, 0, fb)

	var top, bottom int
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == framebuffer.Black {
				continue
			}
			if y < fb.Height/2 {
				top++
			} else {
				bottom++
			}
		}
	}
	if top == 0 || bottom != 0 {
		t.Errorf("Expected triangle only in top half, got top=%d bottom=%d", top, bottom)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	cam := camera.New()
	cam.SetPose(vecmath.V(0, 3, 10), -90, -20)

	scenes := []*scene.Scene{
		scene.NewSphereMask(scene.Sphere{Radius: 1}),
		scene.NewSphereNormals(scene.Sphere{Radius: 1}),
		scene.NewTriangleScene(scene.NewTriangle(vecmath.V(-1.5, 0, 0), vecmath.V(1.5, 0, 0), vecmath.V(0, 2, 0), vecmath.V(1, 0.5, 0.2))),
	}
	for _, sc := range scenes {
		serial, _ := framebuffer.New(97, 53)
		parallel, _ := framebuffer.New(97, 53)

		render.RenderSerial(cam, sc, 1.25, serial)
		render.New(7).Render(cam, sc, 1.25, parallel)

		if !slices.Equal(serial.Pix, parallel.Pix) {
			t.Errorf("%v: parallel render differs from serial render", sc.Kind())
		}
	}
}

func TestRenderOverwritesBuffer(t *testing.T) {
	cam := camera.New()
	cam.SetPose(vecmath.V(0, 0, 5), -90, 0)
	sc := scene.NewSphereMask(scene.Sphere{Radius: 1})

	fb, _ := framebuffer.New(10, 10)
	fb.Clear(0x12345678)
	render.New(0).Render(cam, sc, 0, fb)

	for i, p := range fb.Pix {
		if p == 0x12345678 {
			t.Fatalf("pixel %d was not rewritten", i)
		}
	}
}

func TestNewDefaultsWorkers(t *testing.T) {
	if w := render.New(0).Workers(); w < 1 {
		t.Errorf("Expected at least one worker, got %d", w)
	}
	if w := render.New(3).Workers(); w != 3 {
		t.Errorf("Expected 3 workers, got %d", w)
	}
}
