package render

import (
	"testing"

	"mini-rt/internal/camera"
	"mini-rt/internal/framebuffer"
	"mini-rt/internal/scene"
	"mini-rt/internal/vecmath"
)

func makeFrameForBench(b *testing.B) (*camera.Camera, *scene.Scene, *framebuffer.Framebuffer) {
	cam := camera.New()
	cam.SetPose(vecmath.V(0, 3, 10), -90, -20)
	fb, err := framebuffer.New(450, 300)
	if err != nil {
		b.Fatal(err)
	}
	return cam, scene.NewSphereNormals(scene.Sphere{Radius: 1}), fb
}

func BenchmarkRenderParallel(b *testing.B) {
	cam, sc, fb := makeFrameForBench(b)
	r := New(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(cam, sc, float64(i)*0.01, fb)
	}
}

func BenchmarkRenderSerial(b *testing.B) {
	cam, sc, fb := makeFrameForBench(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RenderSerial(cam, sc, float64(i)*0.01, fb)
	}
}

func BenchmarkTriangleIntersect(b *testing.B) {
	tr := scene.NewTriangle(vecmath.V(-1.5, 0, 0), vecmath.V(1.5, 0, 0), vecmath.V(0, 2, 0), vecmath.V(1, 0.5, 0.2))
	ray := vecmath.NewRay(vecmath.V(0, 1, 5), vecmath.V(0, -0.1, -1).Normalize())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Intersect(ray)
	}
}
