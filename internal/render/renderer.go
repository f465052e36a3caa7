package render

import (
	"runtime"

	"mini-rt/internal/camera"
	"mini-rt/internal/framebuffer"
	"mini-rt/internal/profiling"
	"mini-rt/internal/scene"

	"golang.org/x/sync/errgroup"
)

// Renderer casts one primary ray per pixel. Rows are split into bands and
// shaded concurrently; each pixel depends only on the camera, the scene and
// its own coordinates, so the result matches a serial render.
type Renderer struct {
	workers int
}

// New returns a renderer using up to workers goroutines per frame.
// workers <= 0 means runtime.NumCPU().
func New(workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers}
}

func (r *Renderer) Workers() int { return r.workers }

// Render overwrites every pixel of fb. It returns once all bands are done.
func (r *Renderer) Render(cam *camera.Camera, sc *scene.Scene, phase float64, fb *framebuffer.Framebuffer) {
	defer profiling.Track("render.Frame")()

	vp := camera.NewViewport(fb.Width, fb.Height, cam.FOV)

	bands := r.workers * 4
	if bands > fb.Height {
		bands = fb.Height
	}
	rowsPerBand := (fb.Height + bands - 1) / bands

	var g errgroup.Group
	g.SetLimit(r.workers)
	for y0 := 0; y0 < fb.Height; y0 += rowsPerBand {
		y0 := y0
		y1 := min(y0+rowsPerBand, fb.Height)
		g.Go(func() error {
			renderRows(cam, sc, phase, vp, fb, y0, y1)
			return nil
		})
	}
	// shading cannot fail; Wait is the frame barrier
	_ = g.Wait()
}

// RenderSerial shades the whole buffer on the calling goroutine.
func RenderSerial(cam *camera.Camera, sc *scene.Scene, phase float64, fb *framebuffer.Framebuffer) {
	vp := camera.NewViewport(fb.Width, fb.Height, cam.FOV)
	renderRows(cam, sc, phase, vp, fb, 0, fb.Height)
}

func renderRows(cam *camera.Camera, sc *scene.Scene, phase float64, vp camera.Viewport, fb *framebuffer.Framebuffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := fb.Row(y)
		for x := range row {
			u, v := vp.Map(x, y)
			row[x] = framebuffer.Pack(sc.Shade(cam.GetRay(u, v), phase))
		}
	}
}
