package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps pixel coordinates of a W x H image onto the camera's image
// plane at unit distance. Pixel (0,0) is the top-left corner and v grows upward.
type Viewport struct {
	Width  int
	Height int

	planeW float64
	planeH float64
	invW   float64 // 1/(Width-1)
	invH   float64 // 1/(Height-1)
}

// NewViewport builds the mapping for the given image size and vertical FOV in degrees.
// Width and Height must both be at least 2.
func NewViewport(width, height int, fov float64) Viewport {
	planeH := 2 * math.Tan(mgl64.DegToRad(fov)/2)
	return Viewport{
		Width:  width,
		Height: height,
		planeH: planeH,
		planeW: planeH * float64(width) / float64(height),
		invW:   1 / float64(width-1),
		invH:   1 / float64(height-1),
	}
}

// Map returns the viewport-plane offsets for pixel (x, y).
func (vp Viewport) Map(x, y int) (u, v float64) {
	u = (float64(x)*vp.invW - 0.5) * vp.planeW
	v = (0.5 - float64(y)*vp.invH) * vp.planeH
	return u, v
}

// PlaneSize returns the viewport width and height at unit distance.
func (vp Viewport) PlaneSize() (w, h float64) {
	return vp.planeW, vp.planeH
}
