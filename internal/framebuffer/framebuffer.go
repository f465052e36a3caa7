package framebuffer

import (
	"fmt"
	"math"

	"mini-rt/internal/vecmath"
)

// MinSize is the smallest width/height the viewport mapping accepts.
const MinSize = 2

// Opaque black, the background for every scene.
const Black uint32 = 0xFF000000

// Framebuffer is a tightly packed, row-major ARGB8888 image. Row 0 is the top.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// New allocates a buffer cleared to opaque black.
func New(width, height int) (*Framebuffer, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("framebuffer %dx%d: dimensions must be at least %dx%d", width, height, MinSize, MinSize)
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
	fb.Clear(Black)
	return fb, nil
}

func (fb *Framebuffer) Clear(c uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Row returns the pixels of row y; writes go straight into the buffer.
func (fb *Framebuffer) Row(y int) []uint32 {
	return fb.Pix[y*fb.Width : (y+1)*fb.Width]
}

func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Pix[y*fb.Width+x]
}

func (fb *Framebuffer) Set(x, y int, c uint32) {
	fb.Pix[y*fb.Width+x] = c
}

// Quantize converts a linear channel to 8 bits: round(clamp(c,0,1)*255).
func Quantize(c float64) uint32 {
	return uint32(math.Round(vecmath.Clamp01(c) * 255))
}

// Pack converts an RGB colour in [0,1] to opaque 0xFFRRGGBB.
func Pack(c vecmath.Vec3) uint32 {
	return 0xFF<<24 | Quantize(c[0])<<16 | Quantize(c[1])<<8 | Quantize(c[2])
}

// Unpack splits a packed pixel into its 8-bit channels.
func Unpack(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}
