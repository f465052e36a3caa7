package hud

import (
	"fmt"
	"image"
	"time"

	"mini-rt/internal/framebuffer"
	"mini-rt/internal/profiling"
	"mini-rt/internal/vecmath"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Stats is everything the overlay shows. It is a copy; drawing never feeds back
// into camera or scene state.
type Stats struct {
	Position     vecmath.Vec3
	Yaw, Pitch   float64
	FPS          float64
	FrameDelta   time.Duration
	BufferWidth  int
	BufferHeight int
	WindowWidth  int
	WindowHeight int
	Scene        string
	Captured     bool
}

// Lines formats the stats one entry per row.
func (s Stats) Lines() []string {
	mouse := "free"
	if s.Captured {
		mouse = "captured"
	}
	return []string{
		fmt.Sprintf("pos %.2f %.2f %.2f", s.Position.X(), s.Position.Y(), s.Position.Z()),
		fmt.Sprintf("yaw %.1f pitch %.1f", s.Yaw, s.Pitch),
		fmt.Sprintf("fps %.0f dt %.2fms", s.FPS, float64(s.FrameDelta.Microseconds())/1000.0),
		fmt.Sprintf("res %dx%d win %dx%d", s.BufferWidth, s.BufferHeight, s.WindowWidth, s.WindowHeight),
		fmt.Sprintf("scene %s mouse %s", s.Scene, mouse),
	}
}

const (
	margin  = 2
	padding = 2
)

// Overlay rasterizes diagnostic text into the presented framebuffer.
type Overlay struct {
	face   font.Face
	lineH  int
	ascent int
	cache  *lru.Cache // line text -> *image.Alpha

	Foreground uint32
}

// NewOverlay creates an overlay caching up to cacheSize rasterized lines.
func NewOverlay(cacheSize int) (*Overlay, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("overlay cache: %w", err)
	}
	face := basicfont.Face7x13
	m := face.Metrics()
	return &Overlay{
		face:       face,
		lineH:      m.Height.Ceil(),
		ascent:     m.Ascent.Ceil(),
		cache:      cache,
		Foreground: 0xFFFFFFFF,
	}, nil
}

// Draw paints a dimmed panel in the top-left corner with one line per stat.
// Anything that does not fit in fb is clipped.
func (o *Overlay) Draw(fb *framebuffer.Framebuffer, s Stats) {
	defer profiling.Track("hud.Draw")()

	lines := s.Lines()
	masks := make([]*image.Alpha, len(lines))
	panelW := 0
	for i, line := range lines {
		masks[i] = o.rasterize(line)
		panelW = max(panelW, masks[i].Rect.Dx())
	}
	panelW += 2 * padding
	panelH := len(lines)*o.lineH + 2*padding

	dim(fb, image.Rect(margin, margin, margin+panelW, margin+panelH))
	for i, m := range masks {
		o.blit(fb, m, margin+padding, margin+padding+i*o.lineH)
	}
}

func (o *Overlay) rasterize(line string) *image.Alpha {
	if v, ok := o.cache.Get(line); ok {
		return v.(*image.Alpha)
	}
	w := font.MeasureString(o.face, line).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, w, o.lineH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: o.face,
		Dot:  fixed.P(0, o.ascent),
	}
	d.DrawString(line)
	o.cache.Add(line, mask)
	return mask
}

func (o *Overlay) blit(fb *framebuffer.Framebuffer, mask *image.Alpha, x0, y0 int) {
	b := mask.Rect
	for y := 0; y < b.Dy(); y++ {
		fy := y0 + y
		if fy < 0 || fy >= fb.Height {
			continue
		}
		row := fb.Row(fy)
		for x := 0; x < b.Dx(); x++ {
			fx := x0 + x
			if fx < 0 || fx >= fb.Width {
				continue
			}
			a := uint32(mask.AlphaAt(x, y).A)
			if a == 0 {
				continue
			}
			row[fx] = blend(row[fx], o.Foreground, a)
		}
	}
}

// dim halves the brightness of r, clipped to fb.
func dim(fb *framebuffer.Framebuffer, r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := fb.Row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 0xFF000000 | (row[x]>>1)&0x007F7F7F
		}
	}
}

// blend mixes src over dst with coverage a in [0,255]; the result is opaque.
func blend(dst, src, a uint32) uint32 {
	inv := 255 - a
	ch := func(shift uint) uint32 {
		d := (dst >> shift) & 0xFF
		s := (src >> shift) & 0xFF
		return ((d*inv + s*a + 127) / 255) << shift
	}
	return 0xFF000000 | ch(16) | ch(8) | ch(0)
}
