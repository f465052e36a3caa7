package hud

import (
	"strings"
	"testing"
	"time"

	"mini-rt/internal/framebuffer"
	"mini-rt/internal/vecmath"
)

func testStats() Stats {
	return Stats{
		Position:     vecmath.V(0, 3, 10),
		Yaw:          -90,
		Pitch:        -20,
		FPS:          118,
		FrameDelta:   8500 * time.Microsecond,
		BufferWidth:  450,
		BufferHeight: 300,
		WindowWidth:  900,
		WindowHeight: 600,
		Scene:        "normals",
	}
}

func TestStatsLines(t *testing.T) {
	lines := testStats().Lines()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"pos 0.00 3.00 10.00", "fps 118", "8.50ms", "res 450x300", "win 900x600", "scene normals", "mouse free"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q in overlay text:\n%s", want, joined)
		}
	}
}

func TestDrawStaysInPanel(t *testing.T) {
	o, err := NewOverlay(16)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	fb, _ := framebuffer.New(450, 300)
	fb.Clear(0xFF808080)

	o.Draw(fb, testStats())

	bright := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			if p>>24 != 0xFF {
				t.Fatalf("pixel (%d,%d) lost opacity: %#08x", x, y, p)
			}
			if p == 0xFFFFFFFF {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Errorf("Expected some text pixels")
	}
	// bottom-right corner is far outside the panel
	if got := fb.At(449, 299); got != 0xFF808080 {
		t.Errorf("Pixel outside the panel changed: %#08x", got)
	}
	// panel background is dimmed
	if got := fb.At(margin, margin); got != 0xFF404040 {
		t.Errorf("Expected dimmed panel corner, got %#08x", got)
	}
}

func TestDrawClipsToSmallBuffer(t *testing.T) {
	o, _ := NewOverlay(4)
	fb, _ := framebuffer.New(3, 2)
	o.Draw(fb, testStats())
}

func TestRasterizeCaches(t *testing.T) {
	o, _ := NewOverlay(2)
	a := o.rasterize("fps 60")
	b := o.rasterize("fps 60")
	if a != b {
		t.Errorf("Expected cached mask to be reused")
	}
	if a.Rect.Dx() != 6*7 || a.Rect.Dy() != 13 {
		t.Errorf("Expected 42x13 mask for 6 glyphs, got %v", a.Rect)
	}
	o.rasterize("one")
	o.rasterize("two")
	if c := o.rasterize("fps 60"); c == a {
		t.Errorf("Expected eviction beyond cache size")
	}
}

func TestBlend(t *testing.T) {
	if got := blend(0xFF000000, 0xFFFFFFFF, 255); got != 0xFFFFFFFF {
		t.Errorf("Full coverage should yield src, got %#08x", got)
	}
	if got := blend(0xFF102030, 0xFFFFFFFF, 0); got != 0xFF102030 {
		t.Errorf("Zero coverage should keep dst, got %#08x", got)
	}
	if got := blend(0xFF000000, 0xFFFFFFFF, 128); got != 0xFF808080 {
		t.Errorf("Half coverage: got %#08x", got)
	}
}
