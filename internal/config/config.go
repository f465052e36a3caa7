package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the startup constants. Every launch starts from Default();
// a .env file or MINIRT_* variables may override individual values.
type Settings struct {
	WindowWidth  int
	WindowHeight int
	Title        string
	VSync        bool

	// RenderScale divides the window size to get the framebuffer size.
	RenderScale int
	FOV         float64
	Workers     int
	FPSLimit    int // 0 disables the limiter

	Sensitivity float64 // degrees per pixel of mouse travel
	MoveSpeed   float64 // world units per frame

	// HueRate converts elapsed milliseconds into radians of hue rotation.
	HueRate float64

	Scene   string
	Overlay bool
}

// Default returns the built-in startup configuration.
func Default() Settings {
	return Settings{
		WindowWidth:  900,
		WindowHeight: 600,
		Title:        "mini-rt",
		RenderScale:  2,
		FOV:          60,
		Workers:      runtime.NumCPU(),
		FPSLimit:     120,
		Sensitivity:  0.1,
		MoveSpeed:    0.05,
		HueRate:      0.002,
		Scene:        "normals",
		Overlay:      true,
	}
}

// Load starts from Default, loads envFile into the process environment if it
// exists (variables already set win), then applies MINIRT_* overrides.
func Load(envFile string) (Settings, error) {
	s := Default()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, nil
}

// ApplyEnv overrides fields from lookup. Numeric values are clamped through the setters.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		set func(int)
	}{
		{"MINIRT_WIDTH", func(v int) { s.WindowWidth = v }},
		{"MINIRT_HEIGHT", func(v int) { s.WindowHeight = v }},
		{"MINIRT_RENDER_SCALE", s.SetRenderScale},
		{"MINIRT_WORKERS", func(v int) { s.Workers = v }},
		{"MINIRT_FPS_LIMIT", s.SetFPSLimit},
	}
	for _, e := range ints {
		raw, ok := lookup(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		e.set(v)
	}

	floats := []struct {
		key string
		set func(float64)
	}{
		{"MINIRT_FOV", s.SetFOV},
		{"MINIRT_SENSITIVITY", func(v float64) { s.Sensitivity = v }},
		{"MINIRT_MOVE_SPEED", func(v float64) { s.MoveSpeed = v }},
		{"MINIRT_HUE_RATE", func(v float64) { s.HueRate = v }},
	}
	for _, e := range floats {
		raw, ok := lookup(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		e.set(v)
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"MINIRT_OVERLAY", &s.Overlay},
		{"MINIRT_VSYNC", &s.VSync},
	}
	for _, e := range bools {
		raw, ok := lookup(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = v
	}

	if raw, ok := lookup("MINIRT_SCENE"); ok && raw != "" {
		s.Scene = raw
	}
	return s.Validate()
}

// SetRenderScale clamps the scale to [1, 8].
func (s *Settings) SetRenderScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale > 8 {
		scale = 8
	}
	s.RenderScale = scale
}

// SetFPSLimit clamps negative limits to 0 (unlimited).
func (s *Settings) SetFPSLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.FPSLimit = limit
}

// SetFOV clamps the vertical field of view to [10, 150] degrees.
func (s *Settings) SetFOV(fov float64) {
	if fov < 10 {
		fov = 10
	}
	if fov > 150 {
		fov = 150
	}
	s.FOV = fov
}

// Validate rejects configurations no frame could be rendered with.
func (s *Settings) Validate() error {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if w, h := s.BufferSize(); w < 2 || h < 2 {
		return fmt.Errorf("framebuffer %dx%d too small: lower MINIRT_RENDER_SCALE", w, h)
	}
	return nil
}

// BufferSize returns the framebuffer dimensions for the current window and scale.
func (s Settings) BufferSize() (int, int) {
	scale := max(s.RenderScale, 1)
	return s.WindowWidth / scale, s.WindowHeight / scale
}
