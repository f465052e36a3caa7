package main

import (
	"log"
	"runtime"
	"sync/atomic"

	"mini-rt/internal/app"
	"mini-rt/internal/config"
	"mini-rt/internal/graphics"
	"mini-rt/internal/hud"
	"mini-rt/internal/input"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// closer.Close exits the process, so it must be the last deferred call to run.
	defer closer.Close()

	settings, err := config.Load(".env")
	if err != nil {
		closer.Fatalln("mini-rt: config:", err)
	}

	var presented atomic.Int64
	closer.Bind(func() {
		log.Printf("mini-rt: exiting after %d frames", presented.Load())
	})

	window, err := graphics.CreateWindow(graphics.WindowConfig{
		Width:  settings.WindowWidth,
		Height: settings.WindowHeight,
		Title:  settings.Title,
		VSync:  settings.VSync,
	})
	if err != nil {
		closer.Fatalln("mini-rt:", err)
	}
	// GL and glfw teardown must stay on the main thread, so it is deferred here
	// rather than bound to closer.
	defer window.Destroy()

	bw, bh := settings.BufferSize()
	presenter, err := graphics.NewPresenter(window, bw, bh)
	if err != nil {
		closer.Fatalln("mini-rt:", err)
	}
	defer presenter.Delete()

	overlay, err := hud.NewOverlay(64)
	if err != nil {
		closer.Fatalln("mini-rt: overlay:", err)
	}

	im := input.NewInputManager()
	im.Attach(window.GLFW())
	im.OnCaptureChange(window.SetCursorCaptured)
	im.SetCaptured(true)

	a, err := app.New(app.Options{
		Settings:  settings,
		Events:    window,
		Input:     im,
		Presenter: presenter,
		Overlay:   overlay,
	})
	if err != nil {
		closer.Fatalln("mini-rt:", err)
	}

	log.Printf("mini-rt: scene %q, window %dx%d, framebuffer %dx%d, %d workers",
		settings.Scene, settings.WindowWidth, settings.WindowHeight, bw, bh, settings.Workers)

	presented.Store(int64(a.Run()))
}
