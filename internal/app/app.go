package app

import (
	"fmt"
	"log"
	"time"

	"mini-rt/internal/camera"
	"mini-rt/internal/config"
	"mini-rt/internal/framebuffer"
	"mini-rt/internal/hud"
	"mini-rt/internal/input"
	"mini-rt/internal/profiling"
	"mini-rt/internal/render"
	"mini-rt/internal/scene"
)

type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// EventSource pumps window events and reports a close request.
type EventSource interface {
	PollEvents() (quit bool)
}

// Input is the per-frame view of keyboard and mouse state.
type Input interface {
	IsActive(input.Action) bool
	JustPressed(input.Action) bool
	MouseDelta() (dx, dy float64)
	Captured() bool
	SetCaptured(bool)
	PostUpdate()
}

// Presenter displays a finished frame. It may read fb until it returns.
type Presenter interface {
	Present(fb *framebuffer.Framebuffer)
}

// Overlay draws diagnostics over a finished frame.
type Overlay interface {
	Draw(fb *framebuffer.Framebuffer, s hud.Stats)
}

// Options wires an App to its collaborators. Overlay and Now are optional.
type Options struct {
	Settings  config.Settings
	Events    EventSource
	Input     Input
	Presenter Presenter
	Overlay   Overlay
	Now       func() time.Time
}

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App owns all per-application state: camera, scene, buffers and the
// collaborators. Run drives it until the window closes or Escape is pressed.
type App struct {
	settings  config.Settings
	events    EventSource
	input     Input
	presenter Presenter
	overlay   Overlay
	now       func() time.Time

	camera    *camera.Camera
	scene     *scene.Scene
	sceneName string
	renderer  *render.Renderer
	buffers   *framebuffer.DoubleBuffer
	limiter   *FPSLimiter

	state     State
	overlayOn bool
	start     time.Time
	lastTime  time.Time
	frames    int
	fpsFrames int
	fpsWindow time.Time
	fps       float64
	lastDelta time.Duration
}

// New builds the application from settings. Failures here are fatal
// initialization errors.
func New(opts Options) (*App, error) {
	if opts.Events == nil || opts.Input == nil || opts.Presenter == nil {
		return nil, fmt.Errorf("app: events, input and presenter are required")
	}
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	preset, err := scene.LoadPreset(opts.Settings.Scene)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	bw, bh := opts.Settings.BufferSize()
	buffers, err := framebuffer.NewDoubleBuffer(bw, bh)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	cam := camera.New()
	cam.FOV = opts.Settings.FOV
	cam.SetPose(preset.Position, preset.Yaw, preset.Pitch)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	t0 := now()

	return &App{
		settings:  opts.Settings,
		events:    opts.Events,
		input:     opts.Input,
		presenter: opts.Presenter,
		overlay:   opts.Overlay,
		now:       now,
		camera:    cam,
		scene:     preset.Scene,
		sceneName: preset.Name,
		renderer:  render.New(opts.Settings.Workers),
		buffers:   buffers,
		limiter:   NewFPSLimiter(opts.Settings.FPSLimit),
		state:     StateRunning,
		overlayOn: opts.Settings.Overlay,
		start:     t0,
		lastTime:  t0,
		fpsWindow: t0,
	}, nil
}

// Run ticks until the app stops and returns the number of presented frames.
func (a *App) Run() int {
	for a.Tick() == StateRunning {
	}
	return a.frames
}

// Tick runs one iteration: poll, camera update, render, present.
func (a *App) Tick() State {
	if a.state != StateRunning {
		return a.state
	}

	profiling.ResetFrame()
	tickStart := time.Now()
	now := a.now()
	a.lastDelta = now.Sub(a.lastTime)
	a.lastTime = now

	// 1. events; input state is current after this
	if a.events.PollEvents() || a.input.JustPressed(input.ActionQuit) {
		a.state = StateStopped
		return a.state
	}

	// 2. camera
	func() { defer profiling.Track("frame.Camera")(); a.updateCamera() }()

	// 3. full-buffer ray cast; Render returns only after every worker is done
	a.renderer.Render(a.camera, a.scene, a.animationPhase(now), a.buffers.Back())
	frame := a.buffers.Swap()

	// 4. hand off
	if a.overlayOn && a.overlay != nil {
		a.overlay.Draw(frame, a.stats())
	}
	a.presenter.Present(frame)

	a.input.PostUpdate()
	a.countFrame(now)

	if processing := time.Since(tickStart); processing > slowFrame {
		log.Printf("mini-rt: slow frame %v. Top spans: %s", processing, profiling.TopN(4))
	}

	a.limiter.Wait()
	return a.state
}

func (a *App) updateCamera() {
	if a.input.JustPressed(input.ActionToggleCapture) {
		a.input.SetCaptured(!a.input.Captured())
	}
	if a.input.JustPressed(input.ActionToggleOverlay) {
		a.overlayOn = !a.overlayOn
	}

	dx, dy := a.input.MouseDelta()
	if a.input.Captured() && (dx != 0 || dy != 0) {
		// screen y grows downward, pitch grows upward
		a.camera.Rotate(dx*a.settings.Sensitivity, -dy*a.settings.Sensitivity)
	}

	speed := a.settings.MoveSpeed
	if a.input.IsActive(input.ActionMoveForward) {
		a.camera.Move(a.camera.Front(), speed)
	}
	if a.input.IsActive(input.ActionMoveBackward) {
		a.camera.Move(a.camera.Front(), -speed)
	}
	if a.input.IsActive(input.ActionMoveLeft) {
		a.camera.Move(a.camera.Right(), -speed)
	}
	if a.input.IsActive(input.ActionMoveRight) {
		a.camera.Move(a.camera.Right(), speed)
	}
}

// animationPhase is the hue offset in radians: elapsed real milliseconds
// since startup times the configured rate.
func (a *App) animationPhase(now time.Time) float64 {
	elapsedMs := float64(now.Sub(a.start).Microseconds()) / 1000.0
	return elapsedMs * a.settings.HueRate
}

func (a *App) countFrame(now time.Time) {
	a.frames++
	a.fpsFrames++
	if elapsed := now.Sub(a.fpsWindow); elapsed >= time.Second {
		a.fps = float64(a.fpsFrames) / elapsed.Seconds()
		fmt.Println("FPS: ", a.fpsFrames)
		a.fpsFrames = 0
		a.fpsWindow = now
	}
}

func (a *App) stats() hud.Stats {
	bw, bh := a.buffers.Size()
	return hud.Stats{
		Position:     a.camera.Position,
		Yaw:          a.camera.Yaw,
		Pitch:        a.camera.Pitch,
		FPS:          a.fps,
		FrameDelta:   a.lastDelta,
		BufferWidth:  bw,
		BufferHeight: bh,
		WindowWidth:  a.settings.WindowWidth,
		WindowHeight: a.settings.WindowHeight,
		Scene:        a.sceneName,
		Captured:     a.input.Captured(),
	}
}

func (a *App) State() State { return a.state }

// Frames is the number of frames presented so far.
func (a *App) Frames() int { return a.frames }

// Camera exposes the camera for inspection; mutate it only through Rotate/Move/SetPose.
func (a *App) Camera() *camera.Camera { return a.camera }

func (a *App) OverlayEnabled() bool { return a.overlayOn }
