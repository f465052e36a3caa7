package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleCapture
	ActionToggleOverlay
	ActionCount // Sentinel value for array sizing
)

// InputManager tracks held actions, per-frame edges and mouse travel.
// glfw callbacks write it; the frame driver reads it once per tick.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool

	// Mouse travel accumulated since the last MouseDelta call
	lastX, lastY float64
	firstMouse   bool
	dx, dy       float64

	captured  bool
	onCapture func(bool)
}

// NewInputManager creates an InputManager with WASD, Escape, Tab and F3 bound.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
		firstMouse:   true,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyTab, ActionToggleCapture)
	im.BindKey(glfw.KeyF3, ActionToggleOverlay)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleCursorPos accumulates cursor travel while the mouse is captured.
// The first sample after capture only establishes the reference point.
func (im *InputManager) HandleCursorPos(xpos, ypos float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if !im.captured {
		return
	}
	if im.firstMouse {
		im.lastX = xpos
		im.lastY = ypos
		im.firstMouse = false
		return
	}

	im.dx += xpos - im.lastX
	im.dy += ypos - im.lastY
	im.lastX = xpos
	im.lastY = ypos
}

// MouseDelta returns the travel since the previous call and resets it.
// Positive dy means the cursor moved down.
func (im *InputManager) MouseDelta() (dx, dy float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	dx, dy = im.dx, im.dy
	im.dx, im.dy = 0, 0
	return dx, dy
}

// Captured reports whether mouse look is active.
func (im *InputManager) Captured() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.captured
}

// SetCaptured toggles mouse look. Pending travel is dropped so the view
// does not jump when capture resumes.
func (im *InputManager) SetCaptured(captured bool) {
	im.mu.Lock()
	im.captured = captured
	im.firstMouse = true
	im.dx, im.dy = 0, 0
	cb := im.onCapture
	im.mu.Unlock()

	if cb != nil {
		cb(captured)
	}
}

// OnCaptureChange registers a hook run after every SetCaptured, used to
// switch the window cursor mode.
func (im *InputManager) OnCaptureChange(fn func(bool)) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.onCapture = fn
}

// Attach installs the glfw key and cursor callbacks on window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			im.releaseAll()
		}
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// releaseAll drops held keys when the window loses focus, since the
// matching release events will never arrive.
func (im *InputManager) releaseAll() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.currentState[i] = false
	}
}
