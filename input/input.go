// Package input translates windowing events into camera operations. The
// Handler tracks held movement keys and the last cursor position, and drives a
// camera.Camera with one ProcessKeyboard call per held direction each frame.
// Attach wires the handler to a GLFW window; hosts with their own event loop
// can instead feed KeyDown/KeyUp/MouseMove/Scroll directly.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Carmen-Shannon/flycam-go/camera"
	"github.com/Carmen-Shannon/flycam-go/common"
)

// Handler converts key, cursor, and scroll events into camera input. Like the
// camera itself it assumes exclusive single-threaded ownership; GLFW delivers
// its callbacks on the event-polling thread, which must be the same thread
// that calls Update.
type Handler struct {
	cam *camera.Camera

	// keys tracks the pressed state of virtual key codes.
	keys map[uint32]bool

	// Direction key bindings, common.Key* values.
	forwardKey  uint32
	backwardKey uint32
	leftKey     uint32
	rightKey    uint32

	constrainPitch bool
	captureCursor  bool

	// firstMouse suppresses the jump from the initial cursor position to the
	// first reported one.
	firstMouse bool
	lastX      float32
	lastY      float32
}

// NewHandler creates an input handler driving the given camera. Defaults:
// WASD movement keys, pitch constraint enabled, cursor capture enabled.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the handler
//
// Returns:
//   - *Handler: the newly created handler
func NewHandler(cam *camera.Camera, options ...Option) *Handler {
	h := &Handler{
		cam:            cam,
		keys:           make(map[uint32]bool),
		forwardKey:     common.KeyW,
		backwardKey:    common.KeyS,
		leftKey:        common.KeyA,
		rightKey:       common.KeyD,
		constrainPitch: true,
		captureCursor:  true,
		firstMouse:     true,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// Attach installs key, cursor-position, and scroll callbacks on the GLFW
// window. When cursor capture is enabled the cursor is disabled for
// unbounded mouse-look.
//
// GLFW reference: https://www.glfw.org/docs/latest/input_guide.html
//
// Parameters:
//   - win: the GLFW window to receive events from
func (h *Handler) Attach(win *glfw.Window) {
	if h.captureCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			h.KeyDown(uint32(key))
		case glfw.Release:
			h.KeyUp(uint32(key))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		h.MouseMove(float32(xpos), float32(ypos))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.Scroll(float32(yoff))
	})
}

// KeyDown marks a virtual key code as held.
//
// Parameters:
//   - keyCode: the virtual key code (common.Key* / GLFW value)
func (h *Handler) KeyDown(keyCode uint32) {
	h.keys[keyCode] = true
}

// KeyUp marks a virtual key code as released.
//
// Parameters:
//   - keyCode: the virtual key code (common.Key* / GLFW value)
func (h *Handler) KeyUp(keyCode uint32) {
	h.keys[keyCode] = false
}

// MouseMove applies an absolute cursor position. The first report only seeds
// the tracked position so the camera does not jump. Screen y grows downward,
// so the vertical offset is inverted before it reaches the camera.
//
// Parameters:
//   - x, y: cursor position in screen coordinates
func (h *Handler) MouseMove(x, y float32) {
	if h.firstMouse {
		h.lastX = x
		h.lastY = y
		h.firstMouse = false
		return
	}

	xoffset := x - h.lastX
	yoffset := h.lastY - y
	h.lastX = x
	h.lastY = y

	h.cam.ProcessMouseMovement(xoffset, yoffset, h.constrainPitch)
}

// Scroll applies a scroll-wheel delta to the camera zoom.
//
// Parameters:
//   - delta: scroll delta (positive = zoom in)
func (h *Handler) Scroll(delta float32) {
	h.cam.ProcessMouseScroll(delta)
}

// Update issues one independent ProcessKeyboard call per held direction key.
// Simultaneous directions stay additive per call, so diagonal movement is
// faster than a single axis. Call once per frame with the elapsed time.
//
// Parameters:
//   - deltaTime: elapsed time since the last frame in seconds
func (h *Handler) Update(deltaTime float32) {
	if h.keys[h.forwardKey] {
		h.cam.ProcessKeyboard(camera.MoveForward, deltaTime)
	}
	if h.keys[h.backwardKey] {
		h.cam.ProcessKeyboard(camera.MoveBackward, deltaTime)
	}
	if h.keys[h.leftKey] {
		h.cam.ProcessKeyboard(camera.MoveLeft, deltaTime)
	}
	if h.keys[h.rightKey] {
		h.cam.ProcessKeyboard(camera.MoveRight, deltaTime)
	}
}
