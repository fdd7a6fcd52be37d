// Package camera implements a first-person free-fly camera for interactive 3D
// rendering. The camera owns a world-space position, a yaw/pitch orientation in
// degrees, and a derived orthonormal front/right/up basis, and converts abstract
// movement, mouse-look, and scroll-zoom input into a view transform.
//
// A Camera instance assumes exclusive single-threaded ownership, matching the
// typical per-frame input -> update -> render loop of a single rendering
// context. It performs no internal synchronization; driving the mutating
// methods from multiple goroutines on the same instance is undefined.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/flycam-go/common"
)

// Default camera values, applied by NewCamera before options run.
const (
	DefaultYaw              = -90.0 // looking down -Z
	DefaultPitch            = 0.0
	DefaultMovementSpeed    = 2.5
	DefaultMouseSensitivity = 0.1
	DefaultZoom             = 45.0
)

// Zoom doubles as the vertical field of view in degrees and is kept inside
// [minZoom, maxZoom] at all times after construction.
const (
	minZoom = 1.0
	maxZoom = 45.0
)

// pitchLimit bounds the pitch angle when the constraint is enabled, preventing
// basis degeneracy (gimbal flip) at +/-90 degrees.
const pitchLimit = 89.0

// Camera is a free-fly camera driven by keyboard movement, mouse look, and
// scroll zoom. The front/right/up basis is derived from the yaw/pitch
// orientation and the fixed world-up reference; callers never set it directly.
type Camera struct {
	// position is the world-space location of the eye.
	position mgl32.Vec3

	// front, up, right form the orthonormal basis derived from yaw/pitch.
	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3

	// worldUp is the fixed reference used for roll-free basis construction.
	worldUp mgl32.Vec3

	// yaw rotates about the world up axis, pitch tilts above/below the
	// horizon. Both are in degrees.
	yaw   float32
	pitch float32

	// Tunable scalars.
	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// NewCamera creates a new free-fly camera at the origin looking down -Z with
// the documented default speed, sensitivity, and zoom, then applies the
// provided options and derives the orthonormal basis from the resulting
// orientation. All inputs are unconstrained floating values; there are no
// failure modes.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - *Camera: the newly created camera
func NewCamera(options ...Option) *Camera {
	c := &Camera{
		position:         mgl32.Vec3{0, 0, 0},
		front:            mgl32.Vec3{0, 0, -1},
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		zoom:             DefaultZoom,
	}
	for _, option := range options {
		option(c)
	}
	c.zoom = clampZoom(c.zoom)
	c.updateVectors()
	return c
}

// Position returns the camera's world-space position.
//
// Returns:
//   - mgl32.Vec3: the eye position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera's world-space position directly. Translation
// does not affect the orientation basis, so no recomputation occurs.
//
// Parameters:
//   - x, y, z: world-space coordinates
func (c *Camera) SetPosition(x, y, z float32) {
	c.position = mgl32.Vec3{x, y, z}
}

// Front returns the unit vector the camera is looking along.
//
// Returns:
//   - mgl32.Vec3: the front vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Up returns the camera's unit up vector.
//
// Returns:
//   - mgl32.Vec3: the up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Right returns the camera's unit right vector.
//
// Returns:
//   - mgl32.Vec3: the right vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// WorldUp returns the fixed world-up reference vector.
//
// Returns:
//   - mgl32.Vec3: the world-up vector
func (c *Camera) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

// Yaw returns the rotation angle about the world up axis in degrees. Yaw is
// unbounded and may wrap past +/-360 arbitrarily.
//
// Returns:
//   - float32: yaw in degrees
func (c *Camera) Yaw() float32 {
	return c.yaw
}

// Pitch returns the tilt angle above/below the horizon in degrees.
//
// Returns:
//   - float32: pitch in degrees
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// MovementSpeed returns the keyboard translation speed in units per second.
//
// Returns:
//   - float32: the movement speed
func (c *Camera) MovementSpeed() float32 {
	return c.movementSpeed
}

// SetMovementSpeed sets the keyboard translation speed in units per second.
//
// Parameters:
//   - speed: the movement speed
func (c *Camera) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

// MouseSensitivity returns the multiplier applied to raw mouse offsets.
//
// Returns:
//   - float32: the mouse sensitivity
func (c *Camera) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

// SetMouseSensitivity sets the multiplier applied to raw mouse offsets.
//
// Parameters:
//   - sensitivity: the mouse sensitivity
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// Zoom returns the current zoom, which doubles as the vertical field of view
// in degrees. Consumers use it to build a projection matrix, either externally
// or via PerspectiveMatrix.
//
// Returns:
//   - float32: zoom/fov in degrees, within [1, 45]
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// SetZoom sets the zoom directly, clamped to [1, 45].
//
// Parameters:
//   - zoom: zoom/fov in degrees
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = clampZoom(zoom)
}

// ViewMatrix returns the right-handed look-at transform built from the
// camera's position, look target (position + front), and up vector. The
// matrix is not cached; callers recompute it whenever position or orientation
// may have changed.
//
// Returns:
//   - mgl32.Mat4: the world-to-eye view matrix (column-major)
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// PerspectiveMatrix builds a perspective projection matrix from the camera's
// zoom (as the vertical field of view) using the WebGPU [0, 1] clip-space
// convention.
//
// Parameters:
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func (c *Camera) PerspectiveMatrix(aspect, near, far float32) mgl32.Mat4 {
	var m mgl32.Mat4
	common.Perspective(m[:], mgl32.DegToRad(c.zoom), aspect, near, far)
	return m
}

// ProcessKeyboard translates the camera along its front (forward/backward) or
// right (left/right) vector by movementSpeed * deltaTime. Each direction is an
// independent call; simultaneous directions in one frame are additive and not
// normalized, so forward+right movement is faster than either alone.
//
// Parameters:
//   - direction: the movement direction
//   - deltaTime: elapsed time since the last call in seconds (>= 0)
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case MoveForward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case MoveBackward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case MoveLeft:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case MoveRight:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement applies raw pointer-device deltas for the current
// frame. Both offsets are scaled by the mouse sensitivity, then added to yaw
// and pitch respectively. When constrainPitch is true the pitch is clamped to
// [-89, 89] degrees to avoid basis degeneracy near the poles; yaw is never
// normalized. The orthonormal basis is recomputed afterward.
//
// Parameters:
//   - xoffset: horizontal pointer delta
//   - yoffset: vertical pointer delta
//   - constrainPitch: clamp pitch to [-89, 89] degrees
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.mouseSensitivity
	yoffset *= c.mouseSensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	if constrainPitch {
		if c.pitch > pitchLimit {
			c.pitch = pitchLimit
		}
		if c.pitch < -pitchLimit {
			c.pitch = -pitchLimit
		}
	}

	c.updateVectors()
}

// ProcessMouseScroll applies a scroll-wheel delta to the zoom, clamped to
// [1, 45] degrees. The sign convention is the caller's responsibility;
// positive deltas zoom in. Orientation and position are unaffected.
//
// Parameters:
//   - yoffset: scroll-wheel delta for the current event
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.zoom = clampZoom(c.zoom - yoffset)
}

// updateVectors recomputes the front/right/up basis from the current yaw and
// pitch. Right and up are re-normalized because the cross products shrink as
// the camera looks toward the poles, which would otherwise slow movement.
func (c *Camera) updateVectors() {
	c.front = eulerFront(c.yaw, c.pitch).Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// eulerFront converts a yaw/pitch pair in degrees to a direction vector, with
// yaw measured from the -Z axis and pitch from the XZ plane.
//
// Parameters:
//   - yaw: rotation about the world up axis in degrees
//   - pitch: tilt above/below the horizon in degrees
//
// Returns:
//   - mgl32.Vec3: the (un-normalized) front direction
func eulerFront(yaw, pitch float32) mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(yaw))
	pitchRad := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// clampZoom keeps the zoom/fov within its documented [1, 45] degree range.
//
// Parameters:
//   - zoom: the candidate zoom value
//
// Returns:
//   - float32: the clamped zoom
func clampZoom(zoom float32) float32 {
	if zoom < minZoom {
		return minZoom
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}
