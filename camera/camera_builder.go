package camera

// Option is a functional option for configuring a Camera at construction.
type Option func(*Camera)

// WithPosition sets the initial world-space eye position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - Option: functional option to set the position
func WithPosition(x, y, z float32) Option {
	return func(c *Camera) {
		c.position[0] = x
		c.position[1] = y
		c.position[2] = z
	}
}

// WithWorldUp sets the fixed world-up reference vector used for roll-free
// basis construction.
//
// Parameters:
//   - x, y, z: world-up vector components (typically 0, 1, 0)
//
// Returns:
//   - Option: functional option to set the world-up vector
func WithWorldUp(x, y, z float32) Option {
	return func(c *Camera) {
		c.worldUp[0] = x
		c.worldUp[1] = y
		c.worldUp[2] = z
	}
}

// WithYaw sets the initial rotation about the world up axis.
//
// Parameters:
//   - yaw: angle in degrees (-90 = looking down -Z)
//
// Returns:
//   - Option: functional option to set the yaw
func WithYaw(yaw float32) Option {
	return func(c *Camera) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial tilt above/below the horizon.
//
// Parameters:
//   - pitch: angle in degrees (0 = horizontal)
//
// Returns:
//   - Option: functional option to set the pitch
func WithPitch(pitch float32) Option {
	return func(c *Camera) {
		c.pitch = pitch
	}
}

// WithMovementSpeed sets the keyboard translation speed.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - Option: functional option to set the movement speed
func WithMovementSpeed(speed float32) Option {
	return func(c *Camera) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to raw mouse offsets.
//
// Parameters:
//   - sensitivity: multiplier for mouse movement
//
// Returns:
//   - Option: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) Option {
	return func(c *Camera) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial zoom (vertical field of view). The value is
// clamped to [1, 45] degrees once all options have been applied.
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - Option: functional option to set the zoom
func WithZoom(zoom float32) Option {
	return func(c *Camera) {
		c.zoom = zoom
	}
}
