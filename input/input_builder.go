package input

// Option is a functional option for configuring a Handler.
type Option func(*Handler)

// WithConstrainPitch controls whether mouse-look clamps the camera pitch to
// [-89, 89] degrees.
//
// Parameters:
//   - constrain: true to clamp pitch (default true)
//
// Returns:
//   - Option: functional option to set the pitch constraint
func WithConstrainPitch(constrain bool) Option {
	return func(h *Handler) {
		h.constrainPitch = constrain
	}
}

// WithMovementKeys rebinds the four direction keys.
//
// Parameters:
//   - forward, backward, left, right: virtual key codes (common.Key* values)
//
// Returns:
//   - Option: functional option to set the movement keys
func WithMovementKeys(forward, backward, left, right uint32) Option {
	return func(h *Handler) {
		h.forwardKey = forward
		h.backwardKey = backward
		h.leftKey = left
		h.rightKey = right
	}
}

// WithCursorCapture controls whether Attach disables the cursor for
// unbounded mouse-look.
//
// Parameters:
//   - capture: true to capture the cursor (default true)
//
// Returns:
//   - Option: functional option to set cursor capture
func WithCursorCapture(capture bool) Option {
	return func(h *Handler) {
		h.captureCursor = capture
	}
}
