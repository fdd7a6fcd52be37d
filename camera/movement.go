package camera

// Movement is a discrete direction selector for keyboard-driven translation.
// It abstracts camera movement away from window-system specific input methods.
type Movement int

const (
	// MoveForward translates the camera along its front vector.
	MoveForward Movement = iota
	// MoveBackward translates the camera against its front vector.
	MoveBackward
	// MoveLeft translates the camera against its right vector.
	MoveLeft
	// MoveRight translates the camera along its right vector.
	MoveRight
)

// String returns the direction name for debugging and profiling purposes.
//
// Returns:
//   - string: the direction name
func (m Movement) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}
