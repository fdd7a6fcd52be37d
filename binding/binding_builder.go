package binding

import "github.com/cogentcore/webgpu/wgpu"

// Option is a functional option for configuring a CameraBinding.
type Option func(*CameraBinding)

// WithLabel sets the debug label used for the GPU resources.
//
// Parameters:
//   - label: debug label prefix
//
// Returns:
//   - Option: functional option to set the label
func WithLabel(label string) Option {
	return func(b *CameraBinding) {
		b.label = label
	}
}

// WithBinding sets the binding index within the bind group.
//
// Parameters:
//   - binding: the binding index (default 0)
//
// Returns:
//   - Option: functional option to set the binding index
func WithBinding(binding uint32) Option {
	return func(b *CameraBinding) {
		b.binding = binding
	}
}

// WithVisibility sets the shader stages that can access the camera uniform.
//
// Parameters:
//   - visibility: shader stage flags (default vertex | fragment)
//
// Returns:
//   - Option: functional option to set the visibility
func WithVisibility(visibility wgpu.ShaderStage) Option {
	return func(b *CameraBinding) {
		b.visibility = visibility
	}
}
