// Package binding wraps the WebGPU resources behind the camera uniform: a
// uniform buffer, its bind group layout, and the bind group itself. A host
// renderer creates one CameraBinding per camera, uploads fresh matrices each
// frame with Upload, and binds the group when drawing.
package binding

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/flycam-go/camera"
	"github.com/Carmen-Shannon/flycam-go/common"
)

// CameraBinding holds the GPU resources for a single camera uniform buffer.
// The zero value is not usable; create instances with NewCameraBinding. All
// fields are released together via Release.
type CameraBinding struct {
	label      string
	binding    uint32
	visibility wgpu.ShaderStage

	buffer          *wgpu.Buffer
	bindGroupLayout *wgpu.BindGroupLayout
	bindGroup       *wgpu.BindGroup
}

// NewCameraBinding creates the uniform buffer, bind group layout, and bind
// group for a camera on the given device. The buffer is sized for
// camera.GPUCameraUniform and created with uniform/copy-dst usage. Defaults:
// binding index 0, vertex+fragment visibility.
//
// Parameters:
//   - device: the WebGPU device used to allocate resources
//   - options: functional options to configure the binding
//
// Returns:
//   - *CameraBinding: the initialized binding
//   - error: error if any GPU resource creation fails
func NewCameraBinding(device *wgpu.Device, options ...Option) (*CameraBinding, error) {
	b := &CameraBinding{
		label:      "camera",
		binding:    0,
		visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
	}
	for _, option := range options {
		option(b)
	}

	var uniform camera.GPUCameraUniform
	size := uint64(uniform.Size())

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: b.label + " Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camera uniform buffer: %v", err)
	}
	b.buffer = buf

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: b.label + " Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    b.binding,
				Visibility: b.visibility,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: size,
				},
			},
		},
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to create camera bind group layout: %v", err)
	}
	b.bindGroupLayout = layout

	group, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  b.label + " Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: b.binding,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to create camera bind group: %v", err)
	}
	b.bindGroup = group

	return b, nil
}

// Label returns the debug label for this binding.
//
// Returns:
//   - string: the debug label
func (b *CameraBinding) Label() string {
	return b.label
}

// Buffer returns the camera uniform buffer.
//
// Returns:
//   - *wgpu.Buffer: the uniform buffer
func (b *CameraBinding) Buffer() *wgpu.Buffer {
	return b.buffer
}

// BindGroupLayout returns the bind group layout, for use when building
// pipeline layouts.
//
// Returns:
//   - *wgpu.BindGroupLayout: the bind group layout
func (b *CameraBinding) BindGroupLayout() *wgpu.BindGroupLayout {
	return b.bindGroupLayout
}

// BindGroup returns the bind group to set on render passes.
//
// Returns:
//   - *wgpu.BindGroup: the bind group
func (b *CameraBinding) BindGroup() *wgpu.BindGroup {
	return b.bindGroup
}

// Upload recomputes the combined view-projection matrix from the camera's
// current state and writes the uniform data to the GPU queue. Call once per
// frame after input processing.
//
// Parameters:
//   - queue: the WebGPU queue to write through
//   - cam: the camera providing view/projection state
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
func (b *CameraBinding) Upload(queue *wgpu.Queue, cam *camera.Camera, aspect, near, far float32) {
	view := cam.ViewMatrix()
	proj := cam.PerspectiveMatrix(aspect, near, far)

	var uniform camera.GPUCameraUniform
	common.Mul4(uniform.ViewProj[:], proj[:], view[:])
	pos := cam.Position()
	uniform.CameraPosition = [3]float32{pos.X(), pos.Y(), pos.Z()}

	queue.WriteBuffer(b.buffer, 0, uniform.Marshal())
}

// Release releases the GPU resources held by this binding. Safe to call on a
// partially initialized binding.
func (b *CameraBinding) Release() {
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}
