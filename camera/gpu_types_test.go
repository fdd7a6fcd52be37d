package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestGPUCameraUniformSize(t *testing.T) {
	var u GPUCameraUniform
	if u.Size() != 80 {
		t.Fatalf("uniform size = %d, want 80 (must match WGSL CameraUniform)", u.Size())
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{
		CameraPosition: [3]float32{1, 2, 3},
	}
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(i) + 0.5
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("marshaled length = %d, want 80", len(buf))
	}

	for i := range u.ViewProj {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != u.ViewProj[i] {
			t.Errorf("ViewProj[%d] = %v, want %v", i, got, u.ViewProj[i])
		}
	}
	for i := range u.CameraPosition {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if got != u.CameraPosition[i] {
			t.Errorf("CameraPosition[%d] = %v, want %v", i, got, u.CameraPosition[i])
		}
	}
	if pad := binary.LittleEndian.Uint32(buf[76:]); pad != 0 {
		t.Errorf("padding = %#x, want 0", pad)
	}
}

func TestGPUCameraUniformSourceEmbedded(t *testing.T) {
	if !strings.Contains(GPUCameraUniformSource, "CameraUniform") {
		t.Fatalf("embedded WGSL source missing CameraUniform struct")
	}
	if !strings.Contains(GPUCameraUniformSource, "mat4x4<f32>") {
		t.Fatalf("embedded WGSL source missing view_proj matrix field")
	}
}
