package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/flycam-go/camera"
	"github.com/Carmen-Shannon/flycam-go/common"
)

const eps = 1e-5

func vecApprox(a, b mgl32.Vec3) bool {
	return math.Abs(float64(a.X()-b.X())) < eps &&
		math.Abs(float64(a.Y()-b.Y())) < eps &&
		math.Abs(float64(a.Z()-b.Z())) < eps
}

func TestUpdateMovesHeldDirections(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	h.KeyDown(common.KeyW)
	h.Update(1.0)

	if !vecApprox(cam.Position(), mgl32.Vec3{0, 0, -2.5}) {
		t.Fatalf("position = %v, want (0, 0, -2.5)", cam.Position())
	}
}

func TestUpdateDiagonalIsAdditive(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	h.KeyDown(common.KeyW)
	h.KeyDown(common.KeyD)
	h.Update(1.0)

	want := float32(camera.DefaultMovementSpeed) * float32(math.Sqrt2)
	if got := cam.Position().Len(); math.Abs(float64(got-want)) > eps {
		t.Fatalf("diagonal distance = %v, want %v (held directions are independent calls)", got, want)
	}
}

func TestKeyUpStopsMovement(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	h.KeyDown(common.KeyW)
	h.KeyUp(common.KeyW)
	h.Update(1.0)

	if !vecApprox(cam.Position(), mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("position = %v, want origin after release", cam.Position())
	}
}

func TestFirstMouseMoveOnlySeeds(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	yaw, pitch := cam.Yaw(), cam.Pitch()
	h.MouseMove(400, 300)

	if cam.Yaw() != yaw || cam.Pitch() != pitch {
		t.Fatalf("first cursor report changed orientation to (%v, %v)", cam.Yaw(), cam.Pitch())
	}
}

func TestMouseMoveAppliesInvertedYOffset(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	h.MouseMove(400, 300)
	h.MouseMove(410, 320) // +10 right, +20 down on screen

	wantYaw := float32(camera.DefaultYaw) + 10*float32(camera.DefaultMouseSensitivity)
	wantPitch := float32(camera.DefaultPitch) - 20*float32(camera.DefaultMouseSensitivity)
	if got := cam.Yaw(); math.Abs(float64(got-wantYaw)) > eps {
		t.Errorf("yaw = %v, want %v", got, wantYaw)
	}
	if got := cam.Pitch(); math.Abs(float64(got-wantPitch)) > eps {
		t.Errorf("pitch = %v, want %v (screen y grows downward)", got, wantPitch)
	}
}

func TestConstrainPitchDisabled(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam, WithConstrainPitch(false))

	h.MouseMove(0, 0)
	h.MouseMove(0, -2000) // look sharply up

	if cam.Pitch() <= 89 {
		t.Fatalf("pitch = %v, want beyond 89 with constraint disabled", cam.Pitch())
	}
}

func TestScrollAdjustsZoom(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam)

	h.Scroll(10)
	if cam.Zoom() != 35 {
		t.Fatalf("zoom = %v, want 35", cam.Zoom())
	}
	h.Scroll(1000)
	if cam.Zoom() != 1 {
		t.Fatalf("zoom = %v, want 1 (clamped)", cam.Zoom())
	}
}

func TestWithMovementKeysRebinds(t *testing.T) {
	cam := camera.NewCamera()
	h := NewHandler(cam, WithMovementKeys(common.KeyUp, common.KeyDown, common.KeyLeft, common.KeyRight))

	// WASD no longer moves.
	h.KeyDown(common.KeyW)
	h.Update(1.0)
	if !vecApprox(cam.Position(), mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("unbound key moved camera to %v", cam.Position())
	}

	h.KeyDown(common.KeyUp)
	h.Update(1.0)
	if !vecApprox(cam.Position(), mgl32.Vec3{0, 0, -2.5}) {
		t.Fatalf("position = %v, want (0, 0, -2.5)", cam.Position())
	}
}
