package libcam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libutil"
)

// Direction selects a movement axis for Camera.Move.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	DefaultPitch = 0.0
	DefaultYaw   = -90.0
	DefaultFov   = 45.0
	MinFov       = 1.0
	MaxFov       = 45.0

	maxPitch        = 89.0
	minPitch        = -89.0
	movementSpeed   = 5.0
	lookSensitivity = 0.1
)

// Camera is a flying free-look viewpoint. Pitch and yaw are in degrees; the
// front/right/up basis is derived from them and worldUp and is never set
// directly.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3
	pitch    float32
	yaw      float32
	fov      float32

	initialPosition mgl32.Vec3
	initialPitch    float32
	initialYaw      float32
}

func NewCamera(position, worldUp mgl32.Vec3, pitch, yaw float32) *Camera {
	cam := &Camera{
		position:        position,
		initialPosition: position,
		initialPitch:    pitch,
		initialYaw:      yaw,
		worldUp:         worldUp,
		pitch:           pitch,
		yaw:             yaw,
		fov:             DefaultFov,
	}
	cam.updateVectors()
	return cam
}

// NewDefaultCamera creates a camera at position looking down the negative z
// axis with +Y up.
func NewDefaultCamera(position mgl32.Vec3) *Camera {
	return NewCamera(position, mgl32.Vec3{0, 1, 0}, DefaultPitch, DefaultYaw)
}

// Move translates the camera along its basis, scaled by a fixed speed and
// the frame delta time.
func (cam *Camera) Move(direction Direction, deltaTime float32) {
	velocity := float32(movementSpeed) * deltaTime
	switch direction {
	case Forward:
		cam.position = cam.position.Add(cam.front.Mul(velocity))
	case Backward:
		cam.position = cam.position.Sub(cam.front.Mul(velocity))
	case Left:
		cam.position = cam.position.Sub(cam.right.Mul(velocity))
	case Right:
		cam.position = cam.position.Add(cam.right.Mul(velocity))
	}
}

// Look accumulates a sensitivity-scaled cursor offset into yaw and pitch.
// When constrainPitch is set the pitch stays inside (-90, 90) so the basis
// never degenerates against worldUp.
func (cam *Camera) Look(offsetX, offsetY float32, constrainPitch bool) {
	cam.yaw += offsetX * lookSensitivity
	cam.pitch += offsetY * lookSensitivity
	if constrainPitch {
		cam.pitch = libutil.Clamp(cam.pitch, minPitch, maxPitch)
	}
	cam.updateVectors()
}

// AdjustFov subtracts offset from the field of view, clamped to
// [MinFov, MaxFov].
func (cam *Camera) AdjustFov(offset float32) {
	cam.fov = libutil.Clamp(cam.fov-offset, MinFov, MaxFov)
}

func (cam *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.position, cam.position.Add(cam.front), cam.up)
}

func (cam *Camera) Fov() float32 {
	return cam.fov
}

func (cam *Camera) Position() mgl32.Vec3 {
	return cam.position
}

func (cam *Camera) Front() mgl32.Vec3 {
	return cam.front
}

// Reset restores position, pitch, yaw and field of view to their
// construction-time values.
func (cam *Camera) Reset() {
	cam.position = cam.initialPosition
	cam.pitch = cam.initialPitch
	cam.yaw = cam.initialYaw
	cam.fov = DefaultFov
	cam.updateVectors()
}

func (cam *Camera) updateVectors() {
	pitch := cam.pitch * libutil.Deg2Rad
	yaw := cam.yaw * libutil.Deg2Rad
	front := mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Sin(yaw),
	}
	cam.front = front.Normalize()
	cam.right = cam.front.Cross(cam.worldUp).Normalize()
	cam.up = cam.right.Cross(cam.front).Normalize()
}
