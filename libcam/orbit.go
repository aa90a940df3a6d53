package libcam

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libutil"
)

const translationSpeed = 7.0

// OrbitCamera orbits a fixed target. It owns an Arcball for rotation and
// composes its accumulated rotation with a look-at transform, so drags spin
// the view around the target while dollying preserves the orbit distance.
type OrbitCamera struct {
	ball        *Arcball
	position    mgl32.Vec3
	target      mgl32.Vec3
	worldUp     mgl32.Vec3
	front       mgl32.Vec3
	right       mgl32.Vec3
	up          mgl32.Vec3
	fov         float32
	translating bool
}

func NewOrbitCamera(position, target, worldUp mgl32.Vec3) *OrbitCamera {
	cam := &OrbitCamera{
		ball:     NewArcball(DefaultRadius, false),
		position: position,
		target:   target,
		worldUp:  worldUp,
		fov:      DefaultFov,
	}
	cam.updateVectors()
	return cam
}

// NewDefaultOrbitCamera creates an orbit camera at position looking at the
// origin with +Y up.
func NewDefaultOrbitCamera(position mgl32.Vec3) *OrbitCamera {
	return NewOrbitCamera(position, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Rotation gestures delegate to the owned arcball.

func (cam *OrbitCamera) BeginRotation(pos mgl32.Vec2) { cam.ball.BeginRotation(pos) }
func (cam *OrbitCamera) Rotate(pos mgl32.Vec2)        { cam.ball.Rotate(pos) }
func (cam *OrbitCamera) EndRotation()                 { cam.ball.EndRotation() }
func (cam *OrbitCamera) IsRotating() bool             { return cam.ball.IsRotating() }

func (cam *OrbitCamera) BeginTranslation() {
	cam.translating = true
}

// Translate dollies the camera along its view axis. Positive offsets move
// the camera toward the target.
func (cam *OrbitCamera) Translate(offset float32) {
	velocity := -offset * translationSpeed
	cam.position = cam.position.Add(cam.front.Mul(velocity))
}

func (cam *OrbitCamera) EndTranslation() {
	cam.translating = false
}

func (cam *OrbitCamera) IsTranslating() bool {
	return cam.translating
}

// AdjustFov subtracts offset from the field of view, clamped to
// [MinFov, MaxFov].
func (cam *OrbitCamera) AdjustFov(offset float32) {
	cam.fov = libutil.Clamp(cam.fov-offset, MinFov, MaxFov)
}

// ViewMatrix applies the arcball rotation in view space after the look-at
// transform, producing an orbit around the target.
func (cam *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.position, cam.front, cam.up).Mul4(cam.ball.RotationMatrix())
}

func (cam *OrbitCamera) Fov() float32 {
	return cam.fov
}

// Position reports the camera's apparent world position under the current
// orbit rotation: the stored position transformed by the inverse of the
// arcball rotation.
func (cam *OrbitCamera) Position() mgl32.Vec3 {
	return cam.ball.Rotation().Inverse().Rotate(cam.position)
}

func (cam *OrbitCamera) Target() mgl32.Vec3 {
	return cam.target
}

func (cam *OrbitCamera) updateVectors() {
	cam.front = cam.position.Sub(cam.target).Normalize()
	cam.right = cam.front.Cross(cam.worldUp).Normalize()
	cam.up = cam.right.Cross(cam.front).Normalize()
}
