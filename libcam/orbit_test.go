package libcam_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libcam"
)

func TestTranslateDolliesAlongFront(t *testing.T) {
	cam := libcam.NewDefaultOrbitCamera(mgl32.Vec3{0, 0, 7})

	// front is +z here, a positive offset moves toward the target
	cam.BeginTranslation()
	cam.Translate(0.5)
	cam.EndTranslation()

	if got := cam.Position(); !vec3Near(got, mgl32.Vec3{0, 0, 3.5}) {
		t.Errorf("dolly of 0.5 should land at z=3.5, was %v", got)
	}
}

func TestTranslationFlag(t *testing.T) {
	cam := libcam.NewDefaultOrbitCamera(mgl32.Vec3{0, 0, 1})
	if cam.IsTranslating() {
		t.Error("fresh camera should not be translating")
	}
	cam.BeginTranslation()
	if !cam.IsTranslating() {
		t.Error("camera should report an active translation")
	}
	cam.EndTranslation()
	if cam.IsTranslating() {
		t.Error("camera should not report a translation after EndTranslation")
	}
}

func TestOrbitFovClamps(t *testing.T) {
	cam := libcam.NewDefaultOrbitCamera(mgl32.Vec3{0, 0, 1})
	for i := 0; i < 20; i++ {
		cam.AdjustFov(10)
	}
	if got := cam.Fov(); got != libcam.MinFov {
		t.Errorf("fov should clamp at %v but was %v", libcam.MinFov, got)
	}
	for i := 0; i < 20; i++ {
		cam.AdjustFov(-10)
	}
	if got := cam.Fov(); got != libcam.MaxFov {
		t.Errorf("fov should clamp at %v but was %v", libcam.MaxFov, got)
	}
}

func TestViewMatrixComposesArcballRotation(t *testing.T) {
	position := mgl32.Vec3{0, 0, 7}
	cam := libcam.NewDefaultOrbitCamera(position)

	cam.BeginRotation(mgl32.Vec2{0, 0})
	cam.Rotate(mgl32.Vec2{0.4, 0})

	twin := libcam.NewArcball(libcam.DefaultRadius, false)
	twin.BeginRotation(mgl32.Vec2{0, 0})
	twin.Rotate(mgl32.Vec2{0.4, 0})

	front := position.Normalize()
	up := mgl32.Vec3{0, 1, 0}
	want := mgl32.LookAtV(position, front, up).Mul4(twin.RotationMatrix())
	if got := cam.ViewMatrix(); !mat4Near(got, want) {
		t.Errorf("orbit view should be look-at composed with the arcball rotation,\nwant %v\nwas  %v", want, got)
	}
}

func TestApparentPosition(t *testing.T) {
	position := mgl32.Vec3{0, 0, 7}
	cam := libcam.NewDefaultOrbitCamera(position)

	if got := cam.Position(); !vec3Near(got, position) {
		t.Errorf("identity rotation should leave the position unchanged, was %v", got)
	}

	cam.BeginRotation(mgl32.Vec2{0, 0})
	cam.Rotate(mgl32.Vec2{0.6, 0.2})
	cam.EndRotation()

	got := cam.Position()
	if math.Abs(float64(got.Len()-position.Len())) > epsilon {
		t.Errorf("orbit must preserve the distance to the target, |p| was %v", got.Len())
	}
	if vec3Near(got, position) {
		t.Error("a completed drag should move the apparent position")
	}
}
