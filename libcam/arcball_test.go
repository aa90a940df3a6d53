package libcam_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libcam"
)

func TestScreenToNDC(t *testing.T) {
	cases := []struct {
		pos  mgl32.Vec2
		want mgl32.Vec2
	}{
		{mgl32.Vec2{400, 300}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{0, 0}, mgl32.Vec2{-1, -1}},
		{mgl32.Vec2{800, 600}, mgl32.Vec2{1, 1}},
		{mgl32.Vec2{600, 150}, mgl32.Vec2{0.5, -0.5}},
	}
	for _, c := range cases {
		got := libcam.ScreenToNDC(c.pos, 800, 600)
		if !vec2Near(got, c.want) {
			t.Errorf("ScreenToNDC(%v) should be %v but was %v", c.pos, c.want, got)
		}
	}
}

func TestMapToSurface(t *testing.T) {
	ball := libcam.NewArcball(1, false)

	cases := []struct {
		pos   mgl32.Vec2
		wantZ float32
	}{
		{mgl32.Vec2{0, 0}, 1},
		{mgl32.Vec2{0.5, 0.5}, float32(math.Sqrt(0.5))},
		{mgl32.Vec2{0.6, 0.8}, 0},  // exactly on the silhouette
		{mgl32.Vec2{0.9, 0.9}, 0},  // outside, stays on the equatorial plane
		{mgl32.Vec2{-3, 4}, 0},
	}
	for _, c := range cases {
		got := libcam.MapToSurface(ball, c.pos)
		if got.Z() < 0 {
			t.Errorf("mapToSurface(%v) produced negative z %v", c.pos, got.Z())
		}
		if math.Abs(float64(got.Z()-c.wantZ)) > epsilon {
			t.Errorf("mapToSurface(%v) z should be %v but was %v", c.pos, c.wantZ, got.Z())
		}
		if got.X() != c.pos.X() || got.Y() != c.pos.Y() {
			t.Errorf("mapToSurface(%v) must not move the point in the xy plane, was %v", c.pos, got)
		}
	}
}

func TestStationaryDragIsIdentity(t *testing.T) {
	ball := libcam.NewArcball(libcam.DefaultRadius, false)
	ball.BeginRotation(mgl32.Vec2{0.25, -0.1})
	ball.Rotate(mgl32.Vec2{0.25, -0.1})

	if got := ball.RotationMatrix(); !mat4Near(got, mgl32.Ident4()) {
		t.Errorf("zero-length drag should be the identity rotation, was %v", got)
	}
}

func TestOppositePointsAreDegenerate(t *testing.T) {
	// both map to the equatorial plane with a vanishing cross product
	ball := libcam.NewArcball(libcam.DefaultRadius, false)
	ball.BeginRotation(mgl32.Vec2{1, 0})
	ball.Rotate(mgl32.Vec2{-1, 0})

	got := ball.RotationMatrix()
	for i, v := range got {
		if math.IsNaN(float64(v)) {
			t.Fatalf("degenerate drag produced NaN at %d: %v", i, got)
		}
	}
	if !mat4Near(got, mgl32.Ident4()) {
		t.Errorf("degenerate drag should fall back to identity, was %v", got)
	}
}

func TestQuarterTurnAboutY(t *testing.T) {
	ball := libcam.NewArcball(libcam.DefaultRadius, false)
	ball.BeginRotation(mgl32.Vec2{0, 0})
	ball.Rotate(mgl32.Vec2{1, 0})

	want := mgl32.HomogRotate3DY(math.Pi / 2)
	if got := ball.RotationMatrix(); !mat4Near(got, want) {
		t.Errorf("drag to the sphere edge should be a quarter turn about +y,\nwant %v\nwas  %v", want, got)
	}
}

func TestEndRotationFoldsIntoLast(t *testing.T) {
	ball := libcam.NewArcball(libcam.DefaultRadius, false)

	ball.BeginRotation(mgl32.Vec2{0, 0})
	ball.Rotate(mgl32.Vec2{0.5, 0})
	increment := ball.Rotation()
	ball.EndRotation()

	if ball.IsRotating() {
		t.Error("arcball should not report an active drag after EndRotation")
	}
	if got := ball.Rotation().Mat4(); !mat4Near(got, increment.Mat4()) {
		t.Errorf("completed drag should persist in the accumulated rotation, was %v", got)
	}

	// an identical drag from the new rest position composes with the
	// accumulated rotation exactly like applying the quaternion twice
	ball.BeginRotation(mgl32.Vec2{0, 0})
	ball.Rotate(mgl32.Vec2{0.5, 0})

	want := increment.Mul(increment).Mat4()
	if got := ball.RotationMatrix(); !mat4Near(got, want) {
		t.Errorf("repeated drag should equal the squared increment,\nwant %v\nwas  %v", want, got)
	}
}

func TestInvertY(t *testing.T) {
	plain := libcam.NewArcball(libcam.DefaultRadius, true)
	flipped := libcam.NewArcball(libcam.DefaultRadius, false)

	plain.BeginRotation(mgl32.Vec2{0, 0})
	plain.Rotate(mgl32.Vec2{0, -0.5})
	flipped.BeginRotation(mgl32.Vec2{0, 0})
	flipped.Rotate(mgl32.Vec2{0, 0.5})

	if got, want := flipped.RotationMatrix(), plain.RotationMatrix(); !mat4Near(got, want) {
		t.Errorf("default arcball should negate y before mapping,\nwant %v\nwas  %v", want, got)
	}
}

func TestRotationStaysUnit(t *testing.T) {
	ball := libcam.NewArcball(libcam.DefaultRadius, false)
	drags := [][2]mgl32.Vec2{
		{{0, 0}, {0.3, 0.2}},
		{{0.1, -0.4}, {-0.6, 0.5}},
		{{0.9, 0.9}, {-0.2, 0.1}},
	}
	for _, d := range drags {
		ball.BeginRotation(d[0])
		ball.Rotate(d[1])
		ball.EndRotation()
	}
	if l := ball.Rotation().Len(); math.Abs(float64(l-1)) > epsilon {
		t.Errorf("accumulated rotation should stay unit length, was %v", l)
	}
}
