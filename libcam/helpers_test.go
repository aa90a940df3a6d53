package libcam_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// Absolute per-element comparisons. mgl32's ApproxEqualThreshold squares the
// threshold against near-zero components, which rejects ordinary float32
// residuals like cos(pi/2).

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func vec2Near(a, b mgl32.Vec2) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y())
}

func vec3Near(a, b mgl32.Vec3) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y()) && near(a.Z(), b.Z())
}

func mat4Near(a, b mgl32.Mat4) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}
