package libcam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const DefaultRadius = 1.0

// axisEpsilon is the squared length below which the rotation axis is
// considered degenerate and the drag maps to the identity rotation.
const axisEpsilon = 1e-12

// Arcball maps 2D drag gestures onto a virtual sphere and accumulates the
// resulting quaternion rotations. Drags between two pointer positions in NDC
// produce an incremental rotation which is folded into the total rotation
// once the drag ends.
//
// See http://courses.cms.caltech.edu/cs171/assignments/hw3/hw3-notes/notes-hw3.html#NotesSection2
type Arcball struct {
	radius   float32
	invertY  bool
	start    mgl32.Vec2
	end      mgl32.Vec2
	last     mgl32.Quat
	current  mgl32.Quat
	rotating bool
}

// NewArcball creates an arcball with the given sphere radius. When invertY
// is false the y coordinate is negated, mapping the usual top-down screen
// axis onto the bottom-up NDC axis.
func NewArcball(radius float32, invertY bool) *Arcball {
	return &Arcball{
		radius:  radius,
		invertY: invertY,
		last:    mgl32.QuatIdent(),
		current: mgl32.QuatIdent(),
	}
}

// BeginRotation records pos as the starting position of a drag.
func (a *Arcball) BeginRotation(pos mgl32.Vec2) {
	if !a.invertY {
		pos[1] *= -1
	}
	a.start = pos
	a.rotating = true
}

// Rotate records pos as the current position of the drag and recomputes the
// in-progress rotation between the start position and pos.
func (a *Arcball) Rotate(pos mgl32.Vec2) {
	if !a.invertY {
		pos[1] *= -1
	}
	a.end = pos
	a.current = a.rotationBetween(a.start, a.end)
}

// EndRotation completes the drag, folding the in-progress rotation into the
// accumulated one.
func (a *Arcball) EndRotation() {
	a.last = a.current.Mul(a.last)
	a.current = mgl32.QuatIdent()
	a.rotating = false
}

func (a *Arcball) IsRotating() bool {
	return a.rotating
}

// Rotation returns the total rotation, the in-progress drag applied on top
// of all completed ones.
func (a *Arcball) Rotation() mgl32.Quat {
	return a.current.Mul(a.last)
}

// RotationMatrix returns the total rotation as a 4x4 matrix.
func (a *Arcball) RotationMatrix() mgl32.Mat4 {
	return a.Rotation().Mat4()
}

func (a *Arcball) rotationBetween(start, end mgl32.Vec2) mgl32.Quat {
	from := a.mapToSurface(start)
	to := a.mapToSurface(end)
	axis := from.Cross(to)
	if axis.LenSqr() < axisEpsilon {
		// start and end coincide, there is no defined axis
		return mgl32.QuatIdent()
	}
	cos := from.Dot(to) / (from.Len() * to.Len())
	angle := math32.Acos(math32.Min(cos, 1))
	return mgl32.QuatRotate(angle, axis.Normalize()).Normalize()
}

// mapToSurface projects pos onto the upper hemisphere of the arcball.
// Positions outside the silhouette keep z = 0 and are treated as lying on
// the equatorial plane rather than being renormalized onto the sphere.
func (a *Arcball) mapToSurface(pos mgl32.Vec2) mgl32.Vec3 {
	r2 := a.radius * a.radius
	d2 := pos[0]*pos[0] + pos[1]*pos[1]
	var z float32
	if d2 <= r2 {
		z = math32.Sqrt(r2 - d2)
	}
	return mgl32.Vec3{pos[0], pos[1], z}
}

// ScreenToNDC maps a cursor position in pixels to [-1, 1] on both axes.
// There is no aspect ratio correction.
func ScreenToNDC(pos mgl32.Vec2, width, height int) mgl32.Vec2 {
	x := (pos[0]/float32(width) - 0.5) * 2
	y := (pos[1]/float32(height) - 0.5) * 2
	return mgl32.Vec2{x, y}
}
