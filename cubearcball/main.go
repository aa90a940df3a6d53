// Rotating a cube with an arcball: drag with the left mouse button to
// tumble the model around its center.
package main

import (
	_ "embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libcam"
	"opengl-sandbox/libgl"
	"opengl-sandbox/liblog"
	"opengl-sandbox/libutil"
)

//go:embed shaders/cube.vert
var cubeVshSrc string

//go:embed shaders/cube.frag
var cubeFshSrc string

const (
	windowWidth  = 800
	windowHeight = 600
	frustumNear  = 0.01
	frustumFar   = 100
	fov          = 45
)

// app carries the per-window state the glfw callbacks need.
type app struct {
	ball          *libcam.Arcball
	width, height int
}

func (a *app) onFramebufferSize(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	a.width, a.height = width, height
}

func (a *app) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		ndc := libcam.ScreenToNDC(mgl32.Vec2{float32(x), float32(y)}, a.width, a.height)
		a.ball.BeginRotation(ndc)
	case glfw.Release:
		a.ball.EndRotation()
	}
}

func (a *app) onCursorPos(w *glfw.Window, x, y float64) {
	if !a.ball.IsRotating() {
		return
	}
	ndc := libcam.ScreenToNDC(mgl32.Vec2{float32(x), float32(y)}, a.width, a.height)
	a.ball.Rotate(ndc)
}

func (a *app) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func main() {
	runtime.LockOSThread()

	logger := liblog.New(log.Writer())

	err := glfw.Init()
	check(err)
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Arcball Cube", nil, nil)
	check(err)
	win.MakeContextCurrent()

	a := &app{
		ball:   libcam.NewArcball(libcam.DefaultRadius, false),
		width:  windowWidth,
		height: windowHeight,
	}
	win.SetFramebufferSizeCallback(a.onFramebufferSize)
	win.SetMouseButtonCallback(a.onMouseButton)
	win.SetCursorPosCallback(a.onCursorPos)
	win.SetKeyCallback(a.onKey)

	err = gl.Init()
	check(err)
	logger.Logf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	shader, err := libgl.NewShaderProgram("cube", cubeVshSrc, cubeFshSrc, logger)
	check(err)
	defer shader.Delete()

	cube := libgl.NewCubeMesh()
	defer cube.Delete()

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 7}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	for !win.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspectRatio := float32(a.width) / float32(a.height)
		projection := mgl32.Perspective(fov*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)

		shader.Use()
		shader.SetUniform("u_model", a.ball.RotationMatrix())
		shader.SetUniform("u_view", view)
		shader.SetUniform("u_projection", projection)
		cube.Draw()

		win.SwapBuffers()
	}
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
