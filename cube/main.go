// Rendering an indexed, vertex-colored cube spinning in place.
package main

import (
	_ "embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

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
)

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

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Cube", nil, nil)
	check(err)
	win.MakeContextCurrent()

	aspectRatio := float32(windowWidth) / float32(windowHeight)
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		aspectRatio = float32(width) / float32(height)
	})

	err = gl.Init()
	check(err)
	logger.Logf("GL vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	shader, err := libgl.NewShaderProgram("cube", cubeVshSrc, cubeFshSrc, logger)
	check(err)
	defer shader.Delete()

	cube := libgl.NewCubeMesh()
	defer cube.Delete()

	view := mgl32.LookAtV(mgl32.Vec3{0, 2, 7}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	for !win.ShouldClose() {
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}

		gl.ClearColor(0.5, 0.5, 0.5, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		angle := float32(glfw.GetTime()) * 50 * libutil.Deg2Rad
		model := mgl32.HomogRotate3D(angle, mgl32.Vec3{0.5, 1, 0}.Normalize())
		projection := mgl32.Perspective(45*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)

		shader.Use()
		shader.SetUniform("u_model", model)
		shader.SetUniform("u_view", view)
		shader.SetUniform("u_projection", projection)
		cube.Draw()

		win.SwapBuffers()
		glfw.PollEvents()
	}
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
