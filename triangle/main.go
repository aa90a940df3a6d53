// Rendering a single colored triangle.
package main

import (
	_ "embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libgl"
	"opengl-sandbox/libio"
	"opengl-sandbox/liblog"
)

//go:embed shaders/triangle.vert
var triangleVshSrc string

//go:embed shaders/triangle.frag
var triangleFshSrc string

const (
	windowWidth  = 800
	windowHeight = 600
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

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Triangle", nil, nil)
	check(err)
	win.MakeContextCurrent()
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	err = gl.Init()
	check(err)
	logger.Logf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	shader, err := libgl.NewShaderProgram("triangle", triangleVshSrc, triangleFshSrc, logger)
	check(err)
	defer shader.Delete()

	triangle := libgl.NewMesh(&libio.MeshData{
		Name: "triangle",
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
			{0, 0.5, 0},
		},
		Colors: []mgl32.Vec4{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
		Indices: []uint32{0, 1, 2},
	})
	defer triangle.Delete()

	gl.Enable(gl.MULTISAMPLE)

	for !win.ShouldClose() {
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		triangle.Draw()

		win.SwapBuffers()
		glfw.PollEvents()
	}
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
