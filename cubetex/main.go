// Viewing a textured cube through a flying free-look camera.
//
// Hold the right mouse button to look around, move with WASD, scroll to
// zoom, press R to reset the camera.
package main

import (
	_ "embed"
	"flag"
	"image/color"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libcam"
	"opengl-sandbox/libgl"
	"opengl-sandbox/liblog"
	"opengl-sandbox/libui"
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
	texturePath := flag.String("texture", "assets/textures/crate.png", "texture to wrap the cube in")
	flag.Parse()

	runtime.LockOSThread()

	logger := liblog.New(log.Writer())

	err := glfw.Init()
	check(err)
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Textured Cube", nil, nil)
	check(err)
	win.MakeContextCurrent()

	aspectRatio := float32(windowWidth) / float32(windowHeight)
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		aspectRatio = float32(width) / float32(height)
	})

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

	texture, err := libgl.LoadTexture(*texturePath, true)
	if err != nil {
		logger.Logf("%v, falling back to a checkerboard", err)
		checker := libgl.Checkerboard(256, 8,
			color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
			color.RGBA{0x40, 0x40, 0x40, 0xff})
		texture = libgl.NewTexture(checker, false)
	}
	defer texture.Delete()

	camera := libcam.NewDefaultCamera(mgl32.Vec3{0, 0, 7})
	win.SetScrollCallback(func(w *glfw.Window, offsetX, offsetY float64) {
		camera.AdjustFov(float32(offsetY))
	})

	input := libui.NewInput(win)

	shader.Use()
	shader.SetUniform("u_texture", 0)

	for !win.ShouldClose() {
		glfw.PollEvents()
		input.Update(win)

		if input.IsKeyDown(glfw.KeyEscape) {
			win.SetShouldClose(true)
		}
		if input.IsKeyTap(glfw.KeyR) {
			camera.Reset()
		}

		dt := input.TimeDelta()
		if input.IsKeyDown(glfw.KeyW) {
			camera.Move(libcam.Forward, dt)
		}
		if input.IsKeyDown(glfw.KeyS) {
			camera.Move(libcam.Backward, dt)
		}
		if input.IsKeyDown(glfw.KeyA) {
			camera.Move(libcam.Left, dt)
		}
		if input.IsKeyDown(glfw.KeyD) {
			camera.Move(libcam.Right, dt)
		}
		if input.IsMouseDown(glfw.MouseButtonRight) {
			look := input.CursorDelta()
			// cursor y grows downward, pitch grows upward
			camera.Look(look.X(), -look.Y(), true)
		}

		gl.ClearColor(0.5, 0.5, 0.5, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		projection := mgl32.Perspective(camera.Fov()*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)

		texture.Bind(0)
		shader.Use()
		shader.SetUniform("u_model", mgl32.Ident4())
		shader.SetUniform("u_view", camera.ViewMatrix())
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
