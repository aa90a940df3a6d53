// A point-lit cube with a Blinn-Phong material and an imgui panel to
// play with the light.
//
// Hold the right mouse button to look around, move with WASD, scroll to
// zoom, press R to reset the camera.
package main

import (
	_ "embed"
	"image/color"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	im "github.com/inkyblackness/imgui-go/v4"

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

//go:embed shaders/light.vert
var lightVshSrc string

//go:embed shaders/light.frag
var lightFshSrc string

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

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Shaded Cube", nil, nil)
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

	cubeShader, err := libgl.NewShaderProgram("cube", cubeVshSrc, cubeFshSrc, logger)
	check(err)
	defer cubeShader.Delete()
	lightShader, err := libgl.NewShaderProgram("light", lightVshSrc, lightFshSrc, logger)
	check(err)
	defer lightShader.Delete()

	cube := libgl.NewCubeMesh()
	defer cube.Delete()

	checker := libgl.Checkerboard(256, 8,
		color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
		color.RGBA{0x40, 0x40, 0x40, 0xff})
	texture := libgl.NewTexture(checker, false)
	defer texture.Delete()

	camera := libcam.NewDefaultCamera(mgl32.Vec3{0, 0, 7})

	ui, err := libui.NewUI(win, logger)
	check(err)
	defer ui.Delete()

	// NewUI installed its own scroll callback, chain the camera zoom in
	win.SetScrollCallback(func(w *glfw.Window, offsetX, offsetY float64) {
		ui.IO.AddMouseWheelDelta(float32(offsetX), float32(offsetY))
		if ui.IO.WantCaptureMouse() {
			return
		}
		camera.AdjustFov(float32(offsetY))
	})

	input := libui.NewInput(win)

	lightPos := mgl32.Vec3{1.2, 1.0, 2.0}
	lightColor := mgl32.Vec3{1, 1, 1}
	blinnPhong := true
	wireframe := false

	cubeShader.Use()
	cubeShader.SetUniform("u_texture", 0)
	cubeShader.SetUniform("u_light.constant", float32(1.0))
	cubeShader.SetUniform("u_light.linear", float32(0.09))
	cubeShader.SetUniform("u_light.quadratic", float32(0.032))

	for !win.ShouldClose() {
		glfw.PollEvents()
		input.Update(win)

		if input.IsKeyDown(glfw.KeyEscape) {
			win.SetShouldClose(true)
		}
		if input.IsKeyTap(glfw.KeyR) {
			camera.Reset()
		}

		io := im.CurrentIO()
		dt := input.TimeDelta()
		if !io.WantCaptureKeyboard() {
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
		}
		if !io.WantCaptureMouse() && input.IsMouseDown(glfw.MouseButtonRight) {
			look := input.CursorDelta()
			camera.Look(look.X(), -look.Y(), true)
		}

		im.NewFrame()
		im.Begin("main_window")
		if im.Checkbox("Wireframe", &wireframe) {
			if wireframe {
				gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			} else {
				gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
			}
		}
		im.Checkbox("Blinn-Phong", &blinnPhong)
		im.PushID("light")
		if im.CollapsingHeader("Light") {
			im.SliderFloat3("Pos", (*[3]float32)(&lightPos), -5, 5)
			im.ColorEdit3V("Col", (*[3]float32)(&lightColor), im.ColorEditFlagsFloat|im.ColorEditFlagsHSV)
		}
		im.PopID()
		im.End()

		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		projection := mgl32.Perspective(camera.Fov()*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)
		view := camera.ViewMatrix()

		texture.Bind(0)
		cubeShader.Use()
		cubeShader.SetUniform("u_model", mgl32.Ident4())
		cubeShader.SetUniform("u_view", view)
		cubeShader.SetUniform("u_projection", projection)
		cubeShader.SetUniform("u_light.position", lightPos)
		cubeShader.SetUniform("u_light.ambient", lightColor)
		cubeShader.SetUniform("u_light.diffuse", lightColor)
		cubeShader.SetUniform("u_light.specular", lightColor)
		cubeShader.SetUniform("u_view_pos", camera.Position())
		cubeShader.SetUniform("u_blinn_phong", blinnPhong)
		cube.Draw()

		lightShader.Use()
		model := mgl32.Translate3D(lightPos.Elem()).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
		lightShader.SetUniform("u_model", model)
		lightShader.SetUniform("u_view", view)
		lightShader.SetUniform("u_projection", projection)
		lightShader.SetUniform("u_light_color", lightColor)
		cube.Draw()

		ui.Draw(win)

		win.SwapBuffers()
	}
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
