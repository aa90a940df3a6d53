// Viewing a shaded, textured cube through an orbital camera.
//
// Drag with the left mouse button to orbit, drag vertically with the
// right button to dolly, scroll to zoom. WASD, Space and Shift move the
// light, B toggles between Blinn-Phong and plain Phong shading.
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

//go:embed shaders/light.vert
var lightVshSrc string

//go:embed shaders/light.frag
var lightFshSrc string

const (
	windowWidth  = 800
	windowHeight = 600
	frustumNear  = 0.01
	frustumFar   = 100

	lightScale         = 0.25
	lightMovementSpeed = 4.0
)

// app carries the per-window state the glfw callbacks need.
type app struct {
	camera        *libcam.OrbitCamera
	width, height int
	firstMouse    bool
	lastY         float32
}

func (a *app) onFramebufferSize(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	a.width, a.height = width, height
}

func (a *app) onCursorPos(w *glfw.Window, x, y float64) {
	pos := libcam.ScreenToNDC(mgl32.Vec2{float32(x), float32(y)}, a.width, a.height)
	switch {
	case a.camera.IsRotating():
		a.camera.Rotate(pos)
	case a.camera.IsTranslating():
		if a.firstMouse {
			a.lastY = pos.Y()
			a.firstMouse = false
		}
		// reversed since screen y grows downward
		offsetY := a.lastY - pos.Y()
		a.lastY = pos.Y()
		a.camera.Translate(offsetY)
	}
}

func (a *app) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	switch {
	case button == glfw.MouseButtonLeft && action == glfw.Press:
		x, y := w.GetCursorPos()
		pos := libcam.ScreenToNDC(mgl32.Vec2{float32(x), float32(y)}, a.width, a.height)
		a.camera.BeginRotation(pos)
	case button == glfw.MouseButtonLeft && action == glfw.Release:
		a.camera.EndRotation()
	case button == glfw.MouseButtonRight && action == glfw.Press:
		a.camera.BeginTranslation()
	case button == glfw.MouseButtonRight && action == glfw.Release:
		a.camera.EndTranslation()
		a.firstMouse = true
	}
}

func (a *app) onScroll(w *glfw.Window, offsetX, offsetY float64) {
	a.camera.AdjustFov(float32(offsetY) / 10)
}

func main() {
	texturePath := flag.String("texture", "assets/textures/tux.jpg", "texture to wrap the cube in")
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

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Orbital Cube", nil, nil)
	check(err)
	win.MakeContextCurrent()

	a := &app{
		camera:     libcam.NewDefaultOrbitCamera(mgl32.Vec3{0, 0, 7}),
		width:      windowWidth,
		height:     windowHeight,
		firstMouse: true,
	}
	win.SetFramebufferSizeCallback(a.onFramebufferSize)
	win.SetCursorPosCallback(a.onCursorPos)
	win.SetMouseButtonCallback(a.onMouseButton)
	win.SetScrollCallback(a.onScroll)

	err = gl.Init()
	check(err)
	logger.Logf("GL vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("GL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	cubeShader, err := libgl.NewShaderProgram("cube", cubeVshSrc, cubeFshSrc, logger)
	check(err)
	defer cubeShader.Delete()
	lightShader, err := libgl.NewShaderProgram("light", lightVshSrc, lightFshSrc, logger)
	check(err)
	defer lightShader.Delete()

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

	input := libui.NewInput(win)

	lightPos := mgl32.Vec3{2, 2, 2}
	lightColor := mgl32.Vec3{1, 1, 1}
	blinnPhong := true

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
		if input.IsKeyTap(glfw.KeyB) {
			blinnPhong = !blinnPhong
			if blinnPhong {
				logger.Logf("Blinn-Phong shading enabled")
			} else {
				logger.Logf("Blinn-Phong shading disabled")
			}
		}
		dt := input.TimeDelta()
		move := input.Movement(glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeySpace, glfw.KeyLeftShift)
		lightPos = lightPos.Add(move.Mul(lightMovementSpeed * dt))

		if blinnPhong {
			gl.ClearColor(0, 0, 0, 1)
		} else {
			gl.ClearColor(0.5, 0.5, 0.5, 1)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspectRatio := float32(a.width) / float32(a.height)
		projection := mgl32.Perspective(a.camera.Fov()*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)
		view := a.camera.ViewMatrix()

		if blinnPhong {
			model := mgl32.Translate3D(lightPos.Elem()).Mul4(mgl32.Scale3D(lightScale, lightScale, lightScale))
			lightShader.Use()
			lightShader.SetUniform("u_light_color", lightColor)
			lightShader.SetUniform("u_model", model)
			lightShader.SetUniform("u_view", view)
			lightShader.SetUniform("u_projection", projection)
			cube.Draw()
		}

		texture.Bind(0)
		cubeShader.Use()
		cubeShader.SetUniform("u_light.position", lightPos)
		cubeShader.SetUniform("u_light.ambient", lightColor)
		cubeShader.SetUniform("u_light.diffuse", lightColor)
		cubeShader.SetUniform("u_light.specular", lightColor)
		cubeShader.SetUniform("u_view_pos", a.camera.Position())
		cubeShader.SetUniform("u_model", mgl32.Ident4())
		cubeShader.SetUniform("u_view", view)
		cubeShader.SetUniform("u_projection", projection)
		cubeShader.SetUniform("u_blinn_phong", blinnPhong)
		cube.Draw()

		win.SwapBuffers()
	}
	logger.Logf("program exited")
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
