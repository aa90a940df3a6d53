// Rendering the letters J, D, T and II arranged in a square, viewed
// through an orbital camera.
//
// Drag with the left mouse button to orbit, drag vertically with the
// right button to dolly, scroll to zoom.
//
// The letter geometry ships built in. -export writes it to a mesh pack
// file, -pack renders from a previously exported pack instead.
package main

import (
	_ "embed"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libcam"
	"opengl-sandbox/libgl"
	"opengl-sandbox/libio"
	"opengl-sandbox/liblog"
	"opengl-sandbox/libutil"
)

//go:embed shaders/letter.vert
var letterVshSrc string

//go:embed shaders/letter.frag
var letterFshSrc string

const (
	windowWidth  = 800
	windowHeight = 600
	frustumNear  = 0.01
	frustumFar   = 100
	letterScale  = 0.5
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

func (a *app) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func main() {
	exportPath := flag.String("export", "", "write the built-in letters to a mesh pack file and exit")
	packPath := flag.String("pack", "", "render letters from a mesh pack file")
	flag.Parse()

	logger := liblog.New(log.Writer())

	if *exportPath != "" {
		err := exportLetters(*exportPath)
		check(err)
		logger.Logf("wrote letter meshes to %s", *exportPath)
		return
	}

	pack := builtinLetters()
	if *packPath != "" {
		var err error
		pack, err = loadLetters(*packPath)
		check(err)
		logger.Logf("loaded %d meshes from %s", len(pack.Meshes), *packPath)
	}

	runtime.LockOSThread()

	err := glfw.Init()
	check(err)
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, "Letters", nil, nil)
	check(err)
	win.MakeContextCurrent()

	a := &app{
		camera:     libcam.NewDefaultOrbitCamera(mgl32.Vec3{0, 0, 3}),
		width:      windowWidth,
		height:     windowHeight,
		firstMouse: true,
	}
	win.SetFramebufferSizeCallback(a.onFramebufferSize)
	win.SetCursorPosCallback(a.onCursorPos)
	win.SetMouseButtonCallback(a.onMouseButton)
	win.SetScrollCallback(a.onScroll)
	win.SetKeyCallback(a.onKey)

	err = gl.Init()
	check(err)
	logger.Logf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)

	shader, err := libgl.NewShaderProgram("letter", letterVshSrc, letterFshSrc, logger)
	check(err)
	defer shader.Delete()

	// each letter faces outward from its side of the square
	type placement struct {
		name  string
		model mgl32.Mat4
	}
	placements := []placement{
		{"j", mgl32.Translate3D(0, 0, 1)},
		{"d", mgl32.Translate3D(1, 0, 0).Mul4(mgl32.HomogRotate3DY(90 * libutil.Deg2Rad))},
		{"t", mgl32.Translate3D(0, 0, -1).Mul4(mgl32.HomogRotate3DY(180 * libutil.Deg2Rad))},
		{"ii", mgl32.Translate3D(-1, 0, 0).Mul4(mgl32.HomogRotate3DY(270 * libutil.Deg2Rad))},
	}

	meshes := make(map[string]*libgl.Mesh, len(placements))
	for _, p := range placements {
		data := pack.Find(p.name)
		if data == nil {
			log.Panicf("mesh %q missing from pack", p.name)
		}
		mesh := libgl.NewMesh(data)
		defer mesh.Delete()
		meshes[p.name] = mesh
	}

	scale := mgl32.Scale3D(letterScale, letterScale, letterScale)

	for !win.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.5, 0.5, 0.5, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspectRatio := float32(a.width) / float32(a.height)
		projection := mgl32.Perspective(a.camera.Fov()*libutil.Deg2Rad, aspectRatio, frustumNear, frustumFar)

		shader.Use()
		shader.SetUniform("u_view", a.camera.ViewMatrix())
		shader.SetUniform("u_projection", projection)
		for _, p := range placements {
			shader.SetUniform("u_model", p.model.Mul4(scale))
			meshes[p.name].Draw()
		}

		win.SwapBuffers()
	}
}

func exportLetters(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := libio.EncodeMeshPack(f, builtinLetters()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadLetters(path string) (*libio.MeshPack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return libio.DecodeMeshPack(f)
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
