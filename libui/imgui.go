package libui

import (
	_ "embed"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"

	"opengl-sandbox/libgl"
	"opengl-sandbox/liblog"
)

//go:embed shaders/imgui.vert
var imguiVshSrc string

//go:embed shaders/imgui.frag
var imguiFshSrc string

// UI renders Dear ImGui draw data on top of a demo's frame and feeds GLFW
// input events into imgui. It installs the window's cursor, mouse button,
// scroll, char and key callbacks; demos that need their own input should
// poll through Input instead.
type UI struct {
	IO        imgui.IO
	FrameTime float32
	vao       uint32
	vbo       uint32
	vboSize   int
	ebo       uint32
	eboSize   int
	atlas     uint32
	shader    *libgl.ShaderProgram
}

func NewUI(win *glfw.Window, logger liblog.Logger) (*UI, error) {
	imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	dispWidth, dispHeight := win.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	shader, err := libgl.NewShaderProgram("imgui", imguiVshSrc, imguiFshSrc, logger)
	if err != nil {
		return nil, err
	}

	ui := &UI{
		IO:        io,
		FrameTime: float32(glfw.GetTime()),
		shader:    shader,
	}

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.GenVertexArrays(1, &ui.vao)
	gl.GenBuffers(1, &ui.vbo)
	gl.GenBuffers(1, &ui.ebo)
	gl.BindVertexArray(ui.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, ui.vbo)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))
	gl.EnableVertexAttribArray(2)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ui.ebo)
	gl.BindVertexArray(0)

	fontImage := io.Fonts().TextureDataRGBA32()
	gl.GenTextures(1, &ui.atlas)
	gl.BindTexture(gl.TEXTURE_2D, ui.atlas)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(fontImage.Width), int32(fontImage.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, fontImage.Pixels)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	io.Fonts().SetTextureID(imgui.TextureID(ui.atlas))

	installCallbacks(win, io)

	return ui, nil
}

func installCallbacks(win *glfw.Window, io imgui.IO) {
	win.SetCursorPosCallback(func(w *glfw.Window, mx, my float64) {
		io.SetMousePosition(imgui.Vec2{X: float32(mx), Y: float32(my)})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		io.SetMouseButtonDown(int(button), action == glfw.Press)
	})
	win.SetScrollCallback(func(w *glfw.Window, x, y float64) {
		io.AddMouseWheelDelta(float32(x), float32(y))
	})
	win.SetCharCallback(func(w *glfw.Window, char rune) {
		io.AddInputCharacters(string(char))
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			io.KeyPress(int(key))
		}
		if action == glfw.Release {
			io.KeyRelease(int(key))
		}

		// Modifiers are not reliable across systems
		io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
		io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
		io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
		io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
	})

	io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

// Draw renders the widgets declared since imgui.NewFrame. It leaves depth
// testing and face culling enabled, the state the cube demos run with.
func (ui *UI) Draw(win *glfw.Window) {
	io := imgui.CurrentIO()

	dispWidth, dispHeight := win.GetSize()
	fbWidth, fbHeight := win.GetFramebufferSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	now := float32(glfw.GetTime())
	io.SetDeltaTime(now - ui.FrameTime)
	ui.FrameTime = now

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ActiveTexture(gl.TEXTURE0)

	ui.shader.Use()
	ui.shader.SetUniform("u_proj_mat", ortho)
	ui.shader.SetUniform("u_texture", 0)
	gl.BindVertexArray(ui.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, ui.vbo)

	imgui.Render()
	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	indexSize := imgui.IndexBufferLayout()
	var indexType uint32
	switch indexSize {
	case 1:
		indexType = gl.UNSIGNED_BYTE
	case 2:
		indexType = gl.UNSIGNED_SHORT
	case 4:
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		if vertexBufferSize > ui.vboSize {
			ui.vboSize = vertexBufferSize
			gl.BufferData(gl.ARRAY_BUFFER, ui.vboSize, nil, gl.STREAM_DRAW)
		}
		if vertexBufferSize > 0 {
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, vertexBufferSize, vertexBuffer)
		}

		indexBuffer, indexBufferSize := list.IndexBuffer()
		if indexBufferSize > ui.eboSize {
			ui.eboSize = indexBufferSize
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ui.eboSize, nil, gl.STREAM_DRAW)
		}
		if indexBufferSize > 0 {
			gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, indexBufferSize, indexBuffer)
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
			clipRect := cmd.ClipRect()
			x, y := int32(clipRect.X), int32(fbHeight)-int32(clipRect.W)
			if y < 0 {
				y = 0
			}
			gl.Scissor(x, y, int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (ui *UI) Delete() {
	gl.DeleteVertexArrays(1, &ui.vao)
	gl.DeleteBuffers(1, &ui.vbo)
	gl.DeleteBuffers(1, &ui.ebo)
	gl.DeleteTextures(1, &ui.atlas)
	ui.shader.Delete()
}
