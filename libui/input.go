package libui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Input keeps the current and previous per-frame snapshot of the keyboard,
// mouse buttons and cursor, polled once per frame with Update.
type Input struct {
	curr inputState
	prev inputState
}

type inputState struct {
	time         float32
	cursorPos    mgl32.Vec2
	keys         []bool
	mousebuttons []bool
}

func NewInput(win *glfw.Window) *Input {
	in := &Input{
		curr: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
		prev: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
	}

	in.Update(win)
	in.prev.cursorPos = in.curr.cursorPos
	// Make sure the time delta is never zero
	in.prev.time = in.curr.time - 1./60.
	copy(in.prev.keys, in.curr.keys)
	copy(in.prev.mousebuttons, in.curr.mousebuttons)

	return in
}

// Update rolls the current snapshot into the previous one and polls a fresh
// one from the window.
func (in *Input) Update(win *glfw.Window) {
	keys := in.prev.keys
	mousebuttons := in.prev.mousebuttons
	in.prev = in.curr
	cursorX, cursorY := win.GetCursorPos()

	for key := 32; key <= int(glfw.KeyLast); key++ {
		keys[key] = win.GetKey(glfw.Key(key)) != glfw.Release
	}
	for button := 0; button <= int(glfw.MouseButtonLast); button++ {
		mousebuttons[button] = win.GetMouseButton(glfw.MouseButton(button)) != glfw.Release
	}

	in.curr = inputState{
		time:         float32(glfw.GetTime()),
		cursorPos:    mgl32.Vec2{float32(cursorX), float32(cursorY)},
		keys:         keys,
		mousebuttons: mousebuttons,
	}
}

func (in *Input) CursorPos() mgl32.Vec2 {
	return in.curr.cursorPos
}

func (in *Input) CursorDelta() mgl32.Vec2 {
	return in.curr.cursorPos.Sub(in.prev.cursorPos)
}

func (in *Input) TimeDelta() float32 {
	return in.curr.time - in.prev.time
}

func (in *Input) IsKeyDown(key glfw.Key) bool {
	return in.curr.keys[key]
}

// IsKeyTap reports keys that went down since the previous frame.
func (in *Input) IsKeyTap(key glfw.Key) bool {
	return in.curr.keys[key] && !in.prev.keys[key]
}

func (in *Input) IsMouseDown(button glfw.MouseButton) bool {
	return in.curr.mousebuttons[button]
}

func (in *Input) IsMouseTap(button glfw.MouseButton) bool {
	return in.curr.mousebuttons[button] && !in.prev.mousebuttons[button]
}

// Movement folds the held state of three key pairs into a direction vector,
// x right, y up, z backward. A zero key disables its pair.
func (in *Input) Movement(forward, backward, left, right, up, down glfw.Key) mgl32.Vec3 {
	var x, y, z float32
	if forward != 0 && in.IsKeyDown(forward) {
		z -= 1
	}
	if backward != 0 && in.IsKeyDown(backward) {
		z += 1
	}
	if left != 0 && in.IsKeyDown(left) {
		x -= 1
	}
	if right != 0 && in.IsKeyDown(right) {
		x += 1
	}
	if up != 0 && in.IsKeyDown(up) {
		y += 1
	}
	if down != 0 && in.IsKeyDown(down) {
		y -= 1
	}
	return mgl32.Vec3{x, y, z}
}
