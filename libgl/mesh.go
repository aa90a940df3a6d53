package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libio"
)

// Vertex attribute locations shared by all sandbox shaders.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
	AttribColor    = 3
)

const (
	vec2Size = 2 * 4
	vec3Size = 3 * 4
	vec4Size = 4 * 4
)

// Mesh owns a vertex array with one buffer laid out as contiguous attribute
// blocks (positions, then normals, texcoords, colors) and an element buffer.
// Absent attribute slices simply leave their location disabled.
type Mesh struct {
	vao      uint32
	vbo      uint32
	ebo      uint32
	elements int32
}

func NewMesh(data *libio.MeshData) *Mesh {
	mesh := &Mesh{elements: int32(len(data.Indices))}

	positionsSize := len(data.Positions) * vec3Size
	normalsSize := len(data.Normals) * vec3Size
	texCoordsSize := len(data.TexCoords) * vec2Size
	colorsSize := len(data.Colors) * vec4Size
	totalSize := positionsSize + normalsSize + texCoordsSize + colorsSize

	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)
	gl.GenBuffers(1, &mesh.ebo)

	gl.BindVertexArray(mesh.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, totalSize, nil, gl.STATIC_DRAW)

	offset := 0
	if len(data.Positions) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, offset, positionsSize, gl.Ptr(data.Positions))
		gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, vec3Size, uintptr(offset))
		gl.EnableVertexAttribArray(AttribPosition)
		offset += positionsSize
	}
	if len(data.Normals) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, offset, normalsSize, gl.Ptr(data.Normals))
		gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, vec3Size, uintptr(offset))
		gl.EnableVertexAttribArray(AttribNormal)
		offset += normalsSize
	}
	if len(data.TexCoords) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, offset, texCoordsSize, gl.Ptr(data.TexCoords))
		gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, vec2Size, uintptr(offset))
		gl.EnableVertexAttribArray(AttribTexCoord)
		offset += texCoordsSize
	}
	if len(data.Colors) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, offset, colorsSize, gl.Ptr(data.Colors))
		gl.VertexAttribPointerWithOffset(AttribColor, 4, gl.FLOAT, false, vec4Size, uintptr(offset))
		gl.EnableVertexAttribArray(AttribColor)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return mesh
}

// NewCubeMesh uploads the unit cube.
func NewCubeMesh() *Mesh {
	return NewMesh(CubeMeshData())
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.elements, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// CubeMeshData returns the CPU-side geometry of a cube spanning [-1, 1] on
// every axis: 24 vertices (4 per face) with per-face normals, texture
// coordinates and vertex colors, indexed as 12 triangles.
//
//	      6 ---------------- 7
//	      _/|            _/|
//	    _/  |          _/  |
//	   /    |         /    |
//	3 ---------------- 2   |
//	  |     |        |     |
//	  |     |        |     |
//	  |   5 ---------|------ 4
//	  |   _/         |   _/
//	  | _/           | _/
//	  |/             |/
//	0 ---------------- 1
func CubeMeshData() *libio.MeshData {
	return &libio.MeshData{
		Name: "cube",
		Positions: []mgl32.Vec3{
			// front
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
			// back
			{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
			// left
			{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1},
			// right
			{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1},
			// top
			{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1},
			// bottom
			{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
		},
		Normals: []mgl32.Vec3{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
			{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, -1},
			{-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0}, {-1, 0, 0},
			{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0},
			{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
			{0, -1, 0}, {0, -1, 0}, {0, -1, 0}, {0, -1, 0},
		},
		TexCoords: []mgl32.Vec2{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Colors: []mgl32.Vec4{
			{0, 0, 0, 1}, {1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1},
			{1, 1, 0, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {0, 1, 1, 1},
			{1, 0, 1, 1}, {0, 0, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1},
			{1, 0, 0, 1}, {1, 1, 0, 1}, {0, 1, 1, 1}, {0, 1, 0, 1},
			{0, 0, 1, 1}, {0, 1, 0, 1}, {0, 1, 1, 1}, {1, 1, 1, 1},
			{1, 0, 1, 1}, {1, 1, 0, 1}, {1, 0, 0, 1}, {0, 0, 0, 1},
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			4, 5, 6, 4, 6, 7, // back
			8, 9, 10, 8, 10, 11, // left
			12, 13, 14, 12, 14, 15, // right
			16, 17, 18, 16, 18, 19, // top
			20, 21, 22, 20, 22, 23, // bottom
		},
	}
}
