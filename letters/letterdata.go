package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/libio"
)

// builtinLetters returns the built-in geometry of the letters J, D, T and II,
// each modelled flat in the z=0 plane inside a [-1,1] square.
func builtinLetters() *libio.MeshPack {
	return &libio.MeshPack{Meshes: []libio.MeshData{
		letterJ(), letterD(), letterT(), letterII(),
	}}
}

func letterJ() libio.MeshData {
	return libio.MeshData{
		Name: "j",
		Positions: []mgl32.Vec3{
			{.125, .5, 0}, {-.125, .5, 0}, {.875, .5, 0},
			{-.875, .5, 0}, {.875, .75, 0}, {-.875, .75, 0},
			{-.125, -.5, 0}, {.125, -.75, 0}, {-.875, -.5, 0},
			{-.875, -.75, 0},
		},
		Colors: []mgl32.Vec4{
			{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 1, 1},
			{0, 0, 0, 1}, {1, 0, 1, 1}, {0, 0, 0, 1},
			{1, 1, 0, 1}, {1, 1, 0, 1}, {0, 1, 1, 1},
			{0, 1, 1, 1},
		},
		Indices: []uint32{
			0, 1, 4, 0, 2, 4, 0, 1, 7, 1, 3, 5,
			1, 4, 5, 1, 6, 7, 6, 7, 9, 6, 8, 9,
		},
	}
}

func letterD() libio.MeshData {
	return libio.MeshData{
		Name: "d",
		Positions: []mgl32.Vec3{
			{-.875, .75, 0}, {-.875, -.75, 0}, {-.625, .5, 0},
			{-.625, -.5, 0}, {-.375, .75, 0}, {-.375, -.75, 0},
			{.375, 0, 0}, {.875, 0, 0},
		},
		Colors: []mgl32.Vec4{
			{0, 0, 0, 1}, {0, 1, 1, 1}, {1, 0, 0, 1},
			{0, 1, 1, 1}, {1, 0, 1, 1}, {0, 1, 0, 1},
			{1, 1, 0, 1}, {1, 1, 0, 1},
		},
		Indices: []uint32{
			0, 1, 3, 0, 2, 3, 0, 2, 4, 1, 3, 5,
			2, 4, 6, 3, 5, 6, 4, 6, 7, 5, 6, 7,
		},
	}
}

func letterT() libio.MeshData {
	return libio.MeshData{
		Name: "t",
		Positions: []mgl32.Vec3{
			{.125, .5, 0}, {-.125, .5, 0}, {.875, .5, 0},
			{-.875, .5, 0}, {.875, .75, 0}, {-.875, .75, 0},
			{-.125, -.5, 0}, {.125, -.75, 0},
		},
		Colors: []mgl32.Vec4{
			{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 1, 1},
			{0, 0, 0, 1}, {1, 0, 1, 1}, {0, 0, 0, 1},
			{1, 1, 0, 1}, {1, 1, 0, 1},
		},
		Indices: []uint32{
			0, 1, 4, 0, 2, 4, 0, 1, 7, 1, 3, 5,
			1, 4, 5, 1, 6, 7,
		},
	}
}

func letterII() libio.MeshData {
	return libio.MeshData{
		Name: "ii",
		Positions: []mgl32.Vec3{
			{-.875, .75, 0}, {-.875, .5, 0}, {-.875, -.5, 0},
			{-.875, -.75, 0}, {-.375, .5, 0}, {-.375, -.5, 0},
			{-.125, .5, 0}, {-.125, -.5, 0}, {.125, .5, 0},
			{.125, -.5, 0}, {.375, .5, 0}, {.375, -.5, 0},
			{.875, .75, 0}, {.875, .5, 0}, {.875, -.5, 0},
			{.875, -.75, 0},
		},
		Colors: []mgl32.Vec4{
			{0, 0, 0, 1}, {0, 0, 0, 1}, {0, 1, 1, 1},
			{0, 1, 1, 1}, {1, 0, 0, 1}, {0, 1, 1, 1},
			{1, 0, 0, 1}, {1, 1, 0, 1}, {0, 1, 1, 1},
			{1, 1, 0, 1}, {0, 1, 1, 1}, {1, 1, 0, 1},
			{1, 0, 1, 1}, {1, 0, 1, 1}, {1, 1, 0, 1},
			{1, 1, 0, 1},
		},
		Indices: []uint32{
			0, 1, 4, 0, 4, 6, 0, 6, 12, 2, 3, 5,
			3, 5, 7, 3, 7, 9, 3, 9, 15, 4, 5, 7,
			4, 6, 7, 6, 8, 12, 8, 9, 10, 8, 10, 12,
			9, 10, 11, 9, 11, 15, 10, 12, 13, 11, 14, 15,
		},
	}
}
