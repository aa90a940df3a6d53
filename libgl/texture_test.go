package libgl_test

import (
	"image"
	"image/color"
	"testing"

	"opengl-sandbox/libgl"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func TestCheckerboard(t *testing.T) {
	img := libgl.Checkerboard(64, 8, white, black)

	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("checkerboard should be 64 wide but was %d", got)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("top-left cell should be white but was %v", got)
	}
	if got := img.RGBAAt(8, 0); got != black {
		t.Errorf("second cell should be black but was %v", got)
	}
	if got := img.RGBAAt(8, 8); got != white {
		t.Errorf("cells should alternate per row, was %v", got)
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, white)
	img.SetRGBA(1, 2, black)

	flipped := libgl.FlipVertical(img)

	if got := flipped.RGBAAt(0, 2); got != white {
		t.Errorf("top-left pixel should move to the bottom row, was %v", got)
	}
	if got := flipped.RGBAAt(1, 0); got != black {
		t.Errorf("bottom-right pixel should move to the top row, was %v", got)
	}
}

func TestScaleToPow2(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	scaled := libgl.ScaleToPow2(img)
	if w, h := scaled.Bounds().Dx(), scaled.Bounds().Dy(); w != 128 || h != 64 {
		t.Errorf("100x60 should scale to 128x64 but was %dx%d", w, h)
	}

	pow2 := image.NewRGBA(image.Rect(0, 0, 256, 128))
	if got := libgl.ScaleToPow2(pow2); got != pow2 {
		t.Error("power-of-two images should pass through unchanged")
	}
}

func TestCubeMeshData(t *testing.T) {
	cube := libgl.CubeMeshData()

	if got := len(cube.Positions); got != 24 {
		t.Errorf("cube should have 24 vertices but had %d", got)
	}
	if len(cube.Normals) != 24 || len(cube.TexCoords) != 24 || len(cube.Colors) != 24 {
		t.Error("every cube vertex needs a normal, texcoord and color")
	}
	if got := len(cube.Indices); got != 36 {
		t.Errorf("cube should have 36 indices but had %d", got)
	}

	for i, n := range cube.Normals {
		if l := n.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("normal %d should be unit length, was %v", i, l)
		}
	}
	for i, idx := range cube.Indices {
		if idx >= 24 {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
	for i, p := range cube.Positions {
		for _, c := range p {
			if c != 1 && c != -1 {
				t.Errorf("vertex %d should sit on a cube corner, was %v", i, p)
			}
		}
	}
}
