package libgl

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// decoders for the texture assets
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/gl/v3.3-core/gl"
	xdraw "golang.org/x/image/draw"

	"opengl-sandbox/libutil"
)

type Texture struct {
	glId   uint32
	width  int
	height int
}

// LoadTexture decodes the image at path and uploads it. flipVertically flips
// the image so its bottom row maps to texture coordinate v=0.
func LoadTexture(path string, flipVertically bool) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode texture %v: %w", path, err)
	}
	return NewTexture(img, flipVertically), nil
}

// NewTexture uploads img as a mipmapped, repeating 2D texture. Images with
// non-power-of-two dimensions are scaled up first.
func NewTexture(img image.Image, flipVertically bool) *Texture {
	rgba := toRGBA(img)
	if flipVertically {
		rgba = flipVertical(rgba)
	}
	rgba = scaleToPow2(rgba)

	bounds := rgba.Bounds()
	tex := &Texture{width: bounds.Dx(), height: bounds.Dy()}

	gl.GenTextures(1, &tex.glId)
	gl.BindTexture(gl.TEXTURE_2D, tex.glId)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.width), int32(tex.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

func (tex *Texture) Id() uint32 {
	return tex.glId
}

// Bind makes the texture current on the given texture unit.
func (tex *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex.glId)
}

func (tex *Texture) Delete() {
	gl.DeleteTextures(1, &tex.glId)
	tex.glId = 0
}

// Checkerboard builds a cells x cells checker pattern, size pixels on each
// side. It stands in for texture assets that are missing on disk.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	xdraw.Copy(rgba, img.Bounds().Min, img, img.Bounds(), xdraw.Src, nil)
	return rgba
}

func flipVertical(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	flipped := image.NewRGBA(bounds)
	rowLen := bounds.Dx() * 4
	for y := 0; y < bounds.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := flipped.Pix[(bounds.Dy()-1-y)*flipped.Stride:]
		copy(dst, src)
	}
	return flipped
}

func scaleToPow2(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if libutil.IsPow2(w) && libutil.IsPow2(h) {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, libutil.NextPow2(w), libutil.NextPow2(h)))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
	return scaled
}
