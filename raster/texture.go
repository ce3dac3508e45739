package raster

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type Texture struct {
	Width, Height int

	Data []byte
}

var ErrUnknownFormat = errors.New("raster: unknown texture format")

// TGA files carry no magic number, so the decoder is picked by file
// extension instead of sniffing.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".tga":  tga.Decode,
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// LoadTexture decodes a TGA, PNG, JPEG, BMP, TIFF or WebP file, chosen by
// extension.
func LoadTexture(path string) (*Texture, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}

	tracer().Debugf("texture %s: %dx%d", path, img.Bounds().Dx(), img.Bounds().Dy())

	return NewTexture(img), nil
}

// NewTexture copies an image into an RGBA8 texture.
func NewTexture(img image.Image) *Texture {
	var bounds image.Rectangle = img.Bounds()
	var texture *Texture = &Texture{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   make([]byte, 0, bounds.Dx()*bounds.Dy()*BytesPerPixel),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			texture.Data = append(texture.Data, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	return texture
}

// NewCheckerTexture builds a size x size black and white checkerboard with
// cells squares per side.
func NewCheckerTexture(size, cells int) *Texture {
	var texture *Texture = &Texture{Width: size, Height: size, Data: make([]byte, size*size*BytesPerPixel)}
	var cellSize int = size / cells
	if cellSize == 0 {
		cellSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var value byte
			if (x/cellSize+y/cellSize)%2 == 0 {
				value = 255
			}

			var position int = (y*size + x) * BytesPerPixel
			texture.Data[position+R] = value
			texture.Data[position+G] = value
			texture.Data[position+B] = value
			texture.Data[position+A] = 255
		}
	}

	return texture
}

// Sample returns the nearest texel, RGBA in [0, 1], for texture coordinates
// that wrap on both axes. v = 0 is the bottom row. A nil texture samples
// white.
func (texture *Texture) Sample(u, v float32) [4]float32 {
	if texture == nil || texture.Width == 0 || texture.Height == 0 {
		return [4]float32{1, 1, 1, 1}
	}

	u -= math32.Floor(u)
	v -= math32.Floor(v)

	var tx int = clamp(int(u*float32(texture.Width)), 0, texture.Width-1)
	var ty int = clamp(int((1-v)*float32(texture.Height)), 0, texture.Height-1)
	var position int = (ty*texture.Width + tx) * BytesPerPixel

	return [4]float32{
		float32(texture.Data[position+R]) / 255,
		float32(texture.Data[position+G]) / 255,
		float32(texture.Data[position+B]) / 255,
		float32(texture.Data[position+A]) / 255,
	}
}
