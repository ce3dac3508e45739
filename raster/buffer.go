package raster

import (
	"github.com/chewxy/math32"
)

const (
	R = 0
	G = 1
	B = 2
	A = 3

	BytesPerPixel = 4
)

// Buffer is an RGBA8 color buffer with a matching depth buffer.
type Buffer struct {
	Frame []byte
	Depth []float32

	Width, Height int
	Pitch         int
}

// NewBuffer allocates a cleared buffer. width and height must be positive.
func NewBuffer(width, height int) *Buffer {
	var buffer *Buffer = &Buffer{
		Frame:  make([]byte, width*height*BytesPerPixel),
		Depth:  make([]float32, width*height),
		Width:  width,
		Height: height,
		Pitch:  width * BytesPerPixel,
	}
	buffer.ClearDepth()

	return buffer
}

func (buffer *Buffer) Set(x, y int, r, g, b byte) {
	var position int = y*buffer.Pitch + x*BytesPerPixel

	buffer.Frame[position+R] = r
	buffer.Frame[position+G] = g
	buffer.Frame[position+B] = b
	buffer.Frame[position+A] = 255
}

func (buffer *Buffer) At(x, y int) (r, g, b byte) {
	var position int = y*buffer.Pitch + x*BytesPerPixel

	return buffer.Frame[position+R], buffer.Frame[position+G], buffer.Frame[position+B]
}

// Clear fills the color buffer with an opaque color.
func (buffer *Buffer) Clear(r, g, b byte) {
	for position := 0; position < len(buffer.Frame); position += BytesPerPixel {
		buffer.Frame[position+R] = r
		buffer.Frame[position+G] = g
		buffer.Frame[position+B] = b
		buffer.Frame[position+A] = 255
	}
}

// ClearDepth resets every depth sample to the far limit.
func (buffer *Buffer) ClearDepth() {
	for position := range buffer.Depth {
		buffer.Depth[position] = math32.MaxFloat32
	}
}

// Pixels returns the color buffer, suitable for ebiten.Image.WritePixels.
func (buffer *Buffer) Pixels() []byte {
	return buffer.Frame
}

func toByte(value float32) byte {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 255
	}
	return byte(value*255 + 0.5)
}
