// Package shapes generates vertex, normal, texture coordinate and index
// buffers for simple parametric geometry. Triangles wind counter-clockwise
// when seen from the front.
package shapes

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("es.shapes")
}

// Attrib selects which buffers a generator fills in.
type Attrib uint8

const (
	Positions Attrib = 1 << iota
	Normals
	TexCoords
	Indices

	AllAttribs = Positions | Normals | TexCoords | Indices
)

// components per vertex for each stream
const (
	positionSize = 3
	normalSize   = 3
	texCoordSize = 2
)

func (a Attrib) Has(b Attrib) bool {
	return a&b == b
}

// Count returns the number of streams set in a.
func (a Attrib) Count() int {
	var count int
	for i := Positions; i <= Indices; i <<= 1 {
		if a&i != 0 {
			count++
		}
	}
	return count
}

func (a Attrib) String() string {
	if a == 0 {
		return "none"
	}

	var names []string
	if a.Has(Positions) {
		names = append(names, "positions")
	}
	if a.Has(Normals) {
		names = append(names, "normals")
	}
	if a.Has(TexCoords) {
		names = append(names, "texcoords")
	}
	if a.Has(Indices) {
		names = append(names, "indices")
	}
	return strings.Join(names, "|")
}

// Shape holds generated geometry. A buffer that was not requested is nil.
type Shape struct {
	Vertices  []float32 // x, y, z per vertex
	Normals   []float32 // x, y, z per vertex
	TexCoords []float32 // u, v per vertex
	Indices   []uint16  // three per triangle

	NumIndices int
}

// Attribs reports which buffers are present.
func (s *Shape) Attribs() (a Attrib) {
	if s.Vertices != nil {
		a |= Positions
	}
	if s.Normals != nil {
		a |= Normals
	}
	if s.TexCoords != nil {
		a |= TexCoords
	}
	if s.Indices != nil {
		a |= Indices
	}
	return
}

// NumVertices returns the vertex count derived from whichever vertex stream
// is present, or 0 if there is none.
func (s *Shape) NumVertices() int {
	switch {
	case s.Vertices != nil:
		return len(s.Vertices) / positionSize
	case s.Normals != nil:
		return len(s.Normals) / normalSize
	case s.TexCoords != nil:
		return len(s.TexCoords) / texCoordSize
	}
	return 0
}

// Interleave packs the requested vertex streams into one buffer, position
// first, then normal, then texture coordinate, and returns it together with
// the stride in floats. Streams that are requested but absent from the shape
// are skipped. The Indices bit is ignored.
func (s *Shape) Interleave(format Attrib) (data []float32, stride int) {
	var streams [][]float32
	var sizes []int

	if format.Has(Positions) && s.Vertices != nil {
		streams, sizes = append(streams, s.Vertices), append(sizes, positionSize)
	}
	if format.Has(Normals) && s.Normals != nil {
		streams, sizes = append(streams, s.Normals), append(sizes, normalSize)
	}
	if format.Has(TexCoords) && s.TexCoords != nil {
		streams, sizes = append(streams, s.TexCoords), append(sizes, texCoordSize)
	}

	for _, size := range sizes {
		stride += size
	}
	if stride == 0 {
		return nil, 0
	}

	var count int = s.NumVertices()
	data = make([]float32, 0, count*stride)

	for v := 0; v < count; v++ {
		for index, stream := range streams {
			data = append(data, stream[v*sizes[index]:(v+1)*sizes[index]]...)
		}
	}

	return data, stride
}
