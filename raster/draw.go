// Package raster is a small software graphics pipeline. It takes shape
// buffers and a model-view-projection matrix, clips in homogeneous space,
// culls back faces and fills triangles into a color and depth buffer.
package raster

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/samuelscerri/escore/shapes"
	"github.com/samuelscerri/escore/transform"
)

func tracer() tracing.Trace {
	return tracing.Select("es.raster")
}

var (
	ErrMissingPositions = errors.New("raster: shape has no vertex positions")
	ErrMissingIndices   = errors.New("raster: shape has no indices")
	ErrIndexOutOfRange  = errors.New("raster: index out of range")
)

// Stats counts what happened to the triangles of one Draw call.
type Stats struct {
	Triangles  int // submitted
	Clipped    int // entirely outside the clip volume
	Culled     int // back facing or degenerate
	Rasterized int // screen-space triangles after clipping
	Fragments  int // pixels written
}

// Draw renders an indexed triangle list. mvp maps object space to clip space
// using row vectors. texture may be nil.
func (buffer *Buffer) Draw(shape *shapes.Shape, mvp *transform.Matrix, texture *Texture, program Program) (stats Stats, err error) {
	if shape.Vertices == nil {
		return stats, ErrMissingPositions
	}
	if shape.Indices == nil {
		return stats, ErrMissingIndices
	}

	var numVertices int = len(shape.Vertices) / 3
	if shape.TexCoords != nil && len(shape.TexCoords) < numVertices*2 {
		return stats, fmt.Errorf("%w: %d texture coordinates for %d vertices", ErrIndexOutOfRange, len(shape.TexCoords)/2, numVertices)
	}

	var homogeneous []float32 = make([]float32, numVertices*4)
	for v := 0; v < numVertices; v++ {
		copy(homogeneous[v*4:v*4+3], shape.Vertices[v*3:v*3+3])
		homogeneous[v*4+3] = 1
	}

	var clipSpace []float32 = make([]float32, len(homogeneous))
	mvp.TransformPoints(clipSpace, homogeneous)

	var positions []Vertex4D = make([]Vertex4D, numVertices)
	for v := range positions {
		positions[v] = Vertex4D{clipSpace[v*4], clipSpace[v*4+1], clipSpace[v*4+2], clipSpace[v*4+3]}
		if program.Vertex != nil {
			program.Vertex(&positions[v], v)
		}
	}

	var grid *TileGrid = newTileGrid(buffer.Width, buffer.Height)

	for tri := 0; tri+2 < len(shape.Indices); tri += 3 {
		stats.Triangles++

		var vertices [3]Vertex4D
		var uvs [3]Vertex2D

		for corner := 0; corner < 3; corner++ {
			var index int = int(shape.Indices[tri+corner])
			if index >= numVertices {
				return stats, fmt.Errorf("%w: %d at position %d, %d vertices", ErrIndexOutOfRange, index, tri+corner, numVertices)
			}

			vertices[corner] = positions[index]
			if shape.TexCoords != nil {
				uvs[corner] = Vertex2D{shape.TexCoords[index*2], shape.TexCoords[index*2+1]}
			}
		}

		polygon, polygonUVs := clipPolygon(vertices[:], uvs[:])
		if len(polygon) == 0 {
			stats.Clipped++
			continue
		}

		for index := range polygon {
			polygon[index].Normalize()
			polygon[index].ScreenSpace(buffer.Width, buffer.Height)
		}

		for index := 0; index < len(polygon)-2; index++ {
			triangle, front := newTriangle(polygon[0], polygon[index+1], polygon[index+2],
				polygonUVs[0], polygonUVs[index+1], polygonUVs[index+2], buffer.Width, buffer.Height)
			if !front {
				stats.Culled++
				continue
			}

			stats.Rasterized++
			grid.Add(&triangle)
		}
	}

	stats.Fragments = grid.Rasterize(buffer, texture, program)

	tracer().Debugf("draw: %d triangles, %d clipped, %d culled, %d rasterized, %d fragments",
		stats.Triangles, stats.Clipped, stats.Culled, stats.Rasterized, stats.Fragments)

	return stats, nil
}
