package shapes

import (
	"github.com/chewxy/math32"
)

// GenSphere tessellates a sphere of the given radius centered at the origin
// as a latitude/longitude grid of (numSlices+1)x(numSlices+1) vertices. The
// angle step is 2π/numSlices for both parallels and meridians, so the pole
// rows are full rings of coincident vertices.
//
// numSlices must be at least 1 and small enough that every vertex index fits
// in a uint16 (numSlices < 255). For numSlices == 1 the v texture coordinate
// divides by zero and comes out as ±Inf or NaN.
func GenSphere(numSlices int, radius float32, want Attrib) *Shape {
	var numParallels int = numSlices
	var numVertices int = (numParallels + 1) * (numSlices + 1)
	var numIndices int = numParallels * numSlices * 6
	var angleStep float32 = 2 * math32.Pi / float32(numSlices)

	var shape *Shape = &Shape{NumIndices: numIndices}

	if want.Has(Positions) {
		shape.Vertices = make([]float32, positionSize*numVertices)
	}
	if want.Has(Normals) {
		shape.Normals = make([]float32, normalSize*numVertices)
	}
	if want.Has(TexCoords) {
		shape.TexCoords = make([]float32, texCoordSize*numVertices)
	}
	if want.Has(Indices) {
		shape.Indices = make([]uint16, numIndices)
	}

	tracer().Debugf("sphere: %d slices, %d vertices, %d indices, buffers %s",
		numSlices, numVertices, numIndices, want)

	for i := 0; i < numParallels+1; i++ {
		var sinTheta, cosTheta float32 = math32.Sin(angleStep * float32(i)), math32.Cos(angleStep * float32(i))

		for j := 0; j < numSlices+1; j++ {
			var vertex int = i*(numSlices+1) + j
			var sinPhi, cosPhi float32 = math32.Sin(angleStep * float32(j)), math32.Cos(angleStep * float32(j))

			// unit direction; equals position / radius for a sphere at the origin
			var nx, ny, nz float32 = sinTheta * sinPhi, cosTheta, sinTheta * cosPhi

			if shape.Vertices != nil {
				shape.Vertices[vertex*3+0] = radius * nx
				shape.Vertices[vertex*3+1] = radius * ny
				shape.Vertices[vertex*3+2] = radius * nz
			}

			if shape.Normals != nil {
				shape.Normals[vertex*3+0] = nx
				shape.Normals[vertex*3+1] = ny
				shape.Normals[vertex*3+2] = nz
			}

			if shape.TexCoords != nil {
				shape.TexCoords[vertex*2+0] = float32(j) / float32(numSlices)
				shape.TexCoords[vertex*2+1] = float32(1-i) / float32(numParallels-1)
			}
		}
	}

	if shape.Indices != nil {
		var current int

		for i := 0; i < numParallels; i++ {
			for j := 0; j < numSlices; j++ {
				var topLeft uint16 = uint16(i*(numSlices+1) + j)
				var bottomLeft uint16 = uint16((i+1)*(numSlices+1) + j)

				shape.Indices[current+0] = topLeft
				shape.Indices[current+1] = bottomLeft
				shape.Indices[current+2] = bottomLeft + 1

				shape.Indices[current+3] = topLeft
				shape.Indices[current+4] = bottomLeft + 1
				shape.Indices[current+5] = topLeft + 1

				current += 6
			}
		}
	}

	return shape
}
