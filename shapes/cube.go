package shapes

// Faces are listed bottom, top, back, front, left, right. Each face has its
// own four vertices so normals and texture coordinates stay per-face.
var cubeVertices = [24 * 3]float32{
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, -0.5, -0.5,

	-0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
	0.5, 0.5, -0.5,

	-0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, -0.5, -0.5,

	-0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
	0.5, -0.5, 0.5,

	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,

	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	0.5, 0.5, -0.5,
}

var cubeNormals = [24 * 3]float32{
	0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0,
	0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0,
	0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1,
	0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
	-1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0,
	1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
}

var cubeTexCoords = [24 * 2]float32{
	0, 0, 0, 1, 1, 1, 1, 0,
	1, 0, 1, 1, 0, 1, 0, 0,
	0, 0, 0, 1, 1, 1, 1, 0,
	0, 0, 0, 1, 1, 1, 1, 0,
	0, 0, 0, 1, 1, 1, 1, 0,
	0, 0, 0, 1, 1, 1, 1, 0,
}

var cubeIndices = [36]uint16{
	0, 2, 1,
	0, 3, 2,
	4, 5, 6,
	4, 6, 7,
	8, 9, 10,
	8, 10, 11,
	12, 15, 14,
	12, 14, 13,
	16, 17, 18,
	16, 18, 19,
	20, 23, 22,
	20, 22, 21,
}

// GenCube returns a cube centered at the origin with edge length scale.
// NumIndices is only set when indices are requested.
func GenCube(scale float32, want Attrib) *Shape {
	var shape *Shape = &Shape{}

	if want.Has(Positions) {
		shape.Vertices = make([]float32, len(cubeVertices))
		for i, v := range cubeVertices {
			shape.Vertices[i] = v * scale
		}
	}

	if want.Has(Normals) {
		shape.Normals = make([]float32, len(cubeNormals))
		copy(shape.Normals, cubeNormals[:])
	}

	if want.Has(TexCoords) {
		shape.TexCoords = make([]float32, len(cubeTexCoords))
		copy(shape.TexCoords, cubeTexCoords[:])
	}

	if want.Has(Indices) {
		shape.Indices = make([]uint16, len(cubeIndices))
		copy(shape.Indices, cubeIndices[:])
		shape.NumIndices = len(cubeIndices)
	}

	tracer().Debugf("cube: scale %g, buffers %s", scale, want)

	return shape
}
