package raster

// VertexShader may adjust a clip-space position before clipping. index is
// the vertex's position in the shape buffers.
type VertexShader func(position *Vertex4D, index int)

// Fragment describes one covered pixel.
type Fragment struct {
	U, V        float32
	Texel       [4]float32
	Barycentric [3]float32
	Depth       float32
}

// FragmentShader returns the color of a fragment, each channel in [0, 1].
type FragmentShader func(fragment *Fragment) (r, g, b float32)

// Program pairs the two programmable stages. A nil stage uses the default:
// positions pass through unchanged and fragments take the texel color.
type Program struct {
	Vertex   VertexShader
	Fragment FragmentShader
}

var DefaultProgram = Program{Fragment: TexturedShader}

func TexturedShader(fragment *Fragment) (r, g, b float32) {
	return fragment.Texel[R], fragment.Texel[G], fragment.Texel[B]
}

// BarycentricShader colors each corner of a triangle red, green and blue.
func BarycentricShader(fragment *Fragment) (r, g, b float32) {
	return fragment.Barycentric[0], fragment.Barycentric[1], fragment.Barycentric[2]
}

func (program *Program) shade(fragment *Fragment) (r, g, b float32) {
	if program.Fragment == nil {
		return TexturedShader(fragment)
	}
	return program.Fragment(fragment)
}
