package raster

const (
	X = 0
	Y = 1
	Z = 2
)

// Vertex2D is a texture coordinate pair.
type Vertex2D struct {
	X, Y float32
}

// Vertex4D is a homogeneous position. Before the perspective divide it is in
// clip space; afterwards X and Y are pixels and Z is normalized depth.
type Vertex4D struct {
	X, Y, Z, W float32
}

func (v1 *Vertex4D) component(axis int) float32 {
	switch axis {
	case X:
		return v1.X
	case Y:
		return v1.Y
	default:
		return v1.Z
	}
}

// InsideClipSpace reports whether -w <= x, y, z <= w.
func (v1 *Vertex4D) InsideClipSpace() bool {
	return v1.X >= -v1.W && v1.X <= v1.W &&
		v1.Y >= -v1.W && v1.Y <= v1.W &&
		v1.Z >= -v1.W && v1.Z <= v1.W
}

func (v1 *Vertex4D) Interpolate(v2 *Vertex4D, factor float32) Vertex4D {
	return Vertex4D{
		v1.X*(1-factor) + v2.X*factor,
		v1.Y*(1-factor) + v2.Y*factor,
		v1.Z*(1-factor) + v2.Z*factor,
		v1.W*(1-factor) + v2.W*factor,
	}
}

func (v1 *Vertex2D) Interpolate(v2 *Vertex2D, factor float32) Vertex2D {
	return Vertex2D{
		v1.X*(1-factor) + v2.X*factor,
		v1.Y*(1-factor) + v2.Y*factor,
	}
}

// Normalize performs the perspective divide. W is kept for perspective
// correct interpolation.
func (v1 *Vertex4D) Normalize() {
	var homogeneous float32 = 1 / v1.W

	v1.X *= homogeneous
	v1.Y *= homogeneous
	v1.Z *= homogeneous
}

// ScreenSpace maps normalized device coordinates to pixels, y pointing down.
func (v1 *Vertex4D) ScreenSpace(width, height int) {
	v1.X = (v1.X + 1) * float32(width) / 2
	v1.Y = (-v1.Y + 1) * float32(height) / 2
}

func (v1 *Vertex4D) Subtract(v2 *Vertex4D) Vertex4D {
	return Vertex4D{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z, v1.W - v2.W}
}

// CrossProduct is the z component of the 2D cross product.
func (v1 *Vertex4D) CrossProduct(v2 *Vertex4D) float32 {
	return v1.X*v2.Y - v1.Y*v2.X
}
