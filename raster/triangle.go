package raster

import (
	"github.com/chewxy/math32"
)

// Triangle is a screen-space triangle ready for scan conversion.
type Triangle struct {
	vertices [3]Vertex4D

	// texture coordinates divided by w, and 1/w, per corner
	at, bt, ct [3]float32

	vs1, vs2 Vertex4D
	span     float32

	minX, minY, maxX, maxY int
}

// newTriangle prepares a triangle whose vertices have already been through
// the perspective divide and viewport mapping. It reports false for back
// facing and zero-area triangles.
func newTriangle(v0, v1, v2 Vertex4D, uv0, uv1, uv2 Vertex2D, width, height int) (Triangle, bool) {
	var triangle Triangle = Triangle{vertices: [3]Vertex4D{v0, v1, v2}}

	triangle.vs1 = v1.Subtract(&v0)
	triangle.vs2 = v2.Subtract(&v0)
	triangle.span = triangle.vs1.CrossProduct(&triangle.vs2)

	// screen y points down, so counter-clockwise front faces have a negative span
	if triangle.span >= 0 {
		return triangle, false
	}

	var inverseW0, inverseW1, inverseW2 float32 = 1 / v0.W, 1 / v1.W, 1 / v2.W
	triangle.at = [3]float32{uv0.X * inverseW0, uv0.Y * inverseW0, inverseW0}
	triangle.bt = [3]float32{uv1.X * inverseW1, uv1.Y * inverseW1, inverseW1}
	triangle.ct = [3]float32{uv2.X * inverseW2, uv2.Y * inverseW2, inverseW2}

	triangle.minX, triangle.minY, triangle.maxX, triangle.maxY = triangle.bounds(width, height)

	return triangle, true
}

func (triangle *Triangle) bounds(width, height int) (minX, minY, maxX, maxY int) {
	var v *[3]Vertex4D = &triangle.vertices

	minX = clamp(int(math32.Floor(math32.Min(v[0].X, math32.Min(v[1].X, v[2].X)))), 0, width-1)
	minY = clamp(int(math32.Floor(math32.Min(v[0].Y, math32.Min(v[1].Y, v[2].Y)))), 0, height-1)
	maxX = clamp(int(math32.Ceil(math32.Max(v[0].X, math32.Max(v[1].X, v[2].X)))), 0, width-1)
	maxY = clamp(int(math32.Ceil(math32.Max(v[0].Y, math32.Max(v[1].Y, v[2].Y)))), 0, height-1)

	return
}

// Barycentric returns the weights of the pixel center (x, y) relative to
// vertices 0, 1 and 2.
func (triangle *Triangle) Barycentric(x, y int) (w, s, t float32) {
	var q Vertex4D = Vertex4D{
		X: float32(x) + 0.5 - triangle.vertices[0].X,
		Y: float32(y) + 0.5 - triangle.vertices[0].Y,
	}

	s = q.CrossProduct(&triangle.vs2) / triangle.span
	t = triangle.vs1.CrossProduct(&q) / triangle.span
	w = 1 - s - t

	return
}

// Inside reports whether the pixel center lies in the triangle, along with
// its barycentric weights.
func (triangle *Triangle) Inside(x, y int) (bool, float32, float32, float32) {
	var w, s, t float32 = triangle.Barycentric(x, y)

	return s >= 0 && t >= 0 && s+t <= 1, w, s, t
}

// Depth interpolates normalized depth linearly in screen space.
func (triangle *Triangle) Depth(w, s, t float32) float32 {
	return w*triangle.vertices[0].Z + s*triangle.vertices[1].Z + t*triangle.vertices[2].Z
}

// UV interpolates texture coordinates with perspective correction.
func (triangle *Triangle) UV(w, s, t float32) (u, v float32) {
	var inverseW float32 = w*triangle.at[2] + s*triangle.bt[2] + t*triangle.ct[2]

	u = (w*triangle.at[0] + s*triangle.bt[0] + t*triangle.ct[0]) / inverseW
	v = (w*triangle.at[1] + s*triangle.bt[1] + t*triangle.ct[1]) / inverseW

	return
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
