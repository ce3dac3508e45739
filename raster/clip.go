package raster

// clipAxis clips a convex polygon against the plane factor*component <= w
// (Sutherland-Hodgman), carrying texture coordinates along.
func clipAxis(vertices []Vertex4D, uvs []Vertex2D, factor float32, axis int) ([]Vertex4D, []Vertex2D) {
	if len(vertices) == 0 {
		return nil, nil
	}

	var clipped []Vertex4D
	var clippedUVs []Vertex2D

	var previousVertex *Vertex4D = &vertices[len(vertices)-1]
	var previousUV *Vertex2D = &uvs[len(uvs)-1]
	var previousComponent float32 = factor * previousVertex.component(axis)
	var previousInside bool = previousComponent <= previousVertex.W

	for index := range vertices {
		var currentVertex *Vertex4D = &vertices[index]
		var currentUV *Vertex2D = &uvs[index]
		var currentComponent float32 = factor * currentVertex.component(axis)
		var currentInside bool = currentComponent <= currentVertex.W

		if currentInside != previousInside {
			var amount float32 = (previousVertex.W - previousComponent) /
				((previousVertex.W - previousComponent) - (currentVertex.W - currentComponent))

			clipped = append(clipped, previousVertex.Interpolate(currentVertex, amount))
			clippedUVs = append(clippedUVs, previousUV.Interpolate(currentUV, amount))
		}

		if currentInside {
			clipped = append(clipped, *currentVertex)
			clippedUVs = append(clippedUVs, *currentUV)
		}

		previousVertex, previousUV = currentVertex, currentUV
		previousComponent, previousInside = currentComponent, currentInside
	}

	return clipped, clippedUVs
}

// clipPolygon clips against all six planes of the clip volume. Polygons that
// are already inside are returned untouched.
func clipPolygon(vertices []Vertex4D, uvs []Vertex2D) ([]Vertex4D, []Vertex2D) {
	var inside bool = true
	for index := range vertices {
		if !vertices[index].InsideClipSpace() {
			inside = false
			break
		}
	}
	if inside {
		return vertices, uvs
	}

	// near plane first so nothing behind the eye reaches the x/y planes
	vertices, uvs = clipAxis(vertices, uvs, -1, Z)
	vertices, uvs = clipAxis(vertices, uvs, 1, Z)

	for axis := X; axis <= Y; axis++ {
		vertices, uvs = clipAxis(vertices, uvs, -1, axis)
		vertices, uvs = clipAxis(vertices, uvs, 1, axis)
	}

	if len(vertices) < 3 {
		return nil, nil
	}
	return vertices, uvs
}
