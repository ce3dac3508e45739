// Package transform builds and composes 4x4 matrices in place.
//
// Matrices are row-major and use the row-vector convention: a point is a row
// [x y z 1] multiplied on the left, so translation lives in row 3 and
// composing "A then B" is A * B. Every operation mutates its receiver.
package transform

import (
	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
	"github.com/viterin/vek/vek32"
)

func tracer() tracing.Trace {
	return tracing.Select("es.transform")
}

type Matrix [4][4]float32

// Identity returns a new identity matrix.
func Identity() Matrix {
	var m Matrix
	m.LoadIdentity()

	return m
}

func (m *Matrix) LoadIdentity() {
	for i := range m {
		for j := range m[i] {
			if i == j {
				m[i][j] = 1
			} else {
				m[i][j] = 0
			}
		}
	}
}

// Scale multiplies rows 0, 1 and 2 by sx, sy and sz.
func (m *Matrix) Scale(sx, sy, sz float32) {
	var factors [3]float32 = [3]float32{sx, sy, sz}

	for row, factor := range factors {
		for col := range m[row] {
			m[row][col] *= factor
		}
	}
}

// Translate adds tx*row0 + ty*row1 + tz*row2 into row 3.
func (m *Matrix) Translate(tx, ty, tz float32) {
	for col := 0; col < 4; col++ {
		m[3][col] += m[0][col]*tx + m[1][col]*ty + m[2][col]*tz
	}
}

// Rotate left-multiplies a rotation of angle degrees about the axis (x, y, z).
// A zero-length axis leaves m unchanged.
func (m *Matrix) Rotate(angle, x, y, z float32) {
	var magnitude float32 = math32.Sqrt(x*x + y*y + z*z)

	if magnitude <= 0 {
		tracer().Debugf("rotate: zero axis, matrix unchanged")
		return
	}

	var radians float32 = angle * math32.Pi / 180
	var sinAngle, cosAngle float32 = math32.Sin(radians), math32.Cos(radians)

	x, y, z = x/magnitude, y/magnitude, z/magnitude

	var xx, yy, zz = x * x, y * y, z * z
	var xy, yz, zx = x * y, y * z, z * x
	var xs, ys, zs = x * sinAngle, y * sinAngle, z * sinAngle
	var oneMinusCos float32 = 1 - cosAngle

	var rotation Matrix = Matrix{
		{oneMinusCos*xx + cosAngle, oneMinusCos*xy - zs, oneMinusCos*zx + ys, 0},
		{oneMinusCos*xy + zs, oneMinusCos*yy + cosAngle, oneMinusCos*yz - xs, 0},
		{oneMinusCos*zx - ys, oneMinusCos*yz + xs, oneMinusCos*zz + cosAngle, 0},
		{0, 0, 0, 1},
	}

	Multiply(m, &rotation, m)
}

// Frustum left-multiplies an off-axis perspective projection. Non-positive
// near or far planes and empty extents leave m unchanged.
func (m *Matrix) Frustum(left, right, bottom, top, near, far float32) {
	var deltaX, deltaY, deltaZ float32 = right - left, top - bottom, far - near

	if near <= 0 || far <= 0 || deltaX <= 0 || deltaY <= 0 || deltaZ <= 0 {
		tracer().Debugf("frustum: degenerate volume l=%g r=%g b=%g t=%g n=%g f=%g, matrix unchanged",
			left, right, bottom, top, near, far)
		return
	}

	var frustum Matrix = Matrix{
		{2 * near / deltaX, 0, 0, 0},
		{0, 2 * near / deltaY, 0, 0},
		{(right + left) / deltaX, (top + bottom) / deltaY, -(near + far) / deltaZ, -1},
		{0, 0, -2 * near * far / deltaZ, 0},
	}

	Multiply(m, &frustum, m)
}

// Perspective derives a symmetric frustum from a vertical field of view in
// degrees and an aspect ratio (width / height).
func (m *Matrix) Perspective(fovy, aspect, near, far float32) {
	var frustumH float32 = math32.Tan(fovy/360*math32.Pi) * near
	var frustumW float32 = frustumH * aspect

	m.Frustum(-frustumW, frustumW, -frustumH, frustumH, near, far)
}

// Ortho left-multiplies an orthographic projection. An extent of exactly zero
// leaves m unchanged.
func (m *Matrix) Ortho(left, right, bottom, top, near, far float32) {
	var deltaX, deltaY, deltaZ float32 = right - left, top - bottom, far - near

	if deltaX == 0 || deltaY == 0 || deltaZ == 0 {
		tracer().Debugf("ortho: zero extent, matrix unchanged")
		return
	}

	var ortho Matrix = Identity()
	ortho[0][0] = 2 / deltaX
	ortho[3][0] = -(right + left) / deltaX
	ortho[1][1] = 2 / deltaY
	ortho[3][1] = -(top + bottom) / deltaY
	ortho[2][2] = -2 / deltaZ
	ortho[3][2] = -(near + far) / deltaZ

	Multiply(m, &ortho, m)
}

// Multiply stores a * b in result. result may alias a or b.
func Multiply(result, a, b *Matrix) {
	var flatA, flatB [16]float32 = a.Flat(), b.Flat()
	var product []float32 = vek32.Mat4Mul(flatA[:], flatB[:])

	for i := range result {
		copy(result[i][:], product[i*4:i*4+4])
	}
}

// Flat returns the matrix row by row: element (i, j) is at index i*4+j.
func (m *Matrix) Flat() (flat [16]float32) {
	for i := range m {
		copy(flat[i*4:i*4+4], m[i][:])
	}

	return
}

// TransformPoints multiplies each homogeneous row vector in src (4 floats per
// point) by m and writes the results to dst, which must be at least as long as
// src. It returns the number of points transformed.
func (m *Matrix) TransformPoints(dst, src []float32) int {
	var count int = len(src) / 4
	if count == 0 {
		return 0
	}

	var flat [16]float32 = m.Flat()
	copy(dst, vek32.MatMul(src[:count*4], flat[:], 4))

	return count
}
