package raster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/samuelscerri/escore/shapes"
	"github.com/samuelscerri/escore/transform"
)

// quad returns a z-constant square covering [-extent, extent]² with
// counter-clockwise triangles and texture coordinates spanning [0,1]².
func quad(extent, z float32) *shapes.Shape {
	return &shapes.Shape{
		Vertices: []float32{
			-extent, -extent, z,
			extent, -extent, z,
			extent, extent, z,
			-extent, extent, z,
		},
		TexCoords:  []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices:    []uint16{0, 1, 2, 0, 2, 3},
		NumIndices: 6,
	}
}

func solid(r, g, b float32) Program {
	return Program{Fragment: func(*Fragment) (float32, float32, float32) { return r, g, b }}
}

func assertFilled(t *testing.T, buffer *Buffer, r, g, b byte) {
	t.Helper()
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			pr, pg, pb := buffer.At(x, y)
			if !assert.Equalf(t, [3]byte{r, g, b}, [3]byte{pr, pg, pb}, "pixel (%d,%d)", x, y) {
				return
			}
		}
	}
}

func TestBufferClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(3, 2)
	require.Len(t, buffer.Pixels(), 3*2*4)

	buffer.Clear(1, 2, 3)
	assertFilled(t, buffer, 1, 2, 3)
	assert.Equal(t, byte(255), buffer.Frame[A])

	buffer.Set(2, 1, 9, 8, 7)
	r, g, b := buffer.At(2, 1)
	assert.Equal(t, [3]byte{9, 8, 7}, [3]byte{r, g, b})
}

func TestDrawCoversViewport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(8, 8)
	buffer.Clear(0, 0, 0)
	mvp := transform.Identity()

	stats, err := buffer.Draw(quad(1, 0), &mvp, nil, DefaultProgram)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Triangles)
	assert.Equal(t, 0, stats.Clipped)
	assert.Equal(t, 0, stats.Culled)
	assert.Equal(t, 2, stats.Rasterized)
	assert.Equal(t, 64, stats.Fragments)
	assertFilled(t, buffer, 255, 255, 255)
}

func TestDrawCullsBackFaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(8, 8)
	buffer.Clear(10, 10, 10)
	mvp := transform.Identity()

	shape := quad(1, 0)
	shape.Indices = []uint16{0, 2, 1, 0, 3, 2}

	stats, err := buffer.Draw(shape, &mvp, nil, DefaultProgram)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Culled)
	assert.Equal(t, 0, stats.Fragments)
	assertFilled(t, buffer, 10, 10, 10)
}

func TestDrawDepthTest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(8, 8)
	mvp := transform.Identity()

	_, err := buffer.Draw(quad(1, 0.5), &mvp, nil, solid(1, 0, 0))
	require.NoError(t, err)
	assertFilled(t, buffer, 255, 0, 0)

	_, err = buffer.Draw(quad(1, -0.5), &mvp, nil, solid(0, 1, 0))
	require.NoError(t, err)
	assertFilled(t, buffer, 0, 255, 0)

	stats, err := buffer.Draw(quad(1, 0.5), &mvp, nil, solid(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Fragments)
	assertFilled(t, buffer, 0, 255, 0)

	buffer.ClearDepth()
	_, err = buffer.Draw(quad(1, 0.5), &mvp, nil, solid(0, 0, 1))
	require.NoError(t, err)
	assertFilled(t, buffer, 0, 0, 255)
}

func TestDrawClipping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	mvp := transform.Identity()

	t.Run("outside", func(t *testing.T) {
		buffer := NewBuffer(8, 8)
		shape := &shapes.Shape{
			Vertices: []float32{2, 0, 0, 3, 0, 0, 2, 1, 0},
			Indices:  []uint16{0, 1, 2},
		}
		stats, err := buffer.Draw(shape, &mvp, nil, DefaultProgram)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Clipped)
		assert.Equal(t, 0, stats.Fragments)
	})

	t.Run("larger than viewport", func(t *testing.T) {
		buffer := NewBuffer(8, 8)
		stats, err := buffer.Draw(quad(3, 0), &mvp, nil, DefaultProgram)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Clipped)
		assert.GreaterOrEqual(t, stats.Rasterized, 2)
		assertFilled(t, buffer, 255, 255, 255)
	})

	t.Run("behind the eye", func(t *testing.T) {
		buffer := NewBuffer(8, 8)
		buffer.Clear(0, 0, 0)

		projection := transform.Identity()
		projection.Perspective(60, 1, 1, 20)

		cube := shapes.GenCube(1, shapes.Positions|shapes.Indices)
		model := transform.Identity()
		model.Translate(0, 0, 3) // +z is behind a camera looking down -z

		var mvpBehind transform.Matrix
		transform.Multiply(&mvpBehind, &model, &projection)

		stats, err := buffer.Draw(cube, &mvpBehind, nil, DefaultProgram)
		require.NoError(t, err)
		assert.Equal(t, 12, stats.Clipped)
		assertFilled(t, buffer, 0, 0, 0)
	})
}

func TestDrawPerspectiveCube(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(32, 32)
	buffer.Clear(0, 0, 0)

	model := transform.Identity()
	model.Translate(0, 0, -4)
	model.Rotate(30, 1, 1, 0)

	projection := transform.Identity()
	projection.Perspective(60, 1, 1, 20)

	var mvp transform.Matrix
	transform.Multiply(&mvp, &model, &projection)

	cube := shapes.GenCube(1, shapes.AllAttribs)
	stats, err := buffer.Draw(cube, &mvp, NewCheckerTexture(8, 2), DefaultProgram)
	require.NoError(t, err)

	// a closed convex mesh shows at most half of its faces
	assert.Equal(t, 12, stats.Triangles)
	assert.Equal(t, 0, stats.Clipped)
	assert.GreaterOrEqual(t, stats.Culled, 6)
	assert.Greater(t, stats.Fragments, 0)

	r, g, b := buffer.At(0, 0)
	assert.Equal(t, [3]byte{0, 0, 0}, [3]byte{r, g, b}, "corner must stay clear")
	assert.Less(t, buffer.Depth[16*32+16], float32(1), "center must be covered")
}

func TestDrawTextureCoordinates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})

	buffer := NewBuffer(8, 8)
	mvp := transform.Identity()

	_, err := buffer.Draw(quad(1, 0), &mvp, NewTexture(img), DefaultProgram)
	require.NoError(t, err)

	for y := 0; y < 8; y++ {
		r, _, b := buffer.At(1, y)
		assert.Equal(t, [2]byte{255, 0}, [2]byte{r, b})
		r, _, b = buffer.At(6, y)
		assert.Equal(t, [2]byte{0, 255}, [2]byte{r, b})
	}
}

func TestDrawVertexShader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(8, 8)
	buffer.Clear(0, 0, 0)
	mvp := transform.Identity()

	var seen []int
	program := Program{
		Vertex: func(position *Vertex4D, index int) {
			seen = append(seen, index)
			position.X = position.X*0.5 - 0.5 // squeeze into the left half
		},
		Fragment: BarycentricShader,
	}

	_, err := buffer.Draw(quad(1, 0), &mvp, nil, program)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)

	r, g, b := buffer.At(7, 4)
	assert.Equal(t, [3]byte{0, 0, 0}, [3]byte{r, g, b})
	r, g, b = buffer.At(1, 4)
	assert.NotEqual(t, [3]byte{0, 0, 0}, [3]byte{r, g, b})
}

func TestDrawErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	buffer := NewBuffer(4, 4)
	mvp := transform.Identity()

	_, err := buffer.Draw(shapes.GenCube(1, shapes.Indices), &mvp, nil, DefaultProgram)
	assert.ErrorIs(t, err, ErrMissingPositions)

	_, err = buffer.Draw(shapes.GenCube(1, shapes.Positions), &mvp, nil, DefaultProgram)
	assert.ErrorIs(t, err, ErrMissingIndices)

	shape := quad(1, 0)
	shape.Indices = []uint16{0, 1, 9}
	_, err = buffer.Draw(shape, &mvp, nil, DefaultProgram)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	short := &shapes.Shape{
		Vertices:   []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0},
		TexCoords:  []float32{0, 0},
		Indices:    []uint16{0, 1, 2},
		NumIndices: 3,
	}
	assert.NotPanics(t, func() {
		_, err = buffer.Draw(short, &mvp, nil, DefaultProgram)
	})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestClipAxis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	square := []Vertex4D{{-2, -2, 0, 1}, {2, -2, 0, 1}, {2, 2, 0, 1}, {-2, 2, 0, 1}}
	uvs := []Vertex2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	clipped, clippedUVs := clipAxis(square, uvs, 1, X)
	require.Len(t, clipped, 4)
	require.Len(t, clippedUVs, 4)
	for index, v := range clipped {
		assert.LessOrEqual(t, v.X, v.W)
		if v.X == 1 {
			assert.InDelta(t, 0.75, clippedUVs[index].X, 1e-6)
		}
	}

	clipped, _ = clipPolygon(square, uvs)
	require.Len(t, clipped, 4)
	for _, v := range clipped {
		assert.True(t, v.InsideClipSpace())
	}

	clipped, _ = clipAxis(nil, nil, 1, X)
	assert.Empty(t, clipped)
}

func TestTextureSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	var none *Texture
	assert.Equal(t, [4]float32{1, 1, 1, 1}, none.Sample(0.3, 0.7))

	checker := NewCheckerTexture(4, 2)
	// v = 1 is the top row, the top-left cell is white
	assert.Equal(t, [4]float32{1, 1, 1, 1}, checker.Sample(0.1, 0.9))
	assert.Equal(t, [4]float32{0, 0, 0, 1}, checker.Sample(0.6, 0.9))
	assert.Equal(t, checker.Sample(0.6, 0.9), checker.Sample(1.6, -0.1))
}

func TestLoadTexture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "texture.bmp")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(file, img))
	require.NoError(t, file.Close())

	texture, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 2, texture.Width)
	assert.Equal(t, 1, texture.Height)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, texture.Data)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "texture.xyz"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadTGATexture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	// uncompressed true-color, 2x1, 24 bits per pixel, BGR order
	data := []byte{
		0, 0, 2, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 1, 0,
		24, 0,
		0, 0, 255,
		255, 0, 0,
	}
	path := filepath.Join(t.TempDir(), "texture.TGA")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	texture, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 2, texture.Width)
	assert.Equal(t, 1, texture.Height)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, texture.Data)
}

func TestTileGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "es.raster")
	defer teardown()

	grid := newTileGrid(10, 5)
	covered := 0
	for x := range grid.tiles {
		for y := range grid.tiles[x] {
			covered += grid.tiles[x][y].Width * grid.tiles[x][y].Height
		}
	}
	assert.Equal(t, 50, covered)

	triangle := &Triangle{minX: 0, minY: 0, maxX: 9, maxY: 4}
	grid.Add(triangle)
	for x := range grid.tiles {
		for y := range grid.tiles[x] {
			assert.Len(t, grid.tiles[x][y].Triangles, 1)
		}
	}
}
