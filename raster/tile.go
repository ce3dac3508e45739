package raster

const tileColumns, tileRows = 4, 2

// Tile is a rectangle of the frame with the triangles that overlap it.
type Tile struct {
	X, Y, Width, Height int

	Triangles []*Triangle
}

// TileGrid splits the frame into tileColumns x tileRows tiles.
type TileGrid struct {
	tiles                 [tileColumns][tileRows]Tile
	tileWidth, tileHeight int
}

func newTileGrid(width, height int) *TileGrid {
	var grid *TileGrid = &TileGrid{
		tileWidth:  (width + tileColumns - 1) / tileColumns,
		tileHeight: (height + tileRows - 1) / tileRows,
	}

	for x := range grid.tiles {
		for y := range grid.tiles[x] {
			var tile *Tile = &grid.tiles[x][y]
			tile.X, tile.Y = x*grid.tileWidth, y*grid.tileHeight
			tile.Width = clamp(width-tile.X, 0, grid.tileWidth)
			tile.Height = clamp(height-tile.Y, 0, grid.tileHeight)
		}
	}

	return grid
}

// Add bins a triangle into every tile its bounding box touches.
func (grid *TileGrid) Add(triangle *Triangle) {
	var minX int = clamp(triangle.minX/grid.tileWidth, 0, tileColumns-1)
	var maxX int = clamp(triangle.maxX/grid.tileWidth, 0, tileColumns-1)
	var minY int = clamp(triangle.minY/grid.tileHeight, 0, tileRows-1)
	var maxY int = clamp(triangle.maxY/grid.tileHeight, 0, tileRows-1)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			grid.tiles[x][y].Triangles = append(grid.tiles[x][y].Triangles, triangle)
		}
	}
}

// Rasterize scan-converts the tile's triangles, restricted to the tile.
func (tile *Tile) Rasterize(buffer *Buffer, texture *Texture, program Program) (fragments int) {
	if tile.Width == 0 || tile.Height == 0 {
		tile.Triangles = nil
		return 0
	}

	for _, triangle := range tile.Triangles {
		var minX int = clamp(triangle.minX, tile.X, tile.X+tile.Width-1)
		var maxX int = clamp(triangle.maxX, tile.X, tile.X+tile.Width-1)
		var minY int = clamp(triangle.minY, tile.Y, tile.Y+tile.Height-1)
		var maxY int = clamp(triangle.maxY, tile.Y, tile.Y+tile.Height-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				inside, w, s, t := triangle.Inside(x, y)
				if !inside {
					continue
				}

				var depth float32 = triangle.Depth(w, s, t)
				var position int = y*buffer.Width + x

				if depth >= buffer.Depth[position] {
					continue
				}

				var fragment Fragment = Fragment{Barycentric: [3]float32{w, s, t}, Depth: depth}
				fragment.U, fragment.V = triangle.UV(w, s, t)
				fragment.Texel = texture.Sample(fragment.U, fragment.V)

				r, g, b := program.shade(&fragment)

				buffer.Depth[position] = depth
				buffer.Set(x, y, toByte(r), toByte(g), toByte(b))
				fragments++
			}
		}
	}

	tile.Triangles = nil

	return fragments
}

func (grid *TileGrid) Rasterize(buffer *Buffer, texture *Texture, program Program) (fragments int) {
	for x := range grid.tiles {
		for y := range grid.tiles[x] {
			fragments += grid.tiles[x][y].Rasterize(buffer, texture, program)
		}
	}
	return
}
