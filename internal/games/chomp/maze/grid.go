// Package maze holds the static tile grid and the collision-resolved movement
// of entities through it. It has no rendering or platform dependencies.
package maze

import (
	"image"
	"image/color"
	"strings"

	"github.com/vovakirdan/chomp/internal/core"
)

// DefaultCellSize is the world size of one tile. Must be a power of two.
const DefaultCellSize = 16

// TileKind classifies a grid cell.
type TileKind int

const (
	Open TileKind = iota
	Wall
)

// TileKinds lists every kind, in declaration order.
var TileKinds = []TileKind{Open, Wall}

// String returns the lowercase name used in sprite sheets and level files.
func (k TileKind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// ParseTileKind is the inverse of TileKind.String.
func ParseTileKind(s string) (TileKind, bool) {
	for _, k := range TileKinds {
		if k.String() == s {
			return k, true
		}
	}
	return Open, false
}

// Tile is one immutable grid cell with its world-space rectangle.
type Tile struct {
	Kind TileKind
	Rect core.RectF
}

// Grid is an immutable 2D array of tiles indexed [x][y].
//
// Preconditions (not checked): width and height are positive and the cell
// size is a power of two.
type Grid struct {
	width    int
	height   int
	cellSize int
	tiles    [][]Tile
}

// NewGrid builds a grid from an explicit kinds array indexed [x][y].
// width is len(kinds) and height is len(kinds[0]).
func NewGrid(kinds [][]TileKind, cellSize int) *Grid {
	width := len(kinds)
	height := 0
	if width > 0 {
		height = len(kinds[0])
	}

	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		tiles:    make([][]Tile, width),
	}

	cell := float64(cellSize)
	for x := range width {
		g.tiles[x] = make([]Tile, height)
		for y := range height {
			g.tiles[x][y] = Tile{
				Kind: kinds[x][y],
				Rect: core.NewRectF(float64(x)*cell, float64(y)*cell, cell, cell),
			}
		}
	}
	return g
}

// NewOpenGrid builds a width x height grid with no walls.
func NewOpenGrid(width, height, cellSize int) *Grid {
	return NewGrid(makeKinds(width, height), cellSize)
}

// FromText builds a grid from a character map, one row per line.
// '#' is a wall, every other character is open. The width is taken from the
// first row; rows are not validated.
func FromText(text string, cellSize int) *Grid {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n")
	return FromRows(lines, cellSize)
}

// FromRows is FromText for pre-split rows.
func FromRows(rows []string, cellSize int) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	kinds := makeKinds(width, height)
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '#' {
				kinds[x][y] = Wall
			}
		}
	}
	return NewGrid(kinds, cellSize)
}

// WallColor is the exact pixel color that marks a wall in image maps.
var WallColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// FromImage builds a grid from an image where an opaque blue pixel marks a
// wall. One extra column and row beyond the image bounds are included; those
// are always open, whatever At returns outside the bounds.
func FromImage(img image.Image, cellSize int) *Grid {
	b := img.Bounds()
	width := b.Dx() + 1
	height := b.Dy() + 1

	kinds := makeKinds(width, height)
	for x := range b.Dx() {
		for y := range b.Dy() {
			if isWallPixel(img.At(b.Min.X+x, b.Min.Y+y)) {
				kinds[x][y] = Wall
			}
		}
	}
	return NewGrid(kinds, cellSize)
}

func isWallPixel(c color.Color) bool {
	// Compare in 8-bit space so paletted and NRGBA images match too.
	r, g, b, a := c.RGBA()
	return r>>8 == 0 && g>>8 == 0 && b>>8 == 255 && a>>8 == 255
}

// Diagonal builds the debug level: walls on every cell where x == y.
func Diagonal(width, height, cellSize int) *Grid {
	kinds := makeKinds(width, height)
	for x := range width {
		for y := range height {
			if x == y {
				kinds[x][y] = Wall
			}
		}
	}
	return NewGrid(kinds, cellSize)
}

func makeKinds(width, height int) [][]TileKind {
	kinds := make([][]TileKind, width)
	for x := range kinds {
		kinds[x] = make([]TileKind, height)
	}
	return kinds
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the world size of one tile.
func (g *Grid) CellSize() int {
	return g.cellSize
}

// WorldSize returns the world-space extent of the whole grid.
func (g *Grid) WorldSize() core.Vec2 {
	return core.V(float64(g.width*g.cellSize), float64(g.height*g.cellSize))
}

// Tile returns the tile at (x, y). Out-of-range coordinates are clamped to
// the nearest edge tile, so the lookup never fails.
func (g *Grid) Tile(x, y int) Tile {
	x = core.Clamp(x, 0, g.width-1)
	y = core.Clamp(y, 0, g.height-1)
	return g.tiles[x][y]
}

// WorldToTile maps a world position to tile coordinates by snapping down to
// the cell boundary. Only correct for power-of-two cell sizes.
func (g *Grid) WorldToTile(wx, wy float64) (int, int) {
	return g.worldAxisToTile(wx), g.worldAxisToTile(wy)
}

func (g *Grid) worldAxisToTile(w float64) int {
	snapped := int(w) &^ (g.cellSize - 1)
	if snapped == 0 {
		return 0
	}
	return snapped / g.cellSize
}

// TileToWorld returns the top-left world corner of a tile.
func (g *Grid) TileToWorld(tx, ty int) core.Vec2 {
	return core.V(float64(tx*g.cellSize), float64(ty*g.cellSize))
}

// TileCenter returns the world center of a tile.
func (g *Grid) TileCenter(tx, ty int) core.Vec2 {
	half := float64(g.cellSize) / 2
	return g.TileToWorld(tx, ty).Add(core.V(half, half))
}

// CountKind returns how many tiles have the given kind.
func (g *Grid) CountKind(k TileKind) int {
	n := 0
	for x := range g.width {
		for y := range g.height {
			if g.tiles[x][y].Kind == k {
				n++
			}
		}
	}
	return n
}
