package chomp

import (
	"math"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

// Each tile is drawn two terminal columns wide so the maze keeps its aspect.
const colsPerTile = 2

// HUD rows: title at the top, status line at the bottom.
const (
	hudTop    = 1
	hudBottom = 1
)

// viewport maps a window of the grid onto the screen.
type viewport struct {
	originX, originY int // first visible tile
	tilesW, tilesH   int // visible tiles
	offsetX, offsetY int // screen position of the first visible tile
}

// newViewport centers the view on the focus tile, clamped to the grid.
// Grids smaller than the screen are centered instead.
func newViewport(g *maze.Grid, screenW, screenH, focusX, focusY int) viewport {
	v := viewport{
		tilesW:  screenW / colsPerTile,
		tilesH:  screenH - hudTop - hudBottom,
		offsetY: hudTop,
	}

	if g.Width() <= v.tilesW {
		v.offsetX = (screenW - g.Width()*colsPerTile) / 2
		v.tilesW = g.Width()
	} else {
		v.originX = core.Clamp(focusX-v.tilesW/2, 0, g.Width()-v.tilesW)
	}

	if g.Height() <= v.tilesH {
		v.offsetY += (v.tilesH - g.Height()) / 2
		v.tilesH = g.Height()
	} else {
		v.originY = core.Clamp(focusY-v.tilesH/2, 0, g.Height()-v.tilesH)
	}

	return v
}

// Render draws the maze, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if g.level.Grid == nil || w < colsPerTile || h <= hudTop+hudBottom {
		return
	}

	grid := g.level.Grid
	cell := float64(grid.CellSize())
	pos := g.player.Position
	ptx, pty := grid.WorldToTile(pos.X, pos.Y)
	v := newViewport(grid, w, h, ptx, pty)

	g.renderMaze(dst, grid, v)

	// Half-tile horizontal precision from the two columns per tile.
	col := int(math.Floor((pos.X - float64(v.originX)*cell) * colsPerTile / cell))
	row := pty - v.originY
	if col >= 0 && col < v.tilesW*colsPerTile && row >= 0 && row < v.tilesH {
		frame := g.cycler.Frame()
		dst.SetColored(v.offsetX+col, v.offsetY+row, frame.FacingGlyph(g.player.Rotation), frame.Color)
	}

	title := g.Title() + " - " + g.level.Name
	dst.DrawTextColored(0, 0, title, core.ColorBrightWhite)
	dst.DrawTextColored(0, h-1, g.hud, core.ColorGray)

	if g.paused {
		dst.DrawTextCentered(h/2, " PAUSED - P to resume ")
	}
}

func (g *Game) renderMaze(dst *core.Screen, grid *maze.Grid, v viewport) {
	for ty := range v.tilesH {
		for tx := range v.tilesW {
			tile := grid.Tile(v.originX+tx, v.originY+ty)
			frame := g.sheet.MustBackground(tile.Kind)
			cell := core.NewRect(v.offsetX+tx*colsPerTile, v.offsetY+ty, colsPerTile, 1)
			dst.Fill(cell, frame.Glyph, frame.Color)
		}
	}
}
