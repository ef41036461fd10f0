package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	gridColor       = color.RGBA{48, 48, 60, 255}
	lockedColor     = color.RGBA{140, 140, 150, 255}
	ghostColor      = color.RGBA{90, 90, 110, 255}

	shapeColors = [...]color.RGBA{
		engine.ShapeI: {0, 220, 230, 255},
		engine.ShapeO: {240, 220, 0, 255},
		engine.ShapeT: {170, 60, 220, 255},
		engine.ShapeS: {60, 210, 80, 255},
		engine.ShapeZ: {230, 60, 60, 255},
		engine.ShapeJ: {60, 90, 230, 255},
		engine.ShapeL: {240, 150, 30, 255},
	}
)

// Renderer draws a snapshot with the visible rows of the board on the left
// and the score panel to its right. Rows inside the ceiling are not drawn.
type Renderer struct {
	CellSize  int
	ShowGhost bool
	Margin    int
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{CellSize: cellSize, ShowGhost: true, Margin: 20}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap *engine.Snapshot) {
	screen.Fill(backgroundColor)

	visible := len(snap.Rows) - snap.Ceiling
	width := float32(snap.Columns * r.CellSize)
	height := float32(visible * r.CellSize)
	left, top := float32(r.Margin), float32(r.Margin)

	for row := snap.Ceiling; row < len(snap.Rows); row++ {
		for col := 0; col < snap.Columns; col++ {
			x := left + float32(col*r.CellSize)
			y := top + float32((row-snap.Ceiling)*r.CellSize)

			switch {
			case snap.PieceAt(col, row):
				r.cell(screen, x, y, shapeColors[snap.Piece.Shape])
			case snap.Occupied(col, row):
				r.cell(screen, x, y, lockedColor)
			case r.ShowGhost && !snap.GameOver && snap.GhostAt(col, row):
				r.cell(screen, x, y, ghostColor)
			default:
				vector.StrokeRect(screen, x, y, float32(r.CellSize), float32(r.CellSize), 1, gridColor, false)
			}
		}
	}
	vector.StrokeRect(screen, left-1, top-1, width+2, height+2, 2, color.White, false)

	panelX := int(left+width) + r.Margin
	ebitenutil.DebugPrintAt(screen, r.status(snap), panelX, r.Margin)

	previewY := float32(r.Margin + 120)
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, int(previewY))
	r.preview(screen, float32(panelX), previewY+16, snap.Next)
	if snap.Held != engine.ShapeNone {
		ebitenutil.DebugPrintAt(screen, "HOLD", panelX, int(previewY)+100)
		r.preview(screen, float32(panelX), previewY+116, snap.Held)
	}
}

func (r *Renderer) status(snap *engine.Snapshot) string {
	s := fmt.Sprintf("SCORE %d\nLEVEL %d\nLINES %d", snap.Score, snap.Level+1, snap.Lines)
	if snap.Combo > 1 {
		s += fmt.Sprintf("\nCOMBO x%d", snap.Combo)
	}
	switch {
	case snap.GameOver:
		s += "\n\nGAME OVER\nspace to play again"
	case snap.Paused:
		s += "\n\nPAUSED"
	}
	return s
}

func (r *Renderer) cell(screen *ebiten.Image, x, y float32, clr color.RGBA) {
	size := float32(r.CellSize)
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
}

// preview draws a shape in its spawn orientation at half the cell size.
func (r *Renderer) preview(screen *ebiten.Image, x, y float32, shape engine.Shape) {
	cells := engine.Lookup(shape).Cells
	size := float32(r.CellSize / 2)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if cells.At(col, row) {
				px := x + float32(col)*size
				py := y + float32(row)*size
				vector.DrawFilledRect(screen, px, py, size-1, size-1, shapeColors[shape], false)
			}
		}
	}
}
