package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	lockedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault

	shapeStyles = [...]tcell.Style{
		engine.ShapeNone: tcell.StyleDefault,
		engine.ShapeI:    tcell.StyleDefault.Foreground(tcell.ColorAqua),
		engine.ShapeO:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
		engine.ShapeT:    tcell.StyleDefault.Foreground(tcell.ColorPurple),
		engine.ShapeS:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
		engine.ShapeZ:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		engine.ShapeJ:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		engine.ShapeL:    tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}
)

// TerminalRenderer draws the visible rows of the board two columns per
// cell, with the score panel to the right. It runs last in the frame.
type TerminalRenderer struct {
	Screen    tcell.Screen
	ShowGhost bool
}

func (r *TerminalRenderer) Execute(frame *loop.UpdateFrame) {
	snap := frame.Game.Snapshot()
	r.Screen.Clear()
	r.draw(&snap)
	r.Screen.Show()
}

func (r *TerminalRenderer) draw(snap *engine.Snapshot) {
	visible := len(snap.Rows) - snap.Ceiling
	right := 2*snap.Columns + 1

	for y := 0; y < visible; y++ {
		r.Screen.SetContent(0, y, '|', nil, borderStyle)
		r.Screen.SetContent(right, y, '|', nil, borderStyle)
	}
	for x := 0; x <= right; x++ {
		r.Screen.SetContent(x, visible, '-', nil, borderStyle)
	}

	for row := snap.Ceiling; row < len(snap.Rows); row++ {
		y := row - snap.Ceiling
		for col := 0; col < snap.Columns; col++ {
			x := 1 + 2*col
			switch {
			case snap.PieceAt(col, row):
				r.pair(x, y, '█', '█', shapeStyles[snap.Piece.Shape])
			case snap.Occupied(col, row):
				r.pair(x, y, '▓', '▓', lockedStyle)
			case r.ShowGhost && !snap.GameOver && snap.GhostAt(col, row):
				r.pair(x, y, '░', '░', ghostStyle)
			default:
				r.pair(x, y, ' ', '.', emptyStyle)
			}
		}
	}

	panel := right + 3
	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level+1),
		fmt.Sprintf("LINES %d", snap.Lines),
		"",
		"NEXT " + snap.Next.String(),
		"HOLD " + snap.Held.String(),
	}
	if snap.Combo > 1 {
		lines = append(lines, fmt.Sprintf("COMBO x%d", snap.Combo))
	}
	switch {
	case snap.GameOver:
		lines = append(lines, "", "GAME OVER", "space to play again")
	case snap.Paused:
		lines = append(lines, "", "PAUSED")
	}
	for i, line := range lines {
		r.text(panel, i, line)
	}
}

func (r *TerminalRenderer) pair(x, y int, left, right rune, style tcell.Style) {
	r.Screen.SetContent(x, y, left, nil, style)
	r.Screen.SetContent(x+1, y, right, nil, style)
}

func (r *TerminalRenderer) text(x, y int, s string) {
	for _, ch := range s {
		r.Screen.SetContent(x, y, ch, nil, textStyle)
		x++
	}
}
