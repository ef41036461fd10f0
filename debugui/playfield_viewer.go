package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

var (
	lockedColor  = imgui.NewVec4(0.55, 0.55, 0.6, 1)
	pieceColor   = imgui.NewVec4(0.2, 0.6, 0.8, 1)
	ghostColor   = imgui.NewVec4(0.2, 0.6, 0.8, 0.3)
	emptyColor   = imgui.NewVec4(0.1, 0.1, 0.12, 1)
	ceilingColor = imgui.NewVec4(0.3, 0.1, 0.1, 1)
)

func NewPlayfieldViewer(cellSize float32) *PlayfieldViewer {
	return &PlayfieldViewer{
		cellSize:  cellSize,
		showGhost: true,
	}
}

func (pv *PlayfieldViewer) Render(scheduler *loop.Scheduler, _ float32) {
	if !imgui.BeginV("Playfield", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := scheduler.Game().Snapshot()

	imgui.Checkbox("Ghost", &pv.showGhost)
	imgui.SameLine()
	imgui.Checkbox("Spawn band", &pv.showCeiling)

	first := snap.Ceiling
	if pv.showCeiling {
		first = 0
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for row := first; row < len(snap.Rows); row++ {
		for col := range snap.Columns {
			x := origin.X + float32(col)*pv.cellSize
			y := origin.Y + float32(row-first)*pv.cellSize
			color := imgui.ColorU32Vec4(pv.cellColor(&snap, col, row))
			drawList.AddRectFilled(imgui.NewVec2(x, y), imgui.NewVec2(x+pv.cellSize-1, y+pv.cellSize-1), color)
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(snap.Columns)*pv.cellSize, float32(len(snap.Rows)-first)*pv.cellSize))

	if imgui.TreeNodeStr("Rows") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Mask")
			imgui.TableSetupColumn("Cells")
			imgui.TableHeadersRow()

			for row := first; row < len(snap.Rows); row++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%0*X", (snap.Columns+3)/4, snap.Rows[row]))
				imgui.TableNextColumn()
				imgui.Text(formatRow(&snap, row, pv.showGhost))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (pv *PlayfieldViewer) cellColor(snap *engine.Snapshot, col, row int) imgui.Vec4 {
	switch {
	case snap.PieceAt(col, row):
		return pieceColor
	case snap.Occupied(col, row):
		return lockedColor
	case pv.showGhost && snap.GhostAt(col, row):
		return ghostColor
	case row < snap.Ceiling:
		return ceilingColor
	}
	return emptyColor
}
