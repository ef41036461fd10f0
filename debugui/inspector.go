package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

func NewGameInspector() *GameInspector {
	return &GameInspector{}
}

func (gi *GameInspector) Render(scheduler *loop.Scheduler, _ float32) {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := scheduler.Game()
	snap := game.Snapshot()

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d (gravity %.2f rows/s)", snap.Level+1, engine.LevelAt(snap.Level).Gravity))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Combo: %d", snap.Combo))
	imgui.Text(fmt.Sprintf("Held: %s  Next: %s", snap.Held, snap.Next))

	switch {
	case snap.GameOver:
		imgui.Text("State: game over")
	case snap.Paused:
		imgui.Text("State: paused")
	default:
		imgui.Text(fmt.Sprintf("State: %s", snap.Piece.LockState()))
	}
	imgui.Separator()

	if imgui.TreeNodeStr("Piece") {
		renderStruct(reflect.ValueOf(snap.Piece))
		imgui.Checkbox("Show cells", &gi.showCells)
		if gi.showCells {
			for _, line := range strings.Split(strings.TrimSuffix(snap.Piece.Cells.String(), "\n"), "\n") {
				imgui.Text(line)
			}
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Last Placement") {
		renderStruct(reflect.ValueOf(game.LastPlacement()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Config") {
		renderStruct(reflect.ValueOf(game.Config()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Bag") {
		bag := game.Bag()
		imgui.Text(fmt.Sprintf("Cursor: %d / %d", bag.Cursor(), engine.ShapeCount))
		for _, shape := range bag.Remaining() {
			imgui.BulletText(shape.String())
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Statistics") {
		renderGameStats(game.Stats())
		imgui.TreePop()
	}

	imgui.End()
}

func renderStruct(val reflect.Value) {
	for _, field := range inspectorFields.Fields(val.Type()) {
		if field.Nested {
			if imgui.TreeNodeStr(field.Name) {
				renderStruct(val.Field(field.Index))
				imgui.TreePop()
			}
			continue
		}
		imgui.Text(field.Format(val))
	}
}

func renderGameStats(stats *engine.Stats) {
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces()))
	imgui.Text(fmt.Sprintf("Holds: %d  Hard drops: %d  Max combo: %d", stats.Holds, stats.HardDrops, stats.MaxCombo))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()

		for _, shape := range engine.Shapes() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(shape.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Spawned(shape)))
		}

		imgui.EndTable()
	}

	if imgui.BeginTableV("ClearTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Rows Cleared")
		imgui.TableSetupColumn("Placements")
		imgui.TableHeadersRow()

		for rows := 0; rows <= 4; rows++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", rows))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Placements(rows)))
		}

		imgui.EndTable()
	}
}
