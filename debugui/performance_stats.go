package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// record stores one frame time and returns the running average in milliseconds.
func (ps *PerformanceStats) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(scheduler *loop.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(deltaTime)
	stats := scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Restarts: %d", stats.Restarts))
	imgui.Text(fmt.Sprintf("Update: %s avg, %s max", stats.Frame.AvgDuration, stats.Frame.MaxDuration))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
