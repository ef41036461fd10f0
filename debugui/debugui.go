// Package debugui provides Dear ImGui inspector panels for a running game.
// Panels are drawn by ImguiSystem at the end of each scheduler frame, after
// the game has ticked.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Panel is one ImGui window. dt is the wall-clock time since the previous
// frame in seconds.
type Panel interface {
	Render(scheduler *loop.Scheduler, dt float32)
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Input systems check it so typing into a panel does not move the piece.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every panel's render to
// the end of the frame.
type ImguiSystem struct {
	Scheduler  *loop.Scheduler
	Panels     []Panel
	InputState ImguiInputState

	timer *FrameTimer
}

// NewImguiSystem creates the system with the default panels.
func NewImguiSystem(scheduler *loop.Scheduler) *ImguiSystem {
	return &ImguiSystem{
		Scheduler: scheduler,
		Panels:    DefaultPanels(),
	}
}

// DefaultPanels returns the game inspector, playfield viewer and
// performance stats windows.
func DefaultPanels() []Panel {
	return []Panel{
		NewGameInspector(),
		NewPlayfieldViewer(14),
		NewPerformanceStats(120),
	}
}

// Execute updates input state and queues all panel renders for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.timer == nil {
		i.timer = NewFrameTimer()
	}
	dt := i.timer.GetDeltaTime()

	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(i.Scheduler, dt)
		})
	}
}
