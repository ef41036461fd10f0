// Package ebiten provides Dear ImGui backend integration for the Ebiten front end.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before the scheduler runs, EndFrame after it and Draw
// last so the panels sit on top of the board.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend opens the window through the backend. imgui.ini is not
// written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}
