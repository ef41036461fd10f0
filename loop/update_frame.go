package loop

import "github.com/plus3/blockfall/engine"

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	// Actions collects the buttons input systems saw this frame. It starts
	// empty each frame.
	Actions  engine.Action
	Game     *engine.Game
	Commands *Commands
}

func newUpdateFrame(dt float64, game *engine.Game) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Game:      game,
	}
}
