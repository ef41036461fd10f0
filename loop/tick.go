package loop

import "github.com/plus3/blockfall/engine"

// TickSystem advances the game by the frame's delta time using the actions
// gathered by the systems before it.
type TickSystem struct {
	// MaxStep caps the delta handed to the game so a stalled frame does not
	// drop the piece several rows at once. Zero disables the cap.
	MaxStep float64

	Ticks int64
}

func (s *TickSystem) Execute(frame *UpdateFrame) {
	dt := frame.DeltaTime
	if s.MaxStep > 0 {
		dt = min(dt, s.MaxStep)
	}
	frame.Game.Tick(dt, frame.Actions)
	s.Ticks++
}

// RestartSystem queues a new game when any action in Trigger is pressed on
// a frame after the one that ended the round. A key still held from the
// move that topped out has to be released and pressed again. Each round
// gets the next seed after Config.Seed.
type RestartSystem struct {
	Config  engine.Config
	Trigger engine.Action

	Rounds  int
	prev    engine.Action
	wasOver bool
}

func (s *RestartSystem) Execute(frame *UpdateFrame) {
	pressed := frame.Actions &^ s.prev
	s.prev = frame.Actions

	over := frame.Game.IsGameOver()
	wasOver := s.wasOver
	s.wasOver = over
	if !over || !wasOver || pressed&s.Trigger == 0 {
		return
	}
	s.wasOver = false
	s.Rounds++
	cfg := s.Config
	cfg.Seed += uint64(s.Rounds)
	frame.Commands.Restart(cfg)
}
