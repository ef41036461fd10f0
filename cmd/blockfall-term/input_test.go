package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// frames runs n frames of dt seconds and returns the actions each one saw.
func frames(input *TerminalInput, n int, dt float64) []engine.Action {
	var seen []engine.Action
	for range n {
		frame := &loop.UpdateFrame{DeltaTime: dt}
		input.Execute(frame)
		seen = append(seen, frame.Actions)
	}
	return seen
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want engine.Action
	}{
		{key(tcell.KeyLeft), engine.ActionMoveLeft},
		{key(tcell.KeyRight), engine.ActionMoveRight},
		{key(tcell.KeyDown), engine.ActionSoftDrop},
		{key(tcell.KeyUp), engine.ActionRotateCW},
		{char('h'), engine.ActionMoveLeft},
		{char('l'), engine.ActionMoveRight},
		{char(' '), engine.ActionHardDrop},
		{char('z'), engine.ActionRotateCCW},
		{char('c'), engine.ActionHold},
		{char('p'), engine.ActionPause},
		{char('?'), 0},
		{key(tcell.KeyTab), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, actionForKey(tt.ev), tt.ev.Name())
	}

	assert.True(t, isQuit(key(tcell.KeyEscape)))
	assert.True(t, isQuit(key(tcell.KeyCtrlC)))
	assert.True(t, isQuit(char('q')))
	assert.False(t, isQuit(char('a')))
}

func TestTerminalInput(t *testing.T) {
	t.Run("movement is held through the window", func(t *testing.T) {
		events := make(chan tcell.Event, 8)
		input := NewTerminalInput(events, nil, nil)

		events <- key(tcell.KeyLeft)
		seen := frames(input, 4, 0.05)
		assert.Equal(t, []engine.Action{
			engine.ActionMoveLeft, engine.ActionMoveLeft, engine.ActionMoveLeft, 0,
		}, seen)
	})

	t.Run("repeats extend the hold", func(t *testing.T) {
		events := make(chan tcell.Event, 8)
		input := NewTerminalInput(events, nil, nil)

		var seen []engine.Action
		for range 6 {
			events <- char('j')
			seen = append(seen, frames(input, 1, 0.1)...)
		}
		for _, actions := range seen {
			assert.Equal(t, engine.ActionSoftDrop, actions)
		}
	})

	t.Run("presses are spaced by an empty frame", func(t *testing.T) {
		events := make(chan tcell.Event, 8)
		input := NewTerminalInput(events, nil, nil)

		events <- char('x')
		events <- char('x')
		events <- char(' ')
		seen := frames(input, 6, 1.0/60)
		assert.Equal(t, []engine.Action{
			engine.ActionRotateCW, 0, engine.ActionRotateCW, 0, engine.ActionHardDrop, 0,
		}, seen)
	})

	t.Run("quit and resize", func(t *testing.T) {
		events := make(chan tcell.Event, 8)
		quits, resizes := 0, 0
		input := NewTerminalInput(events, func() { quits++ }, func() { resizes++ })

		events <- tcell.NewEventResize(80, 24)
		events <- char('q')
		events <- key(tcell.KeyEscape)
		frames(input, 1, 0)

		assert.Equal(t, 1, quits)
		assert.Equal(t, 1, resizes)
	})
}

func TestTerminalInputRotatesTwice(t *testing.T) {
	// any first piece but the square turns
	cfg := engine.DefaultConfig()
	game := engine.NewGame(cfg)
	for game.Piece().Shape == engine.ShapeO {
		cfg.Seed++
		game = engine.NewGame(cfg)
	}

	events := make(chan tcell.Event, 8)
	scheduler := loop.NewScheduler(game)
	scheduler.Register(NewTerminalInput(events, nil, nil))
	scheduler.Register(&loop.TickSystem{})

	events <- char('x')
	events <- char('x')
	for range 4 {
		scheduler.Once(1.0 / 60)
	}
	assert.Equal(t, 2, game.Piece().Rotation)
}
