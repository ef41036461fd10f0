package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name string
		down []ebiten.Key
		want engine.Action
	}{
		{"nothing", nil, 0},
		{"arrow", []ebiten.Key{ebiten.KeyArrowLeft}, engine.ActionMoveLeft},
		{"letter", []ebiten.Key{ebiten.KeyD}, engine.ActionMoveRight},
		{"both bindings of one action", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, engine.ActionRotateCW},
		{"combined", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyZ, ebiten.KeyShiftRight},
			engine.ActionSoftDrop | engine.ActionRotateCCW | engine.ActionHold},
		{"unbound", []ebiten.Key{ebiten.KeyF5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actionsFor(keys(tt.down...)))
		})
	}
}

func TestKeyboardInput(t *testing.T) {
	scheduler := loop.NewScheduler(engine.NewGame(engine.DefaultConfig()))
	imgui := &debugui.ImguiSystem{Scheduler: scheduler}
	input := &KeyboardInput{Imgui: imgui, pressed: keys(ebiten.KeySpace)}

	var seen []engine.Action
	scheduler.Register(input)
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		seen = append(seen, frame.Actions)
	}))

	scheduler.Once(0)
	imgui.InputState.WantCaptureKeyboard = true
	scheduler.Once(0)

	assert.Equal(t, []engine.Action{engine.ActionHardDrop, 0}, seen)
}
