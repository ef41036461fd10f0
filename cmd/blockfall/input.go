package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

type keyBinding struct {
	action engine.Action
	keys   []ebiten.Key
}

// The game decides which actions fire once per press, so every binding
// reports the key as held.
var keyBindings = []keyBinding{
	{engine.ActionMoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{engine.ActionMoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{engine.ActionSoftDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{engine.ActionHardDrop, []ebiten.Key{ebiten.KeySpace}},
	{engine.ActionRotateCW, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}},
	{engine.ActionRotateCCW, []ebiten.Key{ebiten.KeyZ}},
	{engine.ActionHold, []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{engine.ActionPause, []ebiten.Key{ebiten.KeyP}},
}

func actionsFor(pressed func(ebiten.Key) bool) engine.Action {
	var actions engine.Action
	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if pressed(key) {
				actions |= binding.action
				break
			}
		}
	}
	return actions
}

// KeyboardInput reads the keyboard into the frame's actions.
type KeyboardInput struct {
	// Imgui is optional. While a panel has keyboard focus no actions are
	// reported.
	Imgui *debugui.ImguiSystem

	pressed func(ebiten.Key) bool
}

func NewKeyboardInput(imgui *debugui.ImguiSystem) *KeyboardInput {
	return &KeyboardInput{Imgui: imgui, pressed: ebiten.IsKeyPressed}
}

func (k *KeyboardInput) Execute(frame *loop.UpdateFrame) {
	if k.Imgui != nil && k.Imgui.InputState.WantCaptureKeyboard {
		return
	}
	frame.Actions |= actionsFor(k.pressed)
}
