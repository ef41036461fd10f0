package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Terminals report key presses and repeats but never releases.
const continuous = engine.ActionMoveLeft | engine.ActionMoveRight | engine.ActionSoftDrop

// DefaultHoldWindow is how long a continuous action stays held after the
// last key event for it, in seconds.
const DefaultHoldWindow = 0.12

func actionForKey(ev *tcell.EventKey) engine.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.ActionMoveLeft
	case tcell.KeyRight:
		return engine.ActionMoveRight
	case tcell.KeyDown:
		return engine.ActionSoftDrop
	case tcell.KeyUp:
		return engine.ActionRotateCW
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return engine.ActionMoveLeft
		case 'd', 'l':
			return engine.ActionMoveRight
		case 's', 'j':
			return engine.ActionSoftDrop
		case ' ':
			return engine.ActionHardDrop
		case 'x', 'k':
			return engine.ActionRotateCW
		case 'z':
			return engine.ActionRotateCCW
		case 'c':
			return engine.ActionHold
		case 'p':
			return engine.ActionPause
		}
	}
	return 0
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// TerminalInput turns terminal events into frame actions. Continuous
// actions stay held for HoldWindow seconds after their last key event.
// Every other key press is queued and reported on its own frame with an
// empty frame in between, so the game sees each one as a fresh press.
type TerminalInput struct {
	Events     <-chan tcell.Event
	HoldWindow float64
	// Quit is called once when a quit key arrives.
	Quit func()
	// Resize is called for every resize event.
	Resize func()

	clock     float64
	lastSeen  map[engine.Action]float64
	queue     []engine.Action
	lastPulse bool
	quitting  bool
}

func NewTerminalInput(events <-chan tcell.Event, quit, resize func()) *TerminalInput {
	return &TerminalInput{
		Events:     events,
		HoldWindow: DefaultHoldWindow,
		Quit:       quit,
		Resize:     resize,
		lastSeen:   make(map[engine.Action]float64),
	}
}

func (t *TerminalInput) Execute(frame *loop.UpdateFrame) {
	t.clock += frame.DeltaTime
	t.drain()

	for action, seen := range t.lastSeen {
		if t.clock-seen <= t.HoldWindow {
			frame.Actions |= action
		} else {
			delete(t.lastSeen, action)
		}
	}

	if t.lastPulse {
		t.lastPulse = false
		return
	}
	if len(t.queue) > 0 {
		frame.Actions |= t.queue[0]
		t.queue = t.queue[1:]
		t.lastPulse = true
	}
}

func (t *TerminalInput) drain() {
	for {
		select {
		case ev := <-t.Events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *TerminalInput) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			if !t.quitting && t.Quit != nil {
				t.quitting = true
				t.Quit()
			}
			return
		}
		action := actionForKey(ev)
		switch {
		case action == 0:
		case continuous.Has(action):
			t.lastSeen[action] = t.clock
		default:
			t.queue = append(t.queue, action)
		}
	case *tcell.EventResize:
		if t.Resize != nil {
			t.Resize()
		}
	}
}
