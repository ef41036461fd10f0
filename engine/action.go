package engine

import "strings"

// Action is the set of player inputs held during one tick.
type Action uint8

const (
	ActionSoftDrop Action = 1 << iota
	ActionHardDrop
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionHold
	ActionPause
)

var actionNames = [...]string{
	"soft-drop",
	"hard-drop",
	"left",
	"right",
	"rotate-cw",
	"rotate-ccw",
	"hold",
	"pause",
}

// Has reports whether every bit of flag is set.
func (a Action) Has(flag Action) bool {
	return a&flag == flag
}

func (a Action) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for i, name := range actionNames {
		if a&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Settings toggles optional rules for a round.
type Settings uint8

const (
	SettingAllowHold Settings = 1 << iota
	SettingInfiniteLockDelay
)

// Has reports whether every bit of flag is set.
func (s Settings) Has(flag Settings) bool {
	return s&flag == flag
}
