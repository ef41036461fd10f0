package engine

import "math"

// Level is one step of the difficulty curve.
type Level struct {
	// Lines is the cumulative cleared-line count that unlocks this level.
	Lines int
	// Gravity is the fall speed in cells per second.
	Gravity float64
}

const (
	// LevelCount is the number of levels; the last one never advances.
	LevelCount = 15
	// LinesPerLevel is the number of cleared lines between levels.
	LinesPerLevel = 10
)

// levels is the difficulty table; index 0 is the starting level.
var levels = buildLevels()

// Marathon curve: seconds per row = (0.8 - (L-1)*0.007)^(L-1).
func buildLevels() [LevelCount]Level {
	var levels [LevelCount]Level
	for i := range levels {
		n := float64(i)
		secondsPerRow := math.Pow(0.8-n*0.007, n)
		levels[i] = Level{
			Lines:   i * LinesPerLevel,
			Gravity: 1 / secondsPerRow,
		}
	}
	return levels
}

// LevelAt returns level index i, clamped to the table.
func LevelAt(i int) Level {
	return levels[min(max(i, 0), LevelCount-1)]
}

// AdvanceLevel returns the level index reached with lines cleared, never
// going below current and saturating at the last level.
func AdvanceLevel(current, lines int) int {
	for current+1 < LevelCount && lines >= levels[current+1].Lines {
		current++
	}
	return current
}

var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// ComboPoints is the per-step combo bonus before the level multiplier.
const ComboPoints = 50

// PlacementScore returns the points for a placement that cleared rows
// lines at level index level, with combo consecutive clearing placements
// before it.
func PlacementScore(rows, level, combo int) int {
	if rows <= 0 {
		return 0
	}
	rows = min(rows, len(lineClearPoints)-1)
	multiplier := level + 1
	return lineClearPoints[rows]*multiplier + ComboPoints*combo*multiplier
}
