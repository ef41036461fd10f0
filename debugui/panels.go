package debugui

import "time"

type GameInspector struct {
	showCells bool
}

type PlayfieldViewer struct {
	cellSize    float32
	showGhost   bool
	showCeiling bool
}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
