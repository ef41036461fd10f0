package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/engine"
)

// Scheduler runs systems against a game once per frame, in order.
type Scheduler struct {
	game     *engine.Game
	systems  []System
	timings  []*timing
	frame    timing
	restarts int
}

// NewScheduler creates a scheduler driving game.
func NewScheduler(game *engine.Game) *Scheduler {
	if game == nil {
		panic("loop: scheduler needs a game")
	}
	return &Scheduler{
		game:  game,
		frame: timing{name: "frame"},
	}
}

// Game returns the game systems currently run against. It changes when a
// restart command is flushed.
func (s *Scheduler) Game() *engine.Game {
	return s.game
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.timings = append(s.timings, &timing{name: systemName(system)})
}

func systemName(system System) string {
	if named, ok := system.(Named); ok {
		return named.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once executes all registered systems once with the given delta time and
// then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frameStart := time.Now()
	frame := newUpdateFrame(dt, s.game)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	frame.Commands.Flush(s)
	s.frame.record(time.Since(frameStart))
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns a copy of the scheduler's counters and timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frame.count,
		Restarts:    s.restarts,
		Frame:       s.frame.stats(),
		Systems:     make([]SystemStats, len(s.timings)),
	}
	for i, t := range s.timings {
		stats.Systems[i] = t.stats()
		stats.TotalExecutions += t.count
	}
	return stats
}
