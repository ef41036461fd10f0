package loop

import "time"

// SchedulerStats is a copy of the scheduler's counters and timings.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	Restarts        int
	TotalExecutions int64
	// Frame times a whole pass including the command flush.
	Frame   SystemStats
	Systems []SystemStats
}

// SystemStats is the timing record of one system. Durations are zero
// until the system has run once.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// timing accumulates durations for one system or for whole frames.
type timing struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *timing) record(d time.Duration) {
	if t.count == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.total += d
	t.last = d
	t.count++
}

func (t *timing) stats() SystemStats {
	s := SystemStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		s.AvgDuration = t.total / time.Duration(t.count)
	}
	return s
}
