package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64
	Step     time.Duration
	Columns  int
	Rows     int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Rounds         []Round
	Totals         Round
	Best           Round
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarises frame update times.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = sorted[len(sorted)/2]
	s.P99 = sorted[len(sorted)*99/100]
}

// Add merges one runner's frame samples and finished rounds.
func (r *Report) Add(samples []time.Duration, rounds []Round) {
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, samples...)
	r.TotalUpdates += int64(len(samples))
	r.Rounds = append(r.Rounds, rounds...)
}

func (r *Report) Finalize() {
	r.UpdateTime.Finalize()

	r.Totals = Round{}
	r.Best = Round{}
	for _, round := range r.Rounds {
		r.Totals.Score += round.Score
		r.Totals.Lines += round.Lines
		r.Totals.Pieces += round.Pieces
		r.Totals.Level = max(r.Totals.Level, round.Level)
		r.Totals.MaxCombo = max(r.Totals.MaxCombo, round.MaxCombo)
		for rows, n := range round.Placements {
			r.Totals.Placements[rows] += n
		}
		if round.Score > r.Best.Score {
			r.Best = round
		}
	}
}

// SimulatedTime is how much game time the run covered.
func (r *Report) SimulatedTime() time.Duration {
	return time.Duration(r.TotalUpdates) * r.Step
}

// PiecesPerSecond is the wall-clock placement rate over all games.
func (r *Report) PiecesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Totals.Pieces) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Frame Step:** {{.Step}}
- **Board:** {{.Columns}}x{{.Rows}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Pieces / Second:** {{printf "%.1f" .PiecesPerSecond}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **p50 / p99:** {{.UpdateTime.P50}} / {{.UpdateTime.P99}}
  - **Min / Max:** {{.UpdateTime.Min}} / {{.UpdateTime.Max}}

## Games
- **Rounds Played:** {{len .Rounds}}
- **Pieces:** {{.Totals.Pieces}}
- **Lines:** {{.Totals.Lines}}
- **Clears:** {{index .Totals.Placements 1}} single, {{index .Totals.Placements 2}} double, {{index .Totals.Placements 3}} triple, {{index .Totals.Placements 4}} four
- **Highest Level:** {{.Totals.Level}}
- **Longest Combo:** {{.Totals.MaxCombo}}
- **Best Round:** {{.Best.Score}} points, {{.Best.Lines}} lines (seed {{.Best.Seed}})

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
