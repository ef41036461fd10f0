// Command blockfall-bench runs bot-driven games headless as fast as it can
// and prints a report of frame times, game outcomes and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/loop"
)

// runner drives one scheduler with a bot until its context expires.
type runner struct {
	scheduler *loop.Scheduler
	recorder  *RoundRecorder
	samples   []time.Duration
}

func newRunner(cfg engine.Config) *runner {
	r := &runner{
		scheduler: loop.NewScheduler(engine.NewGame(cfg)),
		recorder:  &RoundRecorder{},
	}
	r.scheduler.Register(NewBot(cfg.Seed))
	r.scheduler.Register(&loop.TickSystem{})
	r.scheduler.Register(&loop.RestartSystem{Config: cfg, Trigger: engine.ActionHardDrop})
	r.scheduler.Register(r.recorder)
	return r
}

func (r *runner) run(ctx context.Context, step float64) {
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			r.scheduler.Once(step)
			r.samples = append(r.samples, time.Since(updateStart))
		}
	}
	r.recorder.Finish(r.scheduler.Game())
}

func main() {
	flags := config.Register(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", 1, "Number of games played side by side.")
	step := flag.Float64("step", 1.0/60, "Simulated seconds per frame.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q", *profileMode)
	}

	cfg, err := flags.Config()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	log.Printf("Starting %d games from seed %d...", *games, cfg.Seed)

	runners := make([]*runner, *games)
	for i := range runners {
		gameCfg := cfg
		gameCfg.Seed = cfg.Seed + uint64(i)*1000
		runners[i] = newRunner(gameCfg)
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Seed:           cfg.Seed,
		Step:           time.Duration(*step * float64(time.Second)),
		Columns:        cfg.Columns,
		Rows:           cfg.Rows - cfg.Ceiling,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var wg sync.WaitGroup
	for _, r := range runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.run(ctx, *step)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	for _, r := range runners {
		report.Add(r.samples, r.recorder.Rounds)
	}
	report.Finalize()

	log.Println("Run finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
