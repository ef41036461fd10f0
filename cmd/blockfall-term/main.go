// Command blockfall-term plays a round in the terminal.
//
//	arrows / h l      move
//	down / j          soft drop
//	space             hard drop
//	up / k / x        rotate clockwise
//	z                 rotate counter-clockwise
//	c                 hold
//	p                 pause
//	q / escape        quit
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/loop"
)

func main() {
	flags := config.Register(flag.CommandLine)
	interval := flag.Duration("interval", 16*time.Millisecond, "Frame interval")
	hold := flag.Float64("hold-window", DefaultHoldWindow, "Seconds a movement key stays held after its last repeat")
	ghost := flag.Bool("ghost", true, "Show the landing preview")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := NewTerminalInput(events, cancel, screen.Sync)
	input.HoldWindow = *hold

	scheduler := loop.NewScheduler(engine.NewGame(cfg))
	scheduler.Register(input)
	scheduler.Register(&loop.TickSystem{MaxStep: 0.1})
	scheduler.Register(&loop.RestartSystem{
		Config:  cfg,
		Trigger: engine.ActionHardDrop | engine.ActionPause,
	})
	scheduler.Register(&TerminalRenderer{Screen: screen, ShowGhost: *ghost})

	scheduler.Run(ctx, *interval)
	screen.Fini()

	game := scheduler.Game()
	stats := scheduler.GetStats()
	log.Printf("Seed %d: score %d, level %d, %d lines from %d pieces",
		game.Config().Seed, game.Score(), game.Level()+1, game.Lines(), game.Stats().Pieces())
	log.Printf("Played %d rounds over %d frames", stats.Restarts+1, stats.Frames)
}
