// Command blockfall opens a window and plays a round with the keyboard.
//
//	arrows / a d    move
//	down / s        soft drop
//	space           hard drop
//	up / x          rotate clockwise
//	z               rotate counter-clockwise
//	c / shift       hold
//	p               pause
//	g               toggle the landing preview
//	q / escape      quit
//
// Once the stack tops out, hard drop or pause starts the next round.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/loop"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// App implements ebiten.Game on top of the scheduler.
type App struct {
	Scheduler *loop.Scheduler
	Renderer  *Renderer

	imgui *debugui_ebiten.ImguiBackend
}

func main() {
	flags := config.Register(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the inspector panels")
	cellSize := flag.Int("cell", 28, "Cell size in pixels")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	log.Printf("Starting %dx%d board, seed %d", cfg.Columns, cfg.Rows-cfg.Ceiling, cfg.Seed)

	app := &App{
		Scheduler: loop.NewScheduler(engine.NewGame(cfg)),
		Renderer:  NewRenderer(*cellSize),
	}

	var imguiSystem *debugui.ImguiSystem
	if *debug {
		app.imgui = debugui_ebiten.NewImguiBackend("Blockfall", ScreenWidth, ScreenHeight)
		imguiSystem = debugui.NewImguiSystem(app.Scheduler)
		app.Scheduler.Register(imguiSystem)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app.Scheduler.Register(NewKeyboardInput(imguiSystem))
	app.Scheduler.Register(&loop.TickSystem{MaxStep: 0.1})
	app.Scheduler.Register(&loop.RestartSystem{
		Config:  cfg,
		Trigger: engine.ActionHardDrop | engine.ActionPause,
	})

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited: %v", err)
	}

	game := app.Scheduler.Game()
	log.Printf("Final score %d, level %d, %d lines from %d pieces",
		game.Score(), game.Level()+1, game.Lines(), game.Stats().Pieces())
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.Renderer.ShowGhost = !a.Renderer.ShowGhost
	}

	if a.imgui != nil {
		a.imgui.BeginFrame()
		defer a.imgui.EndFrame()
	}

	a.Scheduler.Once(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	snap := a.Scheduler.Game().Snapshot()
	a.Renderer.Draw(screen, &snap)

	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
