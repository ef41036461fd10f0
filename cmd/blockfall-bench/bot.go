package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Bot plays by picking a random orientation and column for every piece,
// turning and walking the piece there and hard dropping it. Each action is
// released for a frame before it is pressed again so the game sees every
// step as a new press.
type Bot struct {
	// Patience is how many frames a piece may take before the bot gives up
	// and drops it where it is.
	Patience int

	rng       *rand.Rand
	game      *engine.Game
	pieces    int
	frames    int
	targetX   int
	targetRot int
	last      engine.Action
}

func NewBot(seed uint64) *Bot {
	return &Bot{
		Patience: 90,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (b *Bot) plan(game *engine.Game) {
	piece := game.Piece()
	b.frames = 0
	b.targetRot = 0
	if piece.Size != engine.RotationNone {
		b.targetRot = b.rng.IntN(engine.RotationStates)
	}
	b.targetX = engine.ColumnOffset - 1 + b.rng.IntN(game.Config().Columns)
}

func (b *Bot) Execute(frame *loop.UpdateFrame) {
	game := frame.Game
	if game != b.game || game.Stats().Pieces() != b.pieces {
		b.game = game
		b.pieces = game.Stats().Pieces()
		b.plan(game)
	}
	b.frames++

	piece := game.Piece()
	var action engine.Action
	switch {
	case game.IsGameOver() || b.frames > b.Patience:
		action = engine.ActionHardDrop
	case piece.Rotation != b.targetRot:
		action = engine.ActionRotateCW
	case piece.X < b.targetX:
		action = engine.ActionMoveRight
	case piece.X > b.targetX:
		action = engine.ActionMoveLeft
	default:
		action = engine.ActionHardDrop
	}

	if action == b.last {
		action = 0
	}
	b.last = action
	frame.Actions |= action
}

// Round is the outcome of one game. Level counts from 1 as players see it.
type Round struct {
	Seed       uint64
	Score      int
	Level      int
	Lines      int
	Pieces     int
	MaxCombo   int
	Placements [5]int
}

func newRound(game *engine.Game) Round {
	stats := game.Stats()
	round := Round{
		Seed:     game.Config().Seed,
		Score:    game.Score(),
		Level:    game.Level() + 1,
		Lines:    game.Lines(),
		Pieces:   stats.Pieces(),
		MaxCombo: stats.MaxCombo,
	}
	for rows := range round.Placements {
		round.Placements[rows] = stats.Placements(rows)
	}
	return round
}

// RoundRecorder keeps the outcome of every game the scheduler replaces.
type RoundRecorder struct {
	Rounds []Round

	game *engine.Game
}

func (r *RoundRecorder) Execute(frame *loop.UpdateFrame) {
	if r.game != nil && frame.Game != r.game {
		r.Rounds = append(r.Rounds, newRound(r.game))
	}
	r.game = frame.Game
}

// Finish records the game still in play.
func (r *RoundRecorder) Finish(game *engine.Game) {
	r.Rounds = append(r.Rounds, newRound(game))
	r.game = nil
}
