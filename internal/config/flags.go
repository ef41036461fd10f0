// Package config binds command line flags to an engine configuration so
// every front end accepts the same options.
package config

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
)

// Flags holds the parsed values of the shared game flags.
type Flags struct {
	Seed         uint64
	Columns      int
	Rows         int
	Ceiling      int
	Level        int
	Hold         bool
	InfiniteLock bool
}

// Register defines the shared flags on fs. Values are read after fs.Parse.
func Register(fs *flag.FlagSet) *Flags {
	defaults := engine.DefaultConfig()
	f := &Flags{}
	fs.Uint64Var(&f.Seed, "seed", 0, "Piece order seed (0 picks one at random)")
	fs.IntVar(&f.Columns, "columns", defaults.Columns, "Board width")
	fs.IntVar(&f.Rows, "rows", defaults.Rows, "Board height including the ceiling")
	fs.IntVar(&f.Ceiling, "ceiling", defaults.Ceiling, "Hidden rows above the visible board")
	fs.IntVar(&f.Level, "level", defaults.StartLevel+1, fmt.Sprintf("Starting level (1-%d)", engine.LevelCount))
	fs.BoolVar(&f.Hold, "hold", defaults.Settings.Has(engine.SettingAllowHold), "Allow holding a piece")
	fs.BoolVar(&f.InfiniteLock, "infinite-lock", false, "Moving a grounded piece always restarts its lock delay")
	return f
}

// Config builds the round configuration the flags describe. Board sizes
// the engine cannot hold are rejected here rather than left to panic in
// NewGame.
func (f *Flags) Config() (engine.Config, error) {
	if f.Columns < engine.GridSize || f.Columns > engine.MaxColumns {
		return engine.Config{}, fmt.Errorf("-columns %d out of range [%d, %d]", f.Columns, engine.GridSize, engine.MaxColumns)
	}
	if f.Rows < engine.GridSize || f.Rows > engine.MaxRows {
		return engine.Config{}, fmt.Errorf("-rows %d out of range [%d, %d]", f.Rows, engine.GridSize, engine.MaxRows)
	}
	if f.Ceiling < 0 || f.Ceiling >= f.Rows {
		return engine.Config{}, fmt.Errorf("-ceiling %d out of range [0, %d)", f.Ceiling, f.Rows)
	}
	if f.Level < 1 || f.Level > engine.LevelCount {
		return engine.Config{}, fmt.Errorf("-level %d out of range [1, %d]", f.Level, engine.LevelCount)
	}

	cfg := engine.DefaultConfig()
	cfg.Columns = f.Columns
	cfg.Rows = f.Rows
	cfg.Ceiling = f.Ceiling
	cfg.StartLevel = f.Level - 1
	cfg.Seed = f.Seed
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	cfg.Settings = 0
	if f.Hold {
		cfg.Settings |= engine.SettingAllowHold
	}
	if f.InfiniteLock {
		cfg.Settings |= engine.SettingInfiniteLockDelay
	}
	return cfg, nil
}
