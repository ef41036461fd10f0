package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCache(t *testing.T) {
	cache := NewFieldCache()
	fields := cache.Fields(reflect.TypeOf(engine.Piece{}))

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		assert.False(t, f.Nested, f.Name)
	}
	assert.Equal(t, []string{
		"Cells", "Shape", "Size", "Rotation", "X", "Y",
		"VelocityX", "VelocityY", "LockTimer", "LockMoves", "Grounded",
	}, names)
	assert.Equal(t, 4, fields[4].Index)
	// the kick table pointer is unexported and skipped
	assert.Equal(t, 7, fields[6].Index)

	again := cache.Fields(reflect.TypeOf(engine.Piece{}))
	assert.Same(t, &fields[0], &again[0])
	assert.Empty(t, cache.Fields(reflect.TypeOf(0)))

	type wrapper struct {
		Piece  engine.Piece
		hidden int
		Level  int
	}
	wrapped := cache.Fields(reflect.TypeOf(wrapper{}))
	require.Len(t, wrapped, 2)
	assert.True(t, wrapped[0].Nested)
	assert.Equal(t, "Level", wrapped[1].Name)
	assert.Equal(t, 2, wrapped[1].Index)
}

func TestFieldFormat(t *testing.T) {
	piece := engine.NewPiece(engine.ShapeT, engine.NewPlayfield(10, 24, 4))
	piece.VelocityY = 0.25
	val := reflect.ValueOf(piece)

	lines := map[string]string{}
	for _, field := range inspectorFields.Fields(val.Type()) {
		lines[field.Name] = field.Format(val)
	}

	assert.Equal(t, "Cells: 0x0072 (4 cells)", lines["Cells"])
	assert.Equal(t, "Shape: T", lines["Shape"])
	assert.Equal(t, "Size: 3", lines["Size"])
	assert.Equal(t, "X: 5", lines["X"])
	assert.Equal(t, "VelocityY: 0.250", lines["VelocityY"])
	assert.Equal(t, "Grounded: false", lines["Grounded"])

	assert.NotContains(t, lines, "kicks")

	type withPointer struct {
		Stats *engine.Stats
	}
	game := engine.NewGame(engine.DefaultConfig())
	for _, owner := range []withPointer{{}, {Stats: game.Stats()}} {
		v := reflect.ValueOf(owner)
		field := inspectorFields.Fields(v.Type())[0]
		want := "Stats: nil"
		if owner.Stats != nil {
			want = "Stats: Stats"
		}
		assert.Equal(t, want, field.Format(v))
	}
}

func TestFormatRow(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Seed = 1
	game := engine.NewGame(cfg)
	snap := game.Snapshot()
	require.Len(t, snap.Rows, 24)

	piece := snap.Piece
	piece.Cells = engine.Lookup(engine.ShapeT).Cells
	piece.Size = engine.Rotation3x3
	piece.X, piece.Y = 5, 2
	snap.Piece = piece
	snap.GhostRow = 22
	snap.Rows[23] = 0b1000000001

	assert.Equal(t, "....@.....", formatRow(&snap, 2, true))
	assert.Equal(t, "...@@@....", formatRow(&snap, 3, true))
	assert.Equal(t, "....+.....", formatRow(&snap, 22, true))
	assert.Equal(t, "#..+++...#", formatRow(&snap, 23, true))
	assert.Equal(t, "#........#", formatRow(&snap, 23, false))
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.InDelta(t, 2.5, ps.record(0.010), 1e-4)
	assert.InDelta(t, 5.0, ps.record(0.010), 1e-4)
	ps.record(0.010)
	ps.record(0.010)
	// the oldest entry is overwritten
	assert.InDelta(t, 12.5, ps.record(0.020), 1e-4)
	assert.Equal(t, 1, ps.frameIndex)
}
