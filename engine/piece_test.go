package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardSpan returns the leftmost and rightmost board columns the piece covers.
func boardSpan(p Piece) (left, right int) {
	left, right = MaxColumns, -1
	for row := range int(p.Size) {
		for col := range int(p.Size) {
			if p.Cells.At(col, row) {
				left = min(left, p.X+col-ColumnOffset)
				right = max(right, p.X+col-ColumnOffset)
			}
		}
	}
	return left, right
}

func TestNewPiece(t *testing.T) {
	pf := NewPlayfield(10, 24, 4)

	tests := []struct {
		shape Shape
		x, y  int
	}{
		{ShapeI, 5, 2},
		{ShapeO, 6, 2},
		{ShapeT, 5, 2},
		{ShapeL, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := NewPiece(tt.shape, pf)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, tt.y, p.Y)
			assert.Zero(t, p.Rotation)
			assert.Equal(t, Airborne, p.LockState())
			assert.False(t, p.Collides(pf))
		})
	}

	t.Run("low ceiling spawns at the top row", func(t *testing.T) {
		p := NewPiece(ShapeT, NewPlayfield(10, 20, 1))
		assert.Zero(t, p.Y)
	})
}

func TestPieceReachesBothWalls(t *testing.T) {
	pf := NewPlayfield(10, 24, 4)
	for _, shape := range Shapes() {
		for turns := range RotationStates {
			p := NewPiece(shape, pf)
			for range turns {
				require.True(t, p.Rotate(pf, true))
			}

			for p.Move(pf, -1, 0) {
			}
			assert.GreaterOrEqual(t, p.X, 0)
			left, _ := boardSpan(p)
			assert.Equal(t, 0, left, "shape %s after %d turns", shape, turns)

			for p.Move(pf, 1, 0) {
			}
			_, right := boardSpan(p)
			assert.Equal(t, pf.Columns()-1, right, "shape %s after %d turns", shape, turns)
		}
	}
}

func TestPieceRotate(t *testing.T) {
	t.Run("third kick", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		pf.SetRow(6, 0x3FF)
		pf.SetRow(7, 0x3F8)
		pf.SetRow(8, 0x3FD)
		pf.SetRow(9, 0x3F9)
		pf.SetRow(10, 0x3FD)

		p := Piece{
			Cells:    0b0000_0010_0110_0010,
			Shape:    ShapeT,
			Size:     Rotation3x3,
			Rotation: 1,
			kicks:    &kicksJLSTZ,
			X:        2,
			Y:        8,
		}
		require.False(t, p.Collides(pf))

		// unkicked and the first two kicks are blocked; (0, -2) fits
		require.True(t, p.Rotate(pf, true))
		assert.Equal(t, 2, p.X)
		assert.Equal(t, 6, p.Y)
		assert.Equal(t, 2, p.Rotation)
		assert.Equal(t, Cells(0b0000_0010_0111_0000), p.Cells)
		assert.False(t, p.Collides(pf))
	})

	t.Run("fails without side effects when every position is blocked", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		for row := range pf.Rows() {
			for col := range pf.Columns() {
				if !p.Cells.At(col+ColumnOffset-p.X, row-p.Y) {
					pf.Fill(col, row)
				}
			}
		}
		require.False(t, p.Collides(pf))

		before := p
		assert.False(t, p.Rotate(pf, true))
		assert.False(t, p.Rotate(pf, false))
		assert.Equal(t, before, p)
	})

	t.Run("square always succeeds unchanged", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeO, pf)
		before := p
		assert.True(t, p.Rotate(pf, true))
		assert.Equal(t, before, p)
	})

	t.Run("state wraps in both directions", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeJ, pf)
		require.True(t, p.Rotate(pf, false))
		assert.Equal(t, 3, p.Rotation)
		require.True(t, p.Rotate(pf, true))
		assert.Zero(t, p.Rotation)
		assert.Equal(t, Lookup(ShapeJ).Cells, p.Cells)
	})
}

func TestPieceMove(t *testing.T) {
	pf := NewPlayfield(10, 24, 4)
	p := NewPiece(ShapeT, pf)

	assert.True(t, p.Move(pf, 1, 0))
	assert.Equal(t, 6, p.X)
	assert.True(t, p.Move(pf, 0, 3))
	assert.Equal(t, 5, p.Y)

	pf.Fill(5, 7)
	assert.False(t, p.Move(pf, 0, 1))
	assert.Equal(t, 5, p.Y)

	p.Y = 0
	assert.False(t, p.Move(pf, 0, -1))
	assert.Zero(t, p.Y)
}

func TestPieceDrain(t *testing.T) {
	t.Run("keeps the fraction", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		p.VelocityX = 2.5
		assert.Equal(t, 2, p.drain(pf, &p.VelocityX, true))
		assert.Equal(t, 7, p.X)
		assert.InDelta(t, 0.5, p.VelocityX, 1e-9)
	})

	t.Run("blocked steps are spent", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		p.X = ColumnOffset
		p.VelocityX = -3.75
		assert.Zero(t, p.drain(pf, &p.VelocityX, true))
		assert.Equal(t, ColumnOffset, p.X)
		assert.InDelta(t, -0.75, p.VelocityX, 1e-9)
	})

	t.Run("stops at the floor", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		p.VelocityY = 100.25
		assert.Equal(t, 20, p.drain(pf, &p.VelocityY, false))
		assert.Equal(t, 22, p.Y)
		assert.True(t, p.OnGround(pf))
		assert.InDelta(t, 0.25, p.VelocityY, 1e-9)
	})

	t.Run("huge velocity is spent in one tick", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		p.VelocityY = 1.2e21
		assert.Equal(t, 20, p.drain(pf, &p.VelocityY, false))
		assert.True(t, p.OnGround(pf))
		assert.Zero(t, p.VelocityY)

		p.VelocityX = -1e20
		p.drain(pf, &p.VelocityX, true)
		assert.Equal(t, ColumnOffset, p.X)
		assert.Zero(t, p.VelocityX)
	})

	t.Run("nudge discards carried velocity", func(t *testing.T) {
		pf := NewPlayfield(10, 24, 4)
		p := NewPiece(ShapeT, pf)
		p.VelocityX = -0.9
		assert.True(t, p.nudge(pf, 1))
		assert.Equal(t, 6, p.X)
		assert.Zero(t, p.VelocityX)
	})
}
