package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateCells(t *testing.T) {
	t.Run("four clockwise turns restore every shape", func(t *testing.T) {
		for _, shape := range Shapes() {
			def := Lookup(shape)
			cells := def.Cells
			for range RotationStates {
				cells = RotateCells(cells, def.Size, true)
			}
			assert.Equal(t, def.Cells, cells, "shape %s", shape)
		}
	})

	t.Run("clockwise then counter-clockwise is identity", func(t *testing.T) {
		for _, shape := range Shapes() {
			def := Lookup(shape)
			back := RotateCells(RotateCells(def.Cells, def.Size, true), def.Size, false)
			assert.Equal(t, def.Cells, back, "shape %s", shape)
		}
	})

	t.Run("T turns right then left", func(t *testing.T) {
		def := Lookup(ShapeT)
		assert.Equal(t, Cells(0b0000_0010_0110_0010), RotateCells(def.Cells, def.Size, true))
		assert.Equal(t, Cells(0b0000_0010_0011_0010), RotateCells(def.Cells, def.Size, false))
	})

	t.Run("I stands in column two after a clockwise turn", func(t *testing.T) {
		def := Lookup(ShapeI)
		rotated := RotateCells(def.Cells, def.Size, true)
		assert.Equal(t, Cells(0x4444), rotated)
		for row := range GridSize {
			assert.True(t, rotated.At(2, row))
		}
	})

	t.Run("rotation keeps the cell count", func(t *testing.T) {
		for _, shape := range Shapes() {
			def := Lookup(shape)
			cells := def.Cells
			for range RotationStates {
				cells = RotateCells(cells, def.Size, false)
				assert.Equal(t, 4, cells.Count(), "shape %s", shape)
			}
		}
	})
}

func TestCellsString(t *testing.T) {
	expected := ".#..\n###.\n....\n....\n"
	assert.Equal(t, expected, Lookup(ShapeT).Cells.String())
}

func TestCellsAtOutOfRange(t *testing.T) {
	cells := Cells(0xFFFF)
	assert.False(t, cells.At(-1, 0))
	assert.False(t, cells.At(0, -1))
	assert.False(t, cells.At(GridSize, 0))
	assert.False(t, cells.At(0, GridSize))
	assert.True(t, cells.At(3, 3))
}
