package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("seven distinct shapes", func(t *testing.T) {
		seen := map[Shape]bool{}
		for _, shape := range Shapes() {
			assert.False(t, seen[shape])
			seen[shape] = true
			assert.Equal(t, shape, Lookup(shape).Shape)
		}
		assert.Len(t, seen, ShapeCount)
	})

	t.Run("cells fit inside the rotation grid", func(t *testing.T) {
		for _, shape := range Shapes() {
			def := Lookup(shape)
			assert.Equal(t, 4, def.Cells.Count(), "shape %s", shape)
			for row := range GridSize {
				for col := range GridSize {
					if col >= int(def.Size) || row >= int(def.Size) {
						assert.False(t, def.Cells.At(col, row), "shape %s (%d,%d)", shape, col, row)
					}
				}
			}
		}
	})

	t.Run("kick tables", func(t *testing.T) {
		_, ok := Lookup(ShapeO).Kicks()
		assert.False(t, ok)

		table, ok := Lookup(ShapeI).Kicks()
		require.True(t, ok)
		assert.Equal(t, kicksI, table)
		for _, shape := range []Shape{ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL} {
			table, ok := Lookup(shape).Kicks()
			require.True(t, ok, "shape %s", shape)
			assert.Equal(t, kicksJLSTZ, table, "shape %s", shape)
			assert.Equal(t, Rotation3x3, Lookup(shape).Size)
		}
	})

	t.Run("kick tables are handed out as copies", func(t *testing.T) {
		want := kicksJLSTZ[1][0]

		table, _ := Lookup(ShapeT).Kicks()
		table[1][0] = packKick(2, 2)

		again, _ := Lookup(ShapeT).Kicks()
		assert.Equal(t, want, again[1][0])
		assert.Equal(t, want, kicksJLSTZ[1][0])
	})

	t.Run("unknown shape panics", func(t *testing.T) {
		assert.Panics(t, func() { Lookup(ShapeNone) })
		assert.Panics(t, func() { Lookup(Shape(42)) })
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "T", ShapeT.String())
		assert.Equal(t, "-", ShapeNone.String())
		assert.Equal(t, "Shape(9)", Shape(9).String())
	})
}
