package engine

import (
	"math/bits"
	"strings"
)

// GridSize is the width and height of the bit grid a Cells value encodes.
const GridSize = 4

// Cells is a 4x4 occupancy grid packed into 16 bits.
// Bit index row*4+col is set when that cell is occupied.
type Cells uint16

// RotationSize is the edge length of the sub-grid a shape rotates within.
type RotationSize uint8

const (
	RotationNone RotationSize = 2 // square, never rotated
	Rotation3x3  RotationSize = 3
	Rotation4x4  RotationSize = 4
)

// At reports whether the cell at (col, row) is occupied.
// Coordinates outside the grid are never occupied.
func (c Cells) At(col, row int) bool {
	if col < 0 || row < 0 || col >= GridSize || row >= GridSize {
		return false
	}
	return c&(1<<(GridSize*row+col)) != 0
}

// Count returns the number of occupied cells.
func (c Cells) Count() int {
	return bits.OnesCount16(uint16(c))
}

// String renders the grid as four rows of '#' and '.'.
func (c Cells) String() string {
	var sb strings.Builder
	for row := range GridSize {
		for col := range GridSize {
			if c.At(col, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RotateCells turns the size x size top-left sub-grid of cells by 90 degrees.
func RotateCells(cells Cells, size RotationSize, clockwise bool) Cells {
	n := int(size)
	var out Cells
	for y := range n {
		srcCol := n - 1 - y
		if clockwise {
			srcCol = y
		}
		for x := range n {
			srcRow := x
			if clockwise {
				srcRow = n - 1 - x
			}
			bit := (cells >> (GridSize*srcRow + srcCol)) & 1
			out |= bit << (GridSize*y + x)
		}
	}
	return out
}
