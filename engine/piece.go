package engine

import "math"

// Piece is the shape currently under player control.
type Piece struct {
	Cells    Cells
	Shape    Shape
	Size     RotationSize
	Rotation int // 0 spawn, 1 right, 2 180, 3 left
	X, Y     int

	kicks *KickTable

	// Fractional cell movement carried between ticks.
	VelocityX float64
	VelocityY float64

	LockTimer float64
	LockMoves int
	Grounded  bool
}

// NewPiece returns shape in its spawn orientation at the spawn position of pf.
func NewPiece(shape Shape, pf *Playfield) Piece {
	def := Lookup(shape)
	return Piece{
		Cells: def.Cells,
		Shape: def.Shape,
		Size:  def.Size,
		kicks: def.kicks,
		X:     ColumnOffset + (pf.Columns()-int(def.Size))/2,
		Y:     max(pf.Ceiling()-2, 0),
	}
}

// Collides reports whether the piece overlaps anything at its position.
func (p *Piece) Collides(pf *Playfield) bool {
	return pf.Collides(p.Cells, p.Size, p.X, p.Y)
}

// OnGround reports whether the piece rests directly on an obstruction.
func (p *Piece) OnGround(pf *Playfield) bool {
	return pf.OnGround(p.Cells, p.Size, p.X, p.Y)
}

// HardDropRow returns the landing row of the piece; also the ghost row.
func (p *Piece) HardDropRow(pf *Playfield) int {
	return pf.HardDropRow(p.Cells, p.Size, p.X, p.Y)
}

// Bottom returns the first row below the piece's rotation grid.
func (p *Piece) Bottom() int {
	return p.Y + int(p.Size)
}

// ResetVelocity drops any carried fractional movement.
func (p *Piece) ResetVelocity() {
	p.VelocityX = 0
	p.VelocityY = 0
}

// Move shifts the piece by (dx, dy) if the destination is free.
func (p *Piece) Move(pf *Playfield, dx, dy int) bool {
	x, y := p.X+dx, p.Y+dy
	if x < 0 || y < 0 || pf.Collides(p.Cells, p.Size, x, y) {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// Rotate turns the piece a quarter turn, trying the unkicked position and
// then each kick offset in order. The first free position wins. When none
// is free the piece is left untouched and Rotate returns false.
func (p *Piece) Rotate(pf *Playfield, clockwise bool) bool {
	if p.Size == RotationNone || p.kicks == nil {
		return true
	}

	rotated := RotateCells(p.Cells, p.Size, clockwise)
	for test := 0; test <= KickTests; test++ {
		dx, dy := 0, 0
		if test > 0 {
			dx, dy = p.kicks.Offset(p.Rotation, clockwise, test-1)
		}

		x, y := p.X+dx, p.Y+dy
		if x < 0 || y < 0 {
			continue
		}
		if pf.Collides(rotated, p.Size, x, y) {
			continue
		}

		p.Cells = rotated
		p.X, p.Y = x, y
		if clockwise {
			p.Rotation = (p.Rotation + 1) % RotationStates
		} else {
			p.Rotation = (p.Rotation + RotationStates - 1) % RotationStates
		}
		return true
	}
	return false
}

// drain spends the whole cells held in velocity along one axis, one cell
// at a time, stopping at the first blocked step. Every whole cell is taken
// out of velocity whether or not it was used, so pushing into a wall does
// not build up. It returns the number of cells moved.
func (p *Piece) drain(pf *Playfield, velocity *float64, horizontal bool) int {
	whole := math.Trunc(*velocity)
	if whole == 0 {
		return 0
	}
	*velocity -= whole

	dir := 1
	if whole < 0 {
		dir = -1
	}
	// no board is wider or taller than MaxRows
	steps := int(min(math.Abs(whole), MaxRows))

	moved := 0
	for moved < steps {
		dx, dy := 0, dir
		if horizontal {
			dx, dy = dir, 0
		}
		if !p.Move(pf, dx, dy) {
			break
		}
		moved++
	}
	return moved
}

// nudge is a single-cell horizontal tap. Carried horizontal velocity is
// discarded first so it cannot cancel the tap.
func (p *Piece) nudge(pf *Playfield, dir int) bool {
	p.VelocityX = 0
	return p.Move(pf, dir, 0)
}
