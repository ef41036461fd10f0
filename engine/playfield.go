package engine

import "fmt"

const (
	// MaxRows bounds the row count of a playfield.
	MaxRows = 32
	// MaxColumns bounds the column count; one bit per column in a uint32 row.
	MaxColumns = 32
	// ColumnOffset is the number of reserved columns left of the board.
	// Piece positions are expressed in this shifted frame so every
	// orientation can touch the left wall with a non-negative X.
	ColumnOffset = 2
)

// Playfield is the grid of locked cells. Row 0 is the top; each row is a
// bit mask with bit n set when board column n is occupied.
type Playfield struct {
	rows         [MaxRows]uint32
	rowCount     int
	columnCount  int
	ceiling      int
	linesCleared int
}

// NewPlayfield creates an empty playfield. Rows above ceiling form the
// spawn band; anything locked there ends the game.
func NewPlayfield(columns, rows, ceiling int) *Playfield {
	if columns < GridSize || columns > MaxColumns {
		panic(fmt.Sprintf("engine: column count %d out of range [%d, %d]", columns, GridSize, MaxColumns))
	}
	if rows < GridSize || rows > MaxRows {
		panic(fmt.Sprintf("engine: row count %d out of range [%d, %d]", rows, GridSize, MaxRows))
	}
	if ceiling < 0 || ceiling >= rows {
		panic(fmt.Sprintf("engine: ceiling %d out of range [0, %d)", ceiling, rows))
	}
	return &Playfield{
		rowCount:    rows,
		columnCount: columns,
		ceiling:     ceiling,
	}
}

func (p *Playfield) Rows() int { return p.rowCount }
func (p *Playfield) Columns() int { return p.columnCount }
func (p *Playfield) Ceiling() int { return p.ceiling }
func (p *Playfield) LinesCleared() int { return p.linesCleared }

// Row returns the occupancy mask of row y.
func (p *Playfield) Row(y int) uint32 {
	if y < 0 || y >= p.rowCount {
		return 0
	}
	return p.rows[y]
}

// FullRow is the mask of a row with every column occupied.
func (p *Playfield) FullRow() uint32 {
	return uint32(1)<<p.columnCount - 1
}

// Occupied reports whether board column col of row is locked.
// Columns are zero-based and exclude the reserved offset.
func (p *Playfield) Occupied(col, row int) bool {
	if col < 0 || col >= p.columnCount || row < 0 || row >= p.rowCount {
		return false
	}
	return p.rows[row]&(1<<col) != 0
}

// Fill locks board column col of row. Out-of-range cells are ignored.
func (p *Playfield) Fill(col, row int) {
	if col < 0 || col >= p.columnCount || row < 0 || row >= p.rowCount {
		return
	}
	p.rows[row] |= 1 << col
}

// SetRow replaces the mask of row y, truncated to the column count.
func (p *Playfield) SetRow(y int, mask uint32) {
	if y < 0 || y >= p.rowCount {
		return
	}
	p.rows[y] = mask & p.FullRow()
}

// IsOutside reports whether the offset-frame position (x, y) lies outside the board.
func (p *Playfield) IsOutside(x, y int) bool {
	return x < ColumnOffset || x >= ColumnOffset+p.columnCount || y < 0 || y >= p.rowCount
}

func (p *Playfield) blocked(x, y int) bool {
	return p.IsOutside(x, y) || p.rows[y]&(1<<(x-ColumnOffset)) != 0
}

// Collides reports whether cells placed with their grid origin at (x, y)
// overlap a wall, the floor or a locked cell.
func (p *Playfield) Collides(cells Cells, size RotationSize, x, y int) bool {
	n := int(size)
	remaining := cells.Count()
	for row := 0; row < n && remaining > 0; row++ {
		for col := 0; col < n && remaining > 0; col++ {
			if !cells.At(col, row) {
				continue
			}
			remaining--
			if p.blocked(x+col, y+row) {
				return true
			}
		}
	}
	return false
}

// OnGround reports whether cells fit at (x, y) but not one row lower.
func (p *Playfield) OnGround(cells Cells, size RotationSize, x, y int) bool {
	return !p.Collides(cells, size, x, y) && p.Collides(cells, size, x, y+1)
}

// HardDropRow returns the row the cells would land on when dropped
// straight down from y. It returns y when no landing row exists below.
func (p *Playfield) HardDropRow(cells Cells, size RotationSize, x, y int) int {
	for row := y; row < p.rowCount; row++ {
		if p.OnGround(cells, size, x, row) {
			return row
		}
	}
	return y
}

// Write locks cells at (x, y) without a collision check. Cells outside the
// board are dropped.
func (p *Playfield) Write(cells Cells, size RotationSize, x, y int) {
	n := int(size)
	for row := range n {
		for col := range n {
			if !cells.At(col, row) || p.IsOutside(x+col, y+row) {
				continue
			}
			p.rows[y+row] |= 1 << (x + col - ColumnOffset)
		}
	}
}

// ClearRows removes every full row above below (exclusive) and shifts the
// rows over them down. Rows at or under below are not touched. It returns
// the number of rows removed.
func (p *Playfield) ClearRows(below int) int {
	below = min(below, p.rowCount)
	full := p.FullRow()
	cleared := 0
	for y := below - 1; y >= 0; y-- {
		if p.rows[y] == full {
			cleared++
			continue
		}
		if cleared > 0 {
			p.rows[y+cleared] = p.rows[y]
			p.rows[y] = 0
		}
	}
	// a full row in the top band has nothing above it to shift in
	for y := range cleared {
		p.rows[y] = 0
	}
	p.linesCleared += cleared
	return cleared
}

// AboveCeiling reports whether any locked cell sits in the spawn band.
func (p *Playfield) AboveCeiling() bool {
	for y := p.ceiling; y > 0; y-- {
		if p.rows[y-1] != 0 {
			return true
		}
	}
	return false
}

// Height returns the number of rows from the floor to the highest locked cell.
func (p *Playfield) Height() int {
	for y := range p.rowCount {
		if p.rows[y] != 0 {
			return p.rowCount - y
		}
	}
	return 0
}
