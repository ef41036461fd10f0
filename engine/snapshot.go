package engine

// Snapshot is a read-only copy of everything a front end needs to draw a
// frame. It shares no memory with the Game.
type Snapshot struct {
	Rows     []uint32
	Columns  int
	Ceiling  int
	Piece    Piece
	GhostRow int
	Held     Shape
	Next     Shape

	Score int
	Level int
	Lines int
	Combo int

	CanHold  bool
	Paused   bool
	GameOver bool
}

// Snapshot copies the current state of the round.
func (g *Game) Snapshot() Snapshot {
	rows := make([]uint32, g.playfield.Rows())
	for y := range rows {
		rows[y] = g.playfield.Row(y)
	}
	return Snapshot{
		Rows:     rows,
		Columns:  g.playfield.Columns(),
		Ceiling:  g.playfield.Ceiling(),
		Piece:    g.piece,
		GhostRow: g.ghostY,
		Held:     g.held,
		Next:     g.bag.Peek(),
		Score:    g.score,
		Level:    g.level,
		Lines:    g.playfield.LinesCleared(),
		Combo:    g.combo,
		CanHold:  g.canHold,
		Paused:   g.paused,
		GameOver: g.IsGameOver(),
	}
}

// Occupied reports whether board cell (col, row) is locked.
func (s *Snapshot) Occupied(col, row int) bool {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= s.Columns {
		return false
	}
	return s.Rows[row]&(1<<col) != 0
}

// PieceAt reports whether the piece in play covers board cell (col, row).
func (s *Snapshot) PieceAt(col, row int) bool {
	return s.Piece.Cells.At(col+ColumnOffset-s.Piece.X, row-s.Piece.Y)
}

// GhostAt reports whether the landing preview covers board cell (col, row).
func (s *Snapshot) GhostAt(col, row int) bool {
	return s.Piece.Cells.At(col+ColumnOffset-s.Piece.X, row-s.GhostRow)
}
