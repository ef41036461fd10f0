package engine

// Placement records the outcome of the most recent lock.
type Placement struct {
	Shape  Shape
	Rows   int
	Points int
	// Combo is the number of consecutive clearing placements before this one.
	Combo int
	Level int
}

// Game owns one round: the playfield, the piece in play, the bag and the
// score. It is driven by calling Tick once per frame and is not safe for
// concurrent use.
type Game struct {
	cfg       Config
	playfield *Playfield
	piece     Piece
	bag       *Bag
	stats     *Stats

	score   int
	level   int
	combo   int
	held    Shape
	canHold bool
	ghostY  int

	prev      Action
	paused    bool
	toppedOut bool
	last      Placement
}

// NewGame starts a round with the first piece already in play.
func NewGame(cfg Config) *Game {
	g := &Game{
		cfg:       cfg,
		playfield: NewPlayfield(cfg.Columns, cfg.Rows, cfg.Ceiling),
		bag:       NewSeededBag(cfg.Seed),
		stats:     newStats(),
		level:     min(max(cfg.StartLevel, 0), LevelCount-1),
		canHold:   true,
	}
	g.spawn(g.bag.Pop())
	return g
}

// Tick advances the round by dt seconds with actions held. Hold, hard
// drop, rotation, pause and the single-cell tap of a move key fire only on
// the tick their bit is first set; soft drop and held movement apply on
// every tick the bit is set. Tick does nothing once the game is over.
func (g *Game) Tick(dt float64, actions Action) {
	pressed := actions &^ g.prev
	g.prev = actions

	if g.IsGameOver() {
		return
	}

	if pressed.Has(ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	switch {
	case pressed.Has(ActionHold) && g.canHold && g.cfg.Settings.Has(SettingAllowHold):
		g.hold()
	case pressed.Has(ActionHardDrop):
		g.hardDrop()
	default:
		g.step(dt, actions, pressed)
	}
}

// IsGameOver reports whether the round has ended: a piece locked inside
// the spawn band or a new piece had no room to spawn.
func (g *Game) IsGameOver() bool {
	return g.toppedOut || g.playfield.AboveCeiling()
}

func (g *Game) step(dt float64, held, pressed Action) {
	pf := g.playfield
	p := &g.piece

	rotated := false
	switch {
	case pressed.Has(ActionRotateCW):
		rotated = p.Rotate(pf, true)
	case pressed.Has(ActionRotateCCW):
		rotated = p.Rotate(pf, false)
	}

	shifted := false
	tap := 0
	if pressed.Has(ActionMoveRight) {
		tap++
	}
	if pressed.Has(ActionMoveLeft) {
		tap--
	}
	if tap != 0 {
		shifted = p.nudge(pf, tap)
	} else {
		dir := 0
		if held.Has(ActionMoveRight) {
			dir++
		}
		if held.Has(ActionMoveLeft) {
			dir--
		}
		p.VelocityX += float64(dir) * g.cfg.HorizontalSpeed * dt
		shifted = p.drain(pf, &p.VelocityX, true) > 0
	}

	speed := levels[g.level].Gravity
	if held.Has(ActionSoftDrop) {
		speed += g.cfg.SoftDropSpeed
	}
	p.VelocityY += speed * dt
	fell := p.drain(pf, &p.VelocityY, false) > 0

	g.ghostY = p.HardDropRow(pf)

	infinite := g.cfg.Settings.Has(SettingInfiniteLockDelay)
	if p.advanceLock(dt, g.ghostY, fell, shifted || rotated, infinite) {
		p.Y = g.ghostY
		g.place()
	}
}

func (g *Game) hold() {
	next := g.held
	if next == ShapeNone {
		next = g.bag.Pop()
	}
	g.held = g.piece.Shape
	g.canHold = false
	g.stats.Holds++
	g.spawn(next)
}

func (g *Game) hardDrop() {
	g.piece.Y = g.piece.HardDropRow(g.playfield)
	g.stats.HardDrops++
	g.place()
}

// place locks the piece where it stands, clears rows, scores and spawns
// the next piece.
func (g *Game) place() {
	p := &g.piece
	g.playfield.Write(p.Cells, p.Size, p.X, p.Y)
	rows := g.playfield.ClearRows(p.Bottom())

	g.last = Placement{
		Shape:  p.Shape,
		Rows:   rows,
		Points: PlacementScore(rows, g.level, g.combo),
		Combo:  g.combo,
		Level:  g.level,
	}
	g.score += g.last.Points
	if rows > 0 {
		g.combo++
	} else {
		g.combo = 0
	}
	g.stats.recordPlacement(rows, g.combo)

	g.level = AdvanceLevel(g.level, g.playfield.LinesCleared())
	g.canHold = true
	g.spawn(g.bag.Pop())
}

func (g *Game) spawn(shape Shape) {
	g.piece = NewPiece(shape, g.playfield)
	g.stats.recordSpawn(shape)
	if g.piece.Collides(g.playfield) {
		g.toppedOut = true
	}
	g.ghostY = g.piece.HardDropRow(g.playfield)
}

func (g *Game) Score() int { return g.score }
func (g *Game) Level() int { return g.level }
func (g *Game) Lines() int { return g.playfield.LinesCleared() }
func (g *Game) Combo() int { return g.combo }
func (g *Game) Held() Shape { return g.held }
func (g *Game) Next() Shape { return g.bag.Peek() }
func (g *Game) CanHold() bool { return g.canHold }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) GhostRow() int { return g.ghostY }
func (g *Game) Config() Config { return g.cfg }
func (g *Game) Stats() *Stats { return g.stats }
func (g *Game) LastPlacement() Placement { return g.last }

// Piece returns a copy of the piece in play.
func (g *Game) Piece() Piece { return g.piece }

// Playfield returns a copy of the locked cells.
func (g *Game) Playfield() Playfield { return *g.playfield }

// Bag exposes the randomizer for inspection.
func (g *Game) Bag() *Bag { return g.bag }
