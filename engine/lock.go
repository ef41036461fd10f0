package engine

const (
	// LockDelay is how long, in seconds, a grounded piece may sit still before it locks.
	LockDelay = 0.5
	// MaxLockMoves is how many moves or rotations a grounded piece gets before
	// it locks regardless of the timer.
	MaxLockMoves = 10
)

// LockState is the phase of the lock-delay machine.
type LockState uint8

const (
	Airborne LockState = iota
	Grounded
	Locked
)

func (s LockState) String() string {
	switch s {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	case Locked:
		return "locked"
	}
	return "unknown"
}

// LockState returns the current lock phase. A live piece is never Locked;
// that phase is immediately replaced by a fresh spawn.
func (p *Piece) LockState() LockState {
	if p.Grounded {
		return Grounded
	}
	return Airborne
}

// ResetLock returns the piece to the airborne phase.
func (p *Piece) ResetLock() {
	p.Grounded = false
	p.LockTimer = 0
	p.LockMoves = 0
}

// advanceLock runs one tick of the lock-delay machine and reports whether
// the piece has to lock now. fell is set when the piece moved down this
// tick, shifted when it moved sideways or rotated.
func (p *Piece) advanceLock(dt float64, landingRow int, fell, shifted, infinite bool) bool {
	switch {
	case fell:
		p.ResetLock()
	case p.Grounded:
		if !shifted {
			p.LockTimer += dt
			return p.LockTimer >= LockDelay
		}
		if infinite {
			p.ResetLock()
			return false
		}
		p.LockTimer = 0
		p.LockMoves++
		return p.LockMoves >= MaxLockMoves
	case p.Y == landingRow:
		p.Grounded = true
	}
	return false
}
