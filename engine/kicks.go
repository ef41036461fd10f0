package engine

// Kick is one packed wall-kick offset: the high nibble holds X and the low
// nibble holds Y, both as 4-bit two's complement values in a Y-up frame.
type Kick uint8

// KickTests is the number of kick offsets tried after the unkicked rotation.
const KickTests = 4

// KickTable holds the offsets for every (state, direction) transition.
// Row state*2 is the counter-clockwise rotation out of state, row
// state*2+1 the clockwise one.
type KickTable [RotationStates * 2][KickTests]Kick

func packKick(x, y int) Kick {
	return Kick((x&0x0F)<<4 | y&0x0F)
}

func signExtend4(v uint8) int {
	return int(v&0x0F^0b1000) - 0b1000
}

// Unpack decodes the signed offsets as written in the table, Y pointing up.
func (k Kick) Unpack() (x, y int) {
	return signExtend4(uint8(k) >> 4), signExtend4(uint8(k))
}

// Row returns the kick row used when rotating out of state.
func (t *KickTable) Row(state int, clockwise bool) [KickTests]Kick {
	index := state * 2
	if clockwise {
		index++
	}
	return t[index]
}

// Offset returns the board-space offset for kick test (0-based, excluding
// the unkicked attempt). Rows grow downward on the board, so Y is negated.
func (t *KickTable) Offset(state int, clockwise bool, test int) (dx, dy int) {
	x, y := t.Row(state, clockwise)[test].Unpack()
	return x, -y
}

// kicksJLSTZ is shared by the J, L, S, T and Z shapes. Kick tables are
// never written after init; callers only see copies.
var kicksJLSTZ = KickTable{
	// 0 -> L
	{packKick(1, 0), packKick(1, 1), packKick(0, -2), packKick(1, -2)},
	// 0 -> R
	{packKick(-1, 0), packKick(-1, 1), packKick(0, -2), packKick(-1, -2)},
	// R -> 0
	{packKick(1, 0), packKick(1, -1), packKick(0, 2), packKick(1, 2)},
	// R -> 2
	{packKick(1, 0), packKick(1, -1), packKick(0, 2), packKick(1, 2)},
	// 2 -> R
	{packKick(-1, 0), packKick(-1, 1), packKick(0, -2), packKick(-1, -2)},
	// 2 -> L
	{packKick(1, 0), packKick(1, 1), packKick(0, -2), packKick(1, -2)},
	// L -> 2
	{packKick(-1, 0), packKick(-1, -1), packKick(0, 2), packKick(-1, 2)},
	// L -> 0
	{packKick(-1, 0), packKick(-1, -1), packKick(0, 2), packKick(-1, 2)},
}

// kicksI is used by the I shape only.
var kicksI = KickTable{
	// 0 -> L
	{packKick(-1, 0), packKick(2, 0), packKick(-1, 2), packKick(2, -1)},
	// 0 -> R
	{packKick(-2, 0), packKick(1, 0), packKick(-2, -1), packKick(1, 2)},
	// R -> 0
	{packKick(2, 0), packKick(-1, 0), packKick(2, 1), packKick(-1, -2)},
	// R -> 2
	{packKick(-1, 0), packKick(2, 0), packKick(-1, 2), packKick(2, -1)},
	// 2 -> R
	{packKick(1, 0), packKick(-2, 0), packKick(1, -2), packKick(-2, 1)},
	// 2 -> L
	{packKick(2, 0), packKick(-1, 0), packKick(2, 1), packKick(-1, -2)},
	// L -> 2
	{packKick(-2, 0), packKick(1, 0), packKick(-2, -1), packKick(1, 2)},
	// L -> 0
	{packKick(1, 0), packKick(-2, 0), packKick(1, -2), packKick(-2, 1)},
}
