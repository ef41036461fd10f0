package debugui

import (
	"strings"

	"github.com/plus3/blockfall/engine"
)

// formatRow draws one playfield row, column 0 first. Locked cells are '#',
// the piece in play '@' and its landing preview '+'.
func formatRow(snap *engine.Snapshot, row int, ghost bool) string {
	var sb strings.Builder
	for col := range snap.Columns {
		switch {
		case snap.PieceAt(col, row):
			sb.WriteByte('@')
		case snap.Occupied(col, row):
			sb.WriteByte('#')
		case ghost && snap.GhostAt(col, row):
			sb.WriteByte('+')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
