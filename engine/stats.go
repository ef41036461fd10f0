package engine

import "github.com/kamstrup/intmap"

// Stats accumulates counters over a round.
type Stats struct {
	spawned    *intmap.Map[Shape, int]
	placements *intmap.Map[int, int]

	Holds     int
	HardDrops int
	MaxCombo  int
}

func newStats() *Stats {
	return &Stats{
		spawned:    intmap.New[Shape, int](ShapeCount),
		placements: intmap.New[int, int](len(lineClearPoints)),
	}
}

func (s *Stats) recordSpawn(shape Shape) {
	n, _ := s.spawned.Get(shape)
	s.spawned.Put(shape, n+1)
}

func (s *Stats) recordPlacement(rows, combo int) {
	n, _ := s.placements.Get(rows)
	s.placements.Put(rows, n+1)
	s.MaxCombo = max(s.MaxCombo, combo)
}

// Spawned returns how many pieces of shape have entered play.
func (s *Stats) Spawned(shape Shape) int {
	n, _ := s.spawned.Get(shape)
	return n
}

// Pieces returns the total number of pieces that entered play.
func (s *Stats) Pieces() int {
	total := 0
	for _, shape := range Shapes() {
		total += s.Spawned(shape)
	}
	return total
}

// Placements returns how many placements cleared exactly rows lines.
func (s *Stats) Placements(rows int) int {
	n, _ := s.placements.Get(rows)
	return n
}

// TotalPlacements returns the number of pieces locked so far.
func (s *Stats) TotalPlacements() int {
	total := 0
	for rows := range len(lineClearPoints) {
		total += s.Placements(rows)
	}
	return total
}
