package engine

import "math/rand/v2"

// Bag is the 7-bag randomizer: every run of seven draws that starts on a
// bag boundary holds each shape exactly once.
type Bag struct {
	shapes [ShapeCount]Shape
	cursor int
	rng    *rand.Rand
}

// NewBag creates a shuffled bag that draws from rng. The bag owns rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		shapes: Shapes(),
		rng:    rng,
	}
	b.shuffle()
	return b
}

// NewSeededBag creates a bag with its own PCG source.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (b *Bag) shuffle() {
	b.rng.Shuffle(len(b.shapes), func(i, j int) {
		b.shapes[i], b.shapes[j] = b.shapes[j], b.shapes[i]
	})
}

func (b *Bag) refill() {
	if b.cursor >= len(b.shapes) {
		b.cursor = 0
		b.shuffle()
	}
}

// Pop returns the next shape and advances the cursor, reshuffling once
// the bag runs out so the cursor always points at a valid shape.
func (b *Bag) Pop() Shape {
	shape := b.shapes[b.cursor]
	b.cursor++
	b.refill()
	return shape
}

// Peek returns the shape the next Pop will return.
func (b *Bag) Peek() Shape {
	return b.shapes[b.cursor]
}

// Cursor returns the index of the next draw within the current bag.
func (b *Bag) Cursor() int {
	return b.cursor
}

// Remaining returns the shapes left in the current bag, in draw order.
func (b *Bag) Remaining() []Shape {
	out := make([]Shape, len(b.shapes)-b.cursor)
	copy(out, b.shapes[b.cursor:])
	return out
}
