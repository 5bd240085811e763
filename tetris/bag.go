package tetris

import "math/rand/v2"

// Bag hands out piece kinds in shuffled runs of seven. Every run holds each
// kind exactly once.
type Bag struct {
	rng   *rand.Rand
	items []Cell
}

// NewBag creates a bag whose shuffles are driven by seed.
func NewBag(seed uint64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		items: make([]Cell, 0, len(Kinds)),
	}
}

// Draw pops the next kind, refilling and reshuffling first if the bag is
// empty.
func (b *Bag) Draw() Cell {
	if len(b.items) == 0 {
		b.refill()
	}
	kind := b.items[len(b.items)-1]
	b.items = b.items[:len(b.items)-1]
	return kind
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.items)
}

// Empty discards the current run so the next Draw starts a fresh one.
func (b *Bag) Empty() {
	b.items = b.items[:0]
}

func (b *Bag) refill() {
	b.items = append(b.items[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.items), func(i, j int) {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	})
}
