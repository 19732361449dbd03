package core

import "math/rand"

// Bag is a 7-bag randomizer: it deals a shuffled permutation of all kinds and
// reshuffles once the permutation is exhausted.
type Bag struct {
	rng    *rand.Rand
	pieces [kindCount]Kind
	cursor int
}

// NewBag creates a bag driven by the given source. The first Draw shuffles.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng, cursor: kindCount}
}

// refill replaces the bag with a fresh uniform permutation.
func (b *Bag) refill() {
	copy(b.pieces[:], Kinds())
	b.rng.Shuffle(len(b.pieces), func(i, j int) {
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	})
	b.cursor = 0
}

// Draw returns the next kind.
func (b *Bag) Draw() Kind {
	if b.cursor >= len(b.pieces) {
		b.refill()
	}
	k := b.pieces[b.cursor]
	b.cursor++
	return k
}

// Peek returns the kind the next Draw will return without consuming it.
func (b *Bag) Peek() Kind {
	if b.cursor >= len(b.pieces) {
		b.refill()
	}
	return b.pieces[b.cursor]
}

// Remaining returns how many kinds are left in the current permutation.
func (b *Bag) Remaining() int {
	return len(b.pieces) - b.cursor
}
