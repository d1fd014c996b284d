package game

import "math/rand"

// Randomizer supplies the kind of each newly spawned piece.
type Randomizer interface {
	Next() Kind
}

// Bag produces pieces using the 7-bag randomizer system.
// When created with the same seed, two bags produce identical sequences.
type Bag struct {
	rng *rand.Rand
	bag []Kind
}

// NewBag creates a seeded 7-bag generator.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next kind from the bag.
func (b *Bag) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// Peek returns the next kind without consuming it.
func (b *Bag) Peek() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *Bag) refill() {
	b.bag = append([]Kind(nil), AllKinds[:]...)
	// Fisher-Yates shuffle
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// Sequence cycles through a fixed list of kinds. Useful for replays and
// scripted scenarios.
type Sequence struct {
	kinds []Kind
	pos   int
}

func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = AllKinds[:]
	}
	return &Sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *Sequence) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
