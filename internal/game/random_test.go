package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagIsDeterministic(t *testing.T) {
	a := NewBag(7)
	b := NewBag(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestBagDealsEveryKindPerSeven(t *testing.T) {
	bag := NewBag(99)
	for round := 0; round < 10; round++ {
		seen := make(map[Kind]bool)
		for i := 0; i < len(AllKinds); i++ {
			seen[bag.Next()] = true
		}
		assert.Len(t, seen, len(AllKinds), "round %d", round)
	}
}

func TestBagPeek(t *testing.T) {
	bag := NewBag(3)
	for i := 0; i < 20; i++ {
		want := bag.Peek()
		assert.Equal(t, want, bag.Next())
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(KindT, KindI)
	got := []Kind{s.Next(), s.Next(), s.Next()}
	assert.Equal(t, []Kind{KindT, KindI, KindT}, got)
}
