package game

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultKicks is the column-shift table tried, in order, when a rotation
// collides: one cell each way, then two.
var DefaultKicks = []int{-1, 1, -2, 2}

type Config struct {
	Width  int
	Height int

	// FallInterval fixes the gravity interval. Zero selects the level
	// curve returned by DropSpeed.
	FallInterval time.Duration

	Scoring ScoreTable

	// Seed drives the 7-bag randomizer. Ignored when Sequence is set.
	Seed int64
	// Sequence, when non-empty, replaces the bag with a fixed cycle.
	Sequence []Kind

	// Preview is the length of the next-piece queue.
	Preview int

	// WallKicks lists column offsets tried after a rotation collides.
	// Empty means rotations are either legal in place or rejected.
	WallKicks []int

	// HoldEnabled allows swapping the active piece into the hold slot.
	HoldEnabled bool

	// InitialBoard, if set, is copied as the starting playfield on every
	// reset. Its dimensions must match Width and Height.
	InitialBoard *Board

	OnEvent Listener
}

func DefaultConfig() Config {
	return Config{
		Width:       BoardWidth,
		Height:      BoardHeight,
		Scoring:     LinearScoring,
		Seed:        1,
		Preview:     1,
		HoldEnabled: true,
	}
}

func (c Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	}
	if c.Height < 4 {
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	}
	if c.FallInterval < 0 {
		return fmt.Errorf("%w: negative fall interval %v", ErrInvalidConfig, c.FallInterval)
	}
	if !c.Scoring.valid() {
		return fmt.Errorf("%w: score table %v must be non-negative and non-decreasing", ErrInvalidConfig, c.Scoring)
	}
	if c.Preview < 0 {
		return fmt.Errorf("%w: negative preview length %d", ErrInvalidConfig, c.Preview)
	}
	if b := c.InitialBoard; b != nil && (b.Width() != c.Width || b.Height() != c.Height) {
		return fmt.Errorf("%w: initial board is %dx%d, want %dx%d", ErrInvalidConfig, b.Width(), b.Height(), c.Width, c.Height)
	}
	for _, k := range c.Sequence {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown piece kind %d in sequence", ErrInvalidConfig, int(k))
		}
	}
	return nil
}

func (c Config) randomizer() Randomizer {
	if len(c.Sequence) > 0 {
		return NewSequence(c.Sequence...)
	}
	return NewBag(c.Seed)
}
