package game

import (
	"fmt"
	"time"
)

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Phase is the engine's position in the spawn, fall, lock, clear cycle.
// Spawning, Locking and ClearingLines only exist while a call is in
// progress; between calls the phase is Falling or GameOver.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearingLines
	PhaseGameOver
)

var phaseNames = [...]string{"spawning", "falling", "locking", "clearing_lines", "game_over"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Engine owns one board and one active piece. It is not safe for
// concurrent use; the driving loop must serialize all calls.
type Engine struct {
	cfg   Config
	board *Board
	rand  Randomizer

	current Piece
	queue   []Kind
	held    Kind
	hasHeld bool
	canHold bool

	score int
	lines int
	level int

	phase   Phase
	elapsed time.Duration
}

// New validates cfg and starts a game: the board is reset and the first
// piece spawned. If that piece cannot be placed the engine starts in
// GameOver.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	e.Reset()
	return e, nil
}

// Reset reinitializes the board, score and randomizer and spawns the
// first piece. With the same Config the following game is identical.
func (e *Engine) Reset() {
	if e.cfg.InitialBoard != nil {
		e.board = e.cfg.InitialBoard.Clone()
	} else {
		e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	}
	e.rand = e.cfg.randomizer()
	e.queue = e.queue[:0]
	for i := 0; i < e.cfg.Preview; i++ {
		e.queue = append(e.queue, e.rand.Next())
	}
	e.held = 0
	e.hasHeld = false
	e.canHold = true
	e.score = 0
	e.lines = 0
	e.level = 1
	e.elapsed = 0

	e.emit(Event{Type: EventReset})
	e.spawn(e.pull())
}

func (e *Engine) pull() Kind {
	if len(e.queue) == 0 {
		return e.rand.Next()
	}
	k := e.queue[0]
	e.queue = append(e.queue[1:], e.rand.Next())
	return k
}

func (e *Engine) spawn(k Kind) bool {
	e.phase = PhaseSpawning
	p := SpawnPiece(k, e.board.Width())
	e.current = p

	if !IsLegal(e.board, p) {
		e.phase = PhaseGameOver
		e.emit(Event{Type: EventGameOver, Piece: p})
		return false
	}

	e.phase = PhaseFalling
	e.emit(Event{Type: EventSpawn, Piece: p})
	return true
}

func (e *Engine) running() bool {
	return e.phase == PhaseFalling
}

// Move shifts the active piece by (dCol, dRow). It returns false and
// leaves the piece untouched if the target placement is illegal or the
// game is over.
func (e *Engine) Move(dCol, dRow int) bool {
	if !e.running() {
		return false
	}
	next := e.current.Translated(dCol, dRow)
	if !IsLegal(e.board, next) {
		return false
	}
	e.current = next
	e.emit(Event{Type: EventMove, Piece: next})
	return true
}

func (e *Engine) MoveLeft() bool  { return e.Move(-1, 0) }
func (e *Engine) MoveRight() bool { return e.Move(1, 0) }

// SoftDrop moves the piece down one row without locking it.
func (e *Engine) SoftDrop() bool { return e.Move(0, 1) }

// Rotate turns the active piece clockwise, trying the configured wall
// kicks if the in-place rotation collides.
func (e *Engine) Rotate() bool {
	return e.rotateTo(e.current.Rotated())
}

// RotateBack turns the active piece counter-clockwise.
func (e *Engine) RotateBack() bool {
	return e.rotateTo(e.current.RotatedBack())
}

func (e *Engine) rotateTo(rotated Piece) bool {
	if !e.running() {
		return false
	}
	p, ok := resolveRotation(e.board, rotated, e.cfg.WallKicks)
	if !ok {
		return false
	}
	e.current = p
	e.emit(Event{Type: EventRotate, Piece: p})
	return true
}

// HardDrop drops the piece as far as it can fall and locks it at once.
// It returns the number of rows cleared by the lock.
func (e *Engine) HardDrop() int {
	if !e.running() {
		return 0
	}
	e.current = e.ghost()
	return e.lock()
}

// Hold swaps the active piece into the hold slot, spawning either the held
// piece or the next one from the queue. Only one hold is allowed per
// locked piece.
func (e *Engine) Hold() bool {
	if !e.running() || !e.cfg.HoldEnabled || !e.canHold {
		return false
	}
	e.canHold = false

	kind := e.current.Kind
	e.emit(Event{Type: EventHold, Piece: e.current})
	if !e.hasHeld {
		e.held = kind
		e.hasHeld = true
		e.spawn(e.pull())
		return true
	}

	next := e.held
	e.held = kind
	e.spawn(next)
	return true
}

// Step applies one gravity step. It returns true if the piece fell and
// false if it locked instead (or the game is over).
func (e *Engine) Step() bool {
	if !e.running() {
		return false
	}
	next := e.current.Translated(0, 1)
	if IsLegal(e.board, next) {
		e.current = next
		return true
	}
	e.lock()
	return false
}

// Tick advances the gravity clock by elapsed and performs one Step for
// every full fall interval accumulated. It returns the number of steps.
func (e *Engine) Tick(elapsed time.Duration) int {
	if !e.running() || elapsed <= 0 {
		return 0
	}
	e.elapsed += elapsed

	steps := 0
	for e.running() {
		interval := e.FallInterval()
		if e.elapsed < interval {
			break
		}
		e.elapsed -= interval
		e.Step()
		steps++
	}
	if !e.running() {
		e.elapsed = 0
	}
	return steps
}

// lock merges the active piece into the board, clears full rows, scores
// them and spawns the next piece.
func (e *Engine) lock() int {
	e.phase = PhaseLocking
	locked := e.current
	cells := locked.Cells()
	if err := e.board.Merge(cells[:], locked.Kind); err != nil {
		panic(fmt.Sprintf("game: locking %s at (%d,%d) rotation %d: %v",
			locked.Kind, locked.Col, locked.Row, locked.Rotation, err))
	}
	e.emit(Event{Type: EventLock, Piece: locked})

	e.phase = PhaseClearingLines
	cleared := e.board.ClearFullRows()
	if cleared > 0 {
		points := e.cfg.Scoring.Points(cleared, e.level)
		e.score += points
		e.lines += cleared
		e.level = levelForLines(e.lines)
		e.emit(Event{Type: EventLinesCleared, Piece: locked, Lines: cleared, Points: points})
	}

	e.canHold = true
	e.spawn(e.pull())
	return cleared
}

func (e *Engine) ghost() Piece {
	p := e.current
	for {
		next := p.Translated(0, 1)
		if !IsLegal(e.board, next) {
			return p
		}
		p = next
	}
}

func (e *Engine) emit(ev Event) {
	if e.cfg.OnEvent == nil {
		return
	}
	ev.Score = e.score
	e.cfg.OnEvent(ev)
}

// --- Read-only queries ---

// Board returns a copy of the playfield without the active piece.
func (e *Engine) Board() *Board { return e.board.Clone() }

func (e *Engine) Score() int   { return e.score }
func (e *Engine) Lines() int   { return e.lines }
func (e *Engine) Level() int   { return e.level }
func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Status() Status {
	if e.phase == PhaseGameOver {
		return StatusGameOver
	}
	return StatusRunning
}

// Current returns the active piece. After game over it is the piece that
// failed to spawn.
func (e *Engine) Current() Piece { return e.current }

// Ghost returns where the active piece would land on a hard drop.
func (e *Engine) Ghost() Piece {
	if !e.running() {
		return e.current
	}
	return e.ghost()
}

// Next returns the upcoming kinds, soonest first.
func (e *Engine) Next() []Kind {
	return append([]Kind(nil), e.queue...)
}

func (e *Engine) Held() (Kind, bool) { return e.held, e.hasHeld }
func (e *Engine) CanHold() bool      { return e.running() && e.cfg.HoldEnabled && e.canHold }

// FallInterval is the current gravity interval.
func (e *Engine) FallInterval() time.Duration {
	if e.cfg.FallInterval > 0 {
		return e.cfg.FallInterval
	}
	return DropSpeed(e.level)
}

func (e *Engine) Config() Config { return e.cfg }
