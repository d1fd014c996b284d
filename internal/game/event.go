package game

// EventType identifies what happened inside the engine.
type EventType int

const (
	EventSpawn EventType = iota
	EventMove
	EventRotate
	EventHold
	EventLock
	EventLinesCleared
	EventGameOver
	EventReset
)

var eventNames = [...]string{
	"spawn",
	"move",
	"rotate",
	"hold",
	"lock",
	"lines_cleared",
	"game_over",
	"reset",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event is delivered synchronously to the observer registered in Config.
type Event struct {
	Type  EventType
	Piece Piece
	// Lines is the number of rows removed, set for EventLinesCleared.
	Lines int
	// Points awarded by this clear, set for EventLinesCleared.
	Points int
	Score  int
}

// Listener receives engine events. It must not call mutating methods on
// the engine that emitted the event.
type Listener func(Event)
