package game

// EventType tags entries on the display-event queue. The core appends
// events as steps execute; the presentation layer drains them once per
// frame for particles and sound. The queue carries no decisions back
// into the simulation.
type EventType int

const (
	EventFoodEaten EventType = iota
	EventSpecialEaten
	EventPowerUpSpawned
	EventPowerUpCollected
	EventLevelUp
	EventLifeLost
	EventGameOver
	EventStarted
)

type Event struct {
	Type EventType
	X, Y int       // field-pixel position of the cell involved, if any
	Kind PowerKind // set for power-up events
	Col  RGB       // suggested burst colour
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns all queued display events and empties the queue.
// The returned slice is only valid until the next call.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = g.events[:0]
	return out
}
