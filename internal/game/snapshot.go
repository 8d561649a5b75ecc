package game

// PowerUpView is one live power-up as seen by the presentation layer.
type PowerUpView struct {
	Pos       Cell
	Kind      PowerKind
	Remaining float64
}

// EffectView describes the active effect, if any.
type EffectView struct {
	Present   bool
	Kind      PowerKind
	Remaining float64
}

// Snapshot is a read-only copy of everything the presentation layer
// needs to draw one frame. Slices are freshly allocated; mutating a
// snapshot never touches the simulation.
type Snapshot struct {
	State GameState

	Snake      []Cell
	Food       Cell
	HasFood    bool
	Special    Cell
	HasSpecial bool

	PowerUps []PowerUpView
	Statics  []Rect
	Movers   []Rect

	Score int
	Level int
	Lives int
	High  int

	Effect EffectView

	// Clock is the game-clock time in seconds, frozen while paused.
	// The renderer uses it for pulse animations so they stop on pause.
	Clock float64
}

// Snapshot captures the current observable state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:      g.State,
		Snake:      append([]Cell(nil), g.snake.Body...),
		Food:       g.foods.Food,
		HasFood:    !g.foods.Missing,
		Special:    g.foods.Special.Pos,
		HasSpecial: g.foods.HasSpecial,
		Score:      g.Score,
		Level:      g.Level,
		Lives:      g.Lives,
		High:       g.High,
		Clock:      g.now,
	}
	for _, p := range g.ups.Ups {
		s.PowerUps = append(s.PowerUps, PowerUpView{
			Pos:       p.Pos,
			Kind:      p.Kind,
			Remaining: g.cfg.PowerUpTTL - (g.now - p.SpawnedAt),
		})
	}
	s.Statics = append([]Rect(nil), g.statics...)
	for i := range g.movers {
		s.Movers = append(s.Movers, g.movers[i].Rect)
	}
	if g.effect.Present && g.now <= g.effect.Until {
		s.Effect = EffectView{
			Present:   true,
			Kind:      g.effect.Kind,
			Remaining: g.effect.Remaining(g.now),
		}
	}
	return s
}
