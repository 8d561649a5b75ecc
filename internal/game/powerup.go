package game

// PowerKind is the closed set of power-up variants. Every switch over it
// is exhaustive; adding a kind without handling it everywhere is a
// compile-time hole you will hit immediately in Color/Name/multiplier.
type PowerKind int

const (
	PowerSpeed PowerKind = iota
	PowerSlow
	PowerBonus

	powerKindCount // must stay last
)

func (k PowerKind) Name() string {
	switch k {
	case PowerSpeed:
		return "SPEED"
	case PowerSlow:
		return "SLOW"
	case PowerBonus:
		return "BONUS"
	}
	return "?"
}

func (k PowerKind) Color() RGB {
	switch k {
	case PowerSpeed:
		return Palette.Speed
	case PowerSlow:
		return Palette.Slow
	case PowerBonus:
		return Palette.Bonus
	}
	return Palette.Text
}

// PowerUp is a collectible on the field with a fixed time to live.
// Times are on the game clock, which freezes while paused.
type PowerUp struct {
	Pos       Cell
	Kind      PowerKind
	SpawnedAt float64
}

// Alive reports whether the power-up's TTL has not yet elapsed.
func (p PowerUp) Alive(now, ttl float64) bool {
	return now-p.SpawnedAt < ttl
}

// PowerUpSystem owns the live power-up collection.
type PowerUpSystem struct {
	Ups []PowerUp
}

// MaybeSpawn rolls the per-food-eaten chance and, on success, places a
// power-up of a uniformly chosen kind on a free cell. A full board
// quietly skips the spawn.
func (ps *PowerUpSystem) MaybeSpawn(cfg Config, r *Rand, now float64, snake []Cell, statics []Rect, movers []MovingObstacle) (PowerUp, bool) {
	if !r.Chance(cfg.PowerUpChance) {
		return PowerUp{}, false
	}
	pos, ok := freeCell(cfg, r, snake, statics, movers)
	if !ok {
		return PowerUp{}, false
	}
	p := PowerUp{
		Pos:       pos,
		Kind:      PowerKind(r.Intn(int(powerKindCount))),
		SpawnedAt: now,
	}
	ps.Ups = append(ps.Ups, p)
	return p, true
}

// Expire drops power-ups whose TTL has elapsed.
func (ps *PowerUpSystem) Expire(now, ttl float64) {
	kept := ps.Ups[:0]
	for _, p := range ps.Ups {
		if p.Alive(now, ttl) {
			kept = append(kept, p)
		}
	}
	ps.Ups = kept
}

// Pickup removes and returns the first power-up overlapping the head.
func (ps *PowerUpSystem) Pickup(head Rect, grid int) (PowerUp, bool) {
	for i, p := range ps.Ups {
		if head.Intersects(CellRect(p.Pos, grid)) {
			ps.Ups = append(ps.Ups[:i], ps.Ups[i+1:]...)
			return p, true
		}
	}
	return PowerUp{}, false
}

// ActiveEffect is the single in-force power-up modifier. At most one is
// active; applying a new one discards any remaining duration.
type ActiveEffect struct {
	Kind    PowerKind
	Until   float64
	Present bool
}

// Apply arms the effect until now plus the configured duration.
func (e *ActiveEffect) Apply(kind PowerKind, now, duration float64) {
	*e = ActiveEffect{Kind: kind, Until: now + duration, Present: true}
}

// Clear removes any active effect.
func (e *ActiveEffect) Clear() {
	*e = ActiveEffect{}
}

// Multiplier returns the step-rate factor for the active effect. The
// expiry check is lazy: querying past Until clears the effect, and a
// second query right after still returns 1.0 with nothing present.
func (e *ActiveEffect) Multiplier(now float64, cfg Config) float64 {
	if !e.Present {
		return 1.0
	}
	if now > e.Until {
		e.Clear()
		return 1.0
	}
	switch e.Kind {
	case PowerSpeed:
		return cfg.SpeedMult
	case PowerSlow:
		return cfg.SlowMult
	case PowerBonus:
		return 1.0
	}
	return 1.0
}

// Remaining returns the seconds left on the effect, or zero when absent.
func (e ActiveEffect) Remaining(now float64) float64 {
	if !e.Present || now > e.Until {
		return 0
	}
	return e.Until - now
}
