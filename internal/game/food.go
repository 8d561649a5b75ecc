package game

// SpecialFood is the gold bonus food: optional, time-limited, worth
// SpecialFoodValue points.
type SpecialFood struct {
	Pos       Cell
	SpawnedAt float64
}

// FoodSystem owns the regular food (always meant to be present) and the
// optional special food. When the placement sampler fails on a crowded
// board the food is marked missing and respawn is retried every step
// instead of blocking the simulation.
type FoodSystem struct {
	Food    Cell
	Missing bool

	Special    SpecialFood
	HasSpecial bool

	lastAttempt float64 // game-clock time of the last special spawn attempt
}

// Respawn places the regular food on a free cell, or marks it missing
// when no cell can be found within the attempt budget.
func (fs *FoodSystem) Respawn(cfg Config, r *Rand, snake []Cell, statics []Rect, movers []MovingObstacle) {
	pos, ok := freeCell(cfg, r, snake, statics, movers)
	if !ok {
		fs.Missing = true
		return
	}
	fs.Food = pos
	fs.Missing = false
}

// TryEat reports whether the head is exactly on the regular food.
// Respawn and scoring are the caller's job.
func (fs *FoodSystem) TryEat(head Cell) bool {
	return !fs.Missing && head == fs.Food
}

// TryEatSpecial consumes the special food when the head is on it.
func (fs *FoodSystem) TryEatSpecial(head Cell) bool {
	if !fs.HasSpecial || head != fs.Special.Pos {
		return false
	}
	fs.HasSpecial = false
	return true
}

// UpdateSpecial runs the periodic spawn attempt and the TTL expiry.
// An attempt happens at most once per SpecialFoodEvery seconds and
// succeeds with SpecialFoodChance; the timer restarts on the attempt,
// not on success, so a failed roll waits a full interval.
func (fs *FoodSystem) UpdateSpecial(cfg Config, r *Rand, now float64, snake []Cell, statics []Rect, movers []MovingObstacle) {
	if !fs.HasSpecial && now-fs.lastAttempt > cfg.SpecialFoodEvery {
		fs.lastAttempt = now
		if r.Chance(cfg.SpecialFoodChance) {
			if pos, ok := freeCell(cfg, r, snake, statics, movers); ok {
				fs.Special = SpecialFood{Pos: pos, SpawnedAt: now}
				fs.HasSpecial = true
			}
		}
	}
	if fs.HasSpecial && now-fs.Special.SpawnedAt > cfg.SpecialFoodTTL {
		fs.HasSpecial = false
	}
}
