package game

// Cell is a grid-aligned position in field pixels. Both coordinates are
// multiples of Config.Grid; the simulation never holds sub-cell positions.
type Cell struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in field-pixel space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// CellRect returns the one-cell rectangle covering c.
func CellRect(c Cell, grid int) Rect {
	return Rect{X: c.X, Y: c.Y, W: grid, H: grid}
}

// randomCell returns a random grid-aligned position anywhere on the field,
// including the reserved top band. Callers filter for validity.
func randomCell(cfg Config, r *Rand) Cell {
	return Cell{
		X: r.Intn(cfg.Cols()) * cfg.Grid,
		Y: r.Intn(cfg.Rows()) * cfg.Grid,
	}
}

// freeCell samples a cell that is below the scoreboard band, off the
// snake body, and clear of every obstacle. The sampler is probabilistic:
// it retries up to cfg.SpawnAttempts times and reports ok=false when the
// budget runs out, so a crowded board skips a spawn instead of spinning.
func freeCell(cfg Config, r *Rand, snake []Cell, statics []Rect, movers []MovingObstacle) (Cell, bool) {
	for i := 0; i < cfg.SpawnAttempts; i++ {
		c := randomCell(cfg, r)
		if c.Y < cfg.TopBand() {
			continue
		}
		if cellOnSnake(c, snake) {
			continue
		}
		cr := CellRect(c, cfg.Grid)
		if rectHitsObstacle(cr, statics, movers) {
			continue
		}
		return c, true
	}
	return Cell{}, false
}

func cellOnSnake(c Cell, snake []Cell) bool {
	for _, s := range snake {
		if s == c {
			return true
		}
	}
	return false
}

func rectHitsObstacle(r Rect, statics []Rect, movers []MovingObstacle) bool {
	for _, o := range statics {
		if r.Intersects(o) {
			return true
		}
	}
	for i := range movers {
		if r.Intersects(movers[i].Rect) {
			return true
		}
	}
	return false
}
