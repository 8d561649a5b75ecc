package game

// MovingObstacle is a horizontal strip that slides back and forth,
// reflecting its velocity at the field edges. It advances one velocity
// step per simulation step, independent of the snake.
type MovingObstacle struct {
	Rect Rect
	DX   int
}

func (m *MovingObstacle) Update(fieldWidth int) {
	m.Rect.X += m.DX
	if m.Rect.X+m.Rect.W >= fieldWidth || m.Rect.X <= 0 {
		m.DX = -m.DX
	}
}

// MakeObstacles generates the static layout and the moving strips for a
// fresh field. Static rects are grid-aligned, sized from a small discrete
// set, and kept out of the centered band reserved for the snake spawn.
// Placement dedupes exact positions only; differently sized rects may
// still overlap each other. Placement gives up after cfg.SpawnAttempts
// tries per obstacle rather than looping forever on a crowded board.
func MakeObstacles(cfg Config, r *Rand) ([]Rect, []MovingObstacle) {
	statics := make([]Rect, 0, cfg.StaticObstacles)
	taken := make(map[Cell]bool, cfg.StaticObstacles)

	bandLo := cfg.Width/2 - cfg.SpawnBandHalf*cfg.Grid
	bandHi := cfg.Width/2 + cfg.SpawnBandHalf*cfg.Grid

	for n := 0; n < cfg.StaticObstacles; n++ {
		for attempt := 0; attempt < cfg.SpawnAttempts; attempt++ {
			x := r.Range(1, cfg.Cols()-2) * cfg.Grid
			y := r.Range(cfg.TopBandRows, cfg.Rows()-2) * cfg.Grid
			if x >= bandLo && x <= bandHi {
				continue
			}
			if taken[Cell{X: x, Y: y}] {
				continue
			}
			taken[Cell{X: x, Y: y}] = true
			statics = append(statics, Rect{
				X: x,
				Y: y,
				W: r.Pick([]int{2, 3}) * cfg.Grid,
				H: r.Pick([]int{1, 2}) * cfg.Grid,
			})
			break
		}
	}

	movers := make([]MovingObstacle, 0, cfg.MovingObstacles)
	for n := 0; n < cfg.MovingObstacles; n++ {
		y := r.Range(cfg.TopBandRows+1, cfg.Rows()-2) * cfg.Grid
		movers = append(movers, MovingObstacle{
			Rect: Rect{
				X: cfg.Grid,
				Y: y,
				W: r.Pick([]int{2, 3}) * cfg.Grid,
				H: cfg.Grid,
			},
			DX: r.Pick([]int{2, 3}),
		})
	}

	return statics, movers
}
