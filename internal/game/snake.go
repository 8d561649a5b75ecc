package game

// Snake is the player body: an ordered list of cells with the head last.
// Steering requests land in Next and are committed once per simulation
// step, so at most one turn takes effect per step no matter how fast the
// keys arrive.
type Snake struct {
	Body []Cell
	Dir  Cell // committed direction, one grid unit
	Next Cell // buffered direction, applied at the next Advance
}

// NewSnake places a two-segment snake at the field centre, moving up.
func NewSnake(cfg Config) *Snake {
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	up := Cell{X: 0, Y: -cfg.Grid}
	return &Snake{
		Body: []Cell{{X: cx, Y: cy + cfg.Grid}, {X: cx, Y: cy}},
		Dir:  up,
		Next: up,
	}
}

// Head returns the leading cell.
func (s *Snake) Head() Cell {
	return s.Body[len(s.Body)-1]
}

// Steer buffers a direction change. A request on the same axis as the
// committed direction is rejected: that forbids 180° reversals (instant
// self-collision) and makes repeat presses of the current direction
// harmless.
func (s *Snake) Steer(d Cell) bool {
	if d.X != 0 && s.Dir.X != 0 {
		return false
	}
	if d.Y != 0 && s.Dir.Y != 0 {
		return false
	}
	s.Next = d
	return true
}

// Advance commits the buffered direction and appends the new head.
// The tail is not trimmed here; collision is checked against the full
// post-move body first, then ResolveGrowth settles the length.
func (s *Snake) Advance() {
	s.Dir = s.Next
	h := s.Head()
	s.Body = append(s.Body, Cell{X: h.X + s.Dir.X, Y: h.Y + s.Dir.Y})
}

// ResolveGrowth trims the oldest segment unless the snake grew this
// step, in which case the appended head is permanent growth.
func (s *Snake) ResolveGrowth(grew bool) {
	if !grew {
		s.Body = s.Body[1:]
	}
}

// CheckCollision reports whether the head left the playable area
// (the scoreboard band is out of bounds), ran into a prior body
// segment, or overlaps any obstacle. Call it after Advance and before
// ResolveGrowth so self-collision sees the whole post-move body.
func (s *Snake) CheckCollision(cfg Config, statics []Rect, movers []MovingObstacle) bool {
	h := s.Head()
	if h.X < 0 || h.X >= cfg.Width || h.Y < cfg.TopBand() || h.Y >= cfg.Height {
		return true
	}
	for _, seg := range s.Body[:len(s.Body)-1] {
		if seg == h {
			return true
		}
	}
	return rectHitsObstacle(CellRect(h, cfg.Grid), statics, movers)
}
