package game

import "testing"

func TestSteerRejectsSameAxis(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Grid

	tests := []struct {
		name    string
		dir     Cell
		request Cell
		want    bool
	}{
		{"reversal up to down", Cell{Y: -g}, Cell{Y: g}, false},
		{"reversal left to right", Cell{X: -g}, Cell{X: g}, false},
		{"repeat same direction", Cell{Y: -g}, Cell{Y: -g}, false},
		{"turn up to left", Cell{Y: -g}, Cell{X: -g}, true},
		{"turn up to right", Cell{Y: -g}, Cell{X: g}, true},
		{"turn right to down", Cell{X: g}, Cell{Y: g}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(cfg)
			s.Dir = tt.dir
			s.Next = tt.dir
			got := s.Steer(tt.request)
			if got != tt.want {
				t.Errorf("Steer(%v) with dir %v = %v, want %v", tt.request, tt.dir, got, tt.want)
			}
			if !tt.want && s.Next != tt.dir {
				t.Errorf("rejected steer must not change Next: got %v", s.Next)
			}
		})
	}
}

// The committed direction must never be the exact opposite of the
// previous committed direction, for any request sequence.
func TestCommittedDirectionNeverReverses(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Grid
	dirs := []Cell{{Y: -g}, {Y: g}, {X: -g}, {X: g}}

	s := NewSnake(cfg)
	r := NewRand(0xD1CE)
	for i := 0; i < 500; i++ {
		prev := s.Dir
		s.Steer(dirs[r.Intn(len(dirs))])
		s.Advance()
		if s.Dir.X == -prev.X && s.Dir.Y == -prev.Y && (prev.X != 0 || prev.Y != 0) {
			t.Fatalf("step %d: committed %v directly after %v", i, s.Dir, prev)
		}
		s.ResolveGrowth(false)
	}
}

func TestAdvanceAndGrowth(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)
	head := s.Head()

	s.Advance()
	if len(s.Body) != 3 {
		t.Fatalf("Advance must append a head: len = %d", len(s.Body))
	}
	want := Cell{X: head.X, Y: head.Y - cfg.Grid}
	if s.Head() != want {
		t.Errorf("head = %v, want %v", s.Head(), want)
	}

	s.ResolveGrowth(false)
	if len(s.Body) != 2 {
		t.Errorf("no growth: len = %d, want 2", len(s.Body))
	}

	s.Advance()
	s.ResolveGrowth(true)
	if len(s.Body) != 3 {
		t.Errorf("growth step: len = %d, want 3", len(s.Body))
	}
}

func TestCheckCollision(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Grid

	place := func(head Cell, body ...Cell) *Snake {
		s := NewSnake(cfg)
		s.Body = append(append([]Cell{}, body...), head)
		return s
	}

	tests := []struct {
		name    string
		snake   *Snake
		statics []Rect
		movers  []MovingObstacle
		want    bool
	}{
		{"free space", place(Cell{X: 300, Y: 200}, Cell{X: 300, Y: 220}), nil, nil, false},
		{"left wall", place(Cell{X: -g, Y: 200}, Cell{X: 0, Y: 200}), nil, nil, true},
		{"right wall", place(Cell{X: cfg.Width, Y: 200}, Cell{X: cfg.Width - g, Y: 200}), nil, nil, true},
		{"top band", place(Cell{X: 300, Y: cfg.TopBand() - g}, Cell{X: 300, Y: cfg.TopBand()}), nil, nil, true},
		{"bottom wall", place(Cell{X: 300, Y: cfg.Height}, Cell{X: 300, Y: cfg.Height - g}), nil, nil, true},
		{"self collision", place(Cell{X: 300, Y: 200}, Cell{X: 300, Y: 200}, Cell{X: 300, Y: 220}), nil, nil, true},
		{"static obstacle", place(Cell{X: 300, Y: 200}, Cell{X: 300, Y: 220}),
			[]Rect{{X: 300, Y: 200, W: 2 * g, H: g}}, nil, true},
		{"static obstacle near miss", place(Cell{X: 300, Y: 200}, Cell{X: 300, Y: 220}),
			[]Rect{{X: 300 + g, Y: 200, W: g, H: g}}, nil, false},
		{"moving obstacle", place(Cell{X: 300, Y: 200}, Cell{X: 300, Y: 220}),
			nil, []MovingObstacle{{Rect: Rect{X: 290, Y: 200, W: 2 * g, H: g}, DX: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.snake.CheckCollision(cfg, tt.statics, tt.movers)
			if got != tt.want {
				t.Errorf("CheckCollision = %v, want %v", got, tt.want)
			}
		})
	}
}
