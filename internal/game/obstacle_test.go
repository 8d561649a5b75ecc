package game

import "testing"

func TestMovingObstacleBouncesAtEdges(t *testing.T) {
	cfg := DefaultConfig()

	m := MovingObstacle{Rect: Rect{X: cfg.Width - 42, Y: 100, W: 40, H: 20}, DX: 2}
	m.Update(cfg.Width)
	if m.DX != -2 {
		t.Errorf("right edge: DX = %d, want -2", m.DX)
	}
	m.Update(cfg.Width)
	if m.Rect.X != cfg.Width-42 {
		t.Errorf("after bounce X = %d, want %d", m.Rect.X, cfg.Width-42)
	}

	m = MovingObstacle{Rect: Rect{X: 2, Y: 100, W: 40, H: 20}, DX: -2}
	m.Update(cfg.Width)
	if m.DX != 2 {
		t.Errorf("left edge: DX = %d, want 2", m.DX)
	}
}

func TestMakeObstaclesLayout(t *testing.T) {
	cfg := DefaultConfig()
	bandLo := cfg.Width/2 - cfg.SpawnBandHalf*cfg.Grid
	bandHi := cfg.Width/2 + cfg.SpawnBandHalf*cfg.Grid

	for seed := uint64(1); seed <= 20; seed++ {
		r := NewRand(seed)
		statics, movers := MakeObstacles(cfg, r)

		if len(statics) != cfg.StaticObstacles {
			t.Fatalf("seed %d: %d statics, want %d", seed, len(statics), cfg.StaticObstacles)
		}
		seen := map[Cell]bool{}
		for _, o := range statics {
			if o.X%cfg.Grid != 0 || o.Y%cfg.Grid != 0 {
				t.Fatalf("seed %d: obstacle %v not grid-aligned", seed, o)
			}
			if o.X >= bandLo && o.X <= bandHi {
				t.Fatalf("seed %d: obstacle %v inside the spawn band", seed, o)
			}
			if o.Y < cfg.TopBand() {
				t.Fatalf("seed %d: obstacle %v inside the scoreboard band", seed, o)
			}
			if o.W != 2*cfg.Grid && o.W != 3*cfg.Grid {
				t.Fatalf("seed %d: obstacle width %d outside the size set", seed, o.W)
			}
			if o.H != cfg.Grid && o.H != 2*cfg.Grid {
				t.Fatalf("seed %d: obstacle height %d outside the size set", seed, o.H)
			}
			pos := Cell{X: o.X, Y: o.Y}
			if seen[pos] {
				t.Fatalf("seed %d: duplicate obstacle position %v", seed, pos)
			}
			seen[pos] = true
		}

		if len(movers) != cfg.MovingObstacles {
			t.Fatalf("seed %d: %d movers, want %d", seed, len(movers), cfg.MovingObstacles)
		}
		for _, m := range movers {
			if m.DX != 2 && m.DX != 3 {
				t.Fatalf("seed %d: mover DX %d outside the speed set", seed, m.DX)
			}
			if m.Rect.Y <= cfg.TopBand() {
				t.Fatalf("seed %d: mover %v touching the scoreboard band", seed, m.Rect)
			}
		}
	}
}
