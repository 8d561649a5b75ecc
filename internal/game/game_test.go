package game

import "testing"

// newTestGame builds a Playing game on an empty field with power-up
// spawns disabled, so step outcomes depend only on what the test
// places. The regular food starts parked in a corner out of the
// snake's path.
func newTestGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PowerUpChance = 0
	g := NewGame(cfg, seed)
	g.HandleInput(CmdRestart)
	g.statics = nil
	g.movers = nil
	g.foods.Food = Cell{X: 0, Y: cfg.Height - cfg.Grid}
	g.foods.Missing = false
	g.DrainEvents()
	return g
}

func TestEatFoodScoresAndLevels(t *testing.T) {
	g := newTestGame(t, 1)

	// Head starts at (300,200) moving up; food directly ahead.
	g.foods.Food = Cell{X: 300, Y: 180}
	g.stepOnce()

	if g.Score != 1 {
		t.Fatalf("score = %d, want 1", g.Score)
	}
	if g.Level != 1 {
		t.Fatalf("level = %d, want 1 (below LevelUpEvery)", g.Level)
	}
	if len(g.snake.Body) != 3 {
		t.Fatalf("snake length = %d, want 3 after eating", len(g.snake.Body))
	}

	// Four more in a straight line: the fifth point triggers level 2.
	for i := 0; i < 4; i++ {
		g.foods.Food = Cell{X: 300, Y: g.snake.Head().Y - g.cfg.Grid}
		g.foods.Missing = false
		g.stepOnce()
	}
	if g.Score != 5 {
		t.Fatalf("score = %d, want 5", g.Score)
	}
	if g.Level != 2 {
		t.Fatalf("level = %d, want 2", g.Level)
	}
	if g.High != 5 {
		t.Errorf("high = %d, want 5", g.High)
	}

	found := false
	for _, e := range g.DrainEvents() {
		if e.Type == EventLevelUp {
			found = true
		}
	}
	if !found {
		t.Error("level change emitted no EventLevelUp")
	}
}

func TestSpecialFoodScoresItsValue(t *testing.T) {
	g := newTestGame(t, 2)
	g.foods.Special = SpecialFood{Pos: Cell{X: 300, Y: 180}}
	g.foods.HasSpecial = true

	g.stepOnce()
	if g.Score != g.cfg.SpecialFoodValue {
		t.Fatalf("score = %d, want %d", g.Score, g.cfg.SpecialFoodValue)
	}
	if g.foods.HasSpecial {
		t.Error("special food not consumed")
	}
	if len(g.snake.Body) != 3 {
		t.Errorf("snake length = %d, want 3 (special food grows too)", len(g.snake.Body))
	}
}

func TestStepRate(t *testing.T) {
	g := newTestGame(t, 3)
	cfg := g.cfg

	// Effect expectations multiply at runtime, as stepRate does; a
	// constant-folded 16.8 would not be bit-equal to 12 * SpeedMult.
	tests := []struct {
		name   string
		level  int
		effect PowerKind
		armed  bool
		want   float64
	}{
		{"level 1 base", 1, 0, false, cfg.BaseRate},
		{"level 3", 3, 0, false, cfg.BaseRate + 2*cfg.LevelRateStep},
		{"clamped at max", 20, 0, false, cfg.MaxRate},
		{"speed effect", 1, PowerSpeed, true, cfg.BaseRate * cfg.SpeedMult},
		{"slow effect", 1, PowerSlow, true, cfg.BaseRate * cfg.SlowMult},
		{"bonus is neutral", 1, PowerBonus, true, cfg.BaseRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Level = tt.level
			g.effect.Clear()
			if tt.armed {
				g.effect.Apply(tt.effect, g.now, g.cfg.PowerUpDuration)
			}
			if got := g.stepRate(); got != tt.want {
				t.Errorf("stepRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepAccumulator(t *testing.T) {
	g := newTestGame(t, 4)

	// Below one step duration at 12 steps/s: nothing moves.
	head := g.snake.Head()
	g.Step(0.05)
	if g.snake.Head() != head {
		t.Fatal("sub-step dt moved the snake")
	}

	// The leftover 0.05 plus 0.46 covers exactly 6 steps with a little
	// spare, so one frame runs all 6.
	g.Step(0.46)
	want := Cell{X: head.X, Y: head.Y - 6*g.cfg.Grid}
	if g.snake.Head() != want {
		t.Errorf("head = %v, want %v after 6 catch-up steps", g.snake.Head(), want)
	}
}

func TestPauseFreezesClockAndEffects(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(0.2)
	g.effect.Apply(PowerSpeed, g.now, g.cfg.PowerUpDuration)

	clock := g.Snapshot().Clock
	remaining := g.effect.Remaining(g.now)
	head := g.snake.Head()

	g.HandleInput(CmdTogglePause)
	if g.State != StatePaused {
		t.Fatalf("state = %v, want StatePaused", g.State)
	}
	g.Step(100)

	snap := g.Snapshot()
	if snap.Clock != clock {
		t.Errorf("clock advanced while paused: %v -> %v", clock, snap.Clock)
	}
	if g.snake.Head() != head {
		t.Error("snake moved while paused")
	}
	if got := g.effect.Remaining(g.now); got != remaining {
		t.Errorf("effect remaining changed while paused: %v -> %v", remaining, got)
	}

	g.HandleInput(CmdTogglePause)
	if g.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying after unpause", g.State)
	}
}

func TestLifeLossPreservesProgress(t *testing.T) {
	g := newTestGame(t, 6)
	g.addScore(7)
	g.effect.Apply(PowerSpeed, g.now, g.cfg.PowerUpDuration)

	// Wall directly ahead of the head.
	g.statics = []Rect{{X: 300, Y: 180, W: g.cfg.Grid, H: g.cfg.Grid}}
	g.stepOnce()

	if g.Lives != g.cfg.LivesStart-1 {
		t.Fatalf("lives = %d, want %d", g.Lives, g.cfg.LivesStart-1)
	}
	if g.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying with lives left", g.State)
	}
	if g.Score != 7 || g.Level != 2 {
		t.Errorf("score/level = %d/%d, want 7/2 preserved across life loss", g.Score, g.Level)
	}
	if g.effect.Present {
		t.Error("active effect survived a life loss")
	}
	if g.snake.Head() != (Cell{X: 300, Y: 200}) || len(g.snake.Body) != 2 {
		t.Errorf("snake not respawned: head %v len %d", g.snake.Head(), len(g.snake.Body))
	}
	if len(g.statics) != 1 {
		t.Error("obstacles regenerated on life loss")
	}
}

func TestGameOverAfterLastLife(t *testing.T) {
	g := newTestGame(t, 7)
	g.addScore(4)
	g.statics = []Rect{{X: 300, Y: 180, W: g.cfg.Grid, H: g.cfg.Grid}}

	// The respawned snake runs into the same wall each time.
	for i := 0; i < g.cfg.LivesStart; i++ {
		g.stepOnce()
	}
	if g.State != StateGameOver {
		t.Fatalf("state = %v, want StateGameOver", g.State)
	}
	if g.High != 4 {
		t.Errorf("high = %d, want 4", g.High)
	}

	// Steering and pausing are dead now; restart is not.
	g.HandleInput(CmdTogglePause)
	if g.State != StateGameOver {
		t.Fatal("pause accepted in game over")
	}
	g.HandleInput(CmdRestart)
	if g.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying after restart", g.State)
	}
	if g.Score != 0 || g.Level != 1 || g.Lives != g.cfg.LivesStart {
		t.Errorf("restart kept progress: score %d level %d lives %d", g.Score, g.Level, g.Lives)
	}
	if g.High != 4 {
		t.Errorf("restart dropped high score: %d", g.High)
	}
}

func TestMenuStartsOnAnyMove(t *testing.T) {
	g := NewGame(DefaultConfig(), 8)
	if g.State != StateMenu {
		t.Fatalf("fresh game state = %v, want StateMenu", g.State)
	}
	g.HandleInput(CmdMoveLeft)
	if g.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying", g.State)
	}
	started := false
	for _, e := range g.DrainEvents() {
		if e.Type == EventStarted {
			started = true
		}
	}
	if !started {
		t.Error("no EventStarted on menu exit")
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	g := newTestGame(t, 9)
	g.HandleInput(Command(99))
	if g.State != StatePlaying || g.QuitRequested() {
		t.Errorf("unknown command changed state: %v quit=%v", g.State, g.QuitRequested())
	}
}

func TestQuitWorksInEveryState(t *testing.T) {
	states := []GameState{StateMenu, StatePlaying, StatePaused, StateGameOver}
	for _, st := range states {
		g := newTestGame(t, 10)
		g.State = st
		g.HandleInput(CmdQuit)
		if !g.QuitRequested() {
			t.Errorf("quit ignored in state %v", st)
		}
	}
}

func TestPowerUpPickupInStep(t *testing.T) {
	g := newTestGame(t, 11)
	g.ups.Ups = []PowerUp{{Pos: Cell{X: 300, Y: 180}, Kind: PowerBonus, SpawnedAt: g.now}}

	g.stepOnce()
	if len(g.ups.Ups) != 0 {
		t.Fatal("power-up not removed on pickup")
	}
	if g.Score != g.cfg.BonusPoints {
		t.Errorf("score = %d, want %d from bonus pickup", g.Score, g.cfg.BonusPoints)
	}
	collected := false
	for _, e := range g.DrainEvents() {
		if e.Type == EventPowerUpCollected && e.Kind == PowerBonus {
			collected = true
		}
	}
	if !collected {
		t.Error("no EventPowerUpCollected emitted")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 12)
	snap := g.Snapshot()

	snap.Snake[0] = Cell{X: -999, Y: -999}
	if g.snake.Body[0] == (Cell{X: -999, Y: -999}) {
		t.Error("snapshot shares the snake body with the simulation")
	}
	if !snap.HasFood {
		t.Error("snapshot missing the regular food")
	}
	if snap.State != StatePlaying {
		t.Errorf("snapshot state = %v, want StatePlaying", snap.State)
	}
}

func TestDrainEventsEmptiesQueue(t *testing.T) {
	g := newTestGame(t, 13)
	g.emit(Event{Type: EventLevelUp})
	if n := len(g.DrainEvents()); n != 1 {
		t.Fatalf("drained %d events, want 1", n)
	}
	if n := len(g.DrainEvents()); n != 0 {
		t.Errorf("second drain returned %d events, want 0", n)
	}
}
