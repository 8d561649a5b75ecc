package game

// GameState is the machine state exposed to the presentation layer.
// StateLifeLost is transient: a collision passes through it inside a
// single step and lands on Playing or GameOver before control returns.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateLifeLost
	StateGameOver
)

// Command is the full input vocabulary of the core. Anything else the
// presentation layer might send is ignored, never fatal.
type Command int

const (
	CmdMoveUp Command = iota
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdTogglePause
	CmdRestart
	CmdQuit
)

// Game is the authoritative simulation instance. It owns all game
// state; the presentation layer only feeds it time and commands and
// reads snapshots back. Single-threaded by design.
type Game struct {
	cfg Config
	rng *Rand

	State GameState
	Score int
	Level int
	Lives int
	High  int

	snake   *Snake
	foods   FoodSystem
	ups     PowerUpSystem
	effect  ActiveEffect
	statics []Rect
	movers  []MovingObstacle

	// Game clock and step accumulator, in seconds. Both advance only
	// while Playing, which is what freezes every TTL during pause.
	now   float64
	accum float64

	events []Event
	quit   bool
}

func NewGame(cfg Config, seed uint64) *Game {
	g := &Game{
		cfg: cfg,
		rng: NewRand(splitmix64(seed)),
	}
	g.resetAll()
	g.State = StateMenu
	return g
}

// resetAll builds a fresh field. Only the session high score survives.
func (g *Game) resetAll() {
	g.Score = 0
	g.Level = 1
	g.Lives = g.cfg.LivesStart
	g.snake = NewSnake(g.cfg)
	g.statics, g.movers = MakeObstacles(g.cfg, g.rng)
	g.foods = FoodSystem{}
	g.foods.Respawn(g.cfg, g.rng, g.snake.Body, g.statics, g.movers)
	g.ups = PowerUpSystem{}
	g.effect.Clear()
	g.now = 0
	g.accum = 0
	g.State = StatePlaying
}

// Config returns the immutable configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// QuitRequested reports whether a quit command has been received.
func (g *Game) QuitRequested() bool { return g.quit }

// HandleInput applies one command. Direction commands only buffer a
// turn onto a differing axis; the turn is committed at the next
// simulation step. Commands that make no sense in the current state
// are ignored.
func (g *Game) HandleInput(cmd Command) {
	if cmd == CmdQuit {
		g.quit = true
		return
	}

	switch g.State {
	case StateMenu:
		switch cmd {
		case CmdRestart, CmdMoveUp, CmdMoveDown, CmdMoveLeft, CmdMoveRight:
			g.State = StatePlaying
			g.emit(Event{Type: EventStarted})
		}

	case StatePlaying:
		switch cmd {
		case CmdMoveUp:
			g.snake.Steer(Cell{Y: -g.cfg.Grid})
		case CmdMoveDown:
			g.snake.Steer(Cell{Y: g.cfg.Grid})
		case CmdMoveLeft:
			g.snake.Steer(Cell{X: -g.cfg.Grid})
		case CmdMoveRight:
			g.snake.Steer(Cell{X: g.cfg.Grid})
		case CmdTogglePause:
			g.State = StatePaused
		}

	case StatePaused:
		if cmd == CmdTogglePause {
			g.State = StatePlaying
		}

	case StateGameOver:
		if cmd == CmdRestart {
			g.resetAll()
			g.emit(Event{Type: EventStarted})
		}
	}
}

// stepRate returns the current simulation rate in steps per second:
// the level-derived base, clamped, times the active effect multiplier.
func (g *Game) stepRate() float64 {
	base := g.cfg.BaseRate + float64(g.Level-1)*g.cfg.LevelRateStep
	return clampF(base, g.cfg.MinRate, g.cfg.MaxRate) * g.effect.Multiplier(g.now, g.cfg)
}

// Step feeds real elapsed time into the accumulator and runs zero or
// more discrete simulation steps. Each step is atomic: direction
// commit, move, eating, pickup, collision, and upkeep all finish
// before control returns. Outside of Playing the accumulator and the
// game clock are frozen.
func (g *Game) Step(dt float64) {
	if g.State != StatePlaying {
		return
	}
	g.now += dt
	g.accum += dt

	for g.State == StatePlaying {
		stepDur := 1.0 / g.stepRate()
		if g.accum < stepDur {
			break
		}
		g.accum -= stepDur
		g.stepOnce()
	}
}

func (g *Game) stepOnce() {
	// Moving obstacles advance unconditionally, before the snake.
	for i := range g.movers {
		g.movers[i].Update(g.cfg.Width)
	}

	g.snake.Advance()
	head := g.snake.Head()

	grew := false
	if g.foods.TryEat(head) {
		grew = true
		g.addScore(1)
		g.emit(Event{Type: EventFoodEaten, X: head.X, Y: head.Y, Col: Palette.Food})
		g.foods.Respawn(g.cfg, g.rng, g.snake.Body, g.statics, g.movers)
		if p, ok := g.ups.MaybeSpawn(g.cfg, g.rng, g.now, g.snake.Body, g.statics, g.movers); ok {
			g.emit(Event{Type: EventPowerUpSpawned, X: p.Pos.X, Y: p.Pos.Y, Kind: p.Kind, Col: p.Kind.Color()})
		}
	}
	if g.foods.TryEatSpecial(head) {
		grew = true
		g.addScore(g.cfg.SpecialFoodValue)
		g.emit(Event{Type: EventSpecialEaten, X: head.X, Y: head.Y, Col: Palette.Special})
	}
	if p, ok := g.ups.Pickup(CellRect(head, g.cfg.Grid), g.cfg.Grid); ok {
		g.applyPower(p)
	}

	// Collision runs against the full post-move body, then the tail
	// settles.
	collided := g.snake.CheckCollision(g.cfg, g.statics, g.movers)
	g.snake.ResolveGrowth(grew)
	if collided {
		g.loseLife()
		return
	}

	// Lifecycle upkeep.
	if g.foods.Missing {
		g.foods.Respawn(g.cfg, g.rng, g.snake.Body, g.statics, g.movers)
	}
	g.foods.UpdateSpecial(g.cfg, g.rng, g.now, g.snake.Body, g.statics, g.movers)
	g.ups.Expire(g.now, g.cfg.PowerUpTTL)
}

func (g *Game) addScore(points int) {
	g.Score += points
	if g.Score > g.High {
		g.High = g.Score
	}
	level := 1 + g.Score/g.cfg.LevelUpEvery
	if level != g.Level {
		g.Level = level
		g.emit(Event{Type: EventLevelUp})
	}
}

func (g *Game) applyPower(p PowerUp) {
	g.emit(Event{Type: EventPowerUpCollected, X: p.Pos.X, Y: p.Pos.Y, Kind: p.Kind, Col: p.Kind.Color()})
	if p.Kind == PowerBonus {
		g.addScore(g.cfg.BonusPoints)
	}
	g.effect.Apply(p.Kind, g.now, g.cfg.PowerUpDuration)
}

// loseLife handles a collision: through the transient LifeLost state,
// back to Playing with a respawned snake, or to GameOver when the last
// life is gone. Score, level, obstacles, food, and power-ups survive a
// life loss; the active effect does not.
func (g *Game) loseLife() {
	g.State = StateLifeLost
	g.Lives--
	head := g.snake.Head()
	g.emit(Event{Type: EventLifeLost, X: head.X, Y: head.Y, Col: Palette.Hearts})
	g.snake = NewSnake(g.cfg)
	g.effect.Clear()

	if g.Lives <= 0 {
		if g.Score > g.High {
			g.High = g.Score
		}
		g.State = StateGameOver
		g.emit(Event{Type: EventGameOver})
		return
	}
	g.State = StatePlaying
}
