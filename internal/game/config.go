package game

// Window defaults. The framebuffer is letterboxed around the field,
// so the window does not have to match the field aspect exactly.
const (
	WindowWidth  = 900
	WindowHeight = 600
)

// Config holds every tunable of a game instance. A value is built once
// (normally via DefaultConfig) and passed to NewGame; nothing in the
// simulation mutates it afterwards.
type Config struct {
	// Field geometry (in field pixels). Width and Height must be
	// multiples of Grid. All simulation positions are grid-aligned.
	Width  int
	Height int
	Grid   int

	// TopBandRows is the number of grid rows at the top reserved for
	// the scoreboard. The playfield starts below it.
	TopBandRows int

	// Step rate (simulation steps per second).
	BaseRate      float64
	MaxRate       float64
	MinRate       float64
	LevelRateStep float64

	// Session rules.
	LivesStart   int
	LevelUpEvery int

	// Power-ups.
	PowerUpChance   float64 // chance per food eaten
	PowerUpDuration float64 // seconds an effect lasts
	PowerUpTTL      float64 // seconds a power-up stays on the field
	BonusPoints     int     // instant score for the Bonus kind
	SpeedMult       float64
	SlowMult        float64

	// Special (gold) food.
	SpecialFoodEvery  float64 // seconds between spawn attempts
	SpecialFoodChance float64 // chance per attempt
	SpecialFoodTTL    float64 // seconds to live
	SpecialFoodValue  int

	// Obstacles.
	StaticObstacles int
	MovingObstacles int
	// SpawnBandHalf is the half-width, in cells, of the centered
	// vertical band kept free of static obstacles so the snake has a
	// safe start.
	SpawnBandHalf int

	// SpawnAttempts bounds the rejection sampler for free-cell
	// placement. A spawn that fails within this budget is skipped and
	// retried on a later step.
	SpawnAttempts int
}

func DefaultConfig() Config {
	return Config{
		Width:       600,
		Height:      400,
		Grid:        20,
		TopBandRows: 2,

		BaseRate:      12,
		MaxRate:       30,
		MinRate:       6,
		LevelRateStep: 1.5,

		LivesStart:   3,
		LevelUpEvery: 5,

		PowerUpChance:   0.08,
		PowerUpDuration: 4.5,
		PowerUpTTL:      9.0,
		BonusPoints:     3,
		SpeedMult:       1.4,
		SlowMult:        0.6,

		SpecialFoodEvery:  10.0,
		SpecialFoodChance: 0.5,
		SpecialFoodTTL:    6.0,
		SpecialFoodValue:  5,

		StaticObstacles: 6,
		MovingObstacles: 2,
		SpawnBandHalf:   3,

		SpawnAttempts: 200,
	}
}

// Cols returns the field width in cells.
func (c Config) Cols() int { return c.Width / c.Grid }

// Rows returns the field height in cells.
func (c Config) Rows() int { return c.Height / c.Grid }

// TopBand returns the pixel height of the reserved scoreboard band.
func (c Config) TopBand() int { return c.TopBandRows * c.Grid }
