// Package snake implements the snake arcade simulation: grid movement,
// growth, power-ups, obstacles, particles, and the per-mode session rules.
// All timing is wall-clock-delta driven so behavior is frame-rate
// independent; the platform feeds elapsed seconds into Step each tick.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-evolution/internal/config"
	"github.com/vovakirdan/snake-evolution/internal/core"
	"github.com/vovakirdan/snake-evolution/internal/registry"
)

// Mode selects which optional subsystems and terminal conditions are
// active for a session.
type Mode string

const (
	ModeClassic    Mode = "classic"     // Difficulty ramps with score
	ModeTimeAttack Mode = "time_attack" // Fixed countdown, ends on expiry
	ModeSurvival   Mode = "survival"    // Obstacles accumulate over time
)

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeTimeAttack:
		return "Time Attack"
	case ModeSurvival:
		return "Survival"
	default:
		return string(m)
	}
}

// EndReason explains why a session reached its terminal state.
type EndReason string

const (
	EndNone           EndReason = ""
	EndWallOrObstacle EndReason = "wall_or_obstacle_collision"
	EndSelfCollision  EndReason = "self_collision"
	EndTimeExpired    EndReason = "time_expired"
)

// initialLength is the snake length at session start.
const initialLength = 3

// Package-level variables for config/difficulty, set by the CLI before
// game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game is one snake session. It owns all mutable state and is advanced
// exclusively by Step from a single thread of control.
type Game struct {
	mode       Mode
	cfg        config.Config
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	grid      Grid
	snake     *Snake
	food      Cell
	powerups  *PowerUpManager
	effects   *ActiveEffects
	obstacles *ObstacleManager // Survival only, nil otherwise
	particles *ParticleSystem

	queuedDir    Direction // Buffered direction for the next move
	hasQueuedDir bool

	score         int
	elapsed       float64
	moveTimer     float64
	timeRemaining float64 // Time Attack countdown

	over   bool
	reason EndReason
	paused bool

	// Screen placement
	screenW, screenH int
	originX, originY int
	hudHeight        int
	tooSmall         bool
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	for _, m := range []Mode{ModeClassic, ModeTimeAttack, ModeSurvival} {
		mode := m
		registry.Register(string(mode), func() registry.Game {
			return New(mode)
		})
	}
}

// ID returns the mode identifier, used for score storage.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Mode returns the session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the session: fresh centered snake of length 3
// moving right, empty power-up/obstacle/particle sets, score 0.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	seed := rc.Seed
	if seed == 0 {
		seed = 1
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.grid = Grid{W: cfg.Grid.Width, H: cfg.Grid.Height}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2
	g.layoutScreen()

	g.snake = NewSnake(g.grid.Center(), initialLength, DirRight)
	g.queuedDir = DirRight
	g.hasQueuedDir = false

	g.powerups = NewPowerUpManager(cfg.PowerUps, g.rng)
	g.effects = NewActiveEffects()
	g.particles = NewParticleSystem(cfg.Particles, g.rng)
	g.obstacles = nil
	if g.mode == ModeSurvival {
		g.obstacles = NewObstacleManager(cfg.Survival, g.rng)
	}

	g.score = 0
	g.elapsed = 0
	g.moveTimer = 0
	g.timeRemaining = 0
	if g.mode == ModeTimeAttack {
		g.timeRemaining = cfg.TimeAttack.Duration
	}

	g.over = false
	g.reason = EndNone
	g.paused = false

	g.food = Cell{X: -1, Y: -1}
	g.spawnFood()
}

// layoutScreen centers the playfield and checks the terminal fits it.
func (g *Game) layoutScreen() {
	requiredW := g.grid.W + 2 // Border
	requiredH := g.grid.H + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.originX = (g.screenW - g.grid.W) / 2
	g.originY = g.hudHeight + 1 // Below HUD and top border row
}

// Step advances the session by dt elapsed seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	// Terminal is absorbing; paused and too-small sessions hold still
	if g.over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// The full delta is honored so total elapsed time drives the same
	// state no matter how it is sliced into ticks; frame-stall capping is
	// the driver's job. Negative deltas never advance time.
	if dt < 0 {
		dt = 0
	}
	g.elapsed += dt

	g.applyInput(in)

	// Move the snake whenever enough wall-clock time has accumulated.
	// The interval is re-read each move since effects and the difficulty
	// ramp change it mid-step.
	g.moveTimer += dt
	for !g.over {
		interval := g.moveInterval()
		if g.moveTimer < interval {
			break
		}
		g.moveTimer -= interval
		g.advance()
	}
	if g.over {
		return core.StepResult{State: g.State()}
	}

	g.effects.Tick(dt)
	g.particles.Tick(dt)
	g.powerups.Tick(dt, g.freeCells(), g.snake.Head())
	if g.obstacles != nil {
		g.obstacles.Tick(dt, g.elapsed, g.freeCells(), g.snake.Head())
	}
	if !g.grid.Contains(g.food) {
		g.spawnFood() // Earlier spawn found no free cell; retry
	}

	if g.mode == ModeTimeAttack {
		g.timeRemaining -= dt
		if g.timeRemaining <= 0 {
			g.timeRemaining = 0
			g.finish(EndTimeExpired)
		}
	}

	return core.StepResult{State: g.State()}
}

// applyInput buffers a direction change for the next move. The request is
// checked against the committed direction, not the buffer, so two quick
// inputs inside one move interval cannot add up to a reversal.
func (g *Game) applyInput(in core.InputFrame) {
	want := g.snake.Direction()
	if g.hasQueuedDir {
		want = g.queuedDir
	}

	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	}

	if g.snake.Len() > 1 && want == g.snake.Direction().Opposite() {
		return // Reverse requests are silently ignored
	}
	g.queuedDir = want
	g.hasQueuedDir = true
}

// moveInterval returns the current seconds-per-move, from the base rate,
// the Classic difficulty ramp, and Speed Boost, floored at the configured
// minimum interval.
func (g *Game) moveInterval() float64 {
	rate := g.cfg.Speed.BaseMovesPerSec
	if g.mode == ModeClassic {
		rate = g.difficulty.MoveRate(rate, g.score, g.elapsed)
	}
	if g.effects.Active(SpeedBoost) {
		rate *= g.cfg.Speed.BoostMultiplier
	}
	if rate <= 0 {
		rate = 1
	}
	interval := 1.0 / rate
	if interval < g.cfg.Speed.MinMoveInterval {
		interval = g.cfg.Speed.MinMoveInterval
	}
	return interval
}

// advance performs one snake move. All collision checks run against the
// proposed head before it is committed, so a rejected move never corrupts
// the body.
func (g *Game) advance() {
	if g.hasQueuedDir {
		g.snake.SetDirection(g.queuedDir)
		g.hasQueuedDir = false
	}

	ghost := g.effects.Active(GhostMode)
	proposed := g.snake.NextHead()
	if ghost {
		proposed = g.grid.Wrap(proposed)
	}

	wall := !ghost && !g.grid.Contains(proposed)
	obstacle := !wall && !ghost && g.obstacles != nil && g.obstacles.At(proposed)
	self := !wall && g.snake.HitsSelf(proposed)

	if wall || obstacle || self {
		if g.effects.ConsumeShield() {
			// Shield consumed: the move is rejected and the snake holds
			// position this move.
			g.particles.SpawnBurst(g.snake.Head(), core.ColorBrightYellow, g.cfg.PowerUps.Bursts.Shield)
			return
		}
		if self {
			g.finish(EndSelfCollision)
		} else {
			g.finish(EndWallOrObstacle)
		}
		return
	}

	// Growth applies before the commit so the tail holds on the eating
	// move and the length is up to date within the same tick.
	ate := proposed == g.food
	if ate {
		g.snake.Grow(1)
	}
	g.snake.Advance(proposed)

	if ate {
		points := g.cfg.Scoring.BasePoints
		if g.effects.Active(ScoreMultiplier) {
			points *= 2
		}
		g.score += points
		g.particles.SpawnBurst(proposed, core.ColorBrightRed, g.cfg.PowerUps.Bursts.Food)
		g.spawnFood()
	}

	if p := g.powerups.CheckPickup(proposed); p != nil {
		g.effects.Apply(p.Kind, g.effectDuration(p.Kind))
		g.particles.SpawnBurst(p.Pos, p.Kind.Color(), g.cfg.PowerUps.Bursts.Pickup)
	}
}

// effectDuration returns the configured duration for a kind. Shield is
// binary and reports zero.
func (g *Game) effectDuration(kind PowerUpKind) float64 {
	switch kind {
	case SpeedBoost:
		return g.cfg.PowerUps.Durations.SpeedBoost
	case ScoreMultiplier:
		return g.cfg.PowerUps.Durations.ScoreMultiplier
	case GhostMode:
		return g.cfg.PowerUps.Durations.GhostMode
	default:
		return 0
	}
}

// spawnFood relocates the food to a uniformly chosen free cell. With no
// free cell the food is parked off-board and the spawn retried next tick.
func (g *Game) spawnFood() {
	free := g.freeCells()
	if len(free) == 0 {
		g.food = Cell{X: -1, Y: -1}
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// freeCells returns every grid cell not occupied by the snake, the food,
// an obstacle, or a live power-up.
func (g *Game) freeCells() []Cell {
	free := make([]Cell, 0, g.grid.W*g.grid.H)
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := Cell{X: x, Y: y}
			if c == g.food {
				continue
			}
			if g.snake.Occupies(c) {
				continue
			}
			if g.obstacles != nil && g.obstacles.At(c) {
				continue
			}
			if g.powerups.At(c) {
				continue
			}
			free = append(free, c)
		}
	}
	return free
}

// finish transitions the session to the terminal state. Terminal is
// absorbing; only Reset leaves it.
func (g *Game) finish(reason EndReason) {
	g.over = true
	g.reason = reason
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Elapsed returns the session wall-clock play time in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// TimeRemaining returns the Time Attack countdown, zero in other modes.
func (g *Game) TimeRemaining() float64 {
	return g.timeRemaining
}

// EndedBecause returns the terminal reason, or EndNone while running.
func (g *Game) EndedBecause() EndReason {
	return g.reason
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.over,
		Paused:    g.paused,
		EndReason: string(g.reason),
	}
}
