package snake

// SessionState labels the session for snapshots and the platform.
type SessionState string

const (
	StateRunning     SessionState = "running"
	StatePaused      SessionState = "paused"
	StateTerminal    SessionState = "terminal"
	StatePausedSmall SessionState = "paused_small_window"
)

// Snapshot is a read-only copy of everything a renderer or test needs:
// the full board contents plus score and timing. Slices are copies, safe
// to hold across ticks.
type Snapshot struct {
	Mode          Mode
	State         SessionState
	EndReason     EndReason
	Score         int
	Elapsed       float64
	TimeRemaining float64
	MoveInterval  float64

	Dir        Direction
	SnakeCells []Cell
	Food       Cell
	PowerUps   []PowerUp
	Obstacles  []Cell
	Particles  []Particle

	ShieldActive bool
	// EffectSecondsLeft maps duration-based active effects to their
	// remaining seconds.
	EffectSecondsLeft map[PowerUpKind]float64
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.over:
		state = StateTerminal
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Mode:          g.mode,
		State:         state,
		EndReason:     g.reason,
		Score:         g.score,
		Elapsed:       g.elapsed,
		TimeRemaining: g.timeRemaining,
		MoveInterval:  g.moveInterval(),
		Dir:           g.snake.Direction(),
		SnakeCells:    append([]Cell(nil), g.snake.Cells()...),
		Food:          g.food,
		PowerUps:      append([]PowerUp(nil), g.powerups.Live()...),
		Particles:     append([]Particle(nil), g.particles.Particles()...),
		ShieldActive:  g.effects.Active(Shield),
	}

	if g.obstacles != nil {
		snap.Obstacles = append([]Cell(nil), g.obstacles.Cells()...)
	}

	snap.EffectSecondsLeft = make(map[PowerUpKind]float64)
	for _, kind := range []PowerUpKind{SpeedBoost, ScoreMultiplier, GhostMode} {
		if g.effects.Active(kind) {
			snap.EffectSecondsLeft[kind] = g.effects.Remaining(kind)
		}
	}

	return snap
}
