package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-evolution/internal/config"
)

// ObstacleManager owns the static lethal cells used by Survival mode.
// Obstacles spawn on an accelerating interval, never move, and never
// expire; the set only grows within a session.
type ObstacleManager struct {
	cfg   config.SurvivalConfig
	rng   *rand.Rand
	cells []Cell
	occ   map[Cell]bool

	timer float64
}

// NewObstacleManager creates a manager with injected randomness.
func NewObstacleManager(cfg config.SurvivalConfig, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		cfg: cfg,
		rng: rng,
		occ: make(map[Cell]bool),
	}
}

// Cells returns the placed obstacles in spawn order. The slice is owned by
// the manager; callers must not mutate it.
func (m *ObstacleManager) Cells() []Cell {
	return m.cells
}

// Count returns the number of placed obstacles.
func (m *ObstacleManager) Count() int {
	return len(m.cells)
}

// At reports whether an obstacle occupies c.
func (m *ObstacleManager) At(c Cell) bool {
	return m.occ[c]
}

// interval returns the current spawn interval: the base interval shrinks
// with elapsed session time, floored at the configured minimum.
func (m *ObstacleManager) interval(elapsed float64) float64 {
	iv := m.cfg.ObstacleInterval - m.cfg.AccelPerSec*elapsed
	if iv < m.cfg.MinInterval {
		iv = m.cfg.MinInterval
	}
	return iv
}

// Tick advances the spawn schedule. When the interval elapses it places a
// new obstacle on a free cell at least HeadClearance away from the snake
// head. No eligible cell is a no-op; the attempt is retried when the
// interval next elapses.
func (m *ObstacleManager) Tick(dt, elapsed float64, free []Cell, head Cell) {
	m.timer += dt
	iv := m.interval(elapsed)
	if m.timer < iv {
		return
	}
	m.timer -= iv

	eligible := make([]Cell, 0, len(free))
	for _, c := range free {
		if chebyshev(c, head) >= m.cfg.HeadClearance {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return
	}

	c := eligible[m.rng.Intn(len(eligible))]
	m.cells = append(m.cells, c)
	m.occ[c] = true
}

// Reset clears all obstacles and the spawn timer.
func (m *ObstacleManager) Reset() {
	m.cells = m.cells[:0]
	clear(m.occ)
	m.timer = 0
}
