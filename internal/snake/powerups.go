package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-evolution/internal/config"
	"github.com/vovakirdan/snake-evolution/internal/core"
)

// PowerUpKind identifies a power-up variant. The set is closed.
type PowerUpKind int

const (
	SpeedBoost PowerUpKind = iota
	Shield
	ScoreMultiplier
	GhostMode
	powerUpKindCount // Sentinel for counting kinds
)

// String returns the display name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case SpeedBoost:
		return "Speed Boost"
	case Shield:
		return "Shield"
	case ScoreMultiplier:
		return "Score x2"
	case GhostMode:
		return "Ghost Mode"
	default:
		return "?"
	}
}

// Glyph returns the display character for the kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case SpeedBoost:
		return 'F'
	case Shield:
		return 'S'
	case ScoreMultiplier:
		return '2'
	case GhostMode:
		return 'G'
	default:
		return '?'
	}
}

// Color returns the display color for the kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case SpeedBoost:
		return core.ColorBrightBlue
	case Shield:
		return core.ColorBrightYellow
	case ScoreMultiplier:
		return core.ColorBrightMagenta
	case GhostMode:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// PowerUp is a collectible sitting on the board. It decays if nobody picks
// it up within the configured board TTL.
type PowerUp struct {
	Kind PowerUpKind
	Pos  Cell
	Age  float64 // Seconds on the board
}

// PowerUpManager owns the live power-ups: interval-driven spawn attempts,
// board decay, and pickup detection. Active effect timers live on the
// session, not here.
type PowerUpManager struct {
	cfg  config.PowerUpConfig
	rng  *rand.Rand
	live []PowerUp

	spawnTimer float64
}

// NewPowerUpManager creates a manager with injected randomness so tests
// can be deterministic.
func NewPowerUpManager(cfg config.PowerUpConfig, rng *rand.Rand) *PowerUpManager {
	return &PowerUpManager{
		cfg: cfg,
		rng: rng,
	}
}

// Live returns the power-ups currently on the board. The slice is owned by
// the manager; callers must not mutate it.
func (m *PowerUpManager) Live() []PowerUp {
	return m.live
}

// At reports whether a live power-up occupies c.
func (m *PowerUpManager) At(c Cell) bool {
	for _, p := range m.live {
		if p.Pos == c {
			return true
		}
	}
	return false
}

// Tick ages live power-ups, drops decayed ones, and attempts a spawn when
// the spawn interval elapses. The free cells are supplied by the session,
// already excluding the snake, food, obstacles, and live power-ups; head
// is used for the spawn clearance rule. A failed attempt (no eligible
// cell, or board full) is a no-op retried on the next interval.
func (m *PowerUpManager) Tick(dt float64, free []Cell, head Cell) {
	// Age out unclaimed power-ups
	if m.cfg.BoardTTL > 0 {
		kept := m.live[:0]
		for i := range m.live {
			m.live[i].Age += dt
			if m.live[i].Age < m.cfg.BoardTTL {
				kept = append(kept, m.live[i])
			}
		}
		m.live = kept
	}

	m.spawnTimer += dt
	if m.spawnTimer < m.cfg.SpawnInterval {
		return
	}
	m.spawnTimer -= m.cfg.SpawnInterval
	m.trySpawn(free, head)
}

// trySpawn places a random-kind power-up on an eligible free cell.
func (m *PowerUpManager) trySpawn(free []Cell, head Cell) {
	if len(m.live) >= m.cfg.MaxActive {
		return
	}

	eligible := make([]Cell, 0, len(free))
	for _, c := range free {
		if chebyshev(c, head) >= m.cfg.HeadClearance {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return
	}

	m.live = append(m.live, PowerUp{
		Kind: PowerUpKind(m.rng.Intn(int(powerUpKindCount))),
		Pos:  eligible[m.rng.Intn(len(eligible))],
	})
}

// CheckPickup returns the power-up at head, removing it from the live set,
// or nil if the head is not on one.
func (m *PowerUpManager) CheckPickup(head Cell) *PowerUp {
	for i := range m.live {
		if m.live[i].Pos == head {
			picked := m.live[i]
			m.live = append(m.live[:i], m.live[i+1:]...)
			return &picked
		}
	}
	return nil
}

// Reset clears all live power-ups and the spawn timer.
func (m *PowerUpManager) Reset() {
	m.live = m.live[:0]
	m.spawnTimer = 0
}
