// Package config provides YAML-based game configuration loading and
// difficulty management for the snake arcade.
package config

// Config contains all tunable parameters for a snake session.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	TimeAttack TimeAttackConfig `yaml:"time_attack"`
	Survival   SurvivalConfig   `yaml:"survival"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines snake movement pacing.
// Movement is expressed in moves per second of wall-clock time so the
// simulation is independent of the platform frame rate.
type SpeedConfig struct {
	BaseMovesPerSec float64 `yaml:"base_moves_per_sec"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`  // Speed Boost effect factor
	MinMoveInterval float64 `yaml:"min_move_interval"` // Lower bound in seconds per move
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	BasePoints int `yaml:"base_points"` // Points per food, before multipliers
}

// PowerUpConfig defines power-up spawning and effect durations.
type PowerUpConfig struct {
	SpawnInterval float64          `yaml:"spawn_interval"` // Seconds between spawn attempts
	MaxActive     int              `yaml:"max_active"`     // Max power-ups on the board
	BoardTTL      float64          `yaml:"board_ttl"`      // Seconds before an unclaimed power-up decays
	HeadClearance int              `yaml:"head_clearance"` // Min Chebyshev distance from the snake head at spawn
	Durations     DurationsConfig  `yaml:"durations"`
	Bursts        BurstCountConfig `yaml:"bursts"`
}

// DurationsConfig holds effect durations in seconds.
// Shield has no duration; it persists until consumed by a collision.
type DurationsConfig struct {
	SpeedBoost      float64 `yaml:"speed_boost"`
	ScoreMultiplier float64 `yaml:"score_multiplier"`
	GhostMode       float64 `yaml:"ghost_mode"`
}

// BurstCountConfig holds particle counts for pickup feedback.
type BurstCountConfig struct {
	Food   int `yaml:"food"`
	Pickup int `yaml:"pickup"`
	Shield int `yaml:"shield"`
}

// TimeAttackConfig defines the countdown mode.
type TimeAttackConfig struct {
	Duration float64 `yaml:"duration"` // Session length in seconds
}

// SurvivalConfig defines obstacle spawning.
type SurvivalConfig struct {
	ObstacleInterval float64 `yaml:"obstacle_interval"` // Initial seconds between spawns
	MinInterval      float64 `yaml:"min_interval"`      // Interval floor as the ramp accelerates
	AccelPerSec      float64 `yaml:"accel_per_sec"`     // Interval reduction per elapsed second
	HeadClearance    int     `yaml:"head_clearance"`    // Min Chebyshev distance from the snake head
}

// ParticleConfig defines the cosmetic particle system.
type ParticleConfig struct {
	MaxAge   float64 `yaml:"max_age"`   // Particle lifetime in seconds
	MaxSpeed float64 `yaml:"max_speed"` // Max velocity magnitude in cells/sec
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to move rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMovesPerSec = 6
		cfg.Survival.ObstacleInterval = 8
	case DifficultyHard:
		cfg.Speed.BaseMovesPerSec = 10
		cfg.Survival.ObstacleInterval = 4
		cfg.PowerUps.SpawnInterval = 14
	}
}
