package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default snake configuration.
// Used as a fallback when no config file is found and the embedded
// default cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  36,
			Height: 18,
		},
		Speed: SpeedConfig{
			BaseMovesPerSec: 8.0,
			BoostMultiplier: 1.5,
			MinMoveInterval: 0.05,
		},
		Scoring: ScoringConfig{
			BasePoints: 10,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval: 10.0,
			MaxActive:     2,
			BoardTTL:      30.0,
			HeadClearance: 2,
			Durations: DurationsConfig{
				SpeedBoost:      5.0,
				ScoreMultiplier: 5.0,
				GhostMode:       5.0,
			},
			Bursts: BurstCountConfig{
				Food:   15,
				Pickup: 15,
				Shield: 20,
			},
		},
		TimeAttack: TimeAttackConfig{
			Duration: 60.0,
		},
		Survival: SurvivalConfig{
			ObstacleInterval: 6.0,
			MinInterval:      2.0,
			AccelPerSec:      0.03,
			HeadClearance:    3,
		},
		Particles: ParticleConfig{
			MaxAge:   0.5,
			MaxSpeed: 12.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
