package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	yaml := `
grid:
  width: 50
  height: 30
speed:
  base_moves_per_sec: 12.0
scoring:
  base_points: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 50 || cfg.Grid.Height != 30 {
		t.Errorf("Grid should be 50x30, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.BaseMovesPerSec != 12.0 {
		t.Errorf("Base rate should be 12.0, got %v", cfg.Speed.BaseMovesPerSec)
	}
	if cfg.Scoring.BasePoints != 25 {
		t.Errorf("Base points should be 25, got %d", cfg.Scoring.BasePoints)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with an explicit missing path should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise
	// behavior silently depends on which one was loaded.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := Default()

	if cfg.Grid != def.Grid {
		t.Errorf("Grid mismatch: %+v vs %+v", cfg.Grid, def.Grid)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("Speed mismatch: %+v vs %+v", cfg.Speed, def.Speed)
	}
	if cfg.PowerUps != def.PowerUps {
		t.Errorf("PowerUps mismatch: %+v vs %+v", cfg.PowerUps, def.PowerUps)
	}
	if cfg.Survival != def.Survival {
		t.Errorf("Survival mismatch: %+v vs %+v", cfg.Survival, def.Survival)
	}
}

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		t.Error("Grid dimensions must be positive")
	}
	if cfg.Speed.BaseMovesPerSec <= 0 {
		t.Error("Base move rate must be positive")
	}
	if cfg.Speed.BoostMultiplier <= 1.0 {
		t.Error("Boost multiplier must actually speed the snake up")
	}
	if cfg.PowerUps.MaxActive <= 0 {
		t.Error("Max active power-ups must be positive")
	}
	if cfg.TimeAttack.Duration <= 0 {
		t.Error("Time attack duration must be positive")
	}
	if cfg.Survival.MinInterval > cfg.Survival.ObstacleInterval {
		t.Error("Survival interval floor must not exceed the initial interval")
	}
}

func TestApplyPreset(t *testing.T) {
	normal := Default()

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speed.BaseMovesPerSec >= normal.Speed.BaseMovesPerSec {
		t.Error("Easy preset should slow the base rate")
	}
	if easy.Survival.ObstacleInterval <= normal.Survival.ObstacleInterval {
		t.Error("Easy preset should space survival obstacles out")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.BaseMovesPerSec <= normal.Speed.BaseMovesPerSec {
		t.Error("Hard preset should raise the base rate")
	}
	if hard.Survival.ObstacleInterval >= normal.Survival.ObstacleInterval {
		t.Error("Hard preset should tighten survival obstacles")
	}
	if hard.Difficulty.InitialLevel != InitialLevelForPreset(DifficultyHard) {
		t.Errorf("Hard preset initial level should be %v, got %v",
			InitialLevelForPreset(DifficultyHard), hard.Difficulty.InitialLevel)
	}

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable the progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 200},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.Level(0, 0) != 0.0 {
		t.Errorf("Level at score 0 should be 0.0, got %v", d.Level(0, 0))
	}
	if d.Level(100, 0) != 0.5 {
		t.Errorf("Level at score 100 should be 0.5, got %v", d.Level(100, 0))
	}
	if d.Level(200, 0) != 1.0 {
		t.Errorf("Level at score 200 should be 1.0, got %v", d.Level(200, 0))
	}
	if d.Level(10000, 0) != 1.0 {
		t.Errorf("Level should clamp at 1.0, got %v", d.Level(10000, 0))
	}
}

func TestDifficultyMoveRate(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 200},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	base := 8.0
	if got := d.MoveRate(base, 0, 0); got != base {
		t.Errorf("Rate at level 0 should equal the base, got %v", got)
	}
	if got := d.MoveRate(base, 200, 0); got != base*2 {
		t.Errorf("Rate at max level should be %v, got %v", base*2, got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 200},
	})

	if d.Level(10000, 0) != 0.3 {
		t.Errorf("Disabled progression should hold the initial level, got %v", d.Level(10000, 0))
	}
}
