package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-evolution/internal/config"
)

func testSurvivalConfig() config.SurvivalConfig {
	return config.SurvivalConfig{
		ObstacleInterval: 6.0,
		MinInterval:      2.0,
		AccelPerSec:      0.03,
		HeadClearance:    3,
	}
}

func TestObstacleSpawnsOnInterval(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(1)))
	free := testFreeCells(20, 20)
	head := Cell{X: 0, Y: 0}

	m.Tick(5.9, 0, free, head)
	if m.Count() != 0 {
		t.Fatalf("Nothing should spawn before the interval, got %d", m.Count())
	}

	m.Tick(0.2, 6.0, free, head)
	if m.Count() != 1 {
		t.Fatalf("One obstacle should spawn after the interval, got %d", m.Count())
	}

	c := m.Cells()[0]
	if !m.At(c) {
		t.Errorf("At should report the spawned obstacle %v", c)
	}
}

func TestObstacleIntervalAccelerates(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(2)))

	start := m.interval(0)
	later := m.interval(60)
	if later >= start {
		t.Errorf("Interval should shrink with elapsed time: %v vs %v", later, start)
	}

	// Floored at the minimum no matter how long the session runs
	if got := m.interval(100000); got != m.cfg.MinInterval {
		t.Errorf("Interval should floor at %v, got %v", m.cfg.MinInterval, got)
	}
}

func TestObstacleHeadClearance(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(3)))
	free := testFreeCells(20, 20)
	head := Cell{X: 10, Y: 10}

	for i := 0; i < 30; i++ {
		m.Tick(6.0, float64(i), free, head)
	}

	for _, c := range m.Cells() {
		if chebyshev(c, head) < m.cfg.HeadClearance {
			t.Errorf("Obstacle at %v spawned within clearance %d of head %v",
				c, m.cfg.HeadClearance, head)
		}
	}
}

func TestObstaclesOnlyAccumulate(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(4)))
	free := testFreeCells(20, 20)
	head := Cell{X: 0, Y: 0}

	prev := 0
	for i := 0; i < 20; i++ {
		m.Tick(6.0, float64(i*6), free, head)
		if m.Count() < prev {
			t.Fatalf("Obstacle count decreased: %d -> %d", prev, m.Count())
		}
		prev = m.Count()
	}
	if prev == 0 {
		t.Error("Obstacles should have accumulated over 20 intervals")
	}
}

func TestObstacleSpawnFailureIsNoOp(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(5)))
	head := Cell{X: 0, Y: 0}

	// Every free cell is within the clearance radius
	tooClose := []Cell{{1, 1}, {2, 2}, {0, 2}}
	m.Tick(6.0, 0, tooClose, head)
	if m.Count() != 0 {
		t.Error("Spawn with no eligible cell should be a no-op")
	}

	m.Tick(6.0, 6.0, testFreeCells(20, 20), head)
	if m.Count() != 1 {
		t.Errorf("Next interval should retry the spawn, got %d", m.Count())
	}
}

func TestObstacleReset(t *testing.T) {
	m := NewObstacleManager(testSurvivalConfig(), rand.New(rand.NewSource(6)))
	free := testFreeCells(20, 20)
	m.Tick(6.0, 0, free, Cell{X: 0, Y: 0})

	m.Reset()

	if m.Count() != 0 {
		t.Errorf("Reset should clear all obstacles, got %d", m.Count())
	}
	if m.At(Cell{X: 5, Y: 5}) {
		t.Error("At should report nothing after reset")
	}
}
