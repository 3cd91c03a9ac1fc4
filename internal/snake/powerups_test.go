package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-evolution/internal/config"
)

func testPowerUpConfig() config.PowerUpConfig {
	return config.PowerUpConfig{
		SpawnInterval: 10.0,
		MaxActive:     2,
		BoardTTL:      30.0,
		HeadClearance: 2,
		Durations: config.DurationsConfig{
			SpeedBoost:      5.0,
			ScoreMultiplier: 5.0,
			GhostMode:       5.0,
		},
	}
}

func testFreeCells(w, h int) []Cell {
	free := make([]Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			free = append(free, Cell{X: x, Y: y})
		}
	}
	return free
}

func TestPowerUpSpawnsOnInterval(t *testing.T) {
	m := NewPowerUpManager(testPowerUpConfig(), rand.New(rand.NewSource(1)))
	free := testFreeCells(20, 20)
	head := Cell{X: 0, Y: 0}

	m.Tick(9.9, free, head)
	if len(m.Live()) != 0 {
		t.Fatalf("Nothing should spawn before the interval, got %d", len(m.Live()))
	}

	m.Tick(0.2, free, head)
	if len(m.Live()) != 1 {
		t.Fatalf("One power-up should spawn after the interval, got %d", len(m.Live()))
	}

	p := m.Live()[0]
	if p.Kind < SpeedBoost || p.Kind >= powerUpKindCount {
		t.Errorf("Spawned kind %v out of range", p.Kind)
	}
}

func TestPowerUpMaxActiveBound(t *testing.T) {
	m := NewPowerUpManager(testPowerUpConfig(), rand.New(rand.NewSource(2)))
	free := testFreeCells(20, 20)
	head := Cell{X: 0, Y: 0}

	// Run many intervals; the board never exceeds the cap
	for i := 0; i < 10; i++ {
		m.Tick(10.0, free, head)
		if len(m.Live()) > m.cfg.MaxActive {
			t.Fatalf("Live power-ups %d exceed max active %d", len(m.Live()), m.cfg.MaxActive)
		}
	}
	if len(m.Live()) != m.cfg.MaxActive {
		t.Errorf("Board should fill to max active %d, got %d", m.cfg.MaxActive, len(m.Live()))
	}
}

func TestPowerUpHeadClearance(t *testing.T) {
	cfg := testPowerUpConfig()
	cfg.MaxActive = 100
	m := NewPowerUpManager(cfg, rand.New(rand.NewSource(3)))
	free := testFreeCells(20, 20)
	head := Cell{X: 10, Y: 10}

	for i := 0; i < 50; i++ {
		m.Tick(10.0, free, head)
	}

	for _, p := range m.Live() {
		if chebyshev(p.Pos, head) < cfg.HeadClearance {
			t.Errorf("Power-up at %v spawned within clearance %d of head %v",
				p.Pos, cfg.HeadClearance, head)
		}
	}
}

func TestPowerUpSpawnFailureIsNoOp(t *testing.T) {
	m := NewPowerUpManager(testPowerUpConfig(), rand.New(rand.NewSource(4)))
	head := Cell{X: 0, Y: 0}

	// No eligible cells: every free cell is inside the clearance radius
	tooClose := []Cell{{0, 1}, {1, 1}, {1, 0}}
	m.Tick(10.0, tooClose, head)
	if len(m.Live()) != 0 {
		t.Error("Spawn with no eligible cell should be a no-op")
	}

	// The schedule keeps running: the next interval retries and succeeds
	m.Tick(10.0, testFreeCells(20, 20), head)
	if len(m.Live()) != 1 {
		t.Errorf("Next interval should retry the spawn, got %d live", len(m.Live()))
	}
}

func TestPowerUpBoardDecay(t *testing.T) {
	m := NewPowerUpManager(testPowerUpConfig(), rand.New(rand.NewSource(5)))
	free := testFreeCells(20, 20)
	head := Cell{X: 0, Y: 0}

	m.Tick(10.0, free, head)
	if len(m.Live()) != 1 {
		t.Fatalf("Expected one live power-up, got %d", len(m.Live()))
	}

	// Age it past the board TTL; no free cells, so no replacement spawns
	for i := 0; i < 7; i++ {
		m.Tick(5.0, nil, head)
	}
	if len(m.Live()) != 0 {
		t.Errorf("Unclaimed power-up should decay after the TTL, %d still live", len(m.Live()))
	}
}

func TestCheckPickupRemoves(t *testing.T) {
	m := NewPowerUpManager(testPowerUpConfig(), rand.New(rand.NewSource(6)))
	m.live = append(m.live, PowerUp{Kind: Shield, Pos: Cell{X: 4, Y: 4}})

	if p := m.CheckPickup(Cell{X: 3, Y: 4}); p != nil {
		t.Error("Pickup off the power-up cell should return nil")
	}

	p := m.CheckPickup(Cell{X: 4, Y: 4})
	if p == nil {
		t.Fatal("Pickup on the power-up cell should return it")
	}
	if p.Kind != Shield {
		t.Errorf("Expected Shield, got %v", p.Kind)
	}
	if len(m.Live()) != 0 {
		t.Error("Picked-up power-up should leave the board")
	}
}

func TestPowerUpKindMetadata(t *testing.T) {
	kinds := []PowerUpKind{SpeedBoost, Shield, ScoreMultiplier, GhostMode}
	glyphs := make(map[rune]bool)
	for _, k := range kinds {
		if k.String() == "?" {
			t.Errorf("Kind %d has no display name", k)
		}
		g := k.Glyph()
		if g == '?' {
			t.Errorf("Kind %v has no glyph", k)
		}
		if glyphs[g] {
			t.Errorf("Glyph %q is used by more than one kind", g)
		}
		glyphs[g] = true
	}
}
