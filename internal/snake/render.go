package snake

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/snake-evolution/internal/core"
)

// Render draws the session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBorder(dst)
	g.renderObstacles(dst)
	g.renderFood(dst)
	g.renderPowerUps(dst)
	g.renderSnake(dst)
	g.renderParticles(dst)

	switch {
	case g.over:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s - Score: %d", g.mode.Title(), g.score)
	if g.mode == ModeTimeAttack {
		hud += fmt.Sprintf("  Time: %ds", int(math.Ceil(g.timeRemaining)))
	}
	if g.mode == ModeSurvival && g.obstacles != nil {
		hud += fmt.Sprintf("  Obstacles: %d", g.obstacles.Count())
	}
	if badges := g.effectBadges(); badges != "" {
		hud += "  " + badges
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// effectBadges summarizes active effects, e.g. "[Shield] [Ghost Mode 3s]".
func (g *Game) effectBadges() string {
	var parts []string
	if g.effects.Active(Shield) {
		parts = append(parts, "[Shield]")
	}
	for _, kind := range []PowerUpKind{SpeedBoost, ScoreMultiplier, GhostMode} {
		if g.effects.Active(kind) {
			secs := int(math.Ceil(g.effects.Remaining(kind)))
			parts = append(parts, fmt.Sprintf("[%s %ds]", kind, secs))
		}
	}
	return strings.Join(parts, " ")
}

// renderBorder draws the playfield walls.
func (g *Game) renderBorder(dst *core.Screen) {
	left := g.originX - 1
	top := g.originY - 1
	right := g.originX + g.grid.W
	bottom := g.originY + g.grid.H

	for x := left; x <= right; x++ {
		dst.SetCell(x, top, '#', core.ColorGray)
		dst.SetCell(x, bottom, '#', core.ColorGray)
	}
	for y := top; y <= bottom; y++ {
		dst.SetCell(left, y, '#', core.ColorGray)
		dst.SetCell(right, y, '#', core.ColorGray)
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	if g.obstacles == nil {
		return
	}
	for _, c := range g.obstacles.Cells() {
		dst.SetCell(g.originX+c.X, g.originY+c.Y, '▒', core.ColorGray)
	}
}

func (g *Game) renderFood(dst *core.Screen) {
	if !g.grid.Contains(g.food) {
		return
	}
	dst.SetCell(g.originX+g.food.X, g.originY+g.food.Y, '*', core.ColorBrightRed)
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, p := range g.powerups.Live() {
		dst.SetCell(g.originX+p.Pos.X, g.originY+p.Pos.Y, p.Kind.Glyph(), p.Kind.Color())
	}
}

func (g *Game) renderSnake(dst *core.Screen) {
	color := core.ColorBrightGreen
	if g.effects.Active(GhostMode) {
		color = core.ColorBrightCyan // Visual cue that walls wrap
	}
	for i, seg := range g.snake.Cells() {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetCell(g.originX+seg.X, g.originY+seg.Y, r, color)
	}
}

// renderParticles plots particles inside the playfield; anything that
// drifted past the border is simply not drawn.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		c := Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
		if !g.grid.Contains(c) {
			continue
		}
		dst.SetCell(g.originX+c.X, g.originY+c.Y, '·', p.Color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
