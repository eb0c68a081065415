// Package invaders implements a Space Invaders-style fixed shooter.
// The player slides along the bottom of the world and fires pooled
// projectiles at a descending, bouncing grid of enemies.
package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// World units per terminal cell. Cells render roughly twice as tall as
// wide, so the vertical scale doubles the horizontal one and a square in
// units looks square on screen.
const (
	UnitsPerCellX = 10
	UnitsPerCellY = 20
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	ProjectileChar = '│'
)

// Points awarded per destroyed enemy.
const EnemyPoints = 10

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is the loop controller. It exclusively owns the player, the
// projectile pool, and the wave list; entities get the capabilities they
// need passed into their update calls instead of holding back-references.
type Game struct {
	player *Player
	pool   *Pool
	waves  []*Wave

	worldW int
	worldH int

	state     string
	score     int
	tickCount int

	runtime core.RuntimeConfig
	cfg     config.InvadersConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game. World bounds are fixed here
// from the screen size and do not change for the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.worldW = runtime.ScreenW * UnitsPerCellX
	g.worldH = runtime.ScreenH * UnitsPerCellY

	g.minScreenW = cfg.Wave.Cols*cfg.Wave.EnemySize/UnitsPerCellX + 8
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.state = StatePlaying
	g.score = 0
	g.tickCount = 0

	g.player = NewPlayer(g.worldW, g.worldH,
		cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed)

	g.pool = NewPool(cfg.Projectile.PoolSize,
		cfg.Projectile.Width, cfg.Projectile.Height, cfg.Projectile.Speed)

	// A single wave, centered horizontally. Members are removed one by
	// one; the wave itself is never replaced, even when emptied.
	waveW := cfg.Wave.Cols * cfg.Wave.EnemySize
	g.waves = []*Wave{
		NewWave(cfg.Wave.Cols, cfg.Wave.Rows, cfg.Wave.EnemySize,
			cfg.Wave.Speed, cfg.Wave.EntryStep, (g.worldW-waveW)/2),
	}
}

// Step advances the game by one tick. The per-frame composition order is
// fixed: player (may fire), then every pooled projectile, then each wave.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.player.Update(in, g.pool)
	g.pool.Update()

	for _, w := range g.waves {
		g.score += EnemyPoints * w.Update(g.worldW, g.pool)
	}

	// The session ends when the wave descends to the player's row.
	for _, w := range g.waves {
		if len(w.Enemies()) > 0 && w.BottomY() >= g.player.Rect.Y {
			g.state = StateGameOver
		}
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderPlayer(dst)
	g.renderProjectiles(dst)
	g.renderWaves(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// cellRect maps a world-unit rectangle to screen cells, never collapsing
// below one cell in either direction.
func cellRect(r core.Rect) core.Rect {
	return core.Rect{
		X: r.X / UnitsPerCellX,
		Y: r.Y / UnitsPerCellY,
		W: core.Max(1, r.W/UnitsPerCellX),
		H: core.Max(1, r.H/UnitsPerCellY),
	}
}

// renderPlayer draws the ship as a filled rectangle.
func (g *Game) renderPlayer(dst *core.Screen) {
	dst.FillRect(cellRect(g.player.Rect), PlayerChar, core.ColorCyan)
}

// renderProjectiles draws every in-flight projectile.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for i := 0; i < g.pool.Size(); i++ {
		pr := g.pool.At(i)
		if pr.Free() {
			continue
		}
		cr := cellRect(pr.Rect)
		for y := cr.Y; y < cr.Bottom(); y++ {
			dst.SetCell(pr.Rect.CenterX()/UnitsPerCellX, y, ProjectileChar, core.ColorYellow)
		}
	}
}

// renderWaves draws every wave member as an outlined rectangle. Enemies
// marked this frame are still drawn; they vanish next frame.
func (g *Game) renderWaves(dst *core.Screen) {
	for _, w := range g.waves {
		for _, e := range w.Enemies() {
			dst.StrokeRect(cellRect(e.Rect), core.ColorGreen)
		}
	}
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", g.score))
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
