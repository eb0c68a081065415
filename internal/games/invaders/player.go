package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Player is the user-controlled ship: a horizontally moving rectangle
// that spawns projectiles from the pool. One instance lives for the
// whole session.
type Player struct {
	Rect   core.Rect
	Speed  int
	worldW int
}

// NewPlayer creates the player centered horizontally, sitting one cell
// row above the bottom of the world.
func NewPlayer(worldW, worldH, width, height, speed int) *Player {
	return &Player{
		Rect: core.Rect{
			X: (worldW - width) / 2,
			Y: worldH - height - UnitsPerCellY,
			W: width,
			H: height,
		},
		Speed:  speed,
		worldW: worldW,
	}
}

// Update reads the held-key set for this frame, moves the ship, and
// fires while the fire key is held (auto-fire, gated only by pool
// availability). The horizontal position is clamped so the ship may sit
// half off-screen at either edge; that slack is deliberate.
func (p *Player) Update(in core.InputSnapshot, pool *Pool) {
	if in.Held(core.ActionLeft) {
		p.Rect.X -= p.Speed
	}
	if in.Held(core.ActionRight) {
		p.Rect.X += p.Speed
	}
	p.Rect.X = core.Clamp(p.Rect.X, -p.Rect.W/2, p.worldW-p.Rect.W/2)

	if in.Held(core.ActionFire) {
		p.Shoot(pool)
	}
}

// Shoot acquires a free projectile and starts it at the ship's center-x
// and top-y. With the pool exhausted the shot is silently dropped.
// Returns whether a projectile was fired.
func (p *Player) Shoot(pool *Pool) bool {
	pr := pool.AcquireFree()
	if pr == nil {
		return false
	}
	pr.Start(p.Rect.CenterX(), p.Rect.Y)
	return true
}
