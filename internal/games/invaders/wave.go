package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Enemy is one member of a wave. Its absolute position is the wave
// origin plus a fixed grid offset, refreshed every tick. A hit marks the
// enemy for deletion; the wave removes it at the start of the next
// frame, so a marked enemy is still drawn for the frame it was hit in.
type Enemy struct {
	Rect    core.Rect
	OffsetX int
	OffsetY int
	marked  bool
}

// Marked reports whether the enemy is scheduled for removal.
func (e *Enemy) Marked() bool {
	return e.marked
}

// Update repositions the enemy at origin plus its grid offset, then
// checks it against every active projectile in pool slot order. The
// first overlap marks the enemy and returns that projectile to the pool;
// at most one projectile is consumed per enemy per frame. Returns true
// if the enemy was hit this frame.
func (e *Enemy) Update(originX, originY int, pool *Pool) bool {
	e.Rect.X = originX + e.OffsetX
	e.Rect.Y = originY + e.OffsetY

	if e.marked {
		return false
	}
	for i := 0; i < pool.Size(); i++ {
		pr := pool.At(i)
		if pr.Free() {
			continue
		}
		if e.Rect.Intersects(pr.Rect) {
			e.marked = true
			pr.Reset()
			return true
		}
	}
	return false
}

// Wave is a rigid grid of enemies sharing one translation origin. It
// slides horizontally, reverses and drops one enemy-cell when it would
// leave the world, and enters from above the visible area at start.
// The wave persists even when emptied; only members are removed.
type Wave struct {
	X, Y      int
	SpeedX    int
	dropSpeed int // this frame's vertical speed, set by the bounce rule
	entryStep int
	enemySize int
	width     int
	enemies   []*Enemy
}

// NewWave builds a cols x rows grid of enemies. The enemy at grid cell
// (col, row) gets the fixed offset (col*enemySize, row*enemySize). The
// origin starts at -waveHeight so the wave visibly enters from off-screen.
func NewWave(cols, rows, enemySize, speedX, entryStep, originX int) *Wave {
	w := &Wave{
		X:         originX,
		Y:         -rows * enemySize,
		SpeedX:    speedX,
		entryStep: entryStep,
		enemySize: enemySize,
		width:     cols * enemySize,
		enemies:   make([]*Enemy, 0, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			w.enemies = append(w.enemies, &Enemy{
				Rect:    core.Rect{W: enemySize, H: enemySize},
				OffsetX: col * enemySize,
				OffsetY: row * enemySize,
			})
		}
	}
	return w
}

// Update advances the wave one tick. Order matters: sweep members marked
// last frame, ease the entry descent, run the bounce rule, translate the
// origin, then update every member against the pool. Returns the number
// of enemies hit this frame.
func (w *Wave) Update(worldW int, pool *Pool) int {
	w.sweep()

	// Entry easing: while the origin is above the visible area, step it
	// down. The origin may come to rest up to entryStep-1 units past 0;
	// the overshoot is kept, not clamped.
	if w.Y < 0 {
		w.Y += w.entryStep
	}

	w.dropSpeed = 0
	nextX := w.X + w.SpeedX
	if nextX < 0 || nextX > worldW-w.width {
		w.SpeedX = -w.SpeedX
		w.dropSpeed = w.enemySize
	}
	w.X += w.SpeedX
	w.Y += w.dropSpeed

	hits := 0
	for _, e := range w.enemies {
		if e.Update(w.X, w.Y, pool) {
			hits++
		}
	}
	return hits
}

// sweep rebuilds the member list keeping only unmarked enemies. Runs
// before anything reads the list this frame, never during iteration.
func (w *Wave) sweep() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.marked {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = kept
}

// Enemies returns the live member list, including enemies marked this
// frame but not yet swept.
func (w *Wave) Enemies() []*Enemy {
	return w.enemies
}

// Width returns the wave's bounding-box width in world units.
func (w *Wave) Width() int {
	return w.width
}

// BottomY returns the lowest bottom edge among live members, or 0 for an
// empty wave.
func (w *Wave) BottomY() int {
	bottom := 0
	for _, e := range w.enemies {
		if b := e.Rect.Bottom(); b > bottom {
			bottom = b
		}
	}
	return bottom
}
