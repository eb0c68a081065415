package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Projectile is one reusable pool slot. A slot is either free (unused
// capacity) or active (in flight). Active projectiles travel straight up
// by a fixed per-tick speed and return to the pool when they leave the
// top of the world or hit an enemy.
type Projectile struct {
	Rect  core.Rect
	Speed int
	free  bool
}

// Free reports whether the slot is unused.
func (p *Projectile) Free() bool {
	return p.free
}

// Start activates the slot at the given spawn point. centerX is the
// intended horizontal center of the shot; the projectile recenters its
// own width on it. topY becomes the projectile's top edge. The caller
// must only Start slots that are currently free.
func (p *Projectile) Start(centerX, topY int) {
	p.Rect.X = centerX - p.Rect.W/2
	p.Rect.Y = topY
	p.free = false
}

// Update advances an active projectile one tick. Free slots are
// untouched. A projectile whose top edge has fully crossed the top world
// boundary returns to the pool; this is the sole natural-expiry path.
func (p *Projectile) Update() {
	if p.free {
		return
	}
	p.Rect.Y -= p.Speed
	if p.Rect.Y < -p.Rect.H {
		p.free = true
	}
}

// Reset forces the slot back to free regardless of its current state.
// Used when the projectile registers a hit.
func (p *Projectile) Reset() {
	p.free = true
}

// Pool is a fixed-capacity set of projectile slots, allocated once so
// firing never allocates. Capacity never grows; firing with no free slot
// is a dropped shot.
type Pool struct {
	slots []Projectile
}

// NewPool allocates a pool of size slots with the given projectile
// geometry and speed. All slots start free.
func NewPool(size, width, height, speed int) *Pool {
	pool := &Pool{slots: make([]Projectile, size)}
	for i := range pool.slots {
		pool.slots[i] = Projectile{
			Rect:  core.Rect{W: width, H: height},
			Speed: speed,
			free:  true,
		}
	}
	return pool
}

// Size returns the fixed slot count.
func (pl *Pool) Size() int {
	return len(pl.slots)
}

// At returns the slot at index i. Index order is also the collision
// iteration order: the first active overlapping slot wins.
func (pl *Pool) At(i int) *Projectile {
	return &pl.slots[i]
}

// AcquireFree returns the first free slot, scanning in index order.
// Returns nil if the pool is exhausted.
func (pl *Pool) AcquireFree() *Projectile {
	for i := range pl.slots {
		if pl.slots[i].free {
			return &pl.slots[i]
		}
	}
	return nil
}

// Update advances every slot one tick.
func (pl *Pool) Update() {
	for i := range pl.slots {
		pl.slots[i].Update()
	}
}

// ActiveCount returns the number of in-flight projectiles.
func (pl *Pool) ActiveCount() int {
	count := 0
	for i := range pl.slots {
		if !pl.slots[i].free {
			count++
		}
	}
	return count
}
