package invaders

import "testing"

func TestWaveGrid(t *testing.T) {
	w := NewWave(3, 2, 60, 4, 8, 100)

	if len(w.Enemies()) != 6 {
		t.Fatalf("enemy count = %d, expected 6", len(w.Enemies()))
	}
	if w.Width() != 180 {
		t.Errorf("Width() = %d, expected 180", w.Width())
	}
	// The wave spawns fully above the visible area
	if w.Y != -120 {
		t.Errorf("spawn Y = %d, expected -120", w.Y)
	}

	// Offsets follow the grid layout, row-major
	tests := []struct {
		index            int
		offsetX, offsetY int
	}{
		{0, 0, 0},
		{1, 60, 0},
		{2, 120, 0},
		{3, 0, 60},
		{5, 120, 60},
	}
	for _, tc := range tests {
		e := w.Enemies()[tc.index]
		if e.OffsetX != tc.offsetX || e.OffsetY != tc.offsetY {
			t.Errorf("enemy %d offset = (%d, %d), expected (%d, %d)",
				tc.index, e.OffsetX, e.OffsetY, tc.offsetX, tc.offsetY)
		}
	}
}

func TestWaveEntryEasing(t *testing.T) {
	w := NewWave(2, 3, 60, 4, 8, 100)
	pool := NewPool(1, 4, 20, 20)

	// Y starts at -180 and steps down by 8 per tick while above zero.
	// 23 ticks later it rests at 4: the overshoot is kept, not clamped.
	for i := 0; i < 23; i++ {
		w.Update(600, pool)
	}
	if w.Y != 4 {
		t.Errorf("Y after entry = %d, expected 4", w.Y)
	}

	// Once at or below zero the easing stops
	w.Update(600, pool)
	if w.Y != 4 {
		t.Errorf("Y after settling = %d, expected 4", w.Y)
	}
}

func TestWaveBounce(t *testing.T) {
	pool := NewPool(1, 4, 20, 20)

	t.Run("right edge", func(t *testing.T) {
		w := NewWave(2, 1, 60, 4, 8, 478)
		w.Y = 0 // skip entry easing

		// width 120, world 600: crossing x=480 triggers the bounce
		w.Update(600, pool)

		if w.SpeedX != -4 {
			t.Errorf("SpeedX = %d, expected -4", w.SpeedX)
		}
		if w.X != 474 {
			t.Errorf("X = %d, expected 474", w.X)
		}
		// The bounce also drops the wave one enemy-cell
		if w.Y != 60 {
			t.Errorf("Y = %d, expected 60", w.Y)
		}
	})

	t.Run("left edge", func(t *testing.T) {
		w := NewWave(2, 1, 60, 4, 8, 2)
		w.Y = 0
		w.SpeedX = -4

		w.Update(600, pool)

		if w.SpeedX != 4 {
			t.Errorf("SpeedX = %d, expected 4", w.SpeedX)
		}
		if w.X != 6 {
			t.Errorf("X = %d, expected 6", w.X)
		}
		if w.Y != 60 {
			t.Errorf("Y = %d, expected 60", w.Y)
		}
	})

	t.Run("no bounce mid-world", func(t *testing.T) {
		w := NewWave(2, 1, 60, 4, 8, 200)
		w.Y = 0

		w.Update(600, pool)

		if w.SpeedX != 4 {
			t.Errorf("SpeedX = %d, expected 4", w.SpeedX)
		}
		if w.Y != 0 {
			t.Errorf("Y = %d, expected 0 (drop only on bounce)", w.Y)
		}
	})
}

func TestWaveHitMarksAndConsumes(t *testing.T) {
	w := NewWave(1, 1, 60, 0, 8, 0)
	w.Y = 0

	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()
	pr.Start(22, 10) // rect (20, 10, 4, 20), inside the enemy at (0, 0, 60, 60)

	hits := w.Update(600, pool)

	if hits != 1 {
		t.Fatalf("hits = %d, expected 1", hits)
	}
	// The projectile returns to the pool immediately
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, expected 0", pool.ActiveCount())
	}
	// The enemy is marked but survives this frame's member list
	if len(w.Enemies()) != 1 {
		t.Fatalf("enemy removed in the hit frame, expected deferred removal")
	}
	if !w.Enemies()[0].Marked() {
		t.Error("hit enemy should be marked")
	}

	// Next frame the sweep removes it; the wave itself persists
	w.Update(600, pool)
	if len(w.Enemies()) != 0 {
		t.Errorf("enemy count after sweep = %d, expected 0", len(w.Enemies()))
	}
	if w.BottomY() != 0 {
		t.Errorf("BottomY() of empty wave = %d, expected 0", w.BottomY())
	}
}

func TestWaveOneEnemyPerProjectile(t *testing.T) {
	// Two enemies stacked vertically; the projectile overlaps both
	w := NewWave(1, 2, 60, 0, 8, 0)
	w.Y = 0

	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()
	pr.Start(22, 50) // spans y 50..70, touching both rows

	hits := w.Update(600, pool)

	if hits != 1 {
		t.Errorf("hits = %d, expected 1 (projectile consumed by first overlap)", hits)
	}
	marked := 0
	for _, e := range w.Enemies() {
		if e.Marked() {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("marked enemies = %d, expected 1", marked)
	}
}

func TestWaveMissedProjectileFliesOn(t *testing.T) {
	w := NewWave(1, 1, 60, 0, 8, 0)
	w.Y = 0

	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()
	pr.Start(202, 10) // rect (200, 10, 4, 20), well to the right of the enemy

	hits := w.Update(600, pool)

	if hits != 0 {
		t.Errorf("hits = %d, expected 0", hits)
	}
	if pool.ActiveCount() != 1 {
		t.Error("missed projectile should stay in flight")
	}
}

func TestWaveBottomY(t *testing.T) {
	w := NewWave(2, 2, 60, 0, 8, 0)
	w.Y = 100
	pool := NewPool(1, 4, 20, 20)

	w.Update(600, pool)

	// Two rows of 60 below origin 100
	if w.BottomY() != 220 {
		t.Errorf("BottomY() = %d, expected 220", w.BottomY())
	}
}
