package invaders

import "testing"

func TestPoolStartsFree(t *testing.T) {
	pool := NewPool(10, 4, 20, 20)

	if pool.Size() != 10 {
		t.Errorf("Size() = %d, expected 10", pool.Size())
	}
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, expected 0", pool.ActiveCount())
	}
	for i := 0; i < pool.Size(); i++ {
		if !pool.At(i).Free() {
			t.Errorf("slot %d should start free", i)
		}
	}
}

func TestPoolAcquireOrder(t *testing.T) {
	pool := NewPool(3, 4, 20, 20)

	// AcquireFree scans in index order, so the first call hands out slot 0
	first := pool.AcquireFree()
	if first != pool.At(0) {
		t.Error("AcquireFree should return the lowest free slot")
	}
	first.Start(100, 200)

	second := pool.AcquireFree()
	if second != pool.At(1) {
		t.Error("AcquireFree should skip the active slot 0")
	}
	second.Start(100, 200)

	// Freeing slot 0 makes it the next acquisition again
	first.Reset()
	if pool.AcquireFree() != pool.At(0) {
		t.Error("AcquireFree should reuse the freed slot 0")
	}
}

func TestPoolExhaustion(t *testing.T) {
	pool := NewPool(10, 4, 20, 20)

	for i := 0; i < 10; i++ {
		pr := pool.AcquireFree()
		if pr == nil {
			t.Fatalf("acquisition %d failed with free slots remaining", i)
		}
		pr.Start(50, 400)
	}

	if pool.ActiveCount() != 10 {
		t.Errorf("ActiveCount() = %d, expected 10", pool.ActiveCount())
	}
	// The 11th acquisition must fail; capacity never grows
	if pool.AcquireFree() != nil {
		t.Error("AcquireFree on an exhausted pool should return nil")
	}
}

func TestProjectileStart(t *testing.T) {
	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()

	pr.Start(22, 100)

	// The projectile centers its width on centerX
	if pr.Rect.X != 20 {
		t.Errorf("X after Start = %d, expected 20", pr.Rect.X)
	}
	if pr.Rect.Y != 100 {
		t.Errorf("Y after Start = %d, expected 100", pr.Rect.Y)
	}
	if pr.Free() {
		t.Error("projectile should be active after Start")
	}
}

func TestProjectileFlight(t *testing.T) {
	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()
	pr.Start(50, 100)

	pool.Update()

	if pr.Rect.Y != 80 {
		t.Errorf("Y after one tick = %d, expected 80", pr.Rect.Y)
	}
	if pr.Free() {
		t.Error("in-flight projectile should stay active")
	}
}

func TestProjectileExpiresAboveWorld(t *testing.T) {
	pool := NewPool(1, 4, 20, 20)
	pr := pool.AcquireFree()
	pr.Start(50, 10)

	// Tick 1: Y = -10, bottom edge still visible, stays active
	pool.Update()
	if pr.Free() {
		t.Error("projectile partially above the top should stay active")
	}

	// Tick 2: Y = -30 < -H, fully off-screen, returns to the pool
	pool.Update()
	if !pr.Free() {
		t.Error("projectile fully above the top should return to the pool")
	}
}

func TestFreeSlotIgnoresUpdate(t *testing.T) {
	pool := NewPool(1, 4, 20, 20)
	pr := pool.At(0)
	startY := pr.Rect.Y

	pool.Update()
	pool.Update()

	if pr.Rect.Y != startY {
		t.Error("Update should not move free slots")
	}
}
