package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	testWorldW = 600
	testWorldH = 800
)

func newTestPlayer() *Player {
	return NewPlayer(testWorldW, testWorldH, 60, 20, 8)
}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()

	if p.Rect.X != (testWorldW-60)/2 {
		t.Errorf("spawn X = %d, expected %d", p.Rect.X, (testWorldW-60)/2)
	}
	if p.Rect.Y != testWorldH-20-UnitsPerCellY {
		t.Errorf("spawn Y = %d, expected %d", p.Rect.Y, testWorldH-20-UnitsPerCellY)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name     string
		held     []core.Action
		ticks    int
		expected int // X delta from spawn
	}{
		{"idle", nil, 5, 0},
		{"move left", []core.Action{core.ActionLeft}, 3, -24},
		{"move right", []core.Action{core.ActionRight}, 3, 24},
		{"both directions cancel", []core.Action{core.ActionLeft, core.ActionRight}, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			pool := NewPool(10, 4, 20, 20)
			startX := p.Rect.X

			in := core.NewInputSnapshot(tc.held, nil)
			for i := 0; i < tc.ticks; i++ {
				p.Update(in, pool)
			}

			if p.Rect.X-startX != tc.expected {
				t.Errorf("X delta = %d, expected %d", p.Rect.X-startX, tc.expected)
			}
		})
	}
}

func TestPlayerClamp(t *testing.T) {
	p := newTestPlayer()
	pool := NewPool(10, 4, 20, 20)

	// Half the ship may hang off either edge, never more
	left := core.NewInputSnapshot([]core.Action{core.ActionLeft}, nil)
	for i := 0; i < 200; i++ {
		p.Update(left, pool)
	}
	if p.Rect.X != -p.Rect.W/2 {
		t.Errorf("leftmost X = %d, expected %d", p.Rect.X, -p.Rect.W/2)
	}

	right := core.NewInputSnapshot([]core.Action{core.ActionRight}, nil)
	for i := 0; i < 200; i++ {
		p.Update(right, pool)
	}
	if p.Rect.X != testWorldW-p.Rect.W/2 {
		t.Errorf("rightmost X = %d, expected %d", p.Rect.X, testWorldW-p.Rect.W/2)
	}
}

func TestPlayerShoot(t *testing.T) {
	p := newTestPlayer()
	pool := NewPool(2, 4, 20, 20)

	if !p.Shoot(pool) {
		t.Fatal("Shoot with a free pool should succeed")
	}
	if pool.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", pool.ActiveCount())
	}

	// The shot spawns centered on the ship at its top edge
	pr := pool.At(0)
	if pr.Rect.CenterX() != p.Rect.CenterX() {
		t.Errorf("projectile centerX = %d, expected %d", pr.Rect.CenterX(), p.Rect.CenterX())
	}
	if pr.Rect.Y != p.Rect.Y {
		t.Errorf("projectile Y = %d, expected %d", pr.Rect.Y, p.Rect.Y)
	}
}

func TestPlayerShootExhaustedPool(t *testing.T) {
	p := newTestPlayer()
	pool := NewPool(2, 4, 20, 20)

	p.Shoot(pool)
	p.Shoot(pool)

	// Third shot is dropped, not queued
	if p.Shoot(pool) {
		t.Error("Shoot with an exhausted pool should report failure")
	}
	if pool.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", pool.ActiveCount())
	}
}

func TestPlayerAutoFire(t *testing.T) {
	p := newTestPlayer()
	pool := NewPool(10, 4, 20, 20)

	// Holding fire shoots every tick while slots remain
	in := core.NewInputSnapshot([]core.Action{core.ActionFire}, nil)
	for i := 0; i < 3; i++ {
		p.Update(in, pool)
	}

	if pool.ActiveCount() != 3 {
		t.Errorf("ActiveCount() after 3 held-fire ticks = %d, expected 3", pool.ActiveCount())
	}
}
