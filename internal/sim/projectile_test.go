package sim

import (
	"math"
	"testing"
	"time"
)

// tolerance for floating point comparisons
const floatTolerance = 0.0001

// almostEqual checks if two floats are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestProjectileAdvance(t *testing.T) {
	p := Projectile{Pos: Vec2{X: 100, Y: 50}, Tag: Harmless, Speed: 500}

	p.Advance(100 * time.Millisecond)

	if p.Pos.X != 100 {
		t.Errorf("Advance should not move x, got %v", p.Pos.X)
	}
	if !almostEqual(p.Pos.Y, 100, floatTolerance) {
		t.Errorf("Advance(100ms) at 500 u/s: y = %v, expected 100", p.Pos.Y)
	}
}

func TestProjectileYMonotonic(t *testing.T) {
	p := Projectile{Pos: Vec2{X: 0, Y: 0}, Tag: Harmless, Speed: 500}

	deltas := []time.Duration{
		0,
		time.Millisecond,
		16 * time.Millisecond,
		0,
		time.Second,
	}

	prevY := p.Pos.Y
	for _, dt := range deltas {
		p.Advance(dt)
		if p.Pos.Y < prevY {
			t.Fatalf("y decreased from %v to %v after Advance(%v)", prevY, p.Pos.Y, dt)
		}
		prevY = p.Pos.Y
	}
}

func TestProjectileLethal(t *testing.T) {
	if (Projectile{Tag: Harmless}).Lethal() {
		t.Error("harmless projectile should not be lethal")
	}
	if !(Projectile{Tag: Lethal}).Lethal() {
		t.Error("lethal projectile should be lethal")
	}
}

func TestProjectileBoundsCentered(t *testing.T) {
	p := Projectile{Pos: Vec2{X: 100, Y: 200}}

	box := p.Bounds(16, 32)

	if box.X != 92 || box.Y != 184 {
		t.Errorf("Bounds top-left = (%v, %v), expected (92, 184)", box.X, box.Y)
	}
	if box.W != 16 || box.H != 32 {
		t.Errorf("Bounds size = (%v, %v), expected (16, 32)", box.W, box.H)
	}
}

func TestLethalityString(t *testing.T) {
	if Harmless.String() != "Harmless" {
		t.Errorf("Harmless.String() = %q", Harmless.String())
	}
	if Lethal.String() != "Lethal" {
		t.Errorf("Lethal.String() = %q", Lethal.String())
	}
}
