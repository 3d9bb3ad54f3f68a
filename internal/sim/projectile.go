// Package sim implements the kablewey simulation engine: one enemy wanders
// the top of the playfield and drops missiles toward a player sliding along
// the bottom. The package is pure logic - it performs no I/O, reads no
// clock, and draws nothing. Time is supplied by the caller on every tick,
// and randomness is injected at construction, so the whole simulation is
// deterministic under test.
package sim

import (
	"time"

	"github.com/vovakirdan/kablewey/internal/core"
)

// Vec2 is a position in playfield units. Y increases downward.
type Vec2 struct {
	X, Y float64
}

// Lethality classifies a projectile.
type Lethality int

const (
	// Harmless projectiles score a point when caught.
	Harmless Lethality = iota
	// Lethal projectiles end the game on contact.
	Lethal
)

// String returns a human-readable name for the lethality tag.
func (l Lethality) String() string {
	switch l {
	case Harmless:
		return "Harmless"
	case Lethal:
		return "Lethal"
	default:
		return "Unknown"
	}
}

// Projectile is one shot fired by the enemy. It is a plain value: the
// presentation layer picks a sprite by Tag, the simulation never holds
// rendering resources.
type Projectile struct {
	Pos   Vec2
	Tag   Lethality
	Speed float64 // downward travel speed, units/sec
}

// Advance moves the projectile down the playfield by its speed scaled to
// the elapsed time.
func (p *Projectile) Advance(dt time.Duration) {
	p.Pos.Y += p.Speed * dt.Seconds()
}

// Lethal reports whether catching this projectile ends the game.
func (p Projectile) Lethal() bool {
	return p.Tag != Harmless
}

// Bounds returns the projectile's collision box: w×h centered on its
// position. The footprint is the caller's concern (it mirrors the sprite
// the presentation layer draws).
func (p Projectile) Bounds(w, h float64) core.Box {
	return core.CenteredBox(p.Pos.X, p.Pos.Y, w, h)
}
