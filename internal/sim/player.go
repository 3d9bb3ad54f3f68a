package sim

import (
	"time"

	"github.com/vovakirdan/kablewey/internal/core"
)

// Intent is the player's movement wish for one tick, derived by the
// platform layer from raw key state. Left and right pressed together, or
// neither pressed, resolve to HoldStill before the intent reaches the
// simulation.
type Intent int

const (
	HoldStill Intent = iota
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case HoldStill:
		return "HoldStill"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	default:
		return "Unknown"
	}
}

// Player is the catcher at the bottom of the playfield. It moves only
// horizontally and only on explicit intent. The simulation does not clamp
// it to the playfield; keeping the player visible is a presentation concern.
type Player struct {
	Pos   Vec2
	Speed float64 // horizontal speed, units/sec
}

// ApplyIntent moves the player for one tick. HoldStill is a no-op.
func (p *Player) ApplyIntent(intent Intent, dt time.Duration) {
	switch intent {
	case MoveLeft:
		p.Pos.X -= p.Speed * dt.Seconds()
	case MoveRight:
		p.Pos.X += p.Speed * dt.Seconds()
	}
}

// Bounds returns the player's collision box: w×h centered on its position.
func (p Player) Bounds(w, h float64) core.Box {
	return core.CenteredBox(p.Pos.X, p.Pos.Y, w, h)
}
