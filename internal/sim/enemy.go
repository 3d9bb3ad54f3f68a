package sim

import (
	"math/rand"
	"time"
)

// movementPlan is one leg of the enemy's wandering: a linear tween from
// start to target over duration, measured from made.
type movementPlan struct {
	start    Vec2
	target   Vec2
	made     time.Time
	duration time.Duration
}

// firingPlan is the enemy's committed next shot: whether it will be lethal
// and when it becomes due. The dangerous flag is decided when the plan is
// drawn, not when the shot fires.
type firingPlan struct {
	dangerous bool
	made      time.Time
	delay     time.Duration
}

// Enemy is the single hostile unit. Two independent timestamped plans drive
// it: a movement tween and a firing countdown. Both depend only on the
// supplied now and the stored plan, never on accumulated per-frame deltas,
// which keeps them resumable and independently testable.
type Enemy struct {
	Pos Vec2

	minX, maxX float64
	movement   *movementPlan
	firing     *firingPlan
	tuning     Tuning
	rng        *rand.Rand
}

// NewEnemy creates the enemy at pos, wandering horizontally within
// [minX, maxX). The rng is the planner's only source of randomness; pass a
// seeded source for deterministic behavior.
func NewEnemy(pos Vec2, minX, maxX float64, tuning Tuning, rng *rand.Rand) *Enemy {
	return &Enemy{
		Pos:    pos,
		minX:   minX,
		maxX:   maxX,
		tuning: tuning,
		rng:    rng,
	}
}

// drawMovementPlan picks a fresh wander target and duration starting now
// from the enemy's current position. Only x is randomized; the enemy stays
// on its lane.
func (e *Enemy) drawMovementPlan(now time.Time) *movementPlan {
	return &movementPlan{
		start:    e.Pos,
		target:   Vec2{X: e.minX + e.rng.Float64()*(e.maxX-e.minX), Y: e.Pos.Y},
		made:     now,
		duration: randDuration(e.rng, e.tuning.MoveDurationMin, e.tuning.MoveDurationMax),
	}
}

// drawFiringPlan commits the next shot: lethal with the configured
// probability, due after a random delay starting now.
func (e *Enemy) drawFiringPlan(now time.Time) *firingPlan {
	return &firingPlan{
		dangerous: e.rng.Float64() < e.tuning.LethalChance,
		made:      now,
		delay:     randDuration(e.rng, e.tuning.FireDelayMin, e.tuning.FireDelayMax),
	}
}

// Update advances both plans to now and returns the projectile launched
// this tick, if any. At most one projectile is launched per update.
//
// Movement: the first update draws a plan; afterwards the position tweens
// linearly toward the plan's target, snaps to it when the duration elapses,
// and a new plan is drawn immediately - the wander never stops.
//
// Firing: the first update arms a fixed, harmless opening shot. Once a
// plan's delay elapses the shot fires from the enemy's current position
// with the plan's pre-committed lethality, and the next plan is drawn.
func (e *Enemy) Update(now time.Time) (Projectile, bool) {
	switch {
	case e.movement == nil:
		e.movement = e.drawMovementPlan(now)
	case now.Sub(e.movement.made) >= e.movement.duration:
		e.Pos = e.movement.target
		e.movement = e.drawMovementPlan(now)
	default:
		plan := e.movement
		pct := now.Sub(plan.made).Seconds() / plan.duration.Seconds()
		e.Pos = Vec2{
			X: plan.start.X + pct*(plan.target.X-plan.start.X),
			Y: plan.start.Y + pct*(plan.target.Y-plan.start.Y),
		}
	}

	if e.firing == nil {
		e.firing = &firingPlan{
			dangerous: false,
			made:      now,
			delay:     e.tuning.FirstShotDelay,
		}
		return Projectile{}, false
	}

	if now.Sub(e.firing.made) < e.firing.delay {
		return Projectile{}, false
	}

	tag := Harmless
	if e.firing.dangerous {
		tag = Lethal
	}
	fired := Projectile{Pos: e.Pos, Tag: tag, Speed: e.tuning.ProjectileSpeed}
	e.firing = e.drawFiringPlan(now)
	return fired, true
}

// AboutToFire reports whether the current firing plan comes due within
// lookahead of now. It is a pure query for pose selection (the enemy shows
// its firing sprite just before a shot) and never mutates the plan.
func (e *Enemy) AboutToFire(now time.Time, lookahead time.Duration) bool {
	if e.firing == nil {
		return false
	}
	due := e.firing.made.Add(e.firing.delay)
	return !now.Add(lookahead).Before(due)
}

// Range returns the enemy's horizontal wander bounds.
func (e *Enemy) Range() (minX, maxX float64) {
	return e.minX, e.maxX
}

// randDuration draws a duration uniformly from [min, max).
func randDuration(rng *rand.Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Int63n(int64(max-min)))
}
