package sim

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidDelta is returned by Tick when the supplied time delta is
// negative. Elapsed-time math (tween percentages, plan expiry) is undefined
// for time running backwards, so the tick is rejected before any state is
// touched instead of silently corrupting positions.
var ErrInvalidDelta = errors.New("sim: negative tick delta")

// Default tuning values, matching the game's fixed balance.
const (
	DefaultFieldW = 800.0
	DefaultFieldH = 600.0

	DefaultProjectileSpeed = 500.0  // units/sec, downward
	DefaultPlayerSpeed     = 1000.0 // units/sec, horizontal

	DefaultLethalChance = 0.2
)

// Tuning collects every balance parameter of the simulation. The defaults
// are the game's fixed constants; the config package lets them be
// overridden from YAML for experimentation.
type Tuning struct {
	FieldW, FieldH float64 // playfield extent in units

	EnemyStart  Vec2
	PlayerStart Vec2

	ProjectileSpeed float64
	PlayerSpeed     float64

	MoveDurationMin time.Duration // wander tween duration range
	MoveDurationMax time.Duration

	FirstShotDelay time.Duration // delay of the armed-at-start shot
	FireDelayMin   time.Duration // delay range for every shot after it
	FireDelayMax   time.Duration
	LethalChance   float64 // probability a drawn firing plan is lethal

	// Collision footprints, mirroring the sprites the presentation layer
	// draws. The simulation only needs the numbers.
	ProjectileW, ProjectileH float64
	PlayerW, PlayerH         float64

	// PruneFactor scales the playfield diagonal into the distance from the
	// origin beyond which a projectile counts as gone for good.
	PruneFactor float64
}

// DefaultTuning returns the standard game balance.
func DefaultTuning() Tuning {
	return Tuning{
		FieldW:          DefaultFieldW,
		FieldH:          DefaultFieldH,
		EnemyStart:      Vec2{X: 50, Y: 50},
		PlayerStart:     Vec2{X: 50, Y: 550},
		ProjectileSpeed: DefaultProjectileSpeed,
		PlayerSpeed:     DefaultPlayerSpeed,
		MoveDurationMin: 300 * time.Millisecond,
		MoveDurationMax: 2000 * time.Millisecond,
		FirstShotDelay:  1000 * time.Millisecond,
		FireDelayMin:    200 * time.Millisecond,
		FireDelayMax:    700 * time.Millisecond,
		LethalChance:    DefaultLethalChance,
		ProjectileW:     16,
		ProjectileH:     32,
		PlayerW:         64,
		PlayerH:         32,
		PruneFactor:     2.0,
	}
}

// TickReport tells the host what happened during one tick so it can fire
// side effects (sound on collision, most notably) that are not the
// simulation's business.
type TickReport struct {
	Fired  bool // the enemy launched a projectile this tick
	Caught int  // harmless projectiles that reached the player
	Struck int  // lethal projectiles that reached the player
}

// Collisions returns the total number of projectiles that hit the player
// this tick.
func (r TickReport) Collisions() int {
	return r.Caught + r.Struck
}

// Simulation owns the full game state and advances it one frame at a time.
// It is single-threaded by design: one caller drives it with Tick and reads
// whatever it needs between ticks.
type Simulation struct {
	Enemy  *Enemy
	Player *Player

	projectiles []Projectile
	score       int
	gameOver    bool
	lastTick    time.Time
	pruneDist   float64
	tuning      Tuning
}

// New creates a simulation at the given start instant. The rng seeds the
// enemy planner; start anchors the simulation clock, which afterwards only
// moves by the deltas handed to Tick.
func New(tuning Tuning, rng *rand.Rand, start time.Time) *Simulation {
	return &Simulation{
		Enemy:     NewEnemy(tuning.EnemyStart, 0, tuning.FieldW, tuning, rng),
		Player:    &Player{Pos: tuning.PlayerStart, Speed: tuning.PlayerSpeed},
		pruneDist: tuning.PruneFactor * math.Hypot(tuning.FieldW, tuning.FieldH),
		tuning:    tuning,
		lastTick:  start,
	}
}

// Tick advances the simulation by dt with the player's current intent.
//
// The ordering is load-bearing: projectiles move and the enemy fires before
// collisions resolve, so a shot spawned this tick cannot be caught at its
// spawn position before it has moved; the player moves after collisions
// resolve, so a dodge this frame cannot retroactively avoid a hit already
// taken at last frame's position.
func (s *Simulation) Tick(dt time.Duration, intent Intent) (TickReport, error) {
	var report TickReport
	if dt < 0 {
		return report, ErrInvalidDelta
	}
	now := s.lastTick.Add(dt)

	for i := range s.projectiles {
		s.projectiles[i].Advance(dt)
	}

	if p, ok := s.Enemy.Update(now); ok {
		s.projectiles = append(s.projectiles, p)
		report.Fired = true
	}

	// Resolve every collision before removing anything: simultaneous hits
	// all land, there is no early exit on the first one.
	playerBox := s.Player.Bounds(s.tuning.PlayerW, s.tuning.PlayerH)
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Bounds(s.tuning.ProjectileW, s.tuning.ProjectileH).Overlaps(playerBox) {
			if p.Lethal() {
				s.gameOver = true
				report.Struck++
			} else {
				s.score++
				report.Caught++
			}
			continue
		}
		kept = append(kept, p)
	}
	s.projectiles = kept

	s.Player.ApplyIntent(intent, dt)

	// Coarse off-screen cleanup: drop projectiles once they are far beyond
	// the playfield. Distance from the origin is deliberately crude - the
	// play area starts there and anything this far out is unrecoverable.
	kept = s.projectiles[:0]
	for _, p := range s.projectiles {
		if math.Hypot(p.Pos.X, p.Pos.Y) < s.pruneDist {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept

	s.lastTick = now
	return report, nil
}

// Projectiles returns the live projectile set. Order carries no meaning.
func (s *Simulation) Projectiles() []Projectile {
	return s.projectiles
}

// Score returns the number of harmless projectiles caught so far.
func (s *Simulation) Score() int {
	return s.score
}

// GameOver reports whether a lethal projectile has reached the player.
// Once true it stays true for the simulation's lifetime; starting over
// means building a new Simulation.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// LastTick returns the simulation clock after the most recent tick.
func (s *Simulation) LastTick() time.Time {
	return s.lastTick
}

// Tuning returns the balance parameters the simulation was built with.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}
