// Package game adapts the pure simulation to the terminal platform:
// it maps input actions to player intents, drives the simulation clock
// from frame deltas, and renders world coordinates into a cell buffer.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/kablewey/internal/config"
	"github.com/vovakirdan/kablewey/internal/core"
	"github.com/vovakirdan/kablewey/internal/sim"
)

// Visual characters for rendering
const (
	EnemyChar       = '▼'
	EnemyFiringChar = '▽'
	HarmlessChar    = '○'
	LethalChar      = '●'
	PlayerChar      = '█'
)

// firingPoseLookahead is how far ahead of a shot the enemy telegraphs it.
const firingPoseLookahead = 200 * time.Millisecond

var gameOverMessages = []string{
	"You lost",
	"You can do better than that",
	"Catch Them!",
	"Better luck next time",
	"Mwahahahaha",
	"Be better than that",
	"Good job...?",
	"Failed You Have",
	"Nice try",
	"Get a different hobby",
	"You missed a spot",
	"Great job",
	"Wax on. Wax off.",
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// StepResult carries the outcome of one frame: the visible game state
// plus the simulation events the host may react to (sounds, effects).
type StepResult struct {
	State  core.GameState
	Report sim.TickReport
}

// Game implements the catch-the-missile game on top of the simulation.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.Config
	tuning     sim.Tuning
	world      *sim.Simulation
	rng        *rand.Rand
	now        time.Time
	paused     bool
	endMessage string
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kablewey"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Kablewey"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg
	g.tuning = cfg.Tuning()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	epoch := time.Unix(0, 0)
	g.now = epoch
	g.world = sim.New(g.tuning, g.rng, epoch)
	g.paused = false
	g.endMessage = ""
}

// Step advances the game by one frame delta.
func (g *Game) Step(in core.InputFrame, dt time.Duration) StepResult {
	if g.world == nil || g.world.GameOver() {
		return StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return StepResult{State: g.State()}
	}

	if dt < 0 {
		dt = 0
	}

	report, err := g.world.Tick(dt, intentFor(in))
	if err != nil {
		return StepResult{State: g.State()}
	}
	g.now = g.world.LastTick()

	if g.world.GameOver() && g.endMessage == "" {
		g.endMessage = gameOverMessages[g.rng.Intn(len(gameOverMessages))]
	}

	return StepResult{State: g.State(), Report: report}
}

// intentFor maps the platform input frame to a player intent.
// Holding both directions cancels out, same as holding neither.
func intentFor(in core.InputFrame) sim.Intent {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)
	switch {
	case left == right:
		return sim.HoldStill
	case left:
		return sim.MoveLeft
	default:
		return sim.MoveRight
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	// Draw projectiles
	for _, p := range g.world.Projectiles() {
		x, y := g.toCell(dst, p.Pos)
		if p.Lethal() {
			dst.SetCell(x, y, LethalChar, core.ColorRed)
		} else {
			dst.SetCell(x, y, HarmlessChar, core.ColorGreen)
		}
	}

	g.drawEnemy(dst)
	g.drawPlayer(dst)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.world.Score())
	dst.DrawText(2, 0, scoreText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.GameOver() {
		title := g.endMessage
		if title == "" {
			title = gameOverMessages[0]
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score())
		g.drawCenteredMessage(dst, title, subtitle)
	}
}

// drawEnemy renders the enemy, switching sprite when a shot is imminent.
func (g *Game) drawEnemy(dst *core.Screen) {
	x, y := g.toCell(dst, g.world.Enemy.Pos)
	if g.world.Enemy.AboutToFire(g.now, firingPoseLookahead) {
		dst.SetCell(x, y, EnemyFiringChar, core.ColorRed)
	} else {
		dst.SetCell(x, y, EnemyChar, core.ColorMagenta)
	}
}

// drawPlayer renders the player as a paddle scaled from its world width.
// The simulation lets the player run past the field edge; the sprite is
// clamped so the paddle stays visible.
func (g *Game) drawPlayer(dst *core.Screen) {
	x, y := g.toCell(dst, g.world.Player.Pos)
	w := int(g.tuning.PlayerW / g.tuning.FieldW * float64(dst.Width()))
	if w < 1 {
		w = 1
	}
	x = core.Clamp(x, w/2, dst.Width()-1-w/2)
	for dx := 0; dx < w; dx++ {
		dst.SetCell(x-w/2+dx, y, PlayerChar, core.ColorCyan)
	}
}

// toCell maps world coordinates onto the screen cell grid.
func (g *Game) toCell(dst *core.Screen, pos sim.Vec2) (int, int) {
	x := int(pos.X / g.tuning.FieldW * float64(dst.Width()))
	y := int(pos.Y / g.tuning.FieldH * float64(dst.Height()))
	return x, y
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}
