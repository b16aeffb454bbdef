// Package slide implements the collision sandbox: one actor steered with the
// arrow keys against one static obstacle. Every tick the actor's candidate
// position goes through collision.Step, so pushing diagonally into the
// obstacle slides the actor along the blocking face.
//
// Two modes are registered: "slide", an endless sandbox, and "slide_run", a
// timed run scored by the number of ticks spent sliding along the obstacle.
package slide

import (
	"math"

	"github.com/vovakirdan/tui-slide/internal/collision"
	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// Mode IDs.
const (
	SandboxID = "slide"
	RunID     = "slide_run"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// loadConfig resolves the config for a Reset, falling back to defaults.
func loadConfig() config.SlideConfig {
	cfg, err := config.LoadSlide(configPath)
	if err != nil {
		cfg = config.DefaultSlideConfig()
	}
	config.ApplySlidePreset(&cfg, difficultyPreset)
	return cfg
}

// Stats accumulates what happened during a run.
type Stats struct {
	Frames        int
	Contacts      int // Ticks that ended with a resolved collision
	ContactsX     int // ... blocked by a vertical face
	ContactsY     int // ... blocked by a horizontal face
	SlideDistance float64
}

// Game implements registry.Game for both modes.
type Game struct {
	id    string
	timed bool
	load  func() config.SlideConfig

	cfg        config.SlideConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	body     collision.Body
	obstacle collision.Box
	keys     heldKeys
	last     collision.Contact
	lastMove core.Vec2

	stats     Stats
	tickCount int
	gameOver  bool
	paused    bool
}

// NewSandbox creates the endless sandbox mode.
func NewSandbox() *Game {
	return &Game{id: SandboxID, load: loadConfig}
}

// NewRun creates the timed mode.
func NewRun() *Game {
	return &Game{id: RunID, timed: true, load: loadConfig}
}

// NewWithConfig creates a game that always resets to cfg instead of loading files.
func NewWithConfig(timed bool, cfg config.SlideConfig) *Game {
	g := &Game{id: SandboxID, timed: timed, load: func() config.SlideConfig { return cfg }}
	if timed {
		g.id = RunID
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.timed {
		return "Slide Run"
	}
	return "Slide Sandbox"
}

// Reset reloads the config and puts the actor back at its start position.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.load()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.restart()
}

// restart clears the run without reloading config.
func (g *Game) restart() {
	a := g.cfg.Actor
	hitbox := vec(a.Hitbox)

	g.body = collision.NewBody(vec(a.Start), hitbox, collision.InsetFor(vec(a.Sprite), hitbox))
	g.obstacle = collision.NewBox(vec(g.cfg.Obstacle.Origin), vec(g.cfg.Obstacle.Size))
	g.keys = newHeldKeys(g.cfg.Input.HoldTicks)
	g.last = collision.Contact{Candidate: g.body.Position, Corrected: g.body.Position}
	g.lastMove = core.Vec2{}
	g.stats = Stats{}
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (!g.timed || g.gameOver) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.keys.Release()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.keys.Apply(in)

	delta := g.keys.Direction().Scale(g.speed())
	if g.cfg.World.Clamp {
		delta = g.clampDelta(delta)
	}

	before := g.body.Position
	g.body, g.last = collision.Step(g.body, delta, g.obstacle)
	g.lastMove = g.body.Position.Sub(before)
	g.record()

	g.keys.Tick()

	if g.timed && g.cfg.Run.DurationTicks > 0 && g.tickCount >= g.cfg.Run.DurationTicks {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Collided: g.last.Hit}
}

// speed returns the per-axis speed for this tick.
func (g *Game) speed() float64 {
	if !g.timed {
		return g.cfg.Actor.Speed
	}
	return g.difficulty.Speed(g.cfg.Actor.Speed, g.stats.Contacts, g.tickCount)
}

// clampDelta shortens delta so the sprite stays inside the world.
// Clamping happens before collision so the resolver sees the final candidate.
func (g *Game) clampDelta(delta core.Vec2) core.Vec2 {
	sprite := vec(g.cfg.Actor.Sprite)
	maxX := math.Max(0, g.cfg.World.Width-sprite.X)
	maxY := math.Max(0, g.cfg.World.Height-sprite.Y)

	p := g.body.Position.Add(delta)
	p.X = core.ClampF(p.X, 0, maxX)
	p.Y = core.ClampF(p.Y, 0, maxY)
	return p.Sub(g.body.Position)
}

// record updates run statistics from the last contact.
func (g *Game) record() {
	g.stats.Frames++
	if !g.last.Hit {
		return
	}

	g.stats.Contacts++
	switch g.last.Axis {
	case collision.AxisX:
		g.stats.ContactsX++
		g.stats.SlideDistance += math.Abs(g.lastMove.Y)
	case collision.AxisY:
		g.stats.ContactsY++
		g.stats.SlideDistance += math.Abs(g.lastMove.X)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Contacts,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Body returns the actor's current state.
func (g *Game) Body() collision.Body {
	return g.body
}

// LastContact returns what the most recent tick resolved.
func (g *Game) LastContact() collision.Contact {
	return g.last
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() Stats {
	return g.stats
}

// RunSummary implements registry.RunReporter.
func (g *Game) RunSummary() registry.RunSummary {
	return registry.RunSummary{
		Score:         g.stats.Contacts,
		Frames:        g.stats.Frames,
		Contacts:      g.stats.Contacts,
		ContactsX:     g.stats.ContactsX,
		ContactsY:     g.stats.ContactsY,
		SlideDistance: g.stats.SlideDistance,
	}
}

func vec(v config.Vec) core.Vec2 {
	return core.V(v.X, v.Y)
}

// Register both modes with the registry
func init() {
	registry.Register(SandboxID, func() registry.Game {
		return NewSandbox()
	})
	registry.Register(RunID, func() registry.Game {
		return NewRun()
	})
}
