package lander

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// Package-level settings applied before game creation, set by the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequently created games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadConfig resolves the effective game configuration: file (or embedded
// default), then difficulty preset. Exposed so the CLI can validate
// terrain parameters before a session starts.
func LoadConfig() (config.LanderConfig, error) {
	cfg, err := config.LoadLander(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyLanderPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	if err := ValidateTerrain(cfg.Terrain); err != nil {
		return cfg, fmt.Errorf("invalid lander config: %w", err)
	}
	return cfg, nil
}

// Game implements the Lunar Lander session: one lander, one terrain, and
// at most one explosion, advanced by the platform's fixed tick loop.
type Game struct {
	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	lander    *Lander
	terrain   *Terrain
	explosion *Explosion
	stars     []core.Vec2

	gameOver   bool
	paused     bool
	score      int
	padLanding bool
	tickCount  int
}

// New creates a new Lunar Lander game instance.
func New() *Game {
	cfg, err := LoadConfig()
	if err != nil {
		// A config bad enough to fail terrain validation is rejected by
		// the CLI before launch; fall back to defaults for direct library
		// users.
		cfg = config.DefaultLanderConfig()
	}
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset initializes or restarts the session: fresh terrain and star field
// from the seed, the lander back at the start pad with full fuel, and any
// explosion discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	terrain, err := GenerateTerrain(g.cfg.World.Width, g.cfg.World.Height, g.cfg.Terrain, g.rng)
	if err != nil {
		// Unreachable for validated configs; keep the session playable.
		fallback := config.DefaultLanderConfig()
		terrain, _ = GenerateTerrain(fallback.World.Width, fallback.World.Height, fallback.Terrain, g.rng)
	}
	g.terrain = terrain
	g.stars = generateStars(g.cfg.World.Width, g.cfg.World.Height, g.rng)
	g.lander = NewLander(g.cfg.World.StartX, g.cfg.World.StartY, g.cfg)
	g.explosion = nil
	g.gameOver = false
	g.paused = false
	g.score = 0
	g.padLanding = false
	g.tickCount = 0
}

// Step advances the session by one tick.
//
// While flying: apply input, integrate the lander, then evaluate terrain
// contact. On contact the session ends; an unsafe touchdown spawns the
// explosion. After game over only the explosion keeps animating.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if g.explosion != nil {
			g.explosion.Tick()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.applyInput(in)
	g.lander.Tick()

	if CheckCollision(g.terrain, g.lander) {
		g.gameOver = true
		if g.lander.LandedSafely() {
			g.score = int(g.lander.Fuel)
			legs := g.lander.LegPoints()
			if g.terrain.OnPad(legs[0].X) && g.terrain.OnPad(legs[1].X) {
				g.padLanding = true
				g.score += g.cfg.Landing.PadBonus
			}
		} else {
			g.explosion = SpawnExplosion(g.lander.Position, g.cfg.Explosion, g.rng)
		}
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps this frame's actions onto the lander controls.
// Thrust is level-based: absent thrust actions read as engine off, which
// emulates key-up in a terminal that only delivers key presses. Rotation
// is a one-shot delta per frame.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionThrustFull):
		g.lander.ApplyThrust(1.0)
	case in.Has(core.ActionThrustHalf):
		g.lander.ApplyThrust(0.5)
	default:
		g.lander.ApplyThrust(0)
	}

	if in.Has(core.ActionRotateLeft) {
		g.lander.Rotate(-g.cfg.Physics.RotationStep)
	}
	if in.Has(core.ActionRotateRight) {
		g.lander.Rotate(g.cfg.Physics.RotationStep)
	}
}

// fuelPercent normalizes remaining fuel against the configured capacity.
func (g *Game) fuelPercent() float64 {
	if g.cfg.Physics.Fuel <= 0 {
		return 0
	}
	return g.lander.Fuel / g.cfg.Physics.Fuel * 100.0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
}
