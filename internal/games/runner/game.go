// Package runner adapts the endless-runner simulation engine to the
// terminal platform: tick-driven input, rendering and score
// bookkeeping. The player auto-runs and must jump (with a double jump)
// over incoming obstacles while the pace ramps up.
package runner

import (
	"math/rand"
	"time"

	"github.com/m-orlov/tui-runner/internal/config"
	"github.com/m-orlov/tui-runner/internal/core"
	"github.com/m-orlov/tui-runner/internal/registry"
	sim "github.com/m-orlov/tui-runner/internal/runner"
)

// The simulation always runs in a fixed world so gameplay is identical
// on any terminal size; rendering scales world rects down to cells.
const (
	worldW = 800
	worldH = 400
)

// sparkleTicks is how long the milestone celebration stays on screen.
const sparkleTicks = 45

// Game implements the runner game on top of the simulation engine.
type Game struct {
	engine *sim.Engine
	tuning sim.Tuning
	cfg    config.RunnerConfig

	runtime core.RuntimeConfig
	snap    sim.Snapshot

	score    int
	gameOver bool
	paused   bool

	// The engine is timestamp-driven; pausing freezes its clock by
	// growing clockOffset with the paused span.
	clock       func() time.Time
	clockOffset time.Duration
	pausedAt    time.Time

	tickCount int
	legFrame  int
	sparkle   int // remaining celebration ticks
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by CLI name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{clock: time.Now}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyline Runner"
}

// now returns the engine-facing timestamp, excluding paused spans.
func (g *Game) now() time.Time {
	return g.clock().Add(-g.clockOffset)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.tuning = tuningFromConfig(cfg)

	seed := runtime.Seed
	if seed == 0 {
		seed = g.clock().UnixNano()
	}
	g.engine = sim.New(g.tuning, rand.New(rand.NewSource(seed)))

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.clockOffset = 0
	g.tickCount = 0
	g.legFrame = 0
	g.sparkle = 0

	g.engine.Start(g.now(), sim.Bounds{W: worldW, H: worldH})
	g.snap = g.engine.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10
	if g.sparkle > 0 {
		g.sparkle--
	}

	if in.Has(core.ActionJump) {
		g.engine.Jump()
	}

	res := g.engine.Step(g.now())
	g.snap = res.Snapshot
	g.score += res.ScoreDelta
	if res.Milestone {
		g.sparkle = sparkleTicks
	}
	if res.Terminal {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Milestone: res.Milestone}
}

// togglePause flips pause state and keeps the engine clock frozen for
// the duration of the pause.
func (g *Game) togglePause() {
	if g.paused {
		g.clockOffset += g.clock().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = g.clock()
	g.paused = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// tuningFromConfig maps the YAML config onto engine tuning.
func tuningFromConfig(cfg config.RunnerConfig) sim.Tuning {
	return sim.Tuning{
		Gravity:   cfg.Physics.Gravity,
		JumpForce: cfg.Physics.JumpForce,

		BaseScroll: cfg.Physics.BaseScroll,

		TimeStep:        time.Duration(cfg.Schedule.TimeStepMS) * time.Millisecond,
		BaseSpeedRate:   cfg.Schedule.BaseSpeedRate,
		SpeedStep:       cfg.Schedule.SpeedStep,
		MaxSpeedRate:    cfg.Schedule.MaxSpeedRate,
		StartSpawnEvery: time.Duration(cfg.Schedule.StartSpawnMS) * time.Millisecond,
		SpawnCut:        time.Duration(cfg.Schedule.SpawnCutMS) * time.Millisecond,
		MinSpawnEvery:   time.Duration(cfg.Schedule.MinSpawnMS) * time.Millisecond,

		PlayerX:      cfg.Player.X,
		PlayerW:      cfg.Player.Width,
		PlayerH:      cfg.Player.Height,
		GroundMargin: cfg.Player.GroundMargin,

		ObstacleW:    cfg.Obstacles.Width,
		ObstacleMinH: cfg.Obstacles.MinHeight,
		ObstacleMaxH: cfg.Obstacles.MaxHeight,
		RemoveMargin: cfg.Obstacles.RemoveMargin,

		HitboxInset: cfg.Player.HitboxInset,

		PassPoints:     cfg.Scoring.PassPoints,
		MilestoneEvery: cfg.Scoring.MilestoneEvery,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
