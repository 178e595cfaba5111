// Package runner implements the endless-runner simulation engine: the
// per-call update cycle that advances player physics, spawns and retires
// obstacles, detects collisions and derives the time-based difficulty
// staircase. The package is pure logic; it performs no I/O, knows nothing
// about terminals or rendering, and is driven entirely by timestamps the
// caller passes in.
package runner

import (
	"math/rand"
	"time"

	"github.com/m-orlov/tui-runner/internal/core"
)

// State is the engine's lifecycle phase.
type State int

const (
	// StateIdle means no world has been initialized yet.
	StateIdle State = iota
	// StateRunning means Step advances the simulation.
	StateRunning
	// StateTerminated means a collision ended the run; only Start
	// leaves this state.
	StateTerminated
)

// player holds the controllable sprite's kinematics. The horizontal
// position is fixed for the whole run; the world scrolls past it.
type player struct {
	x, y      float64
	w, h      float64
	dy        float64
	grounded  bool
	jumpCount int
}

func (p player) rect() core.RectF {
	return core.NewRectF(p.x, p.y, p.w, p.h)
}

// obstacle is a single ground hazard scrolling right to left.
type obstacle struct {
	x, y   float64
	w, h   float64
	passed bool // scoring already credited
}

func (o obstacle) rect() core.RectF {
	return core.NewRectF(o.x, o.y, o.w, o.h)
}

// Bounds is the playfield size in world units.
type Bounds struct {
	W, H float64
}

// Engine owns all run state: player, obstacles, clock anchors and the
// cumulative score total it has reported. A new run via Start discards
// the previous run's state wholesale.
//
// The engine is not safe for concurrent use; the caller must ensure
// Step is never invoked re-entrantly.
type Engine struct {
	tuning Tuning
	rng    *rand.Rand

	state   State
	bounds  Bounds
	groundY float64

	player    player
	obstacles []obstacle

	startTime time.Time
	lastSpawn time.Time

	total    int // points emitted so far, for milestone detection
	lastSnap Snapshot
}

// New creates an engine with the given tuning and random source.
// The random source drives obstacle heights only; inject a seeded one
// for deterministic runs.
func New(tuning Tuning, rng *rand.Rand) *Engine {
	return &Engine{
		tuning: tuning,
		rng:    rng,
	}
}

// State returns the engine's lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// Snapshot returns the most recent frame without advancing the
// simulation. Zero value until Start has been called.
func (e *Engine) Snapshot() Snapshot {
	return e.lastSnap
}

// Start resets all run state and transitions to Running. The player is
// placed at its fixed horizontal offset with its base resting exactly
// on the ground line. Bounds must be non-degenerate.
func (e *Engine) Start(now time.Time, bounds Bounds) {
	e.bounds = bounds
	e.groundY = bounds.H - e.tuning.GroundMargin

	e.player = player{
		x:        e.tuning.PlayerX,
		y:        e.groundY - e.tuning.PlayerH,
		w:        e.tuning.PlayerW,
		h:        e.tuning.PlayerH,
		grounded: true,
	}

	e.obstacles = e.obstacles[:0]
	e.startTime = now
	e.lastSpawn = now
	e.total = 0
	e.state = StateRunning
	e.lastSnap = e.snapshot(0)
}

// Jump applies upward velocity if the player is grounded or still has
// an air jump left (one ground jump plus one air jump). Velocity is
// overwritten, never accumulated, so rapid repeated calls before the
// next Step simply re-apply the same impulse. No-op otherwise.
func (e *Engine) Jump() {
	if e.state != StateRunning {
		return
	}
	if !e.player.grounded && e.player.jumpCount >= 2 {
		return
	}
	e.player.dy = e.tuning.JumpForce
	e.player.grounded = false
	e.player.jumpCount++
}

// Step advances the simulation to the given timestamp and returns a
// renderable snapshot plus the scoring events of this call. Stepping a
// Terminated engine is a no-op that re-reports the terminal frame;
// stepping an Idle engine returns a zero result.
func (e *Engine) Step(now time.Time) StepResult {
	switch e.state {
	case StateIdle:
		return StepResult{}
	case StateTerminated:
		return StepResult{Snapshot: e.lastSnap, Terminal: true}
	}

	elapsed := now.Sub(e.startTime)
	sched := e.tuning.ScheduleAt(elapsed)
	scroll := e.tuning.BaseScroll * sched.SpeedRate

	e.integratePlayer()
	e.maybeSpawn(now, sched.SpawnEvery)

	delta, milestone, hit := e.advanceObstacles(scroll)

	e.lastSnap = e.snapshot(elapsed)
	if hit {
		e.state = StateTerminated
		return StepResult{Snapshot: e.lastSnap, Terminal: true}
	}
	return StepResult{Snapshot: e.lastSnap, ScoreDelta: delta, Milestone: milestone}
}

// integratePlayer applies semi-implicit Euler (velocity before position)
// and clamps exactly onto the ground line. Ground contact is the only
// thing that resets the jump counter.
func (e *Engine) integratePlayer() {
	p := &e.player
	p.dy += e.tuning.Gravity
	p.y += p.dy

	if p.y+p.h >= e.groundY {
		p.y = e.groundY - p.h
		p.dy = 0
		p.grounded = true
		p.jumpCount = 0
	}
}

// maybeSpawn creates at most one obstacle per qualifying call. A caller
// that stalls past several spawn windows still gets a single obstacle;
// there is no catch-up.
func (e *Engine) maybeSpawn(now time.Time, spawnEvery time.Duration) {
	if now.Sub(e.lastSpawn) < spawnEvery {
		return
	}
	e.lastSpawn = now

	t := e.tuning
	h := t.ObstacleMinH + e.rng.Float64()*(t.ObstacleMaxH-t.ObstacleMinH)
	e.obstacles = append(e.obstacles, obstacle{
		x: e.bounds.W,
		y: e.groundY - h,
		w: t.ObstacleW,
		h: h,
	})
}

// advanceObstacles moves every obstacle left by scroll, handling
// collision, scoring and retirement in one pass. On collision it stops
// immediately: obstacles not yet processed keep their old positions,
// which is acceptable on a terminal frame.
func (e *Engine) advanceObstacles(scroll float64) (delta int, milestone bool, hit bool) {
	t := e.tuning
	playerBox := e.player.rect().Inset(t.HitboxInset)
	playerLead := e.player.rect().Right()

	kept := e.obstacles[:0]
	for i := 0; i < len(e.obstacles); i++ {
		ob := e.obstacles[i]
		ob.x -= scroll

		if playerBox.Intersects(ob.rect().Inset(t.HitboxInset)) {
			kept = append(kept, ob)
			kept = append(kept, e.obstacles[i+1:]...)
			e.obstacles = kept
			return 0, false, true
		}

		if !ob.passed && playerLead > ob.rect().Right() {
			ob.passed = true
			before := e.total
			e.total += t.PassPoints
			delta += t.PassPoints
			if before/t.MilestoneEvery != e.total/t.MilestoneEvery {
				milestone = true
			}
		}

		if ob.rect().Right() > -t.RemoveMargin {
			kept = append(kept, ob)
		}
	}
	e.obstacles = kept
	return delta, milestone, false
}
