package runner

import (
	"time"

	"github.com/m-orlov/tui-runner/internal/core"
)

// PlayerPose describes the player for one rendered frame.
type PlayerPose struct {
	Rect      core.RectF
	DY        float64
	Grounded  bool
	JumpCount int
}

// Snapshot is everything a renderer needs to draw one frame without
// querying the engine again. It is a copy: callers may keep it across
// frames, the engine never mutates a returned snapshot.
type Snapshot struct {
	Player    PlayerPose
	Obstacles []core.RectF
	Bounds    Bounds
	GroundY   float64
	Elapsed   time.Duration
}

// StepResult is returned by Engine.Step for every simulation call.
type StepResult struct {
	Snapshot   Snapshot
	ScoreDelta int  // points earned this step (0 or a multiple of PassPoints)
	Milestone  bool // cumulative total crossed a MilestoneEvery boundary
	Terminal   bool // collision: the run is over
}

// snapshot builds a copy of the current engine state.
func (e *Engine) snapshot(elapsed time.Duration) Snapshot {
	obs := make([]core.RectF, len(e.obstacles))
	for i, ob := range e.obstacles {
		obs[i] = ob.rect()
	}
	return Snapshot{
		Player: PlayerPose{
			Rect:      e.player.rect(),
			DY:        e.player.dy,
			Grounded:  e.player.grounded,
			JumpCount: e.player.jumpCount,
		},
		Obstacles: obs,
		Bounds:    e.bounds,
		GroundY:   e.groundY,
		Elapsed:   elapsed,
	}
}
