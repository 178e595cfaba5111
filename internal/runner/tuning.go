package runner

import "time"

// Tuning holds every gameplay constant the engine depends on.
// Values are expressed in world units (pixels) and wall-clock durations,
// so the same simulation runs identically regardless of terminal size.
type Tuning struct {
	// Physics
	Gravity   float64 // added to vertical velocity every step
	JumpForce float64 // vertical velocity set on jump (negative = up)

	// Scrolling. BaseScroll is applied per Step call, scaled by the
	// schedule's speed rate. Movement is per-call, not delta-time
	// scaled; see the schedule docs for the consequences.
	BaseScroll float64

	// Difficulty staircase
	TimeStep        time.Duration // quantum at which severity increases
	BaseSpeedRate   float64
	SpeedStep       float64 // speed rate added per quantum
	MaxSpeedRate    float64
	StartSpawnEvery time.Duration
	SpawnCut        time.Duration // spawn interval removed per quantum
	MinSpawnEvery   time.Duration

	// Player
	PlayerX      float64 // fixed for the whole run; the world scrolls
	PlayerW      float64
	PlayerH      float64
	GroundMargin float64 // distance from the bottom edge to the ground line

	// Obstacles
	ObstacleW    float64
	ObstacleMinH float64
	ObstacleMaxH float64
	RemoveMargin float64 // trailing-edge distance past x=0 before removal

	// Collision forgiveness: both boxes shrink by this much per side
	// before the overlap test, so the hitbox is softer than the sprite.
	HitboxInset float64

	// Scoring
	PassPoints     int // awarded when the player clears an obstacle
	MilestoneEvery int // celebration threshold for the cumulative total
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:   0.6,
		JumpForce: -11,

		BaseScroll: 2.4,

		TimeStep:        10 * time.Second,
		BaseSpeedRate:   1.0,
		SpeedStep:       0.2,
		MaxSpeedRate:    3.0,
		StartSpawnEvery: 1600 * time.Millisecond,
		SpawnCut:        150 * time.Millisecond,
		MinSpawnEvery:   600 * time.Millisecond,

		PlayerX:      50,
		PlayerW:      40,
		PlayerH:      40,
		GroundMargin: 20,

		ObstacleW:    20,
		ObstacleMinH: 30,
		ObstacleMaxH: 70,
		RemoveMargin: 50,

		HitboxInset: 4,

		PassPoints:     10,
		MilestoneEvery: 50,
	}
}

// Schedule is the difficulty staircase: a step function of elapsed time
// that changes only at TimeStep boundaries, by fixed quanta, each value
// independently clamped. No continuous easing.
type Schedule struct {
	SpeedRate  float64
	SpawnEvery time.Duration
}

// ScheduleAt computes the staircase values for the given elapsed time.
func (t Tuning) ScheduleAt(elapsed time.Duration) Schedule {
	if elapsed < 0 {
		elapsed = 0
	}
	step := int64(elapsed / t.TimeStep)

	rate := t.BaseSpeedRate + t.SpeedStep*float64(step)
	if rate > t.MaxSpeedRate {
		rate = t.MaxSpeedRate
	}

	spawn := t.StartSpawnEvery - time.Duration(step)*t.SpawnCut
	if spawn < t.MinSpawnEvery {
		spawn = t.MinSpawnEvery
	}

	return Schedule{SpeedRate: rate, SpawnEvery: spawn}
}
