// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner platform.
package config

// RunnerConfig contains all gameplay configuration for the runner.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Schedule  RunnerSchedule  `yaml:"schedule"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Player    RunnerPlayer    `yaml:"player"`
	Scoring   RunnerScoring   `yaml:"scoring"`
}

// RunnerPhysics defines the kinematics constants, in world units.
type RunnerPhysics struct {
	Gravity    float64 `yaml:"gravity"`
	JumpForce  float64 `yaml:"jump_force"` // negative = upward
	BaseScroll float64 `yaml:"base_scroll"`
}

// RunnerSchedule defines the difficulty staircase. All durations are
// plain milliseconds so the YAML stays unit-explicit.
type RunnerSchedule struct {
	TimeStepMS    int     `yaml:"time_step_ms"` // staircase quantum
	BaseSpeedRate float64 `yaml:"base_speed_rate"`
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeedRate  float64 `yaml:"max_speed_rate"`
	StartSpawnMS  int     `yaml:"start_spawn_ms"`
	SpawnCutMS    int     `yaml:"spawn_cut_ms"`
	MinSpawnMS    int     `yaml:"min_spawn_ms"`
}

// RunnerObstacles defines obstacle geometry, in world units.
type RunnerObstacles struct {
	Width        float64 `yaml:"width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	RemoveMargin float64 `yaml:"remove_margin"`
}

// RunnerPlayer defines player geometry, in world units.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"`
	HitboxInset  float64 `yaml:"hitbox_inset"`
}

// RunnerScoring defines point values.
type RunnerScoring struct {
	PassPoints     int `yaml:"pass_points"`
	MilestoneEvery int `yaml:"milestone_every"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return the
// empty preset, meaning "use the config as-is".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// ApplyRunnerPreset rescales the staircase for a named difficulty.
// "fixed" zeroes the ramp so severity never changes mid-run.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Schedule.BaseSpeedRate = 0.9
		cfg.Schedule.SpeedStep = 0.15
		cfg.Schedule.MaxSpeedRate = 2.4
		cfg.Schedule.StartSpawnMS = 1800
		cfg.Schedule.MinSpawnMS = 700
	case DifficultyHard:
		cfg.Schedule.BaseSpeedRate = 1.2
		cfg.Schedule.SpeedStep = 0.25
		cfg.Schedule.MaxSpeedRate = 3.6
		cfg.Schedule.StartSpawnMS = 1400
		cfg.Schedule.MinSpawnMS = 500
	case DifficultyFixed:
		cfg.Schedule.SpeedStep = 0
		cfg.Schedule.SpawnCutMS = 0
	}
}
