package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the stock runner configuration. Kept in
// sync with defaults/runner.yaml, which is the canonical copy users can
// export and edit.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:    0.6,
			JumpForce:  -11,
			BaseScroll: 2.4,
		},
		Schedule: RunnerSchedule{
			TimeStepMS:    10000,
			BaseSpeedRate: 1.0,
			SpeedStep:     0.2,
			MaxSpeedRate:  3.0,
			StartSpawnMS:  1600,
			SpawnCutMS:    150,
			MinSpawnMS:    600,
		},
		Obstacles: RunnerObstacles{
			Width:        20,
			MinHeight:    30,
			MaxHeight:    70,
			RemoveMargin: 50,
		},
		Player: RunnerPlayer{
			X:            50,
			Width:        40,
			Height:       40,
			GroundMargin: 20,
			HitboxInset:  4,
		},
		Scoring: RunnerScoring{
			PassPoints:     10,
			MilestoneEvery: 50,
		},
	}
}

// DefaultRunnerYAML returns the embedded default YAML, for exporting a
// starter config file.
func DefaultRunnerYAML() []byte {
	return defaultRunnerYAML
}
