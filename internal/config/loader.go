package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// An explicit path must exist and parse; anything else is an error
	// the user wants to hear about.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // fall back to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
