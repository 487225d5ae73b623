package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = "narragraph.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/narragraph"
	// UserConfigFile is the user-level config file name.
	UserConfigFile = "config.yaml"
)

// Loader loads configuration with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load layers configuration: defaults, then the user config
// (~/.config/narragraph/config.yaml), then a project config
// (narragraph.yaml found in the current or a parent directory).
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfig, err := LoadFromFile(userConfigPath); err == nil {
		l.logger.Debug("loaded user config", slog.String("path", userConfigPath))
		config.Merge(userConfig)
	} else if !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("failed to load user config",
			slog.String("path", userConfigPath), slog.String("error", err.Error()))
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if projectConfig, err := LoadFromFile(projectConfigPath); err == nil {
			l.logger.Debug("loaded project config", slog.String("path", projectConfigPath))
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("failed to load project config",
				slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks from the working directory toward the root
// looking for the project config file.
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
