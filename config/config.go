// Package config loads raidcore settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config path is given.
const DefaultPath = "raidcore.yaml"

// Config holds every tunable the battle runner reads at startup.
// Zero values mean "decide at runtime": seed 0 derives a random seed,
// max_rounds 0 defers to the scenario or the engine default.
type Config struct {
	LogLevel    string `yaml:"log_level"    env:"RAIDCORE_LOG_LEVEL"`
	Seed        int64  `yaml:"seed"         env:"RAIDCORE_SEED"`
	MaxRounds   int    `yaml:"max_rounds"   env:"RAIDCORE_MAX_ROUNDS"`
	BattleLog   string `yaml:"battle_log"   env:"RAIDCORE_BATTLE_LOG"`
	ArchivePath string `yaml:"archive_path" env:"RAIDCORE_ARCHIVE_PATH"`
	ScenarioDir string `yaml:"scenario_dir" env:"RAIDCORE_SCENARIO_DIR"`
}

// Default returns the config used when no file or environment is present.
func Default() Config {
	return Config{
		LogLevel:    "info",
		BattleLog:   "battle_log.json",
		ArchivePath: "raidcore.db",
	}
}

// Load reads config from a YAML file, then applies environment overrides.
// A missing file is not an error; defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level name onto a slog level.
// Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
