package config

import (
	"errors"
	"fmt"
	"isolation/game"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidPlayer   = errors.New("first player must be X or O")
	ErrInvalidTieBreak = errors.New("tie break must be between 0 and 1")
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"ISOLATION_LOG_LEVEL" env-default:"info"`
	TimeBudget    time.Duration `yaml:"time-budget" env:"ISOLATION_TIME_BUDGET" env-default:"2s"`
	MaxDepth      int           `yaml:"max-depth" env:"ISOLATION_MAX_DEPTH" env-default:"200"`
	TieBreak      float64       `yaml:"tie-break" env:"ISOLATION_TIE_BREAK" env-default:"0.25"`
	Deterministic bool          `yaml:"deterministic" env:"ISOLATION_DETERMINISTIC" env-default:"false"` // Turns tie breaking off
	Seed          uint64        `yaml:"seed" env:"ISOLATION_SEED" env-default:"0"`                       // Zero seeds from the clock
	FirstPlayer   string        `yaml:"first-player" env:"ISOLATION_FIRST_PLAYER" env-default:"X"`
	MaxTurns      int           `yaml:"max-turns" env:"ISOLATION_MAX_TURNS" env-default:"64"`
	Experiment    Experiment    `yaml:"experiment" env-prefix:"ISOLATION_EXPERIMENT_"`
}

type Experiment struct {
	Games     int    `yaml:"games" env:"GAMES" env-default:"10"` // Per match up
	OutputDir string `yaml:"output-dir" env:"OUTPUT_DIR" env-default:"results"`
}

// Load reads the yaml file at path, with environment variables taking
// precedence. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if _, err := c.First(); err != nil {
		return err
	}
	if c.TieBreak < 0 || c.TieBreak > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidTieBreak, c.TieBreak)
	}
	return nil
}

// TieBreakProbability is the tie-break chance the searcher should use.
func (c *Config) TieBreakProbability() float64 {
	if c.Deterministic {
		return 0
	}
	return c.TieBreak
}

// First resolves the configured first player.
func (c *Config) First() (game.Player, error) {
	switch strings.ToUpper(strings.TrimSpace(c.FirstPlayer)) {
	case game.PlayerA.String():
		return game.PlayerA, nil
	case game.PlayerB.String():
		return game.PlayerB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlayer, c.FirstPlayer)
}
