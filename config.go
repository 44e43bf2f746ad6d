package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds configuration for the application
type Config struct {
	ProfilePath    string  `env:"CALTRACK_PROFILE"`
	Formula        string  `env:"CALTRACK_FORMULA" envDefault:"mifflin-st-jeor"`
	GoalAdjustment float64 `env:"CALTRACK_GOAL_ADJUSTMENT" envDefault:"500"`
}

// LoadConfig reads an optional .env file and then the environment.
// Variables already set in the environment win over the .env file.
func LoadConfig(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, path := range dotenvPaths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseFormula(cfg.Formula); err != nil {
		return nil, fmt.Errorf("CALTRACK_FORMULA: %w", err)
	}
	if math.IsNaN(cfg.GoalAdjustment) || math.IsInf(cfg.GoalAdjustment, 0) || cfg.GoalAdjustment < 0 {
		return nil, fmt.Errorf("CALTRACK_GOAL_ADJUSTMENT must be a non-negative number, got %g", cfg.GoalAdjustment)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Formula:        string(MifflinStJeor),
		GoalAdjustment: defaultGoalAdjustment,
	}
}

// TrackerOptions turns the config into tracker options
func (c *Config) TrackerOptions() []TrackerOption {
	f, err := ParseFormula(c.Formula)
	if err != nil {
		f = MifflinStJeor
	}
	return []TrackerOption{
		WithFormula(f),
		WithGoalAdjustment(c.GoalAdjustment),
	}
}
