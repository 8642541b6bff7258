// Package config resolves runtime settings from KILLER_CHASE_* environment
// variables and command-line flags. Flags take precedence over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/killer-chase/engine"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "KILLER_CHASE_"

// Config holds every tunable of a session
type Config struct {
	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"1ms"`
	ReseedInterval time.Duration `env:"RESEED_INTERVAL" envDefault:"5s"`
	PollTimeout    time.Duration `env:"POLL_TIMEOUT" envDefault:"1ms"`
	KillerCadence  int           `env:"KILLER_CADENCE" envDefault:"70"`
	GameOverHold   time.Duration `env:"GAME_OVER_HOLD" envDefault:"1s"`

	// Seed of the killer placement RNG, 0 picks one from the clock
	Seed uint64 `env:"SEED" envDefault:"0"`

	// Legacy restores the classic cursor clamp and oscillating pursuit
	Legacy bool `env:"LEGACY" envDefault:"false"`

	Sound bool `env:"SOUND" envDefault:"false"`
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads the environment (environ overrides the process environment when
// non-nil) and then applies args as flags
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("killer-chase", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RegisterFlags binds every field to fs using the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Minimum interval between ticks")
	fs.DurationVar(&c.ReseedInterval, "reseed", c.ReseedInterval, "Interval between killer reseeds")
	fs.DurationVar(&c.PollTimeout, "poll", c.PollTimeout, "Input poll timeout")
	fs.IntVar(&c.KillerCadence, "cadence", c.KillerCadence, "Ticks between killer moves (higher is slower)")
	fs.DurationVar(&c.GameOverHold, "hold", c.GameOverHold, "How long the game over screen stays up")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Killer placement seed (0 = random)")
	fs.BoolVar(&c.Legacy, "legacy", c.Legacy, "Classic movement rules (row clamp off by one, aligned killers oscillate)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Enable audio cues")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write a debug log under logs/")
}

// Validate rejects settings the loop cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %v", c.TickInterval))
	}
	if c.ReseedInterval <= 0 {
		errs = append(errs, fmt.Errorf("reseed interval must be positive, got %v", c.ReseedInterval))
	}
	if c.PollTimeout < 0 {
		errs = append(errs, fmt.Errorf("poll timeout must not be negative, got %v", c.PollTimeout))
	}
	if c.KillerCadence < 1 {
		errs = append(errs, fmt.Errorf("killer cadence must be at least 1, got %d", c.KillerCadence))
	}
	if c.GameOverHold < 0 {
		errs = append(errs, fmt.Errorf("game over hold must not be negative, got %v", c.GameOverHold))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Rules returns the board rules selected by Legacy
func (c *Config) Rules() engine.Rules {
	if c.Legacy {
		return engine.RulesLegacy
	}
	return engine.RulesStandard
}

// LoopConfig returns the main loop timing
func (c *Config) LoopConfig() engine.LoopConfig {
	return engine.LoopConfig{
		TickInterval:   c.TickInterval,
		ReseedInterval: c.ReseedInterval,
		PollTimeout:    c.PollTimeout,
		KillerCadence:  c.KillerCadence,
	}
}
