package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ChizhovVadim/CounterReversi/pkg/engine"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Engine   EngineConfig `yaml:"engine"`
	Arena    ArenaConfig  `yaml:"arena"`
}

type EngineConfig struct {
	TimeLimit       time.Duration `yaml:"time_limit"`
	MaxDepth        int           `yaml:"max_depth"`
	UseOpeningMoves bool          `yaml:"use_opening_moves"`
	UseCornerGrab   bool          `yaml:"use_corner_grab"`
}

type ArenaConfig struct {
	Games        int          `yaml:"games"`
	Concurrency  int          `yaml:"concurrency"`
	OpeningPlies int          `yaml:"opening_plies"`
	Seed         int64        `yaml:"seed"`
	EngineA      EngineConfig `yaml:"engine_a"`
	EngineB      EngineConfig `yaml:"engine_b"`
}

const maxOpeningPlies = 20

func defaultEngine() EngineConfig {
	var o = engine.NewOptions()
	return EngineConfig{
		TimeLimit:       o.TimeLimit,
		MaxDepth:        o.MaxDepth,
		UseOpeningMoves: o.UseOpeningMoves,
		UseCornerGrab:   o.UseCornerGrab,
	}
}

func Default() Config {
	var weak = defaultEngine()
	weak.MaxDepth = engine.MinDepth
	return Config{
		LogLevel: "info",
		Engine:   defaultEngine(),
		Arena: ArenaConfig{
			Games:        20,
			Concurrency:  4,
			OpeningPlies: 4,
			Seed:         1,
			EngineA:      defaultEngine(),
			EngineB:      weak,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %v: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	var cfg = Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Engine.validate("engine"))
	if c.Arena.Games <= 0 {
		errs = append(errs, fmt.Errorf("arena.games must be positive, got %v", c.Arena.Games))
	}
	if c.Arena.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("arena.concurrency must be positive, got %v", c.Arena.Concurrency))
	}
	if c.Arena.OpeningPlies < 0 || c.Arena.OpeningPlies > maxOpeningPlies {
		errs = append(errs, fmt.Errorf("arena.opening_plies must be in [0, %v], got %v", maxOpeningPlies, c.Arena.OpeningPlies))
	}
	errs = append(errs, c.Arena.EngineA.validate("arena.engine_a"))
	errs = append(errs, c.Arena.EngineB.validate("arena.engine_b"))
	return errors.Join(errs...)
}

func (e EngineConfig) validate(section string) error {
	var errs []error
	if e.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("%v.time_limit must be positive, got %v", section, e.TimeLimit))
	}
	if e.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%v.max_depth must not be negative, got %v", section, e.MaxDepth))
	}
	return errors.Join(errs...)
}

func (e EngineConfig) Options() engine.Options {
	return engine.Options{
		TimeLimit:       e.TimeLimit,
		MaxDepth:        e.MaxDepth,
		UseOpeningMoves: e.UseOpeningMoves,
		UseCornerGrab:   e.UseCornerGrab,
	}
}

// ParseLevel accepts the slog level names: debug, info, warn, error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("bad log level %q: %w", s, err)
	}
	return level, nil
}
