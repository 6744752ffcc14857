package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/maze"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/solve"
)

// ErrInvalidValue indicates a file or environment value that does not parse.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvWidth     = "MAZE_WIDTH"
	EnvHeight    = "MAZE_HEIGHT"
	EnvShape     = "MAZE_SHAPE"
	EnvStyle     = "MAZE_STYLE"
	EnvEntrances = "MAZE_ENTRANCES"
	EnvSpeed     = "MAZE_SPEED"
	EnvStrategy  = "MAZE_STRATEGY"
	EnvAttempts  = "MAZE_ATTEMPTS"
	EnvSeed      = "MAZE_SEED"
)

// file is the YAML layout; nil fields keep the previous value.
type file struct {
	Width          *int    `yaml:"width"`
	Height         *int    `yaml:"height"`
	Shape          *string `yaml:"shape"`
	Style          *string `yaml:"style"`
	Entrances      *int    `yaml:"entrances"`
	AnimationSpeed *int    `yaml:"animation_speed"`
	Strategy       *string `yaml:"strategy"`
	MaxAttempts    *int    `yaml:"max_attempts"`
	Seed           *int64  `yaml:"seed"`
}

// Load builds a validated config. path names an optional YAML file ("" to
// skip); envFiles are passed to godotenv, which reads ".env" when none are
// given. Missing env files are ignored; a missing YAML file is an error.
func Load(path string, envFiles ...string) (maze.Config, error) {
	cfg := maze.DefaultConfig()

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: env file: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyFile(cfg *maze.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var f file
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, path, err)
	}

	setInt(&cfg.Width, f.Width)
	setInt(&cfg.Height, f.Height)
	setInt(&cfg.Entrances, f.Entrances)
	setInt(&cfg.AnimationSpeed, f.AnimationSpeed)
	setInt(&cfg.MaxAttempts, f.MaxAttempts)
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	return errors.Join(
		parseInto(f.Shape, &cfg.Shape, shape.ParseName),
		parseInto(f.Style, &cfg.Style, grid.ParseStyle),
		parseInto(f.Strategy, &cfg.Strategy, solve.ParseStrategy),
	)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func parseInto[T any](s *string, dst *T, parse func(string) (T, error)) error {
	if s == nil {
		return nil
	}
	v, err := parse(*s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	*dst = v
	return nil
}

func applyEnv(cfg *maze.Config) error {
	var errs []error
	envInt := func(key string, dst *int) {
		v, err := getEnvAsInt(key, *dst)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}
	envInt(EnvWidth, &cfg.Width)
	envInt(EnvHeight, &cfg.Height)
	envInt(EnvEntrances, &cfg.Entrances)
	envInt(EnvSpeed, &cfg.AnimationSpeed)
	envInt(EnvAttempts, &cfg.MaxAttempts)

	if s := lookup(EnvSeed); s != nil {
		seed, err := strconv.ParseInt(*s, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, *s))
		} else {
			cfg.Seed = seed
		}
	}

	errs = append(errs,
		parseInto(lookup(EnvShape), &cfg.Shape, shape.ParseName),
		parseInto(lookup(EnvStyle), &cfg.Style, grid.ParseStyle),
		parseInto(lookup(EnvStrategy), &cfg.Strategy, solve.ParseStrategy),
	)
	return errors.Join(errs...)
}

// lookup returns a pointer to the variable's value, or nil when unset or empty.
func lookup(key string) *string {
	if v := getEnvWithDefault(key, ""); v != "" {
		return &v
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidValue, key, valueStr)
	}
	return value, nil
}
