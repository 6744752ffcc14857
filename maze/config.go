package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/solve"
)

// ErrInvalidConfig is returned by Config.Validate and New.
var ErrInvalidConfig = errors.New("maze: invalid config")

// Defaults used by DefaultConfig.
const (
	DefaultWidth          = 20
	DefaultHeight         = 20
	DefaultEntrances      = 1
	DefaultAnimationSpeed = 50
	DefaultMaxAttempts    = 5
)

// Config describes one maze.
type Config struct {
	Width, Height  int
	Shape          shape.Name
	Style          grid.Style
	Entrances      int // classic only; other styles place one pair
	AnimationSpeed int // 1..100, higher is faster
	Strategy       solve.Strategy
	MaxAttempts    int
	Seed           int64 // 0 ⇒ rng.DefaultSeed
}

// DefaultConfig returns a 20×20 classic square maze with one entrance.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Shape:          shape.Square,
		Style:          grid.StyleClassic,
		Entrances:      DefaultEntrances,
		AnimationSpeed: DefaultAnimationSpeed,
		Strategy:       solve.StrategyBFS,
		MaxAttempts:    DefaultMaxAttempts,
	}
}

// Validate reports every invalid field, joined, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	if c.Width < 1 || c.Height < 1 {
		bad("dimensions %dx%d", c.Width, c.Height)
	}
	if _, err := shape.ByName(c.Shape); err != nil {
		bad("shape %s", c.Shape)
	}
	if _, err := grid.ParseStyle(c.Style.String()); err != nil {
		bad("style %s", c.Style)
	}
	if c.Entrances < 1 {
		bad("entrances %d", c.Entrances)
	}
	if c.AnimationSpeed < 1 || c.AnimationSpeed > 100 {
		bad("animation speed %d not in [1,100]", c.AnimationSpeed)
	}
	if _, err := solve.ParseStrategy(c.Strategy.String()); err != nil {
		bad("strategy %s", c.Strategy)
	}
	if c.MaxAttempts < 1 {
		bad("max attempts %d", c.MaxAttempts)
	}
	return errors.Join(errs...)
}

// normalized applies the style constraints: spiral mazes are always circles.
func (c Config) normalized() Config {
	if c.Style == grid.StyleSpiral {
		c.Shape = shape.Circle
	}
	return c
}
