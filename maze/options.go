package maze

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
)

// AnimationFunc observes the live grid at a suspension point; cell is the
// cell just carved or expanded. The grid must not be modified. Returning an
// error aborts generation.
type AnimationFunc func(ctx context.Context, g *grid.Grid, cell grid.Point) error

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper, backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// AnimationDelay maps a speed in [1,100] onto max(1, 50 − speed/2) milliseconds.
func AnimationDelay(speed int) time.Duration {
	d := 50*time.Millisecond - time.Duration(speed)*time.Millisecond/2
	return max(time.Millisecond, d)
}

// Option configures a Maze.
type Option func(*Maze)

// WithRand injects the random source; it overrides Config.Seed. Panics on nil.
func WithRand(r rng.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(m *Maze) { m.rand = r }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(m *Maze) { m.log = l }
}

// WithAnimation installs the suspension hook.
func WithAnimation(fn AnimationFunc) Option {
	return func(m *Maze) { m.animation = fn }
}

// WithSleeper replaces the delay implementation. Panics on nil.
func WithSleeper(s Sleeper) Option {
	if s == nil {
		panic("maze: WithSleeper(nil)")
	}
	return func(m *Maze) { m.sleep = s }
}
