package carve

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Carve.
	ErrGridNil = errors.New("carve: grid is nil")

	// ErrTopologyNil is returned when a nil topology is passed to Carve.
	ErrTopologyNil = errors.New("carve: topology is nil")

	// ErrSeedOutOfBounds indicates a seed outside the grid.
	ErrSeedOutOfBounds = errors.New("carve: seed out of bounds")

	// ErrSeedNotInShape indicates a seed that is not an in-shape cell.
	ErrSeedNotInShape = errors.New("carve: seed not in shape")
)

// StepFunc observes the grid after a cell is pushed or popped.
// Returning an error aborts carving.
type StepFunc func(g *grid.Grid, p grid.Point) error

// Option configures Carve.
type Option func(*Options)

// Options holds the carving parameters.
type Options struct {
	// Ctx is checked between steps; defaults to context.Background().
	Ctx context.Context

	// Rand drives neighbor choice; defaults to rng.New(0).
	Rand rng.Rand

	// OnStep, if non-nil, is called after every push and every pop.
	OnStep StepFunc
}

// DefaultOptions returns Background context, a default-seeded source
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Rand: nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects the random source. Panics on nil.
func WithRand(r rng.Rand) Option {
	if r == nil {
		panic("carve: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed uses rng.New(seed) as the random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.New(seed)
	}
}

// WithOnStep installs the step hook.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Result summarizes one carve.
type Result struct {
	// Visited lists cells in the order they were first reached.
	Visited []grid.Point

	// Passages counts removed walls; always len(Visited)-1 for a fresh carve.
	Passages int
}
