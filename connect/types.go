package connect

import (
	"errors"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/rng"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Connect.
	ErrGridNil = errors.New("connect: grid is nil")

	// ErrTopologyNil is returned when a nil topology is passed to Connect.
	ErrTopologyNil = errors.New("connect: topology is nil")

	// ErrUnreachable indicates a pair whose groups could not be joined.
	ErrUnreachable = errors.New("connect: regions cannot be joined")
)

// Pair is an entrance/exit pair that must end up in one region.
type Pair struct {
	From, To grid.Point
}

// Report counts the changes Connect made.
type Report struct {
	Bridges   int // walls opened between adjacent carved cells
	Corridors int // corridors dug through uncarved cells
	Annexed   int // cells added to the maze by corridors
}

// Option configures Connect.
type Option func(*Options)

// Options holds the connector parameters.
type Options struct {
	Rand   rng.Rand
	OnStep func(g *grid.Grid, p grid.Point) error
}

// WithRand injects the random source used to choose bridges. Panics on nil.
func WithRand(r rng.Rand) Option {
	if r == nil {
		panic("connect: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses rng.New(seed) as the random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.New(seed) }
}

// WithOnStep installs a hook called after every opened wall with the cell
// on the far side. Returning an error aborts Connect.
func WithOnStep(fn func(g *grid.Grid, p grid.Point) error) Option {
	return func(o *Options) { o.OnStep = fn }
}
