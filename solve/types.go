package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazemaker/grid"
)

var (
	// ErrGridNil is returned when a nil grid is passed to a solver.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrTopologyNil is returned when a nil topology is passed to a solver.
	ErrTopologyNil = errors.New("solve: topology is nil")

	// ErrBadEndpoint indicates a start or end outside the maze.
	ErrBadEndpoint = errors.New("solve: endpoint outside maze")

	// ErrNoPath indicates that end cannot be reached from start.
	ErrNoPath = errors.New("solve: no path")

	// ErrBrokenPath indicates a path that is not a valid walk.
	ErrBrokenPath = errors.New("solve: broken path")

	// ErrUnknownStrategy indicates a strategy name with no solver.
	ErrUnknownStrategy = errors.New("solve: unknown strategy")
)

// Strategy selects a search algorithm.
type Strategy int

const (
	// StrategyBFS is breadth-first search with frontier reporting.
	StrategyBFS Strategy = iota
	// StrategyAStar is heuristic best-first search.
	StrategyAStar
)

var strategyNames = [...]string{"bfs", "astar"}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a case-insensitive name ("bfs", "astar", "a*") onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return StrategyBFS, nil
	case "astar", "a*", "a-star":
		return StrategyAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ExpandFunc observes one expansion: path runs from start to current.
// The slice is freshly allocated for each call. Returning an error aborts
// the search.
type ExpandFunc func(path grid.Path, current grid.Point) error

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx is checked before every expansion; defaults to context.Background().
	Ctx context.Context

	// OnExpand, if non-nil, is called after every expansion.
	OnExpand ExpandFunc
}

// DefaultOptions returns Background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand installs the expansion hook.
func WithOnExpand(fn ExpandFunc) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
