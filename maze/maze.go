package maze

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazemaker/carve"
	"github.com/katalvlaran/mazemaker/connect"
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/placement"
	"github.com/katalvlaran/mazemaker/rng"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/solve"
	"github.com/katalvlaran/mazemaker/topology"
)

var log = logrus.New()

// Maze owns one configured maze and the state of its latest attempt.
type Maze struct {
	id  uuid.UUID
	cfg Config

	topo     topology.Topology
	shape    shape.Provider
	selector placement.Selector

	rand      rng.Rand
	log       logrus.FieldLogger
	animation AnimationFunc
	sleep     Sleeper
	animating bool

	state      State
	attempts   int
	grid       *grid.Grid
	entries    []grid.BoundaryPoint
	exits      []grid.BoundaryPoint
	solutions  []grid.Path
	validation grid.Path
}

// New validates cfg and wires the topology, shape and placement policy.
func New(cfg Config, opts ...Option) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	topo, err := topology.New(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sp, err := shape.ByName(cfg.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sel, err := placement.ForStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m := &Maze{
		id:       uuid.New(),
		cfg:      cfg,
		topo:     topo,
		shape:    sp,
		selector: sel,
		log:      log,
		sleep:    Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = rng.New(cfg.Seed)
	}
	m.log = m.log.WithFields(logrus.Fields{
		"maze_id":   m.id.String(),
		"style":     cfg.Style.String(),
		"shape":     cfg.Shape.String(),
		"entrances": cfg.Entrances,
	})
	return m, nil
}

// Generate runs attempts until one validates or the budget runs out.
// With animate=true the AnimationFunc, if any, is called at every step.
func (m *Maze) Generate(ctx context.Context, animate bool) (*grid.Grid, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	m.animating = animate
	defer func() { m.animating = false }()
	m.attempts = 0

	var last error
	for m.attempts < m.cfg.MaxAttempts {
		m.attempts++
		alog := m.log.WithField("attempt", m.attempts)
		alog.Debug("attempt started")

		m.state = Carving
		err := m.build(ctx)
		if err == nil {
			m.state = Validating
			err = m.validate(ctx)
		}
		if err == nil {
			m.state = Done
			alog.WithField("solution_len", len(m.Solution())).Info("maze generated")
			return m.grid, nil
		}

		last = err
		if !retryable(err) {
			alog.WithError(err).Error("generation aborted")
			m.state = Failed
			return nil, &GenerationError{Attempts: m.attempts, Err: err}
		}
		alog.WithError(err).Warn("attempt rejected")
		m.state = Retrying
	}

	m.state = Failed
	m.log.WithError(last).WithField("attempts", m.attempts).Error("generation failed")
	return nil, &GenerationError{Attempts: m.attempts, Err: last}
}

// Per-attempt random streams.
const (
	placeStream = iota
	carveStream
	connectStream
	numStreams
)

// retryable reports whether a new attempt may succeed where err failed.
func retryable(err error) bool {
	return errors.Is(err, placement.ErrPlacement) || errors.Is(err, ErrValidation)
}

// build runs one Carving phase on a fresh grid.
func (m *Maze) build(ctx context.Context) error {
	m.entries, m.exits, m.solutions, m.validation = nil, nil, nil, nil

	g, err := m.topo.Build(m.cfg.Width, m.cfg.Height, m.shape)
	if err != nil {
		return err
	}
	m.grid = g

	streams := rng.Split(m.rand, numStreams)
	sel, err := m.selector.Select(g, m.topo, m.cfg.Entrances, streams[placeStream])
	if err != nil {
		return err
	}
	m.entries, m.exits = sel.Entrances, sel.Exits

	// one entrance: a single tree grown from the exit
	seeds := sel.Seeds
	if m.cfg.Entrances == 1 {
		seeds = []grid.Point{sel.Exits[0].Point()}
	}

	copts := []carve.Option{carve.WithRand(streams[carveStream])}
	if m.animating {
		copts = append(copts, carve.WithOnStep(func(g *grid.Grid, p grid.Point) error {
			return m.suspend(ctx, g, p)
		}))
	}
	visited := 0
	for _, seed := range seeds {
		res, err := carve.Carve(g, m.topo, seed, copts...)
		if err != nil {
			return err
		}
		visited += len(res.Visited)
	}
	m.log.WithFields(logrus.Fields{"seeds": len(seeds), "carved": visited}).Debug("carved")

	if m.cfg.Entrances == 1 {
		return nil
	}
	pairs := make([]connect.Pair, sel.Pairs())
	for i := range pairs {
		pairs[i] = connect.Pair{From: m.entries[i].Point(), To: m.exits[i].Point()}
	}
	nopts := []connect.Option{connect.WithRand(streams[connectStream])}
	if m.animating {
		nopts = append(nopts, connect.WithOnStep(func(g *grid.Grid, p grid.Point) error {
			return m.suspend(ctx, g, p)
		}))
	}
	rep, err := connect.Connect(g, m.topo, pairs, nopts...)
	if err != nil {
		if errors.Is(err, connect.ErrUnreachable) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return err
	}
	m.log.WithFields(logrus.Fields{
		"bridges":   rep.Bridges,
		"corridors": rep.Corridors,
		"annexed":   rep.Annexed,
	}).Debug("regions connected")
	return nil
}

// validate solves every entrance/exit pair and stores the paths.
func (m *Maze) validate(ctx context.Context) error {
	m.solutions = nil
	defer func() { m.validation = nil }()
	if m.grid == nil {
		return ErrNotGenerated
	}
	n := min(len(m.entries), len(m.exits))
	if n == 0 {
		return fmt.Errorf("%w: no entrance/exit pair", ErrValidation)
	}

	var sopts []solve.Option
	if m.animating {
		sopts = append(sopts, solve.WithOnExpand(func(path grid.Path, cur grid.Point) error {
			m.validation = path
			return m.suspend(ctx, m.grid, cur)
		}))
	}

	solutions := make([]grid.Path, 0, n)
	for i := 0; i < n; i++ {
		path, err := solve.Solve(m.cfg.Strategy, m.grid, m.topo, m.entries[i].Point(), m.exits[i].Point(), sopts...)
		if err != nil {
			if errors.Is(err, solve.ErrNoPath) || errors.Is(err, solve.ErrBadEndpoint) {
				return fmt.Errorf("%w: pair %d: %w", ErrValidation, i, err)
			}
			return err
		}
		solutions = append(solutions, path)
	}
	m.solutions = solutions
	return nil
}

// suspend is the single yield point: hook, then delay.
func (m *Maze) suspend(ctx context.Context, g *grid.Grid, cell grid.Point) error {
	if m.animation == nil {
		return nil
	}
	if err := m.animation(ctx, g, cell); err != nil {
		return err
	}
	return m.sleep(ctx, AnimationDelay(m.cfg.AnimationSpeed))
}

// Validate re-solves every pair on the current grid. The AnimationFunc,
// if installed, runs at every expansion.
func (m *Maze) Validate(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	m.animating = m.animation != nil
	defer func() { m.animating = false }()
	if err := m.validate(ctx); err != nil {
		m.log.WithError(err).Debug("validation failed")
		return false
	}
	return true
}

// FindSolution returns the first pair's path, computing it with A* when no
// path is stored. It returns nil when the maze has no solvable pair.
func (m *Maze) FindSolution() grid.Path {
	if len(m.solutions) > 0 {
		return m.solutions[0]
	}
	if m.grid == nil || len(m.entries) == 0 || len(m.exits) == 0 {
		return nil
	}
	path, err := solve.AStar(m.grid, m.topo, m.entries[0].Point(), m.exits[0].Point())
	if err != nil {
		m.log.WithError(err).Debug("no solution")
		return nil
	}
	m.solutions = []grid.Path{path}
	return path
}

// ID is the maze's unique identifier.
func (m *Maze) ID() uuid.UUID { return m.id }

// Config returns the normalized configuration.
func (m *Maze) Config() Config { return m.cfg }

// Topology returns the topology the maze was built with.
func (m *Maze) Topology() topology.Topology { return m.topo }

// State returns the lifecycle state.
func (m *Maze) State() State { return m.state }

// Attempts is the number of attempts made by the last Generate.
func (m *Maze) Attempts() int { return m.attempts }

// Grid returns the latest grid, or nil before Generate.
func (m *Maze) Grid() *grid.Grid { return m.grid }

// EntryPoints returns the entrances in placement order.
func (m *Maze) EntryPoints() []grid.BoundaryPoint { return m.entries }

// ExitPoints returns the exits; ExitPoints()[i] pairs with EntryPoints()[i].
func (m *Maze) ExitPoints() []grid.BoundaryPoint { return m.exits }

// Solution returns the first pair's path, or nil.
func (m *Maze) Solution() grid.Path {
	if len(m.solutions) == 0 {
		return nil
	}
	return m.solutions[0]
}

// Solutions returns one path per entrance/exit pair.
func (m *Maze) Solutions() []grid.Path { return m.solutions }

// ValidationPath is the partial path of an in-progress search. It is
// nil outside a running search.
func (m *Maze) ValidationPath() grid.Path { return m.validation }
