// Command mazemaker generates, validates and prints one maze.
//
// Settings come from config.Load (defaults, -config YAML, .env, MAZE_*
// variables); flags given on the command line override them.
//
//	mazemaker -style spiral -width 31 -height 31 -seed 7 -solve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazemaker/config"
	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/maze"
	"github.com/katalvlaran/mazemaker/shape"
	"github.com/katalvlaran/mazemaker/solve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	configPath, envFile string
	width, height       int
	shapeName, style    string
	entrances, speed    int
	strategy            string
	attempts            int
	seed                int64
	animate, showPath   bool
	logLevel, logFormat string
	timeout             time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*flag.FlagSet, *cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("mazemaker", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.envFile, "env", "", "env file (default .env)")
	fs.IntVar(&f.width, "width", maze.DefaultWidth, "maze width in cells")
	fs.IntVar(&f.height, "height", maze.DefaultHeight, "maze height in cells")
	fs.StringVar(&f.shapeName, "shape", shape.Square.String(), "square|circle|heart|star|hexagon")
	fs.StringVar(&f.style, "style", grid.StyleClassic.String(), "classic|spiral|zigzag|honeycomb")
	fs.IntVar(&f.entrances, "entrances", maze.DefaultEntrances, "entrance/exit count (classic)")
	fs.IntVar(&f.speed, "speed", maze.DefaultAnimationSpeed, "animation speed 1..100")
	fs.StringVar(&f.strategy, "strategy", solve.StrategyBFS.String(), "bfs|astar")
	fs.IntVar(&f.attempts, "attempts", maze.DefaultMaxAttempts, "generation attempts")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&f.animate, "animate", false, "redraw the maze at every step")
	fs.BoolVar(&f.showPath, "solve", false, "overlay the first solution")
	fs.StringVar(&f.logLevel, "log-level", "info", "logrus level")
	fs.StringVar(&f.logFormat, "log-format", "text", "text|json")
	fs.DurationVar(&f.timeout, "timeout", 0, "abort after this long (0 = never)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return fs, f, nil
}

// override copies every flag that was set explicitly onto cfg.
func override(cfg *maze.Config, fs *flag.FlagSet, f *cliFlags) error {
	var errs []error
	fs.Visit(func(fl *flag.Flag) {
		var err error
		switch fl.Name {
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "shape":
			cfg.Shape, err = shape.ParseName(f.shapeName)
		case "style":
			cfg.Style, err = grid.ParseStyle(f.style)
		case "entrances":
			cfg.Entrances = f.entrances
		case "speed":
			cfg.AnimationSpeed = f.speed
		case "strategy":
			cfg.Strategy, err = solve.ParseStrategy(f.strategy)
		case "attempts":
			cfg.MaxAttempts = f.attempts
		case "seed":
			cfg.Seed = f.seed
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("-%s: %w", fl.Name, err))
		}
	})
	return errors.Join(errs...)
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return l, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(f.logLevel, f.logFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "mazemaker:", err)
		return 2
	}

	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}
	cfg, err := config.Load(f.configPath, envFiles...)
	if err == nil {
		err = override(&cfg, fs, f)
	}
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return 2
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	opts := []maze.Option{maze.WithLogger(logger)}
	if f.animate {
		opts = append(opts, maze.WithAnimation(frames(stdout)))
	}
	m, err := maze.New(cfg, opts...)
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return 2
	}

	fmt.Fprintf(stdout, "seed: %d\n", cfg.Seed)
	g, err := m.Generate(ctx, f.animate)
	if err != nil {
		var gerr *maze.GenerationError
		if errors.As(err, &gerr) {
			fmt.Fprintf(stderr, "mazemaker: no valid maze after %d attempts: %v\n", gerr.Attempts, gerr.Err)
		} else {
			fmt.Fprintln(stderr, "mazemaker:", err)
		}
		return 1
	}

	var overlay grid.Path
	if f.showPath {
		overlay = m.FindSolution()
	}
	fmt.Fprint(stdout, g.Render(overlay))
	printMarkers(stdout, "entrance", m.EntryPoints())
	printMarkers(stdout, "exit", m.ExitPoints())
	return 0
}

// frames redraws the whole grid with the cursor cell highlighted.
func frames(w io.Writer) maze.AnimationFunc {
	return func(_ context.Context, g *grid.Grid, cell grid.Point) error {
		_, err := fmt.Fprintf(w, "\033[H\033[2J%s", g.Render(grid.Path{cell}))
		return err
	}
}

func printMarkers(w io.Writer, kind string, pts []grid.BoundaryPoint) {
	for i, p := range pts {
		fmt.Fprintf(w, "%s %d: (%d,%d) %s\n", kind, i+1, p.X, p.Y, p.Side)
	}
}
