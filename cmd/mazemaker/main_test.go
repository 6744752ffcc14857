package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazemaker/grid"
	"github.com/katalvlaran/mazemaker/maze"
	"github.com/katalvlaran/mazemaker/solve"
)

func TestRun_Classic(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-width", "6", "-height", "4", "-seed", "7", "-solve", "-log-level", "error"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	s := out.String()
	assert.Contains(t, s, "seed: 7\n")
	assert.Contains(t, s, "entrance 1: ")
	assert.Contains(t, s, "exit 1: ")
	assert.Contains(t, s, "+---+")
}

func TestRun_BadFlags(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":  {"-colour", "red"},
		"bad style":     {"-style", "maze"},
		"bad log level": {"-log-level", "loud"},
		"bad format":    {"-log-format", "xml"},
		"bad width":     {"-width", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 2, run(args, io.Discard, io.Discard))
		})
	}
}

func TestOverride_OnlyExplicitFlags(t *testing.T) {
	fs, f, err := parseFlags([]string{"-height", "9", "-style", "zigzag", "-strategy", "astar"}, io.Discard)
	require.NoError(t, err)

	cfg := maze.DefaultConfig()
	cfg.Width = 33
	require.NoError(t, override(&cfg, fs, f))

	assert.Equal(t, 33, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, grid.StyleZigzag, cfg.Style)
	assert.Equal(t, solve.StrategyAStar, cfg.Strategy)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug", "json", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = newLogger("info", "xml", io.Discard)
	assert.Error(t, err)
}
