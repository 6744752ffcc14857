// Package config loads a maze.Config from defaults, an optional YAML file,
// an optional .env file and the process environment, in that order of
// increasing precedence.
//
// Environment keys: MAZE_WIDTH, MAZE_HEIGHT, MAZE_SHAPE, MAZE_STYLE,
// MAZE_ENTRANCES, MAZE_SPEED, MAZE_STRATEGY, MAZE_ATTEMPTS, MAZE_SEED.
//
// YAML keys mirror them in snake case:
//
//	width: 30
//	height: 20
//	shape: heart
//	style: classic
//	entrances: 2
//	animation_speed: 80
//	strategy: astar
//	max_attempts: 5
//	seed: 42
package config
