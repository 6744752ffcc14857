// Package maze drives maze generation end to end: it builds the lattice for
// the configured style and shape, places entrances and exits, carves one
// tree from the exit (or, with several entrances, from every seed and then
// stitches the regions), validates every entrance/exit pair and retries
// from scratch when validation fails.
//
// Lifecycle:
//
//	Idle → Carving → Validating → Done
//	                 Validating → Retrying → Carving
//	                              Retrying → Failed
//
// Every attempt discards the previous grid and boundary points. A placement
// failure or an unsolvable pair ends the attempt; after Config.MaxAttempts
// attempts Generate returns a *GenerationError.
//
// Animation:
//
// With animate=true and an AnimationFunc installed, the hook runs
// synchronously after every carving step and every search expansion,
// followed by a delay of max(1, 50 − speed/2) ms through the Sleeper.
// The context is observed only there: a Sleeper returning ctx.Err() or a
// hook error aborts generation without further retries.
//
// Logging goes through a logrus.FieldLogger carrying maze_id, style, shape,
// entrances and attempt fields.
//
// A Maze is not safe for concurrent use.
package maze
