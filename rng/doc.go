// Package rng centralizes randomness for maze generation.
//
// Every shuffle and random pick in mazemaker goes through the Rand interface,
// so callers can inject a seeded source and reproduce a maze exactly.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes on every platform.
//   - Encapsulation: one factory (New); no time-based sources hidden anywhere.
//   - Safety: helpers never panic on empty input.
//
// Concurrency:
//   - *math/rand.Rand is NOT goroutine-safe. Do not share a Rand across goroutines.
//   - Split fans one source out into independent per-phase streams.
package rng
