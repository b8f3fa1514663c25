// Package solver generates scored workforce-mix scenario populations.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - metrics.go: Mix and the pure metric model (Evaluate)
//   - generator.go: the two-phase run — uniform spray, then an annealed walk
//   - population.go: assembly (dedupe, sort, truncate) and the FieldKey columns
//
// # Architecture
//
// A run is one Generator: it owns a PartitionedRNG seeded from the caller's
// seed (rng.go), draws mixes, evaluates each with Evaluate, collapses the
// metrics to a single score with Score (score.go), and assembles the combined
// rows into a sorted Population. ParetoFront (pareto.go) is a standalone
// filter over any population under caller-chosen minimize/maximize columns.
//
// Parameters come from DefaultParameters, a named Preset, a strict YAML file
// (params.go), or a tolerant JSON overlay (params_json.go); Validate is the
// caller's gate — the generation path itself never errors, it clamps.
//
// Sub-package solver/trace records per-step annealing decisions when a
// WalkTrace is attached to a Generator.
//
// Determinism contract: identical (Parameters, sampleCount, seed) reproduce
// bit-identical populations, best rows, and energy traces. The sampling and
// annealing phases draw from isolated RNG subsystems, so changing one
// phase's draw volume never shifts the other's stream.
package solver
