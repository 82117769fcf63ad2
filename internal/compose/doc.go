// Package compose implements the hero-image composition engine.
//
// Given a batch of background-removed object images, the engine scatters
// them across a transparent canvas at randomized positions, rotations, and
// scales while keeping pairwise overlap within a configured budget.
//
// # Pipeline
//
// For each object (in uniformly shuffled order):
//
//  1. Auto-scale pre-shrink: objects whose native resolution vastly exceeds
//     what can plausibly fit alongside the rest of the batch are downscaled
//     toward a per-object size target derived from canvas area and object
//     count (see autoScaleTarget).
//  2. Random transform: rotation within ±OrientationVariation degrees with
//     bounds expansion, then scaling by a factor drawn from the range
//     implied by SizeVariation.
//  3. Canvas fit: a hard proportional downscale so no object ever exceeds
//     the canvas bounds.
//  4. Placement search: up to 100 uniformly sampled candidate positions;
//     the first one whose overlap with every already-placed object stays
//     within MaxOverlap wins.
//
// Objects that cannot be placed within the attempt budget are skipped, not
// errors: the search is probabilistic best-effort, not exact bin packing.
//
// # Determinism
//
// All randomness flows through a single *rand.Rand supplied by the caller,
// so a fixed seed reproduces a composition exactly. The engine is strictly
// sequential and never mutates its input images.
package compose
