// Package layout computes non-overlapping positions for board items under
// five arrangement strategies.
//
// Every strategy is a pure function from (items, board width, board height)
// to a new item slice: the input is never mutated, existing positions are
// superseded, and the returned slice carries exactly the same item IDs as
// the input. Strategies differ only in how they position anchor items
// (objectives, tasks, goals); idea items are always resolved to an owning
// anchor first and stacked directly beneath it afterwards.
//
// # Strategies
//
//   - Messy: uniformly random preferred points with spiral collision search
//   - Organized: deterministic row packing grouped by kind
//   - Structured: dependency levels via longest-path relaxation, laid out
//     as rows or columns
//   - Diamond: concentric rings around the most-connected hub
//   - Cornered: kind-based zones (top band, bottom band, corner buckets)
//
// # Attachment resolution
//
// Ideas belong to the first anchor that reaches them in a breadth-first walk
// of the connection graph, following edges in both directions. Idea-to-idea
// chains attach transitively to the same root anchor. The walk seeds anchors
// in a fixed kind priority (task, objective, goal, everything else), which
// decides the winner in ambiguous multi-parent graphs.
//
// # Randomness
//
// Strategies that jitter (rotation, corner offsets, spiral search results)
// draw from a PCG source seeded through WithSeed, so a fixed seed makes any
// strategy reproducible. Organized and Structured place anchors without
// consulting the source at all.
//
// # Failure tolerance
//
// The engine never fails on structurally valid input: dangling connection
// targets are skipped, unknown item kinds use a default bounding box, and a
// placement that finds no free slot within its attempt budget degrades to an
// overlapping position instead of erroring.
package layout
