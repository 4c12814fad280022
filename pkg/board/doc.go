// Package board defines the pinwall data model: boards, typed items, and the
// directed connections between them.
//
// A board is a large 2D canvas holding sticky-note items. Three item kinds
// (objective, task, goal) act as anchors; the fourth (idea) is a satellite
// that attaches beneath exactly one anchor. Connections are directed strings
// from one item to another and may dangle: deleting an item does not scrub
// the connections that pointed at it, so consumers must tolerate TargetIDs
// with no matching item.
//
// # Serialization
//
// Boards round-trip through JSON without loss: every item field, including
// the full connection list, survives marshal → unmarshal unchanged. The
// format is the same one the canvas application saves, so files can move
// freely between the UI and this toolchain.
//
// # Connection index
//
// The Index type provides adjacency lookups (outgoing, incoming, degree)
// over a board's connection graph. Dangling targets are skipped when the
// index is built, which keeps every downstream traversal free of existence
// checks.
package board
