package layout

import "github.com/pinwall/pinwall/pkg/board"

// Messy layout constants.
const (
	// messyInset keeps random preferred points away from the board edges.
	messyInset = 200.0

	// messyRotation is the rotation jitter for messily placed anchors.
	messyRotation = 8.0
)

// titleSafeZone is the reserved rectangle where the board title renders.
// It is seeded into the placed boxes so no cluster lands under the title.
func titleSafeZone(boardW float64) rect {
	return rect{x: boardW/2 - 450, y: 0, w: 900, h: 160}
}

// Messy scatters anchors at uniformly random preferred points, relying on
// the spiral search to spread them out. The result has random rotation and
// stochastic spread; two runs only match when they share a seed.
func Messy(items []board.Item, boardW, boardH float64, opts ...Option) []board.Item {
	if len(items) == 0 {
		return nil
	}
	p := newPass(items, boardW, boardH, newConfig(opts))
	p.placed = append(p.placed, titleSafeZone(boardW))

	anchors := board.Anchors(items)
	placed := make([]board.Item, 0, len(anchors))
	for _, a := range anchors {
		prefX := messyInset + p.rng.Float64()*(boardW-2*messyInset)
		prefY := messyInset + p.rng.Float64()*(boardH-2*messyInset)
		placed = append(placed, p.placeSmart(a.Clone(), prefX, prefY, messyRotation))
	}

	return passthroughOrphans(items, p.finalizeAttachments(placed))
}
