package layout

import "github.com/pinwall/pinwall/pkg/board"

// Cornered layout constants.
const (
	// bandY is the vertical position of the top objective band.
	bandY = 220.0

	// bandBottomInset is how far above the bottom edge the goal band sits.
	bandBottomInset = 420.0

	// cornerInset positions the four corner zones relative to the edges.
	cornerInset = 260.0

	// cornerJitter randomizes positions within a corner zone.
	cornerJitter = 80.0
)

// Cornered segregates anchors into zones by kind: objectives in a centered
// row along the top band, goals in a centered row along the bottom band, and
// everything else dealt round-robin into the four corner zones with a little
// jitter. Every item still goes through the spiral placer, so crowded zones
// spill outward instead of stacking.
func Cornered(items []board.Item, boardW, boardH float64, opts ...Option) []board.Item {
	if len(items) == 0 {
		return nil
	}
	p := newPass(items, boardW, boardH, newConfig(opts))

	var tops, bottoms, rest []board.Item
	for _, a := range board.Anchors(items) {
		switch a.Kind {
		case board.KindObjective:
			tops = append(tops, a)
		case board.KindGoal:
			bottoms = append(bottoms, a)
		default:
			rest = append(rest, a)
		}
	}

	placed := make([]board.Item, 0, len(tops)+len(bottoms)+len(rest))
	placed = append(placed, p.placeBand(tops, bandY)...)
	placed = append(placed, p.placeBand(bottoms, boardH-bandBottomInset)...)

	corners := [4][2]float64{
		{cornerInset, cornerInset},
		{boardW - cornerInset, cornerInset},
		{cornerInset, boardH - cornerInset},
		{boardW - cornerInset, boardH - cornerInset},
	}
	for i, a := range rest {
		corner := corners[i%len(corners)]
		prefX := corner[0] + p.jitter(cornerJitter)
		prefY := corner[1] + p.jitter(cornerJitter)
		placed = append(placed, p.placeSmart(a.Clone(), prefX, prefY, placeRotation))
	}

	return passthroughOrphans(items, p.finalizeAttachments(placed))
}

// placeBand lays a centered horizontal row of anchors at the given y,
// spacing preferred points by cluster width and letting the placer resolve
// collisions.
func (p *pass) placeBand(anchors []board.Item, y float64) []board.Item {
	if len(anchors) == 0 {
		return nil
	}

	total := 0.0
	for _, a := range anchors {
		cw, _ := clusterSize(a, p.attachedCount(a.ID))
		total += cw
	}
	total += float64(len(anchors)-1) * organizedGapX

	x := clampLow((p.boardW-total)/2, levelFloorX)
	placed := make([]board.Item, 0, len(anchors))
	for _, a := range anchors {
		cw, _ := clusterSize(a, p.attachedCount(a.ID))
		placed = append(placed, p.placeSmart(a.Clone(), x, y, placeRotation))
		x += cw + organizedGapX
	}
	return placed
}
