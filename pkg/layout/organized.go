package layout

import (
	"slices"

	"github.com/pinwall/pinwall/pkg/board"
)

// Organized layout constants.
const (
	// titleBandHeight reserves space below the top edge for the board title.
	titleBandHeight = 220.0

	// rowMargin is the horizontal inset of the packing area.
	rowMargin = 150.0

	// organizedGapX and organizedGapY separate clusters within and between rows.
	organizedGapX = 60.0
	organizedGapY = 80.0
)

// organizedPriority orders anchor kinds for the organized strategy's row
// packing: objectives, then tasks, then goals, then anything else.
func organizedPriority(k board.Kind) int {
	switch k {
	case board.KindObjective:
		return 0
	case board.KindTask:
		return 1
	case board.KindGoal:
		return 2
	default:
		return 3
	}
}

// Organized packs anchors left to right into rows beneath the title band,
// grouped by kind. A row wraps when the next cluster would exceed the usable
// width; each row is as tall as its tallest cluster. No randomness is used
// for anchor positions and rotation is forced to zero, so repeated runs over
// the same input produce identical coordinates.
func Organized(items []board.Item, boardW, boardH float64, opts ...Option) []board.Item {
	if len(items) == 0 {
		return nil
	}
	p := newPass(items, boardW, boardH, newConfig(opts))

	anchors := board.Anchors(items)
	slices.SortStableFunc(anchors, func(a, b board.Item) int {
		return organizedPriority(a.Kind) - organizedPriority(b.Kind)
	})

	usable := boardW - 2*rowMargin
	x := rowMargin
	y := titleBandHeight
	rowHeight := 0.0

	placed := make([]board.Item, 0, len(anchors))
	for _, a := range anchors {
		cw, ch := clusterSize(a, p.attachedCount(a.ID))

		if x > rowMargin && x+cw > rowMargin+usable {
			x = rowMargin
			y += rowHeight + organizedGapY
			rowHeight = 0
		}

		it := a.Clone()
		it.X = x
		it.Y = y
		it.Rotation = 0

		x += cw + organizedGapX
		if ch > rowHeight {
			rowHeight = ch
		}
		placed = append(placed, it)
	}

	return passthroughOrphans(items, p.finalizeAttachments(placed))
}
