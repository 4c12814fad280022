package layout

import "github.com/pinwall/pinwall/pkg/board"

// Finalizer constants.
const (
	// ideaJitterX bounds the horizontal jitter of a stacked idea around its
	// anchor's center.
	ideaJitterX = 10.0

	// ideaRotation bounds the rotation jitter of stacked ideas, in degrees.
	ideaRotation = 3.0
)

// finalizeAttachments positions every resolved idea directly beneath its
// anchor's final box: horizontally centered with a small jitter, vertically
// stacked in attachment order with a fixed step of idea height plus gap.
// Each anchor's stack depends only on that anchor's position, so the order
// anchors were placed in doesn't matter here.
//
// Ideas that no anchor claimed keep their original position; they still
// appear in the output so the item ID set is preserved.
func (p *pass) finalizeAttachments(anchors []board.Item) []board.Item {
	out := make([]board.Item, 0, len(anchors))
	handled := make(map[string]bool)

	for _, a := range anchors {
		out = append(out, a)

		aw, ah := a.Size()
		_, ideaH := board.Dimensions(board.KindIdea)

		for i, ideaID := range p.attach[a.ID] {
			it, ok := p.idx.Item(ideaID)
			if !ok {
				continue
			}
			idea := it.Clone()
			iw, _ := idea.Size()
			idea.X = a.X + aw/2 - iw/2 + p.jitter(ideaJitterX)
			idea.Y = a.Y + ah + ideaStackGap + float64(i)*(ideaH+ideaStackGap)
			idea.Rotation = p.jitter(ideaRotation)
			out = append(out, idea)
			handled[ideaID] = true
		}
	}

	return out
}

// passthroughOrphans appends, unchanged, every item from the input that the
// strategy did not position: ideas unreachable from any anchor. Layout never
// creates or destroys items, so orphans ride along at their old coordinates.
func passthroughOrphans(items, placed []board.Item) []board.Item {
	seen := make(map[string]bool, len(placed))
	for _, it := range placed {
		seen[it.ID] = true
	}
	for _, it := range items {
		if !seen[it.ID] {
			placed = append(placed, it.Clone())
		}
	}
	return placed
}
