package layout

import "github.com/pinwall/pinwall/pkg/board"

// rect is an axis-aligned box with top-left origin, in board units.
type rect struct {
	x, y, w, h float64
}

// overlaps reports whether two rectangles intersect when each is inflated by
// padding on its trailing edges. Padding is additive on the extents, so two
// boxes exactly padding apart still count as touching. Comparisons are
// strict: coordinates that line up exactly at the inflated boundary overlap.
func overlaps(a, b rect, padding float64) bool {
	return a.x < b.x+b.w+padding &&
		a.x+a.w+padding > b.x &&
		a.y < b.y+b.h+padding &&
		a.y+a.h+padding > b.y
}

// Cluster geometry. An anchor and its idea stack are treated as one rigid
// placement unit so the placer never reasons about idea collisions.
const (
	// ideaStackGap is the vertical gap between stacked ideas, and between
	// the anchor's bottom edge and the first idea.
	ideaStackGap = 10.0

	// clusterBuffer is extra height reserved at the bottom of every cluster.
	clusterBuffer = 40.0
)

// clusterSize returns the bounding box of an anchor plus its attached idea
// stack: as wide as the wider of the two, tall enough for the anchor, the
// stack, and the fixed buffer.
func clusterSize(it board.Item, attachedCount int) (w, h float64) {
	w, h = it.Size()
	ideaW, ideaH := board.Dimensions(board.KindIdea)
	if ideaW > w {
		w = ideaW
	}
	h += float64(attachedCount)*(ideaH+ideaStackGap) + clusterBuffer
	return w, h
}
