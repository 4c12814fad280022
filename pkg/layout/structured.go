package layout

import "github.com/pinwall/pinwall/pkg/board"

// Structured layout constants.
const (
	// levelGap separates consecutive dependency levels.
	levelGap = 120.0

	// levelFloorY is the minimum vertical position for row-oriented levels,
	// keeping level zero out of the title band.
	levelFloorY = titleBandHeight

	// levelFloorX is the minimum horizontal position for column-oriented levels.
	levelFloorX = rowMargin
)

// anchorDepths computes a dependency depth for every anchor by longest-path
// relaxation over the anchor-only connection subgraph. The relaxation runs a
// fixed number of passes equal to the item count: depth only ever increases,
// so on a cyclic graph the passes simply stop improving instead of looping
// forever. Each pass relaxes depth[target] = max(depth[target],
// depth[source]+1); an early exit fires once a full pass changes nothing.
func anchorDepths(items []board.Item, idx *board.Index) map[string]int {
	anchors := board.Anchors(items)
	depth := make(map[string]int, len(anchors))
	for _, a := range anchors {
		depth[a.ID] = 0
	}

	for range items {
		changed := false
		for _, a := range anchors {
			for _, target := range idx.Outgoing(a.ID) {
				if _, ok := depth[target]; !ok {
					continue // idea or unknown, not part of the level graph
				}
				if d := depth[a.ID] + 1; d > depth[target] {
					depth[target] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return depth
}

// Structured groups anchors into dependency levels and lays the levels out
// along one axis: horizontal bands top to bottom (OrientRows, the default)
// or vertical columns left to right (OrientColumns). Levels are centered on
// the cross axis. Anchor placement uses no randomness, so repeated runs are
// identical.
func Structured(items []board.Item, boardW, boardH float64, opts ...Option) []board.Item {
	if len(items) == 0 {
		return nil
	}
	c := newConfig(opts)
	p := newPass(items, boardW, boardH, c)

	depth := anchorDepths(items, p.idx)

	// Group anchors by level, preserving board order within a level.
	levels := make(map[int][]board.Item)
	maxDepth := 0
	for _, a := range board.Anchors(items) {
		d := depth[a.ID]
		levels[d] = append(levels[d], a)
		if d > maxDepth {
			maxDepth = d
		}
	}

	var placed []board.Item
	if c.orientation == OrientColumns {
		placed = p.levelColumns(levels, maxDepth)
	} else {
		placed = p.levelRows(levels, maxDepth)
	}

	return passthroughOrphans(items, p.finalizeAttachments(placed))
}

// levelRows lays each level out as a horizontally centered band, stacked
// top to bottom starting below the title band.
func (p *pass) levelRows(levels map[int][]board.Item, maxDepth int) []board.Item {
	var placed []board.Item
	y := levelFloorY

	for d := 0; d <= maxDepth; d++ {
		row := levels[d]
		if len(row) == 0 {
			continue
		}

		total := 0.0
		height := 0.0
		for _, a := range row {
			cw, ch := clusterSize(a, p.attachedCount(a.ID))
			total += cw
			if ch > height {
				height = ch
			}
		}
		total += float64(len(row)-1) * organizedGapX

		x := clampLow((p.boardW-total)/2, levelFloorX)
		for _, a := range row {
			cw, _ := clusterSize(a, p.attachedCount(a.ID))
			it := a.Clone()
			it.X = x
			it.Y = y
			it.Rotation = 0
			placed = append(placed, it)
			x += cw + organizedGapX
		}

		y += height + levelGap
	}

	return placed
}

// levelColumns lays each level out as a vertically centered column, indexed
// left to right starting at the left margin.
func (p *pass) levelColumns(levels map[int][]board.Item, maxDepth int) []board.Item {
	var placed []board.Item
	x := levelFloorX

	for d := 0; d <= maxDepth; d++ {
		col := levels[d]
		if len(col) == 0 {
			continue
		}

		total := 0.0
		width := 0.0
		for _, a := range col {
			cw, ch := clusterSize(a, p.attachedCount(a.ID))
			total += ch
			if cw > width {
				width = cw
			}
		}
		total += float64(len(col)-1) * organizedGapY

		y := clampLow((p.boardH-total)/2, levelFloorY)
		for _, a := range col {
			_, ch := clusterSize(a, p.attachedCount(a.ID))
			it := a.Clone()
			it.X = x
			it.Y = y
			it.Rotation = 0
			placed = append(placed, it)
			y += ch + organizedGapY
		}

		x += width + levelGap
	}

	return placed
}

// clampLow bounds v from below.
func clampLow(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}
