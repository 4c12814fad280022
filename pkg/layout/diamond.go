package layout

import (
	"math"

	"github.com/pinwall/pinwall/pkg/board"
)

// Diamond layout constants.
const (
	// ringCapacityStep is how many extra slots each ring adds: ring n holds
	// n*ringCapacityStep items.
	ringCapacityStep = 5

	// ringRadiusStep is the radius increase per ring.
	ringRadiusStep = 800.0
)

// Diamond places the most-connected anchor near the board center and
// distributes the remaining anchors in concentric rings around it. Hub
// selection counts only anchor-to-anchor connections, so a note buried in
// ideas doesn't outrank a genuinely central one. Every position goes through
// the spiral placer, so rings spread apart under collision pressure.
func Diamond(items []board.Item, boardW, boardH float64, opts ...Option) []board.Item {
	if len(items) == 0 {
		return nil
	}
	p := newPass(items, boardW, boardH, newConfig(opts))

	anchors := board.Anchors(items)
	if len(anchors) == 0 {
		return passthroughOrphans(items, nil)
	}

	// Hub: highest anchor-to-anchor degree, first in board order on ties.
	hub := 0
	for i := 1; i < len(anchors); i++ {
		if p.idx.AnchorDegree(anchors[i].ID) > p.idx.AnchorDegree(anchors[hub].ID) {
			hub = i
		}
	}

	centerX := boardW / 2
	centerY := boardH / 2

	placed := make([]board.Item, 0, len(anchors))

	hw, hh := clusterSize(anchors[hub], p.attachedCount(anchors[hub].ID))
	placed = append(placed, p.placeSmart(anchors[hub].Clone(), centerX-hw/2, centerY-hh/2, placeRotation))

	ring, inRing, capacity := 1, 0, ringCapacityStep
	for i, a := range anchors {
		if i == hub {
			continue
		}
		angle := float64(inRing) / float64(capacity) * 2 * math.Pi
		radius := float64(ring) * ringRadiusStep

		cw, ch := clusterSize(a, p.attachedCount(a.ID))
		prefX := centerX + math.Cos(angle)*radius - cw/2
		prefY := centerY + math.Sin(angle)*radius - ch/2
		placed = append(placed, p.placeSmart(a.Clone(), prefX, prefY, placeRotation))

		inRing++
		if inRing == capacity {
			ring++
			inRing = 0
			capacity = ring * ringCapacityStep
		}
	}

	return passthroughOrphans(items, p.finalizeAttachments(placed))
}
