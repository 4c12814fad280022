package layout

import (
	"math"

	"github.com/pinwall/pinwall/pkg/board"
)

// Placement engine constants.
const (
	// placePadding is the clearance required between placed cluster boxes.
	placePadding = 60.0

	// maxPlaceAttempts bounds the spiral search. Past this the preferred
	// point is used as-is; overlap under extreme density is an accepted
	// outcome, not an error.
	maxPlaceAttempts = 150

	// spiralAngleStep and spiralRadiusStep shape the outward search spiral.
	spiralAngleStep  = 0.6
	spiralRadiusStep = 40.0

	// edgeMargin keeps clusters away from the board edges during the
	// spiral search.
	edgeMargin = 100.0

	// placeRotation is the default rotation jitter for placed anchors,
	// in degrees.
	placeRotation = 4.0
)

// placeSmart positions an anchor near the preferred point, avoiding every
// box placed earlier in this pass.
//
// The search runs in three stages: the exact preferred point, then up to
// maxPlaceAttempts spiral candidates (angle i*spiralAngleStep, radius
// i*spiralRadiusStep, clamped inside the board margins), then the preferred
// point again as a forced fallback. The accepted cluster box is recorded so
// later placements in the same pass avoid it. The returned item carries the
// new position and a rotation jittered by ±rotJitter degrees.
func (p *pass) placeSmart(it board.Item, prefX, prefY, rotJitter float64) board.Item {
	cw, ch := clusterSize(it, p.attachedCount(it.ID))

	box := rect{x: prefX, y: prefY, w: cw, h: ch}
	if p.collides(box) {
		for i := 1; i <= maxPlaceAttempts; i++ {
			angle := float64(i) * spiralAngleStep
			radius := float64(i) * spiralRadiusStep
			cand := rect{
				x: p.clampX(prefX+math.Cos(angle)*radius, cw),
				y: p.clampY(prefY+math.Sin(angle)*radius, ch),
				w: cw,
				h: ch,
			}
			if !p.collides(cand) {
				box = cand
				break
			}
		}
	}

	p.placed = append(p.placed, box)

	it.X = box.x
	it.Y = box.y
	it.Rotation = p.jitter(rotJitter)
	return it
}

// collides reports whether the box overlaps any already-placed box with the
// standard padding.
func (p *pass) collides(box rect) bool {
	for _, other := range p.placed {
		if overlaps(box, other, placePadding) {
			return true
		}
	}
	return false
}

func (p *pass) clampX(x, clusterW float64) float64 {
	return clamp(x, edgeMargin, p.boardW-clusterW-edgeMargin)
}

func (p *pass) clampY(y, clusterH float64) float64 {
	return clamp(y, edgeMargin, p.boardH-clusterH-edgeMargin)
}

// clamp bounds v to [lo, hi]. A cluster larger than the board flips the
// bounds; lo wins so positions stay finite.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
