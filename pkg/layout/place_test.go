package layout

import (
	"testing"

	"github.com/pinwall/pinwall/pkg/board"
)

func testPass(items []board.Item, boardW, boardH float64) *pass {
	return newPass(items, boardW, boardH, newConfig([]Option{WithSeed(1)}))
}

func TestPlaceSmartAcceptsPreferredPoint(t *testing.T) {
	it := anchor("A", board.KindTask)
	p := testPass([]board.Item{it}, 3000, 2000)

	got := p.placeSmart(it, 500, 600, placeRotation)
	if got.X != 500 || got.Y != 600 {
		t.Errorf("position = (%v, %v), want (500, 600)", got.X, got.Y)
	}
	if len(p.placed) != 1 {
		t.Errorf("placed boxes = %d, want 1", len(p.placed))
	}
	if got.Rotation < -placeRotation || got.Rotation > placeRotation {
		t.Errorf("rotation = %v, want within ±%v", got.Rotation, placeRotation)
	}
}

func TestPlaceSmartAvoidsOccupiedSlot(t *testing.T) {
	a := anchor("A", board.KindTask)
	b := anchor("B", board.KindTask)
	p := testPass([]board.Item{a, b}, 6000, 4000)

	first := p.placeSmart(a, 2000, 1500, placeRotation)
	second := p.placeSmart(b, 2000, 1500, placeRotation)

	if second.X == first.X && second.Y == first.Y {
		t.Fatal("second placement landed exactly on the first")
	}

	cw, ch := clusterSize(a, 0)
	boxA := rect{x: first.X, y: first.Y, w: cw, h: ch}
	boxB := rect{x: second.X, y: second.Y, w: cw, h: ch}
	if overlaps(boxA, boxB, placePadding) {
		t.Errorf("placements overlap: %+v vs %+v", boxA, boxB)
	}
}

func TestPlaceSmartDenseFallback(t *testing.T) {
	// A board barely larger than one cluster forces the attempt budget to
	// run out; the placer must fall back to the preferred point instead of
	// failing or looping.
	it := anchor("A", board.KindTask)
	items := []board.Item{it}
	p := testPass(items, 300, 300)

	// Occupy the whole usable area.
	p.placed = append(p.placed, rect{x: 0, y: 0, w: 300, h: 300})

	got := p.placeSmart(it, 50, 50, placeRotation)
	if got.X != 50 || got.Y != 50 {
		t.Errorf("fallback position = (%v, %v), want preferred (50, 50)", got.X, got.Y)
	}
}

func TestPlaceSmartStaysInsideMargins(t *testing.T) {
	// Preferred point far outside the board: every spiral candidate is
	// clamped, so an accepted candidate must respect the margins.
	blocker := anchor("X", board.KindTask)
	it := anchor("A", board.KindTask)
	p := testPass([]board.Item{blocker, it}, 3000, 2000)

	// Force the spiral by occupying the preferred point.
	p.placeSmart(blocker, 2800, 1900, placeRotation)
	got := p.placeSmart(it, 2800, 1900, placeRotation)

	cw, ch := clusterSize(it, 0)
	if got.X < edgeMargin || got.X > 3000-cw-edgeMargin {
		t.Errorf("x = %v outside [%v, %v]", got.X, edgeMargin, 3000-cw-edgeMargin)
	}
	if got.Y < edgeMargin || got.Y > 2000-ch-edgeMargin {
		t.Errorf("y = %v outside [%v, %v]", got.Y, edgeMargin, 2000-ch-edgeMargin)
	}
}
