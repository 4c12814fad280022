package board

import (
	"slices"
	"testing"
)

func indexFixture() []Item {
	return []Item{
		{ID: "a", Kind: KindObjective, Connections: []Connection{
			{ID: "c1", TargetID: "b"},
			{ID: "c2", TargetID: "i"},
			{ID: "c3", TargetID: "ghost"}, // dangling
		}},
		{ID: "b", Kind: KindTask, Connections: []Connection{
			{ID: "c4", TargetID: "i"},
		}},
		{ID: "i", Kind: KindIdea},
	}
}

func TestIndexAdjacency(t *testing.T) {
	idx := NewIndex(indexFixture())

	if got := idx.Outgoing("a"); !slices.Equal(got, []string{"b", "i"}) {
		t.Errorf("Outgoing(a) = %v, want [b i]", got)
	}
	if got := idx.Incoming("i"); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Incoming(i) = %v, want [a b]", got)
	}
	if got := idx.Outgoing("i"); len(got) != 0 {
		t.Errorf("Outgoing(i) = %v, want empty", got)
	}
}

func TestIndexDanglingEdgesDropped(t *testing.T) {
	idx := NewIndex(indexFixture())

	for _, target := range idx.Outgoing("a") {
		if target == "ghost" {
			t.Error("dangling edge survived indexing")
		}
	}
	if idx.Degree("ghost") != 0 {
		t.Errorf("Degree(ghost) = %d, want 0", idx.Degree("ghost"))
	}
}

func TestIndexDegree(t *testing.T) {
	idx := NewIndex(indexFixture())

	tests := []struct {
		id   string
		want int
	}{
		{"a", 2}, // b and i (ghost dropped)
		{"b", 2}, // out to i, in from a
		{"i", 2}, // in from a and b
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := idx.Degree(tt.id); got != tt.want {
			t.Errorf("Degree(%s) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestIndexAnchorDegree(t *testing.T) {
	idx := NewIndex(indexFixture())

	// a: edge to task b counts, edge to idea i does not.
	if got := idx.AnchorDegree("a"); got != 1 {
		t.Errorf("AnchorDegree(a) = %d, want 1", got)
	}
	// b: incoming from a counts, outgoing to idea i does not.
	if got := idx.AnchorDegree("b"); got != 1 {
		t.Errorf("AnchorDegree(b) = %d, want 1", got)
	}
	// i: both endpoints are anchors from the idea's point of view.
	if got := idx.AnchorDegree("i"); got != 2 {
		t.Errorf("AnchorDegree(i) = %d, want 2", got)
	}
}

func TestIndexNeighbors(t *testing.T) {
	idx := NewIndex(indexFixture())

	if got := idx.Neighbors("b"); !slices.Equal(got, []string{"i", "a"}) {
		t.Errorf("Neighbors(b) = %v, want [i a]", got)
	}

	// The result is a fresh slice: mutating it must not corrupt the index.
	n := idx.Neighbors("b")
	if len(n) > 0 {
		n[0] = "mutated"
	}
	if got := idx.Outgoing("b"); !slices.Equal(got, []string{"i"}) {
		t.Errorf("Outgoing(b) after mutation = %v, want [i]", got)
	}
}

func TestIndexItem(t *testing.T) {
	idx := NewIndex(indexFixture())

	if it, ok := idx.Item("b"); !ok || it.Kind != KindTask {
		t.Errorf("Item(b) = %+v, %v", it, ok)
	}
	if _, ok := idx.Item("nope"); ok {
		t.Error("Item found a missing ID")
	}
}

func TestIndexDuplicateEdgesKept(t *testing.T) {
	items := []Item{
		{ID: "a", Kind: KindTask, Connections: []Connection{
			{ID: "c1", TargetID: "b"},
			{ID: "c2", TargetID: "b"},
		}},
		{ID: "b", Kind: KindTask},
	}
	idx := NewIndex(items)

	if got := idx.Degree("a"); got != 2 {
		t.Errorf("Degree(a) = %d, want 2", got)
	}
	if got := idx.AnchorDegree("b"); got != 2 {
		t.Errorf("AnchorDegree(b) = %d, want 2", got)
	}
}
