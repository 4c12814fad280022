package board

import (
	"slices"

	"github.com/google/uuid"
)

// Kind identifies the type of a board item. Objectives, tasks, and goals are
// anchor items that can own attached ideas; ideas are satellites that always
// hang beneath exactly one anchor.
type Kind string

// Item kinds.
const (
	KindObjective Kind = "objective"
	KindTask      Kind = "task"
	KindGoal      Kind = "goal"
	KindIdea      Kind = "idea"
)

// Default bounding box for unrecognized kinds. Boards written by older or
// foreign tools may contain kind strings we don't know about; layout must
// still produce a usable position for them.
const (
	DefaultWidth  = 200.0
	DefaultHeight = 200.0
)

// dims is the fixed per-kind bounding box lookup.
var dims = map[Kind][2]float64{
	KindObjective: {260, 160},
	KindTask:      {220, 140},
	KindGoal:      {240, 150},
	KindIdea:      {180, 120},
}

// Dimensions returns the fixed (width, height) for a kind.
// Unknown kinds fall back to DefaultWidth×DefaultHeight.
func Dimensions(k Kind) (w, h float64) {
	if d, ok := dims[k]; ok {
		return d[0], d[1]
	}
	return DefaultWidth, DefaultHeight
}

// IsAnchor reports whether the kind is a placement anchor (anything except
// an idea). Anchors own attached ideas and are positioned directly by the
// layout strategies; ideas are positioned relative to their anchor.
func (k Kind) IsAnchor() bool { return k != KindIdea }

// Connection is a directed string from the containing item to another item.
// The Type tag and Seq ordering are cosmetic concerns of the canvas; layout
// only follows TargetID.
type Connection struct {
	ID       string `json:"id"`
	TargetID string `json:"targetId"`
	Type     string `json:"type,omitempty"`
	Seq      int    `json:"seq,omitempty"`
}

// Item is a single sticky note on the board. X and Y are the top-left corner
// in board units. Rotation is cosmetic jitter in degrees; layout randomizes
// it but never reads it.
type Item struct {
	ID          string       `json:"id"`
	Kind        Kind         `json:"kind"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Rotation    float64      `json:"rotation,omitempty"`
	Label       string       `json:"label,omitempty"`
	Connections []Connection `json:"connections,omitempty"`
}

// NewItem creates an item of the given kind with a fresh unique ID.
func NewItem(kind Kind, label string) Item {
	return Item{
		ID:    uuid.NewString(),
		Kind:  kind,
		Label: label,
	}
}

// Size returns the item's fixed bounding box.
func (it Item) Size() (w, h float64) { return Dimensions(it.Kind) }

// Clone returns a deep copy of the item, including its connection list.
func (it Item) Clone() Item {
	out := it
	out.Connections = slices.Clone(it.Connections)
	return out
}

// Connect appends a directed connection to the target item and returns the
// new connection. Seq is set to the next position in the list.
func (it *Item) Connect(targetID, connType string) Connection {
	c := Connection{
		ID:       uuid.NewString(),
		TargetID: targetID,
		Type:     connType,
		Seq:      len(it.Connections),
	}
	it.Connections = append(it.Connections, c)
	return c
}

// Board is the canonical persisted form of a planning board: a title, a
// cosmetic theme, the canvas dimensions, and the items pinned to it.
type Board struct {
	Title  string  `json:"title"`
	Theme  string  `json:"theme,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Items  []Item  `json:"items"`
}

// CloneItems returns a deep copy of the board's item slice.
// Layout strategies operate on copies so the caller's board is never
// mutated in place.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Anchors returns the items whose kind is an anchor, in board order.
func Anchors(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.Kind.IsAnchor() {
			out = append(out, it)
		}
	}
	return out
}

// Ideas returns the idea items, in board order.
func Ideas(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if !it.Kind.IsAnchor() {
			out = append(out, it)
		}
	}
	return out
}

// ItemByID returns the item with the given ID and true, or the zero item
// and false if no item matches.
func ItemByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
