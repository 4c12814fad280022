package board

// Index is an adjacency view over a board's connection graph, built once and
// queried by layout algorithms. Edges whose target does not exist on the
// board are dropped at build time, so traversals never have to re-check
// item existence.
//
// The zero value is not usable - use NewIndex. Index is a snapshot: it does
// not track later changes to the item slice it was built from.
type Index struct {
	items    map[string]Item
	outgoing map[string][]string // itemID -> connection targets
	incoming map[string][]string // itemID -> items that connect to it
}

// NewIndex builds an adjacency index from the given items.
// Duplicate edges between the same pair are kept (they count toward degree,
// matching how densely strung notes read on the canvas).
func NewIndex(items []Item) *Index {
	idx := &Index{
		items:    make(map[string]Item, len(items)),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
	for _, it := range items {
		idx.items[it.ID] = it
	}
	for _, it := range items {
		for _, c := range it.Connections {
			if _, ok := idx.items[c.TargetID]; !ok {
				continue // dangling target, skip
			}
			idx.outgoing[it.ID] = append(idx.outgoing[it.ID], c.TargetID)
			idx.incoming[c.TargetID] = append(idx.incoming[c.TargetID], it.ID)
		}
	}
	return idx
}

// Item returns the indexed item with the given ID and true, or the zero
// item and false if not found.
func (idx *Index) Item(id string) (Item, bool) {
	it, ok := idx.items[id]
	return it, ok
}

// Outgoing returns the IDs this item connects to, in connection order.
// The returned slice should not be modified.
func (idx *Index) Outgoing(id string) []string { return idx.outgoing[id] }

// Incoming returns the IDs of items that connect to this item.
// The returned slice should not be modified.
func (idx *Index) Incoming(id string) []string { return idx.incoming[id] }

// Degree returns the total connection count (outgoing + incoming) for the
// item. Returns 0 for unknown IDs.
func (idx *Index) Degree(id string) int {
	return len(idx.outgoing[id]) + len(idx.incoming[id])
}

// AnchorDegree returns the connection count restricted to edges whose other
// endpoint is an anchor item. This is the hub-selection metric for radial
// layouts: ideas clustered around a note shouldn't make it the hub.
func (idx *Index) AnchorDegree(id string) int {
	n := 0
	for _, t := range idx.outgoing[id] {
		if idx.items[t].Kind.IsAnchor() {
			n++
		}
	}
	for _, s := range idx.incoming[id] {
		if idx.items[s].Kind.IsAnchor() {
			n++
		}
	}
	return n
}

// Neighbors returns the union of outgoing and incoming IDs for the item,
// outgoing first. The result is a fresh slice and may contain duplicates if
// two items connect in both directions.
func (idx *Index) Neighbors(id string) []string {
	out := idx.outgoing[id]
	in := idx.incoming[id]
	result := make([]string, 0, len(out)+len(in))
	result = append(result, out...)
	result = append(result, in...)
	return result
}
