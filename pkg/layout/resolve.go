package layout

import (
	"slices"

	"github.com/pinwall/pinwall/pkg/board"
)

// Attachments maps each anchor item ID to the idea IDs that belong to it,
// in discovery order.
type Attachments map[string][]string

// anchorPriority orders anchor kinds for the resolver's BFS seeding.
// The seed order decides which anchor wins an idea that is reachable from
// several anchors, so it is fixed: tasks first, then objectives, then goals,
// then any other kind.
func anchorPriority(k board.Kind) int {
	switch k {
	case board.KindTask:
		return 0
	case board.KindObjective:
		return 1
	case board.KindGoal:
		return 2
	default:
		return 3
	}
}

// ResolveAttachments assigns every reachable idea to exactly one anchor by
// breadth-first expansion over the connection graph, following edges in both
// directions. Each idea is claimed by the first anchor whose traversal
// reaches it; idea-to-idea chains attach transitively to the same root
// anchor. Ideas with no path to any anchor are left unassigned.
//
// Every anchor gets an entry in the result, even when its list is empty.
// Dangling connection targets are skipped.
func ResolveAttachments(items []board.Item) Attachments {
	idx := board.NewIndex(items)
	return resolveAttachments(items, idx)
}

func resolveAttachments(items []board.Item, idx *board.Index) Attachments {
	attach := Attachments{}

	anchors := board.Anchors(items)
	slices.SortStableFunc(anchors, func(a, b board.Item) int {
		return anchorPriority(a.Kind) - anchorPriority(b.Kind)
	})

	queue := make([]string, 0, len(anchors))
	for _, a := range anchors {
		attach[a.ID] = nil
		queue = append(queue, a.ID)
	}

	// owner maps an assigned idea back to its root anchor so chains keep
	// attaching to the anchor that first reached them.
	owner := make(map[string]string)
	visited := make(map[string]bool)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		root := curr
		if o, ok := owner[curr]; ok {
			root = o
		}

		for _, nb := range idx.Neighbors(curr) {
			if visited[nb] {
				continue
			}
			it, ok := idx.Item(nb)
			if !ok || it.Kind.IsAnchor() {
				continue
			}
			visited[nb] = true
			owner[nb] = root
			attach[root] = append(attach[root], nb)
			queue = append(queue, nb)
		}
	}

	return attach
}
