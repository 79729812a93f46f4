// Package chain orders fragments into the single linear chain that
// their confirmed overlaps describe
package chain

import "sort"

// maxPaths caps the entries in one extension arena. Dense graphs, like
// many copies of a repeat, have factorially many simple paths; past the
// cap the extension gives up and reports no chain
var maxPaths = 1 << 20

// step is one entry in an extension arena: the path that reaches id
// through the entry at parent
type step struct {
	id     string
	parent int
	depth  int
}

// arena holds every distinct path found during an extension. An entry's
// path is the chain of parents back to the start
type arena []step

// path returns the ids from the start through entry i
func (a arena) path(i int) []string {
	ids := make([]string, a[i].depth)
	for ; i >= 0; i = a[i].parent {
		ids[a[i].depth-1] = a[i].id
	}
	return ids
}

// visits reports whether id is already on the path ending at entry i
func (a arena) visits(i int, id string) bool {
	for ; i >= 0; i = a[i].parent {
		if a[i].id == id {
			return true
		}
	}
	return false
}

// extend grows paths from start, one edge per round, for exactly n-1
// rounds and returns the first path that visits n distinct ids.
//
// next is the adjacency to follow (confirmed right neighbors to grow
// left to right, left neighbors to grow right to left). Extensions
// back onto a path's own ids are dropped, so cycles can't loop and the
// round count bounds the work even on a malformed graph. An extension
// that would hold more than maxPaths paths returns nil
func extend(start string, next map[string]map[string]int, n int) []string {
	a := arena{{id: start, parent: -1, depth: 1}}
	frontier := []int{0}

	for round := 0; round < n-1 && len(frontier) > 0; round++ {
		var grown []int
		for _, i := range frontier {
			for _, id := range sortedKeys(next[a[i].id]) {
				if a.visits(i, id) {
					continue
				}
				if len(a) >= maxPaths {
					return nil
				}
				a = append(a, step{id: id, parent: i, depth: a[i].depth + 1})
				grown = append(grown, len(a)-1)
			}
		}
		frontier = grown
	}

	// first full-length path by ending id, then by when it was found
	best := -1
	for _, i := range frontier {
		if a[i].depth != n || !distinct(a.path(i)) {
			continue
		}
		if best < 0 || a[i].id < a[best].id {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return a.path(best)
}

// distinct reports whether no id appears twice
func distinct(ids []string) bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
