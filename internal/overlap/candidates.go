// Package overlap finds which fragments sit next to one another.
//
// It works in two passes. FindCandidates makes a quick, loose guess
// using substring containment of each fragment's halves, and Confirm
// checks each guessed pair for an exact overlap that runs to the ends
// of both fragments, recording its length.
package overlap

import (
	"context"
	"sort"
	"strings"

	"github.com/jjtimmons/stitch/internal/frag"
)

// Candidates is an over-approximation of fragment adjacency.
// Left[a][b] means b may precede a, Right[a][b] means b may follow a.
// Every true neighbor is present, some false ones may be
type Candidates struct {
	Left  map[string]map[string]bool
	Right map[string]map[string]bool
}

// Pair is an ordered pair of fragment ids to compare
type Pair struct {
	ID    string
	Other string
}

// newCandidates returns an empty relation
func newCandidates() *Candidates {
	return &Candidates{
		Left:  make(map[string]map[string]bool),
		Right: make(map[string]map[string]bool),
	}
}

// add records that right may follow left
func (c *Candidates) add(left, right string) {
	if c.Right[left] == nil {
		c.Right[left] = make(map[string]bool)
	}
	if c.Left[right] == nil {
		c.Left[right] = make(map[string]bool)
	}
	c.Right[left][right] = true
	c.Left[right][left] = true
}

// Pairs returns each (id, other) where other is a left or right candidate
// of id. Pairs are sorted by id, then other
func (c *Candidates) Pairs() []Pair {
	seen := make(map[Pair]bool)
	for _, rel := range []map[string]map[string]bool{c.Left, c.Right} {
		for id, others := range rel {
			for other := range others {
				seen[Pair{ID: id, Other: other}] = true
			}
		}
	}

	pairs := make([]Pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ID != pairs[j].ID {
			return pairs[i].ID < pairs[j].ID
		}
		return pairs[i].Other < pairs[j].Other
	})
	return pairs
}

// halves splits a fragment at its midpoint. The first half runs
// through the middle symbol, the second half starts on it
func halves(f frag.Fragment) (first, second string) {
	n := f.Len()
	return f.Slice(0, n/2+1), f.Slice(n/2, n)
}

// FindCandidates proposes, for every fragment, the fragments that might
// attach to its left or right.
//
// If the first half of fragment a occurs anywhere in b, b may be to the
// left of a. If the second half of a occurs in b, b may be to its right
func FindCandidates(ctx context.Context, store *frag.Store, workers int) (*Candidates, error) {
	frags := store.Fragments()

	// per fragment: the ids that may precede and follow it
	type found struct {
		left, right []string
	}
	results := make([]found, len(frags))

	err := forEach(ctx, workers, len(frags), func(i int) error {
		f := frags[i]
		first, second := halves(f)

		for _, other := range frags {
			if other.ID == f.ID {
				continue
			}
			if strings.Contains(other.Seq, first) {
				results[i].left = append(results[i].left, other.ID)
			}
			if strings.Contains(other.Seq, second) {
				results[i].right = append(results[i].right, other.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := newCandidates()
	for i, f := range frags {
		for _, left := range results[i].left {
			c.add(left, f.ID)
		}
		for _, right := range results[i].right {
			c.add(f.ID, right)
		}
	}
	return c, nil
}
