package overlap

import (
	"context"
	"sort"

	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/pmezard/go-difflib/difflib"
)

// Graph is the confirmed adjacency between fragments.
// Right[a][b] = k means the last k symbols of a are the first k of b.
// Left is the inverse, Left[b][a] = k
type Graph struct {
	Left  map[string]map[string]int
	Right map[string]map[string]int
}

// Edge is a single confirmed overlap, Left is to the left of Right
type Edge struct {
	Left    string `json:"left" yaml:"left"`
	Right   string `json:"right" yaml:"right"`
	Overlap int    `json:"overlap" yaml:"overlap"`
}

// NewGraph returns an empty graph
func NewGraph() *Graph {
	return &Graph{
		Left:  make(map[string]map[string]int),
		Right: make(map[string]map[string]int),
	}
}

// Add confirms that right follows left with an overlap of k symbols.
// If the edge exists already, the longer overlap is kept
func (g *Graph) Add(left, right string, k int) {
	if existing, ok := g.Right[left][right]; ok && existing >= k {
		return
	}

	if g.Right[left] == nil {
		g.Right[left] = make(map[string]int)
	}
	if g.Left[right] == nil {
		g.Left[right] = make(map[string]int)
	}
	g.Right[left][right] = k
	g.Left[right][left] = k
}

// Overlap returns the number of symbols that left and right share
// at their junction
func (g *Graph) Overlap(left, right string) (int, bool) {
	k, ok := g.Right[left][right]
	return k, ok
}

// Edges returns every confirmed edge, sorted by left then right id
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for left, rights := range g.Right {
		for right, k := range rights {
			edges = append(edges, Edge{Left: left, Right: right, Overlap: k})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Left != edges[j].Left {
			return edges[i].Left < edges[j].Left
		}
		return edges[i].Right < edges[j].Right
	})
	return edges
}

// Confirm checks each candidate pair for an exact overlap that reaches the
// boundary of both fragments and returns the confirmed graph.
//
// For a pair (a, b) the maximal matching blocks between the two sequences
// are computed. A block longer than half of a that starts a and ends b puts
// b to the left of a. One that starts b and ends a puts b to its right
func Confirm(ctx context.Context, store *frag.Store, candidates *Candidates, workers int) (*Graph, error) {
	symbols := make(map[string][]string, store.Len())
	for _, f := range store.Fragments() {
		symbols[f.ID] = f.Symbols()
	}

	pairs := candidates.Pairs()
	results := make([]junction, len(pairs))

	err := forEach(ctx, workers, len(pairs), func(i int) error {
		p := pairs[i]
		results[i] = confirmPair(symbols[p.ID], symbols[p.Other])
		return nil
	})
	if err != nil {
		return nil, err
	}

	g := NewGraph()
	for i, p := range pairs {
		if k := results[i].left; k > 0 {
			g.Add(p.Other, p.ID, k)
		}
		if k := results[i].right; k > 0 {
			g.Add(p.ID, p.Other, k)
		}
	}
	return g, nil
}

// junction is the confirmed overlap of another fragment on either side
// of a fragment. Zero means no overlap on that side
type junction struct {
	left  int
	right int
}

// confirmPair finds the overlaps of b to the left and right of a.
// When more than one matching block qualifies for a side, the longest wins
func confirmPair(a, b []string) junction {
	var j junction

	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)
	for _, m := range matcher.GetMatchingBlocks() {
		if m.Size <= len(a)/2 {
			continue
		}

		// a's start matches b's end
		if m.A == 0 && m.B+m.Size == len(b) && m.Size > j.left {
			j.left = m.Size
		}

		// b's start matches a's end
		if m.B == 0 && m.A+m.Size == len(a) && m.Size > j.right {
			j.right = m.Size
		}
	}
	return j
}
