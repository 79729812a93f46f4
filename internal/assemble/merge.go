package assemble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/jjtimmons/stitch/internal/overlap"
)

// ErrOverlapConsistency is when a chain joins two fragments that have no
// confirmed overlap. It means a bug in the chain or overlap stages, not bad input
var ErrOverlapConsistency = errors.New("chain and overlaps disagree")

// OverlapError names the two fragments of a chain that have no overlap
type OverlapError struct {
	Left  string
	Right string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: no confirmed overlap between %q and %q", ErrOverlapConsistency, e.Left, e.Right)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlapConsistency
}

// Junction is a fragment in the assembly and how many of its leading
// symbols are shared with the fragment before it
type Junction struct {
	ID      string `json:"id" yaml:"id"`
	Overlap int    `json:"overlap" yaml:"overlap"`
}

// Merge joins the fragments of the chain left to right, dropping the
// leading symbols of each fragment that overlap the one before it
func Merge(store *frag.Store, g *overlap.Graph, ids []string) (string, []Junction, error) {
	if len(ids) == 0 {
		return "", nil, fmt.Errorf("%w: empty chain", ErrOverlapConsistency)
	}

	first, ok := store.Get(ids[0])
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown fragment %q", ErrOverlapConsistency, ids[0])
	}

	var seq strings.Builder
	seq.WriteString(first.Seq)
	junctions := []Junction{{ID: first.ID}}

	for i := 1; i < len(ids); i++ {
		prev, cur := ids[i-1], ids[i]

		f, ok := store.Get(cur)
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown fragment %q", ErrOverlapConsistency, cur)
		}

		k, ok := g.Overlap(prev, cur)
		if !ok || k > f.Len() {
			return "", nil, &OverlapError{Left: prev, Right: cur}
		}

		seq.WriteString(f.Slice(k, f.Len()))
		junctions = append(junctions, Junction{ID: cur, Overlap: k})
	}

	return seq.String(), junctions, nil
}
