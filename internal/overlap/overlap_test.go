package overlap

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// the four reads of ATTAGACCTGCCGGAATAC
func sampleStore(t *testing.T) *frag.Store {
	t.Helper()

	store, err := frag.NewStore([]frag.Fragment{
		{ID: "Frag_56", Seq: "ATTAGACCTG"},
		{ID: "Frag_57", Seq: "CCTGCCGGAA"},
		{ID: "Frag_58", Seq: "AGACCTGCCG"},
		{ID: "Frag_59", Seq: "GCCGGAATAC"},
	})
	require.NoError(t, err)
	return store
}

func TestFindCandidates(t *testing.T) {
	for _, workers := range []int{1, 4} {
		got, err := FindCandidates(context.Background(), sampleStore(t), workers)
		require.NoError(t, err)

		wantLeft := map[string]map[string]bool{
			"Frag_58": {"Frag_56": true},
			"Frag_57": {"Frag_58": true},
			"Frag_59": {"Frag_57": true},
		}
		wantRight := map[string]map[string]bool{
			"Frag_56": {"Frag_58": true},
			"Frag_58": {"Frag_57": true},
			"Frag_57": {"Frag_59": true},
		}
		if diff := cmp.Diff(wantLeft, got.Left); diff != "" {
			t.Errorf("FindCandidates(workers=%d).Left mismatch (-want +got):\n%s", workers, diff)
		}
		if diff := cmp.Diff(wantRight, got.Right); diff != "" {
			t.Errorf("FindCandidates(workers=%d).Right mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

// containment anywhere in the other fragment is enough to be a candidate
func TestFindCandidates_unanchored(t *testing.T) {
	store, err := frag.NewStore([]frag.Fragment{
		{ID: "a", Seq: "GGACGTACC"},
		{ID: "b", Seq: "TTGGACGTT"},
	})
	require.NoError(t, err)

	c, err := FindCandidates(context.Background(), store, 2)
	require.NoError(t, err)
	assert.True(t, c.Left["a"]["b"])
	assert.True(t, c.Right["b"]["a"])

	g, err := Confirm(context.Background(), store, c, 2)
	require.NoError(t, err)
	assert.Empty(t, g.Edges(), "an overlap that doesn't reach b's end isn't confirmed")
}

func TestCandidates_Pairs(t *testing.T) {
	c := newCandidates()
	c.add("b", "a")
	c.add("a", "c")

	want := []Pair{
		{ID: "a", Other: "b"},
		{ID: "a", Other: "c"},
		{ID: "b", Other: "a"},
		{ID: "c", Other: "a"},
	}
	assert.Equal(t, want, c.Pairs())
}

func Test_confirmPair(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want junction
	}{
		{
			"b follows a",
			"ATTAGACCTG",
			"AGACCTGCCG",
			junction{right: 7},
		},
		{
			"b precedes a",
			"AGACCTGCCG",
			"ATTAGACCTG",
			junction{left: 7},
		},
		{
			"overlap too short",
			"ATTAGACC",
			"ACCTGCCGGA",
			junction{},
		},
		{
			"match doesn't reach a boundary",
			"GGACGTACC",
			"TTGGACGTT",
			junction{},
		},
		{
			"identical sequences overlap both ways",
			"ACGTACGT",
			"ACGTACGT",
			junction{left: 8, right: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := frag.Fragment{Seq: tt.a}
			b := frag.Fragment{Seq: tt.b}
			assert.Equal(t, tt.want, confirmPair(a.Symbols(), b.Symbols()))
		})
	}
}

func TestConfirm(t *testing.T) {
	store := sampleStore(t)
	c, err := FindCandidates(context.Background(), store, 3)
	require.NoError(t, err)

	g, err := Confirm(context.Background(), store, c, 3)
	require.NoError(t, err)

	want := []Edge{
		{Left: "Frag_56", Right: "Frag_58", Overlap: 7},
		{Left: "Frag_57", Right: "Frag_59", Overlap: 7},
		{Left: "Frag_58", Right: "Frag_57", Overlap: 7},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Confirm() edges mismatch (-want +got):\n%s", diff)
	}

	k, ok := g.Overlap("Frag_58", "Frag_57")
	assert.True(t, ok)
	assert.Equal(t, 7, k)
	assert.Equal(t, 7, g.Left["Frag_57"]["Frag_58"])

	_, ok = g.Overlap("Frag_57", "Frag_58")
	assert.False(t, ok)
}

// every confirmed overlap is longer than half the shorter fragment
// and no longer than either fragment
func TestConfirm_overlapBounds(t *testing.T) {
	store, err := frag.NewStore([]frag.Fragment{
		{ID: "frag_0", Seq: "ATAGAT"},
		{ID: "frag_1", Seq: "AGATAG"},
		{ID: "frag_2", Seq: "ATAGAG"},
		{ID: "frag_3", Seq: "AGAGAG"},
		{ID: "frag_4", Seq: "GAGAGA"},
		{ID: "frag_5", Seq: "GAGACTTCA"},
	})
	require.NoError(t, err)

	c, err := FindCandidates(context.Background(), store, 2)
	require.NoError(t, err)
	g, err := Confirm(context.Background(), store, c, 2)
	require.NoError(t, err)
	require.NotEmpty(t, g.Edges())

	for _, e := range g.Edges() {
		left, _ := store.Get(e.Left)
		right, _ := store.Get(e.Right)
		shorter := left.Len()
		if right.Len() < shorter {
			shorter = right.Len()
		}

		assert.Greater(t, 2*e.Overlap, shorter, "edge %v", e)
		assert.LessOrEqual(t, e.Overlap, shorter, "edge %v", e)
		assert.Equal(t, left.Slice(left.Len()-e.Overlap, left.Len()), right.Slice(0, e.Overlap), "edge %v", e)
		assert.True(t, c.Right[e.Left][e.Right], "confirmed edge %v isn't a candidate", e)
	}
}

func TestGraph_Add(t *testing.T) {
	g := NewGraph()
	g.Add("a", "b", 4)
	g.Add("a", "b", 6)
	g.Add("a", "b", 5)

	k, ok := g.Overlap("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 6, k, "the longest overlap is kept")
	assert.Equal(t, 6, g.Left["b"]["a"])
}

func TestConfirm_canceled(t *testing.T) {
	store := sampleStore(t)
	c, err := FindCandidates(context.Background(), store, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Confirm(ctx, store, c, 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = FindCandidates(ctx, store, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
