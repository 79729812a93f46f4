// Package frag is for the models and io of Fragments.
// The input reads and the assembled sequence are all Fragments
package frag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// ErrMalformedInput is returned when a set of fragments can't be assembled
// before any overlaps are looked at: duplicate ids, empty sequences or too
// few fragments
var ErrMalformedInput = errors.New("malformed input")

// Fragment is a single named piece of the sequence being reassembled
type Fragment struct {
	// ID is a unique identifier for this fragment
	ID string `json:"id" yaml:"id"`

	// the fragment's sequence
	Seq string `json:"seq" yaml:"seq"`
}

// Len returns the number of symbols (runes) in the fragment's sequence
func (f Fragment) Len() int {
	return utf8.RuneCountInString(f.Seq)
}

// Symbols splits the sequence into its symbols, one string per rune
func (f Fragment) Symbols() []string {
	return strings.Split(f.Seq, "")
}

// Slice returns the symbols of Seq in [start, end)
func (f Fragment) Slice(start, end int) string {
	i, from, to := 0, len(f.Seq), len(f.Seq)
	for byteIndex := range f.Seq {
		if i == start {
			from = byteIndex
		}
		if i == end {
			to = byteIndex
			break
		}
		i++
	}
	if from > to {
		return ""
	}
	return f.Seq[from:to]
}

// Store is an immutable set of fragments keyed by their ID.
// IDs are kept sorted so every pass over the store is deterministic
type Store struct {
	ids   []string
	frags map[string]Fragment
}

// NewStore validates the fragments and returns a store of them.
// Every problem with the input is reported, not just the first
func NewStore(frags []Fragment) (*Store, error) {
	var errs error

	if len(frags) < 2 {
		errs = multierr.Append(errs, fmt.Errorf("need at least 2 fragments, got %d", len(frags)))
	}

	s := &Store{frags: make(map[string]Fragment, len(frags))}
	for i, f := range frags {
		if f.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("fragment %d has no id", i))
			continue
		}
		if _, dup := s.frags[f.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate fragment id %q", f.ID))
			continue
		}
		if f.Seq == "" {
			errs = multierr.Append(errs, fmt.Errorf("fragment %q has an empty sequence", f.ID))
		}

		s.frags[f.ID] = f
		s.ids = append(s.ids, f.ID)
	}

	if errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, errs)
	}

	sort.Strings(s.ids)
	return s, nil
}

// IDs returns the sorted fragment ids
func (s *Store) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Len is the number of fragments in the store
func (s *Store) Len() int {
	return len(s.ids)
}

// Get returns the fragment with the passed id
func (s *Store) Get(id string) (Fragment, bool) {
	f, ok := s.frags[id]
	return f, ok
}

// Fragments returns the fragments in id order
func (s *Store) Fragments() []Fragment {
	frags := make([]Fragment, 0, len(s.ids))
	for _, id := range s.ids {
		frags = append(frags, s.frags[id])
	}
	return frags
}
