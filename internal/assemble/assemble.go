// Package assemble rebuilds a sequence from its overlapping fragments
package assemble

import (
	"context"
	"time"

	"github.com/jjtimmons/stitch/config"
	"github.com/jjtimmons/stitch/internal/chain"
	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/jjtimmons/stitch/internal/overlap"
	"go.uber.org/zap"
)

// Result is a single assembled sequence and how it was built
type Result struct {
	// Name of the assembled record
	Name string `json:"name" yaml:"name"`

	// Seq is the merged sequence
	Seq string `json:"seq" yaml:"seq"`

	// Length of Seq in symbols
	Length int `json:"length" yaml:"length"`

	// Strategy that ordered the fragments
	Strategy string `json:"strategy" yaml:"strategy"`

	// Fragments in assembly order with their overlap on the previous fragment
	Fragments []Junction `json:"fragments" yaml:"fragments"`
}

// Assemble the fragments into the one sequence their overlaps describe
//
// First find candidate neighbors for each fragment using a loose substring
// check, then confirm the candidates with exact, end-anchored matching.
// Then order the fragments into a chain with the confirmed overlaps and
// merge them, trimming each overlap
func Assemble(ctx context.Context, frags []frag.Fragment, conf *config.Config, logger *zap.Logger) (*Result, error) {
	if conf == nil {
		conf = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store, g, err := overlaps(ctx, frags, conf, logger)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c, err := chain.Build(store.IDs(), g, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("fragments ordered",
		zap.String("strategy", c.Strategy),
		zap.Duration("elapsed", time.Since(start)))

	seq, junctions, err := Merge(store, g, c.IDs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:      conf.Name,
		Seq:       seq,
		Length:    frag.Fragment{Seq: seq}.Len(),
		Strategy:  c.Strategy,
		Fragments: junctions,
	}
	logger.Info("sequence assembled",
		zap.Int("fragments", store.Len()),
		zap.Int("length", result.Length))

	return result, nil
}

// Overlaps returns the confirmed overlaps between fragments, without
// ordering or merging them
func Overlaps(ctx context.Context, frags []frag.Fragment, conf *config.Config, logger *zap.Logger) ([]overlap.Edge, error) {
	if conf == nil {
		conf = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	_, g, err := overlaps(ctx, frags, conf, logger)
	if err != nil {
		return nil, err
	}
	return g.Edges(), nil
}

// overlaps validates the fragments and runs the candidate and
// confirmation passes
func overlaps(ctx context.Context, frags []frag.Fragment, conf *config.Config, logger *zap.Logger) (*frag.Store, *overlap.Graph, error) {
	store, err := frag.NewStore(frags)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	candidates, err := overlap.FindCandidates(ctx, store, conf.Workers)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("candidate neighbors found",
		zap.Int("pairs", len(candidates.Pairs())),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	g, err := overlap.Confirm(ctx, store, candidates, conf.Workers)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("overlaps confirmed",
		zap.Int("edges", len(g.Edges())),
		zap.Duration("elapsed", time.Since(start)))

	return store, g, nil
}
