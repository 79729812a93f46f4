package chain

import (
	"errors"

	"github.com/jjtimmons/stitch/internal/overlap"
	"go.uber.org/zap"
)

// Chain is an ordering of every fragment id, left to right, with
// consecutive ids joined by a confirmed overlap
type Chain struct {
	// IDs in left to right order
	IDs []string

	// Strategy is the name of the strategy that found the chain
	Strategy string
}

// Strategy finds a chain from a set of ids and their confirmed graph.
// It returns nil when it finds no chain. An error wrapping
// ErrAmbiguousEndpoint means the strategy couldn't start
type Strategy struct {
	Name  string
	Build func(ids []string, g *overlap.Graph) ([]string, error)
}

// Strategies are tried in order until one finds a chain
var Strategies = []Strategy{
	{Name: "left", Build: FromLeft},
	{Name: "right", Build: FromRight},
	{Name: "any", Build: FromAny},
}

// Build returns the chain of ids consistent with the graph, trying each
// of Strategies in turn. The input is assumed to have one solution: the
// first chain found is returned without checking for others
func Build(ids []string, g *overlap.Graph, logger *zap.Logger) (*Chain, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var tried []string
	for _, s := range Strategies {
		tried = append(tried, s.Name)

		found, err := s.Build(ids, g)
		if err != nil {
			if !errors.Is(err, ErrAmbiguousEndpoint) {
				return nil, err
			}

			// either the true end has a confirmed neighbor on its outside
			// that isn't used in the solution, or the input is malformed
			logger.Debug("chain strategy skipped", zap.String("strategy", s.Name), zap.Error(err))
			continue
		}
		if found == nil {
			logger.Debug("chain strategy found no chain", zap.String("strategy", s.Name))
			continue
		}

		logger.Debug("chain found", zap.String("strategy", s.Name), zap.Strings("ids", found))
		return &Chain{IDs: found, Strategy: s.Name}, nil
	}

	return nil, &NoChainError{IDs: append([]string(nil), ids...), Tried: tried}
}

// FromLeft extends rightward from the one fragment with no confirmed
// left neighbor
func FromLeft(ids []string, g *overlap.Graph) ([]string, error) {
	start, err := endpoint("left", ids, g.Left)
	if err != nil {
		return nil, err
	}
	return extend(start, g.Right, len(ids)), nil
}

// FromRight extends leftward from the one fragment with no confirmed
// right neighbor, then reverses the result
func FromRight(ids []string, g *overlap.Graph) ([]string, error) {
	start, err := endpoint("right", ids, g.Right)
	if err != nil {
		return nil, err
	}

	found := extend(start, g.Left, len(ids))
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found, nil
}

// FromAny tries every id, in order, as the leftmost fragment.
//
// It covers inputs where the leftmost and rightmost fragments both have a
// confirmed neighbor on their outside that the solution doesn't use
func FromAny(ids []string, g *overlap.Graph) ([]string, error) {
	for _, start := range ids {
		if found := extend(start, g.Right, len(ids)); found != nil {
			return found, nil
		}
	}
	return nil, nil
}

// endpoint returns the only id without a neighbor in side
func endpoint(name string, ids []string, side map[string]map[string]int) (string, error) {
	var candidates []string
	for _, id := range ids {
		if len(side[id]) == 0 {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) != 1 {
		return "", &EndpointError{Side: name, Candidates: candidates}
	}
	return candidates[0], nil
}
