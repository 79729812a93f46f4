package chain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAmbiguousEndpoint is when zero or several fragments lack a
	// confirmed neighbor on one side, so the chain's end can't be picked out
	ErrAmbiguousEndpoint = errors.New("ambiguous chain endpoint")

	// ErrNoChain is when no ordering of all fragments is joined by
	// confirmed overlaps
	ErrNoChain = errors.New("no chain through every fragment")
)

// EndpointError names the fragments that were candidates for
// one end of the chain
type EndpointError struct {
	// Side is "left" or "right"
	Side string

	// Candidates are the ids with no confirmed neighbor on Side
	Candidates []string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf(
		"%v: %d fragments lack a confirmed %s neighbor [%s]",
		ErrAmbiguousEndpoint, len(e.Candidates), e.Side, strings.Join(e.Candidates, ", "),
	)
}

func (e *EndpointError) Unwrap() error {
	return ErrAmbiguousEndpoint
}

// NoChainError is returned when every strategy fails
type NoChainError struct {
	// IDs of the fragments that couldn't be chained
	IDs []string

	// Tried is the name of each strategy attempted, in order
	Tried []string
}

func (e *NoChainError) Error() string {
	return fmt.Sprintf(
		"%v: %d fragments [%s], tried %s",
		ErrNoChain, len(e.IDs), strings.Join(e.IDs, ", "), strings.Join(e.Tried, ", "),
	)
}

func (e *NoChainError) Unwrap() error {
	return ErrNoChain
}
