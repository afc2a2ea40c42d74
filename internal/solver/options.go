package solver

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrNodeBudget    = errors.New("solver node budget exceeded")
)

// Options bounds a single search. The engine itself never times out; these
// budgets exist so deployments can cap pathological inputs (a degenerate
// cage configuration can in principle force exponential backtracking).
type Options struct {
	// Timeout aborts the search after a wall-clock duration. Zero means
	// no time limit.
	Timeout time.Duration

	// MaxNodes aborts the search after this many candidate placements
	// have been tried. Zero means no node limit.
	MaxNodes int
}

// DefaultOptions returns unbounded search options.
func DefaultOptions() *Options {
	return &Options{}
}

// Stats captures the cost of one search.
type Stats struct {
	Nodes    int           `json:"nodes"`
	Duration time.Duration `json:"duration"`
}

// search carries the budget bookkeeping shared by both solver variants.
type search struct {
	options *Options
	nodes   int
}

// checkBudget is called at the top of every recursive step. It reports the
// context error on cancellation or deadline, and ErrNodeBudget once the
// node limit is exhausted.
func (s *search) checkBudget(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if s.options.MaxNodes > 0 && s.nodes > s.options.MaxNodes {
		return ErrNodeBudget
	}
	return nil
}

// makeContext applies the configured timeout, if any, on top of the
// caller's context.
func (s *search) makeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(ctx, s.options.Timeout)
	}
	return context.WithCancel(ctx)
}
