// Package solver implements backtracking search for classic and Killer
// Sudoku. Both variants scan cells in row-major order and try digits 1-9
// ascending, so the first witness found is deterministic and serves as the
// canonical solution. Solution counting caps early for uniqueness checks,
// proving "at least 2" without enumerating the full solution space.
package solver

import (
	"context"
	"time"

	"github.com/dailygrid/sudoku/internal/board"
)

// Solver implements classic Sudoku backtracking search.
type Solver struct {
	Board *board.Board
	search
}

// New creates a solver for the given board. The board is cloned: the
// caller's board never sees search residue, and a solver never shares
// mutable state with another in-flight call.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		Board:  b.Clone(),
		search: search{options: options},
	}
}

// Solve attempts to complete the puzzle.
// Returns the solved board, or ErrNoSolution if no completion exists. A
// board with no empty cells trivially solves to itself. Budget exhaustion
// surfaces as a distinct error, never as ErrNoSolution.
func (s *Solver) Solve(ctx context.Context) (*board.Board, Stats, error) {
	if !s.Board.IsValid() {
		return nil, Stats{}, ErrInvalidPuzzle
	}

	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	start := time.Now()
	s.nodes = 0

	solved, err := s.backtrack(ctx)
	stats := Stats{Nodes: s.nodes, Duration: time.Since(start)}

	if err != nil {
		return nil, stats, err
	}
	if !solved {
		return nil, stats, ErrNoSolution
	}
	return s.Board, stats, nil
}

// backtrack fills the first empty cell (row-major) with the lowest legal
// digit and recurses, clearing the cell before trying the next candidate.
// Failed paths leave no residue on the board.
func (s *Solver) backtrack(ctx context.Context) (bool, error) {
	if err := s.checkBudget(ctx); err != nil {
		return false, err
	}

	pos, ok := s.Board.FirstEmpty()
	if !ok {
		return true, nil
	}

	for val := 1; val <= 9; val++ {
		s.nodes++
		if !s.Board.CanPlace(pos, val) {
			continue
		}
		s.Board.SetForce(pos, val)
		solved, err := s.backtrack(ctx)
		if err != nil {
			s.Board.Clear(pos)
			return false, err
		}
		if solved {
			return true, nil
		}
		s.Board.Clear(pos)
	}

	return false, nil
}

// CountSolutions counts completions of the puzzle, stopping as soon as the
// count reaches limit. With limit 2 this distinguishes "exactly one
// solution" from "two or more" without full enumeration. The board is fully
// restored before returning.
func (s *Solver) CountSolutions(ctx context.Context, limit int) (int, Stats, error) {
	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	start := time.Now()
	s.nodes = 0
	count := 0

	_, err := s.countBacktrack(ctx, limit, &count)
	stats := Stats{Nodes: s.nodes, Duration: time.Since(start)}
	return count, stats, err
}

// countBacktrack mirrors backtrack but continues past the first completion,
// incrementing count. Returning stop=true unwinds all recursion immediately
// once the limit is reached.
func (s *Solver) countBacktrack(ctx context.Context, limit int, count *int) (stop bool, err error) {
	if err := s.checkBudget(ctx); err != nil {
		return true, err
	}

	pos, ok := s.Board.FirstEmpty()
	if !ok {
		*count++
		return *count >= limit, nil
	}

	for val := 1; val <= 9; val++ {
		s.nodes++
		if !s.Board.CanPlace(pos, val) {
			continue
		}
		s.Board.SetForce(pos, val)
		stop, err := s.countBacktrack(ctx, limit, count)
		s.Board.Clear(pos)
		if stop || err != nil {
			return stop, err
		}
	}

	return false, nil
}
