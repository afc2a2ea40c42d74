package solver

import (
	"context"
	"time"

	"github.com/dailygrid/sudoku/internal/board"
	"github.com/dailygrid/sudoku/internal/cage"
)

// KillerSolver implements backtracking search under cage constraints. The
// search shape is identical to the classic Solver; only placement legality
// differs.
type KillerSolver struct {
	Board *board.Board
	Cages *cage.Index
	search
}

// NewKiller creates a killer solver over the given cage index. Killer
// puzzles in this engine carry no given digits — the cage constraints alone
// must pin the solution — so b is normally an empty board; it is cloned
// either way.
func NewKiller(b *board.Board, ix *cage.Index, options *Options) *KillerSolver {
	if options == nil {
		options = DefaultOptions()
	}
	return &KillerSolver{
		Board:  b.Clone(),
		Cages:  ix,
		search: search{options: options},
	}
}

// canPlace checks every constraint on placing val at pos:
// classic row/column/box uniqueness, cage membership (uncovered cells are
// unplaceable), digit uniqueness within the cage, and cage sum arithmetic —
// exact on the cage's last empty cell, otherwise strictly under the target
// with the deficit still reachable from the cage's unused digits.
func (s *KillerSolver) canPlace(pos, val int) bool {
	if !s.Board.CanPlace(pos, val) {
		return false
	}

	ci := s.Cages.CageAt(pos)
	if ci < 0 {
		return false
	}
	g := s.Cages.Cage(ci)

	sum := val
	used := cage.DigitBit(val)
	emptyLeft := 0

	for _, cell := range g.Cells {
		p := cell.Pos()
		if p == pos {
			continue
		}
		v := s.Board.Get(p)
		if v == board.EmptyCell {
			emptyLeft++
			continue
		}
		if v == val {
			return false
		}
		sum += v
		used |= cage.DigitBit(v)
	}

	if emptyLeft == 0 {
		return sum == g.Sum
	}
	if sum >= g.Sum {
		return false
	}
	return cage.CanReachSum(g.Sum-sum, emptyLeft, used)
}

// Solve attempts to complete the board under cage constraints.
// Returns ErrNoSolution when the cages admit no completion; budget
// exhaustion surfaces as a distinct error.
func (s *KillerSolver) Solve(ctx context.Context) (*board.Board, Stats, error) {
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

func (s *KillerSolver) backtrack(ctx context.Context) (bool, error) {
	if err := s.checkBudget(ctx); err != nil {
		return false, err
	}

	pos, ok := s.Board.FirstEmpty()
	if !ok {
		return true, nil
	}

	for val := 1; val <= 9; val++ {
		s.nodes++
		if !s.canPlace(pos, val) {
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

// CountSolutions counts completions under cage constraints, stopping once
// the count reaches limit.
func (s *KillerSolver) CountSolutions(ctx context.Context, limit int) (int, Stats, error) {
	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	start := time.Now()
	s.nodes = 0
	count := 0

	_, err := s.countBacktrack(ctx, limit, &count)
	stats := Stats{Nodes: s.nodes, Duration: time.Since(start)}
	return count, stats, err
}

func (s *KillerSolver) countBacktrack(ctx context.Context, limit int, count *int) (stop bool, err error) {
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
		if !s.canPlace(pos, val) {
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
