package engine

import (
	"context"
	"errors"

	"github.com/dailygrid/sudoku/internal/board"
	"github.com/dailygrid/sudoku/internal/solver"
)

// SolveSudoku solves a classic Sudoku grid (0 = empty cell) and returns the
// deterministic row-major witness. Structural problems and constraint
// violations among the givens are reported as a failure message; use
// ValidateSudoku for positioned error details.
func SolveSudoku(ctx context.Context, grid [][]int, opts *Options) SolveResult {
	b, err := gridBoard(grid)
	if err != nil {
		return SolveResult{Error: "Invalid grid: " + err.Error()}
	}

	sol, stats, err := solver.New(b, searchOptions(opts)).Solve(ctx)
	res := SolveResult{Stats: Stats{Nodes: stats.Nodes, Duration: stats.Duration}}
	if err != nil {
		res.Error = solveError(err).Message
		return res
	}

	res.Success = true
	res.Solution = sol.Rows()
	return res
}

// gridBoard converts a raw matrix into a Board, folding shape, range, and
// duplicate-given problems into a single error.
func gridBoard(grid [][]int) (*board.Board, error) {
	if len(grid) != 9 {
		return nil, board.ErrInvalidDimensions
	}
	for _, row := range grid {
		if len(row) != 9 {
			return nil, board.ErrInvalidDimensions
		}
	}
	for _, row := range grid {
		for _, val := range row {
			if val < 0 || val > 9 {
				return nil, errors.New("cell value must be between 0 and 9")
			}
		}
	}
	return board.FromRows(grid)
}
