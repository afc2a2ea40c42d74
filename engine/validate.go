package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailygrid/sudoku/internal/board"
	"github.com/dailygrid/sudoku/internal/solver"
)

const msgNoSolution = "Puzzle has no solution"

// ValidateSudoku validates a classic Sudoku grid (0 = empty cell), solves
// it, and checks solution uniqueness.
//
// Structural checks (9×9 shape, cell values in 0-9) and constraint checks
// (duplicate given digits per row/column/box) collect every violation
// before giving up; any violation skips solving entirely. A clean grid is
// then solved — failure yields a single generic no-solution error — and on
// success a second, count-to-2 search determines HasUniqueSolution.
func ValidateSudoku(ctx context.Context, grid [][]int, opts *Options) ValidationResult {
	var res ValidationResult

	if len(grid) != 9 {
		res.Errors = append(res.Errors, Error{Row: -1, Col: -1, Message: "Grid must be 9x9"})
		return res
	}
	shapeOK := true
	for r, row := range grid {
		if len(row) != 9 {
			res.Errors = append(res.Errors, Error{Row: r, Col: -1, Message: "Row must contain exactly 9 cells"})
			shapeOK = false
		}
	}
	if !shapeOK {
		return res
	}

	for r, row := range grid {
		for c, val := range row {
			if val < 0 || val > 9 {
				res.Errors = append(res.Errors, Error{Row: r, Col: c, Message: "Cell value must be between 0 and 9"})
			}
		}
	}
	for _, cf := range board.Conflicts(grid) {
		res.Errors = append(res.Errors, Error{
			Row:     cf.Row,
			Col:     cf.Col,
			Message: fmt.Sprintf("Digit %d appears more than once in %s %d", cf.Val, cf.Unit, cf.Index),
		})
	}
	if len(res.Errors) > 0 {
		return res
	}

	b, err := board.FromRows(grid)
	if err != nil {
		// Unreachable after the checks above; report rather than panic.
		res.Errors = append(res.Errors, Error{Row: -1, Col: -1, Message: err.Error()})
		return res
	}

	sol, stats, err := solver.New(b, searchOptions(opts)).Solve(ctx)
	res.Stats.add(stats)
	if err != nil {
		res.Errors = append(res.Errors, solveError(err))
		return res
	}

	res.IsValid = true
	res.Solution = sol.Rows()

	count, stats, err := solver.New(b, searchOptions(opts)).CountSolutions(ctx, uniquenessLimit)
	res.Stats.add(stats)
	if err != nil {
		res.Errors = append(res.Errors, Error{
			Row: -1, Col: -1,
			Message: fmt.Sprintf("Uniqueness check aborted: %v", err),
		})
		return res
	}
	res.HasUniqueSolution = count == 1

	return res
}

// searchOptions translates the public Options into solver budgets.
func searchOptions(opts *Options) *solver.Options {
	if opts == nil {
		return nil
	}
	return &solver.Options{Timeout: opts.Timeout, MaxNodes: opts.MaxNodes}
}

// solveError maps a solver failure onto a result error. An exhausted search
// is the one genuine "no solution"; anything else is an aborted search and
// must not masquerade as unsolvability.
func solveError(err error) Error {
	if errors.Is(err, solver.ErrNoSolution) {
		return Error{Row: -1, Col: -1, Message: msgNoSolution}
	}
	return Error{Row: -1, Col: -1, Message: fmt.Sprintf("Solving aborted: %v", err)}
}

func (s *Stats) add(other solver.Stats) {
	s.Nodes += other.Nodes
	s.Duration += other.Duration
}
