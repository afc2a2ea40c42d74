package engine

import (
	"context"
	"fmt"

	"github.com/dailygrid/sudoku/internal/board"
	"github.com/dailygrid/sudoku/internal/cage"
	"github.com/dailygrid/sudoku/internal/solver"
)

// ValidateKillerSudoku validates a Killer Sudoku cage set, solves it, and
// checks solution uniqueness.
//
// Checks, all collected before the solve gate: at least one cage; per cage a
// nonempty, in-bounds, duplicate-free cell set of at most 9 cells, forming
// one orthogonally connected region, with a sum achievable by that many
// pairwise-distinct digits; and exact-once coverage of all 81 cells across
// cages (uncovered and multiply-covered cells are distinct errors).
//
// Killer puzzles carry no given digits: solving starts from an empty grid
// and the cage constraints alone must pin the solution.
func ValidateKillerSudoku(ctx context.Context, cages []Cage, opts *Options) ValidationResult {
	var res ValidationResult

	res.Errors = cageErrors(cages)
	if len(res.Errors) > 0 {
		return res
	}

	ix := cage.NewIndex(toCages(cages))

	sol, stats, err := solver.NewKiller(board.New(), ix, searchOptions(opts)).Solve(ctx)
	res.Stats.add(stats)
	if err != nil {
		res.Errors = append(res.Errors, solveError(err))
		return res
	}

	res.IsValid = true
	res.Solution = sol.Rows()

	count, stats, err := solver.NewKiller(board.New(), ix, searchOptions(opts)).CountSolutions(ctx, uniquenessLimit)
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

// SolveKillerSudoku solves a Killer Sudoku cage set from an empty grid and
// returns the deterministic row-major witness. Malformed cage sets are
// reported as a failure message; use ValidateKillerSudoku for positioned
// error details.
func SolveKillerSudoku(ctx context.Context, cages []Cage, opts *Options) SolveResult {
	if errs := cageErrors(cages); len(errs) > 0 {
		return SolveResult{Error: "Invalid cages: " + errs[0].Message}
	}

	ix := cage.NewIndex(toCages(cages))

	sol, stats, err := solver.NewKiller(board.New(), ix, searchOptions(opts)).Solve(ctx)
	res := SolveResult{Stats: Stats{Nodes: stats.Nodes, Duration: stats.Duration}}
	if err != nil {
		res.Error = solveError(err).Message
		return res
	}

	res.Success = true
	res.Solution = sol.Rows()
	return res
}

// cageErrors runs every structural and constraint check on a cage set,
// returning all violations. An empty result means the cage set is a
// well-formed Killer Sudoku layout safe to hand to the solver.
func cageErrors(cages []Cage) []Error {
	if len(cages) == 0 {
		return []Error{{Row: -1, Col: -1, Message: "At least one cage is required"}}
	}

	var errs []Error
	for i, g := range cages {
		if len(g.Cells) == 0 {
			errs = append(errs, Error{Row: -1, Col: -1, Message: fmt.Sprintf("Cage %d must contain at least one cell", i)})
			continue
		}

		ok := true
		seen := map[[2]int]bool{}
		for _, cell := range g.Cells {
			r, c := cell[0], cell[1]
			if r < 0 || r > 8 || c < 0 || c > 8 {
				errs = append(errs, Error{Row: r, Col: c, Message: fmt.Sprintf("Cage %d cell is out of bounds", i)})
				ok = false
				continue
			}
			if seen[cell] {
				errs = append(errs, Error{Row: r, Col: c, Message: fmt.Sprintf("Cage %d lists the same cell more than once", i)})
				ok = false
			}
			seen[cell] = true
		}
		if len(g.Cells) > 9 {
			errs = append(errs, Error{Row: g.Cells[0][0], Col: g.Cells[0][1], Message: fmt.Sprintf("Cage %d has more than 9 cells", i)})
			ok = false
		}
		if !ok {
			// Contiguity and sum checks need a sane cell set.
			continue
		}

		ig := toCage(g)
		if !ig.Contiguous() {
			errs = append(errs, Error{Row: g.Cells[0][0], Col: g.Cells[0][1], Message: fmt.Sprintf("Cage %d is not contiguous", i)})
		}
		if !cage.SumAchievable(g.Sum, len(g.Cells)) {
			errs = append(errs, Error{
				Row: g.Cells[0][0], Col: g.Cells[0][1],
				Message: fmt.Sprintf("Cage %d sum %d is not achievable with %d cells", i, g.Sum, len(g.Cells)),
			})
		}
	}

	uncovered, overlapping := cage.Coverage(toCages(cages))
	for _, cell := range uncovered {
		errs = append(errs, Error{Row: cell.Row, Col: cell.Col, Message: "Cell is not part of any cage"})
	}
	for _, cell := range overlapping {
		errs = append(errs, Error{Row: cell.Row, Col: cell.Col, Message: "Cell belongs to multiple cages"})
	}

	return errs
}

func toCage(g Cage) cage.Cage {
	cells := make([]cage.Cell, len(g.Cells))
	for i, cell := range g.Cells {
		cells[i] = cage.Cell{Row: cell[0], Col: cell[1]}
	}
	return cage.Cage{Sum: g.Sum, Cells: cells}
}

func toCages(cages []Cage) []cage.Cage {
	out := make([]cage.Cage, len(cages))
	for i, g := range cages {
		out[i] = toCage(g)
	}
	return out
}
