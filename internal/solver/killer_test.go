package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/dailygrid/sudoku/internal/board"
	"github.com/dailygrid/sudoku/internal/cage"
)

// singleCellCages builds one 1-cell cage per position with the cell's digit
// in the given solved grid as its sum: an exact cover that pins every cell.
func singleCellCages(solution [][]int) []cage.Cage {
	cages := make([]cage.Cage, 0, board.CellCount)
	for pos := 0; pos < board.CellCount; pos++ {
		row, col := board.PosRowCol(pos)
		cages = append(cages, cage.Cage{
			Sum:   solution[row][col],
			Cells: []cage.Cell{{Row: row, Col: col}},
		})
	}
	return cages
}

// swappableCages replaces four of the single cages with two vertical 2-cell
// dominoes over a rectangle whose digits can be exchanged without breaking
// any row, column, or box: cells (3,5),(4,5) and (3,8),(4,8) hold 1/3 and
// 3/1 in sampleSolution, so both dominoes sum to 4 and the puzzle gains a
// second completion.
func swappableCages() []cage.Cage {
	var cages []cage.Cage
	skip := map[int]bool{
		board.MakePos(3, 5): true,
		board.MakePos(4, 5): true,
		board.MakePos(3, 8): true,
		board.MakePos(4, 8): true,
	}
	for pos := 0; pos < board.CellCount; pos++ {
		if skip[pos] {
			continue
		}
		row, col := board.PosRowCol(pos)
		cages = append(cages, cage.Cage{
			Sum:   sampleSolution[row][col],
			Cells: []cage.Cell{{Row: row, Col: col}},
		})
	}
	cages = append(cages,
		cage.Cage{Sum: 4, Cells: []cage.Cell{{Row: 3, Col: 5}, {Row: 4, Col: 5}}},
		cage.Cage{Sum: 4, Cells: []cage.Cell{{Row: 3, Col: 8}, {Row: 4, Col: 8}}},
	)
	return cages
}

func TestKillerSolveSingleCellCages(t *testing.T) {
	ix := cage.NewIndex(singleCellCages(sampleSolution))

	sol, stats, err := NewKiller(board.New(), ix, nil).Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d)", err, stats.Nodes)
	}

	checkComplete(t, sol)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if got := sol.Get(board.MakePos(r, c)); got != sampleSolution[r][c] {
				t.Fatalf("solution[%d][%d] = %d, want %d", r, c, got, sampleSolution[r][c])
			}
		}
	}
}

func TestKillerSolutionSatisfiesCages(t *testing.T) {
	cages := swappableCages()
	ix := cage.NewIndex(cages)

	sol, _, err := NewKiller(board.New(), ix, nil).Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	checkComplete(t, sol)

	for i, g := range cages {
		sum := 0
		seen := map[int]bool{}
		for _, cell := range g.Cells {
			v := sol.Get(cell.Pos())
			if seen[v] {
				t.Fatalf("cage %d repeats digit %d", i, v)
			}
			seen[v] = true
			sum += v
		}
		if sum != g.Sum {
			t.Fatalf("cage %d sums to %d, want %d", i, sum, g.Sum)
		}
	}
}

func TestKillerCountSolutionsUnique(t *testing.T) {
	ix := cage.NewIndex(singleCellCages(sampleSolution))

	count, _, err := NewKiller(board.New(), ix, nil).CountSolutions(context.Background(), 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestKillerCountSolutionsSwappableRectangle(t *testing.T) {
	ix := cage.NewIndex(swappableCages())

	count, _, err := NewKiller(board.New(), ix, nil).CountSolutions(context.Background(), 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestKillerUncoveredCellIsUnsolvable(t *testing.T) {
	// Drop one cage: its cell admits no placement at all.
	cages := singleCellCages(sampleSolution)[:board.CellCount-1]
	ix := cage.NewIndex(cages)

	_, _, err := NewKiller(board.New(), ix, nil).Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("got %v, want ErrNoSolution", err)
	}
}

func TestKillerImpossibleSumIsUnsolvable(t *testing.T) {
	// Two-cell cage with an unreachable sum; the rest of the grid is pinned.
	cages := swappableCages()
	cages[len(cages)-1].Sum = 2 // below the 2-cell minimum of 3
	ix := cage.NewIndex(cages)

	_, _, err := NewKiller(board.New(), ix, nil).Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("got %v, want ErrNoSolution", err)
	}
}

func TestKillerCountRestoresBoard(t *testing.T) {
	ix := cage.NewIndex(swappableCages())
	s := NewKiller(board.New(), ix, nil)

	if _, _, err := s.CountSolutions(context.Background(), 2); err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if s.Board.EmptyCount() != board.CellCount {
		t.Error("search residue left on the board after counting")
	}
}
