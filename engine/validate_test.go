package engine

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

// A classic, solvable Sudoku with a single solution (0 = empty).
var samplePuzzle = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// The unique completion of samplePuzzle.
var sampleSolution = [][]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func emptyGrid() [][]int {
	grid := make([][]int, 9)
	for r := range grid {
		grid[r] = make([]int, 9)
	}
	return grid
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for r, row := range grid {
		out[r] = append([]int(nil), row...)
	}
	return out
}

func TestValidateSudokuEndToEnd(t *testing.T) {
	res := ValidateSudoku(context.Background(), samplePuzzle, nil)

	if !res.IsValid {
		t.Fatalf("IsValid = false, errors: %v", res.Errors)
	}
	if !res.HasUniqueSolution {
		t.Fatal("HasUniqueSolution = false, want true")
	}
	if res.Solution == nil {
		t.Fatal("no solution returned")
	}
	wantFirstRow := []int{5, 3, 4, 6, 7, 8, 9, 1, 2}
	if !reflect.DeepEqual(res.Solution[0], wantFirstRow) {
		t.Fatalf("solution first row = %v, want %v", res.Solution[0], wantFirstRow)
	}
	if !reflect.DeepEqual(res.Solution, sampleSolution) {
		t.Fatal("solution differs from the known completion")
	}
}

func TestValidateSudokuCompleteGrid(t *testing.T) {
	res := ValidateSudoku(context.Background(), sampleSolution, nil)

	if !res.IsValid {
		t.Fatalf("complete valid grid must validate, errors: %v", res.Errors)
	}
	if !res.HasUniqueSolution {
		t.Fatal("a complete grid has exactly one completion: itself")
	}
	if !reflect.DeepEqual(res.Solution, sampleSolution) {
		t.Fatal("complete grid must solve to itself")
	}
}

func TestValidateSudokuEmptyGrid(t *testing.T) {
	res := ValidateSudoku(context.Background(), emptyGrid(), nil)

	if !res.IsValid {
		t.Fatalf("empty grid must be valid, errors: %v", res.Errors)
	}
	if res.HasUniqueSolution {
		t.Fatal("empty grid must not have a unique solution")
	}
	if res.Solution == nil {
		t.Fatal("empty grid is solvable; a witness must be returned")
	}
}

func TestValidateSudokuWrongDimensions(t *testing.T) {
	res := ValidateSudoku(context.Background(), make([][]int, 8), nil)

	if res.IsValid {
		t.Fatal("8-row grid must be invalid")
	}
	if len(res.Errors) != 1 || res.Errors[0].Row != -1 || res.Errors[0].Col != -1 {
		t.Fatalf("errors = %v, want one non-positional error", res.Errors)
	}

	grid := emptyGrid()
	grid[3] = make([]int, 7)
	res = ValidateSudoku(context.Background(), grid, nil)
	if res.IsValid || len(res.Errors) != 1 || res.Errors[0].Row != 3 {
		t.Fatalf("short row: got %+v", res)
	}
}

func TestValidateSudokuValueRange(t *testing.T) {
	grid := emptyGrid()
	grid[2][5] = 10
	grid[7][0] = -3

	res := ValidateSudoku(context.Background(), grid, nil)
	if res.IsValid {
		t.Fatal("out-of-range values must be invalid")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %v, want both bad cells reported", res.Errors)
	}
	if res.Solution != nil {
		t.Fatal("no solving must happen on a structurally invalid grid")
	}
}

func TestValidateSudokuDuplicateGivens(t *testing.T) {
	grid := emptyGrid()
	grid[4][1] = 6
	grid[4][6] = 6

	res := ValidateSudoku(context.Background(), grid, nil)
	if res.IsValid {
		t.Fatal("duplicate givens must be invalid")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected a positioned duplicate error")
	}
	e := res.Errors[0]
	if e.Row != 4 || e.Col != 6 {
		t.Errorf("error position = (%d,%d), want (4,6)", e.Row, e.Col)
	}
	if !strings.Contains(e.Message, "row 4") {
		t.Errorf("message %q should name the row", e.Message)
	}
}

// unsolvablePuzzle has no duplicate givens, but cell (0,8) admits no digit.
var unsolvablePuzzle = [][]int{
	{1, 2, 3, 4, 5, 6, 7, 8, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 9},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

func TestValidateSudokuNoSolution(t *testing.T) {
	res := ValidateSudoku(context.Background(), unsolvablePuzzle, nil)

	if res.IsValid {
		t.Fatal("unsolvable puzzle must be invalid")
	}
	if len(res.Errors) != 1 || res.Errors[0].Message != msgNoSolution {
		t.Fatalf("errors = %v, want a single generic no-solution error", res.Errors)
	}
}

func TestValidateSudokuIdempotent(t *testing.T) {
	grid := copyGrid(samplePuzzle)

	first := ValidateSudoku(context.Background(), grid, nil)
	second := ValidateSudoku(context.Background(), grid, nil)

	// Search cost varies run to run; the verdicts must not.
	first.Stats, second.Stats = Stats{}, Stats{}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(grid, samplePuzzle) {
		t.Fatal("input grid was mutated")
	}
}

func TestSolveSudoku(t *testing.T) {
	res := SolveSudoku(context.Background(), samplePuzzle, nil)
	if !res.Success {
		t.Fatalf("Success = false, error: %s", res.Error)
	}
	if !reflect.DeepEqual(res.Solution, sampleSolution) {
		t.Fatal("solution differs from the known completion")
	}
}

func TestSolveSudokuFailures(t *testing.T) {
	res := SolveSudoku(context.Background(), make([][]int, 3), nil)
	if res.Success || res.Error == "" {
		t.Fatalf("bad shape should fail with a message, got %+v", res)
	}

	res = SolveSudoku(context.Background(), unsolvablePuzzle, nil)
	if res.Success || res.Error != msgNoSolution {
		t.Fatalf("unsolvable grid: got %+v", res)
	}
}
