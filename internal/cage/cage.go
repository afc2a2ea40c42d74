// Package cage implements the Killer Sudoku cage model: contiguity checking,
// closed-form sum bounds, remaining-sum reachability, and a position-to-cage
// index used by the killer solver. All operations are pure; cages are
// treated as read-only puzzle input and never mutated.
package cage

import "github.com/dailygrid/sudoku/internal/board"

// Cell identifies one grid cell by row and column.
type Cell struct {
	Row int
	Col int
}

// InBounds reports whether the cell lies on the 9×9 grid.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < 9 && c.Col >= 0 && c.Col < 9
}

// Pos returns the cell's linear board position, or board.InvalidCell when
// out of bounds.
func (c Cell) Pos() int {
	return board.MakePos(c.Row, c.Col)
}

// Cage is a set of cells sharing a target sum. Digits within a cage must be
// pairwise distinct, which caps a well-formed cage at 9 cells.
type Cage struct {
	Sum   int
	Cells []Cell
}

// Contiguous reports whether the cage's cells form a single orthogonally
// connected region (rook adjacency, no diagonals). Implemented as a
// BFS/flood-fill from the first cell; contiguous iff every cell is reached.
// Cages with zero cells are vacuously contiguous; out-of-bounds cells must
// have been rejected beforehand.
func (g Cage) Contiguous() bool {
	if len(g.Cells) <= 1 {
		return true
	}

	// Membership set for O(1) neighbor lookups.
	inCage := [board.CellCount]bool{}
	for _, cell := range g.Cells {
		inCage[cell.Pos()] = true
	}

	visited := [board.CellCount]bool{}
	queue := make([]int, 0, len(g.Cells))

	start := g.Cells[0].Pos()
	queue = append(queue, start)
	visited[start] = true
	reached := 1

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		row, col := board.PosRowCol(pos)

		neighbors := [4]int{
			board.MakePos(row-1, col),
			board.MakePos(row+1, col),
			board.MakePos(row, col-1),
			board.MakePos(row, col+1),
		}

		for _, nb := range neighbors {
			if nb == board.InvalidCell {
				continue
			}
			if inCage[nb] && !visited[nb] {
				visited[nb] = true
				reached++
				queue = append(queue, nb)
			}
		}
	}

	return reached == len(g.Cells)
}

// MinSum returns the smallest sum n pairwise-distinct digits 1-9 can reach:
// 1+2+…+n = n(n+1)/2.
func MinSum(n int) int {
	return n * (n + 1) / 2
}

// MaxSum returns the largest sum n pairwise-distinct digits 1-9 can reach:
// 9+8+…+(10−n) = n(19−n)/2.
func MaxSum(n int) int {
	return n * (19 - n) / 2
}

// SumAchievable reports whether some selection of n pairwise-distinct digits
// from 1-9 sums to exactly sum. For n in [1,9] every value between MinSum
// and MaxSum is reachable, so a range check is exact here.
func SumAchievable(sum, n int) bool {
	if n < 1 || n > 9 {
		return false
	}
	return sum >= MinSum(n) && sum <= MaxSum(n)
}

// CanReachSum reports whether some selection of cells distinct digits, drawn
// from the digits 1-9 not present in the used bitmask (bit i = digit i+1),
// sums to exactly remaining. Implemented as a min/max bound check over the
// available digits sorted ascending: the smallest reachable sum takes the
// lowest cells digits, the largest takes the highest.
//
// This is a safe over-approximation used for search pruning: it never
// rejects a reachable sum, but may accept a few unreachable ones for
// arbitrary used-digit sets. False positives only cost extra backtracking —
// the search still verifies every full placement exactly.
func CanReachSum(remaining, cells int, used uint) bool {
	if cells < 0 || remaining < 0 {
		return false
	}
	if cells == 0 {
		return remaining == 0
	}

	available := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if used&(1<<(d-1)) == 0 {
			available = append(available, d)
		}
	}
	if cells > len(available) {
		return false
	}

	minSum, maxSum := 0, 0
	for i := 0; i < cells; i++ {
		minSum += available[i]
		maxSum += available[len(available)-1-i]
	}
	return remaining >= minSum && remaining <= maxSum
}

// DigitBit returns the used-digit bitmask bit for a digit 1-9.
func DigitBit(d int) uint {
	return 1 << (d - 1)
}

// Index maps board positions to the cage covering them, for O(1) lookup
// during search. Build once per puzzle with NewIndex.
type Index struct {
	cages  []Cage
	cageOf [board.CellCount]int
}

// NewIndex builds a position-to-cage index. Cells of every cage must be in
// bounds; coverage gaps are permitted and surface as CageAt returning -1
// (the killer solver rejects placements on uncovered cells). When a cell is
// claimed by several cages the first claim wins; validators report overlap
// as a coverage error before any solver sees the index.
func NewIndex(cages []Cage) *Index {
	ix := &Index{cages: cages}
	for pos := 0; pos < board.CellCount; pos++ {
		ix.cageOf[pos] = -1
	}
	for i, g := range cages {
		for _, cell := range g.Cells {
			pos := cell.Pos()
			if pos == board.InvalidCell {
				continue
			}
			if ix.cageOf[pos] == -1 {
				ix.cageOf[pos] = i
			}
		}
	}
	return ix
}

// CageAt returns the index of the cage covering pos, or -1 when no cage
// covers it.
func (ix *Index) CageAt(pos int) int {
	if pos < 0 || pos >= board.CellCount {
		return -1
	}
	return ix.cageOf[pos]
}

// Cage returns the cage with the given index.
func (ix *Index) Cage(i int) Cage {
	return ix.cages[i]
}

// Coverage reports cells left uncovered by the cage set and cells covered
// more than once, in row-major order. A well-formed Killer Sudoku covers
// each of the 81 cells exactly once. Out-of-bounds cells are ignored; they
// are reported separately by per-cage validation.
func Coverage(cages []Cage) (uncovered, overlapping []Cell) {
	var counts [board.CellCount]int
	for _, g := range cages {
		for _, cell := range g.Cells {
			if cell.InBounds() {
				counts[cell.Pos()]++
			}
		}
	}

	for pos := 0; pos < board.CellCount; pos++ {
		row, col := board.PosRowCol(pos)
		switch {
		case counts[pos] == 0:
			uncovered = append(uncovered, Cell{Row: row, Col: col})
		case counts[pos] > 1:
			overlapping = append(overlapping, Cell{Row: row, Col: col})
		}
	}
	return uncovered, overlapping
}
