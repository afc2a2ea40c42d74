// Package board implements the 9×9 Sudoku grid model: cell access by linear
// position, row/column/box membership, and O(1) placement legality via
// per-unit digit bitmasks.
package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// Board represents a 9x9 Sudoku board.
type Board struct {
	cells [CellCount]int

	// Bitmasks track placed digits in each unit (row/col/box).
	// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
	// This allows for O(1) placement checks.
	rowMasks [9]uint
	colMasks [9]uint
	boxMasks [9]uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount is only touched inside Set, SetForce
	// and Clear.
	emptyCount int
}

// New creates an empty Board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// FromRows creates a Board from a 9×9 row-major matrix with 0 for empty
// cells. The input is copied; the caller's slices are never retained or
// mutated. Returns an error if the matrix is not 9×9, holds a value outside
// {0,…,9}, or places a digit that violates Sudoku constraints.
func FromRows(rows [][]int) (*Board, error) {
	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidDimensions, len(rows))
	}
	b := New()
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidDimensions, r, len(row))
		}
		for c, val := range row {
			if val == EmptyCell {
				continue
			}
			if err := b.Set(MakePos(r, c), val); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
		}
	}
	return b, nil
}

// Rows returns the board as a 9×9 row-major matrix. The result is a fresh
// copy, detached from the board.
func (b *Board) Rows() [][]int {
	rows := make([][]int, 9)
	for r := range rows {
		rows[r] = make([]int, 9)
		for c := range rows[r] {
			rows[r][c] = b.cells[MakePos(r, c)]
		}
	}
	return rows
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Set attempts to place a value 1-9 at the given position.
// Returns an error if the placement violates Sudoku rules or parameters are
// invalid.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return b.Clear(pos)
	}
	if b.cells[pos] != EmptyCell {
		b.Clear(pos)
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	if b.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if b.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: value %d already in box %d", ErrIllegalMove, val, box)
	}

	// Modify the board only once we know it's legal to do so
	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (b *Board) SetForce(pos, val int) {
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}

	val := b.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.boxMasks[box] &^= mask
	b.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// CanPlace reports whether val may be placed at pos without duplicating the
// digit in the cell's row, column, or box. The cell's own current value is
// not consulted; search code places into empty cells only.
func (b *Board) CanPlace(pos, val int) bool {
	if !isValidPosition(pos) || val < 1 || val > 9 {
		return false
	}
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))
	return b.rowMasks[row]&mask == 0 &&
		b.colMasks[col]&mask == 0 &&
		b.boxMasks[box]&mask == 0
}

// FirstEmpty returns the lowest position holding an empty cell, scanning in
// row-major order. The second return is false when the board is complete.
func (b *Board) FirstEmpty() (int, bool) {
	for pos := 0; pos < CellCount; pos++ {
		if b.cells[pos] == EmptyCell {
			return pos, true
		}
	}
	return InvalidCell, false
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// String returns the board as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for row, column, and box mapping. Boxes are the
// nine fixed 3×3 sub-grids: cell (r,c) belongs to box (r/3)*3 + c/3.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// PosRowCol is the inverse of MakePos.
func PosRowCol(pos int) (row, col int) {
	return posToRow[pos], posToCol[pos]
}

// init initializes the position lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBox[pos] = 3*(pos/27) + (pos%9)/3
	}
}
