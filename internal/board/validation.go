package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition   = errors.New("position out of bounds")
	ErrInvalidValue      = errors.New("value must be between 1-9")
	ErrIllegalMove       = errors.New("move violates Sudoku constraints")
	ErrInvalidDimensions = errors.New("board must be 9x9")
)

// Conflict reports a duplicate digit among the filled cells of a raw grid.
// Row and Col locate the second (and any later) occurrence within the unit;
// Unit is "row", "column", or "box"; Index is the unit's index 0-8.
type Conflict struct {
	Row   int
	Col   int
	Val   int
	Unit  string
	Index int
}

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, boxCheck [9]uint

	for pos := 0; pos < CellCount; pos++ {
		val := b.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// Conflicts scans the filled cells of a raw 9×9 matrix and reports every
// duplicate digit per row, column, and box. A cell duplicated in several
// units produces one Conflict per unit. The scan never short-circuits so
// that a validator can surface all problems at once.
//
// A Board cannot represent a contradictory grid (Set refuses duplicates),
// which is why this operates on the raw matrix. Callers must have checked
// dimensions and value ranges first; out-of-range values are skipped.
func Conflicts(rows [][]int) []Conflict {
	var conflicts []Conflict
	var rowCheck, colCheck, boxCheck [9]uint

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := rows[r][c]
			if val < 1 || val > 9 {
				continue
			}

			box := posToBox[MakePos(r, c)]
			mask := uint(1 << (val - 1))

			if rowCheck[r]&mask != 0 {
				conflicts = append(conflicts, Conflict{Row: r, Col: c, Val: val, Unit: "row", Index: r})
			}
			if colCheck[c]&mask != 0 {
				conflicts = append(conflicts, Conflict{Row: r, Col: c, Val: val, Unit: "column", Index: c})
			}
			if boxCheck[box]&mask != 0 {
				conflicts = append(conflicts, Conflict{Row: r, Col: c, Val: val, Unit: "box", Index: box})
			}

			rowCheck[r] |= mask
			colCheck[c] |= mask
			boxCheck[box] |= mask
		}
	}

	return conflicts
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidValue reports whether a given number is valid on a Sudoku board.
func isValidValue(num int) bool {
	return (num >= 1 && num <= 9) || num == EmptyCell
}

// validateValue checks if a value is valid for Sudoku (1-9).
func (b *Board) validateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
