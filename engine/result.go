// Package engine is the public surface of the Sudoku / Killer Sudoku
// constraint-solving engine: grid validation, deterministic backtracking
// solving, cage feasibility analysis, and solution-uniqueness checks.
//
// All failures are reported as data in the result values; no call panics or
// returns an error for puzzle-level problems. Every call operates on its own
// copy of the input, so concurrent calls need no coordination and validating
// the same input twice yields identical results.
package engine

import "time"

// Error describes one validation problem. Row and Col are -1 when the
// problem is not tied to a specific cell.
type Error struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Stats reports the cost of the search behind a result.
type Stats struct {
	Nodes    int           `json:"nodes"`
	Duration time.Duration `json:"duration"`
}

// ValidationResult reports overall validity, positioned errors, whether the
// puzzle has exactly one solution, and the solution grid when one exists.
type ValidationResult struct {
	IsValid           bool    `json:"isValid"`
	Errors            []Error `json:"errors"`
	HasUniqueSolution bool    `json:"hasUniqueSolution"`
	Solution          [][]int `json:"solution,omitempty"`
	Stats             Stats   `json:"stats"`
}

// SolveResult reports success and the completed grid, or a failure message.
type SolveResult struct {
	Success  bool    `json:"success"`
	Solution [][]int `json:"solution,omitempty"`
	Error    string  `json:"error,omitempty"`
	Stats    Stats   `json:"stats"`
}

// Cage declares a Killer Sudoku cage: a target sum over a set of cells given
// as [row, col] pairs. Cages are read-only input; the engine never mutates
// them.
type Cage struct {
	Sum   int      `json:"sum"`
	Cells [][2]int `json:"cells"`
}

// Options bounds the search behind a validation or solve call. The zero
// value (or nil) means unbounded; production deployments should set at
// least one budget, since a pathological input can force exponential
// backtracking.
type Options struct {
	Timeout  time.Duration `json:"timeout"`
	MaxNodes int           `json:"maxNodes"`
}

// uniquenessLimit is the early-exit cap distinguishing "exactly one
// solution" from "two or more" without full enumeration.
const uniquenessLimit = 2
