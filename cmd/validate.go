package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dailygrid/sudoku/engine"
)

var (
	validateKiller bool
	validateJSON   bool
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate [puzzle.json]",
		Short: "Validate a Sudoku puzzle and check solution uniqueness",
		Long: `Validate a classic or Killer Sudoku puzzle from a JSON file (or stdin):
structural checks, constraint checks, solvability, and whether the puzzle
has exactly one solution.

Examples:
  sudoku validate puzzle.json
  sudoku validate --killer killer.json
  sudoku validate --json puzzle.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	validateCmd.Flags().BoolVar(&validateKiller, "killer", false, "Treat input as Killer Sudoku cages")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(args)
	if err != nil {
		return err
	}

	var res engine.ValidationResult
	if validateKiller {
		res = engine.ValidateKillerSudoku(cmd.Context(), p.Cages, budget())
	} else {
		res = engine.ValidateSudoku(cmd.Context(), p.Grid, budget())
	}

	log.WithFields(log.Fields{
		"killer":   validateKiller,
		"valid":    res.IsValid,
		"unique":   res.HasUniqueSolution,
		"nodes":    res.Stats.Nodes,
		"duration": res.Stats.Duration,
	}).Debug("validation finished")

	if validateJSON {
		return printJSON(res)
	}

	for _, e := range res.Errors {
		if e.Row < 0 {
			fmt.Printf("error: %s\n", e.Message)
		} else {
			fmt.Printf("error at (%d,%d): %s\n", e.Row, e.Col, e.Message)
		}
	}
	if !res.IsValid {
		return errors.New("puzzle is invalid")
	}

	if res.HasUniqueSolution {
		fmt.Println("puzzle is valid and has a unique solution")
	} else {
		fmt.Println("puzzle is valid but does not have a unique solution")
	}
	return nil
}
