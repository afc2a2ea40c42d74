package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dailygrid/sudoku/engine"
	"github.com/dailygrid/sudoku/internal/board"
)

var (
	solveKiller bool
	solveJSON   bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle.json]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a classic or Killer Sudoku puzzle from a JSON file (or stdin).

Examples:
  sudoku solve puzzle.json
  sudoku solve --killer killer.json
  cat puzzle.json | sudoku solve --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVar(&solveKiller, "killer", false, "Treat input as Killer Sudoku cages")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(args)
	if err != nil {
		return err
	}

	var res engine.SolveResult
	if solveKiller {
		res = engine.SolveKillerSudoku(cmd.Context(), p.Cages, budget())
	} else {
		res = engine.SolveSudoku(cmd.Context(), p.Grid, budget())
	}

	log.WithFields(log.Fields{
		"killer":   solveKiller,
		"nodes":    res.Stats.Nodes,
		"duration": res.Stats.Duration,
	}).Debug("search finished")

	if solveJSON {
		return printJSON(res)
	}
	if !res.Success {
		return errors.New(res.Error)
	}

	b, err := board.FromRows(res.Solution)
	if err != nil {
		return fmt.Errorf("rendering solution: %w", err)
	}
	fmt.Print(b.Format())
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
