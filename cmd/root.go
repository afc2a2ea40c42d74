// Package cmd implements the sudoku CLI: solve and validate commands for
// classic and Killer Sudoku puzzles described in JSON files.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dailygrid/sudoku/engine"
)

var (
	verbose  bool
	timeout  time.Duration
	maxNodes int
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve and validate Sudoku and Killer Sudoku puzzles",
	Long: `sudoku is the constraint-solving engine behind the daily puzzle game:
deterministic backtracking solving, cage feasibility analysis, and
solution-uniqueness checking for classic and Killer Sudoku.

Puzzles are JSON documents: {"grid": [[...9x9...]]} for classic Sudoku, or
{"cages": [{"sum": 10, "cells": [[0,0],[0,1]]}, ...]} for Killer Sudoku.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Wall-clock budget per search (0 = unlimited)")
	rootCmd.PersistentFlags().IntVar(&maxNodes, "max-nodes", 0, "Candidate-placement budget per search (0 = unlimited)")

	// Budgets are deployable without flag plumbing: SUDOKU_TIMEOUT,
	// SUDOKU_MAX_NODES, SUDOKU_VERBOSE.
	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("max-nodes", rootCmd.PersistentFlags().Lookup("max-nodes"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// budget builds engine options from flags and environment.
func budget() *engine.Options {
	return &engine.Options{
		Timeout:  viper.GetDuration("timeout"),
		MaxNodes: viper.GetInt("max-nodes"),
	}
}

// puzzleFile is the JSON document both commands consume. Exactly one of
// Grid or Cages is expected, matching the selected variant.
type puzzleFile struct {
	Grid  [][]int       `json:"grid"`
	Cages []engine.Cage `json:"cages"`
}

// readPuzzle loads a puzzle from the file named in args, or stdin when no
// argument is given.
func readPuzzle(args []string) (*puzzleFile, error) {
	var data []byte
	var err error

	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}

	var p puzzleFile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing puzzle: %w", err)
	}
	return &p, nil
}
