package main

import "github.com/dailygrid/sudoku/cmd"

func main() {
	cmd.Execute()
}
