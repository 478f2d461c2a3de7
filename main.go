// Package main is the entry point for the soccerstats CLI tool, which merges
// per-competition football player statistics and explores the result from the
// terminal.
package main

import "github.com/pable/soccerstats/cmd"

func main() {
	cmd.Execute()
}
