// Package main is the entry point for the cub3rctl terminal tool.
package main

import "github.com/Faultbox/cub3r/internal/cli"

func main() {
	cli.Execute()
}
