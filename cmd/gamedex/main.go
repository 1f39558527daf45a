// Package main provides the entry point for the gamedex CLI tool.
package main

import (
	"github.com/gamedex/gamedex/cmd/gamedex/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
