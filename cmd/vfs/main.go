package main

import (
	"os"

	"github.com/GriffinCanCode/AgentOS/vfs/cmd/vfs/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	root := commands.NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrf("Error: %v\n", err)
		os.Exit(1)
	}
}
