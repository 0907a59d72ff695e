package main

import (
	"os"

	"github.com/DevVenusK/tuist/cmd/tuist/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
