package main

import (
	"os"

	"github.com/katalvlaran/isomatch/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	matchCmd := cmd.NewMatchCommand()
	rootCmd.AddCommand(matchCmd)

	screenCmd := cmd.NewScreenCommand()
	rootCmd.AddCommand(screenCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
