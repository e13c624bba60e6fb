package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotlink/cmd/dotlink/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
