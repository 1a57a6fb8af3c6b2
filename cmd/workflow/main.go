package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zevwings/workflow/internal/cli"
	workflowerrors "github.com/zevwings/workflow/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, workflowerrors.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
