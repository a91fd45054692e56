package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/testrunner/toolbar/internal/app"
	"github.com/testrunner/toolbar/internal/cmd"
)

func main() {
	err := cmd.NewRoot().Execute()
	if err == nil {
		return
	}

	var exit app.ExitResult
	if errors.As(err, &exit) {
		if exit.Message != "" {
			out := os.Stdout
			if exit.UseStderr() {
				out = os.Stderr
			}
			fmt.Fprintln(out, exit.Message)
		}
		os.Exit(exit.ExitCode())
	}

	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
