package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		// check reports pending corrections through its exit code
		var checkErr *CheckExitError
		if errors.As(err, &checkErr) {
			_, _ = fmt.Fprintln(os.Stderr, checkErr.Error())
			os.Exit(checkErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := createNewRootCommand().Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
