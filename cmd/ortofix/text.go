package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hdrones8/ortofix/internal/orthography"
	"github.com/spf13/cobra"
)

// createTextCommand creates the text command.
func createTextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text [words...]",
		Short: "Correct the given text, or standard input when no words are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := orthography.New()

			if len(args) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), engine.Correct(strings.Join(args, " ")))
				return nil
			}

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), engine.Correct(string(input)))
			return nil
		},
	}
}
