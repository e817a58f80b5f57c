package main

import (
	"fmt"

	"github.com/hdrones8/ortofix/internal/journal"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

// createHistoryCommand creates the command listing journaled corrections
func createHistoryCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently corrected documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			manager, err := env.openJournal(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer func() { _ = manager.Close() }()

			entries, err := manager.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No corrections recorded")
				return nil
			}
			for _, entry := range entries {
				_, _ = fmt.Fprintln(out, formatEntry(entry))
			}
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of entries to show")

	return cmd
}

func formatEntry(entry journal.Entry) string {
	line := fmt.Sprintf("%s  %s  %d replacements",
		entry.RecordedAt.Local().Format("2006-01-02 15:04"), entry.Path, entry.Replacements)
	if entry.Ambiguous > 0 {
		line += fmt.Sprintf(" (%d ambiguous)", entry.Ambiguous)
	}
	return line + fmt.Sprintf("  %d→%d bytes", entry.BytesBefore, entry.BytesAfter)
}
