package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hdrones8/ortofix/internal/orthography"
	"github.com/spf13/cobra"
)

// createRulesCommand creates the command listing the correction rules in order
func createRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the correction rules in the order they run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			onlyAmbiguous, err := cmd.Flags().GetBool("ambiguous")
			if err != nil {
				return fmt.Errorf("failed to get ambiguous flag: %w", err)
			}

			out := cmd.OutOrStdout()
			stage := orthography.Stage(0)
			for _, rule := range orthography.New().Rules() {
				if onlyAmbiguous && !rule.Ambiguous() {
					continue
				}
				if rule.Stage() != stage {
					stage = rule.Stage()
					_, _ = fmt.Fprintln(out, color.New(color.Bold).Sprintf("[%s]", stage))
				}
				line := "  " + rule.Name()
				if rule.Ambiguous() {
					line += color.YellowString(" (ambiguous)")
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().Bool("ambiguous", false, "Only list rules that can alter correct text")

	return cmd
}
