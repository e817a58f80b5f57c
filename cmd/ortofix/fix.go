package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hdrones8/ortofix/internal/document"
	"github.com/hdrones8/ortofix/internal/fixer"
	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/hdrones8/ortofix/internal/orthography"
	"github.com/hdrones8/ortofix/internal/prompt"
	"github.com/spf13/cobra"
)

// CheckExitError reports pending corrections with a specific exit code
type CheckExitError struct {
	Message string
	Code    int
}

func (e *CheckExitError) Error() string {
	return e.Message
}

type fixOptions struct {
	dryRun      bool
	interactive bool
}

// createFixCommand creates the fix command.
func createFixCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [directory]",
		Short: "Correct every document in the directory",
		Long: "Correct every document in the directory. Only documents whose text " +
			"changes are written, each one atomically.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return fmt.Errorf("failed to get dry-run flag: %w", err)
			}
			interactive, err := cmd.Flags().GetBool("interactive")
			if err != nil {
				return fmt.Errorf("failed to get interactive flag: %w", err)
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("failed to get verbose flag: %w", err)
			}

			report, err := runFix(cmd, env, args, fixOptions{dryRun: dryRun, interactive: interactive})
			if report != nil {
				report.Print(cmd.OutOrStdout(), verbose)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Orthography fix complete.")
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Report what would change without writing")
	cmd.Flags().BoolP("interactive", "i", false, "Confirm each document before writing")
	cmd.Flags().BoolP("verbose", "v", false, "List unchanged documents too")

	return cmd
}

// createCheckCommand creates the check command.
func createCheckCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "check [directory]",
		Short: "Exit non-zero if any document needs corrections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runFix(cmd, env, args, fixOptions{dryRun: true})
			if report != nil {
				report.Print(cmd.OutOrStdout(), false)
			}
			if err != nil {
				return err
			}

			if pending := report.Count(fixer.StatusPending); pending > 0 {
				return &CheckExitError{
					Message: fmt.Sprintf("%d documents need corrections", pending),
					Code:    1,
				}
			}
			return nil
		},
	}
}

func runFix(cmd *cobra.Command, env *environment, args []string, opts fixOptions) (*fixer.Report, error) {
	cfg, err := loadConfigFromCommand(env, cmd)
	if err != nil {
		return nil, err
	}

	dir := cfg.Directory
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, err := env.newLogger(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	fixerOpts := fixer.Options{
		Extensions:       cfg.Extensions,
		Recursive:        cfg.Recursive,
		DryRun:           opts.dryRun,
		NormalizeUnicode: cfg.NormalizeUnicode,
	}

	if cfg.Journal && !opts.dryRun {
		manager, err := env.openJournal(ctx)
		if err != nil {
			logging.Get(ctx).Warn().Err(err).Msg("journal unavailable, corrections will not be recorded")
		} else {
			defer func() { _ = manager.Close() }()
			fixerOpts.Recorder = manager
		}
	}

	if opts.interactive && !opts.dryRun {
		prompter := env.newPrompter()
		defer func() { _ = prompter.Close() }()
		fixerOpts.Confirm = confirmWith(prompter, cmd.OutOrStdout())
	}

	f := fixer.New(document.NewStore(env.fs), orthography.New(), fixerOpts)
	report, err := f.Run(ctx, dir)
	if err != nil {
		return report, fmt.Errorf("fix failed: %w", err)
	}
	return report, nil
}

// confirmWith shows the rules that fired on a document and asks whether to
// write it.
func confirmWith(prompter prompt.Prompter, out io.Writer) fixer.Confirmer {
	return func(path string, result orthography.Result) (bool, error) {
		_, _ = fmt.Fprintln(out, color.New(color.Bold).Sprint(path))
		for _, change := range result.Changes {
			line := fmt.Sprintf("  %-10s %s ×%d", change.Stage, change.Rule, change.Count)
			if change.Ambiguous {
				line = color.YellowString(line + " (ambiguous)")
			}
			_, _ = fmt.Fprintln(out, line)
		}
		return prompt.Confirm(prompter, "Write changes?", true) //nolint:wrapcheck // prompt errors are descriptive
	}
}
