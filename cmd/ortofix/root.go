package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hdrones8/ortofix/internal/config"
	"github.com/hdrones8/ortofix/internal/constants"
	"github.com/hdrones8/ortofix/internal/journal"
	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/hdrones8/ortofix/internal/project"
	"github.com/hdrones8/ortofix/internal/prompt"
	"github.com/hdrones8/ortofix/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// environment holds the collaborators commands depend on, so tests can swap
// the filesystem, logger, journal and prompter.
type environment struct {
	fs          afero.Fs
	newLogger   func(ctx context.Context, cfg *config.Config) (context.Context, error)
	openJournal func(ctx context.Context) (*journal.Manager, error)
	newPrompter func() prompt.Prompter
	getwd       func() (string, error)
}

func defaultEnvironment() *environment {
	fs := afero.NewOsFs()
	return &environment{
		fs: fs,
		newLogger: func(ctx context.Context, cfg *config.Config) (context.Context, error) {
			level, err := logging.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return nil, err //nolint:wrapcheck // config already validated the level
			}
			return logging.New(ctx, fs, logging.Config{
				Directory:  cfg.Directory,
				Level:      level,
				MaxSizeMB:  cfg.Logging.MaxSize,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAgeDays: cfg.Logging.MaxAge,
			})
		},
		openJournal: func(ctx context.Context) (*journal.Manager, error) {
			path, err := storage.New(fs).GetJournalPath()
			if err != nil {
				return nil, fmt.Errorf("failed to get journal path: %w", err)
			}
			return journal.NewManager(ctx, path)
		},
		newPrompter: prompt.NewLinerPrompter,
		getwd:       os.Getwd,
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env *environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ortofix",
		Short: "Restore stripped Spanish accents in Markdown documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")

	rootCmd.AddCommand(
		createFixCommand(env),
		createCheckCommand(env),
		createTextCommand(),
		createRulesCommand(),
		createHistoryCommand(env),
		createInitCommand(env),
	)

	return rootCmd
}

// projectRoot returns the site root above the working directory
func projectRoot(env *environment) (string, error) {
	cwd, err := env.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return project.FindRoot(env.fs, cwd), nil
}

// configPathFromCommand returns the --config value. The default filename is
// looked up in the project root, an explicit value is used as given.
func configPathFromCommand(env *environment, cmd *cobra.Command) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if cmd.Flags().Changed("config") {
		return configPath, nil
	}

	root, err := projectRoot(env)
	if err != nil {
		return "", err
	}
	return project.Resolve(root, configPath), nil
}

// loadConfigFromCommand loads the config named by --config. A relative
// document directory is resolved against the project root.
func loadConfigFromCommand(env *environment, cmd *cobra.Command) (*config.Config, error) {
	configPath, err := configPathFromCommand(env, cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(env.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	root, err := projectRoot(env)
	if err != nil {
		return nil, err
	}
	cfg.Directory = project.Resolve(root, cfg.Directory)

	return cfg, nil
}
