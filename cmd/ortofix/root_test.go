package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/hdrones8/ortofix/internal/config"
	"github.com/hdrones8/ortofix/internal/journal"
	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/hdrones8/ortofix/internal/prompt"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// scriptedPrompter answers prompts from a fixed list
type scriptedPrompter struct {
	answers []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.answers) == 0 {
		return "n", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (*scriptedPrompter) Close() error { return nil }

type testEnv struct {
	*environment
	logs        *strings.Builder
	journalPath string
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	logs := &strings.Builder{}
	journalPath := filepath.Join(t.TempDir(), "journal.db")

	env := &environment{
		fs: fs,
		newLogger: func(ctx context.Context, cfg *config.Config) (context.Context, error) {
			return logging.New(ctx, nil, logging.Config{
				Writer:    logs,
				Directory: cfg.Directory,
				Level:     logging.DebugLevel,
			})
		},
		openJournal: func(ctx context.Context) (*journal.Manager, error) {
			return journal.NewManager(ctx, journalPath)
		},
		newPrompter: func() prompt.Prompter { return &scriptedPrompter{} },
		getwd:       func() (string, error) { return ".", nil },
	}

	return &testEnv{environment: env, logs: logs, journalPath: journalPath}
}

// execute runs the root command with args and returns its output
func (e *testEnv) execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(e.environment)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCreateRootCommand(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()

	if cmd.Use != "ortofix" {
		t.Errorf("Expected command use 'ortofix', got '%s'", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected non-empty short description")
	}

	for _, name := range []string{"fix", "check", "text", "rules", "history", "init"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("Expected %s command to exist, got error: %v", name, err)
		}
		if sub.Name() != name {
			t.Errorf("Expected command name '%s', got '%s'", name, sub.Name())
		}
		if sub.RunE == nil {
			t.Errorf("Expected %s command to have RunE function", name)
		}
	}
}

func TestNewRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	output, err := env.execute(t, "")
	if err != nil {
		t.Fatalf("Expected root command to execute successfully, got: %v", err)
	}

	if !strings.Contains(output, "Available Commands") {
		t.Errorf("Expected help output to contain 'Available Commands', got: %s", output)
	}
}

func TestConfigFlagDefault(t *testing.T) {
	t.Parallel()

	flag := createNewRootCommand().PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("Expected persistent config flag")
	}
	if flag.DefValue != "ortofix.yml" {
		t.Errorf("Expected default config 'ortofix.yml', got '%s'", flag.DefValue)
	}
}
