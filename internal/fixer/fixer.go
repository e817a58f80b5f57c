// Package fixer runs the orthography engine over a directory of documents,
// writing back only the documents whose text changed.
package fixer

import (
	"context"
	"fmt"

	"github.com/hdrones8/ortofix/internal/document"
	"github.com/hdrones8/ortofix/internal/journal"
	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/hdrones8/ortofix/internal/orthography"
	"golang.org/x/text/unicode/norm"
)

// Recorder stores a journal entry for every rewritten document.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Confirmer decides whether a corrected document is written. Returning an
// error stops the run.
type Confirmer func(path string, result orthography.Result) (bool, error)

type Options struct {
	Confirm          Confirmer
	Recorder         Recorder
	Extensions       []string
	Recursive        bool
	DryRun           bool
	NormalizeUnicode bool
}

type Fixer struct {
	store  *document.Store
	engine *orthography.Engine
	opts   Options
}

func New(store *document.Store, engine *orthography.Engine, opts Options) *Fixer {
	return &Fixer{store: store, engine: engine, opts: opts}
}

// Run corrects every matching document in dir. Only a failure to list dir
// is returned as an error; per-document failures are recorded in the report.
func (f *Fixer) Run(ctx context.Context, dir string) (*Report, error) {
	log := logging.Get(ctx)

	paths, err := f.store.List(dir, f.opts.Extensions, f.opts.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	log.Debug().Int("documents", len(paths)).Msg("listed documents")

	report := &Report{DryRun: f.opts.DryRun}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run interrupted: %w", err)
		}

		file, stop := f.process(ctx, path)
		report.Files = append(report.Files, file)
		if stop {
			return report, fmt.Errorf("run stopped at %s: %w", path, file.Err)
		}
	}

	log.Info().
		Int("scanned", report.Scanned()).
		Int("written", report.Count(StatusWritten)).
		Int("failed", report.Count(StatusFailed)).
		Msg("run complete")

	return report, nil
}

// process corrects one document. The returned flag is set when the run must
// stop after this document.
func (f *Fixer) process(ctx context.Context, path string) (FileResult, bool) {
	log := logging.Get(ctx).With().Str("path", path).Logger()
	file := FileResult{Path: path}

	original, err := f.store.Read(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to read document")
		file.Status, file.Err = StatusFailed, err
		return file, false
	}

	text := original
	if f.opts.NormalizeUnicode {
		text = norm.NFC.String(text)
	}

	result := f.engine.Apply(text)
	result.Original = original
	file.Replacements = result.Replacements()
	file.Ambiguous = result.AmbiguousReplacements()

	if !result.Changed() {
		file.Status = StatusUnchanged
		return file, false
	}

	for _, change := range result.Changes {
		event := log.Debug()
		if change.Ambiguous {
			event = log.Warn()
		}
		event.Str("rule", change.Rule).
			Str("stage", change.Stage.String()).
			Int("count", change.Count).
			Bool("ambiguous", change.Ambiguous).
			Msg("rule applied")
	}

	if f.opts.DryRun {
		file.Status = StatusPending
		return file, false
	}

	if f.opts.Confirm != nil {
		ok, err := f.opts.Confirm(path, result)
		if err != nil {
			file.Status, file.Err = StatusSkipped, err
			return file, true
		}
		if !ok {
			log.Info().Msg("document skipped")
			file.Status = StatusSkipped
			return file, false
		}
	}

	if err := f.store.Write(path, result.Text); err != nil {
		log.Error().Err(err).Msg("failed to write document")
		file.Status, file.Err = StatusFailed, err
		return file, false
	}
	file.Status = StatusWritten
	log.Info().Int("replacements", file.Replacements).Msg("document corrected")

	if f.opts.Recorder != nil {
		entry := journal.Entry{
			Path:         path,
			Replacements: file.Replacements,
			Ambiguous:    file.Ambiguous,
			BytesBefore:  len(original),
			BytesAfter:   len(result.Text),
		}
		if err := f.opts.Recorder.Record(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("failed to journal correction")
		}
	}

	return file, false
}
