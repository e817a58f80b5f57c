package fixer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Status is the outcome for a single document.
type Status int

const (
	StatusUnchanged Status = iota
	StatusPending
	StatusWritten
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusPending:
		return "pending"
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type FileResult struct {
	Err          error
	Path         string
	Status       Status
	Replacements int
	Ambiguous    int
}

type Report struct {
	Files  []FileResult
	DryRun bool
}

// Scanned returns the number of documents visited.
func (r *Report) Scanned() int {
	return len(r.Files)
}

// Count returns the number of documents with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Changed returns the number of documents whose text the engine changed,
// whether or not they were written.
func (r *Report) Changed() int {
	return r.Count(StatusPending) + r.Count(StatusWritten) + r.Count(StatusSkipped)
}

// Failed returns the results that ended in an error.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			failed = append(failed, f)
		}
	}
	return failed
}

// Summary returns a one-line description of the run.
func (r *Report) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("%d documents scanned, %d would change, %d failed",
			r.Scanned(), r.Count(StatusPending), r.Count(StatusFailed))
	}
	return fmt.Sprintf("%d documents scanned, %d corrected, %d skipped, %d failed",
		r.Scanned(), r.Count(StatusWritten), r.Count(StatusSkipped), r.Count(StatusFailed))
}

// Print writes one line per changed or failed document followed by the
// summary. Unchanged documents are only listed when verbose is set.
func (r *Report) Print(w io.Writer, verbose bool) {
	for _, f := range r.Files {
		if f.Status == StatusUnchanged && !verbose {
			continue
		}
		_, _ = fmt.Fprintln(w, formatLine(f))
	}
	_, _ = fmt.Fprintln(w, r.Summary())
}

func formatLine(f FileResult) string {
	var b strings.Builder
	switch f.Status {
	case StatusWritten:
		b.WriteString(color.GreenString("fixed     "))
	case StatusPending:
		b.WriteString(color.YellowString("would fix "))
	case StatusSkipped:
		b.WriteString(color.CyanString("skipped   "))
	case StatusFailed:
		b.WriteString(color.RedString("failed    "))
	default:
		b.WriteString("ok        ")
	}
	b.WriteString(f.Path)

	if f.Err != nil {
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
		return b.String()
	}
	if f.Replacements > 0 {
		fmt.Fprintf(&b, " (%d replacements", f.Replacements)
		if f.Ambiguous > 0 {
			fmt.Fprintf(&b, ", %d ambiguous", f.Ambiguous)
		}
		b.WriteString(")")
	}
	return b.String()
}
