package journal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Entry describes one rewritten document.
type Entry struct {
	RecordedAt   time.Time
	Path         string
	ID           int64
	Replacements int
	Ambiguous    int
	BytesBefore  int
	BytesAfter   int
}

// Record appends entry to the journal. A zero RecordedAt is set to now.
func (m *Manager) Record(ctx context.Context, entry Entry) error {
	if entry.Path == "" {
		return errors.New("journal entry requires a path")
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO corrections (path, replacements, ambiguous, bytes_before, bytes_after, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Path, entry.Replacements, entry.Ambiguous,
		entry.BytesBefore, entry.BytesAfter, entry.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Path, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, path, replacements, ambiguous, bytes_before, bytes_after, recorded_at
		FROM corrections
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			recordedAt int64
		)
		if err := rows.Scan(
			&entry.ID, &entry.Path, &entry.Replacements, &entry.Ambiguous,
			&entry.BytesBefore, &entry.BytesAfter, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entry.RecordedAt = time.Unix(recordedAt, 0).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}
