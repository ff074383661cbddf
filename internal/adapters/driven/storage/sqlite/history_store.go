package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Add records a selected suggestion at the current time. Selecting it again
// moves it to the front, whatever CreatedAt the suggestion already carries.
func (s *historyStore) Add(ctx context.Context, sg domain.Suggestion) error {
	createdAt := s.store.now()

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO history (id, label, description, category, url, source_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			description = excluded.description,
			category = excluded.category,
			url = excluded.url,
			source_id = excluded.source_id,
			created_at = excluded.created_at
	`, sg.ID, sg.Label, sg.Description, sg.Category, sg.URL, sg.SourceID, createdAt.UnixNano())
	if err != nil {
		return fmt.Errorf("adding history entry: %w", err)
	}
	return nil
}

// List returns recorded suggestions, most recent first. A limit of zero means no limit.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Suggestion, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, label, description, category, url, source_id, created_at
		FROM history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return scanSuggestions(rows)
}

// Search returns recorded suggestions whose label contains query, most recent first.
func (s *historyStore) Search(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, label, description, category, url, source_id, created_at
		FROM history
		WHERE ? = '' OR instr(lower(label), lower(?)) > 0
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, query, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()

	return scanSuggestions(rows)
}

// Clear removes all recorded suggestions.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// sqlLimit maps "no limit" to SQLite's -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// scanSuggestions scans multiple history rows.
func scanSuggestions(rows *sql.Rows) ([]domain.Suggestion, error) {
	suggestions := []domain.Suggestion{}
	for rows.Next() {
		var sg domain.Suggestion
		var createdAt int64
		if err := rows.Scan(&sg.ID, &sg.Label, &sg.Description, &sg.Category, &sg.URL, &sg.SourceID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		sg.CreatedAt = time.Unix(0, createdAt)
		suggestions = append(suggestions, sg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return suggestions, nil
}
