package postgres

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.InteractionStore = (*InteractionStore)(nil)

// InteractionStore implements driven.InteractionStore using PostgreSQL
type InteractionStore struct {
	db *DB
}

// NewInteractionStore creates a new InteractionStore
func NewInteractionStore(db *DB) *InteractionStore {
	return &InteractionStore{db: db}
}

// Log appends one interaction entry; clicked_at is assigned by the
// database
func (s *InteractionStore) Log(ctx context.Context, entry *domain.InteractionLog) error {
	query := `
		INSERT INTO program_logs (user_lang, program_title, program_link)
		VALUES ($1, $2, $3)
		RETURNING id, clicked_at
	`
	return s.db.QueryRowContext(ctx, query,
		entry.UserLang, entry.ProgramTitle, entry.ProgramLink,
	).Scan(&entry.ID, &entry.ClickedAt)
}

// List returns all entries, most recent first
func (s *InteractionStore) List(ctx context.Context) ([]*domain.InteractionLog, error) {
	query := `
		SELECT id, user_lang, program_title, program_link, clicked_at
		FROM program_logs
		ORDER BY clicked_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.InteractionLog
	for rows.Next() {
		var e domain.InteractionLog
		if err := rows.Scan(&e.ID, &e.UserLang, &e.ProgramTitle, &e.ProgramLink, &e.ClickedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Stats aggregates the log in SQL: top clicked programs and
// per-language usage counts
func (s *InteractionStore) Stats(ctx context.Context, topN int) (*domain.InteractionStats, error) {
	if topN <= 0 {
		topN = 5
	}
	stats := &domain.InteractionStats{}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM program_logs`).Scan(&stats.Total); err != nil {
		return nil, err
	}

	programRows, err := s.db.QueryContext(ctx, `
		SELECT program_title, COUNT(*) AS clicks
		FROM program_logs
		GROUP BY program_title
		ORDER BY clicks DESC, program_title
		LIMIT $1
	`, topN)
	if err != nil {
		return nil, err
	}
	defer programRows.Close()
	for programRows.Next() {
		var p domain.ProgramClicks
		if err := programRows.Scan(&p.Title, &p.Clicks); err != nil {
			return nil, err
		}
		stats.TopPrograms = append(stats.TopPrograms, p)
	}
	if err := programRows.Err(); err != nil {
		return nil, err
	}

	langRows, err := s.db.QueryContext(ctx, `
		SELECT user_lang, COUNT(*) AS uses
		FROM program_logs
		GROUP BY user_lang
		ORDER BY uses DESC, user_lang
	`)
	if err != nil {
		return nil, err
	}
	defer langRows.Close()
	for langRows.Next() {
		var l domain.LanguageCount
		if err := langRows.Scan(&l.Language, &l.Count); err != nil {
			return nil, err
		}
		stats.Languages = append(stats.Languages, l)
	}
	return stats, langRows.Err()
}
