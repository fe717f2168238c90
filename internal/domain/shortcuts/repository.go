// Package shortcuts stores the user-defined phrases that override built-in
// navigation in the dispatch chain.
package shortcuts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository reads shortcut records.
type Repository struct {
	db Querier
}

// NewRepository creates a shortcut repository.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// ListByUser returns a user's shortcuts ordered by creation time, oldest
// first, so earlier-defined phrases win ties the way table order does
// elsewhere in the pipeline.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]assistant.Shortcut, error) {
	query := `
		SELECT id, phrase, route, name
		FROM shortcuts
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shortcuts: %w", err)
	}
	defer rows.Close()

	var out []assistant.Shortcut
	for rows.Next() {
		var s assistant.Shortcut
		if err := rows.Scan(&s.ID, &s.Phrase, &s.Route, &s.Name); err != nil {
			return nil, fmt.Errorf("scan shortcut: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shortcuts: %w", err)
	}
	return out, nil
}
