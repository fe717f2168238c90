// Package clients supplies the known client records the assistant resolves
// "open client <name>" against. Data lives in Postgres; a cached directory
// serves snapshots to the dispatch path.
package clients

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository reads client records.
type Repository struct {
	db Querier
}

// NewRepository creates a client repository.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the active clients of one user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]assistant.Client, error) {
	query := `
		SELECT id, name
		FROM clients
		WHERE user_id = $1 AND archived_at IS NULL
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []assistant.Client
	for rows.Next() {
		var c assistant.Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return out, nil
}
