// Package finance reads aggregate figures out of the tracker database for
// the assistant's data queries. The tables belong to the finance tracker;
// this service only ever selects from them.
package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository aggregates the tracker's expense and income tables into the
// snapshot the response formatter renders.
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

const totalsQuery = `
	SELECT
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'expense' AND occurred_at >= $2), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'expense' AND occurred_at >= $3), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'income'  AND occurred_at >= $2), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'income'  AND occurred_at >= $3), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'expense' AND deductible AND occurred_at >= $3), 0),
		COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'income'  AND billable   AND occurred_at >= $2), 0)
	FROM transactions
	WHERE user_id = $1`

const countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM clients  WHERE user_id = $1 AND archived_at IS NULL),
		(SELECT COUNT(*) FROM projects WHERE user_id = $1 AND status = 'active'),
		(SELECT COUNT(*) FROM receipts WHERE user_id = $1 AND processed_at IS NULL)`

const biggestExpenseQuery = `
	SELECT vendor, amount_cents
	FROM transactions
	WHERE user_id = $1 AND kind = 'expense' AND occurred_at >= $2
	ORDER BY amount_cents DESC
	LIMIT 1`

const topCategoryQuery = `
	SELECT category, SUM(amount_cents) AS total
	FROM transactions
	WHERE user_id = $1 AND kind = 'expense' AND occurred_at >= $2
	GROUP BY category
	ORDER BY total DESC
	LIMIT 1`

// Snapshot loads every figure the query tiers can ask about in one pass.
// A user with no activity yields a zero snapshot, not an error.
func (r *Repository) Snapshot(ctx context.Context, userID uuid.UUID) (assistant.FinancialSnapshot, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	var snap assistant.FinancialSnapshot

	err := r.db.QueryRow(ctx, totalsQuery, userID, monthStart, yearStart).Scan(
		&snap.MonthExpensesCents,
		&snap.YearExpensesCents,
		&snap.MonthIncomeCents,
		&snap.YearIncomeCents,
		&snap.DeductibleCents,
		&snap.BillableCents,
	)
	if err != nil {
		return assistant.FinancialSnapshot{}, fmt.Errorf("loading totals: %w", err)
	}

	err = r.db.QueryRow(ctx, countsQuery, userID).Scan(
		&snap.ClientCount,
		&snap.ProjectCount,
		&snap.PendingReceipts,
	)
	if err != nil {
		return assistant.FinancialSnapshot{}, fmt.Errorf("loading counts: %w", err)
	}

	var vendor string
	var cents int64
	err = r.db.QueryRow(ctx, biggestExpenseQuery, userID, monthStart).Scan(&vendor, &cents)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// no expenses this month
	case err != nil:
		return assistant.FinancialSnapshot{}, fmt.Errorf("loading biggest expense: %w", err)
	default:
		snap.BiggestExpense = &assistant.ExpenseRecord{Vendor: vendor, AmountCents: cents}
	}

	var category string
	err = r.db.QueryRow(ctx, topCategoryQuery, userID, monthStart).Scan(&category, &cents)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return assistant.FinancialSnapshot{}, fmt.Errorf("loading top category: %w", err)
	default:
		snap.TopCategory = &assistant.CategoryTotal{
			Category: assistant.Category(category),
			Name:     category,
			Cents:    cents,
		}
	}

	snap.BalanceCents = snap.YearIncomeCents - snap.YearExpensesCents
	snap.EstimatedTaxCents = estimateTax(snap.YearIncomeCents, snap.DeductibleCents)

	return snap, nil
}

// estimateTax applies a flat provisional rate over net income. The tracker
// owns the real tax engine; this is the voice-answer approximation.
func estimateTax(yearIncomeCents, deductibleCents int64) int64 {
	net := yearIncomeCents - deductibleCents
	if net <= 0 {
		return 0
	}
	return net * 15 / 100
}
