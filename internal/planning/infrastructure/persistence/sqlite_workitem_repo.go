// Package persistence implements the planning repositories for the
// supported database backends.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// SQLiteWorkItemRepository implements workitem.Repository using SQLite.
type SQLiteWorkItemRepository struct {
	db *sql.DB
}

// NewSQLiteWorkItemRepository creates a new SQLite work item repository.
func NewSQLiteWorkItemRepository(db *sql.DB) *SQLiteWorkItemRepository {
	return &SQLiteWorkItemRepository{db: db}
}

// Save saves or updates a work item (upsert).
func (r *SQLiteWorkItemRepository) Save(ctx context.Context, item workitem.ScoredWorkItem) error {
	query := `
		INSERT INTO work_items (
			id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			business_value = excluded.business_value,
			time_criticality = excluded.time_criticality,
			risk_reduction = excluded.risk_reduction,
			job_size = excluded.job_size,
			score = excluded.score,
			tier = excluded.tier,
			estimated_effort = excluded.estimated_effort,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.BusinessValue,
		item.TimeCriticality,
		item.RiskReduction,
		item.JobSize,
		item.Score,
		item.Tier.String(),
		item.EstimatedEffort,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// FindByID retrieves a work item by its identifier.
func (r *SQLiteWorkItemRepository) FindByID(ctx context.Context, id string) (workitem.ScoredWorkItem, error) {
	query := `
		SELECT id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort
		FROM work_items
		WHERE id = ?
	`
	return r.scanItem(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves the whole backlog, best score first.
func (r *SQLiteWorkItemRepository) FindAll(ctx context.Context) ([]workitem.ScoredWorkItem, error) {
	query := `
		SELECT id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort
		FROM work_items
		ORDER BY score DESC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]workitem.ScoredWorkItem, 0)
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteAll clears the stored backlog.
func (r *SQLiteWorkItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_items`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteWorkItemRepository) scanItem(row rowScanner) (workitem.ScoredWorkItem, error) {
	var (
		item    workitem.ScoredWorkItem
		tierStr string
	)

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.BusinessValue,
		&item.TimeCriticality,
		&item.RiskReduction,
		&item.JobSize,
		&item.Score,
		&tierStr,
		&item.EstimatedEffort,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return workitem.ScoredWorkItem{}, workitem.ErrItemNotFound
		}
		return workitem.ScoredWorkItem{}, err
	}

	tier, err := value_objects.ParseTier(tierStr)
	if err != nil {
		return workitem.ScoredWorkItem{}, err
	}
	item.Tier = tier

	return item, nil
}
