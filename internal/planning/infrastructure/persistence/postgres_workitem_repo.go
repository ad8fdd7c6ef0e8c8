package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// PostgresWorkItemRepository implements workitem.Repository using PostgreSQL.
type PostgresWorkItemRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWorkItemRepository creates a new PostgresWorkItemRepository.
func NewPostgresWorkItemRepository(pool *pgxpool.Pool) *PostgresWorkItemRepository {
	return &PostgresWorkItemRepository{pool: pool}
}

// Save persists a work item (upsert).
func (r *PostgresWorkItemRepository) Save(ctx context.Context, item workitem.ScoredWorkItem) error {
	query := `
		INSERT INTO work_items (
			id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			business_value = EXCLUDED.business_value,
			time_criticality = EXCLUDED.time_criticality,
			risk_reduction = EXCLUDED.risk_reduction,
			job_size = EXCLUDED.job_size,
			score = EXCLUDED.score,
			tier = EXCLUDED.tier,
			estimated_effort = EXCLUDED.estimated_effort,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.BusinessValue,
		item.TimeCriticality,
		item.RiskReduction,
		item.JobSize,
		item.Score,
		item.Tier.String(),
		item.EstimatedEffort,
		time.Now().UTC(),
	)
	return err
}

// FindByID retrieves a work item by its identifier.
func (r *PostgresWorkItemRepository) FindByID(ctx context.Context, id string) (workitem.ScoredWorkItem, error) {
	query := `
		SELECT id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort
		FROM work_items
		WHERE id = $1
	`

	item, err := scanWorkItemRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workitem.ScoredWorkItem{}, workitem.ErrItemNotFound
		}
		return workitem.ScoredWorkItem{}, err
	}
	return item, nil
}

// FindAll retrieves the whole backlog, best score first.
func (r *PostgresWorkItemRepository) FindAll(ctx context.Context) ([]workitem.ScoredWorkItem, error) {
	query := `
		SELECT id, title, business_value, time_criticality, risk_reduction,
			job_size, score, tier, estimated_effort
		FROM work_items
		ORDER BY score DESC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]workitem.ScoredWorkItem, 0)
	for rows.Next() {
		item, err := scanWorkItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteAll clears the stored backlog.
func (r *PostgresWorkItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM work_items`)
	return err
}

func scanWorkItemRow(row pgx.Row) (workitem.ScoredWorkItem, error) {
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
		return workitem.ScoredWorkItem{}, err
	}

	tier, err := value_objects.ParseTier(tierStr)
	if err != nil {
		return workitem.ScoredWorkItem{}, err
	}
	item.Tier = tier

	return item, nil
}
