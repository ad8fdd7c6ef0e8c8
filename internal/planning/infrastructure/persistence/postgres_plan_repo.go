package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
)

// PostgresPlanRepository implements plan.Repository using PostgreSQL.
// Identifier lists are stored as text arrays.
type PostgresPlanRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPlanRepository creates a new PostgresPlanRepository.
func NewPostgresPlanRepository(pool *pgxpool.Pool) *PostgresPlanRepository {
	return &PostgresPlanRepository{pool: pool}
}

// Save persists a plan (upsert).
func (r *PostgresPlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	query := `
		INSERT INTO plans (
			id, name, capacity, item_order, selected_ids, unresolved,
			optimized_at, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			capacity = EXCLUDED.capacity,
			item_order = EXCLUDED.item_order,
			selected_ids = EXCLUDED.selected_ids,
			unresolved = EXCLUDED.unresolved,
			optimized_at = EXCLUDED.optimized_at,
			updated_at = EXCLUDED.updated_at,
			version = EXCLUDED.version
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID(),
		p.Name(),
		p.Capacity(),
		p.ItemOrder(),
		p.SelectedIDs(),
		p.UnresolvedIDs(),
		p.OptimizedAt(),
		p.CreatedAt(),
		p.UpdatedAt(),
		p.Version(),
	)
	return err
}

const postgresPlanColumns = `id, name, capacity, item_order, selected_ids, unresolved,
		optimized_at, created_at, updated_at, version`

// FindByID retrieves a plan by its identifier.
func (r *PostgresPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans WHERE id = $1`, postgresPlanColumns)
	return scanPostgresPlan(r.pool.QueryRow(ctx, query, id))
}

// FindLatest retrieves the most recently optimized plan.
func (r *PostgresPlanRepository) FindLatest(ctx context.Context) (*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans ORDER BY optimized_at DESC LIMIT 1`, postgresPlanColumns)
	return scanPostgresPlan(r.pool.QueryRow(ctx, query))
}

// List retrieves the most recent plans, newest first.
func (r *PostgresPlanRepository) List(ctx context.Context, limit int) ([]*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans ORDER BY optimized_at DESC LIMIT $1`, postgresPlanColumns)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*plan.Plan, 0)
	for rows.Next() {
		p, err := scanPostgresPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func scanPostgresPlan(row pgx.Row) (*plan.Plan, error) {
	var (
		id                                uuid.UUID
		name                              string
		capacity                          float64
		itemOrder, selected, unresolved   []string
		optimizedAt, createdAt, updatedAt time.Time
		version                           int
	)

	err := row.Scan(
		&id, &name, &capacity,
		&itemOrder, &selected, &unresolved,
		&optimizedAt, &createdAt, &updatedAt,
		&version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, err
	}

	return plan.Rehydrate(id, name, capacity, itemOrder, selected, unresolved,
		optimizedAt, createdAt, updatedAt, version), nil
}
