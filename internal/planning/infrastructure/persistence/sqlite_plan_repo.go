package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
)

// SQLitePlanRepository implements plan.Repository using SQLite.
type SQLitePlanRepository struct {
	db *sql.DB
}

// NewSQLitePlanRepository creates a new SQLite plan repository.
func NewSQLitePlanRepository(db *sql.DB) *SQLitePlanRepository {
	return &SQLitePlanRepository{db: db}
}

// timeLayout is fixed width so lexicographic ordering matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const planColumns = `id, name, capacity, item_order, selected_ids, unresolved,
		optimized_at, created_at, updated_at, version`

// Save saves or updates a plan (upsert).
func (r *SQLitePlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	itemOrderJSON, err := json.Marshal(p.ItemOrder())
	if err != nil {
		return err
	}
	selectedJSON, err := json.Marshal(p.SelectedIDs())
	if err != nil {
		return err
	}
	unresolvedJSON, err := json.Marshal(p.UnresolvedIDs())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plans (
			id, name, capacity, item_order, selected_ids, unresolved,
			optimized_at, created_at, updated_at, version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			capacity = excluded.capacity,
			item_order = excluded.item_order,
			selected_ids = excluded.selected_ids,
			unresolved = excluded.unresolved,
			optimized_at = excluded.optimized_at,
			updated_at = excluded.updated_at,
			version = excluded.version
	`

	_, err = r.db.ExecContext(ctx, query,
		p.ID().String(),
		p.Name(),
		p.Capacity(),
		string(itemOrderJSON),
		string(selectedJSON),
		string(unresolvedJSON),
		p.OptimizedAt().Format(timeLayout),
		p.CreatedAt().Format(timeLayout),
		p.UpdatedAt().Format(timeLayout),
		p.Version(),
	)
	return err
}

// FindByID retrieves a plan by its identifier.
func (r *SQLitePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans WHERE id = ?`, planColumns)
	return r.scanPlan(r.db.QueryRowContext(ctx, query, id.String()))
}

// FindLatest retrieves the most recently optimized plan.
func (r *SQLitePlanRepository) FindLatest(ctx context.Context) (*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans ORDER BY optimized_at DESC LIMIT 1`, planColumns)
	return r.scanPlan(r.db.QueryRowContext(ctx, query))
}

// List retrieves the most recent plans, newest first.
func (r *SQLitePlanRepository) List(ctx context.Context, limit int) ([]*plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM plans ORDER BY optimized_at DESC LIMIT ?`, planColumns)
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*plan.Plan, 0)
	for rows.Next() {
		p, err := r.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepository) scanPlan(row rowScanner) (*plan.Plan, error) {
	var (
		idStr, name                                string
		capacity                                   float64
		itemOrderStr, selectedStr, unresolvedStr   string
		optimizedAtStr, createdAtStr, updatedAtStr string
		version                                    int
	)

	err := row.Scan(
		&idStr, &name, &capacity,
		&itemOrderStr, &selectedStr, &unresolvedStr,
		&optimizedAtStr, &createdAtStr, &updatedAtStr,
		&version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}

	var itemOrder, selected, unresolved []string
	if err := json.Unmarshal([]byte(itemOrderStr), &itemOrder); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(selectedStr), &selected); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(unresolvedStr), &unresolved); err != nil {
		return nil, err
	}

	optimizedAt, err := time.Parse(timeLayout, optimizedAtStr)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(timeLayout, updatedAtStr)
	if err != nil {
		return nil, err
	}

	return plan.Rehydrate(id, name, capacity, itemOrder, selected, unresolved,
		optimizedAt, createdAt, updatedAt, version), nil
}
